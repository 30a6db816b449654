// @title Cadence API
// @description Daily-practice service with oracle-verified streaks
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"

	"github.com/limbo/cadence/internal/api"
	"github.com/limbo/cadence/internal/llm"
	"github.com/limbo/cadence/internal/repository"
	"github.com/limbo/cadence/internal/service"
	"github.com/limbo/cadence/pkg/cleanup"
	"github.com/limbo/cadence/pkg/config"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	defer cleanup.CleanUp()

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	chat := llm.NewChatClient(&llm.ChatConfig{
		BaseURL: cfg.GetStringDefault("LLM_BASE_URL", "https://api.openai.com/v1"),
		APIKey:  cfg.GetString("LLM_API_KEY"),
		Model:   cfg.GetStringDefault("LLM_MODEL", "gpt-4o-mini"),
	})

	submissionService := service.NewSubmissionService(
		llm.NewDateOracle(chat),
		llm.NewReviewer(chat),
		repository.NewStreakStore(&dbCfg),
	)

	service.InitMetrics()
	api.InitMetrics()
	serv := api.New(&api.ServicesList{
		SubmissionService: submissionService,
	})
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
