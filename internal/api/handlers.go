package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/cadence/internal/error_values"
	"github.com/limbo/cadence/internal/service"
	"github.com/limbo/cadence/pkg/httputil"
)

type SubmitRequest struct {
	Content string `json:"content"`
}

type GetStreakResponse struct {
	StreakCount      int    `json:"streak_count"`
	LastVerifiedDate string `json:"last_verified_date,omitempty"`
}

func (s *Server) SubmitWork(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req SubmitRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("submission error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	// Two upstream model calls happen inside; give them room.
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*120)
	defer cancel()
	outcome, err := s.submissionService.Submit(ctx, &service.SubmitRequest{
		Content: req.Content,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrEmptyContent):
			logger.Error("submission error: empty content")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "submission content is empty", nil)
		case errors.Is(err, errorvalues.ErrSubmissionFailed):
			logger.Error("submission error: review failed", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadGateway, "review service failed, please retry", nil)
		default:
			logger.Error("submission error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during submission", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, outcome)
	logger.Info("submission reviewed",
		slog.String("date_source", string(outcome.DateSource)),
		slog.Int("streak_count", outcome.StreakCount),
		slog.Bool("streak_updated", outcome.StreakUpdated))
}

func (s *Server) GetStreak(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	state, err := s.submissionService.CurrentStreak(ctx)
	if err != nil {
		logger.Error("getting streak error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting streak", nil)
		return
	}
	resp := GetStreakResponse{
		StreakCount: state.Count,
	}
	if state.LastVerified != nil {
		resp.LastVerifiedDate = state.LastVerified.String()
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resp)
	logger.Info("streak provided")
}

func (s *Server) Healthz(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"status": "ok"})
}
