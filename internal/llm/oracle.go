package llm

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/cadence/internal/error_values"
	"github.com/limbo/cadence/pkg/entity"
)

const (
	oracleSystemPrompt = "You are a date authority. You must consult a real-world time source " +
		"(web search or tool access to a trusted clock), never your own assumptions about " +
		"the current date. You answer with a single JSON object and nothing else."
	oracleUserPrompt = `What is the current UTC date? Respond exactly in the shape {"current_utc_date":"YYYY-MM-DD"}.`
)

// DateOracle obtains a tamper-resistant current date from the external
// text-generation service. Only the current_utc_date field of the reply is
// read; everything else is ignored.
type DateOracle struct {
	chat *ChatClient
}

func NewDateOracle(chat *ChatClient) *DateOracle {
	if chat == nil {
		log.Fatal("on date oracle provided nil chat client")
	}
	return &DateOracle{chat: chat}
}

func (o *DateOracle) FetchVerifiedDate(ctx context.Context) (entity.Date, error) {
	content, err := o.chat.Complete(ctx, oracleSystemPrompt, oracleUserPrompt)
	if err != nil {
		if errors.Is(err, errChatDecode) {
			return entity.Date{}, errors.Join(errorvalues.ErrOracleMalformed, err)
		}
		return entity.Date{}, errors.Join(errorvalues.ErrOracleUnavailable, err)
	}

	var payload struct {
		CurrentUTCDate string `json:"current_utc_date"`
	}
	if err := sonic.Unmarshal([]byte(stripCodeFence(content)), &payload); err != nil {
		return entity.Date{}, errors.Join(errorvalues.ErrOracleMalformed, err)
	}
	if payload.CurrentUTCDate == "" {
		return entity.Date{}, errors.Join(errorvalues.ErrOracleMalformed, errors.New("missing current_utc_date field"))
	}
	date, err := entity.ParseDate(payload.CurrentUTCDate)
	if err != nil {
		return entity.Date{}, errors.Join(errorvalues.ErrOracleMalformed, err)
	}
	return date, nil
}

// stripCodeFence unwraps replies the model insists on fencing as ```json.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
