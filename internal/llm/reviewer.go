package llm

import (
	"context"
	"errors"
	"log"
	"strings"

	errorvalues "github.com/limbo/cadence/internal/error_values"
)

// The reviewer is expected (but not required) to answer with these three
// markdown sections; the text is passed through verbatim either way.
const reviewerSystemPrompt = "You are a strict but encouraging reviewer of daily practice work. " +
	"Review the submission you are given. Answer in markdown with three sections: " +
	"\"## What works\", \"## What to improve\" and \"## Verdict\". Be concrete and brief."

// Reviewer sends submission content to the external review service. It has
// no relation to the date oracle; the two only meet in the orchestrator,
// which dispatches them concurrently.
type Reviewer struct {
	chat *ChatClient
}

func NewReviewer(chat *ChatClient) *Reviewer {
	if chat == nil {
		log.Fatal("on reviewer provided nil chat client")
	}
	return &Reviewer{chat: chat}
}

func (r *Reviewer) ReviewSubmission(ctx context.Context, content string) (string, error) {
	text, err := r.chat.Complete(ctx, reviewerSystemPrompt, content)
	if err != nil {
		if errors.Is(err, errChatEmpty) {
			return "", errors.Join(errorvalues.ErrReviewEmpty, err)
		}
		return "", errors.Join(errorvalues.ErrReviewUnavailable, err)
	}
	if strings.TrimSpace(text) == "" {
		return "", errorvalues.ErrReviewEmpty
	}
	return text, nil
}
