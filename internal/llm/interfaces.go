package llm

import (
	"context"

	"github.com/limbo/cadence/pkg/entity"
)

type DateOracleI interface {
	// Asks the external date authority for today's UTC calendar day.
	// Single attempt, no retries: the caller decides what an oracle
	// failure means.
	FetchVerifiedDate(ctx context.Context) (entity.Date, error)
}

type ReviewerI interface {
	// Sends submission content to the review service and returns the
	// produced text verbatim.
	ReviewSubmission(ctx context.Context, content string) (string, error)
}
