package service

import (
	"context"

	"github.com/limbo/cadence/pkg/entity"
)

type SubmitRequest struct {
	Content string `validate:"required,notblank,max=65536"`
}

type SubmissionServiceI interface {
	// Runs one submission end to end: dispatches the review and the date
	// verification concurrently, applies the streak transition and persists
	// the result. Review failure fails the whole call with
	// ErrSubmissionFailed; oracle failure only downgrades DateSource to
	// fallback.
	Submit(ctx context.Context, req *SubmitRequest) (*entity.SubmissionOutcome, error)
	// Returns the current persisted streak snapshot
	CurrentStreak(ctx context.Context) (*entity.StreakState, error)
}
