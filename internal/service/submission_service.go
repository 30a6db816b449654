package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/cadence/internal/error_values"
	"github.com/limbo/cadence/internal/llm"
	"github.com/limbo/cadence/internal/repository"
	"github.com/limbo/cadence/internal/streak"
	"github.com/limbo/cadence/pkg/entity"
)

// SubmissionService orchestrates one submission: the review call and the
// date verification run concurrently, both outcomes are observed before
// anything is decided, and the store is touched only after the date is
// resolved. At most one submission is expected in flight per store instance.
type SubmissionService struct {
	oracle   llm.DateOracleI
	reviewer llm.ReviewerI
	store    repository.StreakStoreI
	now      func() time.Time
}

func NewSubmissionService(oracle llm.DateOracleI, reviewer llm.ReviewerI, store repository.StreakStoreI) *SubmissionService {
	if oracle == nil || reviewer == nil || store == nil {
		log.Fatal("on submission service provided nil dependencies")
	}
	return &SubmissionService{
		oracle:   oracle,
		reviewer: reviewer,
		store:    store,
		now:      time.Now,
	}
}

// WithClock overrides the fallback clock. Tests pin it to a fixed instant.
func (ss *SubmissionService) WithClock(now func() time.Time) *SubmissionService {
	ss.now = now
	return ss
}

type oracleResult struct {
	date entity.Date
	err  error
}

type reviewResult struct {
	text string
	err  error
}

func (ss *SubmissionService) Submit(ctx context.Context, req *SubmitRequest) (*entity.SubmissionOutcome, error) {
	err := validate.Struct(*req)
	if err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			return nil, errors.Join(errorvalues.ErrEmptyContent, err)
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}

	// Both calls are dispatched before either is awaited; neither failure
	// cancels the other. Buffered channels let a goroutine finish even if
	// nothing ever reads its result.
	oracleCh := make(chan oracleResult, 1)
	reviewCh := make(chan reviewResult, 1)
	go func() {
		date, err := ss.oracle.FetchVerifiedDate(ctx)
		oracleCh <- oracleResult{date: date, err: err}
	}()
	go func() {
		text, err := ss.reviewer.ReviewSubmission(ctx, req.Content)
		reviewCh <- reviewResult{text: text, err: err}
	}()
	orc := <-oracleCh
	rev := <-reviewCh

	// A streak update must never fire for a submission that produced no
	// reviewable feedback, whatever the oracle said.
	if rev.err != nil {
		submissionsTotal.WithLabelValues("failed").Inc()
		return nil, errors.Join(errorvalues.ErrSubmissionFailed, rev.err)
	}

	date := orc.date
	source := entity.DateSourceOracle
	if orc.err != nil {
		// Trust-reduction fallback: the user is never blocked purely by
		// oracle downtime, but the outcome says the clock was local.
		date = entity.DateOf(ss.now())
		source = entity.DateSourceFallback
		oracleFallbacksTotal.Inc()
		slog.Warn("date oracle failed, falling back to local clock",
			slog.String("error", orc.err.Error()),
			slog.String("fallback_date", date.String()))
	}

	// The snapshot is read only after the date is resolved, so the
	// transition decides against a single point-in-time state.
	prior, err := ss.store.Load(ctx)
	if err != nil {
		submissionsTotal.WithLabelValues("failed").Inc()
		return nil, errors.New("streak store error: " + err.Error())
	}
	next, incremented := streak.Transition(*prior, date)
	if incremented {
		if err = ss.store.Save(ctx, &next); err != nil {
			submissionsTotal.WithLabelValues("failed").Inc()
			return nil, errors.New("streak store error: " + err.Error())
		}
	}

	submissionsTotal.WithLabelValues("ok").Inc()
	streakLength.Set(float64(next.Count))
	return &entity.SubmissionOutcome{
		ID:            uuid.New(),
		ReviewText:    rev.text,
		VerifiedDate:  date,
		DateSource:    source,
		StreakCount:   next.Count,
		StreakUpdated: incremented,
	}, nil
}

func (ss *SubmissionService) CurrentStreak(ctx context.Context) (*entity.StreakState, error) {
	state, err := ss.store.Load(ctx)
	if err != nil {
		return nil, errors.New("streak store error: " + err.Error())
	}
	return state, nil
}
