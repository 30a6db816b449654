package errorvalues

import "errors"

var (
	// Oracle path. Both are recovered by the orchestrator via the
	// local-clock fallback, never surfaced to the caller.
	ErrOracleUnavailable = errors.New("date oracle is unavailable")
	ErrOracleMalformed   = errors.New("date oracle returned malformed response")

	// Review path. Any of these fails the whole submission.
	ErrReviewUnavailable = errors.New("review service is unavailable")
	ErrReviewEmpty       = errors.New("review service returned no usable text")

	ErrSubmissionFailed = errors.New("submission failed, no review was produced")
	ErrEmptyContent     = errors.New("submission content is empty")
)
