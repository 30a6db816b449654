// Package streak holds the pure transition function of the streak engine.
// It has no dependencies on storage or transport, so the rules can be
// exercised directly with literal dates.
package streak

import (
	"github.com/limbo/cadence/pkg/entity"
)

// Transition applies one observed calendar day to the prior streak state and
// reports whether the state changed.
//
// Rules:
//   - observed equals the last verified day: no-op, the prior state is
//     returned untouched (a second submission on the same day never
//     double-counts);
//   - no day was ever verified: the streak starts at 1;
//   - observed is exactly one calendar day away from the last verified day,
//     in either direction: the streak grows by 1. The absolute distance
//     tolerates an oracle restating an earlier day without crashing;
//   - anything further away: the streak resets to 1, the current submission
//     counts as day one of the new streak. Count never goes back to 0.
func Transition(prior entity.StreakState, observed entity.Date) (entity.StreakState, bool) {
	if prior.LastVerified != nil && prior.LastVerified.Equal(observed) {
		return prior, false
	}

	next := entity.StreakState{LastVerified: &observed}
	switch {
	case prior.LastVerified == nil:
		next.Count = 1
	case prior.LastVerified.DaysApart(observed) == 1:
		next.Count = prior.Count + 1
	default:
		next.Count = 1
	}
	return next, true
}
