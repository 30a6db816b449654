package entity

import (
	"github.com/google/uuid"
)

// DateSource tells how the calendar day of a submission was obtained.
type DateSource string

const (
	// DateSourceOracle marks a day confirmed by the external date authority.
	DateSourceOracle DateSource = "oracle"
	// DateSourceFallback marks a day taken from the local clock because the
	// oracle was unavailable or answered garbage. Less trusted.
	DateSourceFallback DateSource = "fallback"
)

// StreakState is the persisted pair driving the streak engine.
// Count is 0 and LastVerified is nil only before the first ever accepted
// submission; after that Count never drops below 1.
type StreakState struct {
	Count        int   `json:"streak_count"`
	LastVerified *Date `json:"last_verified_date,omitempty"`
}

// SubmissionOutcome is the result of one full submission run.
type SubmissionOutcome struct {
	ID            uuid.UUID  `json:"submission_id"`
	ReviewText    string     `json:"review"`
	VerifiedDate  Date       `json:"verified_date"`
	DateSource    DateSource `json:"date_source"`
	StreakCount   int        `json:"streak_count"`
	StreakUpdated bool       `json:"streak_updated"`
}
