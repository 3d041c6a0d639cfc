package domain

import (
	"time"

	"github.com/google/uuid"
)

// SessionEvent is the record of one completed review, built after the user
// confirms a quality rating and handed to storage collaborators.
type SessionEvent struct {
	ID                  uuid.UUID `json:"id"`
	CardID              uuid.UUID `json:"card_id"`
	Response            string    `json:"response"`
	Quality             Quality   `json:"quality"`
	Score               float64   `json:"score"`
	MatchType           MatchType `json:"match_type"`
	ResponseTimeMs      int64     `json:"response_time_ms"`
	HintUsed            bool      `json:"hint_used"`
	InferredQuality     Quality   `json:"inferred_quality"`
	InferenceConfidence float64   `json:"inference_confidence"`
	UserOverrode        bool      `json:"user_overrode"`
	NextDue             time.Time `json:"next_due"`
	ReviewedAt          time.Time `json:"reviewed_at"`
}
