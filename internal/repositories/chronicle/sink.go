package chronicle

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-caravan/internal/narrative"
)

// DayFunc reports the day a line belongs to
type DayFunc func() int

// Sink writes narrative lines to a chronicle session. Append failures are
// logged and dropped so a storage outage never stops the simulation.
type Sink struct {
	repo      Repository
	sessionID string
	day       DayFunc
}

var _ narrative.Sink = (*Sink)(nil)

// NewSink creates a sink appending to sessionID. A nil day func records
// every line on day 0.
func NewSink(repo Repository, sessionID string, day DayFunc) *Sink {
	if day == nil {
		day = func() int { return 0 }
	}
	return &Sink{repo: repo, sessionID: sessionID, day: day}
}

// Line appends the line
func (s *Sink) Line(ctx context.Context, text string, level narrative.Level) {
	_, err := s.repo.Append(ctx, &AppendInput{
		SessionID: s.sessionID,
		Day:       s.day(),
		Level:     level,
		Text:      text,
	})
	if err != nil {
		slog.Warn("Failed to append to chronicle",
			"session_id", s.sessionID,
			"error", err,
		)
	}
}
