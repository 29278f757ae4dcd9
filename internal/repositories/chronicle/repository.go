// Package chronicle stores the narrative of a run so it can be read back
// after the fact or by another process.
package chronicle

//go:generate mockgen -destination=mock/mock_repository.go -package=chroniclemock github.com/KirkDiggler/rpg-caravan/internal/repositories/chronicle Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-caravan/internal/errors"
	"github.com/KirkDiggler/rpg-caravan/internal/narrative"
)

// Repository defines the storage interface for the chronicle
type Repository interface {
	// Append adds a line to the end of a session's chronicle
	Append(ctx context.Context, input *AppendInput) (*AppendOutput, error)

	// List returns a window of a session's chronicle in order
	List(ctx context.Context, input *ListInput) (*ListOutput, error)
}

// Entry is one recorded narrative line
type Entry struct {
	Seq        int64           `json:"seq"`
	Day        int             `json:"day"`
	Level      narrative.Level `json:"level"`
	Text       string          `json:"text"`
	RecordedAt time.Time       `json:"recorded_at"`
}

// AppendInput defines the request for appending a line
type AppendInput struct {
	SessionID string
	Day       int
	Level     narrative.Level
	Text      string
}

// AppendOutput defines the response for appending a line
type AppendOutput struct {
	Entry *Entry
}

// ListInput defines the request for reading the chronicle. Offset counts
// from the oldest entry; a zero Limit reads to the end.
type ListInput struct {
	SessionID string
	Offset    int
	Limit     int
}

// ListOutput defines the response for reading the chronicle
type ListOutput struct {
	Entries []*Entry
	// Total is the session's entry count, independent of the window
	Total int
}

func validateSession(sessionID string) error {
	if sessionID == "" {
		return errors.InvalidArgument("session ID is required")
	}
	return nil
}
