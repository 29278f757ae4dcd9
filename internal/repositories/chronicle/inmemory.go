package chronicle

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-caravan/internal/errors"
	"github.com/KirkDiggler/rpg-caravan/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu       sync.RWMutex
	clock    clock.Clock
	sessions map[string][]*Entry
}

// NewInMemory creates a new in-memory repository. A nil clock uses the
// system clock.
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		clock:    c,
		sessions: make(map[string][]*Entry),
	}
}

// Append adds a line to the session
func (r *InMemoryRepository) Append(ctx context.Context, input *AppendInput) (*AppendOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateSession(input.SessionID); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entries := r.sessions[input.SessionID]
	entry := &Entry{
		Seq:        int64(len(entries) + 1),
		Day:        input.Day,
		Level:      input.Level,
		Text:       input.Text,
		RecordedAt: r.clock.Now().UTC(),
	}
	r.sessions[input.SessionID] = append(entries, entry)

	copied := *entry
	return &AppendOutput{Entry: &copied}, nil
}

// List returns a copy of the requested window
func (r *InMemoryRepository) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateSession(input.SessionID); err != nil {
		return nil, err
	}
	start, stop, err := window(input)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := r.sessions[input.SessionID]
	out := &ListOutput{Total: len(entries)}
	if start >= len(entries) {
		return out, nil
	}
	if stop < 0 || stop >= len(entries) {
		stop = len(entries) - 1
	}
	for _, e := range entries[start : stop+1] {
		copied := *e
		out.Entries = append(out.Entries, &copied)
	}
	return out, nil
}

// window turns offset/limit into inclusive list indexes. stop is -1 for
// "to the end".
func window(input *ListInput) (start, stop int, err error) {
	if input.Offset < 0 {
		return 0, 0, errors.InvalidArgument("offset cannot be negative")
	}
	if input.Limit < 0 {
		return 0, 0, errors.InvalidArgument("limit cannot be negative")
	}
	if input.Limit == 0 {
		return input.Offset, -1, nil
	}
	return input.Offset, input.Offset + input.Limit - 1, nil
}
