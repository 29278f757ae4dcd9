// Package narrative carries the text the simulation tells: the sink it writes
// to and the template tokens used by attack lines and event chains.
package narrative

//go:generate mockgen -destination=mock/mock_sink.go -package=narrativemock github.com/KirkDiggler/rpg-caravan/internal/narrative Sink

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Level is the indent/priority of a narrative line. Lower is more prominent.
type Level int

const (
	// LevelHeading marks day boundaries
	LevelHeading Level = 0
	// LevelEvent is used for inventory changes, events and combat rounds
	LevelEvent Level = 1
	// LevelDetail is used for effect, heal and death lines
	LevelDetail Level = 2
	// LevelAction is used for blow-by-blow combat lines
	LevelAction Level = 3
)

// Sink receives narrative lines as the simulation produces them.
type Sink interface {
	Line(ctx context.Context, text string, level Level)
}

// SinkFunc adapts a function to Sink
type SinkFunc func(ctx context.Context, text string, level Level)

// Line calls f
func (f SinkFunc) Line(ctx context.Context, text string, level Level) {
	f(ctx, text, level)
}

// Discard drops every line
var Discard Sink = SinkFunc(func(context.Context, string, Level) {})

// Multi fans a line out to every sink in order
func Multi(sinks ...Sink) Sink {
	return SinkFunc(func(ctx context.Context, text string, level Level) {
		for _, s := range sinks {
			s.Line(ctx, text, level)
		}
	})
}

// Entry is one recorded line
type Entry struct {
	Text  string
	Level Level
}

// Recorder keeps every line in memory
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Line records the line
func (r *Recorder) Line(_ context.Context, text string, level Level) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Text: text, Level: level})
}

// Entries returns a copy of the recorded lines
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Texts returns only the text of the recorded lines
func (r *Recorder) Texts() []string {
	entries := r.Entries()
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Text
	}
	return out
}

// Reset forgets every recorded line
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
}

// WriterSink writes each line to w, indented by two spaces per level
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink creates a sink writing to w
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Line writes the indented line
func (s *WriterSink) Line(_ context.Context, text string, level Level) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = fmt.Fprintf(s.w, "%s%s\n", strings.Repeat("  ", int(level)), text)
}
