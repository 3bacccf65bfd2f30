package publish

import (
	"context"
	"sync"

	"opaltrack/internal/report"
)

// MemorySink records published summaries. Tests and dry runs use it in
// place of real destinations.
type MemorySink struct {
	mu        sync.Mutex
	summaries []report.Summary
}

func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) Name() string { return "memory" }

func (s *MemorySink) Publish(_ context.Context, summary report.Summary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summaries = append(s.summaries, summary)
	return nil
}

// Summaries returns a copy of everything published so far.
func (s *MemorySink) Summaries() []report.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]report.Summary, len(s.summaries))
	copy(out, s.summaries)
	return out
}
