package telemetry

import (
	"log/slog"
	"sync"
)

// Sink forwards advisories to a slog logger, filtered by a kind mask.
type Sink struct {
	logger *slog.Logger
	mask   Kind
}

// NewSink returns a Sink logging through logger. A nil logger means
// slog.Default(). Only advisories matching mask are logged.
func NewSink(logger *slog.Logger, mask Kind) *Sink {
	if logger == nil {
		logger = slog.Default()
	}

	return &Sink{logger: logger, mask: mask}
}

func (s *Sink) Emit(kind Kind, tags map[string]string) {
	if s.mask&kind == 0 {
		return
	}

	args := make([]any, 0, len(tags)+1)
	args = append(args, slog.String("advisory", kind.String()))
	for k, v := range tags {
		args = append(args, slog.String(k, v))
	}

	s.logger.Warn("copy advisory", args...)
}

// Recorder accumulates advisories in memory. Safe for concurrent use; meant
// for tests and in-process inspection.
type Recorder struct {
	mu         sync.Mutex
	advisories []Advisory
}

// Advisory is one recorded emission.
type Advisory struct {
	Kind Kind
	Tags map[string]string
}

func (r *Recorder) Emit(kind Kind, tags map[string]string) {
	copied := make(map[string]string, len(tags))
	for k, v := range tags {
		copied[k] = v
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.advisories = append(r.advisories, Advisory{Kind: kind, Tags: copied})
}

// Advisories returns a snapshot of everything recorded so far.
func (r *Recorder) Advisories() []Advisory {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Advisory, len(r.advisories))
	copy(out, r.advisories)

	return out
}

// Count returns how many advisories of the given kind were recorded.
func (r *Recorder) Count(kind Kind) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, a := range r.advisories {
		if a.Kind == kind {
			n++
		}
	}

	return n
}
