package logging

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// StartupTrace tracks cold start milestones from process launch until the
// window is first shown. Thread-safe for use across goroutines.
type StartupTrace struct {
	mu         sync.Mutex
	t0         time.Time
	milestones []Milestone
	logger     *zerolog.Logger
	finished   bool
}

// Milestone represents a timing checkpoint during startup.
type Milestone struct {
	Name    string
	Elapsed time.Duration // time since t0
	Delta   time.Duration // time since previous milestone
}

// NewStartupTrace starts a trace at t0. Milestones are emitted at debug level.
func NewStartupTrace(t0 time.Time, logger *zerolog.Logger) *StartupTrace {
	return &StartupTrace{
		t0:         t0,
		milestones: make([]Milestone, 0, 16),
		logger:     logger,
	}
}

// Mark records a milestone with the given name.
func (st *StartupTrace) Mark(name string) {
	if st == nil {
		return
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if st.finished {
		return
	}

	elapsed := time.Since(st.t0)
	var delta time.Duration
	if n := len(st.milestones); n > 0 {
		delta = elapsed - st.milestones[n-1].Elapsed
	}

	m := Milestone{Name: name, Elapsed: elapsed, Delta: delta}
	st.milestones = append(st.milestones, m)

	if st.logger != nil {
		st.logger.Debug().
			Str("milestone", m.Name).
			Int64("t_ms", m.Elapsed.Milliseconds()).
			Int64("delta_ms", m.Delta.Milliseconds()).
			Msg("startup_trace")
	}
}

// Milestones returns a copy of the recorded milestones.
func (st *StartupTrace) Milestones() []Milestone {
	if st == nil {
		return nil
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	out := make([]Milestone, len(st.milestones))
	copy(out, st.milestones)
	return out
}

// Finish marks the trace as complete and emits a summary. Later calls to
// Mark or Finish are ignored.
func (st *StartupTrace) Finish() {
	if st == nil {
		return
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if st.finished {
		return
	}
	st.finished = true

	if st.logger == nil {
		return
	}

	parts := make([]string, 0, len(st.milestones))
	for _, m := range st.milestones {
		parts = append(parts, fmt.Sprintf("%s:%d", m.Name, m.Elapsed.Milliseconds()))
	}

	st.logger.Info().
		Int64("total_ms", time.Since(st.t0).Milliseconds()).
		Str("milestones", strings.Join(parts, ",")).
		Msg("startup_trace: window shown")
}
