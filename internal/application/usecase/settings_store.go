// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"context"
	"sync"

	"github.com/bnema/duopane/internal/application/port"
	"github.com/bnema/duopane/internal/domain/entity"
	"github.com/bnema/duopane/internal/logging"
)

// ChangeSource identifies what caused a settings change.
type ChangeSource int

const (
	SourceLoad   ChangeSource = iota // Initial load from disk
	SourceEditor                     // Settings editing surface
	SourceDrag                       // Divider drag
	SourceFile                       // Record rewritten by another process
)

// String returns a short name for logs.
func (s ChangeSource) String() string {
	switch s {
	case SourceLoad:
		return "load"
	case SourceEditor:
		return "editor"
	case SourceDrag:
		return "drag"
	case SourceFile:
		return "file"
	default:
		return "unknown"
	}
}

// SettingsChange describes one transition of the authoritative record.
type SettingsChange struct {
	Previous entity.Settings
	Current  entity.Settings
	Source   ChangeSource
	// Transient changes are drag previews: re-layout only, no broadcast.
	Transient bool
}

// SettingsListener observes settings changes on the main loop.
type SettingsListener func(ctx context.Context, change SettingsChange)

// SettingsStore owns the single in-memory settings record.
//
// All methods except Load must be called from the UI main loop, which is the
// only writer; the store holds no lock of its own. Disk writes happen on a
// background persister.
type SettingsStore struct {
	repo      port.SettingsRepository
	persister *persister

	current   entity.Settings
	committed entity.Settings
	onDisk    entity.Settings
	loaded    bool
	deferred  []deferredUpdate

	listeners []listenerEntry
	nextID    int
}

// deferredUpdate holds only the fields a caller changed before the initial
// load, so they can be applied over the loaded record.
type deferredUpdate struct {
	patch   entity.SettingsPatch
	source  ChangeSource
	persist bool
}

type listenerEntry struct {
	id int
	fn SettingsListener
}

// NewSettingsStore creates a store holding defaults until Resolve is called.
// ctx scopes the background persister; call Close to flush and stop it.
func NewSettingsStore(ctx context.Context, repo port.SettingsRepository) *SettingsStore {
	defaults := entity.DefaultSettings()
	return &SettingsStore{
		repo:      repo,
		persister: startPersister(ctx, repo),
		current:   defaults,
		committed: defaults,
	}
}

// Load reads the persisted record merged over defaults. Any failure is
// logged and answered with defaults. Safe to call from any goroutine.
func (s *SettingsStore) Load(ctx context.Context) entity.Settings {
	log := logging.FromContext(ctx)

	loaded, err := s.repo.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load settings, using defaults")
		return entity.DefaultSettings()
	}
	return loaded.Normalized()
}

// Save persists a record in the background. Failures are logged, never
// returned.
func (s *SettingsStore) Save(ctx context.Context, settings entity.Settings) {
	s.onDisk = settings.Normalized()
	s.persister.enqueue(ctx, s.onDisk)
}

// Current returns the live record.
func (s *SettingsStore) Current() entity.Settings {
	return s.current
}

// Loaded reports whether the initial load has resolved.
func (s *SettingsStore) Loaded() bool {
	return s.loaded
}

// Resolve installs the initially loaded record and applies the fields of any
// update that arrived before it. Only the first call has an effect.
func (s *SettingsStore) Resolve(ctx context.Context, loaded entity.Settings) {
	if s.loaded {
		return
	}
	s.loaded = true
	s.onDisk = s.apply(ctx, loaded, SourceLoad)

	if len(s.deferred) == 0 {
		return
	}
	deferred := s.deferred
	s.deferred = nil

	merged := s.current
	persist := false
	for _, d := range deferred {
		merged = d.patch.Apply(merged)
		persist = persist || d.persist
	}
	logging.FromContext(ctx).Debug().
		Int("updates", len(deferred)).
		Msg("applying settings updates deferred until load")

	accepted := s.apply(ctx, merged, deferred[len(deferred)-1].source)
	if persist {
		s.Save(ctx, accepted)
	}
}

// Update replaces the record and returns the accepted value. It is the single
// point where the split ratio is clamped. Before the initial load resolves
// the fields changed from the current record are deferred and later applied
// over the loaded one, never over defaults.
func (s *SettingsStore) Update(ctx context.Context, settings entity.Settings) entity.Settings {
	return s.update(ctx, settings, SourceEditor, false)
}

// Commit updates the record and persists the accepted value.
func (s *SettingsStore) Commit(ctx context.Context, settings entity.Settings, source ChangeSource) entity.Settings {
	return s.update(ctx, settings, source, true)
}

// CommitPatch writes the set fields of patch over the live record and
// persists the result. Before the initial load the patch is deferred as is.
func (s *SettingsStore) CommitPatch(ctx context.Context, patch entity.SettingsPatch, source ChangeSource) entity.Settings {
	if !s.loaded {
		return s.deferPatch(ctx, patch, source, true)
	}
	return s.update(ctx, patch.Apply(s.current), source, true)
}

// Replace installs a record that is already on disk, such as one written by
// another process. It is not persisted again.
func (s *SettingsStore) Replace(ctx context.Context, settings entity.Settings) entity.Settings {
	accepted := s.update(ctx, settings, SourceFile, false)
	if s.loaded {
		s.onDisk = accepted
	}
	return accepted
}

// PreviewSplitRatio applies a live ratio without persisting or broadcasting.
// It is ignored until the initial load resolves.
func (s *SettingsStore) PreviewSplitRatio(ctx context.Context, ratio float64) (entity.Settings, bool) {
	if !s.loaded {
		logging.FromContext(ctx).Debug().Msg("ignoring split ratio preview before settings load")
		return s.current, false
	}

	previous := s.current
	s.current.SplitRatio = entity.ClampRatio(ratio)
	if s.current != previous {
		s.notify(ctx, SettingsChange{Previous: previous, Current: s.current, Source: SourceDrag, Transient: true})
	}
	return s.current, true
}

// Subscribe registers a listener and returns a function removing it.
func (s *SettingsStore) Subscribe(fn SettingsListener) (unsubscribe func()) {
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listenerEntry{id: id, fn: fn})

	return func() {
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// Close persists the live record if it differs from what was last written,
// then waits for pending writes and stops the persister.
func (s *SettingsStore) Close(ctx context.Context) {
	if s.loaded && s.current != s.onDisk {
		s.Save(ctx, s.current)
	}
	s.persister.close()
}

func (s *SettingsStore) update(ctx context.Context, settings entity.Settings, source ChangeSource, persist bool) entity.Settings {
	accepted := settings.Normalized()
	if !s.loaded {
		return s.deferPatch(ctx, entity.DiffSettings(s.current, accepted), source, persist)
	}

	accepted = s.apply(ctx, accepted, source)
	if persist {
		s.Save(ctx, accepted)
	}
	return accepted
}

func (s *SettingsStore) deferPatch(ctx context.Context, patch entity.SettingsPatch, source ChangeSource, persist bool) entity.Settings {
	logging.FromContext(ctx).Debug().
		Str("source", source.String()).
		Msg("deferring settings update until load resolves")
	if !patch.Empty() {
		s.deferred = append(s.deferred, deferredUpdate{patch: patch, source: source, persist: persist})
	}
	return patch.Apply(s.current).Normalized()
}

func (s *SettingsStore) apply(ctx context.Context, settings entity.Settings, source ChangeSource) entity.Settings {
	accepted := settings.Normalized()
	previous := s.current
	previousCommitted := s.committed

	s.current = accepted
	s.committed = accepted

	if accepted == previous && accepted == previousCommitted && source != SourceLoad {
		return accepted
	}

	logging.FromContext(ctx).Debug().
		Str("source", source.String()).
		Float64("split_ratio", accepted.SplitRatio).
		Bool("swapped", accepted.Swapped).
		Msg("settings changed")

	s.notify(ctx, SettingsChange{Previous: previousCommitted, Current: accepted, Source: source})
	return accepted
}

func (s *SettingsStore) notify(ctx context.Context, change SettingsChange) {
	listeners := make([]listenerEntry, len(s.listeners))
	copy(listeners, s.listeners)

	for _, l := range listeners {
		l.fn(ctx, change)
	}
}

// persister writes settings on a single goroutine, coalescing bursts so only
// the newest pending record is written.
type persister struct {
	repo port.SettingsRepository
	ctx  context.Context

	mu      sync.Mutex
	pending *entity.Settings

	wake chan struct{}
	stop chan struct{}
	done chan struct{}
	once sync.Once
}

func startPersister(ctx context.Context, repo port.SettingsRepository) *persister {
	p := &persister{
		repo: repo,
		ctx:  context.WithoutCancel(ctx),
		wake: make(chan struct{}, 1),
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	go p.run()
	return p
}

func (p *persister) enqueue(_ context.Context, s entity.Settings) {
	p.mu.Lock()
	p.pending = &s
	p.mu.Unlock()

	select {
	case p.wake <- struct{}{}:
	default:
	}
}

func (p *persister) run() {
	defer close(p.done)
	for {
		select {
		case <-p.wake:
			p.drain()
		case <-p.stop:
			p.drain()
			return
		}
	}
}

func (p *persister) drain() {
	p.mu.Lock()
	s := p.pending
	p.pending = nil
	p.mu.Unlock()

	if s == nil {
		return
	}

	log := logging.FromContext(p.ctx)
	if err := p.repo.Save(p.ctx, *s); err != nil {
		log.Warn().Err(err).Msg("failed to save settings")
		return
	}
	log.Debug().Float64("split_ratio", s.SplitRatio).Msg("settings saved")
}

func (p *persister) close() {
	p.once.Do(func() { close(p.stop) })
	<-p.done
}
