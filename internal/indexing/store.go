package indexing

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"
)

// Load reads a full snapshot from src. Every failure wraps ErrIndexLoad.
func Load(ctx context.Context, src Source) (*Snapshot, error) {
	return load(ctx, src, time.Now)
}

func load(ctx context.Context, src Source, now func() time.Time) (*Snapshot, error) {
	records, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrIndexLoad, src.Name(), err)
	}
	return &Snapshot{
		Records:  records,
		Source:   src.Name(),
		LoadedAt: now(),
	}, nil
}

// LoadOrEmpty loads a snapshot from src, degrading to an empty index when
// loading fails. Search keeps working and simply finds nothing.
func LoadOrEmpty(ctx context.Context, src Source) *Snapshot {
	snapshot, err := Load(ctx, src)
	if err != nil {
		warnEmptyIndex(err)
		return emptySnapshot(src)
	}
	return snapshot
}

func warnEmptyIndex(err error) {
	log.Printf("Warning: %v", err)
	log.Printf("Search index is empty or failed to load")
}

func emptySnapshot(src Source) *Snapshot {
	return &Snapshot{Records: []IndexRecord{}, Source: src.Name()}
}

// Store holds the current index snapshot and swaps it on refresh
type Store struct {
	source Source
	ttl    time.Duration
	now    func() time.Time

	// current holds the active snapshot (atomic access for lock-free reads)
	current atomic.Pointer[Snapshot]

	// refreshMu prevents concurrent refresh operations
	// NOT used for reads - they are lock-free via atomic pointer
	refreshMu sync.Mutex
}

// StoreOption configures a Store
type StoreOption func(*Store)

// WithRefreshTTL sets how long a loaded snapshot is considered fresh
func WithRefreshTTL(ttl time.Duration) StoreOption {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithClock replaces time.Now, for tests
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates a store holding an empty snapshot until the first refresh
func NewStore(source Source, opts ...StoreOption) *Store {
	s := &Store{
		source: source,
		ttl:    DefaultRefreshTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.current.Store(emptySnapshot(source))
	return s
}

// Source returns the source the store loads from
func (s *Store) Source() Source {
	return s.source
}

// Current returns the active snapshot. It is never nil.
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

// Records returns the records of the active snapshot
func (s *Store) Records() []IndexRecord {
	return s.Current().Records
}

// NeedsRefresh reports whether the active snapshot was never loaded or is older than the TTL
func (s *Store) NeedsRefresh() bool {
	loadedAt := s.Current().LoadedAt
	if loadedAt.IsZero() {
		return true
	}
	return s.now().Sub(loadedAt) > s.ttl
}

// Init performs the first load. A failed load leaves the store empty, logs a
// warning and keeps the store eligible for the next refresh.
func (s *Store) Init(ctx context.Context) *Snapshot {
	if _, err := s.Refresh(ctx, true); err != nil {
		warnEmptyIndex(err)
	}
	return s.Current()
}

// Refresh reloads the index when it is stale or force is set, and reports
// whether a new snapshot was swapped in. On failure the previous snapshot
// stays active.
func (s *Store) Refresh(ctx context.Context, force bool) (bool, error) {
	if !force && !s.NeedsRefresh() {
		return false, nil
	}

	// Serialize refresh operations (prevent concurrent reloads)
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	// Re-check after acquiring lock: another goroutine may have refreshed meanwhile
	if !force && !s.NeedsRefresh() {
		return false, nil
	}

	startTime := s.now()
	snapshot, err := load(ctx, s.source, s.now)
	if err != nil {
		return false, err
	}

	s.current.Store(snapshot)
	log.Printf("✓ Search index loaded (%d records from %s) in %v",
		snapshot.Len(), snapshot.Source, snapshot.LoadedAt.Sub(startTime).Round(time.Millisecond))

	return true, nil
}
