package cache

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"servihub/config"
	"servihub/internal/errors"

	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

// FetchFunc loads the value of a key from the source of truth.
type FetchFunc func(ctx context.Context) (any, error)

type entry struct {
	value     any
	fetchedAt time.Time
}

// Stats counts cache activity for one key name.
type Stats struct {
	Hits          int64 `json:"hits"`
	Misses        int64 `json:"misses"`
	Invalidations int64 `json:"invalidations"`
	Discarded     int64 `json:"discarded"` // Fetch results dropped because an invalidation raced them.
}

// Store is a keyed query cache. Entries go stale after staleTime or when an invalidation
// hits their name; concurrent fetches of one key share a single call.
type Store struct {
	mu          sync.Mutex
	entries     map[Key]*entry
	generations map[Name]uint64
	stats       map[Name]*Stats

	group     singleflight.Group
	graph     *Graph
	staleTime time.Duration
	now       func() time.Time
	logger    *slog.Logger
}

// Params defines the dependencies of the store.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New creates the store with the default invalidation graph.
func New(params Params) *Store {
	staleTime := time.Duration(0)
	if params.Config != nil && params.Config.Cache != nil {
		staleTime = params.Config.Cache.StaleTime
	}

	return NewStore(DefaultGraph(), staleTime, params.Logger)
}

// NewStore creates a store over an explicit graph.
func NewStore(graph *Graph, staleTime time.Duration, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{
		entries:     make(map[Key]*entry),
		generations: make(map[Name]uint64),
		stats:       make(map[Name]*Stats),
		graph:       graph,
		staleTime:   staleTime,
		now:         time.Now,
		logger:      logger,
	}
}

// Graph returns the invalidation graph of the store.
func (s *Store) Graph() *Graph {
	return s.graph
}

// Get returns the cached value of key, fetching it when missing or stale.
// A fetch result is kept only if no invalidation of the key name happened while it was in flight.
func (s *Store) Get(ctx context.Context, key Key, fetch FetchFunc) (any, error) {
	s.mu.Lock()
	if e, ok := s.entries[key]; ok && s.fresh(e) {
		s.statsFor(key.Name).Hits++
		s.mu.Unlock()

		return e.value, nil
	}
	s.statsFor(key.Name).Misses++
	gen := s.generations[key.Name]
	s.mu.Unlock()

	// The generation is part of the flight key so that callers arriving after an
	// invalidation never join a fetch that started before it.
	flightKey := key.String() + "#" + strconv.FormatUint(gen, 10)
	value, err, _ := s.group.Do(flightKey, func() (any, error) {
		v, fetchErr := fetch(ctx)
		if fetchErr != nil {
			return nil, fetchErr
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		if s.generations[key.Name] != gen {
			s.statsFor(key.Name).Discarded++

			return v, nil
		}
		s.entries[key] = &entry{value: v, fetchedAt: s.now()}

		return v, nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "fetch %s", key)
	}

	return value, nil
}

// InvalidateFor invalidates every key name that depends on the mutation, each exactly once.
// It returns the invalidated names.
func (s *Store) InvalidateFor(ctx context.Context, m Mutation) []Name {
	names := s.graph.DependentsOf(m)
	s.invalidate(names)

	s.logger.DebugContext(ctx, "Cache invalidated for mutation",
		slog.String("mutation", string(m)),
		slog.Any("keys", names),
	)

	return names
}

// InvalidateTable invalidates every key name that depends on a table, for realtime row changes.
func (s *Store) InvalidateTable(ctx context.Context, table string) []Name {
	names := s.graph.DependentsOfTable(table)
	s.invalidate(names)

	s.logger.DebugContext(ctx, "Cache invalidated for table change",
		slog.String("table", table),
		slog.Any("keys", names),
	)

	return names
}

// Invalidate drops every entry of the given names.
func (s *Store) Invalidate(names ...Name) {
	s.invalidate(names)
}

func (s *Store) invalidate(names []Name) {
	if len(names) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	targets := make(map[Name]struct{}, len(names))
	for _, n := range names {
		if _, dup := targets[n]; dup {
			continue
		}
		targets[n] = struct{}{}
		s.generations[n]++
		s.statsFor(n).Invalidations++
	}

	for k := range s.entries {
		if _, ok := targets[k.Name]; ok {
			delete(s.entries, k)
		}
	}
}

// Stats returns a copy of the per-name counters.
func (s *Store) Stats() map[Name]Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[Name]Stats, len(s.stats))
	for n, st := range s.stats {
		out[n] = *st
	}

	return out
}

// Len returns the number of cached entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}

func (s *Store) fresh(e *entry) bool {
	if s.staleTime <= 0 {
		return true
	}

	return s.now().Sub(e.fetchedAt) < s.staleTime
}

func (s *Store) statsFor(name Name) *Stats {
	st, ok := s.stats[name]
	if !ok {
		st = &Stats{}
		s.stats[name] = st
	}

	return st
}

// Fetch is the typed form of Store.Get.
func Fetch[T any](ctx context.Context, s *Store, key Key, fetch func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	value, err := s.Get(ctx, key, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		return zero, err
	}

	typed, ok := value.(T)
	if !ok {
		return zero, errors.Errorf("cache entry %s holds %T", key, value)
	}

	return typed, nil
}
