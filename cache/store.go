package cache

import (
	"context"
	"sync"
	"time"

	"linkup_client/config"
	"linkup_client/errors"
	"linkup_client/global"
)

// Options control the lifecycle of one cache entry
type Options struct {
	// Freshness is the window after which an entry is eligible for a
	// background refetch on next access; zero means never stale
	Freshness time.Duration
	// GCWindow is the inactivity window after which an unused entry is
	// evicted; zero falls back to the configured default
	GCWindow time.Duration
}

// FetchFunc loads a value from the server
type FetchFunc func(ctx context.Context) (interface{}, error)

type fetchResult struct {
	value interface{}
	err   error
}

type entry struct {
	key        Key
	opts       Options
	value      interface{}
	hasValue   bool
	stale      bool
	fetchedAt  time.Time
	lastAccess time.Time
	// epoch tags in-flight fetches; a bump marks their results discardable
	epoch    uint64
	fetching bool
	waiters  []chan fetchResult
}

// Store is the shared mutable cache; a single mutex guards the entry map
// so the optimistic snapshot/restore discipline stays atomic
type Store struct {
	entries   map[uint64]*entry
	watchers  map[uint64][]chan interface{}
	now       func() time.Time
	lastSweep time.Time
	sync.Mutex
}

// NewStore builds an empty store
func NewStore() *Store {
	return &Store{
		entries:  make(map[uint64]*entry),
		watchers: make(map[uint64][]chan interface{}),
		now:      time.Now,
	}
}

// Query resolves a key: fresh hit returns the cached value, stale hit
// returns the cached value and revalidates in the background, a miss
// fetches synchronously with at most one network call per key
func (s *Store) Query(ctx context.Context, key Key, opts Options, fetch FetchFunc) (interface{}, error) {
	s.Lock()
	s.maybeSweepLocked()
	e := s.entryLocked(key, opts)
	e.lastAccess = s.now()

	if e.hasValue && !s.staleLocked(e) {
		value := e.value
		s.Unlock()
		cacheHitsTotal.WithLabelValues(key.Resource).Inc()
		return value, nil
	}

	if e.hasValue {
		if !e.fetching {
			e.fetching = true
			go s.refetch(key, e.epoch, fetch)
		}
		value := e.value
		s.Unlock()
		cacheHitsTotal.WithLabelValues(key.Resource).Inc()
		return value, nil
	}

	cacheMissesTotal.WithLabelValues(key.Resource).Inc()

	if e.fetching {
		ch := make(chan fetchResult, 1)
		e.waiters = append(e.waiters, ch)
		s.Unlock()
		select {
		case res := <-ch:
			return res.value, res.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	e.fetching = true
	epoch := e.epoch
	s.Unlock()

	value, err := fetch(ctx)

	s.Lock()
	e.fetching = false
	waiters := e.waiters
	e.waiters = nil
	// commit only when the map still holds this entry: a Drop during the
	// fetch orphans it, and its waiters must still be answered
	if cur, ok := s.entries[key.Hash()]; ok && cur == e && err == nil && e.epoch == epoch {
		s.commitLocked(e, value)
	}
	for _, ch := range waiters {
		ch <- fetchResult{value: value, err: err}
	}
	s.Unlock()

	return value, err
}

// refetch revalidates a stale entry off the caller's path; a result whose
// epoch no longer matches has been cancelled and is discarded
func (s *Store) refetch(key Key, epoch uint64, fetch FetchFunc) {
	cacheRefetchesTotal.WithLabelValues(key.Resource).Inc()
	value, err := fetch(global.Context)

	s.Lock()
	defer s.Unlock()
	e, ok := s.entries[key.Hash()]
	if !ok {
		return
	}
	e.fetching = false
	if errors.HandleBasicError(err) {
		return
	}
	if e.epoch != epoch {
		return
	}
	s.commitLocked(e, value)
}

// Set seeds or overwrites a key with an explicit value, cancelling any
// in-flight fetch for it
func (s *Store) Set(key Key, opts Options, value interface{}) {
	s.Lock()
	e := s.entryLocked(key, opts)
	e.epoch++
	e.lastAccess = s.now()
	s.commitLocked(e, value)
	s.Unlock()
}

// Peek returns a cached value without fetching
func (s *Store) Peek(key Key) (interface{}, bool) {
	s.Lock()
	defer s.Unlock()
	e, ok := s.entries[key.Hash()]
	if !ok || !e.hasValue {
		return nil, false
	}
	e.lastAccess = s.now()
	return e.value, true
}

// Update transforms a cached value in place; fn must return a new value
// rather than mutate its argument
func (s *Store) Update(key Key, fn func(value interface{}) interface{}) bool {
	s.Lock()
	defer s.Unlock()
	e, ok := s.entries[key.Hash()]
	if !ok || !e.hasValue {
		return false
	}
	s.commitLocked(e, fn(e.value))
	return true
}

// Invalidate marks a key for background revalidation on next access
func (s *Store) Invalidate(key Key) {
	s.Lock()
	if e, ok := s.entries[key.Hash()]; ok {
		e.stale = true
	}
	s.Unlock()
}

// InvalidateResource marks every entry of a resource for revalidation
func (s *Store) InvalidateResource(resource string) {
	s.Lock()
	s.invalidateResourceLocked(resource)
	s.Unlock()
}

func (s *Store) invalidateResourceLocked(resource string) {
	for _, e := range s.entries {
		if e.key.Resource == resource {
			e.stale = true
		}
	}
}

// Drop removes an entry entirely so no stale subscriber holds it
func (s *Store) Drop(key Key) {
	s.Lock()
	delete(s.entries, key.Hash())
	s.Unlock()
}

// CancelQueries marks any in-flight fetch for the key as discardable;
// cancellation is cooperative and does not abort the request itself
func (s *Store) CancelQueries(keys ...Key) {
	s.Lock()
	for _, key := range keys {
		if e, ok := s.entries[key.Hash()]; ok {
			e.epoch++
		}
	}
	s.Unlock()
}

// Keys returns the keys currently cached for a resource
func (s *Store) Keys(resource string) []Key {
	s.Lock()
	defer s.Unlock()
	keys := make([]Key, 0)
	for _, e := range s.entries {
		if e.key.Resource == resource {
			keys = append(keys, e.key)
		}
	}
	return keys
}

// Sweep evicts entries whose inactivity exceeds their GC window
func (s *Store) Sweep() {
	s.Lock()
	s.sweepLocked()
	s.Unlock()
}

func (s *Store) maybeSweepLocked() {
	if s.now().Sub(s.lastSweep) < config.SweepIntervalDuration() {
		return
	}
	s.sweepLocked()
}

func (s *Store) sweepLocked() {
	now := s.now()
	s.lastSweep = now
	for hash, e := range s.entries {
		if e.fetching {
			continue
		}
		window := e.opts.GCWindow
		if window <= 0 {
			window = config.GCWindowDuration()
		}
		if now.Sub(e.lastAccess) > window {
			delete(s.entries, hash)
			cacheEvictionsTotal.WithLabelValues(e.key.Resource).Inc()
		}
	}
}

func (s *Store) entryLocked(key Key, opts Options) *entry {
	e, ok := s.entries[key.Hash()]
	if !ok {
		e = &entry{key: key, opts: opts}
		s.entries[key.Hash()] = e
	} else {
		e.opts = opts
	}
	return e
}

func (s *Store) staleLocked(e *entry) bool {
	if e.stale {
		return true
	}
	if e.opts.Freshness <= 0 {
		return false
	}
	return s.now().Sub(e.fetchedAt) > e.opts.Freshness
}

// commitLocked writes a value and notifies watchers
func (s *Store) commitLocked(e *entry, value interface{}) {
	e.value = value
	e.hasValue = true
	e.stale = false
	e.fetchedAt = s.now()
	s.notifyLocked(e.key.Hash(), value)
}
