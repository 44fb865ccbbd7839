package cache

import "context"

// Patch computes a new value for one cache location. Apply must return a
// new value and leave its argument untouched so snapshots stay exact.
type Patch struct {
	Key   Key
	Apply func(value interface{}) interface{}
}

// Mutation is one optimistic write touching every denormalized copy of
// an entity
type Mutation struct {
	// Resource labels metrics and error logs
	Resource string
	// Patches are applied optimistically before the request is sent
	Patches []Patch
	// Run issues the request
	Run func(ctx context.Context) (interface{}, error)
	// Commit maps the authoritative server response onto the cache; it
	// overrides the optimistic guess in every location
	Commit func(server interface{}) []Patch
	// Invalidate lists resources marked for background revalidation once
	// the mutation settles, success or failure
	Invalidate []string
}

type snapshot struct {
	hash  uint64
	value interface{}
}

// RunMutation executes the optimistic protocol: cancel in-flight fetches
// for the touched keys, snapshot, apply, request, then either commit the
// server value everywhere or restore every snapshot exactly
func (s *Store) RunMutation(ctx context.Context, m Mutation) (interface{}, error) {
	s.Lock()
	snapshots := make([]snapshot, 0, len(m.Patches))
	for _, p := range m.Patches {
		e, ok := s.entries[p.Key.Hash()]
		if !ok {
			continue
		}
		// a fetch in flight for this key must not land mid-mutation, even
		// when it has no value to patch yet
		e.epoch++
		if !e.hasValue {
			continue
		}
		snapshots = append(snapshots, snapshot{hash: p.Key.Hash(), value: e.value})
		s.commitLocked(e, p.Apply(e.value))
	}
	s.Unlock()

	server, err := m.Run(ctx)

	s.Lock()
	if err != nil {
		// all-or-nothing: every touched location returns to its exact
		// pre-mutation value
		for _, sn := range snapshots {
			if e, ok := s.entries[sn.hash]; ok {
				s.commitLocked(e, sn.value)
			}
		}
		mutationRollbacksTotal.WithLabelValues(m.Resource).Inc()
	} else if m.Commit != nil {
		for _, p := range m.Commit(server) {
			if e, ok := s.entries[p.Key.Hash()]; ok && e.hasValue {
				s.commitLocked(e, p.Apply(e.value))
			}
		}
	}
	for _, resource := range m.Invalidate {
		s.invalidateResourceLocked(resource)
	}
	s.Unlock()

	return server, err
}
