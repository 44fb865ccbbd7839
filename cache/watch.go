package cache

// Watch subscribes to committed changes of a key. The returned cancel
// must be called when the subscriber goes away. Slow subscribers only
// ever lag to the latest value; intermediate values may be dropped.
func (s *Store) Watch(key Key) (<-chan interface{}, func()) {
	ch := make(chan interface{}, 1)
	hash := key.Hash()

	s.Lock()
	s.watchers[hash] = append(s.watchers[hash], ch)
	s.Unlock()

	cancel := func() {
		s.Lock()
		defer s.Unlock()
		watchers := s.watchers[hash]
		for i, w := range watchers {
			if w == ch {
				s.watchers[hash] = append(watchers[:i], watchers[i+1:]...)
				break
			}
		}
		if len(s.watchers[hash]) == 0 {
			delete(s.watchers, hash)
		}
	}
	return ch, cancel
}

func (s *Store) notifyLocked(hash uint64, value interface{}) {
	for _, ch := range s.watchers[hash] {
		select {
		case ch <- value:
		default:
			// replace the undelivered value with the latest
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- value:
			default:
			}
		}
	}
}
