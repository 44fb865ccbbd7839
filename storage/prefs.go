package storage

import (
	"linkup_client/errors"
	"linkup_client/global"
)

// UI-preference list keys
const (
	RecentSearchesKey  = "linkup:recent_searches"
	SelectedFriendsKey = "linkup:selected_friends"
)

func marshal(v interface{}) (string, error) {
	data, err := global.JSON.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func unmarshal(data string, v interface{}) error {
	return global.JSON.Unmarshal([]byte(data), v)
}

// Recent returns a persisted preference list, newest first
func (s *Store) Recent(key string) []string {
	data, ok := s.get(key)
	if !ok {
		return nil
	}
	var entries []string
	if err := unmarshal(data, &entries); err != nil {
		errors.HandleStorageError("unmarshal "+key, err)
		return nil
	}
	return entries
}

// AppendRecent prepends an entry to a preference list capped at max
// entries, evicting the oldest first; duplicates move to the front
func (s *Store) AppendRecent(key string, entry string, max int) error {
	entries := s.Recent(key)

	next := make([]string, 0, len(entries)+1)
	next = append(next, entry)
	for _, e := range entries {
		if e != entry {
			next = append(next, e)
		}
	}
	if max > 0 && len(next) > max {
		next = next[:max]
	}

	data, err := marshal(next)
	if err != nil {
		return errors.HandleStorageError("marshal "+key, err)
	}
	return s.set(key, data)
}

// ClearRecent removes a preference list
func (s *Store) ClearRecent(key string) error {
	return s.remove(key)
}
