package storage

import (
	"database/sql"

	"linkup_client/errors"
	"linkup_client/schemas"

	_ "modernc.org/sqlite"
)

// App-namespaced device storage keys
const (
	tokenKey = "linkup:token"
	userKey  = "linkup:user"
)

// Store is the durable device key-value storage
type Store struct {
	db *sql.DB
}

// Open opens the device storage at path and ensures the kv table exists
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.HandleStorageError("open", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS device_kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, errors.HandleStorageError("migrate", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

// get reads one key; read failures are logged and degrade to absent
func (s *Store) get(key string) (string, bool) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM device_kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false
	}
	if err != nil {
		errors.HandleStorageError("get "+key, err)
		return "", false
	}
	return value, true
}

// set writes one key; write failures propagate
func (s *Store) set(key string, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO device_kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return errors.HandleStorageError("set "+key, err)
	}
	return nil
}

// remove deletes the given keys in one transaction
func (s *Store) remove(keys ...string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return errors.HandleStorageError("remove begin", err)
	}
	for _, key := range keys {
		if _, err = tx.Exec(`DELETE FROM device_kv WHERE key = ?`, key); err != nil {
			tx.Rollback()
			return errors.HandleStorageError("remove "+key, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return errors.HandleStorageError("remove commit", err)
	}
	return nil
}

// SaveToken persists the auth token
func (s *Store) SaveToken(token string) error {
	return s.set(tokenKey, token)
}

// Token returns the persisted auth token, empty when absent or unreadable
func (s *Store) Token() string {
	token, _ := s.get(tokenKey)
	return token
}

// RemoveToken clears the token and the user in one transaction
func (s *Store) RemoveToken() error {
	return s.remove(tokenKey, userKey)
}

// SaveUser persists the user record as JSON
func (s *Store) SaveUser(user *schemas.User) error {
	data, err := marshal(user)
	if err != nil {
		return errors.HandleStorageError("marshal user", err)
	}
	return s.set(userKey, data)
}

// User returns the persisted user record, nil when absent or unreadable
func (s *Store) User() *schemas.User {
	data, ok := s.get(userKey)
	if !ok {
		return nil
	}
	var user schemas.User
	if err := unmarshal(data, &user); err != nil {
		errors.HandleStorageError("unmarshal user", err)
		return nil
	}
	return &user
}

// IsAuthenticated reports whether a non-empty token is persisted; it does
// not validate token freshness against the server
func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}
