package queries

// SessionState is the navigation target decided at app start
type SessionState int

// Session states
const (
	Unauthenticated SessionState = iota
	Authenticated
)

// Bootstrap runs once at application start: it reads device storage and,
// when both token and user are present, seeds the session cache so the
// UI renders authenticated state before any network round-trip. Storage
// failures degrade to Unauthenticated; Bootstrap never fails.
func (q *Queries) Bootstrap() SessionState {
	token := q.storage.Token()
	if token == "" {
		return Unauthenticated
	}

	user := q.storage.User()
	if user == nil {
		// a token without a user would show stale identity; force re-login
		return Unauthenticated
	}

	q.store.Set(SessionKey(), sessionOptions(), user)
	return Authenticated
}

// IsAuthenticated reports whether a token is persisted locally
func (q *Queries) IsAuthenticated() bool {
	return q.storage.IsAuthenticated()
}
