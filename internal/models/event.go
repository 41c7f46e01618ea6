package models

// SessionEvent is broadcast on every session transition. Username is empty
// when Authenticated is false.
type SessionEvent struct {
	Authenticated bool
	Username      string
}
