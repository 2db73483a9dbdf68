//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -source=store.go -destination=mock_store.go -package=token

package token

// Store owns persisted tokens.
type Store interface {
	// Save persists tok, inserting it if the store does not know it yet.
	Save(tok *Token) error
	// Erase removes tok from the store.
	Erase(tok *Token) error
	// LockingSupported reports whether SetLocked can be used.
	LockingSupported() bool
	// SetLocked assigns the lock state and updates tok.Locked to what the store kept.
	SetLocked(tok *Token, locked bool) error
}
