// Package session remembers the last generation request.
//
// A [Session] holds the most recent problem statement and system type so
// the next run can start from them ("Loaded last request"). It is the only
// state proofgen keeps between runs.
//
// # Backends
//
//   - [FileStore]: JSON files under ~/.config/proofgen/sessions/ (CLI default)
//   - [RedisStore]: Redis keys, for serve deployments
//   - [MongoStore]: one document per key in a "sessions" collection
//   - [MemoryStore]: process memory, for tests
//
// # Usage
//
//	store, err := session.NewFileStore("")
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	_ = session.SaveLast(ctx, store, "DAO treasury", "Votes stall for weeks")
//	last, err := session.LoadLast(ctx, store)
//	if last != nil {
//	    fmt.Println(last.Problem)
//	}
package session

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"
)

// LastKey is the key under which the most recent request is stored.
const LastKey = "last"

// LoadedMessage is shown when a saved request is restored.
const LoadedMessage = "Loaded last request"

// ErrInvalidKey is returned for keys that are not safe file names.
var ErrInvalidKey = errors.New("invalid session key")

// Session is a saved request.
type Session struct {
	Problem    string    `json:"problem" bson:"problem"`
	SystemType string    `json:"system_type" bson:"system_type"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`
}

// IsEmpty reports whether s carries no problem statement.
func (s *Session) IsEmpty() bool {
	return s == nil || strings.TrimSpace(s.Problem) == ""
}

// Store persists sessions by key.
type Store interface {
	// Get returns the session under key, or nil, nil when there is none.
	Get(ctx context.Context, key string) (*Session, error)

	// Set stores sess under key, replacing any previous value.
	Set(ctx context.Context, key string, sess *Session) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

var keyPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

// ValidateKey checks that key is 1-64 characters of [a-zA-Z0-9_-].
func ValidateKey(key string) error {
	if !keyPattern.MatchString(key) {
		return ErrInvalidKey
	}
	return nil
}

// SaveLast stores a request under [LastKey]. Both values are trimmed.
func SaveLast(ctx context.Context, store Store, systemType, problem string) error {
	return store.Set(ctx, LastKey, &Session{
		Problem:    strings.TrimSpace(problem),
		SystemType: strings.TrimSpace(systemType),
		UpdatedAt:  time.Now().UTC(),
	})
}

// LoadLast returns the last request, or nil when none was saved.
func LoadLast(ctx context.Context, store Store) (*Session, error) {
	sess, err := store.Get(ctx, LastKey)
	if err != nil || sess.IsEmpty() {
		return nil, err
	}
	return sess, nil
}

// ClearLast forgets the last request.
func ClearLast(ctx context.Context, store Store) error {
	return store.Delete(ctx, LastKey)
}
