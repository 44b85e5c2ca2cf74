// Package evaluation keeps the in-memory list of saved place evaluations.
package evaluation

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// TimestampLayout renders timestamps like "Oct 16, 2026, 02:05 PM".
const TimestampLayout = "Jan 2, 2006, 03:04 PM"

// Evaluation is one saved pair of dial characteristics for a place.
type Evaluation struct {
	ID                  string    `json:"id"`
	PlaceName           string    `json:"placeName"`
	OuterCharacteristic string    `json:"outerCharacteristic"`
	InnerCharacteristic string    `json:"innerCharacteristic"`
	Timestamp           time.Time `json:"timestamp"`
}

// Summary returns "outer • inner".
func (e Evaluation) Summary() string {
	return e.OuterCharacteristic + " • " + e.InnerCharacteristic
}

// FormatTimestamp renders t in the local zone using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.Local().Format(TimestampLayout)
}

// Store holds evaluations newest first. Safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	items []Evaluation
	now   func() time.Time
	newID func() string
}

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save records a new evaluation at the front of the list. The place name is
// trimmed; an empty name returns ErrEmptyPlaceName.
func (s *Store) Save(_ context.Context, placeName, outer, inner string) (Evaluation, error) {
	name := strings.TrimSpace(placeName)
	if name == "" {
		return Evaluation{}, ErrEmptyPlaceName
	}
	if outer == "" || inner == "" {
		return Evaluation{}, fmt.Errorf("%w: outer=%q inner=%q", ErrMissingCharacteristic, outer, inner)
	}

	e := Evaluation{
		ID:                  s.newID(),
		PlaceName:           name,
		OuterCharacteristic: outer,
		InnerCharacteristic: inner,
		Timestamp:           s.now().UTC(),
	}

	s.mu.Lock()
	s.items = append(s.items, Evaluation{})
	copy(s.items[1:], s.items)
	s.items[0] = e
	s.mu.Unlock()
	return e, nil
}

// Delete removes the evaluation with the given id.
func (s *Store) Delete(_ context.Context, id string) (Evaluation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.items {
		if e.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return e, nil
		}
	}
	return Evaluation{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Get returns the evaluation with the given id.
func (s *Store) Get(_ context.Context, id string) (Evaluation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.items {
		if e.ID == id {
			return e, nil
		}
	}
	return Evaluation{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// List returns a copy of all evaluations, newest first.
func (s *Store) List(_ context.Context) []Evaluation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Evaluation, len(s.items))
	copy(out, s.items)
	return out
}

// Count returns the number of stored evaluations.
func (s *Store) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
