package evaluation

import "time"

// Option applies a configuration option to the Store.
type Option func(*Store)

// WithClock sets the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator sets the id source. Defaults to random UUIDs.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		if newID != nil {
			s.newID = newID
		}
	}
}
