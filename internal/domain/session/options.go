package session

// Option applies a configuration option to the in-memory store.
type Option func(*inMemoryStore)

// WithMaxSize sets the maximum number of sessions to keep in memory.
// If maxSize > 0: bounded mode with least-recently-used eviction.
// If maxSize <= 0: unbounded mode.
func WithMaxSize(maxSize int) Option {
	return func(s *inMemoryStore) {
		s.maxSize = maxSize
	}
}

// WithOnCreate runs fn for every new session, e.g. to seed its leaderboard.
func WithOnCreate(fn func(*Session)) Option {
	return func(s *inMemoryStore) {
		s.onCreate = fn
	}
}

// WithOnEvict runs fn for every session dropped to make room.
func WithOnEvict(fn func(*Session)) Option {
	return func(s *inMemoryStore) {
		s.onEvict = fn
	}
}
