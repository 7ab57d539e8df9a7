package repository

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithClubs registers club identifiers up front. The free-agent sentinel
// is always registered.
func WithClubs(clubIDs ...int) Option {
	return func(s *MemStore) {
		for _, id := range clubIDs {
			s.clubs[id] = struct{}{}
		}
	}
}

// WithCapacity sizes the internal player map for an expected population.
func WithCapacity(n int) Option {
	return func(s *MemStore) {
		if n > 0 {
			s.initialCapacity = n
		}
	}
}
