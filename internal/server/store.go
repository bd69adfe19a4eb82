package server

import (
	"sync"

	"github.com/clinscribe/clinscribe/internal/pipeline"
)

// Store keeps recent consultation results in memory for retrieval and
// export. When the capacity is reached the oldest result is evicted.
type Store struct {
	mu       sync.Mutex
	capacity int
	order    []string
	results  map[string]*pipeline.Result
}

// NewStore creates a Store holding up to capacity results.
func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = 100
	}
	return &Store{
		capacity: capacity,
		results:  make(map[string]*pipeline.Result),
	}
}

// Put inserts or replaces a result.
func (s *Store) Put(result *pipeline.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.results[result.ID]; !exists {
		s.order = append(s.order, result.ID)
	}
	s.results[result.ID] = result

	for len(s.order) > s.capacity {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.results, oldest)
	}
}

// Get returns the result with the given id.
func (s *Store) Get(id string) (*pipeline.Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, ok := s.results[id]
	return result, ok
}

// Len reports how many results are held.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.results)
}
