package session

import (
	"container/list"
	"context"
	"sync"
	"sync/atomic"
)

// Store keeps sessions in memory by id.
type Store interface {
	// GetOrCreate returns the session for id, creating it when unknown.
	// created reports whether a new session was made.
	GetOrCreate(ctx context.Context, id string) (s *Session, created bool)

	// Get returns the session for id without creating one.
	Get(ctx context.Context, id string) (*Session, bool)

	Size() int64
}

// inMemoryStore implements Store with least-recently-used eviction.
// For bounded mode (maxSize > 0) the LRU list decides who goes first.
// For unbounded mode (maxSize <= 0) nothing is ever evicted.
type inMemoryStore struct {
	mu      sync.Mutex
	byID    map[string]*list.Element // id -> element holding *Session
	order   *list.List               // front = most recently used
	maxSize int
	size    atomic.Int64

	onCreate func(*Session)
	onEvict  func(*Session)
}

// NewInMemoryStore creates a new in-memory session store.
func NewInMemoryStore(opts ...Option) Store {
	s := &inMemoryStore{
		maxSize: 10_000,
		byID:    make(map[string]*list.Element),
		order:   list.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *inMemoryStore) GetOrCreate(ctx context.Context, id string) (*Session, bool) {
	if sess, ok := s.Get(ctx, id); ok {
		return sess, false
	}

	// Build and seed outside the lock so a session is never visible half-initialized.
	fresh := New(id)
	if s.onCreate != nil {
		s.onCreate(fresh)
	}

	s.mu.Lock()
	if el, ok := s.byID[id]; ok {
		// Lost the race to another request for the same id.
		s.order.MoveToFront(el)
		s.mu.Unlock()
		return el.Value.(*Session), false
	}
	var evicted *Session
	if s.maxSize > 0 && len(s.byID) >= s.maxSize {
		evicted = s.evictOldest()
	}
	s.byID[id] = s.order.PushFront(fresh)
	s.size.Add(1)
	s.mu.Unlock()

	if evicted != nil && s.onEvict != nil {
		s.onEvict(evicted)
	}
	return fresh, true
}

func (s *inMemoryStore) Get(_ context.Context, id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	el, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	s.order.MoveToFront(el)
	return el.Value.(*Session), true
}

// evictOldest drops the least recently used session. Must be called with s.mu held.
func (s *inMemoryStore) evictOldest() *Session {
	el := s.order.Back()
	if el == nil {
		return nil
	}
	sess := el.Value.(*Session)
	s.order.Remove(el)
	delete(s.byID, sess.ID())
	s.size.Add(-1)
	return sess
}

// Size returns the current number of sessions.
func (s *inMemoryStore) Size() int64 {
	return s.size.Load()
}
