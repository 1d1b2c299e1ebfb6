package store

import (
	"encoding/json"
	"sync"

	"github.com/SscSPs/bizdash/internal/core/domain"
)

type cloner[S any] interface {
	Clone() S
}

// Store serialises every transition of a state S through its reducer and
// hands out snapshots. Reducers run under the store lock, so concurrent
// dispatches from fan-out goroutines are applied one at a time.
type Store[S cloner[S], T Entity] struct {
	mu     sync.Mutex
	state  S
	reduce func(S, Action[T]) S

	// latest fetch-one sequence per id
	seq  map[domain.ID]uint64
	next uint64

	listeners []func(S)
}

// NewStore creates a store with an initial state and reducer.
func NewStore[S cloner[S], T Entity](initial S, reduce func(S, Action[T]) S) *Store[S, T] {
	return &Store[S, T]{
		state:  initial,
		reduce: reduce,
		seq:    make(map[domain.ID]uint64),
	}
}

// Dispatch applies a and returns a snapshot of the resulting state. Fetch-one
// results and failures whose sequence is not the latest issued for their id
// are dropped without changing the state, so Loading stays set until the
// latest fetch lands.
func (s *Store[S, T]) Dispatch(a Action[T]) S {
	s.mu.Lock()
	if a.Seq != 0 && (a.Kind == FetchOneFulfilled || a.Kind == Rejected) && s.seq[a.ID] != a.Seq {
		snap := s.state.Clone()
		s.mu.Unlock()
		return snap
	}
	s.state = s.reduce(s.state, a)
	snap := s.state.Clone()
	listeners := append([]func(S){}, s.listeners...)
	s.mu.Unlock()

	for _, l := range listeners {
		l(snap.Clone())
	}
	return snap
}

// Apply dispatches a and drops the resulting snapshot.
func (s *Store[S, T]) Apply(a Action[T]) { s.Dispatch(a) }

// BeginFetchOne reserves the next sequence number for id. Only the result
// tagged with the most recent number for an id is applied.
func (s *Store[S, T]) BeginFetchOne(id domain.ID) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	s.seq[id] = s.next
	return s.next
}

// Snapshot returns a copy of the current state.
func (s *Store[S, T]) Snapshot() S {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Subscribe registers fn to receive a snapshot after every dispatch.
func (s *Store[S, T]) Subscribe(fn func(S)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// MarshalJSON encodes the current snapshot.
func (s *Store[S, T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Snapshot())
}

// EntityStore is the plain list cache used by businesses, clients, admins,
// payments, questions and documents.
type EntityStore[T Entity] struct {
	*Store[Slice[T], T]
}

// New creates an empty EntityStore.
func New[T Entity]() *EntityStore[T] {
	return &EntityStore[T]{Store: NewStore(Slice[T]{Items: []T{}}, Reduce[T])}
}
