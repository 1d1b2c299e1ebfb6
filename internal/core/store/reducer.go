package store

import (
	"errors"

	"github.com/SscSPs/bizdash/internal/apperrors"
	"github.com/SscSPs/bizdash/internal/core/domain"
)

// Entity is any cached record addressed by a server-assigned ID.
type Entity interface {
	GetID() domain.ID
}

// Slice is the cached state of one entity type.
type Slice[T Entity] struct {
	Items   []T                    `json:"items"`
	Current *T                     `json:"current,omitempty"`
	Loading bool                   `json:"loading"`
	Error   *apperrors.RemoteError `json:"error,omitempty"`
}

// Clone returns a copy that shares no mutable memory with s.
func (s Slice[T]) Clone() Slice[T] {
	out := s
	out.Items = append(make([]T, 0, len(s.Items)), s.Items...)
	if s.Current != nil {
		cur := *s.Current
		out.Current = &cur
	}
	return out
}

// Find returns the cached record with id.
func (s Slice[T]) Find(id domain.ID) (T, bool) {
	for _, item := range s.Items {
		if item.GetID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Kind enumerates the action phases a store reacts to.
type Kind int

const (
	Pending Kind = iota
	FetchAllFulfilled
	FetchOneFulfilled
	CreateFulfilled
	UpdateFulfilled
	DeleteFulfilled
	Rejected
	// Settled ends a pending phase without touching the cache, e.g. for a
	// create whose response carried no id.
	Settled
)

func (k Kind) String() string {
	switch k {
	case Pending:
		return "pending"
	case FetchAllFulfilled:
		return "fetch_all_fulfilled"
	case FetchOneFulfilled:
		return "fetch_one_fulfilled"
	case CreateFulfilled:
		return "create_fulfilled"
	case UpdateFulfilled:
		return "update_fulfilled"
	case DeleteFulfilled:
		return "delete_fulfilled"
	case Rejected:
		return "rejected"
	case Settled:
		return "settled"
	}
	return "unknown"
}

// Action is a single state transition request.
type Action[T Entity] struct {
	Kind  Kind
	Items []T
	Item  T
	ID    domain.ID
	// Seq tags fetch-one results; see Store.BeginFetchOne.
	Seq uint64
	Err *apperrors.RemoteError
}

func Begin[T Entity]() Action[T] { return Action[T]{Kind: Pending} }

func FetchedAll[T Entity](items []T) Action[T] {
	return Action[T]{Kind: FetchAllFulfilled, Items: items}
}

func FetchedOne[T Entity](item T, seq uint64) Action[T] {
	return Action[T]{Kind: FetchOneFulfilled, Item: item, ID: item.GetID(), Seq: seq}
}

func Created[T Entity](item T) Action[T] {
	return Action[T]{Kind: CreateFulfilled, Item: item, ID: item.GetID()}
}

func Updated[T Entity](item T) Action[T] {
	return Action[T]{Kind: UpdateFulfilled, Item: item, ID: item.GetID()}
}

func Deleted[T Entity](id domain.ID) Action[T] {
	return Action[T]{Kind: DeleteFulfilled, ID: id}
}

func Settle[T Entity]() Action[T] { return Action[T]{Kind: Settled} }

// Failed builds a Rejected action. Errors that are not remote errors are
// carried as a payload-only RemoteError so the state shape stays uniform.
func Failed[T Entity](err error) Action[T] {
	re, ok := apperrors.AsRemote(err)
	if !ok {
		var ve *apperrors.ValidationError
		if errors.As(err, &ve) {
			re = &apperrors.RemoteError{Payload: map[string]any{ve.Field: []any{ve.Reason}}}
		} else {
			re = apperrors.NewTransportError(err)
		}
	}
	return Action[T]{Kind: Rejected, Err: re}
}

// Reduce computes the next state. It never mutates s: every change allocates
// a fresh Items slice.
func Reduce[T Entity](s Slice[T], a Action[T]) Slice[T] {
	switch a.Kind {
	case Pending:
		s.Loading = true
		s.Error = nil
	case FetchAllFulfilled:
		s.Items = append(make([]T, 0, len(a.Items)), a.Items...)
		s.Loading = false
	case FetchOneFulfilled:
		item := a.Item
		s.Current = &item
		s.Loading = false
	case CreateFulfilled:
		items := make([]T, 0, len(s.Items)+1)
		items = append(items, a.Item)
		s.Items = append(items, s.Items...)
		s.Loading = false
	case UpdateFulfilled:
		items := make([]T, len(s.Items))
		for i, item := range s.Items {
			if item.GetID() == a.ID {
				items[i] = a.Item
				continue
			}
			items[i] = item
		}
		s.Items = items
		if s.Current != nil && (*s.Current).GetID() == a.ID {
			item := a.Item
			s.Current = &item
		}
		s.Loading = false
	case DeleteFulfilled:
		items := make([]T, 0, len(s.Items))
		for _, item := range s.Items {
			if item.GetID() != a.ID {
				items = append(items, item)
			}
		}
		s.Items = items
		if s.Current != nil && (*s.Current).GetID() == a.ID {
			s.Current = nil
		}
		s.Loading = false
	case Rejected:
		s.Loading = false
		s.Error = a.Err
	case Settled:
		s.Loading = false
	}
	return s
}
