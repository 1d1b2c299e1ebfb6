package store_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/SscSPs/bizdash/internal/apperrors"
	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/SscSPs/bizdash/internal/core/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payment(id domain.ID, amount string) domain.Payment {
	return domain.Payment{ID: id, BusinessID: 1, AmountPaid: decimal.RequireFromString(amount), PaymentMethod: domain.PaymentCash}
}

func ids[T store.Entity](items []T) []domain.ID {
	out := make([]domain.ID, len(items))
	for i, it := range items {
		out[i] = it.GetID()
	}
	return out
}

func TestReduce_FetchAllReplacesList(t *testing.T) {
	s := store.New[domain.Payment]()
	s.Dispatch(store.FetchedAll([]domain.Payment{payment(1, "1"), payment(2, "2")}))

	s.Dispatch(store.Begin[domain.Payment]())
	assert.True(t, s.Snapshot().Loading)

	state := s.Dispatch(store.FetchedAll([]domain.Payment{payment(3, "3"), payment(1, "1")}))
	assert.Equal(t, []domain.ID{3, 1}, ids(state.Items))
	assert.False(t, state.Loading)
}

func TestReduce_CreatePrepends(t *testing.T) {
	s := store.New[domain.Payment]()
	s.Dispatch(store.FetchedAll([]domain.Payment{payment(1, "1"), payment(2, "2")}))

	state := s.Dispatch(store.Created(payment(9, "9")))
	assert.Equal(t, []domain.ID{9, 1, 2}, ids(state.Items))
}

func TestReduce_UpdateTouchesOnlyMatchingRecord(t *testing.T) {
	before := store.Slice[domain.Payment]{Items: []domain.Payment{payment(1, "1"), payment(2, "2"), payment(3, "3")}}
	cur := payment(2, "2")
	before.Current = &cur

	after := store.Reduce(before, store.Updated(payment(2, "20")))

	require.Len(t, after.Items, 3)
	assert.Equal(t, before.Items[0], after.Items[0])
	assert.Equal(t, before.Items[2], after.Items[2])
	assert.True(t, decimal.RequireFromString("20").Equal(after.Items[1].AmountPaid))
	assert.True(t, decimal.RequireFromString("20").Equal(after.Current.AmountPaid))
	// input untouched
	assert.True(t, decimal.RequireFromString("2").Equal(before.Items[1].AmountPaid))
	assert.True(t, decimal.RequireFromString("2").Equal(before.Current.AmountPaid))
}

func TestReduce_DeleteRemovesExactlyOne(t *testing.T) {
	s := store.New[domain.Payment]()
	s.Dispatch(store.FetchedAll([]domain.Payment{payment(1, "1"), payment(2, "2")}))
	s.Dispatch(store.FetchedOne(payment(2, "2"), 0))

	state := s.Dispatch(store.Deleted[domain.Payment](2))
	assert.Equal(t, []domain.ID{1}, ids(state.Items))
	assert.Nil(t, state.Current)
}

func TestReduce_DeleteUnknownIDIsNoop(t *testing.T) {
	s := store.New[domain.Payment]()
	s.Dispatch(store.FetchedAll([]domain.Payment{payment(1, "1"), payment(2, "2")}))
	before := s.Snapshot()

	state := s.Dispatch(store.Deleted[domain.Payment](42))
	assert.Equal(t, before.Items, state.Items)
}

func TestReduce_RejectedKeepsRawPayload(t *testing.T) {
	s := store.New[domain.Client]()
	s.Dispatch(store.Begin[domain.Client]())
	re := apperrors.NewRemoteError(http.StatusBadRequest, []byte(`{"email":["bad"]}`))

	state := s.Dispatch(store.Failed[domain.Client](re))
	assert.False(t, state.Loading)
	require.NotNil(t, state.Error)
	assert.Equal(t, map[string]any{"email": []any{"bad"}}, state.Error.Payload)

	state = s.Dispatch(store.Failed[domain.Client](errors.New("dial tcp: refused")))
	assert.Equal(t, "dial tcp: refused", state.Error.Payload)

	state = s.Dispatch(store.Begin[domain.Client]())
	assert.Nil(t, state.Error)
}

func TestStore_StaleFetchOneDiscarded(t *testing.T) {
	s := store.New[domain.Business]()
	first := s.BeginFetchOne(5)
	second := s.BeginFetchOne(5)
	s.Dispatch(store.Begin[domain.Business]())

	// newer response lands first, the older one must not overwrite it
	s.Dispatch(store.FetchedOne(domain.Business{ID: 5, NameEn: "new"}, second))
	s.Dispatch(store.Begin[domain.Business]())
	state := s.Dispatch(store.FetchedOne(domain.Business{ID: 5, NameEn: "old"}, first))

	require.NotNil(t, state.Current)
	assert.Equal(t, "new", state.Current.NameEn)
	assert.True(t, state.Loading)
}

func TestStore_StaleFetchOneKeepsLoading(t *testing.T) {
	s := store.New[domain.Business]()
	first := s.BeginFetchOne(5)
	s.Dispatch(store.Begin[domain.Business]())
	second := s.BeginFetchOne(5)
	s.Dispatch(store.Begin[domain.Business]())

	state := s.Dispatch(store.FetchedOne(domain.Business{ID: 5, NameEn: "old"}, first))
	assert.True(t, state.Loading, "superseded result must not end the newer fetch")
	assert.Nil(t, state.Current)

	failed := store.Failed[domain.Business](errors.New("timeout"))
	failed.ID, failed.Seq = 5, first
	state = s.Dispatch(failed)
	assert.True(t, state.Loading)
	assert.Nil(t, state.Error)

	state = s.Dispatch(store.FetchedOne(domain.Business{ID: 5, NameEn: "new"}, second))
	assert.False(t, state.Loading)
	require.NotNil(t, state.Current)
	assert.Equal(t, "new", state.Current.NameEn)
}

func TestStore_DifferentIDsDoNotInterfere(t *testing.T) {
	s := store.New[domain.Business]()
	a := s.BeginFetchOne(1)
	b := s.BeginFetchOne(2)

	s.Dispatch(store.FetchedOne(domain.Business{ID: 2}, b))
	state := s.Dispatch(store.FetchedOne(domain.Business{ID: 1}, a))
	assert.EqualValues(t, 1, state.Current.ID)
}

func TestStore_SnapshotIsIsolated(t *testing.T) {
	s := store.New[domain.Payment]()
	s.Dispatch(store.FetchedAll([]domain.Payment{payment(1, "1")}))

	snap := s.Snapshot()
	snap.Items[0].Note = "mutated"
	assert.Empty(t, s.Snapshot().Items[0].Note)
}

func TestStore_ConcurrentCreates(t *testing.T) {
	s := store.New[domain.Client]()
	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(id domain.ID) {
			defer wg.Done()
			s.Dispatch(store.Created(domain.Client{ID: id}))
		}(domain.ID(i))
	}
	wg.Wait()
	assert.Len(t, s.Snapshot().Items, 50)
}

func TestStore_MarshalJSONAndSubscribe(t *testing.T) {
	s := store.New[domain.Client]()
	var seen []int
	s.Subscribe(func(st store.Slice[domain.Client]) { seen = append(seen, len(st.Items)) })

	s.Dispatch(store.Created(domain.Client{ID: 1, Name: "A"}))
	s.Dispatch(store.Created(domain.Client{ID: 2, Name: "B"}))
	assert.Equal(t, []int{1, 2}, seen)

	body, err := json.Marshal(s)
	require.NoError(t, err)
	var decoded store.Slice[domain.Client]
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, []domain.ID{2, 1}, ids(decoded.Items))
}

func TestAnswerStore_KeepsIndexInStep(t *testing.T) {
	text := func(s string) *string { return &s }
	s := store.NewAnswerStore()

	s.Dispatch(store.FetchedAll([]domain.KnowledgeAnswer{
		{ID: 10, QuestionID: 1, AnswerText: text("a")},
		{ID: 11, QuestionID: 2, AnswerText: text("b")},
	}))
	state := s.Dispatch(store.Updated(domain.KnowledgeAnswer{ID: 10, QuestionID: 1, AnswerText: text("a2")}))
	assert.Equal(t, "a2", *state.ByQuestion[1].AnswerText)
	assert.Equal(t, "a2", *state.Items[0].AnswerText)

	state = s.Dispatch(store.Created(domain.KnowledgeAnswer{ID: 12, QuestionID: 3, AnswerText: text("c")}))
	assert.Len(t, state.ByQuestion, 3)

	state = s.Dispatch(store.Deleted[domain.KnowledgeAnswer](11))
	_, ok := state.ByQuestion[2]
	assert.False(t, ok)
	assert.Equal(t, []domain.ID{12, 10}, ids(state.Items))

	state = s.Dispatch(store.Deleted[domain.KnowledgeAnswer](99))
	assert.Len(t, state.ByQuestion, 2)
}

func TestKnowledgeStore_Snapshot(t *testing.T) {
	k := store.NewKnowledgeStore()
	k.Questions.Dispatch(store.FetchedAll([]domain.KnowledgeQuestion{{ID: 1, LabelEn: "Q"}}))
	k.Documents.Dispatch(store.Created(domain.KnowledgeDocument{ID: 4, Title: "a.pdf"}))

	snap := k.Snapshot()
	assert.Len(t, snap.Questions.Items, 1)
	assert.Len(t, snap.Documents.Items, 1)
	assert.Empty(t, snap.Answers.Items)
}
