package store

import "github.com/SscSPs/bizdash/internal/core/domain"

// AnswerState caches knowledge answers both as a flat list and keyed by
// question, which is how the answer forms look them up.
type AnswerState struct {
	Slice[domain.KnowledgeAnswer]
	ByQuestion map[domain.ID]domain.KnowledgeAnswer `json:"byQuestion"`
}

// Clone implements cloner.
func (s AnswerState) Clone() AnswerState {
	out := AnswerState{Slice: s.Slice.Clone(), ByQuestion: make(map[domain.ID]domain.KnowledgeAnswer, len(s.ByQuestion))}
	for k, v := range s.ByQuestion {
		out.ByQuestion[k] = v
	}
	return out
}

// ReduceAnswers applies a to the list through Reduce and keeps ByQuestion in step.
func ReduceAnswers(s AnswerState, a Action[domain.KnowledgeAnswer]) AnswerState {
	prev := s.ByQuestion
	next := AnswerState{Slice: Reduce(s.Slice, a)}

	switch a.Kind {
	case FetchAllFulfilled:
		next.ByQuestion = make(map[domain.ID]domain.KnowledgeAnswer, len(a.Items))
		for _, ans := range a.Items {
			next.ByQuestion[ans.QuestionID] = ans
		}
		return next
	case FetchOneFulfilled, CreateFulfilled, UpdateFulfilled:
		next.ByQuestion = copyAnswers(prev)
		next.ByQuestion[a.Item.QuestionID] = a.Item
		return next
	case DeleteFulfilled:
		next.ByQuestion = copyAnswers(prev)
		for q, ans := range next.ByQuestion {
			if ans.ID == a.ID {
				delete(next.ByQuestion, q)
			}
		}
		return next
	}
	next.ByQuestion = prev
	return next
}

func copyAnswers(m map[domain.ID]domain.KnowledgeAnswer) map[domain.ID]domain.KnowledgeAnswer {
	out := make(map[domain.ID]domain.KnowledgeAnswer, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}

// AnswerStore caches knowledge answers.
type AnswerStore struct {
	*Store[AnswerState, domain.KnowledgeAnswer]
}

// NewAnswerStore creates an empty AnswerStore.
func NewAnswerStore() *AnswerStore {
	initial := AnswerState{
		Slice:      Slice[domain.KnowledgeAnswer]{Items: []domain.KnowledgeAnswer{}},
		ByQuestion: map[domain.ID]domain.KnowledgeAnswer{},
	}
	return &AnswerStore{Store: NewStore(initial, ReduceAnswers)}
}

// KnowledgeStore groups the knowledge base caches.
type KnowledgeStore struct {
	Questions *EntityStore[domain.KnowledgeQuestion]
	Answers   *AnswerStore
	Documents *EntityStore[domain.KnowledgeDocument]
}

// NewKnowledgeStore creates empty knowledge caches.
func NewKnowledgeStore() *KnowledgeStore {
	return &KnowledgeStore{
		Questions: New[domain.KnowledgeQuestion](),
		Answers:   NewAnswerStore(),
		Documents: New[domain.KnowledgeDocument](),
	}
}

// KnowledgeState is a combined snapshot of the knowledge caches.
type KnowledgeState struct {
	Questions Slice[domain.KnowledgeQuestion] `json:"questions"`
	Answers   AnswerState                     `json:"answers"`
	Documents Slice[domain.KnowledgeDocument] `json:"documents"`
}

// Snapshot returns a combined copy of all knowledge caches.
func (k *KnowledgeStore) Snapshot() KnowledgeState {
	return KnowledgeState{
		Questions: k.Questions.Snapshot(),
		Answers:   k.Answers.Snapshot(),
		Documents: k.Documents.Snapshot(),
	}
}
