package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/bizdash/internal/apperrors"
	"github.com/SscSPs/bizdash/internal/core/domain"
	portsrepo "github.com/SscSPs/bizdash/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizdash/internal/core/ports/services"
	"github.com/SscSPs/bizdash/internal/core/store"
	"github.com/SscSPs/bizdash/internal/dto"
	"go.uber.org/zap"
)

// DefaultQuestionOrdering is applied when a question listing names no ordering.
const DefaultQuestionOrdering = "order_index"

// KnowledgeService caches knowledge questions, answers and documents.
type KnowledgeService struct {
	BaseService
	repo  portsrepo.KnowledgeRepositoryFacade
	store *store.KnowledgeStore
}

func NewKnowledgeService(repo portsrepo.KnowledgeRepositoryFacade) *KnowledgeService {
	return &KnowledgeService{repo: repo, store: store.NewKnowledgeStore()}
}

var _ portssvc.KnowledgeSvcFacade = (*KnowledgeService)(nil)

func (s *KnowledgeService) FetchQuestions(ctx context.Context, params dto.ListParams) ([]domain.KnowledgeQuestion, error) {
	if params.Ordering == "" {
		params.Ordering = DefaultQuestionOrdering
	}
	return runFetchAll(ctx, s.store.Questions, "knowledge questions", func(ctx context.Context) ([]domain.KnowledgeQuestion, error) {
		return s.repo.ListQuestions(ctx, params)
	})
}

func (s *KnowledgeService) FetchQuestion(ctx context.Context, id domain.ID) (domain.KnowledgeQuestion, error) {
	return runFetchOne(ctx, s.store.Questions, "knowledge question", id, func(ctx context.Context) (domain.KnowledgeQuestion, error) {
		return s.repo.FindQuestionByID(ctx, id)
	})
}

func (s *KnowledgeService) FetchAnswers(ctx context.Context, params dto.ListParams) ([]domain.KnowledgeAnswer, error) {
	return runFetchAll(ctx, s.store.Answers, "knowledge answers", func(ctx context.Context) ([]domain.KnowledgeAnswer, error) {
		return s.repo.ListAnswers(ctx, params)
	})
}

// FetchAnswer also files the answer under its question.
func (s *KnowledgeService) FetchAnswer(ctx context.Context, id domain.ID) (domain.KnowledgeAnswer, error) {
	return runFetchOne(ctx, s.store.Answers, "knowledge answer", id, func(ctx context.Context) (domain.KnowledgeAnswer, error) {
		return s.repo.FindAnswerByID(ctx, id)
	})
}

func (s *KnowledgeService) UpdateAnswer(ctx context.Context, id domain.ID, patch domain.AnswerPatch) (domain.KnowledgeAnswer, error) {
	return runUpdate(ctx, s.store.Answers, "knowledge answer", id, patch, func(ctx context.Context) (domain.KnowledgeAnswer, error) {
		updated, err := s.repo.UpdateAnswer(ctx, id, patch)
		if err != nil || updated.ID != 0 {
			return updated, err
		}
		a, ok := s.store.Answers.Snapshot().Find(id)
		if !ok {
			a = domain.KnowledgeAnswer{ID: id}
		}
		if patch.Text != nil {
			a.AnswerText = patch.Text
		}
		if patch.Boolean != nil {
			a.AnswerBoolean = patch.Boolean
		}
		return a, nil
	})
}

func (s *KnowledgeService) DeleteAnswer(ctx context.Context, id domain.ID) error {
	return runDelete[domain.KnowledgeAnswer](ctx, s.store.Answers, "knowledge answer", id, func(ctx context.Context) error {
		return s.repo.DeleteAnswer(ctx, id)
	})
}

// BulkCreateAnswers creates every answer in one request and caches the results.
func (s *KnowledgeService) BulkCreateAnswers(ctx context.Context, businessID domain.ID, answers []domain.AnswerInput) ([]domain.KnowledgeAnswer, error) {
	st := s.store.Answers
	if err := requireBusiness(businessID); err != nil {
		return nil, err
	}
	if len(answers) == 0 {
		return []domain.KnowledgeAnswer{}, nil
	}
	st.Apply(store.Begin[domain.KnowledgeAnswer]())
	created, err := s.repo.BulkCreateAnswers(ctx, businessID, answers)
	if err != nil {
		st.Apply(store.Failed[domain.KnowledgeAnswer](err))
		s.LogError(ctx, err, "Failed to create knowledge answers", zap.Int64("business_id", int64(businessID)))
		return nil, fmt.Errorf("failed to create knowledge answers: %w", err)
	}
	for _, a := range created {
		st.Apply(store.Created(a))
	}
	st.Apply(store.Settle[domain.KnowledgeAnswer]())
	s.LogDebug(ctx, "Created knowledge answers", zap.Int("count", len(created)))
	return created, nil
}

func (s *KnowledgeService) FetchDocuments(ctx context.Context, params dto.ListParams) ([]domain.KnowledgeDocument, error) {
	return runFetchAll(ctx, s.store.Documents, "knowledge documents", func(ctx context.Context) ([]domain.KnowledgeDocument, error) {
		return s.repo.ListDocuments(ctx, params)
	})
}

// UploadDocuments sends all files in one multipart request.
func (s *KnowledgeService) UploadDocuments(ctx context.Context, businessID domain.ID, files []domain.UploadFile) ([]domain.KnowledgeDocument, error) {
	st := s.store.Documents
	if len(files) == 0 {
		return nil, apperrors.NewValidationError("files", "at least one file is required")
	}
	st.Apply(store.Begin[domain.KnowledgeDocument]())
	docs, err := s.repo.UploadDocuments(ctx, businessID, files)
	if err != nil {
		st.Apply(store.Failed[domain.KnowledgeDocument](err))
		s.LogError(ctx, err, "Failed to upload knowledge documents", zap.Int("files", len(files)))
		return nil, fmt.Errorf("failed to upload knowledge documents: %w", err)
	}
	for _, d := range docs {
		if d.ID != 0 {
			st.Apply(store.Created(d))
		}
	}
	st.Apply(store.Settle[domain.KnowledgeDocument]())
	s.LogDebug(ctx, "Uploaded knowledge documents", zap.Int("count", len(docs)))
	return docs, nil
}

func (s *KnowledgeService) KnowledgeState() store.KnowledgeState {
	return s.store.Snapshot()
}

func requireBusiness(id domain.ID) error {
	if id == 0 {
		return apperrors.NewValidationError("business", "is required")
	}
	return nil
}
