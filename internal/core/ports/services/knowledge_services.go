package services

import (
	"context"

	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/SscSPs/bizdash/internal/core/store"
	"github.com/SscSPs/bizdash/internal/dto"
)

// KnowledgeReaderSvc defines read operations for the knowledge base
type KnowledgeReaderSvc interface {
	// FetchQuestions orders by order_index unless params say otherwise.
	FetchQuestions(ctx context.Context, params dto.ListParams) ([]domain.KnowledgeQuestion, error)
	FetchQuestion(ctx context.Context, id domain.ID) (domain.KnowledgeQuestion, error)
	FetchAnswers(ctx context.Context, params dto.ListParams) ([]domain.KnowledgeAnswer, error)
	FetchAnswer(ctx context.Context, id domain.ID) (domain.KnowledgeAnswer, error)
	FetchDocuments(ctx context.Context, params dto.ListParams) ([]domain.KnowledgeDocument, error)
	KnowledgeState() store.KnowledgeState
}

// KnowledgeWriterSvc defines write operations for the knowledge base
type KnowledgeWriterSvc interface {
	UpdateAnswer(ctx context.Context, id domain.ID, patch domain.AnswerPatch) (domain.KnowledgeAnswer, error)
	DeleteAnswer(ctx context.Context, id domain.ID) error
	BulkCreateAnswers(ctx context.Context, businessID domain.ID, answers []domain.AnswerInput) ([]domain.KnowledgeAnswer, error)
	UploadDocuments(ctx context.Context, businessID domain.ID, files []domain.UploadFile) ([]domain.KnowledgeDocument, error)
}

// KnowledgeSvcFacade combines all knowledge-related service interfaces
type KnowledgeSvcFacade interface {
	KnowledgeReaderSvc
	KnowledgeWriterSvc
}
