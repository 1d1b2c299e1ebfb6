package repositories

import (
	"context"

	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/SscSPs/bizdash/internal/dto"
)

// KnowledgeQuestionReader reads the platform-defined questions.
type KnowledgeQuestionReader interface {
	ListQuestions(ctx context.Context, params dto.ListParams) ([]domain.KnowledgeQuestion, error)
	FindQuestionByID(ctx context.Context, id domain.ID) (domain.KnowledgeQuestion, error)
}

// KnowledgeAnswerRepository reads and writes business answers.
type KnowledgeAnswerRepository interface {
	ListAnswers(ctx context.Context, params dto.ListParams) ([]domain.KnowledgeAnswer, error)
	FindAnswerByID(ctx context.Context, id domain.ID) (domain.KnowledgeAnswer, error)
	UpdateAnswer(ctx context.Context, id domain.ID, patch domain.AnswerPatch) (domain.KnowledgeAnswer, error)
	DeleteAnswer(ctx context.Context, id domain.ID) error
	// BulkCreateAnswers creates several answers for businessID in one request.
	BulkCreateAnswers(ctx context.Context, businessID domain.ID, answers []domain.AnswerInput) ([]domain.KnowledgeAnswer, error)
}

// KnowledgeDocumentRepository lists and uploads knowledge documents.
type KnowledgeDocumentRepository interface {
	ListDocuments(ctx context.Context, params dto.ListParams) ([]domain.KnowledgeDocument, error)
	// UploadDocuments sends files as one multipart request. businessID zero omits the business field.
	UploadDocuments(ctx context.Context, businessID domain.ID, files []domain.UploadFile) ([]domain.KnowledgeDocument, error)
}

// KnowledgeRepositoryFacade combines all knowledge-related repository interfaces
type KnowledgeRepositoryFacade interface {
	KnowledgeQuestionReader
	KnowledgeAnswerRepository
	KnowledgeDocumentRepository
}
