package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/SscSPs/bizdash/internal/core/ports/repositories"
	"github.com/SscSPs/bizdash/internal/dto"
	"github.com/SscSPs/bizdash/internal/utils/mapping"
)

const (
	questionsPath = "/api/dashboard/knowledge/questions/"
	answersPath   = "/api/dashboard/knowledge/answers/"
	documentsPath = "/api/dashboard/knowledge/documents/"
)

type KnowledgeRepository struct {
	client *Client
}

var _ repositories.KnowledgeRepositoryFacade = (*KnowledgeRepository)(nil)

func NewKnowledgeRepository(c *Client) *KnowledgeRepository {
	return &KnowledgeRepository{client: c}
}

func (r *KnowledgeRepository) ListQuestions(ctx context.Context, params dto.ListParams) ([]domain.KnowledgeQuestion, error) {
	raw, err := r.client.Do(ctx, http.MethodGet, questionsPath, params.Values("business"), nil)
	if err != nil {
		return nil, err
	}
	recs, err := decodeList[dto.QuestionRecord](raw)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainQuestionSlice(recs), nil
}

func (r *KnowledgeRepository) FindQuestionByID(ctx context.Context, id domain.ID) (domain.KnowledgeQuestion, error) {
	raw, err := r.client.Do(ctx, http.MethodGet, idPath(questionsPath, id), nil, nil)
	if err != nil {
		return domain.KnowledgeQuestion{}, err
	}
	rec, err := decode[dto.QuestionRecord](raw)
	if err != nil {
		return domain.KnowledgeQuestion{}, err
	}
	return mapping.ToDomainQuestion(rec), nil
}

func (r *KnowledgeRepository) ListAnswers(ctx context.Context, params dto.ListParams) ([]domain.KnowledgeAnswer, error) {
	raw, err := r.client.Do(ctx, http.MethodGet, answersPath, params.Values("business"), nil)
	if err != nil {
		return nil, err
	}
	recs, err := decodeList[dto.AnswerRecord](raw)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainAnswerSlice(recs), nil
}

func (r *KnowledgeRepository) FindAnswerByID(ctx context.Context, id domain.ID) (domain.KnowledgeAnswer, error) {
	raw, err := r.client.Do(ctx, http.MethodGet, idPath(answersPath, id), nil, nil)
	if err != nil {
		return domain.KnowledgeAnswer{}, err
	}
	rec, err := decode[dto.AnswerRecord](raw)
	if err != nil {
		return domain.KnowledgeAnswer{}, err
	}
	return mapping.ToDomainAnswer(rec), nil
}

func (r *KnowledgeRepository) UpdateAnswer(ctx context.Context, id domain.ID, patch domain.AnswerPatch) (domain.KnowledgeAnswer, error) {
	raw, err := r.client.Do(ctx, http.MethodPatch, idPath(answersPath, id), nil, mapping.ToUpdateAnswerRequest(patch))
	if err != nil {
		return domain.KnowledgeAnswer{}, err
	}
	return mapping.ToDomainAnswer(decodeLenient[dto.AnswerRecord](raw)), nil
}

func (r *KnowledgeRepository) DeleteAnswer(ctx context.Context, id domain.ID) error {
	_, err := r.client.Do(ctx, http.MethodDelete, idPath(answersPath, id), nil, nil)
	return err
}

// BulkCreateAnswers accepts either the created list or a single record back.
func (r *KnowledgeRepository) BulkCreateAnswers(ctx context.Context, businessID domain.ID, answers []domain.AnswerInput) ([]domain.KnowledgeAnswer, error) {
	raw, err := r.client.Do(ctx, http.MethodPost, answersPath, nil, mapping.ToBulkAnswersRequest(businessID, answers))
	if err != nil {
		return nil, err
	}
	recs, err := dto.DecodeOneOrMany[dto.AnswerRecord](raw)
	if err != nil {
		return []domain.KnowledgeAnswer{}, nil
	}
	out := mapping.ToDomainAnswerSlice(recs)
	for i := range out {
		if out[i].BusinessID == 0 {
			out[i].BusinessID = businessID
		}
	}
	return out, nil
}

func (r *KnowledgeRepository) ListDocuments(ctx context.Context, params dto.ListParams) ([]domain.KnowledgeDocument, error) {
	raw, err := r.client.Do(ctx, http.MethodGet, documentsPath, params.Values("business"), nil)
	if err != nil {
		return nil, err
	}
	recs, err := decodeList[dto.DocumentRecord](raw)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainDocumentSlice(recs), nil
}

// UploadDocuments posts every file under the repeated "files" field.
func (r *KnowledgeRepository) UploadDocuments(ctx context.Context, businessID domain.ID, files []domain.UploadFile) ([]domain.KnowledgeDocument, error) {
	var fields map[string]string
	if businessID != 0 {
		fields = map[string]string{"business": strconv.FormatInt(int64(businessID), 10)}
	}
	parts := make([]Part, len(files))
	for i, f := range files {
		parts[i] = Part{Field: "files", File: f}
	}
	raw, err := r.client.DoMultipart(ctx, http.MethodPost, documentsPath, fields, parts)
	if err != nil {
		return nil, err
	}
	recs, err := dto.DecodeOneOrMany[dto.DocumentRecord](raw)
	if err != nil {
		return []domain.KnowledgeDocument{}, nil
	}
	return mapping.ToDomainDocumentSlice(recs), nil
}
