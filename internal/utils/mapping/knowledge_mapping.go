package mapping

import (
	"strconv"

	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/SscSPs/bizdash/internal/dto"
)

// ToDomainQuestion converts a wire QuestionRecord.
func ToDomainQuestion(r dto.QuestionRecord) domain.KnowledgeQuestion {
	return domain.KnowledgeQuestion{
		ID:         r.ID.ID(),
		LabelEn:    r.LabelEn,
		LabelAr:    r.LabelAr,
		InputType:  domain.InputType(r.InputType),
		Required:   r.Required,
		OrderIndex: r.OrderIndex,
	}
}

// ToDomainQuestionSlice converts a slice of records.
func ToDomainQuestionSlice(rs []dto.QuestionRecord) []domain.KnowledgeQuestion {
	out := make([]domain.KnowledgeQuestion, len(rs))
	for i, r := range rs {
		out[i] = ToDomainQuestion(r)
	}
	return out
}

// ToDomainAnswer converts a wire AnswerRecord.
func ToDomainAnswer(r dto.AnswerRecord) domain.KnowledgeAnswer {
	return domain.KnowledgeAnswer{
		ID:            r.ID.ID(),
		QuestionID:    r.Question.ID(),
		BusinessID:    r.Business.ID(),
		AnswerText:    r.AnswerText,
		AnswerBoolean: r.AnswerBoolean,
	}
}

// ToDomainAnswerSlice converts a slice of records.
func ToDomainAnswerSlice(rs []dto.AnswerRecord) []domain.KnowledgeAnswer {
	out := make([]domain.KnowledgeAnswer, len(rs))
	for i, r := range rs {
		out[i] = ToDomainAnswer(r)
	}
	return out
}

// ToBulkAnswersRequest builds the bulk create body.
func ToBulkAnswersRequest(businessID domain.ID, answers []domain.AnswerInput) dto.BulkAnswersRequest {
	req := dto.BulkAnswersRequest{
		Business: strconv.FormatInt(int64(businessID), 10),
		Answers:  make([]dto.AnswerInput, len(answers)),
	}
	for i, a := range answers {
		req.Answers[i] = dto.AnswerInput{
			Question:      int64(a.QuestionID),
			AnswerText:    a.Text,
			AnswerBoolean: a.Boolean,
		}
	}
	return req
}

// ToUpdateAnswerRequest builds the patch body.
func ToUpdateAnswerRequest(p domain.AnswerPatch) dto.UpdateAnswerRequest {
	return dto.UpdateAnswerRequest{AnswerText: p.Text, AnswerBoolean: p.Boolean}
}

// ToDomainDocument converts a wire DocumentRecord. Some responses carry the
// download link under "file" instead of "file_url".
func ToDomainDocument(r dto.DocumentRecord) domain.KnowledgeDocument {
	url := r.FileURL
	if url == "" {
		url = r.File
	}
	return domain.KnowledgeDocument{
		ID:            r.ID.ID(),
		Title:         r.Title,
		BusinessID:    r.Business.ID(),
		FileURL:       url,
		FileSizeBytes: r.FileSizeBytes,
		FileType:      r.FileType,
		Status:        domain.DocumentStatus(r.Status),
		CreatedAt:     r.CreatedAt,
	}
}

// ToDomainDocumentSlice converts a slice of records.
func ToDomainDocumentSlice(rs []dto.DocumentRecord) []domain.KnowledgeDocument {
	out := make([]domain.KnowledgeDocument, len(rs))
	for i, r := range rs {
		out[i] = ToDomainDocument(r)
	}
	return out
}
