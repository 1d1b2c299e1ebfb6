package dto

import "time"

// QuestionRecord is a knowledge question as rendered by the backend.
type QuestionRecord struct {
	ID         ForeignKey `json:"id"`
	LabelEn    string     `json:"label_en"`
	LabelAr    string     `json:"label_ar"`
	InputType  string     `json:"input_type"`
	Required   bool       `json:"required"`
	OrderIndex int        `json:"order_index"`
}

// AnswerRecord is a knowledge answer as rendered by the backend.
type AnswerRecord struct {
	ID            ForeignKey `json:"id"`
	Question      ForeignKey `json:"question"`
	Business      ForeignKey `json:"business"`
	AnswerText    *string    `json:"answer_text"`
	AnswerBoolean *bool      `json:"answer_boolean"`
}

// AnswerInput is one entry of a bulk create.
type AnswerInput struct {
	Question      int64   `json:"question"`
	AnswerText    *string `json:"answer_text,omitempty"`
	AnswerBoolean *bool   `json:"answer_boolean,omitempty"`
}

// BulkAnswersRequest is the POST body for /api/dashboard/knowledge/answers/.
// The backend expects the business id as a string here.
type BulkAnswersRequest struct {
	Business string        `json:"business"`
	Answers  []AnswerInput `json:"answers"`
}

// UpdateAnswerRequest is the PATCH body; only the meaningful field is sent.
type UpdateAnswerRequest struct {
	AnswerText    *string `json:"answer_text,omitempty"`
	AnswerBoolean *bool   `json:"answer_boolean,omitempty"`
}

// DocumentRecord is an uploaded knowledge document.
type DocumentRecord struct {
	ID            ForeignKey `json:"id"`
	Title         string     `json:"title"`
	Business      ForeignKey `json:"business"`
	FileURL       string     `json:"file_url"`
	File          string     `json:"file"`
	FileSizeBytes int64      `json:"file_size_bytes"`
	FileType      string     `json:"file_type"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
}
