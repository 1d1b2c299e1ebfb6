package domain

import "time"

// InputType selects how a knowledge question is answered.
type InputType string

const (
	InputText     InputType = "text"
	InputTextarea InputType = "textarea"
	InputBoolean  InputType = "boolean"
)

// KnowledgeQuestion is a platform-defined question. Read-only from the dashboard.
type KnowledgeQuestion struct {
	ID         ID        `json:"id"`
	LabelEn    string    `json:"labelEn"`
	LabelAr    string    `json:"labelAr"`
	InputType  InputType `json:"inputType"`
	Required   bool      `json:"required"`
	OrderIndex int       `json:"orderIndex"`
}

// GetID implements store.Entity.
func (q KnowledgeQuestion) GetID() ID { return q.ID }

// Label returns the label for the requested script, falling back to English.
func (q KnowledgeQuestion) Label(arabic bool) string {
	if arabic && q.LabelAr != "" {
		return q.LabelAr
	}
	return q.LabelEn
}

// KnowledgeAnswer is a business answer to one question. At most one exists per
// (question, business) pair; which of the two value fields is meaningful is
// decided by the question input type.
type KnowledgeAnswer struct {
	ID            ID      `json:"id"`
	QuestionID    ID      `json:"questionID"`
	BusinessID    ID      `json:"businessID"`
	AnswerText    *string `json:"answerText,omitempty"`
	AnswerBoolean *bool   `json:"answerBoolean,omitempty"`
}

// GetID implements store.Entity.
func (a KnowledgeAnswer) GetID() ID { return a.ID }

// Value returns the meaningful answer for the question type as a string:
// "true"/"false" for boolean questions, the text otherwise, "" when unset.
func (a KnowledgeAnswer) Value(t InputType) string {
	if t == InputBoolean {
		if a.AnswerBoolean == nil {
			return ""
		}
		if *a.AnswerBoolean {
			return "true"
		}
		return "false"
	}
	if a.AnswerText == nil {
		return ""
	}
	return *a.AnswerText
}

// DocumentStatus is the backend processing state of an uploaded document.
type DocumentStatus string

const (
	DocumentReady      DocumentStatus = "ready"
	DocumentProcessing DocumentStatus = "processing"
)

// KnowledgeDocument is a file uploaded to a business knowledge base.
type KnowledgeDocument struct {
	ID            ID             `json:"id"`
	Title         string         `json:"title"`
	BusinessID    ID             `json:"businessID"`
	FileURL       string         `json:"fileURL"`
	FileSizeBytes int64          `json:"fileSizeBytes"`
	FileType      string         `json:"fileType"`
	Status        DocumentStatus `json:"status"`
	CreatedAt     time.Time      `json:"createdAt"`
}

// GetID implements store.Entity.
func (d KnowledgeDocument) GetID() ID { return d.ID }
