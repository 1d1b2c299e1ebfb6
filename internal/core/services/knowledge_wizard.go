package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/SscSPs/bizdash/internal/apperrors"
	"github.com/SscSPs/bizdash/internal/core/domain"
	portssvc "github.com/SscSPs/bizdash/internal/core/ports/services"
	"github.com/SscSPs/bizdash/internal/dto"
	"go.uber.org/zap"
)

// KnowledgeStep numbers the stages of the knowledge base wizard.
type KnowledgeStep int

const (
	KnowledgeStepBusiness KnowledgeStep = iota + 1
	KnowledgeStepAnswers
	KnowledgeStepFiles
	KnowledgeStepDone
)

// KnowledgeWizard fills a business knowledge base: answers to the platform
// questions plus at least one uploaded document.
type KnowledgeWizard struct {
	BaseService
	knowledge portssvc.KnowledgeSvcFacade

	mu         sync.Mutex
	step       KnowledgeStep
	businessID domain.ID
	questions  []domain.KnowledgeQuestion
	values     map[domain.ID]string
	files      []domain.UploadFile
}

// NewKnowledgeWizard starts at business selection, or at the answers step
// when businessID is already known.
func NewKnowledgeWizard(knowledge portssvc.KnowledgeSvcFacade, businessID domain.ID) *KnowledgeWizard {
	w := &KnowledgeWizard{
		knowledge:  knowledge,
		step:       KnowledgeStepBusiness,
		businessID: businessID,
		values:     map[domain.ID]string{},
	}
	if businessID != 0 {
		w.step = KnowledgeStepAnswers
	}
	return w
}

func (w *KnowledgeWizard) Step() KnowledgeStep {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

func (w *KnowledgeWizard) BusinessID() domain.ID {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.businessID
}

func (w *KnowledgeWizard) SelectBusiness(id domain.ID) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step != KnowledgeStepBusiness {
		return fmt.Errorf("%w: business already selected", apperrors.ErrWizardState)
	}
	if id == 0 {
		return apperrors.NewValidationError("business", "is required")
	}
	w.businessID = id
	w.step = KnowledgeStepAnswers
	return nil
}

// LoadQuestions fetches the questions and prefills values from the answers
// the business already has.
func (w *KnowledgeWizard) LoadQuestions(ctx context.Context) ([]domain.KnowledgeQuestion, error) {
	businessID := w.BusinessID()
	if businessID == 0 {
		return nil, fmt.Errorf("%w: select a business first", apperrors.ErrWizardState)
	}
	questions, err := w.knowledge.FetchQuestions(ctx, dto.ListParams{})
	if err != nil {
		return nil, err
	}
	answers, err := w.knowledge.FetchAnswers(ctx, dto.ListParams{Business: int64(businessID)})
	if err != nil {
		return nil, err
	}

	types := make(map[domain.ID]domain.InputType, len(questions))
	for _, q := range questions {
		types[q.ID] = q.InputType
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.questions = questions
	for _, a := range ownAnswers(answers, businessID) {
		if _, set := w.values[a.QuestionID]; set {
			continue
		}
		if v := a.Value(types[a.QuestionID]); v != "" {
			w.values[a.QuestionID] = v
		}
	}
	return append([]domain.KnowledgeQuestion(nil), questions...), nil
}

func (w *KnowledgeWizard) SetAnswer(questionID domain.ID, value string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.values[questionID] = value
}

func (w *KnowledgeWizard) Answers() map[domain.ID]string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make(map[domain.ID]string, len(w.values))
	for k, v := range w.values {
		out[k] = v
	}
	return out
}

// Next leaves the answers step only once at least one answer is filled in.
func (w *KnowledgeWizard) Next() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch w.step {
	case KnowledgeStepBusiness:
		if w.businessID == 0 {
			return apperrors.NewValidationError("business", "is required")
		}
		w.step = KnowledgeStepAnswers
	case KnowledgeStepAnswers:
		answered := false
		for _, v := range w.values {
			if strings.TrimSpace(v) != "" {
				answered = true
				break
			}
		}
		if !answered {
			return apperrors.NewValidationError("answers", "at least one answer is required")
		}
		w.step = KnowledgeStepFiles
	default:
		return fmt.Errorf("%w: cannot advance from step %d", apperrors.ErrWizardState, w.step)
	}
	return nil
}

func (w *KnowledgeWizard) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch w.step {
	case KnowledgeStepAnswers, KnowledgeStepFiles:
		w.step--
		return nil
	}
	return fmt.Errorf("%w: cannot go back from step %d", apperrors.ErrWizardState, w.step)
}

func (w *KnowledgeWizard) AddFile(f domain.UploadFile) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.files = append(w.files, f)
}

func (w *KnowledgeWizard) RemoveFile(i int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	files, err := removeRow(w.files, i)
	w.files = files
	return err
}

func (w *KnowledgeWizard) Files() []domain.UploadFile {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]domain.UploadFile(nil), w.files...)
}

// Submit uploads the files, then updates the answers the business already
// has one at a time and creates the rest in one bulk request.
func (w *KnowledgeWizard) Submit(ctx context.Context) error {
	w.mu.Lock()
	if w.step != KnowledgeStepFiles {
		w.mu.Unlock()
		return fmt.Errorf("%w: submit is only possible from the files step", apperrors.ErrWizardState)
	}
	businessID := w.businessID
	files := append([]domain.UploadFile(nil), w.files...)
	payloads := BuildAnswerPayloads(w.questions, w.values)
	w.mu.Unlock()

	if len(files) == 0 {
		return apperrors.NewValidationError("files", "at least one file is required")
	}
	log := w.GetLogger(ctx).With(zap.Int64("business_id", int64(businessID)))

	if _, err := w.knowledge.UploadDocuments(ctx, businessID, files); err != nil {
		return err
	}

	existing, err := w.knowledge.FetchAnswers(ctx, dto.ListParams{Business: int64(businessID)})
	if err != nil {
		return err
	}
	byQuestion := make(map[domain.ID]domain.KnowledgeAnswer, len(existing))
	for _, a := range ownAnswers(existing, businessID) {
		byQuestion[a.QuestionID] = a
	}

	var creates []domain.AnswerInput
	for _, p := range payloads {
		current, ok := byQuestion[p.QuestionID]
		if !ok {
			creates = append(creates, p)
			continue
		}
		patch := domain.AnswerPatch{Text: p.Text, Boolean: p.Boolean}
		if _, err := w.knowledge.UpdateAnswer(ctx, current.ID, patch); err != nil {
			return err
		}
	}
	if len(creates) > 0 {
		if _, err := w.knowledge.BulkCreateAnswers(ctx, businessID, creates); err != nil {
			return err
		}
	}
	if _, err := w.knowledge.FetchAnswers(ctx, dto.ListParams{Business: int64(businessID)}); err != nil {
		log.Warn("Could not refresh answers after submit", zap.Error(err))
	}

	w.mu.Lock()
	w.step = KnowledgeStepDone
	w.mu.Unlock()
	log.Info("Knowledge base saved",
		zap.Int("files", len(files)),
		zap.Int("updated", len(payloads)-len(creates)),
		zap.Int("created", len(creates)))
	return nil
}

// BuildAnswerPayloads turns the raw form values into answer payloads in
// question order. Empty values are dropped. Boolean questions carry
// answer_boolean, everything else the trimmed answer_text.
func BuildAnswerPayloads(questions []domain.KnowledgeQuestion, values map[domain.ID]string) []domain.AnswerInput {
	out := make([]domain.AnswerInput, 0, len(values))
	for _, q := range questions {
		v := strings.TrimSpace(values[q.ID])
		if v == "" {
			continue
		}
		in := domain.AnswerInput{QuestionID: q.ID}
		if q.InputType == domain.InputBoolean {
			b := parseBoolAnswer(v)
			in.Boolean = &b
		} else {
			in.Text = &v
		}
		out = append(out, in)
	}
	return out
}

func parseBoolAnswer(v string) bool {
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	switch strings.ToLower(v) {
	case "yes", "y", "on", "نعم":
		return true
	}
	return false
}

// ownAnswers drops answers the backend returned for another business. An
// answer without a business id is kept.
func ownAnswers(answers []domain.KnowledgeAnswer, businessID domain.ID) []domain.KnowledgeAnswer {
	own := make([]domain.KnowledgeAnswer, 0, len(answers))
	for _, a := range answers {
		if a.BusinessID != 0 && a.BusinessID != businessID {
			continue
		}
		own = append(own, a)
	}
	return own
}
