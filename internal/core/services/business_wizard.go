package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/bizdash/internal/apperrors"
	"github.com/SscSPs/bizdash/internal/core/domain"
	portssvc "github.com/SscSPs/bizdash/internal/core/ports/services"
	"github.com/SscSPs/bizdash/internal/dto"
	"github.com/SscSPs/bizdash/internal/observability/metrics"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// WizardStep numbers the stages of the business wizard.
type WizardStep int

const (
	StepBusinessInfo WizardStep = iota + 1
	StepClients
	StepAdmins
	StepPayments
	StepDone
)

// WizardMode selects between creating a business with children and editing one.
type WizardMode int

const (
	WizardCreate WizardMode = iota
	WizardEdit
)

var stepLabels = map[WizardStep]string{
	StepBusinessInfo: "Business Info",
	StepClients:      "Clients",
	StepAdmins:       "Admins",
	StepPayments:     "Payments",
}

// StepIndicator is one entry of the progress display.
type StepIndicator struct {
	Number    WizardStep `json:"number"`
	Label     string     `json:"label"`
	Active    bool       `json:"active"`
	Completed bool       `json:"completed"`
}

// WizardResult is reported once the wizard completes.
type WizardResult struct {
	BusinessID domain.ID `json:"businessID"`
	Clients    int       `json:"clients"`
	Admins     int       `json:"admins"`
	Payments   int       `json:"payments"`
}

// BusinessWizard creates a business, pins its id, then creates its clients,
// admins and payments in one concurrent fan-out. Child creations only ever
// use the pinned id.
type BusinessWizard struct {
	BaseService
	svc     *portssvc.ServiceContainer
	locator *BusinessLocator

	mu            sync.Mutex
	mode          WizardMode
	step          WizardStep
	form          domain.BusinessForm
	business      domain.Business
	pinnedID      domain.ID
	currentAdmins int
	clients       []ClientDraft
	admins        []AdminDraft
	payments      []PaymentDraft
	result        *WizardResult
}

// NewBusinessWizard starts a creation wizard at the business info step.
func NewBusinessWizard(svc *portssvc.ServiceContainer, locator *BusinessLocator) *BusinessWizard {
	return &BusinessWizard{svc: svc, locator: locator, mode: WizardCreate, step: StepBusinessInfo}
}

// NewBusinessEditWizard starts a single-step wizard prefilled from b.
func NewBusinessEditWizard(svc *portssvc.ServiceContainer, b domain.Business) *BusinessWizard {
	return &BusinessWizard{
		svc:      svc,
		mode:     WizardEdit,
		step:     StepBusinessInfo,
		form:     domain.BusinessFormFrom(b),
		business: b,
		pinnedID: b.ID,
	}
}

func (w *BusinessWizard) Mode() WizardMode {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.mode
}

func (w *BusinessWizard) Step() WizardStep {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// PinnedID is zero until the business step has succeeded in create mode.
func (w *BusinessWizard) PinnedID() domain.ID {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.pinnedID
}

func (w *BusinessWizard) Form() domain.BusinessForm {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.form
}

// Result is set once the wizard is done.
func (w *BusinessWizard) Result() (WizardResult, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.result == nil {
		return WizardResult{}, false
	}
	return *w.result, true
}

// SubmitBusinessInfo creates (or in edit mode updates) the business. In create
// mode the id is resolved and pinned, and the wizard moves to the clients step.
func (w *BusinessWizard) SubmitBusinessInfo(ctx context.Context, form domain.BusinessForm) error {
	form = form.Trimmed()
	w.mu.Lock()
	if w.step != StepBusinessInfo {
		w.mu.Unlock()
		return fmt.Errorf("%w: business info already submitted", apperrors.ErrWizardState)
	}
	mode, editID := w.mode, w.pinnedID
	w.form = form
	w.mu.Unlock()

	log := w.GetLogger(ctx)
	if mode == WizardEdit {
		updated, err := w.svc.Business.UpdateBusiness(ctx, editID, form)
		if err != nil {
			return err
		}
		w.mu.Lock()
		w.business = updated
		w.step = StepDone
		w.result = &WizardResult{BusinessID: editID}
		w.mu.Unlock()
		log.Info("Business updated", zap.Int64("business_id", int64(editID)))
		return nil
	}

	created, err := w.svc.Business.CreateBusiness(ctx, form)
	if err != nil {
		return err
	}
	resolved, err := w.locator.Resolve(ctx, form, created)
	if err != nil {
		return err
	}
	if resolved.MaxAdmins == 0 {
		resolved.MaxAdmins = form.MaxAdmins
	}
	if resolved.MaxAdmins == 0 {
		resolved.MaxAdmins = domain.DefaultMaxAdmins
	}

	w.mu.Lock()
	w.business = resolved
	w.pinnedID = resolved.ID
	w.step = StepClients
	w.mu.Unlock()
	log.Info("Business created", zap.Int64("business_id", int64(resolved.ID)))
	return nil
}

// Next moves from clients to admins to payments. Entering the admins step
// refreshes the admin count used by the capacity display.
func (w *BusinessWizard) Next(ctx context.Context) error {
	w.mu.Lock()
	step, pinned := w.step, w.pinnedID
	w.mu.Unlock()

	if pinned == 0 {
		return fmt.Errorf("%w: no business has been created yet", apperrors.ErrWizardState)
	}
	switch step {
	case StepClients:
		count := w.refreshAdminCount(ctx, pinned)
		w.mu.Lock()
		w.currentAdmins = count
		w.step = StepAdmins
		w.mu.Unlock()
	case StepAdmins:
		w.mu.Lock()
		w.step = StepPayments
		w.mu.Unlock()
	default:
		return fmt.Errorf("%w: cannot advance from step %d", apperrors.ErrWizardState, step)
	}
	return nil
}

func (w *BusinessWizard) refreshAdminCount(ctx context.Context, businessID domain.ID) int {
	if _, err := w.svc.Admin.FetchAdmins(ctx, dto.ListParams{Business: int64(businessID)}); err != nil {
		w.LogWarn(ctx, "Could not refresh admin count, using cached admins", zap.Error(err))
	}
	return w.svc.Admin.CountAdminsForBusiness(businessID)
}

// Back steps back without going behind the clients step once the business exists.
func (w *BusinessWizard) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch w.step {
	case StepAdmins, StepPayments:
		w.step--
		return nil
	}
	return fmt.Errorf("%w: cannot go back from step %d", apperrors.ErrWizardState, w.step)
}

// Steps derives the progress display from the current step.
func (w *BusinessWizard) Steps() []StepIndicator {
	w.mu.Lock()
	defer w.mu.Unlock()
	last := StepPayments
	if w.mode == WizardEdit {
		last = StepBusinessInfo
	}
	out := make([]StepIndicator, 0, int(last))
	for n := StepBusinessInfo; n <= last; n++ {
		out = append(out, StepIndicator{
			Number:    n,
			Label:     stepLabels[n],
			Active:    w.step == n,
			Completed: w.step > n,
		})
	}
	return out
}

// AdminCapacity projects the admin rows onto the business limit. It is
// advisory; the backend enforces the real limit.
func (w *BusinessWizard) AdminCapacity() domain.AdminCapacity {
	w.mu.Lock()
	defer w.mu.Unlock()
	return domain.NewAdminCapacity(w.business.MaxAdmins, w.currentAdmins, len(w.admins))
}

func (w *BusinessWizard) AddClientRow() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.clients = append(w.clients, ClientDraft{})
	return len(w.clients) - 1
}

func (w *BusinessWizard) SetClientRow(i int, d ClientDraft) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return setRow(w.clients, i, d)
}

func (w *BusinessWizard) RemoveClientRow(i int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	rows, err := removeRow(w.clients, i)
	w.clients = rows
	return err
}

func (w *BusinessWizard) ClientRows() []ClientDraft {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]ClientDraft(nil), w.clients...)
}

func (w *BusinessWizard) AddAdminRow() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.admins = append(w.admins, AdminDraft{})
	return len(w.admins) - 1
}

func (w *BusinessWizard) SetAdminRow(i int, d AdminDraft) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return setRow(w.admins, i, d)
}

func (w *BusinessWizard) RemoveAdminRow(i int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	rows, err := removeRow(w.admins, i)
	w.admins = rows
	return err
}

func (w *BusinessWizard) AdminRows() []AdminDraft {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]AdminDraft(nil), w.admins...)
}

func (w *BusinessWizard) AddPaymentRow() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.payments = append(w.payments, PaymentDraft{})
	return len(w.payments) - 1
}

func (w *BusinessWizard) SetPaymentRow(i int, d PaymentDraft) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return setRow(w.payments, i, d)
}

func (w *BusinessWizard) RemovePaymentRow(i int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	rows, err := removeRow(w.payments, i)
	w.payments = rows
	return err
}

func (w *BusinessWizard) PaymentRows() []PaymentDraft {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]PaymentDraft(nil), w.payments...)
}

func setRow[T any](rows []T, i int, v T) error {
	if i < 0 || i >= len(rows) {
		return fmt.Errorf("%w: no row %d", apperrors.ErrWizardState, i)
	}
	rows[i] = v
	return nil
}

func removeRow[T any](rows []T, i int) ([]T, error) {
	if i < 0 || i >= len(rows) {
		return rows, fmt.Errorf("%w: no row %d", apperrors.ErrWizardState, i)
	}
	return append(rows[:i:i], rows[i+1:]...), nil
}

// childInputs is the validated payload of a final submission.
type childInputs struct {
	clients  []domain.ClientInput
	admins   []domain.AdminInput
	payments []domain.PaymentInput
}

func (c childInputs) total() int { return len(c.clients) + len(c.admins) + len(c.payments) }

// Submit creates every complete row under the pinned business. Incomplete
// rows are dropped silently; malformed complete rows abort before any call.
// All creations run concurrently and each settles regardless of the others;
// succeeded creations are not rolled back when a sibling fails.
func (w *BusinessWizard) Submit(ctx context.Context) error {
	w.mu.Lock()
	if w.step != StepPayments {
		w.mu.Unlock()
		return fmt.Errorf("%w: submit is only possible from the payments step", apperrors.ErrWizardState)
	}
	pinned := w.pinnedID
	limit, current := w.business.MaxAdmins, w.currentAdmins
	clients := ValidClientDrafts(w.clients)
	admins := ValidAdminDrafts(w.admins)
	payments := ValidPaymentDrafts(w.payments)
	w.mu.Unlock()

	if pinned == 0 {
		return fmt.Errorf("%w: no business has been created yet", apperrors.ErrWizardState)
	}

	inputs, err := buildChildInputs(pinned, clients, admins, payments)
	if err != nil {
		return err
	}
	if len(inputs.admins) > 0 && current+len(inputs.admins) > limit {
		return fmt.Errorf("%w: %d existing + %d new exceeds %d", apperrors.ErrAdminCapacity, current, len(inputs.admins), limit)
	}

	log := w.GetLogger(ctx).With(zap.Int64("business_id", int64(pinned)))
	log.Debug("Submitting wizard rows",
		zap.Int("clients", len(inputs.clients)),
		zap.Int("admins", len(inputs.admins)),
		zap.Int("payments", len(inputs.payments)))

	var (
		mu        sync.Mutex
		succeeded int
	)
	track := func(entity string, err error) error {
		metrics.ObserveWizardCreation(entity, err)
		if err == nil {
			mu.Lock()
			succeeded++
			mu.Unlock()
		}
		return err
	}

	// errgroup without a context: a failure must not cancel its siblings.
	var g errgroup.Group
	for _, in := range inputs.clients {
		g.Go(func() error {
			_, err := w.svc.Client.CreateClient(ctx, in)
			return track("client", err)
		})
	}
	for _, in := range inputs.admins {
		g.Go(func() error {
			_, err := w.svc.Admin.CreateAdmin(ctx, in)
			return track("admin", err)
		})
	}
	for _, in := range inputs.payments {
		g.Go(func() error {
			_, err := w.svc.Payment.CreatePayment(ctx, in)
			return track("payment", err)
		})
	}
	if err := g.Wait(); err != nil {
		failed := inputs.total() - succeeded
		log.Error("Wizard submission partially failed", zap.Error(err),
			zap.Int("succeeded", succeeded), zap.Int("failed", failed))
		return &apperrors.PartialSubmissionError{Succeeded: succeeded, Failed: failed, Cause: err}
	}

	w.mu.Lock()
	w.step = StepDone
	w.result = &WizardResult{
		BusinessID: pinned,
		Clients:    len(inputs.clients),
		Admins:     len(inputs.admins),
		Payments:   len(inputs.payments),
	}
	w.mu.Unlock()
	log.Info("Wizard completed", zap.Int("created", succeeded))
	return nil
}

func buildChildInputs(businessID domain.ID, clients []ClientDraft, admins []AdminDraft, payments []PaymentDraft) (childInputs, error) {
	var out childInputs
	for _, d := range clients {
		in := d.Input(businessID)
		if err := validateStruct(in); err != nil {
			return childInputs{}, err
		}
		out.clients = append(out.clients, in)
	}
	for _, d := range admins {
		in := d.Input(businessID)
		if err := validateStruct(in); err != nil {
			return childInputs{}, err
		}
		out.admins = append(out.admins, in)
	}
	for _, d := range payments {
		in, err := d.Input(businessID)
		if err != nil {
			return childInputs{}, err
		}
		if err := validateStruct(in); err != nil {
			return childInputs{}, err
		}
		out.payments = append(out.payments, in)
	}
	return out, nil
}
