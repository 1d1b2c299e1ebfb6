package services_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/SscSPs/bizdash/internal/apperrors"
	"github.com/SscSPs/bizdash/internal/core/domain"
	portsrepo "github.com/SscSPs/bizdash/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizdash/internal/core/ports/services"
	"github.com/SscSPs/bizdash/internal/core/services"
	"github.com/SscSPs/bizdash/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

type BusinessWizardTestSuite struct {
	suite.Suite
	ctx          context.Context
	businessRepo *MockBusinessRepository
	clientRepo   *MockClientRepository
	adminRepo    *MockAdminRepository
	paymentRepo  *MockPaymentRepository
	svc          *portssvc.ServiceContainer
	wizard       *services.BusinessWizard
}

func (suite *BusinessWizardTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.businessRepo = new(MockBusinessRepository)
	suite.clientRepo = new(MockClientRepository)
	suite.adminRepo = new(MockAdminRepository)
	suite.paymentRepo = new(MockPaymentRepository)
	suite.svc = services.NewServiceContainer(portsrepo.RepositoryProvider{
		BusinessRepo: suite.businessRepo,
		ClientRepo:   suite.clientRepo,
		AdminRepo:    suite.adminRepo,
		PaymentRepo:  suite.paymentRepo,
	})
	suite.wizard = services.NewBusinessWizard(suite.svc, services.NewBusinessLocator(suite.svc.Business, 0))
}

func (suite *BusinessWizardTestSuite) TearDownTest() {
	suite.businessRepo.AssertExpectations(suite.T())
	suite.clientRepo.AssertExpectations(suite.T())
	suite.adminRepo.AssertExpectations(suite.T())
	suite.paymentRepo.AssertExpectations(suite.T())
}

// pinAcme runs the business step for a create response that omits the id.
func (suite *BusinessWizardTestSuite) pinAcme(maxAdmins int) {
	form := domain.BusinessForm{NameEn: "Acme", NameAr: "أكمي"}
	suite.businessRepo.On("CreateBusiness", suite.ctx, form).Return(domain.Business{NameEn: "Acme", NameAr: "أكمي"}, nil).Once()
	suite.businessRepo.On("ListBusinesses", suite.ctx, dto.ListParams{}).Return([]domain.Business{
		{ID: 7, NameEn: "Acme", NameAr: "أكمي", MaxAdmins: maxAdmins, AuditFields: domain.AuditFields{CreatedAt: mustTime("2024-01-01T00:00:00Z")}},
	}, nil).Once()
	suite.Require().NoError(suite.wizard.SubmitBusinessInfo(suite.ctx, form))
}

func (suite *BusinessWizardTestSuite) toPayments(existingAdmins []domain.Admin) {
	suite.adminRepo.On("ListAdmins", suite.ctx, dto.ListParams{Business: 7}).Return(existingAdmins, nil).Once()
	suite.Require().NoError(suite.wizard.Next(suite.ctx))
	suite.Require().NoError(suite.wizard.Next(suite.ctx))
}

func (suite *BusinessWizardTestSuite) TestSubmitBusinessInfo_PinsLocatedID() {
	suite.pinAcme(10)

	suite.Equal(domain.ID(7), suite.wizard.PinnedID())
	suite.Equal(services.StepClients, suite.wizard.Step())
}

func (suite *BusinessWizardTestSuite) TestSubmitBusinessInfo_BlankNameRejected() {
	err := suite.wizard.SubmitBusinessInfo(suite.ctx, domain.BusinessForm{NameEn: "   ", NameAr: "أكمي"})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal(services.StepBusinessInfo, suite.wizard.Step())
	suite.businessRepo.AssertNotCalled(suite.T(), "CreateBusiness", mock.Anything, mock.Anything)
}

func (suite *BusinessWizardTestSuite) TestSubmitBusinessInfo_LocatesByTrimmedName() {
	sent := domain.BusinessForm{NameEn: "Acme", City: "Riyadh"}
	suite.businessRepo.On("CreateBusiness", suite.ctx, sent).Return(domain.Business{NameEn: "Acme"}, nil).Once()
	suite.businessRepo.On("ListBusinesses", suite.ctx, dto.ListParams{}).Return([]domain.Business{
		{ID: 7, NameEn: "Acme", AuditFields: domain.AuditFields{CreatedAt: mustTime("2024-01-01T00:00:00Z")}},
	}, nil).Once()

	suite.Require().NoError(suite.wizard.SubmitBusinessInfo(suite.ctx, domain.BusinessForm{NameEn: "  Acme ", City: " Riyadh"}))

	suite.Equal(domain.ID(7), suite.wizard.PinnedID())
}

func (suite *BusinessWizardTestSuite) TestSubmitBusinessInfo_EchoedIDSkipsLookup() {
	form := domain.BusinessForm{NameEn: "Echo"}
	suite.businessRepo.On("CreateBusiness", suite.ctx, form).Return(domain.Business{ID: 11, NameEn: "Echo", MaxAdmins: 4}, nil).Once()

	suite.Require().NoError(suite.wizard.SubmitBusinessInfo(suite.ctx, form))

	suite.Equal(domain.ID(11), suite.wizard.PinnedID())
	suite.businessRepo.AssertNotCalled(suite.T(), "ListBusinesses", mock.Anything, mock.Anything)
}

func (suite *BusinessWizardTestSuite) TestSubmitBusinessInfo_NotLocated() {
	form := domain.BusinessForm{NameEn: "Ghost"}
	suite.businessRepo.On("CreateBusiness", suite.ctx, form).Return(domain.Business{}, nil).Once()
	suite.businessRepo.On("ListBusinesses", suite.ctx, dto.ListParams{}).Return([]domain.Business{}, nil).Once()

	err := suite.wizard.SubmitBusinessInfo(suite.ctx, form)

	suite.ErrorIs(err, apperrors.ErrBusinessNotLocated)
	suite.Equal(services.StepBusinessInfo, suite.wizard.Step())
	suite.Zero(suite.wizard.PinnedID())
}

func (suite *BusinessWizardTestSuite) TestSubmitBusinessInfo_RequiresName() {
	err := suite.wizard.SubmitBusinessInfo(suite.ctx, domain.BusinessForm{})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.businessRepo.AssertNotCalled(suite.T(), "CreateBusiness", mock.Anything, mock.Anything)
}

func (suite *BusinessWizardTestSuite) TestNextAndBack() {
	suite.ErrorIs(suite.wizard.Next(suite.ctx), apperrors.ErrWizardState)
	suite.ErrorIs(suite.wizard.Back(), apperrors.ErrWizardState)

	suite.pinAcme(10)
	suite.ErrorIs(suite.wizard.Back(), apperrors.ErrWizardState, "cannot return to business info once created")

	suite.toPayments(nil)
	suite.Equal(services.StepPayments, suite.wizard.Step())
	suite.ErrorIs(suite.wizard.Next(suite.ctx), apperrors.ErrWizardState)

	suite.Require().NoError(suite.wizard.Back())
	suite.Equal(services.StepAdmins, suite.wizard.Step())

	steps := suite.wizard.Steps()
	suite.Require().Len(steps, 4)
	suite.True(steps[0].Completed)
	suite.True(steps[1].Completed)
	suite.True(steps[2].Active)
	suite.False(steps[2].Completed)
	suite.False(steps[3].Active)
}

func (suite *BusinessWizardTestSuite) TestAdminCapacity_OverflowVisible() {
	suite.pinAcme(3)
	suite.adminRepo.On("ListAdmins", suite.ctx, dto.ListParams{Business: 7}).
		Return([]domain.Admin{{ID: 1, BusinessID: 7}, {ID: 2, BusinessID: 7}}, nil).Once()
	suite.Require().NoError(suite.wizard.Next(suite.ctx))

	suite.True(suite.wizard.AdminCapacity().CanAdd)
	suite.wizard.AddAdminRow()
	suite.wizard.AddAdminRow()

	c := suite.wizard.AdminCapacity()
	suite.Equal(3, c.Max)
	suite.Equal(2, c.Current)
	suite.Equal(2, c.Pending)
	suite.Equal(-1, c.Remaining)
	suite.False(c.CanAdd)
	suite.Require().Len(c.Rows, 2)
	suite.False(c.Rows[0].Disabled)
	suite.True(c.Rows[1].Disabled)
	suite.True(c.Rows[1].Warning)
}

func (suite *BusinessWizardTestSuite) TestSubmit_PartialFailureKeepsSiblings() {
	suite.pinAcme(10)
	suite.toPayments(nil)

	for _, d := range []services.ClientDraft{
		{Name: "Ann", Email: "ann@x.io", Phone: "1"},
		{Name: "Bob", Email: "bob@x.io", Phone: "2"},
	} {
		suite.Require().NoError(suite.wizard.SetClientRow(suite.wizard.AddClientRow(), d))
	}
	suite.Require().NoError(suite.wizard.SetAdminRow(suite.wizard.AddAdminRow(), services.AdminDraft{FullName: "Ada", Email: "ada@x.io", Password: "secret1"}))
	suite.wizard.AddPaymentRow()

	suite.clientRepo.On("CreateClient", suite.ctx, mock.MatchedBy(func(in domain.ClientInput) bool { return in.BusinessID == 7 })).
		Return(domain.Client{ID: 100, BusinessID: 7}, nil).Twice()
	suite.adminRepo.On("CreateAdmin", suite.ctx, mock.MatchedBy(func(in domain.AdminInput) bool { return in.BusinessID == 7 })).
		Return(domain.Admin{}, apperrors.NewRemoteError(http.StatusBadRequest, []byte(`{"email":["already exists"]}`))).Once()

	err := suite.wizard.Submit(suite.ctx)

	var partial *apperrors.PartialSubmissionError
	suite.Require().True(errors.As(err, &partial))
	suite.Equal(2, partial.Succeeded)
	suite.Equal(1, partial.Failed)
	re, ok := apperrors.AsRemote(err)
	suite.Require().True(ok)
	suite.Equal("email: already exists", re.Message("x"))
	suite.Len(suite.svc.Client.ClientState().Items, 2)
	suite.paymentRepo.AssertNotCalled(suite.T(), "CreatePayment", mock.Anything, mock.Anything)
	_, done := suite.wizard.Result()
	suite.False(done)
}

func (suite *BusinessWizardTestSuite) TestSubmit_UsesPinnedIDDespiteCurrentBusiness() {
	suite.pinAcme(10)
	suite.businessRepo.On("FindBusinessByID", suite.ctx, domain.ID(99)).Return(domain.Business{ID: 99, NameEn: "Other"}, nil).Once()
	suite.toPayments(nil)

	_, err := suite.svc.Business.FetchBusiness(suite.ctx, 99)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.wizard.SetClientRow(suite.wizard.AddClientRow(), services.ClientDraft{Name: "Ann", Email: "ann@x.io", Phone: "1"}))
	suite.Require().NoError(suite.wizard.SetPaymentRow(suite.wizard.AddPaymentRow(), services.PaymentDraft{AmountPaid: "25.00", PaymentMethod: "card", PaymentDate: "2024-02-01"}))

	suite.clientRepo.On("CreateClient", suite.ctx, mock.MatchedBy(func(in domain.ClientInput) bool { return in.BusinessID == 7 })).
		Return(domain.Client{ID: 1, BusinessID: 7}, nil).Once()
	suite.paymentRepo.On("CreatePayment", suite.ctx, mock.MatchedBy(func(in domain.PaymentInput) bool {
		return in.BusinessID == 7 && in.PaymentMethod == domain.PaymentCreditCard && in.PaymentDate.String() == "2024-02-01"
	})).Return(domain.Payment{ID: 2, BusinessID: 7}, nil).Once()

	suite.Require().NoError(suite.wizard.Submit(suite.ctx))

	result, done := suite.wizard.Result()
	suite.Require().True(done)
	suite.Equal(services.WizardResult{BusinessID: 7, Clients: 1, Payments: 1}, result)
	suite.Equal(services.StepDone, suite.wizard.Step())
}

func (suite *BusinessWizardTestSuite) TestSubmit_NoRowsCompletes() {
	suite.pinAcme(10)
	suite.toPayments(nil)
	suite.wizard.AddClientRow()

	suite.Require().NoError(suite.wizard.Submit(suite.ctx))

	result, done := suite.wizard.Result()
	suite.True(done)
	suite.Equal(domain.ID(7), result.BusinessID)
}

func (suite *BusinessWizardTestSuite) TestSubmit_MalformedRowAbortsBeforeNetwork() {
	suite.pinAcme(10)
	suite.toPayments(nil)
	suite.Require().NoError(suite.wizard.SetClientRow(suite.wizard.AddClientRow(), services.ClientDraft{Name: "Ann", Email: "ann@x.io", Phone: "1"}))
	suite.Require().NoError(suite.wizard.SetPaymentRow(suite.wizard.AddPaymentRow(), services.PaymentDraft{AmountPaid: "ten", PaymentMethod: "cash", PaymentDate: "2024-02-01"}))

	err := suite.wizard.Submit(suite.ctx)

	var ve *apperrors.ValidationError
	suite.Require().True(errors.As(err, &ve))
	suite.Equal("amount_paid", ve.Field)
	suite.clientRepo.AssertNotCalled(suite.T(), "CreateClient", mock.Anything, mock.Anything)
}

func (suite *BusinessWizardTestSuite) TestSubmit_AdminCapacityExceeded() {
	suite.pinAcme(2)
	suite.toPayments([]domain.Admin{{ID: 1, BusinessID: 7}})
	for _, email := range []string{"a@x.io", "b@x.io"} {
		suite.Require().NoError(suite.wizard.SetAdminRow(suite.wizard.AddAdminRow(), services.AdminDraft{FullName: "A", Email: email, Password: "secret1"}))
	}

	err := suite.wizard.Submit(suite.ctx)

	suite.ErrorIs(err, apperrors.ErrAdminCapacity)
	suite.adminRepo.AssertNotCalled(suite.T(), "CreateAdmin", mock.Anything, mock.Anything)
}

func (suite *BusinessWizardTestSuite) TestEditMode_SingleStep() {
	b := domain.Business{ID: 5, NameEn: "Old", City: "Cairo"}
	wizard := services.NewBusinessEditWizard(suite.svc, b)
	suite.Equal(services.WizardEdit, wizard.Mode())
	suite.Len(wizard.Steps(), 1)

	form := domain.BusinessForm{City: "Giza"}
	suite.businessRepo.On("UpdateBusiness", suite.ctx, domain.ID(5), form).Return(domain.Business{ID: 5, NameEn: "Old", City: "Giza"}, nil).Once()

	suite.Require().NoError(wizard.SubmitBusinessInfo(suite.ctx, form))

	result, done := wizard.Result()
	suite.True(done)
	suite.Equal(domain.ID(5), result.BusinessID)
	suite.ErrorIs(wizard.SubmitBusinessInfo(suite.ctx, form), apperrors.ErrWizardState)
}

func TestBusinessWizardTestSuite(t *testing.T) {
	suite.Run(t, new(BusinessWizardTestSuite))
}

func TestBusinessLocator_FallbackChain(t *testing.T) {
	older := domain.AuditFields{CreatedAt: mustTime("2024-01-01T00:00:00Z")}
	newer := domain.AuditFields{CreatedAt: mustTime("2024-06-01T00:00:00Z")}

	tests := []struct {
		name      string
		submitted domain.BusinessForm
		list      []domain.Business
		want      domain.ID
	}{
		{
			name:      "exact match on names and tax number",
			submitted: domain.BusinessForm{NameEn: "Acme", NameAr: "أكمي", TaxNumber: "T1"},
			list: []domain.Business{
				{ID: 1, NameEn: "Acme", NameAr: "أكمي", TaxNumber: "T2", AuditFields: newer},
				{ID: 2, NameEn: "Acme", NameAr: "أكمي", TaxNumber: "T1", AuditFields: older},
			},
			want: 2,
		},
		{
			name:      "newest name match when no exact match",
			submitted: domain.BusinessForm{NameEn: "Acme", TaxNumber: "T9"},
			list: []domain.Business{
				{ID: 1, NameEn: "Acme", NameAr: "x", AuditFields: older},
				{ID: 2, NameEn: "Acme", NameAr: "y", AuditFields: newer},
				{ID: 3, NameEn: "Other", AuditFields: newer},
			},
			want: 2,
		},
		{
			name:      "newest business overall",
			submitted: domain.BusinessForm{NameEn: "Nobody"},
			list: []domain.Business{
				{ID: 1, NameEn: "A", AuditFields: older},
				{ID: 2, NameEn: "B", AuditFields: newer},
			},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repo := new(MockBusinessRepository)
			repo.On("ListBusinesses", ctx, dto.ListParams{}).Return(tt.list, nil).Once()
			locator := services.NewBusinessLocator(services.NewBusinessService(repo), 0)

			got, err := locator.Resolve(ctx, tt.submitted, domain.Business{})

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.ID)
			repo.AssertExpectations(t)
		})
	}
}

func TestBusinessLocator_SettleRespectsContext(t *testing.T) {
	repo := new(MockBusinessRepository)
	locator := services.NewBusinessLocator(services.NewBusinessService(repo), time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := locator.Resolve(ctx, domain.BusinessForm{NameEn: "Acme"}, domain.Business{})

	assert.ErrorIs(t, err, context.Canceled)
	repo.AssertNotCalled(t, "ListBusinesses", mock.Anything, mock.Anything)
}
