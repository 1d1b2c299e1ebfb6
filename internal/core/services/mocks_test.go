package services_test

import (
	"context"

	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/SscSPs/bizdash/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock BusinessRepository ---
type MockBusinessRepository struct {
	mock.Mock
}

func (m *MockBusinessRepository) ListBusinesses(ctx context.Context, params dto.ListParams) ([]domain.Business, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Business), args.Error(1)
}

func (m *MockBusinessRepository) FindBusinessByID(ctx context.Context, id domain.ID) (domain.Business, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Business), args.Error(1)
}

func (m *MockBusinessRepository) CreateBusiness(ctx context.Context, form domain.BusinessForm) (domain.Business, error) {
	args := m.Called(ctx, form)
	return args.Get(0).(domain.Business), args.Error(1)
}

func (m *MockBusinessRepository) UpdateBusiness(ctx context.Context, id domain.ID, form domain.BusinessForm) (domain.Business, error) {
	args := m.Called(ctx, id, form)
	return args.Get(0).(domain.Business), args.Error(1)
}

func (m *MockBusinessRepository) DeleteBusiness(ctx context.Context, id domain.ID) error {
	return m.Called(ctx, id).Error(0)
}

// --- Mock ClientRepository ---
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) ListClients(ctx context.Context, params dto.ListParams) ([]domain.Client, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, id domain.ID) (domain.Client, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Client), args.Error(1)
}

func (m *MockClientRepository) CreateClient(ctx context.Context, in domain.ClientInput) (domain.Client, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.Client), args.Error(1)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, id domain.ID, patch domain.ClientPatch) (domain.Client, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(domain.Client), args.Error(1)
}

func (m *MockClientRepository) DeleteClient(ctx context.Context, id domain.ID) error {
	return m.Called(ctx, id).Error(0)
}

// --- Mock AdminRepository ---
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) ListAdmins(ctx context.Context, params dto.ListParams) ([]domain.Admin, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Admin), args.Error(1)
}

func (m *MockAdminRepository) CreateAdmin(ctx context.Context, in domain.AdminInput) (domain.Admin, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.Admin), args.Error(1)
}

func (m *MockAdminRepository) UpdateAdmin(ctx context.Context, patch domain.AdminPatch) (domain.Admin, error) {
	args := m.Called(ctx, patch)
	return args.Get(0).(domain.Admin), args.Error(1)
}

func (m *MockAdminRepository) DeleteAdmin(ctx context.Context, id domain.ID) error {
	return m.Called(ctx, id).Error(0)
}

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) ListPayments(ctx context.Context, params dto.ListParams) ([]domain.Payment, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, id domain.ID) (domain.Payment, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) CreatePayment(ctx context.Context, in domain.PaymentInput) (domain.Payment, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) UpdatePayment(ctx context.Context, id domain.ID, patch domain.PaymentPatch) (domain.Payment, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) DeletePayment(ctx context.Context, id domain.ID) error {
	return m.Called(ctx, id).Error(0)
}

// --- Mock KnowledgeRepository ---
type MockKnowledgeRepository struct {
	mock.Mock
}

func (m *MockKnowledgeRepository) ListQuestions(ctx context.Context, params dto.ListParams) ([]domain.KnowledgeQuestion, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.KnowledgeQuestion), args.Error(1)
}

func (m *MockKnowledgeRepository) FindQuestionByID(ctx context.Context, id domain.ID) (domain.KnowledgeQuestion, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.KnowledgeQuestion), args.Error(1)
}

func (m *MockKnowledgeRepository) ListAnswers(ctx context.Context, params dto.ListParams) ([]domain.KnowledgeAnswer, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.KnowledgeAnswer), args.Error(1)
}

func (m *MockKnowledgeRepository) FindAnswerByID(ctx context.Context, id domain.ID) (domain.KnowledgeAnswer, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.KnowledgeAnswer), args.Error(1)
}

func (m *MockKnowledgeRepository) UpdateAnswer(ctx context.Context, id domain.ID, patch domain.AnswerPatch) (domain.KnowledgeAnswer, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(domain.KnowledgeAnswer), args.Error(1)
}

func (m *MockKnowledgeRepository) DeleteAnswer(ctx context.Context, id domain.ID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockKnowledgeRepository) BulkCreateAnswers(ctx context.Context, businessID domain.ID, answers []domain.AnswerInput) ([]domain.KnowledgeAnswer, error) {
	args := m.Called(ctx, businessID, answers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.KnowledgeAnswer), args.Error(1)
}

func (m *MockKnowledgeRepository) ListDocuments(ctx context.Context, params dto.ListParams) ([]domain.KnowledgeDocument, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.KnowledgeDocument), args.Error(1)
}

func (m *MockKnowledgeRepository) UploadDocuments(ctx context.Context, businessID domain.ID, files []domain.UploadFile) ([]domain.KnowledgeDocument, error) {
	args := m.Called(ctx, businessID, files)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.KnowledgeDocument), args.Error(1)
}

// --- Mock AuthRepository ---
type MockAuthRepository struct {
	mock.Mock
}

func (m *MockAuthRepository) Login(ctx context.Context, username, password string) (dto.TokenPair, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(dto.TokenPair), args.Error(1)
}

func (m *MockAuthRepository) Logout(ctx context.Context, refresh string) error {
	return m.Called(ctx, refresh).Error(0)
}

// --- Mock DashboardRepository ---
type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) FetchStats(ctx context.Context) (domain.DashboardStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.DashboardStats), args.Error(1)
}

func (m *MockDashboardRepository) FetchActivities(ctx context.Context, params dto.ListParams) ([]domain.Activity, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Activity), args.Error(1)
}
