package services

import (
	portsrepo "github.com/SscSPs/bizdash/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizdash/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Auth:      NewAuthService(repos.AuthRepo, repos.Tokens),
		Business:  NewBusinessService(repos.BusinessRepo),
		Client:    NewClientService(repos.ClientRepo),
		Admin:     NewAdminService(repos.AdminRepo),
		Payment:   NewPaymentService(repos.PaymentRepo),
		Knowledge: NewKnowledgeService(repos.KnowledgeRepo),
		Dashboard: NewDashboardService(repos),
	}
}
