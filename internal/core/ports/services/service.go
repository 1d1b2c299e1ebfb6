package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used by the CLI commands and the wizards.
type ServiceContainer struct {
	Auth      AuthSvcFacade
	Business  BusinessSvcFacade
	Client    ClientSvcFacade
	Admin     AdminSvcFacade
	Payment   PaymentSvcFacade
	Knowledge KnowledgeSvcFacade
	Dashboard DashboardSvc
}
