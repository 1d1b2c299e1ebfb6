package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	AuthRepo      AuthRepository
	BusinessRepo  BusinessRepositoryFacade
	ClientRepo    ClientRepositoryFacade
	AdminRepo     AdminRepositoryFacade
	PaymentRepo   PaymentRepositoryFacade
	KnowledgeRepo KnowledgeRepositoryFacade
	DashboardRepo DashboardRepository
	Tokens        TokenStore
	KeyValue      KeyValueStore
}
