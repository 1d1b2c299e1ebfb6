package domain

// BusinessCategory classifies a business.
type BusinessCategory string

const (
	CategoryFinance       BusinessCategory = "finance"
	CategoryRetail        BusinessCategory = "retail"
	CategoryHealthcare    BusinessCategory = "healthcare"
	CategoryEducation     BusinessCategory = "education"
	CategoryTechnology    BusinessCategory = "technology"
	CategoryManufacturing BusinessCategory = "manufacturing"
	CategoryServices      BusinessCategory = "services"
)

// BusinessCategories lists the categories in display order.
var BusinessCategories = []BusinessCategory{
	CategoryFinance,
	CategoryRetail,
	CategoryHealthcare,
	CategoryEducation,
	CategoryTechnology,
	CategoryManufacturing,
	CategoryServices,
}

const (
	// DefaultMaxAdmins is applied when a business is created without an explicit limit.
	DefaultMaxAdmins = 10
	MinMaxAdmins     = 1
	MaxMaxAdmins     = 100
)

// Business is a tenant of the platform. It owns clients, admins, payments and
// knowledge base records.
type Business struct {
	ID                       ID               `json:"id"`
	NameEn                   string           `json:"nameEn"`
	NameAr                   string           `json:"nameAr"`
	LegalNameEn              string           `json:"legalNameEn"`
	LegalNameAr              string           `json:"legalNameAr"`
	TaxNumber                string           `json:"taxNumber"`
	CommercialRegisterNumber string           `json:"commercialRegisterNumber"`
	DomainURL                string           `json:"domainURL"`
	Country                  string           `json:"country"`
	City                     string           `json:"city"`
	Address                  string           `json:"address"`
	Category                 BusinessCategory `json:"category"`
	MaxAdmins                int              `json:"maxAdmins"`
	IsActive                 *bool            `json:"isActive,omitempty"` // nil when the backend does not report it
	AuditFields
}

// GetID implements store.Entity.
func (b Business) GetID() ID { return b.ID }

// DisplayName returns the Arabic name for Arabic display when present,
// the English name otherwise.
func (b Business) DisplayName(arabic bool) string {
	if arabic && b.NameAr != "" {
		return b.NameAr
	}
	return b.NameEn
}

// Active treats an unreported flag as active.
func (b Business) Active() bool {
	return b.IsActive == nil || *b.IsActive
}
