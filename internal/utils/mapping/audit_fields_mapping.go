package mapping

import (
	"time"

	"github.com/SscSPs/bizdash/internal/core/domain"
)

// ToDomainAudit builds domain AuditFields from wire timestamps.
func ToDomainAudit(createdAt, updatedAt time.Time) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
