package services

import (
	portsrepo "github.com/Yousifhashim249/ERP-project/internal/core/ports/repositories"
	portssvc "github.com/Yousifhashim249/ERP-project/internal/core/ports/services"
	"github.com/Yousifhashim249/ERP-project/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// The role book is returned unresolved; callers resolve it against container.Account
// once the chart of accounts is in place.
func NewServiceContainer(cfg *config.Config, txManager portsrepo.TransactionManager) (*portssvc.ServiceContainer, *RoleBook) {
	roles := NewRoleBook(cfg.RoleAccounts)

	posting := NewPostingService(txManager, roles, WithUnbalancedAdjustments(cfg.AllowUnbalancedAdjustments))

	container := &portssvc.ServiceContainer{
		Account:   NewAccountService(txManager, posting, roles),
		Posting:   posting,
		Documents: NewDocumentService(txManager, posting),
		Reporting: NewReportingService(txManager),
	}
	return container, roles
}
