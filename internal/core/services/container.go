package services

import (
	portsrepo "github.com/casherapp/casher_backend/internal/core/ports/repositories"
	portssvc "github.com/casherapp/casher_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo, repos.ImageStore)
	container.Expenditure = NewExpenditureService(repos.ExpenditureRepo)
	container.Sale = NewSaleService(repos.SaleRepo)
	container.Statement = NewStatementService(repos.UserRepo, repos.ExpenditureRepo, repos.StatementStore)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.UserSvcFacade        = (*userService)(nil)
	_ portssvc.ExpenditureSvcFacade = (*expenditureService)(nil)
	_ portssvc.SaleSvcFacade        = (*saleService)(nil)
	_ portssvc.StatementSvcFacade   = (*statementService)(nil)
)
