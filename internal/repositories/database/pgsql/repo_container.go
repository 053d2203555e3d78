package pgsql

import (
	portsrepo "github.com/casherapp/casher_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the pgsql-backed repositories. The artifact
// stores are filesystem-backed and supplied by the caller.
func NewRepositoryProvider(dbPool *pgxpool.Pool, statementStore, imageStore portsrepo.ArtifactStore) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        newPgxUserRepository(dbPool),
		ExpenditureRepo: newPgxExpenditureRepository(dbPool),
		SaleRepo:        newPgxSaleRepository(dbPool),
		StatementStore:  statementStore,
		ImageStore:      imageStore,
	}
}
