package repositories

// RepositoryProvider bundles the repository implementations handed to the
// service container at startup.
type RepositoryProvider struct {
	UserRepo        UserRepository
	ExpenditureRepo ExpenditureRepository
	SaleRepo        SaleRepository
	StatementStore  ArtifactStore
	ImageStore      ArtifactStore
}
