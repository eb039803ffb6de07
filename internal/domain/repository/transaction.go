package repository

import "context"

// TransactionManager runs multi-step writes atomically.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise. Repositories
	// taken from the factory share the transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to one transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewCollectionRepository() CollectionRepository
	NewProductRepository() ProductRepository
	NewSizeRepository() SizeRepository
	NewNFTRepository() NFTRepository
}
