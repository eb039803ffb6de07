// Package postgres implements the repositories on PostgreSQL through GORM.
package postgres

import (
	"context"

	"atelier/internal/domain/repository"
	"atelier/internal/errors"

	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute delegates to gorm's Transaction, which rolls back when fn fails or
// panics. Errors from fn are returned untouched; begin and commit failures are wrapped.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var fnErr error
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepositoryFactory{tx: tx})

		return fnErr
	})
	if err == nil || (fnErr != nil && errors.Is(err, fnErr)) {
		return err
	}

	return errors.Wrap(err, "transaction failed")
}

// txRepositoryFactory builds repositories on one open transaction.
type txRepositoryFactory struct {
	tx *gorm.DB
}

func (f txRepositoryFactory) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f txRepositoryFactory) NewCollectionRepository() repository.CollectionRepository {
	return NewCollectionRepository(f.tx)
}

func (f txRepositoryFactory) NewProductRepository() repository.ProductRepository {
	return NewProductRepository(f.tx)
}

func (f txRepositoryFactory) NewSizeRepository() repository.SizeRepository {
	return NewSizeRepository(f.tx)
}

func (f txRepositoryFactory) NewNFTRepository() repository.NFTRepository {
	return NewNFTRepository(f.tx)
}
