package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"atelier/internal/domain/repository"
	mockRepo "atelier/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

// repoMocks bundles a transaction manager whose Execute runs the callback against a
// factory serving the per-aggregate repository mocks.
type repoMocks struct {
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	users       *mockRepo.MockUserRepository
	collections *mockRepo.MockCollectionRepository
	products    *mockRepo.MockProductRepository
	sizes       *mockRepo.MockSizeRepository
	nfts        *mockRepo.MockNFTRepository
}

func newRepoMocks(t *testing.T) *repoMocks {
	m := &repoMocks{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		users:       mockRepo.NewMockUserRepository(t),
		collections: mockRepo.NewMockCollectionRepository(t),
		products:    mockRepo.NewMockProductRepository(t),
		sizes:       mockRepo.NewMockSizeRepository(t),
		nfts:        mockRepo.NewMockNFTRepository(t),
	}

	m.factory.EXPECT().NewUserRepository().Return(m.users).Maybe()
	m.factory.EXPECT().NewCollectionRepository().Return(m.collections).Maybe()
	m.factory.EXPECT().NewProductRepository().Return(m.products).Maybe()
	m.factory.EXPECT().NewSizeRepository().Return(m.sizes).Maybe()
	m.factory.EXPECT().NewNFTRepository().Return(m.nfts).Maybe()

	m.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		}).
		Maybe()

	return m
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
