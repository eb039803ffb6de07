package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"atelier/internal/domain/entity"
	"atelier/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	db, mock := newMockDB(t)
	txManager := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "sizes" WHERE id = $1`)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := txManager.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		return factory.NewSizeRepository().Delete(context.Background(), uuid.New())
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	txManager := NewTransactionManager(db)
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "collections"`)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	err := txManager.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		collection := &entity.Collection{Name: "C1", DesignerID: uuid.New()}
		if err := factory.NewCollectionRepository().Create(context.Background(), collection); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	db, mock := newMockDB(t)
	txManager := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = txManager.Execute(context.Background(), func(repository.RepositoryFactory) error {
			panic("unexpected")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_BeginFailure(t *testing.T) {
	db, mock := newMockDB(t)
	txManager := NewTransactionManager(db)
	refused := errors.New("connection refused")

	mock.ExpectBegin().WillReturnError(refused)

	called := false
	err := txManager.Execute(context.Background(), func(repository.RepositoryFactory) error {
		called = true

		return nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, refused)
	assert.Contains(t, err.Error(), "transaction failed")
	assert.False(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}
