package postgres

import (
	"context"
	"testing"

	"atelier/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeRepository_DeleteByProduct(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
	}{
		{name: "removes every size", affected: 3},
		{name: "product without sizes", affected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewSizeRepository(db)
			productID := uuid.New()

			mock.ExpectExec(exactSQL(`DELETE FROM "sizes" WHERE product_id = $1`)).
				WithArgs(productID.String()).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			removed, err := repo.DeleteByProduct(context.Background(), productID)
			require.NoError(t, err)
			assert.Equal(t, tt.affected, removed)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSizeRepository_Delete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSizeRepository(db)

	mock.ExpectExec(exactSQL(`DELETE FROM "sizes" WHERE id = $1`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrSizeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
