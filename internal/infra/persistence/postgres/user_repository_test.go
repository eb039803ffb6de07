package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"atelier/internal/domain/entity"
	"atelier/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{
	"id", "username", "email", "password_hash", "solana_wallets", "role",
	"shipping_address", "collection_addresses", "created_at", "updated_at",
}

func TestUserRepository_FindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	collectionID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(
			userID.String(), "d1", "d1@x.com", "hash", `["W1","W2"]`, "designer",
			`{"street":"1 Main","city":"Paris"}`,
			`[{"collectionId":"`+collectionID.String()+`","collectionAddress":"ADDR1"}]`,
			now, now,
		))

	user, err := repo.FindByID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, entity.RoleDesigner, user.Role)
	assert.Equal(t, []string{"W1", "W2"}, user.SolanaWallets)
	require.NotNil(t, user.ShippingAddress)
	assert.Equal(t, "Paris", user.ShippingAddress.City)
	assert.Equal(t, []entity.CollectionRef{{CollectionID: collectionID, CollectionAddress: "ADDR1"}}, user.CollectionAddresses)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows(userColumns))

	user, err := repo.FindByID(context.Background(), uuid.New())
	assert.Nil(t, user)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByWallet(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE solana_wallets @> $1::jsonb`)).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(
			uuid.New().String(), "d9", "d9@x.com", "hash", `["W9"]`, "designer", nil, `[]`, now, now,
		))

	user, err := repo.FindByWallet(context.Background(), "W9")
	require.NoError(t, err)
	assert.Equal(t, "d9", user.Username)
	assert.Nil(t, user.ShippingAddress)
	assert.Empty(t, user.CollectionAddresses)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByIDForUpdate_LocksRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1 .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(
			uuid.New().String(), "d1", "d1@x.com", "hash", `[]`, "designer", nil, `[]`, now, now,
		))

	_, err := repo.FindByIDForUpdate(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_AssignsID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	user := &entity.User{Username: "d1", Email: "d1@x.com", PasswordHash: "hash", Role: entity.RoleDesigner}
	require.NoError(t, repo.Create(context.Background(), user))
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, Message: "duplicate key value violates unique constraint"})

	err := repo.Create(context.Background(), &entity.User{Username: "d1", Email: "d1@x.com", Role: entity.RoleRegular})
	assert.ErrorIs(t, err, repository.ErrUserAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Update_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "users" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &entity.User{ID: uuid.New(), Username: "ghost", Role: entity.RoleRegular})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
