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

func TestNFTRepository_Create_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNFTRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "nfts"`)).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

	nft := entity.NewNFT("Mint1", "W1", &entity.User{ID: uuid.New(), Username: "d1"}, time.Now())
	err := repo.Create(context.Background(), nft)
	assert.ErrorIs(t, err, repository.ErrNFTAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNFTRepository_CountActiveByProduct(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNFTRepository(db)
	productID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "nfts" WHERE product_id = $1 AND active = $2`)).
		WithArgs(productID.String(), true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountActiveByProduct(context.Background(), productID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNFTRepository_GroupActiveByProduct(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNFTRepository(db)
	gown, slip := uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT nfts.product_id, products.name AS product_name`)).
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "product_name", "token_address", "wallet_address"}).
			AddRow(gown.String(), "Gown", "Mint1", "W1").
			AddRow(gown.String(), "Gown", "Mint2", "W1").
			AddRow(slip.String(), "Slip", "Mint3", "W2"))

	groups, err := repo.GroupActiveByProduct(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Gown", groups[0].ProductName)
	assert.Len(t, groups[0].NFTs, 2)
	assert.Equal(t, []entity.ProductNFTRef{{TokenAddress: "Mint3", WalletAddress: "W2"}}, groups[1].NFTs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNFTRepository_Save_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNFTRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "nfts" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	nft := entity.NewNFT("Missing", "W1", &entity.User{ID: uuid.New()}, time.Now())
	err := repo.Save(context.Background(), nft)
	assert.ErrorIs(t, err, repository.ErrNFTNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNFTRepository_ListByDesigner_WithProductName(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNFTRepository(db)
	designerID := uuid.New()
	productID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT nfts.*, products.name AS product_name FROM "nfts" LEFT JOIN products ON products.id = nfts.product_id WHERE nfts.designer_id = $1`)).
		WithArgs(designerID.String()).
		WillReturnRows(sqlmock.NewRows([]string{
			"token_address", "wallet_address", "designer_id", "username", "product_id", "active",
			"listing_state", "listing_source", "synced_at", "created_at", "updated_at", "product_name",
		}).
			AddRow("Mint1", "W1", designerID.String(), "d1", productID.String(), true, "listed", "chain", now, now, now, "Gown").
			AddRow("Mint2", "W1", designerID.String(), "d1", nil, false, "unlisted", "designer", nil, now, now, nil))

	nfts, err := repo.ListByDesigner(context.Background(), designerID)
	require.NoError(t, err)
	require.Len(t, nfts, 2)
	require.NotNil(t, nfts[0].ProductName)
	assert.Equal(t, "Gown", *nfts[0].ProductName)
	assert.Equal(t, entity.ListingListed, nfts[0].NFT.ListingState)
	assert.Nil(t, nfts[1].ProductName)
	assert.Nil(t, nfts[1].NFT.ProductID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
