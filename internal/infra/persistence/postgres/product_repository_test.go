package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"atelier/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productColumns = []string{
	"id", "name", "gender", "category", "colors", "description", "price", "collection_id",
	"collection_address", "image_url1", "image_url2", "image_url3", "image_url4", "image_url5",
	"json_url", "video_url", "designer_id", "username", "created_at", "updated_at",
}

func productRow(rows *sqlmock.Rows, id uuid.UUID, name string, price float64) *sqlmock.Rows {
	now := time.Now()

	return rows.AddRow(id.String(), name, "women", "Dresses", `["Red"]`, "", price, uuid.New().String(),
		"ADDR1", "img1", "", "", "", "", "", "", uuid.New().String(), "d1", now, now)
}

func TestProductRepository_Search_AttachesNFTStats(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	withNFTs := uuid.New()
	withoutNFTs := uuid.New()
	minPrice := 0.0

	rows := sqlmock.NewRows(productColumns)
	productRow(rows, withNFTs, "Gown", 120)
	productRow(rows, withoutNFTs, "Slip", 0)

	mock.ExpectQuery(exactSQL(`SELECT * FROM "products" WHERE category = $1 AND price >= $2 ` +
		`AND EXISTS (SELECT 1 FROM jsonb_array_elements_text(products.colors) AS c(color) WHERE lower(c.color) = lower($3)) ` +
		`AND EXISTS (SELECT 1 FROM nfts WHERE nfts.product_id = products.id) ORDER BY created_at DESC`)).
		WithArgs("Dresses", 0.0, "red").
		WillReturnRows(rows)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT product_id, COUNT(*) AS nft_count`)).
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "nft_count", "first_token"}).
			AddRow(withNFTs.String(), 3, "Mint1"))

	summaries, err := repo.Search(context.Background(), repository.ProductFilter{
		Category: "Dresses",
		MinPrice: &minPrice,
		Color:    "red",
		HasNFTs:  true,
	})
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, int64(3), summaries[0].NFTCount)
	require.NotNil(t, summaries[0].FirstNFTTokenAddress)
	assert.Equal(t, "Mint1", *summaries[0].FirstNFTTokenAddress)

	assert.Equal(t, int64(0), summaries[1].NFTCount)
	assert.Nil(t, summaries[1].FirstNFTTokenAddress)
	assert.Equal(t, 0.0, summaries[1].Product.Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A product counts as having NFTs whatever their active flag, so the filter must not
// look at nfts.active.
func TestProductRepository_Search_HasNFTsCountsInactive(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)
	productID := uuid.New()

	mock.ExpectQuery(exactSQL(`SELECT * FROM "products" WHERE EXISTS (SELECT 1 FROM nfts WHERE nfts.product_id = products.id) ORDER BY created_at DESC`)).
		WillReturnRows(productRow(sqlmock.NewRows(productColumns), productID, "Gown", 120))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT product_id, COUNT(*) AS nft_count`)).
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "nft_count", "first_token"}).
			AddRow(productID.String(), 2, "Inactive1"))

	summaries, err := repo.Search(context.Background(), repository.ProductFilter{HasNFTs: true})
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, int64(2), summaries[0].NFTCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_Search_EmptySkipsAggregation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectQuery(exactSQL(`SELECT * FROM "products" WHERE EXISTS (SELECT 1 FROM sizes WHERE sizes.product_id = products.id AND sizes.label = $1) ORDER BY created_at DESC`)).
		WithArgs("M").
		WillReturnRows(sqlmock.NewRows(productColumns))

	summaries, err := repo.Search(context.Background(), repository.ProductFilter{Size: "M"})
	require.NoError(t, err)
	assert.Empty(t, summaries)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_Delete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "products" WHERE id = $1`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
