package export

import (
	"bytes"
	"testing"
	"time"

	"atelier/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestXLSXExporter_Export(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	productName := "Gown"

	listed := entity.NewNFT("Mint1", "W1", &entity.User{ID: uuid.New(), Username: "d1"}, created)
	listed.Active = true
	listed.ListingState = entity.ListingListed
	unassigned := entity.NewNFT("Mint2", "W1", &entity.User{ID: uuid.New(), Username: "d1"}, created)

	product := &entity.Product{
		ID:        uuid.New(),
		Name:      "Gown",
		Category:  "Dresses",
		Gender:    "women",
		Colors:    []string{"Red", "Black"},
		Price:     120.5,
		CreatedAt: created,
	}

	data, err := NewXLSXExporter().Export(
		[]*entity.NFTWithProduct{{NFT: listed, ProductName: &productName}, {NFT: unassigned}},
		[]*entity.Product{product},
	)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{nftSheet, productSheet}, f.GetSheetList())

	nftRows, err := f.GetRows(nftSheet)
	require.NoError(t, err)
	require.Len(t, nftRows, 3)
	assert.Equal(t, "Token Address", nftRows[0][0])
	assert.Equal(t, []string{"Mint1", "W1", "Gown", "yes", "yes", "listed", "designer", "", "2024-03-01T12:00:00Z"}, nftRows[1])
	assert.Equal(t, "Mint2", nftRows[2][0])
	assert.Equal(t, "", nftRows[2][2])
	assert.Equal(t, "no", nftRows[2][3])

	productRows, err := f.GetRows(productSheet)
	require.NoError(t, err)
	require.Len(t, productRows, 2)
	assert.Equal(t, product.ID.String(), productRows[1][0])
	assert.Equal(t, "Red, Black", productRows[1][4])
	assert.Equal(t, "120.5", productRows[1][5])
}

func TestXLSXExporter_EmptyInventory(t *testing.T) {
	data, err := NewXLSXExporter().Export(nil, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(nftSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
