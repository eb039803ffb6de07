// Package export renders designer inventory workbooks.
package export

import (
	"strings"
	"time"

	"atelier/internal/domain/entity"
	"atelier/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const (
	nftSheet     = "NFTs"
	productSheet = "Products"
)

var (
	nftHeader     = []any{"Token Address", "Wallet Address", "Product", "Active", "Listed", "Listing State", "Listing Source", "Synced At", "Created At"}
	productHeader = []any{"Product ID", "Name", "Category", "Gender", "Colors", "Price", "Collection Address", "Created At"}
)

type xlsxExporter struct{}

// NewXLSXExporter creates the excelize backed inventory exporter.
func NewXLSXExporter() service.InventoryExporter {
	return &xlsxExporter{}
}

// Export writes one sheet of NFTs and one of products.
func (e *xlsxExporter) Export(nfts []*entity.NFTWithProduct, products []*entity.Product) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", nftSheet); err != nil {
		return nil, errors.WithStack(err)
	}
	if _, err := f.NewSheet(productSheet); err != nil {
		return nil, errors.WithStack(err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	rows := make([][]any, 0, len(nfts))
	for _, item := range nfts {
		nft := item.NFT
		productName := ""
		if item.ProductName != nil {
			productName = *item.ProductName
		}
		syncedAt := ""
		if nft.SyncedAt != nil {
			syncedAt = nft.SyncedAt.UTC().Format(time.RFC3339)
		}
		rows = append(rows, []any{
			nft.TokenAddress,
			nft.WalletAddress,
			productName,
			nft.ActiveFlag(),
			nft.ListedFlag(),
			string(nft.ListingState),
			string(nft.ListingSource),
			syncedAt,
			nft.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	if err := writeSheet(f, nftSheet, nftHeader, rows, headerStyle); err != nil {
		return nil, err
	}

	rows = make([][]any, 0, len(products))
	for _, p := range products {
		rows = append(rows, []any{
			p.ID.String(),
			p.Name,
			p.Category,
			p.Gender,
			strings.Join(p.Colors, ", "),
			p.Price,
			p.CollectionAddress,
			p.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	if err := writeSheet(f, productSheet, productHeader, rows, headerStyle); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "failed to render workbook")
	}

	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, header []any, rows [][]any, headerStyle int) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return errors.WithStack(err)
	}

	lastHeader, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := f.SetCellStyle(sheet, "A1", lastHeader, headerStyle); err != nil {
		return errors.WithStack(err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.WithStack(err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}
