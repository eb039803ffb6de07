package service

import "atelier/internal/domain/entity"

// InventoryExporter renders a designer's NFTs and products as a spreadsheet.
type InventoryExporter interface {
	Export(nfts []*entity.NFTWithProduct, products []*entity.Product) ([]byte, error)
}
