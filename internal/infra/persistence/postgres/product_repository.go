package postgres

import (
	"context"

	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	"atelier/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return toProductDomain(&productM), nil
}

func (repo *productRepository) ListByDesigner(ctx context.Context, designerID uuid.UUID) ([]*entity.Product, error) {
	return repo.list(repo.db.WithContext(ctx).Where("designer_id = ?", designerID))
}

func (repo *productRepository) ListByCollection(ctx context.Context, collectionID uuid.UUID) ([]*entity.Product, error) {
	return repo.list(repo.db.WithContext(ctx).Where("collection_id = ?", collectionID))
}

func (repo *productRepository) ListByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	return repo.list(repo.db.WithContext(ctx).Where("category = ?", category))
}

func (repo *productRepository) list(tx *gorm.DB) ([]*entity.Product, error) {
	var productMs []*model.ProductModel
	if err := tx.Order("created_at DESC").Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return toProductDomains(productMs), nil
}

// nftStatRow is one row of the per-product NFT aggregation.
type nftStatRow struct {
	ProductID  uuid.UUID
	NFTCount   int64
	FirstToken string
}

// Search runs the conjunctive catalog filter, then attaches NFT statistics in a second query.
func (repo *productRepository) Search(ctx context.Context, filter repository.ProductFilter) ([]*entity.ProductSummary, error) {
	tx := repo.db.WithContext(ctx).Model(&model.ProductModel{})

	if filter.Category != "" {
		tx = tx.Where("category = ?", filter.Category)
	}
	if filter.Designer != "" {
		tx = tx.Where("username = ?", filter.Designer)
	}
	if filter.MinPrice != nil {
		tx = tx.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		tx = tx.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.Color != "" {
		tx = tx.Where("EXISTS (SELECT 1 FROM jsonb_array_elements_text(products.colors) AS c(color) WHERE lower(c.color) = lower(?))", filter.Color)
	}
	if filter.Size != "" {
		tx = tx.Where("EXISTS (SELECT 1 FROM sizes WHERE sizes.product_id = products.id AND sizes.label = ?)", filter.Size)
	}
	if filter.HasNFTs {
		tx = tx.Where("EXISTS (SELECT 1 FROM nfts WHERE nfts.product_id = products.id)")
	}

	var productMs []*model.ProductModel
	if err := tx.Order("created_at DESC").Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	summaries := make([]*entity.ProductSummary, 0, len(productMs))
	if len(productMs) == 0 {
		return summaries, nil
	}

	ids := make([]uuid.UUID, 0, len(productMs))
	for _, m := range productMs {
		ids = append(ids, m.ID)
	}

	var stats []nftStatRow
	err := repo.db.WithContext(ctx).
		Model(&model.NFTModel{}).
		Select("product_id, COUNT(*) AS nft_count, (array_agg(token_address ORDER BY created_at ASC))[1] AS first_token").
		Where("product_id IN ?", ids).
		Group("product_id").
		Scan(&stats).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate product nfts")
	}

	statsByProduct := make(map[uuid.UUID]nftStatRow, len(stats))
	for _, s := range stats {
		statsByProduct[s.ProductID] = s
	}

	for _, m := range productMs {
		summary := &entity.ProductSummary{Product: toProductDomain(m)}
		if s, ok := statsByProduct[m.ID]; ok {
			summary.NFTCount = s.NFTCount
			if s.FirstToken != "" {
				first := s.FirstToken
				summary.FirstNFTTokenAddress = &first
			}
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if classifyViolation(err) == notNullViolation {
			return domainerrors.ErrRequiredFieldsMissing.WrapMessage("product insert rejected")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).Model(productM).Select("*").Omit("created_at", "designer_id").Updates(productM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}
