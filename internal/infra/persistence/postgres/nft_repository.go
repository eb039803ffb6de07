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
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

type nftRepository struct {
	db *gorm.DB
}

// NewNFTRepository is the constructor for nftRepository.
func NewNFTRepository(db *gorm.DB) repository.NFTRepository {
	return &nftRepository{db: db}
}

func (repo *nftRepository) FindByToken(ctx context.Context, tokenAddress string) (*entity.NFT, error) {
	return repo.findOne(repo.db.WithContext(ctx), tokenAddress)
}

func (repo *nftRepository) FindByTokenForUpdate(ctx context.Context, tokenAddress string) (*entity.NFT, error) {
	return repo.findOne(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), tokenAddress)
}

// FindByTokenPrimary pins the read to the primary so a transition committed a moment ago is visible.
func (repo *nftRepository) FindByTokenPrimary(ctx context.Context, tokenAddress string) (*entity.NFT, error) {
	return repo.findOne(repo.db.WithContext(ctx).Clauses(dbresolver.Write), tokenAddress)
}

func (repo *nftRepository) findOne(tx *gorm.DB, tokenAddress string) (*entity.NFT, error) {
	var nftM model.NFTModel
	if err := tx.Where("token_address = ?", tokenAddress).First(&nftM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNFTNotFound
		}

		return nil, errors.Wrap(err, "failed to find nft")
	}

	return toNFTDomain(&nftM), nil
}

// nftProductRow is an NFT joined with the name of its product.
type nftProductRow struct {
	model.NFTModel
	ProductName *string
}

func (repo *nftRepository) ListByDesigner(ctx context.Context, designerID uuid.UUID) ([]*entity.NFTWithProduct, error) {
	return repo.listWithProduct(repo.db.WithContext(ctx).Where("nfts.designer_id = ?", designerID))
}

func (repo *nftRepository) ListAll(ctx context.Context) ([]*entity.NFTWithProduct, error) {
	return repo.listWithProduct(repo.db.WithContext(ctx))
}

func (repo *nftRepository) listWithProduct(tx *gorm.DB) ([]*entity.NFTWithProduct, error) {
	var rows []nftProductRow
	err := tx.Table("nfts").
		Select("nfts.*, products.name AS product_name").
		Joins("LEFT JOIN products ON products.id = nfts.product_id").
		Order("nfts.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list nfts")
	}

	result := make([]*entity.NFTWithProduct, 0, len(rows))
	for i := range rows {
		result = append(result, &entity.NFTWithProduct{
			NFT:         toNFTDomain(&rows[i].NFTModel),
			ProductName: rows[i].ProductName,
		})
	}

	return result, nil
}

func (repo *nftRepository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.NFT, error) {
	var nftMs []*model.NFTModel
	if err := repo.db.WithContext(ctx).Where("product_id = ?", productID).Order("created_at").Find(&nftMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list nfts by product")
	}

	return toNFTDomains(nftMs), nil
}

func (repo *nftRepository) CountActiveByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&model.NFTModel{}).
		Where("product_id = ? AND active = ?", productID, true).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count active nfts")
	}

	return count, nil
}

// groupRow is one active NFT joined with its product.
type groupRow struct {
	ProductID     uuid.UUID
	ProductName   string
	TokenAddress  string
	WalletAddress string
}

func (repo *nftRepository) GroupActiveByProduct(ctx context.Context) ([]*entity.ProductNFTGroup, error) {
	var rows []groupRow
	err := repo.db.WithContext(ctx).Table("nfts").
		Select("nfts.product_id, products.name AS product_name, nfts.token_address, nfts.wallet_address").
		Joins("JOIN products ON products.id = nfts.product_id").
		Where("nfts.active = ?", true).
		Order("products.name, nfts.product_id, nfts.created_at").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to group nfts by product")
	}

	groups := make([]*entity.ProductNFTGroup, 0)
	index := make(map[uuid.UUID]*entity.ProductNFTGroup)
	for _, row := range rows {
		group, ok := index[row.ProductID]
		if !ok {
			group = &entity.ProductNFTGroup{ProductID: row.ProductID, ProductName: row.ProductName}
			index[row.ProductID] = group
			groups = append(groups, group)
		}
		group.NFTs = append(group.NFTs, entity.ProductNFTRef{
			TokenAddress:  row.TokenAddress,
			WalletAddress: row.WalletAddress,
		})
	}

	return groups, nil
}

// ListBatchPrimary walks NFTs in token order starting after afterToken.
func (repo *nftRepository) ListBatchPrimary(ctx context.Context, afterToken string, limit int) ([]*entity.NFT, error) {
	var nftMs []*model.NFTModel
	err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).
		Where("token_address > ?", afterToken).
		Order("token_address").
		Limit(limit).
		Find(&nftMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list nft batch")
	}

	return toNFTDomains(nftMs), nil
}

func (repo *nftRepository) Create(ctx context.Context, nft *entity.NFT) error {
	nftM := fromNFTDomain(nft)

	if err := repo.db.WithContext(ctx).Create(nftM).Error; err != nil {
		if classifyViolation(err) == uniqueViolation {
			return errors.Wrap(repository.ErrNFTAlreadyExists, nft.TokenAddress)
		}
		if classifyViolation(err) == foreignKeyViolation {
			return errors.Wrap(repository.ErrUserNotFound, "designer does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create nft")
	}

	nft.CreatedAt = nftM.CreatedAt
	nft.UpdatedAt = nftM.UpdatedAt

	return nil
}

// Save persists the projection columns that transitions and designer edits change.
func (repo *nftRepository) Save(ctx context.Context, nft *entity.NFT) error {
	nftM := fromNFTDomain(nft)

	result := repo.db.WithContext(ctx).Model(nftM).
		Select("product_id", "active", "listing_state", "listing_source", "synced_at", "updated_at").
		Updates(nftM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to save nft")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNFTNotFound
	}

	nft.UpdatedAt = nftM.UpdatedAt

	return nil
}

func (repo *nftRepository) AppendEvent(ctx context.Context, event *entity.NFTEvent) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(fromNFTEventDomain(event)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append nft event")
	}

	return nil
}

func (repo *nftRepository) ListEvents(ctx context.Context, tokenAddress string) ([]*entity.NFTEvent, error) {
	var eventMs []*model.NFTEventModel
	if err := repo.db.WithContext(ctx).Where("token_address = ?", tokenAddress).Order("created_at").Find(&eventMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list nft events")
	}

	events := make([]*entity.NFTEvent, 0, len(eventMs))
	for _, m := range eventMs {
		events = append(events, toNFTEventDomain(m))
	}

	return events, nil
}

func toNFTDomains(models []*model.NFTModel) []*entity.NFT {
	nfts := make([]*entity.NFT, 0, len(models))
	for _, m := range models {
		nfts = append(nfts, toNFTDomain(m))
	}

	return nfts
}
