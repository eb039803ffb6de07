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

type sizeRepository struct {
	db *gorm.DB
}

// NewSizeRepository is the constructor for sizeRepository.
func NewSizeRepository(db *gorm.DB) repository.SizeRepository {
	return &sizeRepository{db: db}
}

func (repo *sizeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Size, error) {
	var sizeM model.SizeModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&sizeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSizeNotFound
		}

		return nil, errors.Wrap(err, "failed to find size")
	}

	return toSizeDomain(&sizeM), nil
}

func (repo *sizeRepository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Size, error) {
	var sizeMs []*model.SizeModel
	if err := repo.db.WithContext(ctx).Where("product_id = ?", productID).Order("created_at").Find(&sizeMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list sizes")
	}

	sizes := make([]*entity.Size, 0, len(sizeMs))
	for _, m := range sizeMs {
		sizes = append(sizes, toSizeDomain(m))
	}

	return sizes, nil
}

func (repo *sizeRepository) Create(ctx context.Context, size *entity.Size) error {
	if size.ID == uuid.Nil {
		size.ID = uuid.New()
	}
	sizeM := fromSizeDomain(size)

	if err := repo.db.WithContext(ctx).Create(sizeM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create size")
	}

	size.CreatedAt = sizeM.CreatedAt
	size.UpdatedAt = sizeM.UpdatedAt

	return nil
}

func (repo *sizeRepository) Update(ctx context.Context, size *entity.Size) error {
	sizeM := fromSizeDomain(size)

	result := repo.db.WithContext(ctx).Model(sizeM).Select("*").Omit("created_at", "product_id").Updates(sizeM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update size")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSizeNotFound
	}

	size.UpdatedAt = sizeM.UpdatedAt

	return nil
}

func (repo *sizeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.SizeModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete size")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSizeNotFound
	}

	return nil
}

func (repo *sizeRepository) DeleteByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).Where("product_id = ?", productID).Delete(&model.SizeModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product sizes")
	}

	return result.RowsAffected, nil
}
