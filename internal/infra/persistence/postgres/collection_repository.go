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
)

type collectionRepository struct {
	db *gorm.DB
}

// NewCollectionRepository is the constructor for collectionRepository.
func NewCollectionRepository(db *gorm.DB) repository.CollectionRepository {
	return &collectionRepository{db: db}
}

func (repo *collectionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Collection, error) {
	return repo.findOne(repo.db.WithContext(ctx), "id = ?", id)
}

func (repo *collectionRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Collection, error) {
	tx := repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})

	return repo.findOne(tx, "id = ?", id)
}

func (repo *collectionRepository) FindByAddress(ctx context.Context, collectionAddress string) (*entity.Collection, error) {
	return repo.findOne(repo.db.WithContext(ctx), "collection_address = ?", collectionAddress)
}

func (repo *collectionRepository) findOne(tx *gorm.DB, query string, args ...any) (*entity.Collection, error) {
	var collectionM model.CollectionModel
	if err := tx.Where(query, args...).First(&collectionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCollectionNotFound
		}

		return nil, errors.Wrap(err, "failed to find collection")
	}

	return toCollectionDomain(&collectionM), nil
}

func (repo *collectionRepository) List(ctx context.Context) ([]*entity.Collection, error) {
	return repo.list(repo.db.WithContext(ctx))
}

func (repo *collectionRepository) ListByDesigner(ctx context.Context, designerID uuid.UUID) ([]*entity.Collection, error) {
	return repo.list(repo.db.WithContext(ctx).Where("designer_id = ?", designerID))
}

func (repo *collectionRepository) list(tx *gorm.DB) ([]*entity.Collection, error) {
	var collectionMs []*model.CollectionModel
	if err := tx.Order("created_at DESC").Find(&collectionMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list collections")
	}

	collections := make([]*entity.Collection, 0, len(collectionMs))
	for _, m := range collectionMs {
		collections = append(collections, toCollectionDomain(m))
	}

	return collections, nil
}

func (repo *collectionRepository) Create(ctx context.Context, collection *entity.Collection) error {
	if collection.ID == uuid.Nil {
		collection.ID = uuid.New()
	}
	collectionM := fromCollectionDomain(collection)

	if err := repo.db.WithContext(ctx).Create(collectionM).Error; err != nil {
		if classifyViolation(err) == foreignKeyViolation {
			return errors.Wrap(repository.ErrUserNotFound, "designer does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create collection")
	}

	collection.CreatedAt = collectionM.CreatedAt
	collection.UpdatedAt = collectionM.UpdatedAt

	return nil
}

func (repo *collectionRepository) Update(ctx context.Context, collection *entity.Collection) error {
	collectionM := fromCollectionDomain(collection)

	result := repo.db.WithContext(ctx).Model(collectionM).Select("*").Omit("created_at", "designer_id").Updates(collectionM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update collection")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCollectionNotFound
	}

	collection.UpdatedAt = collectionM.UpdatedAt

	return nil
}

func (repo *collectionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CollectionModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete collection")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCollectionNotFound
	}

	return nil
}
