package postgres

import (
	"context"
	"encoding/json"

	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	"atelier/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, repo.db.WithContext(ctx), "failed to find user by id", "id = ?", id)
}

// FindByIDForUpdate retrieves a user with a row lock held until the transaction ends.
func (repo *userRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	tx := repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})

	return repo.findOne(ctx, tx, "failed to lock user", "id = ?", id)
}

// FindByUsername retrieves a single user by username.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return repo.findOne(ctx, repo.db.WithContext(ctx), "failed to find user by username", "username = ?", username)
}

// FindByWallet retrieves the first user whose wallet list contains the address.
func (repo *userRepository) FindByWallet(ctx context.Context, walletAddress string) (*entity.User, error) {
	needle, err := json.Marshal([]string{walletAddress})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode wallet filter")
	}

	return repo.findOne(ctx, repo.db.WithContext(ctx).Order("created_at"),
		"failed to find user by wallet", "solana_wallets @> ?::jsonb", string(needle))
}

func (repo *userRepository) findOne(_ context.Context, tx *gorm.DB, errMsg string, query string, args ...any) (*entity.User, error) {
	var userM model.UserModel
	if err := tx.Where(query, args...).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, errMsg)
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// ListByRole returns every user holding the role, oldest first.
func (repo *userRepository) ListByRole(ctx context.Context, role entity.Role) ([]*entity.User, error) {
	var userMs []*model.UserModel
	if err := repo.db.WithContext(ctx).Where("role = ?", role.String()).Order("created_at").Find(&userMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users by role")
	}

	users := make([]*entity.User, 0, len(userMs))
	for _, m := range userMs {
		users = append(users, toUserDomain(m))
	}

	return users, nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		switch classifyViolation(err) {
		case uniqueViolation:
			return errors.Wrap(repository.ErrUserAlreadyExists, "username or email already exists")
		case notNullViolation, checkViolation:
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user information")
		default:
			return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
		}
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update overwrites every mutable column of the user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).Model(userM).Select("*").Omit("created_at").Updates(userM)
	if err := result.Error; err != nil {
		if classifyViolation(err) == uniqueViolation {
			return errors.Wrap(repository.ErrUserAlreadyExists, "username or email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}
