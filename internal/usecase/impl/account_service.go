// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	deliverycontext "atelier/internal/delivery/context"
	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	"atelier/internal/domain/service"
	"atelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a regular or designer account.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	if input.Username == "" || input.Password == "" || input.Email == "" {
		return nil, errors.Wrap(domainerrors.ErrRequiredFieldsMissing, "username, password and email are required")
	}

	role := entity.RoleFromRequest(input.Role)
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username), slog.String("role", role.String()))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	now := time.Now()
	user := &entity.User{
		ID:              uuid.New(),
		Username:        input.Username,
		Email:           input.Email,
		PasswordHash:    hashedPassword,
		SolanaWallets:   []string{},
		Role:            role,
		ShippingAddress: input.ShippingAddress,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if input.SolanaWallet != "" {
		user.SolanaWallets = []string{input.SolanaWallet}
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserRepository().Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrUserAlreadyExists) {
				return domainerrors.ErrUserAlreadyExists.WrapMessage("registration rejected")
			}

			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to register user")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", user.ID))

	return user, nil
}

// Login verifies credentials and issues an access token. Unknown usernames and wrong
// passwords produce the same error.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewUserRepository().FindByUsername(ctx, input.Username)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown username")
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to log in")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch on login", slog.Any("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	token, err := srv.tokenService.GenerateToken(user.ID, user.Role.String())
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenGenerationFailed, err.Error())
	}

	return &usecase.LoginOutput{Token: token, User: user}, nil
}

// GetProfile returns the caller's account.
func (srv *accountService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	srv.log(ctx).Debug("Getting user profile", slog.Any("userID", userID))

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findUser(ctx, repoFactory.NewUserRepository(), userID)
		if err != nil {
			return err
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user profile")
	}

	return user, nil
}

// UpdateProfile applies the present fields of the patch.
func (srv *accountService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	srv.log(ctx).Info("Updating user profile", slog.Any("userID", userID))

	if input.Email.Set && (input.Email.Null || input.Email.Value == "") {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "email cannot be empty")
	}

	return srv.mutateUser(ctx, userID, func(user *entity.User) bool {
		if input.Email.Present() {
			user.Email = input.Email.Value
		}
		if input.SolanaWallets.Set {
			wallets := []string{}
			for _, w := range input.SolanaWallets.Value {
				if w != "" && !slices.Contains(wallets, w) {
					wallets = append(wallets, w)
				}
			}
			user.SolanaWallets = wallets
		}
		if input.ShippingAddress.Set {
			if input.ShippingAddress.Null {
				user.ShippingAddress = nil
			} else {
				addr := input.ShippingAddress.Value
				user.ShippingAddress = &addr
			}
		}

		return true
	})
}

// AddWallet links the address to the caller; adding a known address changes nothing.
func (srv *accountService) AddWallet(ctx context.Context, userID uuid.UUID, walletAddress string) (*entity.User, error) {
	if walletAddress == "" {
		return nil, errors.WithStack(domainerrors.ErrWalletAddressRequired)
	}

	return srv.mutateUser(ctx, userID, func(user *entity.User) bool {
		return user.AddWallet(walletAddress)
	})
}

// RemoveWallet unlinks the address; removing an unknown address changes nothing.
func (srv *accountService) RemoveWallet(ctx context.Context, userID uuid.UUID, walletAddress string) (*entity.User, error) {
	if walletAddress == "" {
		return nil, errors.WithStack(domainerrors.ErrWalletAddressRequired)
	}

	return srv.mutateUser(ctx, userID, func(user *entity.User) bool {
		return user.RemoveWallet(walletAddress)
	})
}

// VerifyWallet reports whether the address is linked to the caller.
func (srv *accountService) VerifyWallet(ctx context.Context, userID uuid.UUID, walletAddress string) (bool, error) {
	if walletAddress == "" {
		return false, errors.WithStack(domainerrors.ErrWalletAddressRequired)
	}

	user, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return false, err
	}

	return user.HasWallet(walletAddress), nil
}

// mutateUser locks the user row, applies fn and saves when fn reports a change.
func (srv *accountService) mutateUser(ctx context.Context, userID uuid.UUID, fn func(*entity.User) bool) (*entity.User, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		locked, err := userRepo.FindByIDForUpdate(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if fn(locked) {
			locked.UpdatedAt = time.Now()
			if err := userRepo.Update(ctx, locked); err != nil {
				if errors.Is(err, repository.ErrUserAlreadyExists) {
					return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
				}

				return errors.Wrap(err, "failed to update user")
			}
		}
		user = locked

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	return user, nil
}
