package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "atelier/internal/delivery/context"
	"atelier/internal/domain/constants"
	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	"atelier/internal/domain/service"
	"atelier/internal/usecase"
	"atelier/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	txManager repository.TransactionManager
	cache     service.ProductCache
	qrCode    service.QRCodeService
	logger    *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Cache     service.ProductCache
	QRCode    service.QRCodeService
	Logger    *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager: params.TxManager,
		cache:     params.Cache,
		qrCode:    params.QRCode,
		logger:    params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// cleanColors trims colors and drops blanks, keeping the case they were sent in.
func cleanColors(colors []string) []string {
	out := make([]string, 0, len(colors))
	for _, c := range colors {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}

	return out
}

// Create adds a product to a collection the caller owns and indexes it on the collection.
func (srv *productService) Create(ctx context.Context, userID uuid.UUID, input *usecase.CreateProductInput) (*entity.Product, error) {
	colors := cleanColors(input.Colors)
	if input.Name == "" || input.Gender == "" || input.Category == "" || len(colors) == 0 ||
		input.Price == nil || input.CollectionID == uuid.Nil || input.ImageURLs[0] == "" {
		return nil, errors.WithStack(domainerrors.ErrRequiredFieldsMissing)
	}
	if *input.Price < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "price cannot be negative")
	}

	srv.log(ctx).Info("Creating product", slog.Any("userID", userID), slog.Any("collectionID", input.CollectionID))

	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		collectionRepo := repoFactory.NewCollectionRepository()

		collection, err := findOwnedCollection(ctx, collectionRepo, input.CollectionID, userID)
		if err != nil {
			return err
		}

		designer, err := findDesigner(ctx, repoFactory.NewUserRepository(), userID)
		if err != nil {
			return err
		}

		now := time.Now()
		product = &entity.Product{
			ID:                uuid.New(),
			Name:              input.Name,
			Gender:            input.Gender,
			Category:          input.Category,
			Colors:            colors,
			Description:       input.Description,
			Price:             *input.Price,
			CollectionID:      collection.ID,
			CollectionAddress: collection.CollectionAddress,
			ImageURLs:         input.ImageURLs,
			JSONURL:           input.JSONURL,
			VideoURL:          input.VideoURL,
			DesignerID:        designer.ID,
			Username:          designer.Username,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		if err := repoFactory.NewProductRepository().Create(ctx, product); err != nil {
			return errors.Wrap(err, "failed to create product")
		}

		collection.AddProduct(product.ID)
		collection.UpdatedAt = now
		if err := collectionRepo.Update(ctx, collection); err != nil {
			return errors.Wrap(err, "failed to index product on collection")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	return product, nil
}

func applyRequiredString(field *string, opt util.Optional[string], name string) error {
	if !opt.Set {
		return nil
	}
	if opt.Null || opt.Value == "" {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "%s cannot be empty", name)
	}
	*field = opt.Value

	return nil
}

func applyOptionalString(field *string, opt util.Optional[string]) {
	if opt.Set {
		*field = opt.Value
	}
}

// applyProductPatch mutates product with the present fields of input.
func applyProductPatch(product *entity.Product, input *usecase.UpdateProductInput) error {
	if err := applyRequiredString(&product.Name, input.Name, "name"); err != nil {
		return err
	}
	if err := applyRequiredString(&product.Gender, input.Gender, "gender"); err != nil {
		return err
	}
	if err := applyRequiredString(&product.Category, input.Category, "category"); err != nil {
		return err
	}
	if err := applyRequiredString(&product.ImageURLs[0], input.ImageURLs[0], "imageUrl1"); err != nil {
		return err
	}
	if input.Colors.Set {
		colors := cleanColors(input.Colors.Value)
		if input.Colors.Null || len(colors) == 0 {
			return errors.Wrap(domainerrors.ErrValidationFailed, "color cannot be empty")
		}
		product.Colors = colors
	}
	if input.Price.Set {
		if input.Price.Null || input.Price.Value < 0 {
			return errors.Wrap(domainerrors.ErrValidationFailed, "price must be a non-negative number")
		}
		product.Price = input.Price.Value
	}

	applyOptionalString(&product.Description, input.Description)
	for i := 1; i < entity.ProductImageSlots; i++ {
		applyOptionalString(&product.ImageURLs[i], input.ImageURLs[i])
	}
	applyOptionalString(&product.JSONURL, input.JSONURL)
	applyOptionalString(&product.VideoURL, input.VideoURL)

	return nil
}

// Update patches a product whose collection the caller owns.
func (srv *productService) Update(ctx context.Context, userID, productID uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, _, err := findOwnedProduct(ctx, repoFactory, productID, userID)
		if err != nil {
			return err
		}

		if err := applyProductPatch(found, input); err != nil {
			return err
		}
		found.UpdatedAt = time.Now()

		if err := repoFactory.NewProductRepository().Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update product")
		}
		product = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	srv.invalidate(ctx, productID)

	return product, nil
}

// Delete removes the product, its sizes and its entry in the collection index.
func (srv *productService) Delete(ctx context.Context, userID, productID uuid.UUID) error {
	srv.log(ctx).Info("Deleting product", slog.Any("userID", userID), slog.Any("productID", productID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		_, collection, err := findOwnedProduct(ctx, repoFactory, productID, userID)
		if err != nil {
			return err
		}

		collection.RemoveProduct(productID)
		collection.UpdatedAt = time.Now()
		if err := repoFactory.NewCollectionRepository().Update(ctx, collection); err != nil {
			return errors.Wrap(err, "failed to unindex product on collection")
		}

		if err := repoFactory.NewProductRepository().Delete(ctx, productID); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
			}

			return errors.Wrap(err, "failed to delete product")
		}

		removed, err := repoFactory.NewSizeRepository().DeleteByProduct(ctx, productID)
		if err != nil {
			return errors.Wrap(err, "failed to delete product sizes")
		}
		srv.log(ctx).Debug("Deleted product sizes", slog.Any("productID", productID), slog.Int64("count", removed))

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	srv.invalidate(ctx, productID)

	return nil
}

func (srv *productService) invalidate(ctx context.Context, productID uuid.UUID) {
	if err := srv.cache.Invalidate(ctx, productID); err != nil {
		srv.log(ctx).Warn("Failed to invalidate cached product", slog.Any("productID", productID), slog.Any("error", err))
	}
}

// ListOwn returns the products the caller designed.
func (srv *productService) ListOwn(ctx context.Context, userID uuid.UUID) ([]*entity.Product, error) {
	var products []*entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewProductRepository().ListByDesigner(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list designer products")
		}
		products = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list own products")
	}

	return products, nil
}

// Get reads through the product cache.
func (srv *productService) Get(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	cached, ok, err := srv.cache.Get(ctx, productID)
	if err != nil {
		srv.log(ctx).Warn("Product cache read failed", slog.Any("productID", productID), slog.Any("error", err))
	}
	if ok {
		return cached, nil
	}

	var product *entity.Product

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findProduct(ctx, repoFactory.NewProductRepository(), productID)
		if err != nil {
			return err
		}
		product = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get product")
	}

	if err := srv.cache.Set(ctx, product); err != nil {
		srv.log(ctx).Warn("Product cache write failed", slog.Any("productID", productID), slog.Any("error", err))
	}

	return product, nil
}

// GetWithDesigner returns the product with its designer's current username.
func (srv *productService) GetWithDesigner(ctx context.Context, productID uuid.UUID) (*usecase.ProductWithDesigner, error) {
	product, err := srv.Get(ctx, productID)
	if err != nil {
		return nil, err
	}

	result := &usecase.ProductWithDesigner{Product: product, DesignerUsername: product.Username}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		designer, err := repoFactory.NewUserRepository().FindByID(ctx, product.DesignerID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to find product designer")
		}
		result.DesignerUsername = designer.Username

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get product designer")
	}

	return result, nil
}

// ListDresses returns the products of the dresses landing page.
func (srv *productService) ListDresses(ctx context.Context) ([]*entity.Product, error) {
	var products []*entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewProductRepository().ListByCategory(ctx, constants.CategoryDresses)
		if err != nil {
			return errors.Wrap(err, "failed to list dresses")
		}
		products = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list dresses")
	}

	return products, nil
}

// Search runs the catalog filter.
func (srv *productService) Search(ctx context.Context, filter repository.ProductFilter) ([]*entity.ProductSummary, error) {
	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		return []*entity.ProductSummary{}, nil
	}

	var summaries []*entity.ProductSummary

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewProductRepository().Search(ctx, filter)
		if err != nil {
			return errors.Wrap(err, "failed to search products")
		}
		summaries = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	return summaries, nil
}

// ShareQR renders the share QR code of an existing product.
func (srv *productService) ShareQR(ctx context.Context, productID uuid.UUID) ([]byte, error) {
	if _, err := srv.Get(ctx, productID); err != nil {
		return nil, err
	}

	png, err := srv.qrCode.GenerateProductQR(productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate product qr code")
	}

	return png, nil
}
