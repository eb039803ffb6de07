package impl

import (
	"context"
	"testing"

	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	"atelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSizeService_Create(t *testing.T) {
	designerID := uuid.New()
	product := &entity.Product{ID: uuid.New(), DesignerID: designerID}

	t.Run("owner", func(t *testing.T) {
		repos := newRepoMocks(t)
		service := NewSizeService(repos.txManager, discardLogger())
		ctx := context.Background()

		repos.products.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
		repos.sizes.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Size")).Return(nil)

		size, err := service.Create(ctx, designerID, &usecase.CreateSizeInput{ProductID: product.ID, Label: "M", Quantity: 3})

		require.NoError(t, err)
		assert.Equal(t, "M", size.Label)
		assert.Equal(t, 3, size.Quantity)
	})

	t.Run("other designer", func(t *testing.T) {
		repos := newRepoMocks(t)
		service := NewSizeService(repos.txManager, discardLogger())
		ctx := context.Background()

		repos.products.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

		_, err := service.Create(ctx, uuid.New(), &usecase.CreateSizeInput{ProductID: product.ID, Label: "M", Quantity: 3})

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("missing fields", func(t *testing.T) {
		repos := newRepoMocks(t)
		service := NewSizeService(repos.txManager, discardLogger())

		_, err := service.Create(context.Background(), designerID, &usecase.CreateSizeInput{ProductID: product.ID, Label: "M"})

		assert.True(t, errors.Is(err, domainerrors.ErrRequiredFieldsMissing))
	})
}

func TestSizeService_UpdateQuantity(t *testing.T) {
	designerID := uuid.New()
	product := &entity.Product{ID: uuid.New(), DesignerID: designerID}

	for _, q := range []int{0, -1} {
		repos := newRepoMocks(t)
		service := NewSizeService(repos.txManager, discardLogger())

		_, err := service.UpdateQuantity(context.Background(), designerID, uuid.New(), q)

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "Quantity is required and must be greater than 0", appErr.Message())
	}

	repos := newRepoMocks(t)
	service := NewSizeService(repos.txManager, discardLogger())
	ctx := context.Background()
	size := &entity.Size{ID: uuid.New(), ProductID: product.ID, Label: "M", Quantity: 1}
	missing := uuid.New()

	repos.sizes.EXPECT().FindByID(ctx, size.ID).Return(size, nil)
	repos.sizes.EXPECT().FindByID(ctx, missing).Return(nil, repository.ErrSizeNotFound)
	repos.products.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	repos.sizes.EXPECT().Update(ctx, size).Return(nil)

	updated, err := service.UpdateQuantity(ctx, designerID, size.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Quantity)

	_, err = service.UpdateQuantity(ctx, designerID, missing, 7)
	assert.True(t, errors.Is(err, domainerrors.ErrSizeNotFound))
}

func TestSizeService_Delete_NotFound(t *testing.T) {
	repos := newRepoMocks(t)
	service := NewSizeService(repos.txManager, discardLogger())
	ctx := context.Background()
	sizeID := uuid.New()

	repos.sizes.EXPECT().FindByID(ctx, sizeID).Return(nil, repository.ErrSizeNotFound)

	err := service.Delete(ctx, uuid.New(), sizeID)

	assert.True(t, errors.Is(err, domainerrors.ErrSizeNotFound))
}
