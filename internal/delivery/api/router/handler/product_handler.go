package handler

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"atelier/internal/delivery/api/middleware"
	"atelier/internal/delivery/api/response"
	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	"atelier/internal/errors"
	"atelier/internal/usecase"
	"atelier/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler serves the product catalog.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// CreateProductRequest represents the request body for adding a product to a collection
type CreateProductRequest struct {
	Name         string     `json:"name" validate:"max=256"`
	Gender       string     `json:"gender" validate:"max=64"`
	Category     string     `json:"category" validate:"max=128"`
	Color        stringList `json:"color"`
	Description  string     `json:"description" validate:"max=4096"`
	Price        *float64   `json:"price"`
	CollectionID string     `json:"collectionId"`
	ImageURL1    string     `json:"imageUrl1"`
	ImageURL2    string     `json:"imageUrl2"`
	ImageURL3    string     `json:"imageUrl3"`
	ImageURL4    string     `json:"imageUrl4"`
	ImageURL5    string     `json:"imageUrl5"`
	JSONURL      string     `json:"jsonUrl"`
	VideoURL     string     `json:"videoUrl"`
}

// UpdateProductRequest is a patch; null clears optional fields.
type UpdateProductRequest struct {
	Name        util.Optional[string]     `json:"name"`
	Gender      util.Optional[string]     `json:"gender"`
	Category    util.Optional[string]     `json:"category"`
	Color       util.Optional[stringList] `json:"color"`
	Description util.Optional[string]     `json:"description"`
	Price       util.Optional[float64]    `json:"price"`
	ImageURL1   util.Optional[string]     `json:"imageUrl1"`
	ImageURL2   util.Optional[string]     `json:"imageUrl2"`
	ImageURL3   util.Optional[string]     `json:"imageUrl3"`
	ImageURL4   util.Optional[string]     `json:"imageUrl4"`
	ImageURL5   util.Optional[string]     `json:"imageUrl5"`
	JSONURL     util.Optional[string]     `json:"jsonUrl"`
	VideoURL    util.Optional[string]     `json:"videoUrl"`
}

func (r *UpdateProductRequest) toInput() *usecase.UpdateProductInput {
	input := &usecase.UpdateProductInput{
		Name:        r.Name,
		Gender:      r.Gender,
		Category:    r.Category,
		Description: r.Description,
		Price:       r.Price,
		ImageURLs:   [entity.ProductImageSlots]util.Optional[string]{r.ImageURL1, r.ImageURL2, r.ImageURL3, r.ImageURL4, r.ImageURL5},
		JSONURL:     r.JSONURL,
		VideoURL:    r.VideoURL,
	}
	if r.Color.Set {
		input.Colors = util.Optional[[]string]{Set: true, Null: r.Color.Null, Value: r.Color.Value}
	}

	return input
}

// Create handles product creation
func (h *ProductHandler) Create(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthenticated(c)
	}

	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return bindingError(c)
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	collectionID := uuid.Nil
	if req.CollectionID != "" {
		parsed, err := uuid.Parse(req.CollectionID)
		if err != nil {
			return invalidIDError(c, "collection")
		}
		collectionID = parsed
	}

	product, err := h.productUC.Create(c.Request().Context(), userID, &usecase.CreateProductInput{
		Name:         req.Name,
		Gender:       req.Gender,
		Category:     req.Category,
		Colors:       req.Color,
		Description:  req.Description,
		Price:        req.Price,
		CollectionID: collectionID,
		ImageURLs:    [entity.ProductImageSlots]string{req.ImageURL1, req.ImageURL2, req.ImageURL3, req.ImageURL4, req.ImageURL5},
		JSONURL:      req.JSONURL,
		VideoURL:     req.VideoURL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toProductView(product))
}

// Update applies a partial update to an owned product
func (h *ProductHandler) Update(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthenticated(c)
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidIDError(c, "product")
	}

	var req UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return bindingError(c)
	}

	product, err := h.productUC.Update(c.Request().Context(), userID, productID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductView(product))
}

// Delete removes an owned product
func (h *ProductHandler) Delete(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthenticated(c)
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidIDError(c, "product")
	}

	if err := h.productUC.Delete(c.Request().Context(), userID, productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return deleted(c, "Product deleted successfully")
}

// ListOwn returns the caller's products
func (h *ProductHandler) ListOwn(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthenticated(c)
	}

	products, err := h.productUC.ListOwn(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductViews(products))
}

// Get returns a product by id
func (h *ProductHandler) Get(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidIDError(c, "product")
	}

	product, err := h.productUC.Get(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductView(product))
}

// GetWithDesigner returns a product with its designer reference
func (h *ProductHandler) GetWithDesigner(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidIDError(c, "product")
	}

	result, err := h.productUC.GetWithDesigner(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, productWithDesignerView{
		productView: toProductView(result.Product),
		DesignerID: designerRefView{
			ID:       result.Product.DesignerID,
			Username: result.DesignerUsername,
		},
	})
}

// ListDresses returns the products of the Dresses category
func (h *ProductHandler) ListDresses(c echo.Context) error {
	products, err := h.productUC.ListDresses(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductViews(products))
}

// Search filters the catalog by the query parameters
func (h *ProductHandler) Search(c echo.Context) error {
	filter, err := parseProductFilter(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	summaries, err := h.productUC.Search(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	views := make([]productSummaryView, 0, len(summaries))
	for _, summary := range summaries {
		views = append(views, productSummaryView{
			productView:          toProductView(summary.Product),
			NFTCount:             summary.NFTCount,
			FirstNFTTokenAddress: summary.FirstNFTTokenAddress,
		})
	}

	return response.Success(c, http.StatusOK, views)
}

// ShareQR renders a PNG QR code linking to the product page
func (h *ProductHandler) ShareQR(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidIDError(c, "product")
	}

	png, err := h.productUC.ShareQR(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Blob(c, "image/png", "", png)
}

func parseProductFilter(c echo.Context) (repository.ProductFilter, error) {
	filter := repository.ProductFilter{
		Category: c.QueryParam("category"),
		Designer: c.QueryParam("designer"),
		Color:    c.QueryParam("color"),
		Size:     c.QueryParam("size"),
		HasNFTs:  c.QueryParam("hasNFTsForSale") == "true",
	}

	minPrice, err := parsePriceBound(c.QueryParam("minPrice"))
	if err != nil {
		return filter, domainerrors.ErrInvalidFilter.WithDetails("minPrice must be a finite number")
	}
	filter.MinPrice = minPrice

	maxPrice, err := parsePriceBound(c.QueryParam("maxPrice"))
	if err != nil {
		return filter, domainerrors.ErrInvalidFilter.WithDetails("maxPrice must be a finite number")
	}
	filter.MaxPrice = maxPrice

	return filter, nil
}

func parsePriceBound(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, errors.Errorf("price bound %q is not finite", raw)
	}

	return &value, nil
}
