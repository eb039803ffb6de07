package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"atelier/config"
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

// purchaseDateLayout renders dates as month/day/year.
const purchaseDateLayout = "1/2/2006"

// purchaseService implements the PurchaseUsecase interface.
type purchaseService struct {
	txManager        repository.TransactionManager
	publisher        service.EventPublisher
	emailSender      service.EmailSender
	buyerTemplateID  int64
	sellerTemplateID int64
	logger           *slog.Logger
}

// PurchaseServiceParams holds dependencies for PurchaseService, injected by Fx.
type PurchaseServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	Publisher   service.EventPublisher
	EmailSender service.EmailSender
	Config      *config.Config
	Logger      *slog.Logger
}

// NewPurchaseService is the constructor for purchaseService.
func NewPurchaseService(params PurchaseServiceParams) usecase.PurchaseUsecase {
	srv := &purchaseService{
		txManager:   params.TxManager,
		publisher:   params.Publisher,
		emailSender: params.EmailSender,
		logger:      params.Logger,
	}
	if params.Config != nil && params.Config.Email != nil {
		srv.buyerTemplateID = params.Config.Email.BuyerTemplateID
		srv.sellerTemplateID = params.Config.Email.SellerTemplateID
	}

	return srv
}

func (srv *purchaseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

type soldItem struct {
	name  string
	price string
}

// Purchase marks the NFT sold and emails both parties once the sale is committed.
// Email failures never fail the purchase.
func (srv *purchaseService) Purchase(ctx context.Context, userID uuid.UUID, input *usecase.PurchaseInput) error {
	if input.TokenAddress == "" {
		return errors.Wrap(domainerrors.ErrRequiredFieldsMissing, "nftId is required")
	}

	srv.log(ctx).Info("Processing purchase", slog.Any("userID", userID), slog.String("tokenAddress", input.TokenAddress))

	var (
		event *entity.NFTEvent
		item  = soldItem{name: input.TokenAddress}
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		nftRepo := repoFactory.NewNFTRepository()

		nft, err := nftRepo.FindByTokenForUpdate(ctx, input.TokenAddress)
		if err != nil {
			if errors.Is(err, repository.ErrNFTNotFound) {
				return errors.Wrap(domainerrors.ErrNFTNotFound, "nft not found")
			}

			return errors.Wrap(err, "failed to find nft")
		}

		event, err = applyTransition(ctx, nftRepo, nft, entity.Transition{
			Kind:    entity.TransitionSaleReported,
			ActorID: &userID,
			At:      time.Now(),
		})
		if err != nil {
			return err
		}

		if nft.ProductID != nil {
			product, err := repoFactory.NewProductRepository().FindByID(ctx, *nft.ProductID)
			switch {
			case err == nil:
				item.name = product.Name
				item.price = strconv.FormatFloat(product.Price, 'f', -1, 64)
			case !errors.Is(err, repository.ErrProductNotFound):
				return errors.Wrap(err, "failed to find sold product")
			}
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to process purchase")
	}

	publishEvents(ctx, srv.publisher, srv.log(ctx), event)
	srv.notify(ctx, input, item)

	return nil
}

func (srv *purchaseService) notify(ctx context.Context, input *usecase.PurchaseInput, item soldItem) {
	emails := []service.TemplateEmail{
		{
			To:         input.BuyerEmail,
			TemplateID: srv.buyerTemplateID,
			Params: map[string]any{
				"product_name":  item.name,
				"order_id":      input.TokenAddress,
				"purchase_date": time.Now().Format(purchaseDateLayout),
			},
		},
		{
			To:         input.SellerEmail,
			TemplateID: srv.sellerTemplateID,
			Params: map[string]any{
				"buyer_address": buyerAddress(input),
				"product_name":  item.name,
				"sale_price":    item.price,
			},
		},
	}

	for _, email := range emails {
		if email.To == "" {
			continue
		}
		if err := srv.emailSender.SendTemplate(ctx, email); err != nil {
			srv.log(ctx).Error("Failed to send purchase email",
				slog.Int64("templateID", email.TemplateID),
				slog.String("tokenAddress", input.TokenAddress),
				slog.Any("error", err))
		}
	}
}

// buyerAddress is the seller email's view of where to ship: the line as sent, or the
// structured address keyed the way clients send it.
func buyerAddress(input *usecase.PurchaseInput) any {
	if input.ShippingAddressLine != "" || input.ShippingAddress == nil {
		return input.ShippingAddressLine
	}

	addr := input.ShippingAddress
	fields := map[string]string{
		"street":     addr.Street,
		"apartment":  addr.Apartment,
		"city":       addr.City,
		"state":      addr.State,
		"postalCode": addr.PostalCode,
		"country":    addr.Country,
	}
	for key, value := range fields {
		if value == "" {
			delete(fields, key)
		}
	}

	return fields
}
