package handler

import (
	"time"

	"atelier/internal/domain/entity"
	"atelier/internal/domain/service"

	"github.com/google/uuid"
)

// JSON renderings keep the field names the storefront clients already consume.

type shippingAddressView struct {
	Street     string `json:"street"`
	Apartment  string `json:"apartment"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type collectionRefView struct {
	CollectionID      uuid.UUID `json:"collectionId"`
	CollectionAddress string    `json:"collectionAddress"`
}

type userView struct {
	ID                  uuid.UUID            `json:"_id"`
	Username            string               `json:"username"`
	Email               string               `json:"email"`
	SolanaWallet        []string             `json:"solanaWallet"`
	Role                string               `json:"role"`
	ShippingAddress     *shippingAddressView `json:"shippingAddress,omitempty"`
	CollectionAddresses []collectionRefView  `json:"collectionAddresses"`
	CreatedAt           time.Time            `json:"createdAt"`
	UpdatedAt           time.Time            `json:"updatedAt"`
}

type loginUserView struct {
	ID           uuid.UUID `json:"_id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	SolanaWallet []string  `json:"solanaWallet"`
	Role         string    `json:"role"`
}

type loginView struct {
	Token string        `json:"token"`
	User  loginUserView `json:"user"`
}

type profileView struct {
	UserID          uuid.UUID            `json:"userId"`
	Username        string               `json:"username"`
	Email           string               `json:"email"`
	SolanaWallet    []string             `json:"solanaWallet"`
	Role            string               `json:"role"`
	ShippingAddress *shippingAddressView `json:"shippingAddress"`
}

type walletsView struct {
	SolanaWallet []string `json:"solanaWallet"`
}

type designerSummaryView struct {
	ID           uuid.UUID `json:"_id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	SolanaWallet []string  `json:"solanaWallet"`
}

type designerRefView struct {
	ID       uuid.UUID `json:"_id"`
	Username string    `json:"username"`
}

type designerCollectionView struct {
	ID       uuid.UUID `json:"_id"`
	Name     string    `json:"name"`
	ImageURL string    `json:"imageUrl"`
}

type designerProfileView struct {
	ID           uuid.UUID                `json:"_id"`
	Username     string                   `json:"username"`
	SolanaWallet []string                 `json:"solanaWallet"`
	Collections  []designerCollectionView `json:"collections"`
}

type collectionView struct {
	ID                uuid.UUID   `json:"_id"`
	Name              string      `json:"name"`
	CollectionAddress string      `json:"collectionAddress"`
	ImageURL          string      `json:"imageUrl"`
	JSONURL           string      `json:"jsonUrl"`
	DesignerID        uuid.UUID   `json:"designerId"`
	DesignerUsername  string      `json:"designerUsername"`
	Products          []uuid.UUID `json:"products"`
	CreatedAt         time.Time   `json:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`
}

type collectionSummaryView struct {
	ID                uuid.UUID `json:"_id"`
	Name              string    `json:"name"`
	CollectionAddress string    `json:"collectionAddress"`
	ImageURL          string    `json:"imageUrl"`
	JSONURL           string    `json:"jsonUrl"`
}

type productView struct {
	ID                uuid.UUID `json:"_id"`
	Name              string    `json:"name"`
	Gender            string    `json:"gender"`
	Category          string    `json:"category"`
	Color             []string  `json:"color"`
	Description       string    `json:"description"`
	Price             float64   `json:"price"`
	CollectionID      uuid.UUID `json:"collectionId"`
	CollectionAddress string    `json:"collectionAddress"`
	ImageURL1         string    `json:"imageUrl1"`
	ImageURL2         string    `json:"imageUrl2"`
	ImageURL3         string    `json:"imageUrl3"`
	ImageURL4         string    `json:"imageUrl4"`
	ImageURL5         string    `json:"imageUrl5"`
	JSONURL           string    `json:"jsonUrl"`
	VideoURL          string    `json:"videoUrl"`
	DesignerID        uuid.UUID `json:"designerId"`
	Username          string    `json:"username"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// productWithDesignerView replaces designerId with the designer reference.
type productWithDesignerView struct {
	productView
	DesignerID designerRefView `json:"designerId"`
}

type productSummaryView struct {
	productView
	NFTCount             int64   `json:"nftCount"`
	FirstNFTTokenAddress *string `json:"firstNftTokenAddress"`
}

type sizeView struct {
	ID        uuid.UUID `json:"_id"`
	ProductID uuid.UUID `json:"productId"`
	Size      string    `json:"size"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type nftView struct {
	ID            string     `json:"_id"`
	TokenAddress  string     `json:"tokenAddress"`
	WalletAddress string     `json:"walletAddress"`
	DesignerID    uuid.UUID  `json:"designerId"`
	Username      string     `json:"username"`
	ProductID     *uuid.UUID `json:"productId"`
	Active        string     `json:"active"`
	Listed        string     `json:"listed"`
	Status        string     `json:"status,omitempty"`
	ListingState  string     `json:"listingState"`
	ListingSource string     `json:"listingSource"`
	SyncedAt      *time.Time `json:"syncedAt"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type nftWithProductView struct {
	nftView
	ProductName *string `json:"productName"`
}

type nftResultView struct {
	Success bool    `json:"success"`
	NFT     nftView `json:"nft"`
}

type nftEventView struct {
	ID           uuid.UUID  `json:"_id"`
	TokenAddress string     `json:"tokenAddress"`
	Kind         string     `json:"kind"`
	FromState    string     `json:"fromState"`
	ToState      string     `json:"toState"`
	Active       string     `json:"active"`
	Source       string     `json:"source"`
	ActorID      *uuid.UUID `json:"actorId"`
	CreatedAt    time.Time  `json:"createdAt"`
}

type productNFTRefView struct {
	TokenAddress  string `json:"tokenAddress"`
	WalletAddress string `json:"walletAddress"`
}

type productNFTGroupView struct {
	ProductID   uuid.UUID           `json:"productId"`
	ProductName string              `json:"productName"`
	NFTs        []productNFTRefView `json:"nfts"`
}

type imageView struct {
	Key  string `json:"key"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
}

type messageView struct {
	Message string `json:"message"`
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}

	return items
}

func toShippingAddressView(address *entity.ShippingAddress) *shippingAddressView {
	if address == nil {
		return nil
	}

	return &shippingAddressView{
		Street:     address.Street,
		Apartment:  address.Apartment,
		City:       address.City,
		State:      address.State,
		PostalCode: address.PostalCode,
		Country:    address.Country,
	}
}

func toUserView(user *entity.User) userView {
	refs := make([]collectionRefView, 0, len(user.CollectionAddresses))
	for _, ref := range user.CollectionAddresses {
		refs = append(refs, collectionRefView{
			CollectionID:      ref.CollectionID,
			CollectionAddress: ref.CollectionAddress,
		})
	}

	return userView{
		ID:                  user.ID,
		Username:            user.Username,
		Email:               user.Email,
		SolanaWallet:        orEmpty(user.SolanaWallets),
		Role:                user.Role.String(),
		ShippingAddress:     toShippingAddressView(user.ShippingAddress),
		CollectionAddresses: refs,
		CreatedAt:           user.CreatedAt,
		UpdatedAt:           user.UpdatedAt,
	}
}

func toProfileView(user *entity.User) profileView {
	return profileView{
		UserID:          user.ID,
		Username:        user.Username,
		Email:           user.Email,
		SolanaWallet:    orEmpty(user.SolanaWallets),
		Role:            user.Role.String(),
		ShippingAddress: toShippingAddressView(user.ShippingAddress),
	}
}

func toDesignerSummaryViews(designers []*entity.User) []designerSummaryView {
	views := make([]designerSummaryView, 0, len(designers))
	for _, designer := range designers {
		views = append(views, designerSummaryView{
			ID:           designer.ID,
			Username:     designer.Username,
			Email:        designer.Email,
			SolanaWallet: orEmpty(designer.SolanaWallets),
		})
	}

	return views
}

func toCollectionView(collection *entity.Collection) collectionView {
	return collectionView{
		ID:                collection.ID,
		Name:              collection.Name,
		CollectionAddress: collection.CollectionAddress,
		ImageURL:          collection.ImageURL,
		JSONURL:           collection.JSONURL,
		DesignerID:        collection.DesignerID,
		DesignerUsername:  collection.DesignerUsername,
		Products:          orEmpty(collection.ProductIDs),
		CreatedAt:         collection.CreatedAt,
		UpdatedAt:         collection.UpdatedAt,
	}
}

func toCollectionViews(collections []*entity.Collection) []collectionView {
	views := make([]collectionView, 0, len(collections))
	for _, collection := range collections {
		views = append(views, toCollectionView(collection))
	}

	return views
}

func toProductView(product *entity.Product) productView {
	return productView{
		ID:                product.ID,
		Name:              product.Name,
		Gender:            product.Gender,
		Category:          product.Category,
		Color:             orEmpty(product.Colors),
		Description:       product.Description,
		Price:             product.Price,
		CollectionID:      product.CollectionID,
		CollectionAddress: product.CollectionAddress,
		ImageURL1:         product.ImageURLs[0],
		ImageURL2:         product.ImageURLs[1],
		ImageURL3:         product.ImageURLs[2],
		ImageURL4:         product.ImageURLs[3],
		ImageURL5:         product.ImageURLs[4],
		JSONURL:           product.JSONURL,
		VideoURL:          product.VideoURL,
		DesignerID:        product.DesignerID,
		Username:          product.Username,
		CreatedAt:         product.CreatedAt,
		UpdatedAt:         product.UpdatedAt,
	}
}

func toProductViews(products []*entity.Product) []productView {
	views := make([]productView, 0, len(products))
	for _, product := range products {
		views = append(views, toProductView(product))
	}

	return views
}

func toSizeView(size *entity.Size) sizeView {
	return sizeView{
		ID:        size.ID,
		ProductID: size.ProductID,
		Size:      size.Label,
		Quantity:  size.Quantity,
		CreatedAt: size.CreatedAt,
		UpdatedAt: size.UpdatedAt,
	}
}

func toNFTView(nft *entity.NFT) nftView {
	return nftView{
		ID:            nft.TokenAddress,
		TokenAddress:  nft.TokenAddress,
		WalletAddress: nft.WalletAddress,
		DesignerID:    nft.DesignerID,
		Username:      nft.Username,
		ProductID:     nft.ProductID,
		Active:        nft.ActiveFlag(),
		Listed:        nft.ListedFlag(),
		Status:        nft.Status(),
		ListingState:  string(nft.ListingState),
		ListingSource: string(nft.ListingSource),
		SyncedAt:      nft.SyncedAt,
		CreatedAt:     nft.CreatedAt,
		UpdatedAt:     nft.UpdatedAt,
	}
}

func toNFTViews(nfts []*entity.NFT) []nftView {
	views := make([]nftView, 0, len(nfts))
	for _, nft := range nfts {
		views = append(views, toNFTView(nft))
	}

	return views
}

func toNFTWithProductViews(nfts []*entity.NFTWithProduct) []nftWithProductView {
	views := make([]nftWithProductView, 0, len(nfts))
	for _, item := range nfts {
		views = append(views, nftWithProductView{
			nftView:     toNFTView(item.NFT),
			ProductName: item.ProductName,
		})
	}

	return views
}

func toNFTEventViews(events []*entity.NFTEvent) []nftEventView {
	views := make([]nftEventView, 0, len(events))
	for _, event := range events {
		active := entity.FlagNo
		if event.Active {
			active = entity.FlagYes
		}
		views = append(views, nftEventView{
			ID:           event.ID,
			TokenAddress: event.TokenAddress,
			Kind:         string(event.Kind),
			FromState:    string(event.FromState),
			ToState:      string(event.ToState),
			Active:       active,
			Source:       string(event.Source),
			ActorID:      event.ActorID,
			CreatedAt:    event.CreatedAt,
		})
	}

	return views
}

func toImageViews(objects []service.StoredObject) []imageView {
	views := make([]imageView, 0, len(objects))
	for _, object := range objects {
		views = append(views, imageView{
			Key:  object.Key,
			URL:  object.URL,
			Size: object.Size,
		})
	}

	return views
}
