package postgres

import (
	"atelier/internal/domain/entity"
	"atelier/internal/infra/persistence/model"

	"github.com/google/uuid"
)

func toUserDomain(m *model.UserModel) *entity.User {
	user := &entity.User{
		ID:            m.ID,
		Username:      m.Username,
		Email:         m.Email,
		PasswordHash:  m.PasswordHash,
		SolanaWallets: nonNilStrings(m.SolanaWallets),
		Role:          entity.Role(m.Role),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}

	if m.ShippingAddress != nil {
		user.ShippingAddress = &entity.ShippingAddress{
			Street:     m.ShippingAddress.Street,
			Apartment:  m.ShippingAddress.Apartment,
			City:       m.ShippingAddress.City,
			State:      m.ShippingAddress.State,
			PostalCode: m.ShippingAddress.PostalCode,
			Country:    m.ShippingAddress.Country,
		}
	}

	user.CollectionAddresses = make([]entity.CollectionRef, 0, len(m.CollectionAddresses))
	for _, ref := range m.CollectionAddresses {
		user.CollectionAddresses = append(user.CollectionAddresses, entity.CollectionRef{
			CollectionID:      ref.CollectionID,
			CollectionAddress: ref.CollectionAddress,
		})
	}

	return user
}

func fromUserDomain(u *entity.User) *model.UserModel {
	m := &model.UserModel{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		PasswordHash:  u.PasswordHash,
		SolanaWallets: nonNilStrings(u.SolanaWallets),
		Role:          u.Role.String(),
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}

	if u.ShippingAddress != nil {
		m.ShippingAddress = &model.ShippingAddress{
			Street:     u.ShippingAddress.Street,
			Apartment:  u.ShippingAddress.Apartment,
			City:       u.ShippingAddress.City,
			State:      u.ShippingAddress.State,
			PostalCode: u.ShippingAddress.PostalCode,
			Country:    u.ShippingAddress.Country,
		}
	}

	m.CollectionAddresses = make([]model.CollectionRef, 0, len(u.CollectionAddresses))
	for _, ref := range u.CollectionAddresses {
		m.CollectionAddresses = append(m.CollectionAddresses, model.CollectionRef{
			CollectionID:      ref.CollectionID,
			CollectionAddress: ref.CollectionAddress,
		})
	}

	return m
}

func toCollectionDomain(m *model.CollectionModel) *entity.Collection {
	productIDs := m.ProductIDs
	if productIDs == nil {
		productIDs = []uuid.UUID{}
	}

	return &entity.Collection{
		ID:                m.ID,
		Name:              m.Name,
		CollectionAddress: m.CollectionAddress,
		ImageURL:          m.ImageURL,
		JSONURL:           m.JSONURL,
		DesignerID:        m.DesignerID,
		DesignerUsername:  m.DesignerUsername,
		ProductIDs:        productIDs,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func fromCollectionDomain(c *entity.Collection) *model.CollectionModel {
	productIDs := c.ProductIDs
	if productIDs == nil {
		productIDs = []uuid.UUID{}
	}

	return &model.CollectionModel{
		ID:                c.ID,
		Name:              c.Name,
		CollectionAddress: c.CollectionAddress,
		ImageURL:          c.ImageURL,
		JSONURL:           c.JSONURL,
		DesignerID:        c.DesignerID,
		DesignerUsername:  c.DesignerUsername,
		ProductIDs:        productIDs,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

func toProductDomain(m *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:                m.ID,
		Name:              m.Name,
		Gender:            m.Gender,
		Category:          m.Category,
		Colors:            nonNilStrings(m.Colors),
		Description:       m.Description,
		Price:             m.Price,
		CollectionID:      m.CollectionID,
		CollectionAddress: m.CollectionAddress,
		ImageURLs:         [entity.ProductImageSlots]string{m.ImageURL1, m.ImageURL2, m.ImageURL3, m.ImageURL4, m.ImageURL5},
		JSONURL:           m.JSONURL,
		VideoURL:          m.VideoURL,
		DesignerID:        m.DesignerID,
		Username:          m.Username,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func fromProductDomain(p *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:                p.ID,
		Name:              p.Name,
		Gender:            p.Gender,
		Category:          p.Category,
		Colors:            nonNilStrings(p.Colors),
		Description:       p.Description,
		Price:             p.Price,
		CollectionID:      p.CollectionID,
		CollectionAddress: p.CollectionAddress,
		ImageURL1:         p.ImageURLs[0],
		ImageURL2:         p.ImageURLs[1],
		ImageURL3:         p.ImageURLs[2],
		ImageURL4:         p.ImageURLs[3],
		ImageURL5:         p.ImageURLs[4],
		JSONURL:           p.JSONURL,
		VideoURL:          p.VideoURL,
		DesignerID:        p.DesignerID,
		Username:          p.Username,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func toProductDomains(models []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(models))
	for _, m := range models {
		products = append(products, toProductDomain(m))
	}

	return products
}

func toSizeDomain(m *model.SizeModel) *entity.Size {
	return &entity.Size{
		ID:        m.ID,
		ProductID: m.ProductID,
		Label:     m.Label,
		Quantity:  m.Quantity,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromSizeDomain(s *entity.Size) *model.SizeModel {
	return &model.SizeModel{
		ID:        s.ID,
		ProductID: s.ProductID,
		Label:     s.Label,
		Quantity:  s.Quantity,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func toNFTDomain(m *model.NFTModel) *entity.NFT {
	return &entity.NFT{
		TokenAddress:  m.TokenAddress,
		WalletAddress: m.WalletAddress,
		DesignerID:    m.DesignerID,
		Username:      m.Username,
		ProductID:     m.ProductID,
		Active:        m.Active,
		ListingState:  entity.ListingState(m.ListingState),
		ListingSource: entity.ListingSource(m.ListingSource),
		SyncedAt:      m.SyncedAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func fromNFTDomain(n *entity.NFT) *model.NFTModel {
	return &model.NFTModel{
		TokenAddress:  n.TokenAddress,
		WalletAddress: n.WalletAddress,
		DesignerID:    n.DesignerID,
		Username:      n.Username,
		ProductID:     n.ProductID,
		Active:        n.Active,
		ListingState:  string(n.ListingState),
		ListingSource: string(n.ListingSource),
		SyncedAt:      n.SyncedAt,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     n.UpdatedAt,
	}
}

func toNFTEventDomain(m *model.NFTEventModel) *entity.NFTEvent {
	return &entity.NFTEvent{
		ID:           m.ID,
		TokenAddress: m.TokenAddress,
		Kind:         entity.TransitionKind(m.Kind),
		FromState:    entity.ListingState(m.FromState),
		ToState:      entity.ListingState(m.ToState),
		Active:       m.Active,
		Source:       entity.ListingSource(m.Source),
		ActorID:      m.ActorID,
		CreatedAt:    m.CreatedAt,
	}
}

func fromNFTEventDomain(e *entity.NFTEvent) *model.NFTEventModel {
	return &model.NFTEventModel{
		ID:           e.ID,
		TokenAddress: e.TokenAddress,
		Kind:         string(e.Kind),
		FromState:    string(e.FromState),
		ToState:      string(e.ToState),
		Active:       e.Active,
		Source:       string(e.Source),
		ActorID:      e.ActorID,
		CreatedAt:    e.CreatedAt,
	}
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
