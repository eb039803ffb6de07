package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ListingState is the marketplace state of an NFT as last known off-chain.
type ListingState string

const (
	ListingUnlisted ListingState = "unlisted"
	ListingListed   ListingState = "listed"
	ListingSold     ListingState = "sold"
)

// ListingSource records who produced the current listing state.
type ListingSource string

const (
	// SourceDesigner marks state set by the owning designer (mint, activation).
	SourceDesigner ListingSource = "designer"
	// SourceReported marks state reported by a client but not yet seen on-chain.
	SourceReported ListingSource = "reported"
	// SourceChain marks state confirmed by reading the chain.
	SourceChain ListingSource = "chain"
)

// Flag values used by the API for boolean NFT attributes.
const (
	FlagYes = "yes"
	FlagNo  = "no"
)

// ErrInvalidTransition is returned when a transition does not apply to the current state.
var ErrInvalidTransition = errors.New("invalid listing transition")

// NFT is the off-chain projection of a minted token. TokenAddress is the mint address and
// doubles as the primary key.
type NFT struct {
	TokenAddress  string
	WalletAddress string // Wallet the designer minted to.
	DesignerID    uuid.UUID
	Username      string
	ProductID     *uuid.UUID // Nil until the designer assigns a product.
	Active        bool       // Designer intent to offer the NFT for sale.
	ListingState  ListingState
	ListingSource ListingSource
	SyncedAt      *time.Time // Last reconciliation against the chain.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewNFT returns a freshly minted, inactive, unlisted NFT.
func NewNFT(tokenAddress, walletAddress string, designer *User, now time.Time) *NFT {
	return &NFT{
		TokenAddress:  tokenAddress,
		WalletAddress: walletAddress,
		DesignerID:    designer.ID,
		Username:      designer.Username,
		ListingState:  ListingUnlisted,
		ListingSource: SourceDesigner,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// IsOwnedBy reports whether the designer owns the NFT.
func (n *NFT) IsOwnedBy(userID uuid.UUID) bool {
	return n.DesignerID == userID
}

// ActiveFlag renders Active as "yes"/"no".
func (n *NFT) ActiveFlag() string {
	return boolFlag(n.Active)
}

// ListedFlag renders whether the NFT is listed as "yes"/"no".
func (n *NFT) ListedFlag() string {
	return boolFlag(n.ListingState == ListingListed)
}

// Status is "sold" for sold NFTs and empty otherwise.
func (n *NFT) Status() string {
	if n.ListingState == ListingSold {
		return string(ListingSold)
	}

	return ""
}

// ParseFlag converts "yes"/"no" into a bool.
func ParseFlag(flag string) (bool, error) {
	switch flag {
	case FlagYes:
		return true, nil
	case FlagNo:
		return false, nil
	default:
		return false, errors.New("flag must be \"yes\" or \"no\"")
	}
}

func boolFlag(b bool) string {
	if b {
		return FlagYes
	}

	return FlagNo
}

// TransitionKind names a change to the listing projection.
type TransitionKind string

const (
	TransitionMinted          TransitionKind = "minted"
	TransitionActivated       TransitionKind = "activated"
	TransitionDeactivated     TransitionKind = "deactivated"
	TransitionListingReported TransitionKind = "listing_reported"
	TransitionSaleReported    TransitionKind = "sale_reported"
	TransitionChainObserved   TransitionKind = "chain_observed"
)

// Transition is a requested change to an NFT's projection.
type Transition struct {
	Kind     TransitionKind
	Observed ListingState // Only for TransitionChainObserved.
	ActorID  *uuid.UUID   // Nil for system transitions.
	At       time.Time
}

// NFTEvent is the append-only record of one applied transition.
type NFTEvent struct {
	ID           uuid.UUID
	TokenAddress string
	Kind         TransitionKind
	FromState    ListingState
	ToState      ListingState
	Active       bool
	Source       ListingSource
	ActorID      *uuid.UUID
	CreatedAt    time.Time
}

// Apply mutates the projection and returns the event describing the change. The bool is
// false when the transition left state, source and activity untouched; callers skip
// persisting an event in that case.
func (n *NFT) Apply(t Transition) (*NFTEvent, bool, error) {
	from := n.ListingState
	prevSource := n.ListingSource
	prevActive := n.Active

	switch t.Kind {
	case TransitionMinted:
		n.ListingState = ListingUnlisted
		n.ListingSource = SourceDesigner
		n.Active = false
	case TransitionActivated:
		if n.ListingState == ListingSold {
			return nil, false, ErrInvalidTransition
		}
		n.Active = true
	case TransitionDeactivated:
		n.Active = false
	case TransitionListingReported:
		if n.ListingState == ListingSold {
			return nil, false, ErrInvalidTransition
		}
		if n.ListingState != ListingListed {
			n.ListingState = ListingListed
			n.ListingSource = SourceReported
		}
	case TransitionSaleReported:
		if n.ListingState != ListingSold {
			n.ListingState = ListingSold
			n.ListingSource = SourceReported
		}
		n.Active = false
	case TransitionChainObserved:
		switch t.Observed {
		case ListingUnlisted, ListingListed, ListingSold:
		default:
			return nil, false, ErrInvalidTransition
		}
		n.ListingState = t.Observed
		n.ListingSource = SourceChain
		if t.Observed == ListingSold {
			n.Active = false
		}
		at := t.At
		n.SyncedAt = &at
	default:
		return nil, false, ErrInvalidTransition
	}

	changed := from != n.ListingState || prevSource != n.ListingSource || prevActive != n.Active
	if t.Kind == TransitionMinted {
		changed = true
	}
	if changed {
		n.UpdatedAt = t.At
	}

	return &NFTEvent{
		ID:           uuid.New(),
		TokenAddress: n.TokenAddress,
		Kind:         t.Kind,
		FromState:    from,
		ToState:      n.ListingState,
		Active:       n.Active,
		Source:       n.ListingSource,
		ActorID:      t.ActorID,
		CreatedAt:    t.At,
	}, changed, nil
}

// ProductNFTGroup lists the active NFTs minted for one product.
type ProductNFTGroup struct {
	ProductID   uuid.UUID
	ProductName string
	NFTs        []ProductNFTRef
}

// ProductNFTRef identifies an NFT inside a ProductNFTGroup.
type ProductNFTRef struct {
	TokenAddress  string
	WalletAddress string
}

// ChainListing is an active listing read from the marketplace program.
type ChainListing struct {
	Mint   string
	Seller string
	Price  uint64
}

// NFTWithProduct pairs an NFT with the name of its linked product, if any.
type NFTWithProduct struct {
	NFT         *NFT
	ProductName *string
}
