package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNFT() *NFT {
	designer := &User{ID: uuid.New(), Username: "d1"}

	return NewNFT("Mint111", "Wallet111", designer, time.Unix(0, 0))
}

func TestNewNFT_Defaults(t *testing.T) {
	nft := newTestNFT()

	assert.Nil(t, nft.ProductID)
	assert.False(t, nft.Active)
	assert.Equal(t, FlagNo, nft.ActiveFlag())
	assert.Equal(t, FlagNo, nft.ListedFlag())
	assert.Equal(t, ListingUnlisted, nft.ListingState)
	assert.Empty(t, nft.Status())
}

func TestNFT_Apply_ListingReportedThenChainConfirmed(t *testing.T) {
	nft := newTestNFT()
	now := time.Now()

	event, changed, err := nft.Apply(Transition{Kind: TransitionListingReported, At: now})
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, ListingUnlisted, event.FromState)
	assert.Equal(t, ListingListed, event.ToState)
	assert.Equal(t, SourceReported, nft.ListingSource)
	assert.Equal(t, FlagYes, nft.ListedFlag())

	event, changed, err = nft.Apply(Transition{Kind: TransitionChainObserved, Observed: ListingListed, At: now})
	require.NoError(t, err)
	assert.True(t, changed, "confirmation changes the source")
	assert.Equal(t, SourceChain, event.Source)
	require.NotNil(t, nft.SyncedAt)

	_, changed, err = nft.Apply(Transition{Kind: TransitionChainObserved, Observed: ListingListed, At: now})
	require.NoError(t, err)
	assert.False(t, changed, "repeated observation is a no-op")
}

func TestNFT_Apply_SaleDeactivates(t *testing.T) {
	nft := newTestNFT()
	nft.Active = true

	_, changed, err := nft.Apply(Transition{Kind: TransitionSaleReported, At: time.Now()})
	require.NoError(t, err)
	assert.True(t, changed)
	assert.False(t, nft.Active)
	assert.Equal(t, "sold", nft.Status())

	_, _, err = nft.Apply(Transition{Kind: TransitionActivated, At: time.Now()})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, _, err = nft.Apply(Transition{Kind: TransitionListingReported, At: time.Now()})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestNFT_Apply_ChainCanRevertReportedListing(t *testing.T) {
	nft := newTestNFT()
	_, _, err := nft.Apply(Transition{Kind: TransitionListingReported, At: time.Now()})
	require.NoError(t, err)

	event, changed, err := nft.Apply(Transition{Kind: TransitionChainObserved, Observed: ListingUnlisted, At: time.Now()})
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, ListingListed, event.FromState)
	assert.Equal(t, ListingUnlisted, event.ToState)
}

func TestNFT_Apply_RejectsUnknownObservation(t *testing.T) {
	nft := newTestNFT()

	_, _, err := nft.Apply(Transition{Kind: TransitionChainObserved, Observed: "burned", At: time.Now()})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestParseFlag(t *testing.T) {
	v, err := ParseFlag("yes")
	require.NoError(t, err)
	assert.True(t, v)

	v, err = ParseFlag("no")
	require.NoError(t, err)
	assert.False(t, v)

	_, err = ParseFlag("maybe")
	assert.Error(t, err)
}
