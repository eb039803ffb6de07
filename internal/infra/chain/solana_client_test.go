package chain

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"atelier/config"
	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func pubkey(b byte) []byte {
	return bytes.Repeat([]byte{b}, pubkeyLen)
}

func listingData(seller, mint []byte, price uint64, active bool) string {
	data := make([]byte, 0, listingMinLen+1)
	data = append(data, bytes.Repeat([]byte{0xAA}, 8)...)
	data = append(data, seller...)
	data = append(data, mint...)
	data = binary.LittleEndian.AppendUint64(data, price)
	if active {
		data = append(data, 1)
	} else {
		data = append(data, 0)
	}

	return base64.StdEncoding.EncodeToString(data)
}

// rpcServer answers JSON-RPC calls from a method -> result map.
func rpcServer(t *testing.T, results map[string]string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		req := gjson.ParseBytes(body)
		result, ok := results[req.Get("method").String()]
		if !ok {
			fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%d,"error":{"code":-32601,"message":"Method not found"}}`, req.Get("id").Int())

			return
		}
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%d,"result":%s}`, req.Get("id").Int(), result)
	}))
	t.Cleanup(server.Close)

	return server
}

func newTestClient(t *testing.T, url string) *solanaClient {
	t.Helper()

	reader, err := NewSolanaClient(&config.Config{Chain: &config.ChainConfig{
		RPCURL:             url,
		MarketplaceProgram: base58.Encode(pubkey(9)),
	}}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	client, ok := reader.(*solanaClient)
	require.True(t, ok)

	return client
}

func TestSolanaClient_ListListings(t *testing.T) {
	seller, mintA, mintB := pubkey(1), pubkey(2), pubkey(3)
	accounts := fmt.Sprintf(`[
		{"pubkey":"L1","account":{"data":["%s","base64"]}},
		{"pubkey":"L2","account":{"data":["%s","base64"]}},
		{"pubkey":"X","account":{"data":["%s","base64"]}}
	]`,
		listingData(seller, mintA, 1_500_000_000, true),
		listingData(seller, mintB, 42, false),
		base64.StdEncoding.EncodeToString([]byte("short")),
	)

	client := newTestClient(t, rpcServer(t, map[string]string{"getProgramAccounts": accounts}).URL)

	listings, err := client.ListListings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []entity.ChainListing{{
		Mint:   base58.Encode(mintA),
		Seller: base58.Encode(seller),
		Price:  1_500_000_000,
	}}, listings)
}

func TestSolanaClient_ListListings_NoProgram(t *testing.T) {
	client := newTestClient(t, "http://127.0.0.1:0")
	client.program = ""

	listings, err := client.ListListings(context.Background())
	require.NoError(t, err)
	assert.Empty(t, listings)
}

func TestSolanaClient_TokenOwner(t *testing.T) {
	mint := base58.Encode(pubkey(2))
	client := newTestClient(t, rpcServer(t, map[string]string{
		"getTokenLargestAccounts": `{"context":{"slot":1},"value":[{"address":"Empty","amount":"0"},{"address":"Holder","amount":"1"}]}`,
		"getAccountInfo":          `{"context":{"slot":1},"value":{"data":{"parsed":{"info":{"owner":"BuyerWallet","mint":"M"},"type":"account"},"program":"spl-token-2022"}}}`,
	}).URL)

	owner, err := client.TokenOwner(context.Background(), mint)
	require.NoError(t, err)
	assert.Equal(t, "BuyerWallet", owner)
}

func TestSolanaClient_TokenOwner_NoHolder(t *testing.T) {
	client := newTestClient(t, rpcServer(t, map[string]string{
		"getTokenLargestAccounts": `{"context":{"slot":1},"value":[]}`,
	}).URL)

	owner, err := client.TokenOwner(context.Background(), base58.Encode(pubkey(2)))
	require.NoError(t, err)
	assert.Empty(t, owner)
}

func TestSolanaClient_TokenOwner_InvalidMint(t *testing.T) {
	client := newTestClient(t, "http://127.0.0.1:0")

	_, err := client.TokenOwner(context.Background(), "not-base58-0OIl")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrChainUnavailable)
}

func TestSolanaClient_RPCErrorIsUnavailable(t *testing.T) {
	client := newTestClient(t, rpcServer(t, map[string]string{}).URL)

	_, err := client.ListListings(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrChainUnavailable)
	assert.Contains(t, err.Error(), "Method not found")
}

func TestSolanaClient_HTTPErrorIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.TokenOwner(context.Background(), base58.Encode(pubkey(2)))
	assert.ErrorIs(t, err, domainerrors.ErrChainUnavailable)
}

func TestNewSolanaClient_Validation(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := NewSolanaClient(&config.Config{}, logger)
	assert.Error(t, err)

	_, err = NewSolanaClient(&config.Config{Chain: &config.ChainConfig{RPCURL: "http://x", MarketplaceProgram: base58.Encode([]byte{1, 2, 3})}}, logger)
	assert.ErrorContains(t, err, "invalid chain.marketplaceProgram")
}
