// Package chain reads marketplace listings and token holders from a Solana JSON-RPC node.
package chain

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"atelier/config"
	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/service"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

const (
	defaultTimeout = 20 * time.Second
	pubkeyLen      = 32

	// Listing account: 8-byte discriminator, seller, mint, price (u64 LE), is_active.
	listingSellerOffset = 8
	listingMintOffset   = listingSellerOffset + pubkeyLen
	listingPriceOffset  = listingMintOffset + pubkeyLen
	listingActiveOffset = listingPriceOffset + 8
	listingMinLen       = listingActiveOffset
)

type solanaClient struct {
	rpcURL     string
	program    string
	httpClient *http.Client
	logger     *slog.Logger
	nextID     atomic.Int64
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int64  `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

// NewSolanaClient builds the chain reader from configuration.
func NewSolanaClient(cfg *config.Config, logger *slog.Logger) (service.ChainReader, error) {
	if cfg.Chain == nil || cfg.Chain.RPCURL == "" {
		return nil, errors.New("chain.rpcUrl is required")
	}
	if cfg.Chain.MarketplaceProgram != "" {
		if err := validatePubkey(cfg.Chain.MarketplaceProgram); err != nil {
			return nil, errors.Wrap(err, "invalid chain.marketplaceProgram")
		}
	}

	timeout := cfg.Chain.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &solanaClient{
		rpcURL:     cfg.Chain.RPCURL,
		program:    cfg.Chain.MarketplaceProgram,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

// ListListings returns the active listings held by the marketplace program.
func (c *solanaClient) ListListings(ctx context.Context) ([]entity.ChainListing, error) {
	if c.program == "" {
		return nil, nil
	}

	result, err := c.call(ctx, "getProgramAccounts", c.program, map[string]any{
		"encoding":   "base64",
		"commitment": "confirmed",
	})
	if err != nil {
		return nil, err
	}

	listings := make([]entity.ChainListing, 0)
	var decodeErr error
	result.ForEach(func(_, account gjson.Result) bool {
		pubkey := account.Get("pubkey").String()
		raw, err := base64.StdEncoding.DecodeString(account.Get("account.data.0").String())
		if err != nil {
			decodeErr = errors.Wrapf(err, "listing %s: invalid account data", pubkey)

			return false
		}

		listing, active, ok := decodeListing(raw)
		if !ok {
			c.logger.Debug("Skipping foreign program account", slog.String("pubkey", pubkey), slog.Int("size", len(raw)))

			return true
		}
		if active {
			listings = append(listings, listing)
		}

		return true
	})
	if decodeErr != nil {
		return nil, decodeErr
	}

	return listings, nil
}

// decodeListing parses a listing account; ok is false when the data is too short to be one.
func decodeListing(data []byte) (listing entity.ChainListing, active bool, ok bool) {
	if len(data) < listingMinLen {
		return entity.ChainListing{}, false, false
	}

	listing = entity.ChainListing{
		Seller: base58.Encode(data[listingSellerOffset:listingMintOffset]),
		Mint:   base58.Encode(data[listingMintOffset:listingPriceOffset]),
		Price:  binary.LittleEndian.Uint64(data[listingPriceOffset:listingActiveOffset]),
	}

	// Accounts written before the active flag existed are always active.
	active = len(data) == listingActiveOffset || data[listingActiveOffset] == 1

	return listing, active, true
}

// TokenOwner resolves the wallet holding the single unit of an NFT mint.
func (c *solanaClient) TokenOwner(ctx context.Context, mint string) (string, error) {
	if err := validatePubkey(mint); err != nil {
		return "", errors.Wrapf(err, "invalid mint %s", mint)
	}

	largest, err := c.call(ctx, "getTokenLargestAccounts", mint, map[string]any{"commitment": "confirmed"})
	if err != nil {
		return "", err
	}

	var holder string
	largest.Get("value").ForEach(func(_, account gjson.Result) bool {
		if account.Get("amount").String() != "0" {
			holder = account.Get("address").String()

			return false
		}

		return true
	})
	if holder == "" {
		return "", nil
	}

	info, err := c.call(ctx, "getAccountInfo", holder, map[string]any{
		"encoding":   "jsonParsed",
		"commitment": "confirmed",
	})
	if err != nil {
		return "", err
	}

	return info.Get("value.data.parsed.info.owner").String(), nil
}

// call performs one JSON-RPC request and returns its result member.
// Transport failures and node errors are reported as ErrChainUnavailable.
func (c *solanaClient) call(ctx context.Context, method string, params ...any) (gjson.Result, error) {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      c.nextID.Add(1),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return gjson.Result{}, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.rpcURL, bytes.NewReader(body))
	if err != nil {
		return gjson.Result{}, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return gjson.Result{}, errors.Wrap(domainerrors.ErrChainUnavailable, fmt.Sprintf("%s: %v", method, err))
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, errors.Wrap(domainerrors.ErrChainUnavailable, fmt.Sprintf("%s: read body: %v", method, err))
	}
	if resp.StatusCode != http.StatusOK {
		return gjson.Result{}, errors.Wrap(domainerrors.ErrChainUnavailable, fmt.Sprintf("%s: status %d", method, resp.StatusCode))
	}
	if !gjson.ValidBytes(payload) {
		return gjson.Result{}, errors.Errorf("%s: malformed rpc response", method)
	}

	parsed := gjson.ParseBytes(payload)
	if rpcErr := parsed.Get("error"); rpcErr.Exists() {
		return gjson.Result{}, errors.Wrap(domainerrors.ErrChainUnavailable,
			fmt.Sprintf("%s: rpc error %d: %s", method, rpcErr.Get("code").Int(), rpcErr.Get("message").String()))
	}

	return parsed.Get("result"), nil
}

func validatePubkey(address string) error {
	decoded, err := base58.Decode(address)
	if err != nil {
		return errors.WithStack(err)
	}
	if len(decoded) != pubkeyLen {
		return errors.Errorf("public key must be %d bytes, got %d", pubkeyLen, len(decoded))
	}

	return nil
}
