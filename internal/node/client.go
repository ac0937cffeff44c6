package node

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

var ErrNodeUnavailable error = errors.New("node unavailable")
var ErrTxRejected error = errors.New("transaction rejected by node")

const (
	defaultMaxAttempts     = 10
	defaultInitialInterval = 200 * time.Millisecond
	apiKeyHeader           = "X-Api-Key"
)

// Client talks to the blockchain node's REST surface. Read calls share a
// bounded retry policy; wallet and broadcast calls are unary.
type Client struct {
	logs    *zap.SugaredLogger
	baseURL string
	apiKey  string
	httpc   *http.Client

	maxAttempts     uint64
	initialInterval time.Duration
}

type Option func(*Client)

// WithRetryPolicy overrides the default retry budget, used by tests.
func WithRetryPolicy(maxAttempts uint64, initialInterval time.Duration) Option {
	return func(c *Client) {
		c.maxAttempts = maxAttempts
		c.initialInterval = initialInterval
	}
}

func NewClient(logger *zap.SugaredLogger, baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		logs:            logger,
		baseURL:         baseURL,
		apiKey:          apiKey,
		httpc:           &http.Client{Timeout: 30 * time.Second},
		maxAttempts:     defaultMaxAttempts,
		initialInterval: defaultInitialInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Height returns the current chain height.
func (c *Client) Height(ctx context.Context) (int64, error) {
	body, err := c.getWithRetry(ctx, "blocks/height")
	if err != nil {
		return 0, err
	}

	var resp struct {
		Height int64 `json:"height"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return 0, fmt.Errorf("unmarshal height: %w", err)
	}
	return resp.Height, nil
}

// BlockAt returns the block at the given height.
func (c *Client) BlockAt(ctx context.Context, height int64) (Block, error) {
	body, err := c.getWithRetry(ctx, fmt.Sprintf("blocks/at/%d", height))
	if err != nil {
		return Block{}, err
	}

	var block Block
	if err := json.Unmarshal(body, &block); err != nil {
		return Block{}, fmt.Errorf("unmarshal block: %w", err)
	}
	return block, nil
}

// Addresses returns the addresses controlled by the node wallet.
func (c *Client) Addresses(ctx context.Context) ([]string, error) {
	body, err := c.getWithRetry(ctx, "addresses")
	if err != nil {
		return nil, err
	}

	var addresses []string
	if err := json.Unmarshal(body, &addresses); err != nil {
		return nil, fmt.Errorf("unmarshal addresses: %w", err)
	}
	return addresses, nil
}

// AssetBalance returns the node's raw balance payload for the address/asset,
// passed through unmodified.
func (c *Client) AssetBalance(ctx context.Context, address, assetID string) (json.RawMessage, error) {
	body, err := c.getWithRetry(ctx, fmt.Sprintf("assets/balance/%s/%s", address, assetID))
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

// WalletSeed fetches the node wallet seed. Privileged, startup only, no retry:
// a failure here needs operator intervention.
func (c *Client) WalletSeed(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"wallet/seed", nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)

	body, err := c.do(req)
	if err != nil {
		return "", fmt.Errorf("wallet seed request: %w", err)
	}

	var resp struct {
		Seed string `json:"seed"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("unmarshal seed: %w", err)
	}
	return resp.Seed, nil
}

// SignTransfer asks the node wallet to build and sign an asset transfer. The
// private key never leaves the node. Returns the parsed signed fields along
// with the exact payload bytes the node will accept for broadcast.
func (c *Client) SignTransfer(ctx context.Context, transfer TransferRequest) (SignedTransfer, []byte, error) {
	reqBody, err := json.Marshal(transfer)
	if err != nil {
		return SignedTransfer{}, nil, fmt.Errorf("marshal transfer request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"assets/transfer", bytes.NewReader(reqBody))
	if err != nil {
		return SignedTransfer{}, nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)

	body, err := c.do(req)
	if err != nil {
		return SignedTransfer{}, nil, fmt.Errorf("sign transfer: %w", err)
	}

	var signed SignedTransfer
	if err := json.Unmarshal(body, &signed); err != nil {
		return SignedTransfer{}, nil, fmt.Errorf("unmarshal signed transfer: %w", err)
	}
	return signed, body, nil
}

// Broadcast submits a signed transfer payload to the node. No retry: the
// caller owns re-attempt semantics for an already constructed transaction.
func (c *Client) Broadcast(ctx context.Context, signedPayload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"assets/broadcast/transfer", bytes.NewReader(signedPayload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNodeUnavailable, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logs.Errorw("broadcast rejected",
			"status", resp.StatusCode,
			"response", string(body))
		return fmt.Errorf("%w: status %d: %s", ErrTxRejected, resp.StatusCode, body)
	}
	return nil
}

func (c *Client) getWithRetry(ctx context.Context, path string) ([]byte, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.initialInterval

	var body []byte
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("build request: %w", err))
		}

		resp, err := c.httpc.Do(req)
		if err != nil {
			// connection failure, retryable
			return fmt.Errorf("%w: %s", ErrNodeUnavailable, err)
		}
		defer resp.Body.Close()

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("%w: read response: %s", ErrNodeUnavailable, err)
		}

		switch resp.StatusCode {
		case http.StatusOK:
			return nil
		case http.StatusInternalServerError, http.StatusBadGateway,
			http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			c.logs.Debugw("retryable node error", "path", path, "status", resp.StatusCode)
			return fmt.Errorf("%w: status %d", ErrNodeUnavailable, resp.StatusCode)
		default:
			return backoff.Permanent(fmt.Errorf("GET %s: unexpected status %d: %s", path, resp.StatusCode, body))
		}
	}

	err := backoff.Retry(operation,
		backoff.WithContext(backoff.WithMaxRetries(policy, c.maxAttempts-1), ctx))
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNodeUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s %s: unexpected status %d: %s", req.Method, req.URL.Path, resp.StatusCode, body)
	}
	return body, nil
}
