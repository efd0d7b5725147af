package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	pkgerrors "github.com/alessaops/storefront-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	requestBodyReadLimit int64 = 1024
	defaultTimeout             = 10 * time.Second
)

var (
	errBaseURLRequired = errors.New("delivery provider base url is required")
	errAPIKeyRequired  = errors.New("delivery provider api key is required")
)

// Client wraps the delivery provider's quote API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout overrides the default request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient = &http.Client{Timeout: timeout}
		}
	}
}

// NewClient builds the delivery provider client.
func NewClient(baseURL, apiKey string, opts ...Option) (*Client, error) {
	trimmedURL := strings.TrimSpace(baseURL)
	if trimmedURL == "" {
		return nil, errBaseURLRequired
	}
	trimmedKey := strings.TrimSpace(apiKey)
	if trimmedKey == "" {
		return nil, errAPIKeyRequired
	}

	client := &Client{
		baseURL:    trimmedURL,
		apiKey:     trimmedKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}
	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return client, nil
}

// QuoteRequest describes the payload sent to the provider's quote API.
type QuoteRequest struct {
	ExternalRef    string `json:"external_ref"`
	PickupAddress  string `json:"pickup_address"`
	DropoffAddress string `json:"dropoff_address"`
}

// Quote is the normalized provider response. A zero fee is a valid quote.
type Quote struct {
	Fee              decimal.Decimal `json:"fee"`
	EstimatedMinutes int             `json:"estimated_minutes"`
	ProviderRef      string          `json:"provider_ref"`
}

// GetQuote requests a delivery fee quote for the given dropoff.
func (c *Client) GetQuote(ctx context.Context, req QuoteRequest) (*Quote, error) {
	if c == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "delivery client not configured")
	}
	if strings.TrimSpace(req.DropoffAddress) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "dropoff address is required")
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "marshal quote request")
	}

	url := fmt.Sprintf("%s/quotes", strings.TrimRight(c.baseURL, "/"))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build quote request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute quote request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, requestBodyReadLimit))
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))), "quote request failed")
	}

	var apiResp struct {
		Fee              decimal.Decimal `json:"fee"`
		EstimatedMinutes int             `json:"estimated_minutes"`
		Reference        string          `json:"reference"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode quote response")
	}
	if apiResp.Fee.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "provider returned a negative fee")
	}

	return &Quote{
		Fee:              apiResp.Fee,
		EstimatedMinutes: apiResp.EstimatedMinutes,
		ProviderRef:      apiResp.Reference,
	}, nil
}
