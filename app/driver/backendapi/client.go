package backendapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"onboarding-hub/app/domain"
)

// Client is the raw REST driver for the identity/authorization backend.
// It performs no error classification beyond APIError; the gateway above
// it owns the domain taxonomy and the resilience layer.
type Client struct {
	baseURL      string
	serviceToken string
	httpClient   *http.Client
	logger       *slog.Logger
}

// Options configures the backend client.
type Options struct {
	BaseURL      string
	ServiceToken string
	Timeout      time.Duration
}

// NewClient creates a backend API client.
func NewClient(opts Options, logger *slog.Logger) (*Client, error) {
	if !isValidURL(opts.BaseURL) {
		return nil, fmt.Errorf("invalid backend base URL: %s", opts.BaseURL)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	logger.Info("backend API client initialized",
		"base_url", opts.BaseURL,
		"timeout", timeout)

	return &Client{
		baseURL:      opts.BaseURL,
		serviceToken: opts.ServiceToken,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DisableKeepAlives: false,
			},
		},
		logger: logger.With("component", "backend_client"),
	}, nil
}

type businessInfoRequest struct {
	TenantID string `json:"tenant_id,omitempty"`
	domain.BusinessProfile
}

// PostBusinessInfo creates or updates the business profile for a tenant.
func (c *Client) PostBusinessInfo(ctx context.Context, tenantID, userID string, profile domain.BusinessProfile) (*domain.BusinessInfoResult, error) {
	var result domain.BusinessInfoResult
	body := businessInfoRequest{TenantID: tenantID, BusinessProfile: profile}
	if err := c.do(ctx, http.MethodPost, "/api/onboarding/business-info/", tenantID, userID, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// PostSubscription stores the selected plan for a tenant.
func (c *Client) PostSubscription(ctx context.Context, tenantID, userID string, selection domain.SubscriptionSelection) error {
	return c.do(ctx, http.MethodPost, "/api/onboarding/subscription/", tenantID, userID, selection, nil)
}

type completeRequest struct {
	ForceComplete   bool `json:"force_complete"`
	PaymentVerified bool `json:"payment_verified"`
}

// PostComplete asks the backend to mark onboarding finished.
func (c *Client) PostComplete(ctx context.Context, tenantID, userID string, forceComplete, paymentVerified bool) error {
	body := completeRequest{ForceComplete: forceComplete, PaymentVerified: paymentVerified}
	return c.do(ctx, http.MethodPost, "/api/onboarding/complete/", tenantID, userID, body, nil)
}

// PostForceComplete issues the idempotent repair call.
func (c *Client) PostForceComplete(ctx context.Context, tenantID, userID string) error {
	return c.do(ctx, http.MethodPost, "/api/onboarding/force-complete/", tenantID, userID, struct{}{}, nil)
}

// GetStatus reads the backend's current onboarding state.
func (c *Client) GetStatus(ctx context.Context, tenantID, userID string) (*domain.OnboardingRecord, error) {
	var record domain.OnboardingRecord
	if err := c.do(ctx, http.MethodGet, "/api/onboarding/status/", tenantID, userID, nil, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// do issues one JSON request and decodes the response into out when non-nil.
func (c *Client) do(ctx context.Context, method, path, tenantID, userID string, body, out any) error {
	var reader io.Reader
	if body != nil && method != http.MethodGet {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.serviceToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.serviceToken)
	}
	if userID != "" {
		req.Header.Set("X-User-Id", userID)
	}
	if tenantID != "" {
		req.Header.Set("X-Tenant-Id", tenantID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(method, path, resp)
	}

	if out == nil {
		// Drain so keep-alive connections can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode backend response: %w", err)
	}
	return nil
}

func isValidURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return parsed.Scheme != "" && parsed.Host != ""
}
