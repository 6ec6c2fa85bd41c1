package backendapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onboarding-hub/app/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	client, err := NewClient(Options{
		BaseURL:      server.URL,
		ServiceToken: "service-token",
		Timeout:      2 * time.Second,
	}, newTestLogger())
	require.NoError(t, err)
	return client
}

func TestNewClient_RejectsInvalidURL(t *testing.T) {
	_, err := NewClient(Options{BaseURL: "not a url"}, newTestLogger())
	assert.Error(t, err)

	_, err = NewClient(Options{BaseURL: ""}, newTestLogger())
	assert.Error(t, err)
}

func TestClient_PostBusinessInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/onboarding/business-info/", r.URL.Path)
		assert.Equal(t, "Bearer service-token", r.Header.Get("Authorization"))
		assert.Equal(t, "user-1", r.Header.Get("X-User-Id"))
		assert.Equal(t, "tenant-a", r.Header.Get("X-Tenant-Id"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "tenant-a", body["tenant_id"])
		assert.Equal(t, "Acme GmbH", body["business_name"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(domain.BusinessInfoResult{
			TenantID: "5e6ab306-8cbf-43b9-9778-f1abbe7b6ed1",
			Created:  true,
		})
	}))
	defer server.Close()

	client := newTestClient(t, server)

	result, err := client.PostBusinessInfo(context.Background(), "tenant-a", "user-1", domain.BusinessProfile{
		Name: "Acme GmbH",
		Type: "retail",
	})

	require.NoError(t, err)
	assert.Equal(t, "5e6ab306-8cbf-43b9-9778-f1abbe7b6ed1", result.TenantID)
	assert.True(t, result.Created)
}

func TestClient_PostComplete_SendsOverrideFlags(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/onboarding/complete/", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, true, body["force_complete"])
		assert.Equal(t, true, body["payment_verified"])

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(t, server)

	err := client.PostComplete(context.Background(), "tenant-a", "user-1", true, true)
	require.NoError(t, err)
}

func TestClient_GetStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/onboarding/status/", r.URL.Path)
		// GET carries no tenant header when the caller has none.
		assert.Empty(t, r.Header.Get("X-Tenant-Id"))

		json.NewEncoder(w).Encode(domain.OnboardingRecord{
			TenantID:  "5e6ab306-8cbf-43b9-9778-f1abbe7b6ed1",
			Status:    domain.OnboardingCompleted,
			Completed: true,
		})
	}))
	defer server.Close()

	client := newTestClient(t, server)

	record, err := client.GetStatus(context.Background(), "", "user-1")
	require.NoError(t, err)
	assert.True(t, record.Completed)
	assert.Equal(t, domain.OnboardingCompleted, record.Status)
}

func TestClient_Non2xxBecomesAPIError(t *testing.T) {
	tests := map[string]struct {
		status        int
		body          string
		wantRetryable bool
	}{
		"500 is retryable": {
			status:        http.StatusInternalServerError,
			body:          `{"error":"boom"}`,
			wantRetryable: true,
		},
		"429 is retryable": {
			status:        http.StatusTooManyRequests,
			body:          "slow down",
			wantRetryable: true,
		},
		"400 is permanent": {
			status:        http.StatusBadRequest,
			body:          `{"error":"bad payload"}`,
			wantRetryable: false,
		},
		"404 is permanent": {
			status:        http.StatusNotFound,
			body:          "",
			wantRetryable: false,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := newTestClient(t, server)

			err := client.PostForceComplete(context.Background(), "tenant-a", "user-1")
			require.Error(t, err)

			apiErr, ok := err.(*APIError)
			require.True(t, ok, "expected *APIError, got %T", err)
			assert.Equal(t, tc.status, apiErr.StatusCode)
			assert.Equal(t, tc.wantRetryable, apiErr.Retryable())
			assert.Contains(t, apiErr.Body, tc.body)
		})
	}
}

func TestClient_ErrorBodyIsBounded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		big := make([]byte, 10000)
		for i := range big {
			big[i] = 'x'
		}
		w.Write(big)
	}))
	defer server.Close()

	client := newTestClient(t, server)

	err := client.PostSubscription(context.Background(), "tenant-a", "user-1", domain.SubscriptionSelection{Plan: "free"})
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.LessOrEqual(t, len(apiErr.Body), maxErrorBody)
}

func TestClient_ContextCancellation(t *testing.T) {
	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer server.Close()

	client := newTestClient(t, server)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := client.GetStatus(ctx, "", "user-1")
		done <- err
	}()

	<-started
	cancel()

	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("request did not observe cancellation")
	}
}
