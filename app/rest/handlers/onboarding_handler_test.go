package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"onboarding-hub/app/domain"
	"onboarding-hub/app/mocks"
)

const (
	testTenantID   = "5e6ab306-8cbf-43b9-9778-f1abbe7b6ed1"
	testCredential = "sealed-credential"
)

var testCookies = CookieConfig{
	SessionName:     "oh_session",
	MarkerName:      "onboarding_just_completed",
	Secure:          true,
	SupersededNames: []string{"appSession", "onboardingStep"},
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

type handlerMocks struct {
	validator    *mocks.MockSessionValidator
	orchestrator *mocks.MockCompletionOrchestrator
	synchronizer *mocks.MockSessionSynchronizer
}

func newTestHandler(t *testing.T) (*OnboardingHandler, handlerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := handlerMocks{
		validator:    mocks.NewMockSessionValidator(ctrl),
		orchestrator: mocks.NewMockCompletionOrchestrator(ctrl),
		synchronizer: mocks.NewMockSessionSynchronizer(ctrl),
	}
	h := NewOnboardingHandler(m.validator, m.orchestrator, m.synchronizer, testCookies, newTestLogger())
	return h, m
}

func validatedSession() *domain.SessionContext {
	return &domain.SessionContext{
		UserID:   "user-1",
		Email:    "owner@example.com",
		Name:     "Owner",
		TenantID: testTenantID,
		Facts: domain.SessionFacts{
			UserID:          "user-1",
			Email:           "owner@example.com",
			TenantID:        testTenantID,
			NeedsOnboarding: true,
		},
	}
}

func completeAllContext(body string, withCookie bool) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/onboarding/complete-all", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if withCookie {
		req.AddCookie(&http.Cookie{Name: testCookies.SessionName, Value: testCredential})
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

const validBody = `{
	"businessName": "Acme GmbH",
	"businessType": "retail",
	"selectedPlan": "free"
}`

func TestCompleteAll_Unauthenticated(t *testing.T) {
	h, m := newTestHandler(t)

	m.validator.EXPECT().
		Validate(gomock.Any(), "").
		Return(nil, domain.ErrUnauthenticated)

	c, rec := completeAllContext(validBody, false)
	require.NoError(t, h.CompleteAll(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, domain.KindUnauthenticated, resp.Error)
}

func TestCompleteAll_MissingRequiredFields(t *testing.T) {
	h, m := newTestHandler(t)

	m.validator.EXPECT().
		Validate(gomock.Any(), testCredential).
		Return(validatedSession(), nil)
	// Orchestrator must not be reached.

	c, rec := completeAllContext(`{"country": "DE"}`, true)
	require.NoError(t, h.CompleteAll(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.KindInvalidInput, resp.Error)
	assert.ElementsMatch(t, []string{"businessName", "businessType", "selectedPlan"}, resp.MissingFields)
}

func TestCompleteAll_UnknownPlanRejected(t *testing.T) {
	h, m := newTestHandler(t)

	m.validator.EXPECT().
		Validate(gomock.Any(), testCredential).
		Return(validatedSession(), nil)

	body := `{"businessName": "Acme", "businessType": "retail", "selectedPlan": "platinum"}`
	c, rec := completeAllContext(body, true)
	require.NoError(t, h.CompleteAll(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.KindInvalidInput, resp.Error)
	// Present but invalid fields are not "missing".
	assert.Empty(t, resp.MissingFields)
}

func TestCompleteAll_MalformedJSON(t *testing.T) {
	h, m := newTestHandler(t)

	m.validator.EXPECT().
		Validate(gomock.Any(), testCredential).
		Return(validatedSession(), nil)

	c, rec := completeAllContext(`{not json`, true)
	require.NoError(t, h.CompleteAll(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCompleteAll_Success(t *testing.T) {
	h, m := newTestHandler(t)

	sc := validatedSession()
	sessionExpires := time.Now().Add(24 * time.Hour)
	markerExpires := time.Now().Add(5 * time.Minute)

	m.validator.EXPECT().
		Validate(gomock.Any(), testCredential).
		Return(sc, nil)

	m.orchestrator.EXPECT().
		CompleteAll(gomock.Any(), sc, gomock.Any()).
		DoAndReturn(func(_ any, sc *domain.SessionContext, req domain.CompletionRequest) (*domain.CompletionResult, error) {
			assert.Equal(t, "Acme GmbH", req.Profile.Name)
			assert.Equal(t, "free", req.Subscription.Plan)
			sc.Facts.MarkCompleted(testTenantID, req.Subscription.Plan)
			return &domain.CompletionResult{
				TenantID:     testTenantID,
				TenantSource: domain.TenantSourceCreation,
				Plan:         "free",
				RedirectPath: "/dashboard",
				NextSteps:    []string{"explore_dashboard"},
			}, nil
		})

	m.synchronizer.EXPECT().
		Sync(gomock.Any(), domain.SessionFacts{}).
		Return(&domain.CredentialBundle{
			SessionToken:    "new-sealed-credential",
			SessionExpires:  sessionExpires,
			Marker:          testTenantID,
			MarkerExpires:   markerExpires,
			SupersededNames: testCookies.SupersededNames,
		}, nil)

	m.validator.EXPECT().Invalidate(testCredential)

	c, rec := completeAllContext(validBody, true)
	require.NoError(t, h.CompleteAll(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp CompleteAllResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, testTenantID, resp.TenantID)
	assert.Equal(t, "/dashboard", resp.Redirect)
	assert.Equal(t, "user-1", resp.User.UserID)
	assert.Equal(t, []string{"explore_dashboard"}, resp.NextSteps)

	cookies := rec.Result().Cookies()
	byName := make(map[string]*http.Cookie)
	for _, ck := range cookies {
		byName[ck.Name] = ck
	}

	session := byName["oh_session"]
	require.NotNil(t, session, "session cookie must be set")
	assert.Equal(t, "new-sealed-credential", session.Value)
	assert.True(t, session.HttpOnly)
	assert.True(t, session.Secure)

	marker := byName["onboarding_just_completed"]
	require.NotNil(t, marker, "completion marker must be set")
	assert.Equal(t, testTenantID, marker.Value)
	assert.False(t, marker.HttpOnly, "marker must be readable by client polling")

	// Superseded credentials are expired in the same response.
	for _, name := range testCookies.SupersededNames {
		stale := byName[name]
		require.NotNil(t, stale, "superseded cookie %s must be deleted", name)
		assert.Empty(t, stale.Value)
		assert.Equal(t, -1, stale.MaxAge)
	}
}

func TestCompleteAll_FatalPhaseFailure(t *testing.T) {
	h, m := newTestHandler(t)

	m.validator.EXPECT().
		Validate(gomock.Any(), testCredential).
		Return(validatedSession(), nil)

	m.orchestrator.EXPECT().
		CompleteAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, domain.NewPhaseError(domain.PhaseBusinessInfo, testTenantID, domain.ErrSchemaNotProvisioned))
	// No sync, no invalidation, no cookie mutation on a fatal failure.

	c, rec := completeAllContext(validBody, true)
	require.NoError(t, h.CompleteAll(c))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.KindSchemaNotProvisioned, resp.Error)
	assert.Empty(t, rec.Result().Cookies())
}

func TestCompleteAll_BearerFallback(t *testing.T) {
	h, m := newTestHandler(t)

	m.validator.EXPECT().
		Validate(gomock.Any(), "bearer-credential").
		Return(nil, domain.ErrUnauthenticated)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/onboarding/complete-all", strings.NewReader(validBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Authorization", "Bearer bearer-credential")
	rec := httptest.NewRecorder()

	require.NoError(t, h.CompleteAll(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestStatus_ReturnsSessionState(t *testing.T) {
	h, m := newTestHandler(t)

	sc := validatedSession()
	sc.Facts.OnboardingCompleted = true
	sc.Facts.NeedsOnboarding = false
	sc.Facts.CurrentStep = domain.StepComplete
	sc.Facts.SubscriptionPlan = "professional"

	m.validator.EXPECT().
		Validate(gomock.Any(), testCredential).
		Return(sc, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/onboarding/status", nil)
	req.AddCookie(&http.Cookie{Name: testCookies.SessionName, Value: testCredential})
	rec := httptest.NewRecorder()

	require.NoError(t, h.Status(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Authenticated)
	assert.True(t, resp.OnboardingCompleted)
	assert.False(t, resp.NeedsOnboarding)
	assert.Equal(t, domain.StepComplete, resp.CurrentStep)
	assert.Equal(t, "professional", resp.SubscriptionPlan)
	assert.Equal(t, testTenantID, resp.User.TenantID)
}

func TestStatus_Unauthenticated(t *testing.T) {
	h, m := newTestHandler(t)

	m.validator.EXPECT().
		Validate(gomock.Any(), "").
		Return(nil, domain.ErrUnauthenticated)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/onboarding/status", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Status(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
