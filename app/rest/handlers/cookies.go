package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"onboarding-hub/app/domain"
)

// CookieConfig names the credential channels this service manages.
type CookieConfig struct {
	SessionName     string
	MarkerName      string
	Domain          string
	Secure          bool
	SupersededNames []string
}

// applyBundle writes the whole credential set in one response: the sealed
// session cookie, the plaintext completion marker, and expirations for
// every superseded credential name. All channels are updated together so
// stale readers never see a partial state.
func applyBundle(c echo.Context, cfg CookieConfig, bundle *domain.CredentialBundle) {
	c.SetCookie(&http.Cookie{
		Name:     cfg.SessionName,
		Value:    bundle.SessionToken,
		Path:     "/",
		Domain:   cfg.Domain,
		Expires:  bundle.SessionExpires,
		Secure:   cfg.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	// Readable by client-side polling, deliberately not HttpOnly. Never an
	// authorization input.
	if bundle.Marker != "" {
		c.SetCookie(&http.Cookie{
			Name:     cfg.MarkerName,
			Value:    bundle.Marker,
			Path:     "/",
			Domain:   cfg.Domain,
			Expires:  bundle.MarkerExpires,
			Secure:   cfg.Secure,
			HttpOnly: false,
			SameSite: http.SameSiteLaxMode,
		})
	}

	for _, name := range bundle.SupersededNames {
		c.SetCookie(&http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			Domain:   cfg.Domain,
			Expires:  time.Unix(0, 0),
			MaxAge:   -1,
			Secure:   cfg.Secure,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
}
