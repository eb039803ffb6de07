package handler

import (
	"net/http"
	"strings"

	"atelier/internal/errors"

	"github.com/labstack/echo/v4"
	"google.golang.org/api/idtoken"
)

var googleIssuers = map[string]bool{
	"accounts.google.com":         true,
	"https://accounts.google.com": true,
}

// verifyPubSubToken validates the OIDC token Pub/Sub attaches to authenticated
// push requests. The audience is the push endpoint URL.
func verifyPubSubToken(req *http.Request) error {
	token, ok := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !ok || token == "" {
		return errors.New("missing bearer token")
	}

	payload, err := idtoken.Validate(req.Context(), token, pushAudience(req))
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}
	if !googleIssuers[payload.Issuer] {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return errors.New("email not verified")
	}

	return nil
}

// pushAudience rebuilds the URL Pub/Sub was configured to call. Behind a TLS
// terminating proxy the scheme comes from X-Forwarded-Proto.
func pushAudience(req *http.Request) string {
	scheme := "http"
	if req.TLS != nil {
		scheme = "https"
	}
	if proto := req.Header.Get(echo.HeaderXForwardedProto); proto != "" {
		scheme = proto
	}

	return scheme + "://" + req.Host + req.URL.Path
}
