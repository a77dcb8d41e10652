// Package challenge verifies human-verification tokens with Cloudflare Turnstile.
package challenge

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storefront/internal/pkg/config"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/tracing"
)

const verifyTimeout = 10 * time.Second

// ReplayGuard claims a token once. A second claim of the same token reports false.
type ReplayGuard interface {
	Claim(ctx context.Context, token string) (bool, error)
}

type siteverifyJSON struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
	Hostname   string   `json:"hostname"`
}

type Verifier struct {
	httpClient *http.Client
	secret     string
	verifyURL  string
	guard      ReplayGuard
}

// NewVerifier builds a verifier. guard may be nil, in which case only the provider's own
// single-use check applies.
func NewVerifier(cfg config.TurnstileConfig, guard ReplayGuard) *Verifier {
	return &Verifier{
		httpClient: &http.Client{Timeout: verifyTimeout},
		secret:     cfg.Secret,
		verifyURL:  cfg.VerifyURL,
		guard:      guard,
	}
}

func (v *Verifier) Verify(ctx context.Context, token, remoteIP string) (bool, error) {
	ctx, span := tracing.StartSpan(ctx, "challenge.verify")
	defer span.End()

	token = strings.TrimSpace(token)
	if token == "" {
		return false, nil
	}

	if v.guard != nil {
		first, err := v.guard.Claim(ctx, token)
		switch {
		case err != nil:
			slog.Warn("challenge replay guard unavailable", "error", err.Error())
		case !first:
			slog.Info("challenge token replayed")
			return false, nil
		}
	}

	form := url.Values{}
	form.Set("secret", v.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return false, errs.Wrap(err, "challenge verification request failed")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return false, errs.Newf("challenge verification responded with %s", resp.Status)
	}

	var out siteverifyJSON
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return false, errs.Wrap(err, "decode challenge verification")
	}
	if !out.Success {
		slog.Info("challenge rejected", "error_codes", out.ErrorCodes)
	}
	return out.Success, nil
}
