package api

import (
	"fmt"
	"io"
	"regexp"

	http "github.com/bogdanfinn/fhttp"

	"github.com/diogo/bardweb/internal/config"
	apierrors "github.com/diogo/bardweb/internal/errors"
	"github.com/diogo/bardweb/internal/models"
)

// The landing page has carried the anti-CSRF nonce under two spellings
// across server builds; both are accepted.
var noncePatterns = []*regexp.Regexp{
	regexp.MustCompile(`"SNlM0e":"([^"]+)"`),
	regexp.MustCompile(`nonce="([^"]+)"`),
}

// resolveToken picks the credential with fixed precedence: explicit token,
// then environment, then the injected browser extractor.
// Must be called with c.mu held.
func (c *BardClient) resolveToken() (string, error) {
	if c.token != "" {
		return c.token, nil
	}

	settings, err := config.Load()
	if err == nil && settings.Token != "" {
		return settings.Token, nil
	}

	if c.extractor != nil {
		extracted, err := c.extractor.Extract()
		if err != nil {
			return "", apierrors.NewAuthError(fmt.Sprintf("browser extraction failed: %v", err))
		}

		if c.multiCookies {
			for _, name := range models.RequiredMultiCookies {
				if extracted[name] == "" {
					c.logger.WithField("cookie", name).Warn("essential cookie missing from browser extraction")
				}
			}
			if c.cookies == nil {
				c.cookies = make(map[string]string, len(extracted))
			}
			for name, value := range extracted {
				c.cookies[name] = value
			}
		}

		if psid := extracted[models.CookiePSID]; psid != "" {
			return psid, nil
		}
	}

	return "", apierrors.NewAuthError(
		"token must be provided explicitly, via _BARD_API_KEY, or extracted from the browser")
}

// fetchNonce loads the landing page and extracts the embedded anti-CSRF
// nonce. Must be called with c.mu held.
func (c *BardClient) fetchNonce() (string, error) {
	req, err := http.NewRequest(http.MethodGet, models.EndpointInit, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create landing page request: %w", err)
	}
	setHeaders(req)
	c.addCookies(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apierrors.NewNetworkError("fetch nonce", models.EndpointInit, err)
	}
	defer func() {
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
	}()

	if resp.StatusCode != 200 {
		body := readBody(resp.Body, 2048)
		return "", apierrors.NewUpstreamError(resp.StatusCode, models.EndpointInit,
			"landing page fetch failed").WithBody(body)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read landing page: %w", err)
	}

	for _, pattern := range noncePatterns {
		if matches := pattern.FindSubmatch(body); len(matches) >= 2 {
			return string(matches[1]), nil
		}
	}

	return "", apierrors.NewUpstreamError(resp.StatusCode, models.EndpointInit,
		"nonce not found in landing page; cookies may be stale or invalid")
}

// readBody reads at most limit bytes for error diagnostics
func readBody(r io.Reader, limit int64) string {
	data, _ := io.ReadAll(io.LimitReader(r, limit))
	return string(data)
}
