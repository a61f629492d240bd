package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	http "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
	"github.com/tidwall/gjson"
)

const (
	webEndpoint   = "https://translate.googleapis.com/translate_a/single"
	cloudEndpoint = "https://translation.googleapis.com/language/translate/v2"
)

// httpDoer is the subset of tls_client.HttpClient the translators use
type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func newHTTPClient() (tls_client.HttpClient, error) {
	return tls_client.NewHttpClient(tls_client.NewNoopLogger(),
		tls_client.WithTimeoutSeconds(10),
		tls_client.WithClientProfile(profiles.Chrome_120),
	)
}

// WebTranslator uses the free gtx web endpoint. It needs no credentials and
// mirrors what the original client's translation dependency does under the
// hood.
type WebTranslator struct {
	client httpDoer
}

// NewWebTranslator creates a WebTranslator with its own HTTP client
func NewWebTranslator() (*WebTranslator, error) {
	client, err := newHTTPClient()
	if err != nil {
		return nil, fmt.Errorf("failed to create translator HTTP client: %w", err)
	}
	return &WebTranslator{client: client}, nil
}

// Translate converts text from source to target via the gtx endpoint.
// The response is a nested array; segment texts sit at [0][i][0].
func (t *WebTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	if text == "" {
		return "", nil
	}
	if source == "" {
		source = "auto"
	}

	q := url.Values{}
	q.Set("client", "gtx")
	q.Set("sl", source)
	q.Set("tl", target)
	q.Set("dt", "t")
	q.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, webEndpoint+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create translate request: %w", err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate request failed: %w", err)
	}
	defer func() {
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
	}()

	if resp.StatusCode != 200 {
		return "", fmt.Errorf("translate endpoint returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read translate response: %w", err)
	}

	return parseWebSegments(body)
}

// parseWebSegments concatenates the translated segments of a gtx response
func parseWebSegments(body []byte) (string, error) {
	parsed := gjson.ParseBytes(body)
	segments := parsed.Get("0")
	if !segments.IsArray() {
		return "", fmt.Errorf("unexpected translate response shape")
	}

	var sb strings.Builder
	segments.ForEach(func(_, seg gjson.Result) bool {
		sb.WriteString(seg.Get("0").String())
		return true
	})
	return sb.String(), nil
}

// CloudTranslator uses the Cloud Translation v2 REST API with an API key
type CloudTranslator struct {
	client httpDoer
	apiKey string
}

// NewCloudTranslator creates a CloudTranslator for the given API key
func NewCloudTranslator(apiKey string) (*CloudTranslator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("translator API key is required")
	}
	client, err := newHTTPClient()
	if err != nil {
		return nil, fmt.Errorf("failed to create translator HTTP client: %w", err)
	}
	return &CloudTranslator{client: client, apiKey: apiKey}, nil
}

// Translate converts text via the Cloud v2 REST endpoint
func (t *CloudTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	if text == "" {
		return "", nil
	}

	payload := map[string]interface{}{
		"q":      text,
		"target": target,
		"format": "text",
	}
	if source != "" && source != "auto" {
		payload["source"] = source
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal translate payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		cloudEndpoint+"?key="+url.QueryEscape(t.apiKey), strings.NewReader(string(data)))
	if err != nil {
		return "", fmt.Errorf("failed to create translate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate request failed: %w", err)
	}
	defer func() {
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
	}()

	if resp.StatusCode != 200 {
		return "", fmt.Errorf("translate endpoint returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read translate response: %w", err)
	}

	translated := gjson.GetBytes(body, "data.translations.0.translatedText")
	if !translated.Exists() {
		return "", fmt.Errorf("unexpected translate response shape")
	}
	return translated.String(), nil
}
