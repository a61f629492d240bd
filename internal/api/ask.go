package api

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	http "github.com/bogdanfinn/fhttp"

	apierrors "github.com/diogo/bardweb/internal/errors"
	"github.com/diogo/bardweb/internal/models"
)

// AskOptions carries the optional parts of an ask exchange
type AskOptions struct {
	// ImageURL references an already-uploaded image; the upload itself is
	// the caller's concern.
	ImageURL  string
	ImageName string
	// Tools selects workspace extensions the service may consult.
	Tools []models.Tool
}

// GetAnswer sends a prompt and returns the parsed answer. Conversation
// identifiers from the previous turn are threaded into the request and
// overwritten from the response; the request counter bumps once per
// completed exchange.
func (c *BardClient) GetAnswer(prompt string, opts *AskOptions) (*models.Answer, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, fmt.Errorf("prompt cannot be empty")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.nonce == "" {
		return nil, apierrors.NewAuthError("client not initialized; call Init first")
	}

	var imageURL, imageName string
	var tools []models.Tool
	if opts != nil {
		imageURL = opts.ImageURL
		imageName = opts.ImageName
		tools = opts.Tools
	}

	prompt = c.translateOutbound(prompt)

	envelope, err := buildAskEnvelope(prompt, c.state, imageURL, imageName, tools)
	if err != nil {
		return nil, err
	}

	body, statusCode, err := c.postForm(models.EndpointGenerate, queryParams(c.state.ReqID), envelope)
	if err != nil {
		return nil, err
	}

	answer, err := decodeAnswer(body, statusCode)
	if err != nil {
		return nil, err
	}

	c.translateInbound(answer)

	c.state.Advance(answer)
	c.state.Bump()

	// An execution failure must never escape the exchange.
	if c.runCode && answer.HasCode() {
		if runErr := c.codeRunner.Run(answer.ProgramLang, answer.Code); runErr != nil {
			c.logger.WithError(runErr).Warn("code runner failed")
		}
	}

	return answer, nil
}

// AskAboutImage sends a question about an already-uploaded image
func (c *BardClient) AskAboutImage(prompt, imageURL, imageName string) (*models.Answer, error) {
	return c.GetAnswer(prompt, &AskOptions{ImageURL: imageURL, ImageName: imageName})
}

// translateOutbound converts the prompt to the pivot language when the
// configured target language is outside the natively supported set. A
// translation failure is non-fatal: the original text is sent.
func (c *BardClient) translateOutbound(prompt string) string {
	if c.language == "" || models.IsPivotLanguage(c.language) {
		return prompt
	}

	translated, err := c.translator.Translate(context.Background(), prompt, "auto", "en")
	if err != nil {
		c.logger.WithError(apierrors.NewTranslationError("outbound", err)).
			Warn("sending untranslated prompt")
		return prompt
	}
	return translated
}

// translateInbound converts each choice's text fragment to the target
// language, leaving non-text fragments untouched. Failures keep the
// original text and are only logged.
func (c *BardClient) translateInbound(answer *models.Answer) {
	if c.language == "" || models.IsPivotLanguage(c.language) {
		return
	}

	for i := range answer.Choices {
		if len(answer.Choices[i].Content) == 0 {
			continue
		}
		translated, err := c.translator.Translate(
			context.Background(), answer.Choices[i].Content[0], "en", c.language)
		if err != nil {
			c.logger.WithError(apierrors.NewTranslationError("inbound", err)).
				Warn("keeping untranslated answer")
			continue
		}
		answer.Choices[i].Content[0] = translated
	}

	if len(answer.Choices) > 0 && len(answer.Choices[0].Content) > 0 {
		answer.Content = answer.Choices[0].Content[0]
	}
}

// postForm sends the f.req envelope with the anti-CSRF token and returns
// the raw response body. Must be called with c.mu held.
func (c *BardClient) postForm(endpoint string, params url.Values, envelope string) ([]byte, int, error) {
	form := url.Values{}
	form.Set("f.req", envelope)
	form.Set("at", c.nonce)

	req, err := http.NewRequest(http.MethodPost,
		endpoint+"?"+params.Encode(), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	setHeaders(req)
	c.addCookies(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, apierrors.NewNetworkError("post", endpoint, err)
	}
	defer func() {
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
	}()

	if resp.StatusCode != 200 {
		body := readBody(resp.Body, 4096)
		return nil, resp.StatusCode, apierrors.NewUpstreamError(
			resp.StatusCode, endpoint, "request failed").WithBody(body)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, resp.StatusCode, nil
}
