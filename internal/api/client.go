package api

import (
	"fmt"
	"sync"
	"time"

	http "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
	"github.com/sirupsen/logrus"

	"github.com/diogo/bardweb/internal/models"
	"github.com/diogo/bardweb/internal/runner"
	"github.com/diogo/bardweb/internal/translate"
)

// httpDoer is the subset of tls_client.HttpClient the client uses. Tests
// inject a fake; production wiring passes a real tls-client.
type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// TokenExtractor yields authentication cookies from an external source,
// typically a browser cookie store. The client only defines the port.
type TokenExtractor interface {
	Extract() (map[string]string, error)
}

// BardClient is the client for the Bard web front end. One instance owns
// one HTTP session and one conversation state; parallel callers should use
// independent instances.
type BardClient struct {
	httpClient httpDoer

	token        string
	cookies      map[string]string
	extractor    TokenExtractor
	multiCookies bool

	nonce   string
	timeout time.Duration
	proxy   string

	language   string
	translator translate.Translator

	runCode    bool
	codeRunner runner.Runner

	logger *logrus.Logger

	mu    sync.Mutex
	state ConversationState
}

// ClientOption configures the client
type ClientOption func(*BardClient)

// WithToken sets the __Secure-1PSID credential explicitly. It takes
// precedence over the environment and any browser extractor.
func WithToken(token string) ClientOption {
	return func(c *BardClient) {
		c.token = token
	}
}

// WithCookies attaches auxiliary cookies for multi-cookie authentication
func WithCookies(cookies map[string]string) ClientOption {
	return func(c *BardClient) {
		c.cookies = cookies
	}
}

// WithBrowserTokens enables credential extraction through the given port
// when neither an explicit token nor the environment provides one.
func WithBrowserTokens(extractor TokenExtractor) ClientOption {
	return func(c *BardClient) {
		c.extractor = extractor
	}
}

// WithMultiCookies attaches every extracted cookie to the session, not just
// the primary one.
func WithMultiCookies(enabled bool) ClientOption {
	return func(c *BardClient) {
		c.multiCookies = enabled
	}
}

// WithTimeout sets the per-request wall-clock timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *BardClient) {
		c.timeout = timeout
	}
}

// WithProxy routes all requests through the given proxy URL
func WithProxy(proxy string) ClientOption {
	return func(c *BardClient) {
		c.proxy = proxy
	}
}

// WithHTTPClient supplies a pre-built HTTP session instead of the default
// Chrome-profile tls-client.
func WithHTTPClient(client tls_client.HttpClient) ClientOption {
	return func(c *BardClient) {
		c.httpClient = client
	}
}

// WithConversationID resumes a prior conversation
func WithConversationID(conversationID string) ClientOption {
	return func(c *BardClient) {
		c.state.ConversationID = conversationID
	}
}

// WithLanguage sets the target natural language for answers. Languages the
// service supports natively skip the translation round-trip.
func WithLanguage(language string) ClientOption {
	return func(c *BardClient) {
		c.language = language
	}
}

// WithTranslator injects the translation backend
func WithTranslator(t translate.Translator) ClientOption {
	return func(c *BardClient) {
		c.translator = t
	}
}

// WithCodeRunner injects the code-execution port and enables it
func WithCodeRunner(r runner.Runner) ClientOption {
	return func(c *BardClient) {
		c.codeRunner = r
		c.runCode = true
	}
}

// WithLogger sets the logger used for non-fatal warnings
func WithLogger(logger *logrus.Logger) ClientOption {
	return func(c *BardClient) {
		c.logger = logger
	}
}

// NewClient creates a BardClient. Call Init before the first operation to
// resolve credentials and fetch the anti-CSRF nonce.
func NewClient(opts ...ClientOption) (*BardClient, error) {
	client := &BardClient{
		timeout:    20 * time.Second,
		translator: translate.Noop{},
		codeRunner: runner.Noop{},
		logger:     logrus.New(),
		state:      NewConversationState(),
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient == nil {
		options := []tls_client.HttpClientOption{
			tls_client.WithTimeoutSeconds(int(client.timeout.Seconds())),
			tls_client.WithClientProfile(profiles.Chrome_120),
			tls_client.WithNotFollowRedirects(),
		}
		if client.proxy != "" {
			options = append(options, tls_client.WithProxyUrl(client.proxy))
		}

		httpClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP client: %w", err)
		}
		client.httpClient = httpClient
	}

	return client, nil
}

// Init resolves the credential and fetches the anti-CSRF nonce from the
// landing page. It must succeed before any other operation.
func (c *BardClient) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	token, err := c.resolveToken()
	if err != nil {
		return err
	}
	c.token = token

	nonce, err := c.fetchNonce()
	if err != nil {
		return err
	}
	c.nonce = nonce

	return nil
}

// RefreshNonce re-fetches the landing page nonce, the only part of the
// session that may be renewed after Init.
func (c *BardClient) RefreshNonce() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	nonce, err := c.fetchNonce()
	if err != nil {
		return err
	}
	c.nonce = nonce
	return nil
}

// Nonce returns the current anti-CSRF nonce
func (c *BardClient) Nonce() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nonce
}

// State returns a snapshot of the conversation state
func (c *BardClient) State() ConversationState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// RestoreState replaces the conversation state, resuming a snapshot taken
// earlier (possibly from another client instance).
func (c *BardClient) RestoreState(state ConversationState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = state
}

// ResetConversation clears the conversation identifiers so the next ask
// starts a new conversation.
func (c *BardClient) ResetConversation() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Reset()
}

// SelectChoice continues the conversation from a different candidate branch
// of the last answer.
func (c *BardClient) SelectChoice(choiceID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.SelectChoice(choiceID)
}

// addCookies attaches the credential and auxiliary cookies to a request
func (c *BardClient) addCookies(req *http.Request) {
	req.AddCookie(&http.Cookie{Name: models.CookiePSID, Value: c.token})
	for name, value := range c.cookies {
		if name == models.CookiePSID {
			continue
		}
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}
}

// setHeaders applies the browser-emulation headers
func setHeaders(req *http.Request) {
	for key, value := range models.DefaultHeaders() {
		req.Header.Set(key, value)
	}
}
