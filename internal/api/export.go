package api

import (
	"fmt"
	"net/url"
	"strings"

	apierrors "github.com/diogo/bardweb/internal/errors"
	"github.com/diogo/bardweb/internal/models"
)

// ExportConversation publishes the exchange behind the given answer and
// returns its share URL.
func (c *BardClient) ExportConversation(answer *models.Answer, title string) (*models.ExportResult, error) {
	if answer == nil || answer.ConversationID == "" {
		return nil, fmt.Errorf("answer with conversation identifiers is required")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.nonce == "" {
		return nil, apierrors.NewAuthError("client not initialized; call Init first")
	}

	payload, err := buildSharePayload(answer.ConversationID, answer.ResponseID, answer.ChoiceID(), title)
	if err != nil {
		return nil, err
	}

	extra := url.Values{}
	extra.Set("rpcids", models.RPCExportShare)
	extra.Set("source-path", "/")

	data, statusCode, err := c.batchExecute(models.RPCExportShare, payload, extra)
	if err != nil {
		return nil, err
	}

	shareID := data.Get(PathShareID).String()
	if shareID == "" {
		return nil, apierrors.NewParseError("no share id in export payload", PathShareID)
	}

	c.state.Bump()

	return &models.ExportResult{
		URL:        models.ShareURLPrefix + shareID,
		StatusCode: statusCode,
	}, nil
}

// SandboxOptions carries the optional parts of a sandbox export
type SandboxOptions struct {
	// Filename overrides the language-derived entry filename. Required for
	// languages outside the supported table.
	Filename     string
	Instructions string
}

// ExportSandbox uploads a code snippet to the code sandbox and returns its
// URL. The entry filename is derived from the declared language unless
// overridden.
func (c *BardClient) ExportSandbox(code, programLang string, opts *SandboxOptions) (*models.ExportResult, error) {
	if code == "" {
		return nil, fmt.Errorf("code cannot be empty")
	}

	var filename, instructions string
	if opts != nil {
		filename = opts.Filename
		instructions = opts.Instructions
	}

	if filename == "" {
		mapped, ok := models.SandboxFilenames[strings.ToLower(programLang)]
		if !ok {
			return nil, apierrors.NewUpstreamError(0, models.EndpointBatchExec,
				fmt.Sprintf("language %q not supported for sandbox export; set a filename explicitly", programLang))
		}
		filename = mapped
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.nonce == "" {
		return nil, apierrors.NewAuthError("client not initialized; call Init first")
	}

	payload, err := buildSandboxPayload(instructions, code, filename)
	if err != nil {
		return nil, err
	}

	extra := url.Values{}
	extra.Set("rpcids", models.RPCExportSandbox)
	extra.Set("source-path", "/")

	data, statusCode, err := c.batchExecute(models.RPCExportSandbox, payload, extra)
	if err != nil {
		return nil, err
	}

	sandboxURL := data.Get(PathSandboxURL).String()
	if sandboxURL == "" {
		return nil, apierrors.NewParseError("no URL in sandbox payload", PathSandboxURL)
	}

	c.state.Bump()

	return &models.ExportResult{URL: sandboxURL, StatusCode: statusCode}, nil
}
