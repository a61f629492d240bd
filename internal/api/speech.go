package api

import (
	"encoding/base64"
	"fmt"
	"strings"

	apierrors "github.com/diogo/bardweb/internal/errors"
	"github.com/diogo/bardweb/internal/models"
)

// Speech synthesizes audio for the given text. lang defaults to "en-US".
// The returned bytes are an OGG stream as served by the voice RPC.
func (c *BardClient) Speech(text, lang string) (*models.SpeechResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("text cannot be empty")
	}
	if lang == "" {
		lang = "en-US"
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.nonce == "" {
		return nil, apierrors.NewAuthError("client not initialized; call Init first")
	}

	payload, err := buildSpeechPayload(text, lang)
	if err != nil {
		return nil, err
	}

	data, statusCode, err := c.batchExecute(models.RPCSpeech, payload, nil)
	if err != nil {
		return nil, err
	}

	encoded := data.Get(PathSpeechAudio).String()
	if encoded == "" {
		return nil, apierrors.NewParseError("no audio in speech payload", PathSpeechAudio)
	}

	audio, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, apierrors.NewParseError(fmt.Sprintf("audio is not valid base64: %v", err), PathSpeechAudio)
	}

	return &models.SpeechResult{Audio: audio, StatusCode: statusCode}, nil
}
