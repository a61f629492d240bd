package api

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/tidwall/sjson"

	"github.com/diogo/bardweb/internal/models"
)

// buildAskEnvelope constructs the f.req payload for an ask exchange. The
// base structure is marshaled once; the optional image and tool slots are
// spliced in afterwards so the sparse positions stay in one place.
func buildAskEnvelope(prompt string, state ConversationState, imageURL, imageName string, tools []models.Tool) (string, error) {
	inner := []interface{}{
		[]interface{}{prompt, 0, nil, []interface{}{}, nil, nil, 0},
		[]interface{}{"en"},
		// Empty identifier strings signal a new conversation server-side.
		[]interface{}{state.ConversationID, state.ResponseID, state.ChoiceID},
		nil,
		strings.ReplaceAll(uuid.NewString(), "-", ""),
		nil,
		[]interface{}{1},
		0,
		[]interface{}{},
		[]interface{}{},
		1,
		0,
	}

	innerBytes, err := json.Marshal(inner)
	if err != nil {
		return "", fmt.Errorf("failed to marshal ask payload: %w", err)
	}
	innerJSON := string(innerBytes)

	if imageURL != "" {
		if imageName == "" {
			imageName = "uploaded_photo.jpg"
		}
		ref, err := json.Marshal([]interface{}{
			[]interface{}{[]interface{}{imageURL, 1}, imageName},
		})
		if err != nil {
			return "", fmt.Errorf("failed to marshal image reference: %w", err)
		}
		innerJSON, err = sjson.SetRaw(innerJSON, "0.3", string(ref))
		if err != nil {
			return "", fmt.Errorf("failed to splice image reference: %w", err)
		}
	}

	if len(tools) > 0 {
		var wires []interface{}
		for _, tool := range tools {
			wires = append(wires, tool.Wire())
		}
		toolJSON, err := json.Marshal(wires)
		if err != nil {
			return "", fmt.Errorf("failed to marshal tool selectors: %w", err)
		}
		innerJSON, err = sjson.SetRaw(innerJSON, "9", string(toolJSON))
		if err != nil {
			return "", fmt.Errorf("failed to splice tool selectors: %w", err)
		}
	}

	return wrapEnvelope(innerJSON)
}

// wrapEnvelope wraps the serialized inner payload in the outer
// [null, "<inner>"] envelope expected by the streaming endpoint.
func wrapEnvelope(innerJSON string) (string, error) {
	outer, err := json.Marshal([]interface{}{nil, innerJSON})
	if err != nil {
		return "", fmt.Errorf("failed to marshal envelope: %w", err)
	}
	return string(outer), nil
}

// buildRPCEnvelope constructs the f.req payload for a batchexecute call:
// [[[rpcID, "<payload>", null, "generic"]]]
func buildRPCEnvelope(rpcID, payload string) (string, error) {
	envelope, err := json.Marshal([]interface{}{
		[]interface{}{
			[]interface{}{rpcID, payload, nil, "generic"},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal RPC envelope: %w", err)
	}
	return string(envelope), nil
}

// buildSpeechPayload serializes the speech synthesis RPC arguments
func buildSpeechPayload(text, lang string) (string, error) {
	payload, err := json.Marshal([]interface{}{nil, text, lang, nil, 2})
	if err != nil {
		return "", fmt.Errorf("failed to marshal speech payload: %w", err)
	}
	return string(payload), nil
}

// buildSharePayload serializes the conversation export RPC arguments
func buildSharePayload(conversationID, responseID, choiceID, title string) (string, error) {
	payload, err := json.Marshal([]interface{}{
		[]interface{}{
			nil,
			[]interface{}{conversationID, responseID},
			nil,
			nil,
			[]interface{}{
				[]interface{}{choiceID, nil, title},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal share payload: %w", err)
	}
	return string(payload), nil
}

// buildSandboxPayload serializes the code-sandbox export RPC arguments
func buildSandboxPayload(instructions, code, filename string) (string, error) {
	payload, err := json.Marshal([]interface{}{
		instructions,
		5,
		code,
		[]interface{}{
			[]interface{}{filename, code},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal sandbox payload: %w", err)
	}
	return string(payload), nil
}

// queryParams returns the routing parameters every operation sends
func queryParams(reqID int) url.Values {
	params := url.Values{}
	params.Set("bl", models.BuildParam)
	params.Set("_reqid", strconv.Itoa(reqID))
	params.Set("rt", "c")
	return params
}
