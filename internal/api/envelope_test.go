package api

import (
	"testing"

	"github.com/tidwall/gjson"

	"github.com/diogo/bardweb/internal/models"
)

// innerPayload unwraps the outer [null, "<inner>"] envelope
func innerPayload(t *testing.T, envelope string) gjson.Result {
	t.Helper()
	if !gjson.Valid(envelope) {
		t.Fatalf("envelope is not valid JSON: %s", envelope)
	}
	inner := gjson.Get(envelope, "1")
	if inner.Type != gjson.String {
		t.Fatalf("envelope slot 1 is not a string: %s", envelope)
	}
	if !gjson.Valid(inner.String()) {
		t.Fatalf("inner payload is not valid JSON: %s", inner.String())
	}
	return gjson.Parse(inner.String())
}

func TestBuildAskEnvelopeNewConversation(t *testing.T) {
	envelope, err := buildAskEnvelope("Hello", ConversationState{ReqID: 1234}, "", "", nil)
	if err != nil {
		t.Fatalf("buildAskEnvelope() unexpected error: %v", err)
	}

	inner := innerPayload(t, envelope)

	if got := inner.Get("0.0").String(); got != "Hello" {
		t.Errorf("prompt slot = %q, want %q", got, "Hello")
	}

	// First turn: identifiers encode as empty strings, signaling a new
	// conversation server-side.
	for _, path := range []string{"2.0", "2.1", "2.2"} {
		slot := inner.Get(path)
		if slot.Type != gjson.String || slot.String() != "" {
			t.Errorf("identifier slot %s = %s, want empty string", path, slot.Raw)
		}
	}

	if got := len(inner.Get("4").String()); got != 32 {
		t.Errorf("request nonce slot length = %d, want 32", got)
	}
}

func TestBuildAskEnvelopeContinuation(t *testing.T) {
	state := ConversationState{
		ConversationID: "c_123",
		ResponseID:     "r_456",
		ChoiceID:       "rc_789",
		ReqID:          101234,
	}

	envelope, err := buildAskEnvelope("next question", state, "", "", nil)
	if err != nil {
		t.Fatalf("buildAskEnvelope() unexpected error: %v", err)
	}

	inner := innerPayload(t, envelope)
	if got := inner.Get("2.0").String(); got != "c_123" {
		t.Errorf("conversation id slot = %q, want c_123", got)
	}
	if got := inner.Get("2.1").String(); got != "r_456" {
		t.Errorf("response id slot = %q, want r_456", got)
	}
	if got := inner.Get("2.2").String(); got != "rc_789" {
		t.Errorf("choice id slot = %q, want rc_789", got)
	}
}

func TestBuildAskEnvelopeImage(t *testing.T) {
	envelope, err := buildAskEnvelope("what is this?", ConversationState{},
		"https://upload.example.com/img123", "cat.jpg", nil)
	if err != nil {
		t.Fatalf("buildAskEnvelope() unexpected error: %v", err)
	}

	inner := innerPayload(t, envelope)
	if got := inner.Get("0.3.0.0.0").String(); got != "https://upload.example.com/img123" {
		t.Errorf("image url slot = %q", got)
	}
	if got := inner.Get("0.3.0.1").String(); got != "cat.jpg" {
		t.Errorf("image name slot = %q, want cat.jpg", got)
	}
}

func TestBuildAskEnvelopeImageDefaultName(t *testing.T) {
	envelope, err := buildAskEnvelope("q", ConversationState{}, "https://u.example.com/1", "", nil)
	if err != nil {
		t.Fatalf("buildAskEnvelope() unexpected error: %v", err)
	}

	inner := innerPayload(t, envelope)
	if got := inner.Get("0.3.0.1").String(); got != "uploaded_photo.jpg" {
		t.Errorf("default image name = %q, want uploaded_photo.jpg", got)
	}
}

func TestBuildAskEnvelopeTools(t *testing.T) {
	envelope, err := buildAskEnvelope("my flights", ConversationState{}, "", "",
		[]models.Tool{models.ToolGoogleFlights, models.ToolGmail})
	if err != nil {
		t.Fatalf("buildAskEnvelope() unexpected error: %v", err)
	}

	inner := innerPayload(t, envelope)
	if got := inner.Get("9.0.0").String(); got != "Google Flights" {
		t.Errorf("first tool slot = %q, want Google Flights", got)
	}
	if got := inner.Get("9.1.0").String(); got != "Gmail" {
		t.Errorf("second tool slot = %q, want Gmail", got)
	}
}

func TestBuildRPCEnvelope(t *testing.T) {
	envelope, err := buildRPCEnvelope(models.RPCSpeech, `[null,"hi","en-US",null,2]`)
	if err != nil {
		t.Fatalf("buildRPCEnvelope() unexpected error: %v", err)
	}

	if got := gjson.Get(envelope, "0.0.0").String(); got != models.RPCSpeech {
		t.Errorf("rpc id slot = %q, want %q", got, models.RPCSpeech)
	}
	if got := gjson.Get(envelope, "0.0.1").String(); got != `[null,"hi","en-US",null,2]` {
		t.Errorf("payload slot = %q", got)
	}
	if got := gjson.Get(envelope, "0.0.3").String(); got != "generic" {
		t.Errorf("identifier slot = %q, want generic", got)
	}
}

func TestBuildSharePayload(t *testing.T) {
	payload, err := buildSharePayload("c_1", "r_2", "rc_3", "My Title")
	if err != nil {
		t.Fatalf("buildSharePayload() unexpected error: %v", err)
	}

	if got := gjson.Get(payload, "0.1.0").String(); got != "c_1" {
		t.Errorf("conversation id = %q, want c_1", got)
	}
	if got := gjson.Get(payload, "0.1.1").String(); got != "r_2" {
		t.Errorf("response id = %q, want r_2", got)
	}
	if got := gjson.Get(payload, "0.4.0.0").String(); got != "rc_3" {
		t.Errorf("choice id = %q, want rc_3", got)
	}
	if got := gjson.Get(payload, "0.4.0.2").String(); got != "My Title" {
		t.Errorf("title = %q, want My Title", got)
	}
}

func TestBuildSandboxPayload(t *testing.T) {
	payload, err := buildSandboxPayload("", "print(1)", "main.py")
	if err != nil {
		t.Fatalf("buildSandboxPayload() unexpected error: %v", err)
	}

	if got := gjson.Get(payload, "2").String(); got != "print(1)" {
		t.Errorf("code slot = %q, want print(1)", got)
	}
	if got := gjson.Get(payload, "3.0.0").String(); got != "main.py" {
		t.Errorf("filename slot = %q, want main.py", got)
	}
	if got := gjson.Get(payload, "3.0.1").String(); got != "print(1)" {
		t.Errorf("file content slot = %q, want print(1)", got)
	}
}

func TestQueryParams(t *testing.T) {
	params := queryParams(5678)

	if got := params.Get("bl"); got != models.BuildParam {
		t.Errorf("bl = %q, want %q", got, models.BuildParam)
	}
	if got := params.Get("_reqid"); got != "5678" {
		t.Errorf("_reqid = %q, want 5678", got)
	}
	if got := params.Get("rt"); got != "c" {
		t.Errorf("rt = %q, want c", got)
	}
}
