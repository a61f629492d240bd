package api

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"testing"

	http "github.com/bogdanfinn/fhttp"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/diogo/bardweb/internal/runner"
	"github.com/diogo/bardweb/internal/translate"
)

// fakeDoer is a scripted HTTP transport. Each Do call pops the next queued
// response and records the request (with its body already drained).
type fakeDoer struct {
	responses []*http.Response
	errs      []error

	requests []*http.Request
	bodies   []string
}

func (f *fakeDoer) Do(req *http.Request) (*http.Response, error) {
	var body string
	if req.Body != nil {
		data, _ := io.ReadAll(req.Body)
		body = string(data)
	}
	f.requests = append(f.requests, req)
	f.bodies = append(f.bodies, body)

	i := len(f.requests) - 1
	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	if i < len(f.responses) {
		return f.responses[i], nil
	}
	return nil, fmt.Errorf("fakeDoer: no response queued for request %d", i)
}

func (f *fakeDoer) queue(statusCode int, body string) {
	f.responses = append(f.responses, &http.Response{
		StatusCode: statusCode,
		Body:       io.NopCloser(strings.NewReader(body)),
	})
	f.errs = append(f.errs, nil)
}

// quietLogger discards all output
func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// newTestClient returns an initialized client wired to the fake transport
func newTestClient(doer *fakeDoer) *BardClient {
	return &BardClient{
		httpClient: doer,
		token:      "test-token",
		nonce:      "test-nonce",
		translator: translate.Noop{},
		codeRunner: runner.Noop{},
		logger:     quietLogger(),
		state:      ConversationState{ReqID: 1234},
	}
}

// wrapLine wraps a resolved payload JSON into one wrb.fr stream line,
// escaping it into the JSON-string envelope slot.
func wrapLine(resolved string) string {
	quoted, _ := json.Marshal(resolved)
	return `[["wrb.fr",null,` + string(quoted) + `]]`
}

// sentRPCPayload unwraps the RPC arguments out of a recorded f.req envelope,
// checking the rpc id on the way.
func sentRPCPayload(t *testing.T, envelope, wantRPCID string) gjson.Result {
	t.Helper()
	if got := gjson.Get(envelope, "0.0.0").String(); got != wantRPCID {
		t.Fatalf("rpc id = %q, want %q", got, wantRPCID)
	}
	payload := gjson.Get(envelope, "0.0.1")
	if payload.Type != gjson.String || !gjson.Valid(payload.String()) {
		t.Fatalf("rpc payload slot is not a JSON string: %s", payload.Raw)
	}
	return gjson.Parse(payload.String())
}

// stubAnswerPayload is a minimal resolved answer array with two choices
func stubAnswerPayload(cid, rid string) string {
	return fmt.Sprintf(
		`[null,[%q,%q],["echo query"],[],[["rc_1",["Hello from Bard"]],["rc_2",["Alternative draft"]]]]`,
		cid, rid)
}

// stubAnswerBody is a streamed body: one heartbeat line, then the payload
func stubAnswerBody(cid, rid string) string {
	return ")]}'\n\n" + `[["wrb.fr",null,""]]` + "\n" + wrapLine(stubAnswerPayload(cid, rid))
}
