package translate

import (
	"context"
	"io"
	"strings"
	"testing"

	http "github.com/bogdanfinn/fhttp"
)

// fakeDoer returns one scripted response and records the request
type fakeDoer struct {
	statusCode int
	body       string

	request *http.Request
}

func (f *fakeDoer) Do(req *http.Request) (*http.Response, error) {
	f.request = req
	return &http.Response{
		StatusCode: f.statusCode,
		Body:       io.NopCloser(strings.NewReader(f.body)),
	}, nil
}

func TestParseWebSegments(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{
			name: "single segment",
			body: `[[["Hallo Welt","Hello world",null,null,10]],null,"en"]`,
			want: "Hallo Welt",
		},
		{
			name: "multiple segments concatenate",
			body: `[[["Erster Satz. ","First sentence. "],["Zweiter Satz.","Second sentence."]],null,"en"]`,
			want: "Erster Satz. Zweiter Satz.",
		},
		{
			name:    "unexpected shape",
			body:    `{"error":"bad request"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseWebSegments([]byte(tt.body))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseWebSegments() = %q, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseWebSegments() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("parseWebSegments() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWebTranslator(t *testing.T) {
	doer := &fakeDoer{statusCode: 200, body: `[[["Bonjour","Hello"]],null,"en"]`}
	translator := &WebTranslator{client: doer}

	got, err := translator.Translate(context.Background(), "Hello", "", "fr")
	if err != nil {
		t.Fatalf("Translate() unexpected error: %v", err)
	}
	if got != "Bonjour" {
		t.Errorf("Translate() = %q, want Bonjour", got)
	}

	query := doer.request.URL.Query()
	if query.Get("sl") != "auto" {
		t.Errorf("sl = %q, want auto default", query.Get("sl"))
	}
	if query.Get("tl") != "fr" {
		t.Errorf("tl = %q, want fr", query.Get("tl"))
	}
	if query.Get("q") != "Hello" {
		t.Errorf("q = %q, want Hello", query.Get("q"))
	}
}

func TestWebTranslatorEmptyText(t *testing.T) {
	translator := &WebTranslator{client: &fakeDoer{}}
	got, err := translator.Translate(context.Background(), "", "en", "fr")
	if err != nil || got != "" {
		t.Errorf("Translate(\"\") = (%q, %v), want empty passthrough", got, err)
	}
}

func TestWebTranslatorHTTPError(t *testing.T) {
	doer := &fakeDoer{statusCode: 429, body: "slow down"}
	translator := &WebTranslator{client: doer}

	if _, err := translator.Translate(context.Background(), "Hello", "en", "fr"); err == nil {
		t.Error("Translate() expected error on HTTP 429")
	}
}

func TestCloudTranslator(t *testing.T) {
	doer := &fakeDoer{
		statusCode: 200,
		body:       `{"data":{"translations":[{"translatedText":"Hola"}]}}`,
	}
	translator := &CloudTranslator{client: doer, apiKey: "key-123"}

	got, err := translator.Translate(context.Background(), "Hello", "en", "es")
	if err != nil {
		t.Fatalf("Translate() unexpected error: %v", err)
	}
	if got != "Hola" {
		t.Errorf("Translate() = %q, want Hola", got)
	}
	if doer.request.URL.Query().Get("key") != "key-123" {
		t.Errorf("key = %q, want key-123", doer.request.URL.Query().Get("key"))
	}
}

func TestCloudTranslatorBadShape(t *testing.T) {
	doer := &fakeDoer{statusCode: 200, body: `{"data":{}}`}
	translator := &CloudTranslator{client: doer, apiKey: "key-123"}

	if _, err := translator.Translate(context.Background(), "Hello", "en", "es"); err == nil {
		t.Error("Translate() expected error on malformed response")
	}
}

func TestNewCloudTranslatorRequiresKey(t *testing.T) {
	if _, err := NewCloudTranslator(""); err == nil {
		t.Error("NewCloudTranslator(\"\") expected error")
	}
}

func TestNoop(t *testing.T) {
	got, err := Noop{}.Translate(context.Background(), "unchanged", "en", "fr")
	if err != nil || got != "unchanged" {
		t.Errorf("Noop.Translate() = (%q, %v), want passthrough", got, err)
	}
}
