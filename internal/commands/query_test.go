package commands

import (
	"errors"
	"strings"
	"testing"

	apierrors "github.com/diogo/bardweb/internal/errors"
)

func TestFormatError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "auth error hints at credentials",
			err:  apierrors.NewAuthError("no usable credential"),
			want: []string{"Failed", "_BARD_API_KEY"},
		},
		{
			name: "upstream error shows status and endpoint",
			err:  apierrors.NewUpstreamError(429, "https://gemini.google.com/", "rate limited"),
			want: []string{"HTTP Status: 429", "https://gemini.google.com/"},
		},
		{
			name: "empty response hints at cookies",
			err:  apierrors.NewEmptyResponseError("raw"),
			want: []string{"expired"},
		},
		{
			name: "network error hints at connectivity",
			err:  apierrors.NewNetworkError("post", "https://gemini.google.com/", errors.New("refused")),
			want: []string{"connection", "https://gemini.google.com/"},
		},
		{
			name: "plain error keeps context only",
			err:  errors.New("boom"),
			want: []string{"Failed", "boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatError(tt.err, "Failed")
			for _, fragment := range tt.want {
				if !strings.Contains(got, fragment) {
					t.Errorf("formatError() missing %q in:\n%s", fragment, got)
				}
			}
		})
	}
}
