package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	apierrors "github.com/diogo/bardweb/internal/errors"
	"github.com/diogo/bardweb/internal/models"
	"github.com/diogo/bardweb/internal/render"
)

var (
	colorPrimary = lipgloss.Color("#7aa2f7")
	colorDim     = lipgloss.Color("#565f89")
	colorError   = lipgloss.Color("#f7768e")
	colorSuccess = lipgloss.Color("#9ece6a")

	labelStyle   = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(colorDim)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
)

// runQuery executes a single ask exchange and prints the answer
func runQuery(prompt string) error {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return fmt.Errorf("prompt cannot be empty")
	}

	client, logger, err := buildClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, formatError(err, "Failed to connect"))
		return err
	}

	answer, err := client.GetAnswer(prompt, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, formatError(err, "Request failed"))
		return err
	}

	logger.WithField("conversation_id", answer.ConversationID).Debug("answer received")

	if outputFlag != "" {
		if err := os.WriteFile(outputFlag, []byte(answer.Content), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintln(os.Stderr, successStyle.Render("✓ Response saved to "+outputFlag))
		return nil
	}

	printAnswer(answer)
	return nil
}

// printAnswer renders the answer for the terminal, falling back to plain
// text when not attached to a TTY.
func printAnswer(answer *models.Answer) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println(answer.Content)
		return
	}

	fmt.Println(labelStyle.Render("✦ Bard"))

	opts := render.DefaultOptions()
	opts.Width = contentWidth()
	rendered, err := render.Markdown(answer.Content, opts)
	if err != nil {
		rendered = answer.Content
	}
	fmt.Println(strings.TrimRight(rendered, "\n"))

	if len(answer.Links) > 0 {
		fmt.Println(dimStyle.Render("\nLinks:"))
		for _, link := range answer.Links {
			fmt.Println(dimStyle.Render("  " + link))
		}
	}
	if len(answer.Images) > 0 {
		fmt.Println(dimStyle.Render(fmt.Sprintf("\n%d image(s) referenced", len(answer.Images))))
	}
	if len(answer.Choices) > 1 {
		fmt.Println(dimStyle.Render(fmt.Sprintf("\n%d alternative drafts available", len(answer.Choices))))
	}
}

// contentWidth returns the terminal width clamped to a readable range
func contentWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	if width > 120 {
		return 120
	}
	return width
}

// formatError formats an error with context from the structured taxonomy
func formatError(err error, context string) string {
	var sb strings.Builder
	sb.WriteString(errorStyle.Render(fmt.Sprintf("✗ %s: %v", context, err)))

	if status := apierrors.GetHTTPStatus(err); status > 0 {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  HTTP Status: %d", status)))
	}
	if endpoint := apierrors.GetEndpoint(err); endpoint != "" {
		sb.WriteString(dimStyle.Render("\n  Endpoint: " + endpoint))
	}

	switch {
	case apierrors.IsAuthError(err):
		sb.WriteString(dimStyle.Render("\n  Hint: set _BARD_API_KEY or pass --token with a fresh __Secure-1PSID cookie"))
	case apierrors.IsEmptyResponse(err):
		sb.WriteString(dimStyle.Render("\n  Hint: cookies may be expired; re-export them from a logged-in browser session"))
	case apierrors.IsNetworkError(err):
		sb.WriteString(dimStyle.Render("\n  Hint: check your internet connection or proxy settings"))
	}

	return sb.String()
}
