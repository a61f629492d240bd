package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/diogo/bardweb/internal/models"
	"github.com/diogo/bardweb/internal/render"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive conversation",
	Long: `Starts an interactive conversation that threads context across turns.

Commands inside the chat:
  /reset    start a new conversation
  /copy     copy the last answer's code block (or text) to the clipboard
  /share    publish the last answer and print its share URL
  /state    show the current conversation identifiers
  /exit     leave the chat`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat()
	},
}

func runChat() error {
	client, logger, err := buildClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, formatError(err, "Failed to connect"))
		return err
	}

	fmt.Println(labelStyle.Render("✦ bardweb chat") + dimStyle.Render("  (/exit to quit, /reset for a new conversation)"))

	var lastAnswer *models.Answer
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Print(labelStyle.Render("you> "))
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch line {
		case "/exit", "/quit":
			return nil
		case "/reset":
			client.ResetConversation()
			fmt.Println(dimStyle.Render("conversation reset"))
			continue
		case "/state":
			state := client.State()
			fmt.Println(dimStyle.Render(fmt.Sprintf("conversation=%s response=%s choice=%s",
				state.ConversationID, state.ResponseID, state.ChoiceID)))
			continue
		case "/copy":
			if lastAnswer == nil {
				fmt.Println(dimStyle.Render("nothing to copy yet"))
				continue
			}
			text := lastAnswer.Content
			if lastAnswer.HasCode() {
				text = lastAnswer.Code
			}
			if err := clipboard.WriteAll(text); err != nil {
				fmt.Fprintln(os.Stderr, errorStyle.Render("✗ clipboard: "+err.Error()))
			} else {
				fmt.Println(successStyle.Render("✓ copied"))
			}
			continue
		case "/share":
			if lastAnswer == nil {
				fmt.Println(dimStyle.Render("nothing to share yet"))
				continue
			}
			result, err := client.ExportConversation(lastAnswer, "")
			if err != nil {
				fmt.Fprintln(os.Stderr, formatError(err, "Share failed"))
				continue
			}
			fmt.Println(successStyle.Render("✓ " + result.URL))
			continue
		}

		answer, err := client.GetAnswer(line, nil)
		if err != nil {
			fmt.Fprintln(os.Stderr, formatError(err, "Request failed"))
			continue
		}
		lastAnswer = answer
		logger.WithField("response_id", answer.ResponseID).Debug("turn complete")

		opts := render.DefaultOptions()
		opts.Width = contentWidth()
		rendered, err := render.Markdown(answer.Content, opts)
		if err != nil {
			rendered = answer.Content
		}
		fmt.Println(strings.TrimRight(rendered, "\n"))
	}

	return scanner.Err()
}
