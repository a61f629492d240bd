package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/diogo/bardweb/internal/api"
)

var shareTitleFlag string

var shareCmd = &cobra.Command{
	Use:   "share [prompt]",
	Short: "Ask a question and publish the answer as a share URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := buildClient()
		if err != nil {
			fmt.Fprintln(os.Stderr, formatError(err, "Failed to connect"))
			return err
		}

		answer, err := client.GetAnswer(args[0], nil)
		if err != nil {
			fmt.Fprintln(os.Stderr, formatError(err, "Request failed"))
			return err
		}
		printAnswer(answer)

		result, err := client.ExportConversation(answer, shareTitleFlag)
		if err != nil {
			fmt.Fprintln(os.Stderr, formatError(err, "Share failed"))
			return err
		}

		fmt.Println(successStyle.Render("✓ " + result.URL))
		return nil
	},
}

var (
	sandboxLangFlag     string
	sandboxFileFlag     string
	sandboxFilenameFlag string
)

var sandboxCmd = &cobra.Command{
	Use:   "sandbox",
	Short: "Export a code snippet to the code sandbox",
	Long: `Exports code to the online code sandbox and prints its URL.
The snippet is read from --file, or from stdin when no file is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var code []byte
		var err error
		if sandboxFileFlag != "" {
			code, err = os.ReadFile(sandboxFileFlag)
		} else {
			code, err = io.ReadAll(os.Stdin)
		}
		if err != nil {
			return fmt.Errorf("failed to read code: %w", err)
		}

		client, _, err := buildClient()
		if err != nil {
			fmt.Fprintln(os.Stderr, formatError(err, "Failed to connect"))
			return err
		}

		result, err := client.ExportSandbox(string(code), sandboxLangFlag,
			&api.SandboxOptions{Filename: sandboxFilenameFlag})
		if err != nil {
			fmt.Fprintln(os.Stderr, formatError(err, "Sandbox export failed"))
			return err
		}

		fmt.Println(successStyle.Render("✓ " + result.URL))
		return nil
	},
}

func init() {
	shareCmd.Flags().StringVar(&shareTitleFlag, "title", "", "Title for the shared conversation")
	sandboxCmd.Flags().StringVar(&sandboxLangFlag, "lang", "", "Programming language of the snippet")
	sandboxCmd.Flags().StringVar(&sandboxFileFlag, "file", "", "Read code from file instead of stdin")
	sandboxCmd.Flags().StringVar(&sandboxFilenameFlag, "filename", "", "Entry filename override for unsupported languages")
}
