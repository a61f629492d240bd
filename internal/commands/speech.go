package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	speechLangFlag   string
	speechOutputFlag string
)

var speechCmd = &cobra.Command{
	Use:   "speech [text]",
	Short: "Synthesize speech for a text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := buildClient()
		if err != nil {
			fmt.Fprintln(os.Stderr, formatError(err, "Failed to connect"))
			return err
		}

		result, err := client.Speech(args[0], speechLangFlag)
		if err != nil {
			fmt.Fprintln(os.Stderr, formatError(err, "Speech synthesis failed"))
			return err
		}

		out := speechOutputFlag
		if out == "" {
			out = "bardweb.ogg"
		}
		if err := os.WriteFile(out, result.Audio, 0o644); err != nil {
			return fmt.Errorf("failed to write audio file: %w", err)
		}

		fmt.Println(successStyle.Render(fmt.Sprintf("✓ %d bytes written to %s", len(result.Audio), out)))
		return nil
	},
}

func init() {
	speechCmd.Flags().StringVar(&speechLangFlag, "lang", "en-US", "Speech language")
	speechCmd.Flags().StringVarP(&speechOutputFlag, "output", "o", "", "Output file (default bardweb.ogg)")
}
