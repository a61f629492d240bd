// Package commands provides the bardweb CLI.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/diogo/bardweb/internal/api"
	"github.com/diogo/bardweb/internal/config"
	"github.com/diogo/bardweb/internal/translate"
)

var (
	// Global flags
	tokenFlag    string
	languageFlag string
	proxyFlag    string
	outputFlag   string
	fileFlag     string
	verboseFlag  bool

	// Version info (set at build time)
	Version = "0.1.0"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "bardweb [prompt]",
	Short: "CLI for the Bard web API",
	Long: `bardweb talks to the Bard/Gemini web front end using cookie-based
authentication, the same way the browser does.

Examples:
  bardweb "What is Go?"                 Send a single query
  bardweb chat                          Start an interactive conversation
  bardweb -f prompt.md                  Read prompt from file
  cat prompt.md | bardweb               Read prompt from stdin
  bardweb speech "hello" -o hello.ogg   Synthesize speech
  bardweb share "tell me a joke"        Ask and publish a share URL`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("bardweb %s\n", Version)
			return nil
		}

		if fileFlag != "" {
			data, err := os.ReadFile(fileFlag)
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			return runQuery(string(data))
		}

		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) == 0 {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			return runQuery(string(data))
		}

		if len(args) > 0 {
			return runQuery(args[0])
		}

		return cmd.Help()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&tokenFlag, "token", "", "__Secure-1PSID cookie value (default: _BARD_API_KEY)")
	rootCmd.PersistentFlags().StringVarP(&languageFlag, "language", "l", "", "Target language for answers (e.g. ko, de)")
	rootCmd.PersistentFlags().StringVar(&proxyFlag, "proxy", "", "Proxy URL for all requests")
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable verbose logging")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Save response to file")
	rootCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read prompt from file")
	rootCmd.Flags().BoolP("version", "v", false, "Show version and exit")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(speechCmd)
	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(sandboxCmd)
}

// newLogger builds the CLI logger honoring the verbose flag and environment
func newLogger(settings config.Settings) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if verboseFlag || settings.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}
	return logger
}

// buildClient assembles a client from flags and environment and runs Init
func buildClient() (*api.BardClient, *logrus.Logger, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logger := newLogger(settings)

	opts := []api.ClientOption{
		api.WithLogger(logger),
		api.WithTimeout(settings.Timeout),
	}

	if tokenFlag != "" {
		opts = append(opts, api.WithToken(tokenFlag))
	}

	language := languageFlag
	if language == "" {
		language = settings.Language
	}
	if language != "" {
		opts = append(opts, api.WithLanguage(language))

		translator, err := buildTranslator(settings)
		if err != nil {
			logger.WithError(err).Warn("translation disabled")
		} else {
			opts = append(opts, api.WithTranslator(translator))
		}
	}

	proxy := proxyFlag
	if proxy == "" {
		proxy = settings.Proxy
	}
	if proxy != "" {
		opts = append(opts, api.WithProxy(proxy))
	}

	client, err := api.NewClient(opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create client: %w", err)
	}

	if err := client.Init(); err != nil {
		return nil, nil, err
	}

	return client, logger, nil
}

// buildTranslator picks the Cloud backend when an API key is configured,
// otherwise the free web endpoint.
func buildTranslator(settings config.Settings) (translate.Translator, error) {
	if settings.TranslatorAPIKey != "" {
		return translate.NewCloudTranslator(settings.TranslatorAPIKey)
	}
	return translate.NewWebTranslator()
}
