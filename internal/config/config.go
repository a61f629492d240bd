// Package config resolves environment-backed settings for the bardweb client.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Settings holds everything the client can pick up from the environment.
// Explicit constructor options always win over these values.
type Settings struct {
	// Token is the __Secure-1PSID cookie value.
	Token string `env:"_BARD_API_KEY"`
	// Language is the target natural language for translated answers.
	Language string `env:"_BARD_API_LANG"`
	// TranslatorAPIKey switches translation to the Cloud v2 REST backend.
	TranslatorAPIKey string `env:"BARDWEB_TRANSLATOR_KEY"`
	// Timeout is the per-request wall-clock timeout.
	Timeout time.Duration `env:"BARDWEB_TIMEOUT" envDefault:"20s"`
	// Proxy is an optional proxy URL applied to the HTTP client.
	Proxy string `env:"BARDWEB_PROXY"`
	// Verbose enables detailed CLI logging.
	Verbose bool `env:"BARDWEB_VERBOSE" envDefault:"false"`
}

// Load reads settings from the environment. A .env file in the working
// directory is merged in first when present; its absence is not an error.
func Load() (Settings, error) {
	_ = godotenv.Load()

	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return s, nil
}
