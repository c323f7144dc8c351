package deepl

import (
	"time"

	"github.com/dmitrymomot/lingokit/pkg/config"
)

// DefaultBaseURL is the free-tier endpoint; paid accounts point DEEPL_API_URL
// at api.deepl.com instead.
const DefaultBaseURL = "https://api-free.deepl.com/v2/translate"

// Config holds the DeepL client configuration. The API key is optional at
// construction time so the plugin can load without one; translation calls
// fail fast with translate.ErrNoCredential until it is set.
type Config struct {
	APIKey  string        `env:"DEEPL_API_KEY"`
	BaseURL string        `env:"DEEPL_API_URL" envDefault:"https://api-free.deepl.com/v2/translate"`
	Timeout time.Duration `env:"DEEPL_TIMEOUT" envDefault:"5s"`
}

// NewFromEnv creates a client configured from the DEEPL_API_KEY,
// DEEPL_API_URL and DEEPL_TIMEOUT environment variables (a .env file is
// honored). This is the usual construction path for embeddings; New is for
// callers that build the Config themselves.
func NewFromEnv(opts ...Option) (*Client, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return New(cfg, opts...)
}
