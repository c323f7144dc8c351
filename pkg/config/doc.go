// Package config loads configuration structs from environment variables,
// with optional .env file support for development.
//
// Struct fields are annotated with `env` tags (github.com/caarlos0/env);
// a .env file in the working directory is loaded once per process before
// the first parse (github.com/joho/godotenv) and silently ignored when
// absent.
//
// # Usage
//
//	type ProviderConfig struct {
//		APIKey  string        `env:"DEEPL_API_KEY"`
//		Timeout time.Duration `env:"DEEPL_TIMEOUT" envDefault:"5s"`
//	}
//
//	var cfg ProviderConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
package config
