// Package config loads process configuration from environment variables into
// plain Go structs.
//
// Parsing is done by github.com/caarlos0/env/v11 using `env` and `envDefault`
// struct tags. On first use the package also loads an optional .env file from
// the working directory via github.com/joho/godotenv; additional files can be
// loaded explicitly with LoadEnv. Real environment variables always win over
// values from .env files.
//
// Each configuration type is parsed once and cached. ResetCache clears the
// cache, which is mostly useful in tests.
//
//	var cfg AppConfig
//	config.MustLoad(&cfg)
package config
