package config

import (
	"errors"
	"io/fs"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// DotEnvFile is read, when present, before environment variables are applied.
var DotEnvFile = ".env"

// loadFromEnv overrides configuration with environment variables. Values from a .env
// file never replace variables already set in the process environment.
func loadFromEnv(config *Config) error {
	if err := godotenv.Load(DotEnvFile); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		log.Debug().Str("file", DotEnvFile).Msg("No .env file found, using process environment")
	}

	// ReadEnv applies env values and fills env-default for fields still at their zero value
	return cleanenv.ReadEnv(config)
}

// Usage describes the supported environment variables.
func Usage() string {
	desc, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return ""
	}
	return desc
}
