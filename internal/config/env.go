package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables that provide CLI flag defaults.
const (
	EnvDB      = "MYSTERY_DB"
	EnvSize    = "MYSTERY_SIZE"
	EnvSSHAddr = "MYSTERY_SSH_ADDR"
)

// LoadEnv loads variables from the given .env files (default ".env").
// Missing files are ignored; variables already set in the process
// environment win over file values.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// EnvOr returns the value of key, or fallback when it is unset or empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
