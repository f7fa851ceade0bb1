package utils

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// LoadEnv loads .env from dir when present. Variables already set in the
// environment win.
func LoadEnv(dir string) error {
	envPath := filepath.Join(dir, ".env")
	if _, err := os.Stat(envPath); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return godotenv.Load(envPath)
}
