package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/AadarshCanCode/Wellnest/internal/constants"
	"github.com/AadarshCanCode/Wellnest/internal/logger"
)

// DotEnvFiles are tried in order from the working directory. Variables that
// are already set are never overridden.
var DotEnvFiles = []string{".env.local", ".env"}

// LoadDotEnv loads DotEnvFiles unless disabled with WELLNEST_DOTENV=0.
// Missing files are skipped; a malformed file is an error.
func LoadDotEnv() error {
	if IsDotEnvDisabled() {
		return nil
	}

	for _, p := range DotEnvFiles {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
		logger.Debug("Loaded environment file", "path", p)
	}
	return nil
}

func IsDotEnvDisabled() bool {
	return isFalse(os.Getenv(constants.EnvDotEnv))
}

func isFalse(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "0", "false", "off", "no":
		return true
	default:
		return false
	}
}

func isTrue(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "on", "yes":
		return true
	default:
		return false
	}
}
