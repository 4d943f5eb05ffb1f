// Package config resolves where wellnest keeps its data and which optional
// services it talks to. Flags win over the environment, the environment
// wins over the OS keyring, and the keyring wins over built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/AadarshCanCode/Wellnest/internal/constants"
	"github.com/AadarshCanCode/Wellnest/internal/keyring"
	"github.com/AadarshCanCode/Wellnest/internal/logger"
	"github.com/AadarshCanCode/Wellnest/internal/sentiment"
	"github.com/AadarshCanCode/Wellnest/internal/sentiment/llm"
	"github.com/AadarshCanCode/Wellnest/internal/storage"
	"github.com/AadarshCanCode/Wellnest/internal/storage/postgres"
	"github.com/AadarshCanCode/Wellnest/internal/storage/sqlite"
	"github.com/AadarshCanCode/Wellnest/internal/utils"
)

// keyringGet is a seam for tests.
var keyringGet = keyring.Get

// Flags are the command line values that feed into resolution.
type Flags struct {
	Config   string
	Timezone string
	Debug    bool
}

type Config struct {
	// Store is a file path (.json or SQLite) or a PostgreSQL connection string.
	Store string
	// StoreFromSecret is set when Store came from the environment or the
	// keyring, where embedded passwords are acceptable.
	StoreFromSecret bool

	Timezone       string
	Location       *time.Location
	Debug          bool
	SentimentModel string
	OpenAIKey      string
}

// Load resolves the configuration from flags, the environment and the keyring.
func Load(f Flags) (Config, error) {
	cfg := Config{
		Timezone:       f.Timezone,
		Debug:          f.Debug || isTrue(os.Getenv(constants.EnvDebug)),
		SentimentModel: strings.TrimSpace(os.Getenv(constants.EnvSentimentModel)),
	}

	store, fromSecret, err := resolveStore(f.Config)
	if err != nil {
		return Config{}, err
	}
	cfg.Store = store
	cfg.StoreFromSecret = fromSecret

	if cfg.Timezone == "" {
		cfg.Timezone = os.Getenv(constants.EnvTimezone)
	}
	loc, err := utils.LoadLocation(cfg.Timezone)
	if err != nil {
		return Config{}, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}
	cfg.Location = loc

	if cfg.SentimentModel != "" {
		cfg.OpenAIKey = resolveSecret(constants.EnvOpenAIKey, keyring.OpenAIKey)
	}
	return cfg, nil
}

// resolveStore picks the store location. An explicit --config (anything
// but the default path) is used as given; otherwise WELLNEST_DB_CONNECTION
// and then a connection string saved in the keyring take precedence.
func resolveStore(flag string) (string, bool, error) {
	if flag == "" {
		flag = constants.DefaultConfigPath
	}
	if flag == constants.DefaultConfigPath {
		if conn := resolveSecret(constants.EnvDBConnection, keyring.ConnectionString); conn != "" {
			return conn, true, nil
		}
	}

	if postgres.IsConnString(flag) {
		return flag, false, nil
	}
	p, err := ExpandPath(flag)
	return p, false, err
}

func resolveSecret(env string, entry keyring.Entry) string {
	if v := strings.TrimSpace(os.Getenv(env)); v != "" {
		return v
	}
	v, err := keyringGet(entry)
	if err != nil {
		if !errors.Is(err, keyring.ErrNotFound) {
			logger.Debug("Keyring lookup failed", "entry", entry, "error", err)
		}
		return ""
	}
	return v
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~")), nil
}

func (c Config) IsPostgres() bool {
	return postgres.IsConnString(c.Store)
}

func (c Config) IsJSON() bool {
	return strings.EqualFold(filepath.Ext(c.Store), ".json")
}

// Dir is where logs and the lockfile live: next to a file store, or the
// default config directory for PostgreSQL.
func (c Config) Dir() string {
	if c.IsPostgres() {
		p, err := ExpandPath(constants.DefaultConfigPath)
		if err != nil {
			return os.TempDir()
		}
		return filepath.Dir(p)
	}
	return filepath.Dir(c.Store)
}

// Now returns the current time in the configured location.
func (c Config) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// NewProvider builds the storage provider for c.Store. A PostgreSQL
// connection string passed with --config must not embed a password.
func (c Config) NewProvider() (storage.Provider, error) {
	switch {
	case c.IsPostgres():
		if err := postgres.ValidateConnString(c.Store); err != nil {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				if c.StoreFromSecret {
					return postgres.New(c.Store), nil
				}
				return nil, fmt.Errorf("PostgreSQL connection strings with embedded credentials are not allowed; " +
					"use the OS keyring ('wellnest keyring set db ...'), " + constants.EnvDBConnection + ", or a .pgpass file")
			}
			return nil, err
		}
		return postgres.New(c.Store), nil
	case c.IsJSON():
		return storage.NewJSONStore(c.Store), nil
	default:
		return sqlite.NewStore(c.Store), nil
	}
}

// NewClassifier returns the model-backed classifier when a model and API
// key are configured, and the keyword classifier otherwise.
func (c Config) NewClassifier() sentiment.Classifier {
	if c.SentimentModel == "" {
		return sentiment.NewKeyword()
	}
	if c.OpenAIKey == "" {
		logger.Warn("Sentiment model configured without an API key, using keyword classifier",
			"model", c.SentimentModel)
		return sentiment.NewKeyword()
	}
	return llm.NewFromAPIKey(c.OpenAIKey, c.SentimentModel, nil)
}
