package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/AadarshCanCode/Wellnest/internal/constants"
)

var (
	// ErrNotFound is returned when no secret is stored for the requested entry
	ErrNotFound = errors.New("credentials not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// Entry names a secret stored under the application's keyring service.
type Entry string

const (
	ConnectionString Entry = constants.DefaultKeyringUser
	OpenAIKey        Entry = constants.OpenAIKeyringUser
)

// Entries lists the entries the CLI can manage.
var Entries = []Entry{ConnectionString, OpenAIKey}

// ParseEntry maps a CLI-friendly name to an Entry.
func ParseEntry(name string) (Entry, error) {
	switch name {
	case "db", "database", string(ConnectionString):
		return ConnectionString, nil
	case "openai", string(OpenAIKey):
		return OpenAIKey, nil
	}
	return "", fmt.Errorf("unknown keyring entry %q (use db or openai)", name)
}

// Get retrieves a secret. Returns ErrNotFound if nothing is stored.
func Get(e Entry) (string, error) {
	secret, err := keyring.Get(constants.AppName, string(e))
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return secret, nil
}

func Set(e Entry, secret string) error {
	if secret == "" {
		return fmt.Errorf("%s cannot be empty", e)
	}
	if err := keyring.Set(constants.AppName, string(e), secret); err != nil {
		return fmt.Errorf("failed to store credentials in keyring: %w", err)
	}
	return nil
}

func Delete(e Entry) error {
	if err := keyring.Delete(constants.AppName, string(e)); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete credentials from keyring: %w", err)
	}
	return nil
}

// GetConnectionString retrieves the database connection string from the OS keyring.
func GetConnectionString() (string, error) {
	return Get(ConnectionString)
}

// SetConnectionString stores the database connection string in the OS keyring.
func SetConnectionString(connStr string) error {
	return Set(ConnectionString, connStr)
}

// IsAvailable reports whether the OS keyring answers a read. A missing
// entry still counts as available.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}
