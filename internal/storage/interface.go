package storage

import "errors"

// ErrNotFound is returned by Get and Delete when no value is stored under the key.
var ErrNotFound = errors.New("key not found")

// Provider is an opaque key-value store holding serialized blobs.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Values
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
	Keys() ([]string, error)

	// Utils
	GetConfigPath() string
}

// Versioned is implemented by providers backed by a migrated schema.
type Versioned interface {
	SchemaVersion() (current, latest int, err error)
}
