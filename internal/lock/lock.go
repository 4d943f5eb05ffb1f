// Package lock keeps two wellnest processes from writing the same store.
package lock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/AadarshCanCode/Wellnest/internal/constants"
	"github.com/AadarshCanCode/Wellnest/internal/logger"
)

var (
	// ErrLocked is returned when another live wellnest process holds the lock.
	ErrLocked = errors.New("another wellnest process is using this data store")

	findProcessFunc = ps.FindProcess
	getpidFunc      = os.Getpid
)

// Lock is a held lockfile.
type Lock struct {
	path string
}

// Path returns the lockfile location for a data directory.
func Path(dir string) string {
	return filepath.Join(dir, constants.LockfileName)
}

// Acquire creates the lockfile in dir. A lockfile left behind by a process
// that is gone, or that is not wellnest, is treated as stale and replaced.
func Acquire(dir string) (*Lock, error) {
	return acquire(dir, getpidFunc())
}

func acquire(dir string, pid int) (*Lock, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}
	path := Path(dir)

	for attempt := 0; attempt < 2; attempt++ {
		err := publish(path, pid)
		if err == nil {
			return &Lock{path: path}, nil
		}
		if !os.IsExist(err) {
			return nil, fmt.Errorf("failed to create lockfile: %w", err)
		}

		owner, err := validateOwner(path, pid)
		if err == nil {
			if owner == pid {
				return &Lock{path: path}, nil
			}
			return nil, fmt.Errorf("%w (pid %d)", ErrLocked, owner)
		}
		logger.Warn("Removing stale lockfile", "path", path, "reason", err)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to remove stale lockfile: %w", err)
		}
	}
	return nil, ErrLocked
}

// publish writes the owner record to a private temp file and hard-links it
// into place, so the lockfile never exists without its contents. It returns
// an os.IsExist error when the lockfile is already present.
func publish(path string, pid int) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+constants.LockfileName+"-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	_, werr := fmt.Fprintf(f, "%d|%s", pid, constants.AppName)
	cerr := f.Close()
	if werr != nil || cerr != nil {
		return fmt.Errorf("failed to write lockfile: %w", errors.Join(werr, cerr))
	}
	if err := os.Chmod(tmp, 0644); err != nil {
		return err
	}
	return os.Link(tmp, path)
}

// Release removes the lockfile. Releasing twice is a no-op.
func (l *Lock) Release() error {
	if l == nil || l.path == "" {
		return nil
	}
	err := os.Remove(l.path)
	l.path = ""
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	return nil
}

// validateOwner returns the owning pid if the lockfile belongs to self or to
// a live wellnest process, or an error describing why the lock is stale.
func validateOwner(path string, self int) (int, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 2 {
		return 0, errors.New("lockfile is malformed")
	}
	pid, err := strconv.Atoi(parts[0])
	if err != nil || pid <= 0 {
		return 0, errors.New("invalid process ID in lockfile")
	}
	if pid == self {
		return pid, nil
	}

	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return 0, fmt.Errorf("process %d not running", pid)
	}
	if !strings.HasPrefix(process.Executable(), parts[1]) {
		return 0, fmt.Errorf("process with PID %d is not %s (is %s)", pid, parts[1], process.Executable())
	}
	return pid, nil
}
