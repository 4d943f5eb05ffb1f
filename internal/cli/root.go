package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/AadarshCanCode/Wellnest/internal/app"
	"github.com/AadarshCanCode/Wellnest/internal/backup"
	"github.com/AadarshCanCode/Wellnest/internal/config"
	"github.com/AadarshCanCode/Wellnest/internal/logger"
	"github.com/AadarshCanCode/Wellnest/internal/storage"
)

type Context struct {
	Store  storage.Provider
	Config config.Config
	// Out receives command output; nil means stdout.
	Out io.Writer
	// In supplies confirmations; nil means stdin.
	In io.Reader
	// Now overrides the configured clock.
	Now func() time.Time

	service *app.Service
}

func NewContext(cfg config.Config, store storage.Provider) *Context {
	return &Context{
		Store:  store,
		Config: cfg,
	}
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) in() io.Reader {
	if c.In == nil {
		return os.Stdin
	}
	return c.In
}

func (c *Context) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return c.Config.Now()
}

func (c *Context) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out(), format, args...)
}

func (c *Context) Println(args ...interface{}) {
	fmt.Fprintln(c.out(), args...)
}

// Service returns the application service, loading the snapshot on first use.
func (c *Context) Service() (*app.Service, error) {
	if c.service != nil {
		return c.service, nil
	}
	svc := app.New(c.Store, c.Config.NewClassifier(), c.now)
	if err := svc.Load(); err != nil {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}
	c.service = svc
	return svc, nil
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	if c.Config.IsPostgres() {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}
