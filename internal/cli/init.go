package cli

import (
	"fmt"
	"os"
)

type InitCmd struct {
	Force bool `help:"Delete the existing data file before initializing."`
}

func (c *InitCmd) Run(ctx *Context) error {
	if c.Force && !ctx.Config.IsPostgres() {
		path := ctx.Store.GetConfigPath()
		if _, err := os.Stat(path); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing store: %w", err)
			}
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("failed to delete existing store: %w", err)
			}
			ctx.Printf("Deleted existing data at: %s\n", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing store: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.Printf("Initialized wellnest storage at: %s\n", displayLocation(ctx))
	return nil
}

// displayLocation hides connection strings behind a generic label.
func displayLocation(ctx *Context) string {
	if ctx.Config.IsPostgres() {
		return maskPassword(ctx.Store.GetConfigPath())
	}
	return ctx.Store.GetConfigPath()
}
