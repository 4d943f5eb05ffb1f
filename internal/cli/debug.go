package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AadarshCanCode/Wellnest/internal/constants"
	"github.com/AadarshCanCode/Wellnest/internal/logger"
	"github.com/AadarshCanCode/Wellnest/internal/storage"
)

type DebugCmd struct {
	Path *DebugPathCmd `cmd:"" help:"Show data store, log and backup locations."`
	Dump *DebugDumpCmd `cmd:"" help:"Dump stored data as JSON."`
	Keys *DebugKeysCmd `cmd:"" help:"List keys held by the data store."`
}

type DebugPathCmd struct{}

func (cmd *DebugPathCmd) Run(ctx *Context) error {
	output := map[string]string{
		"path": displayLocation(ctx),
	}
	if mgr, err := ctx.backupManager(); err == nil {
		output["log"] = logger.LogPath(ctx.Config.Dir())
		output["backups"] = mgr.GetBackupDir()
	}
	return ctx.printJSON(output)
}

type DebugDumpCmd struct {
	Kind string `arg:"" optional:"" enum:"all,habit,goal,entry" default:"all" help:"Record kind to dump (all, habit, goal, entry)."`
	Ref  string `arg:"" optional:"" help:"ID, ID prefix or name of a single record."`
	Raw  bool   `help:"Print the stored blob without normalizing it."`
}

func (cmd *DebugDumpCmd) Run(ctx *Context) error {
	if cmd.Raw {
		raw, err := ctx.Store.Get(constants.StorageKey)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("nothing stored under %q", constants.StorageKey)
			}
			return fmt.Errorf("failed to read %s: %w", constants.StorageKey, err)
		}
		ctx.Println(string(raw))
		return nil
	}

	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	data := svc.Data()

	if cmd.Kind == "all" {
		return ctx.printJSON(data)
	}
	if strings.TrimSpace(cmd.Ref) == "" {
		if cmd.Kind == "habit" {
			return ctx.printJSON(data.Habits)
		}
		if cmd.Kind == "goal" {
			return ctx.printJSON(data.Goals)
		}
		return ctx.printJSON(data.Entries)
	}

	switch cmd.Kind {
	case "habit":
		h, err := svc.Habit(cmd.Ref)
		if err != nil {
			return err
		}
		return ctx.printJSON(h)
	case "goal":
		g, err := svc.Goal(cmd.Ref)
		if err != nil {
			return err
		}
		return ctx.printJSON(g)
	default:
		e, err := svc.Entry(cmd.Ref)
		if err != nil {
			return err
		}
		return ctx.printJSON(e)
	}
}

type DebugKeysCmd struct{}

func (cmd *DebugKeysCmd) Run(ctx *Context) error {
	keys, err := ctx.Store.Keys()
	if err != nil {
		return fmt.Errorf("failed to list keys: %w", err)
	}
	if keys == nil {
		keys = []string{}
	}
	return ctx.printJSON(keys)
}
