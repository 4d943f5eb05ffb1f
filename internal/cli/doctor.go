package cli

import (
	"fmt"
	"time"

	"github.com/AadarshCanCode/Wellnest/internal/storage"
	"github.com/AadarshCanCode/Wellnest/internal/validation"
)

type DoctorCmd struct{}

type doctorCheck struct {
	name string
	run  func(ctx *Context) error
	// warnOnly checks report problems without failing the run.
	warnOnly bool
}

var doctorChecks = []doctorCheck{
	{name: "Schema version", run: checkSchemaVersion},
	{name: "Migrations complete", run: checkMigrationsComplete},
	{name: "Backups present", run: checkBackupsPresent, warnOnly: true},
	{name: "Data validation", run: checkValidation},
	{name: "Clock/timezone", run: checkClockTimezone},
}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false

	reachable := checkStoreReachable(ctx)
	if reachable != nil {
		ctx.Printf("❌ Data store reachable: FAIL\n")
		ctx.Printf("   Error: %v\n", reachable)
		hasError = true
	} else {
		ctx.Printf("✓ Data store reachable: OK\n")
	}

	for _, check := range doctorChecks {
		if reachable != nil {
			ctx.Printf("⊘ %s: SKIPPED (data store not reachable)\n", check.name)
			continue
		}
		err := check.run(ctx)
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", check.name)
		case check.warnOnly:
			ctx.Printf("⚠ %s: WARNING\n", check.name)
			ctx.Printf("   %v\n", err)
		default:
			ctx.Printf("❌ %s: FAIL\n", check.name)
			ctx.Printf("   Error: %v\n", err)
			hasError = true
		}
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	ctx.Println("All diagnostics passed!")
	return nil
}

func checkStoreReachable(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load data store: %w", err)
	}
	if _, err := ctx.Store.Keys(); err != nil {
		return fmt.Errorf("failed to query data store: %w", err)
	}
	return nil
}

func schemaVersions(ctx *Context) (current, latest int, ok bool, err error) {
	v, ok := ctx.Store.(storage.Versioned)
	if !ok {
		return 0, 0, false, nil
	}
	current, latest, err = v.SchemaVersion()
	if err != nil {
		return 0, 0, true, fmt.Errorf("failed to read schema version: %w", err)
	}
	return current, latest, true, nil
}

func checkSchemaVersion(ctx *Context) error {
	current, latest, ok, err := schemaVersions(ctx)
	if !ok || err != nil {
		return err
	}
	if current > latest {
		return fmt.Errorf("schema version (%d) is newer than supported version (%d)", current, latest)
	}
	return nil
}

func checkMigrationsComplete(ctx *Context) error {
	current, latest, ok, err := schemaVersions(ctx)
	if !ok || err != nil {
		return err
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d", current, latest)
	}
	return nil
}

func checkBackupsPresent(ctx *Context) error {
	mgr, err := ctx.backupManager()
	if err != nil {
		return err
	}
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'wellnest backup create'")
	}
	return nil
}

func checkValidation(ctx *Context) error {
	data, err := rawData(ctx.Store)
	if err != nil {
		return err
	}
	result := validation.New().ValidateData(data)
	if result.HasConflicts() {
		return fmt.Errorf("%d problem(s) found - run 'wellnest validate' for details", len(result.Conflicts))
	}
	return nil
}

func checkClockTimezone(ctx *Context) error {
	now := ctx.now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	if name, _ := now.Zone(); name == "UTC" {
		ctx.Printf("   Note: timezone is UTC\n")
	}
	return nil
}
