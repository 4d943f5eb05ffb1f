package main

import (
	"strings"

	"github.com/alecthomas/kong"

	"github.com/AadarshCanCode/Wellnest/internal/cli"
	"github.com/AadarshCanCode/Wellnest/internal/config"
	"github.com/AadarshCanCode/Wellnest/internal/constants"
	"github.com/AadarshCanCode/Wellnest/internal/errors"
	"github.com/AadarshCanCode/Wellnest/internal/lock"
	"github.com/AadarshCanCode/Wellnest/internal/logger"
)

var version = "v0.1.0"

var CLI struct {
	Version  kong.VersionFlag
	Config   string `help:"Data file path (.json or SQLite) or PostgreSQL connection string. PostgreSQL passwords belong in WELLNEST_DB_CONNECTION or the OS keyring, not here." type:"string" env:"WELLNEST_CONFIG" default:"${default_config}"`
	Timezone string `help:"IANA timezone used for day boundaries (default: local)." env:"WELLNEST_TIMEZONE"`
	Debug    bool   `help:"Log debug output to stderr."`

	Init     cli.InitCmd     `cmd:"" help:"Initialize wellnest storage."`
	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Stats    cli.StatsCmd    `cmd:"" help:"Show the dashboard summary."`
	Habit    cli.HabitCmd    `cmd:"" help:"Manage and track habits."`
	Journal  cli.JournalCmd  `cmd:"" help:"Write and browse journal entries."`
	Goal     cli.GoalCmd     `cmd:"" help:"Manage goals and deadlines."`
	Mood     cli.MoodCmd     `cmd:"" help:"Show the weekly mood summary and trend."`
	Insights cli.InsightsCmd `cmd:"" help:"Show sentiment, writing patterns and insights."`
	Chart    cli.ChartCmd    `cmd:"" help:"Print chart series as JSON."`
	Classify cli.ClassifyCmd `cmd:"" help:"Classify the sentiment of a piece of text."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run health checks and diagnostics."`
	Validate cli.ValidateCmd `cmd:"" help:"Check stored records for problems."`
	DebugCmd cli.DebugCmd    `cmd:"" name:"debug" help:"Debug commands for troubleshooting."`
	Backup   cli.BackupCmd   `cmd:"" help:"Manage data backups."`
	Keyring  cli.KeyringCmd  `cmd:"" help:"Manage secrets in the OS keyring."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal wellness tracker: habits, journal, goals and mood insights"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":        version,
			"default_config": constants.DefaultConfigPath,
		},
	)

	if err := config.LoadDotEnv(); err != nil {
		errors.Fatal(err)
	}
	cfg, err := config.Load(config.Flags{
		Config:   CLI.Config,
		Timezone: CLI.Timezone,
		Debug:    CLI.Debug,
	})
	if err != nil {
		errors.Fatal(err)
	}
	if err := logger.Init(logger.Config{Debug: cfg.Debug, ConfigDir: cfg.Dir()}); err != nil {
		errors.Fatalf("failed to initialize logger: %w", err)
	}

	errors.Fatal(run(ctx, cfg))
}

func run(ctx *kong.Context, cfg config.Config) error {
	store, err := cfg.NewProvider()
	if err != nil {
		return err
	}
	defer store.Close()

	if !cfg.IsPostgres() {
		l, err := lock.Acquire(cfg.Dir())
		if err != nil {
			return err
		}
		defer func() {
			if err := l.Release(); err != nil {
				logger.Warn("Failed to release lock", "error", err)
			}
		}()
	}

	if needsStore(ctx.Command()) {
		if err := store.Load(); err != nil {
			return err
		}
	}

	logger.Debug("Running command", "command", ctx.Command())
	return ctx.Run(cli.NewContext(cfg, store))
}

// needsStore reports whether a command reads the data store. Init handles
// its own loading; keyring and classify never touch it.
func needsStore(command string) bool {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return true
	}
	switch fields[0] {
	case "init", "keyring", "classify":
		return false
	}
	return true
}
