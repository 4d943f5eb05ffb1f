package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AadarshCanCode/Wellnest/internal/keyring"
	"github.com/AadarshCanCode/Wellnest/internal/storage/postgres"
)

type KeyringCmd struct {
	Set    KeyringSetCmd    `cmd:"" help:"Store a secret in the OS keyring."`
	Get    KeyringGetCmd    `cmd:"" help:"Show a stored secret (masked)."`
	Delete KeyringDeleteCmd `cmd:"" help:"Remove a secret from the OS keyring."`
	Status KeyringStatusCmd `cmd:"" help:"Check OS keyring availability."`
}

// KeyringSetCmd stores the database connection string or the OpenAI API key
type KeyringSetCmd struct {
	Entry  string `arg:"" help:"Which secret: db or openai." enum:"db,openai"`
	Secret string `arg:"" help:"Connection string or API key."`
}

func (cmd *KeyringSetCmd) Run(ctx *Context) error {
	entry, err := keyring.ParseEntry(cmd.Entry)
	if err != nil {
		return err
	}

	if entry == keyring.ConnectionString {
		if !postgres.IsConnString(cmd.Secret) && !strings.Contains(cmd.Secret, "host=") {
			return errors.New("connection string must be a valid PostgreSQL connection string")
		}
		if err := postgres.ValidateConnString(cmd.Secret); err != nil {
			if !errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return fmt.Errorf("invalid connection string: %w", err)
			}
			ctx.Println(warnStyle.Render("⚠️  Warning: Connection string contains embedded credentials."))
			ctx.Println("   It will be stored as-is in the encrypted OS keyring.")
		}
	}

	if err := keyring.Set(entry, cmd.Secret); err != nil {
		return err
	}
	ctx.Printf("%s Stored %s in OS keyring\n", okStyle.Render("✓"), entry)
	return nil
}

type KeyringGetCmd struct {
	Entry string `arg:"" help:"Which secret: db or openai." enum:"db,openai"`
}

func (cmd *KeyringGetCmd) Run(ctx *Context) error {
	entry, err := keyring.ParseEntry(cmd.Entry)
	if err != nil {
		return err
	}
	secret, err := keyring.Get(entry)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return fmt.Errorf("no %s found in keyring. Use 'wellnest keyring set %s' to store one", entry, cmd.Entry)
		}
		return fmt.Errorf("failed to retrieve %s from keyring: %w", entry, err)
	}

	if entry == keyring.ConnectionString {
		ctx.Println(maskPassword(secret))
	} else {
		ctx.Println(maskSecret(secret))
	}
	return nil
}

type KeyringDeleteCmd struct {
	Entry string `arg:"" help:"Which secret: db or openai." enum:"db,openai"`
}

func (cmd *KeyringDeleteCmd) Run(ctx *Context) error {
	entry, err := keyring.ParseEntry(cmd.Entry)
	if err != nil {
		return err
	}
	if err := keyring.Delete(entry); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return fmt.Errorf("no %s found in keyring", entry)
		}
		return err
	}
	ctx.Printf("%s Deleted %s from OS keyring\n", okStyle.Render("✓"), entry)
	return nil
}

type KeyringStatusCmd struct{}

func (cmd *KeyringStatusCmd) Run(ctx *Context) error {
	if !keyring.IsAvailable() {
		ctx.Println("❌ OS keyring is not available on this system")
		return keyring.ErrKeyringUnavailable
	}
	ctx.Printf("%s OS keyring is available\n", okStyle.Render("✓"))
	for _, e := range keyring.Entries {
		if _, err := keyring.Get(e); err == nil {
			ctx.Printf("%s %s is stored\n", okStyle.Render("✓"), e)
		} else if errors.Is(err, keyring.ErrNotFound) {
			ctx.Printf("ℹ No %s stored\n", e)
		}
	}
	return nil
}

// maskPassword masks passwords in connection strings for display
func maskPassword(connStr string) string {
	if postgres.IsConnString(connStr) {
		if idx := strings.Index(connStr, "://"); idx != -1 {
			remaining := connStr[idx+3:]
			if atIdx := strings.LastIndex(remaining, "@"); atIdx != -1 {
				userInfo := remaining[:atIdx]
				if colonIdx := strings.Index(userInfo, ":"); colonIdx != -1 {
					return connStr[:idx+3] + userInfo[:colonIdx] + ":****" + connStr[idx+3+atIdx:]
				}
			}
		}
		return connStr
	}

	if strings.Contains(connStr, "password=") {
		parts := strings.Fields(connStr)
		for i, part := range parts {
			if strings.HasPrefix(part, "password=") {
				parts[i] = "password=****"
			}
		}
		return strings.Join(parts, " ")
	}
	return connStr
}

// maskSecret keeps only the last four characters of an API key.
func maskSecret(s string) string {
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}
