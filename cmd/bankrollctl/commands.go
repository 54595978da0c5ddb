package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	portssvc "github.com/SscSPs/bankroll_app/internal/core/ports/services"
	"github.com/SscSPs/bankroll_app/internal/core/services"
	"github.com/SscSPs/bankroll_app/internal/dto"
	"github.com/SscSPs/bankroll_app/internal/platform/config"
	"github.com/SscSPs/bankroll_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/bankroll_app/internal/utils"
	"github.com/SscSPs/bankroll_app/pkg/database"
	"github.com/google/subcommands"
)

// cliUserID is recorded as the creator of rows written by this tool.
const cliUserID = "bankrollctl"

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// withServices loads the config, opens the pool and hands fn a service container.
func withServices(ctx context.Context, fn func(*portssvc.ServiceContainer) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		return err
	}
	defer database.ClosePgxPool(pool)
	return fn(services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(pool)))
}

type migrateCmd struct {
	path string
}

func (*migrateCmd) Name() string     { return "migrate" }
func (*migrateCmd) Synopsis() string { return "apply pending database migrations" }
func (*migrateCmd) Usage() string {
	return `migrate [-path file://migrations]

  Applies every pending up migration. Defaults to MIGRATIONS_PATH.
`
}

func (c *migrateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.path, "path", "", "Migration source URL (defaults to MIGRATIONS_PATH)")
}

func (c *migrateCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return subcommands.ExitFailure
	}
	source := cfg.MigrationsPath
	if c.path != "" {
		source = c.path
	}
	if err := database.RunMigrations(newLogger(), cfg.DatabaseURL, source); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the whole ledger as a JSON export document" }
func (*exportCmd) Usage() string {
	return `export [-o file]

  Writes the export document to the given file, or to stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file (default stdout)")
}

func (c *exportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var out io.Writer = os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		out = file
	}

	err := withServices(ctx, func(svc *portssvc.ServiceContainer) error {
		doc, err := svc.Backup.Export(ctx)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type importCmd struct{}

func (*importCmd) Name() string { return "import" }
func (*importCmd) Synopsis() string {
	return "add the records of an export document that are not stored yet"
}
func (*importCmd) Usage() string {
	return `import <file>

  Reads an export document and adds every record whose ID is unknown.
  Existing records and platform balances are left untouched.
`
}

func (*importCmd) SetFlags(*flag.FlagSet) {}

func (*importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one export file is required.")
		return subcommands.ExitUsageError
	}

	raw, err := os.ReadFile(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	var doc dto.ExportDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing %s: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}

	err = withServices(ctx, func(svc *portssvc.ServiceContainer) error {
		summary, err := svc.Backup.Import(ctx, doc, cliUserID)
		if err != nil {
			return err
		}
		fmt.Printf("platforms:       +%d (%d skipped)\n", summary.Platforms.Added, summary.Platforms.Skipped)
		fmt.Printf("live sessions:   +%d (%d skipped)\n", summary.LiveSessions.Added, summary.LiveSessions.Skipped)
		fmt.Printf("online sessions: +%d (%d skipped)\n", summary.OnlineSessions.Added, summary.OnlineSessions.Skipped)
		fmt.Printf("deposits:        +%d (%d skipped)\n", summary.Deposits.Added, summary.Deposits.Skipped)
		fmt.Printf("withdrawals:     +%d (%d skipped)\n", summary.Withdrawals.Added, summary.Withdrawals.Skipped)
		fmt.Printf("adjustments:     +%d (%d skipped)\n", summary.Adjustments.Added, summary.Adjustments.Skipped)
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type hashPasswordCmd struct{}

func (*hashPasswordCmd) Name() string     { return "hash-password" }
func (*hashPasswordCmd) Synopsis() string { return "print a bcrypt hash for APP_PASSWORD_HASH" }
func (*hashPasswordCmd) Usage() string {
	return `hash-password <password>
`
}

func (*hashPasswordCmd) SetFlags(*flag.FlagSet) {}

func (*hashPasswordCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: a password is required.")
		return subcommands.ExitUsageError
	}
	hash, err := utils.HashPassword(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error hashing password: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(hash)
	return subcommands.ExitSuccess
}
