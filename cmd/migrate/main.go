package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"servihub/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
)

// Supported subcommands:
// - up:      apply all pending migrations
// - down:    roll back N migrations (default 1)
// - version: print the current schema version
// - force:   set the version without running migrations

func main() {
	_ = godotenv.Load(".env")

	fs := flag.NewFlagSet("migrate", flag.ExitOnError)
	source := fs.String("path", "migrations", "Directory containing the SQL migrations")
	databaseURL := fs.String("database", os.Getenv("DATABASE_URL"), "PostgreSQL connection URL")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(1)
	}

	if *databaseURL == "" {
		slog.Error("Database URL is required, set -database or DATABASE_URL")
		os.Exit(1)
	}

	m, err := migrate.New("file://"+*source, *databaseURL)
	if err != nil {
		slog.Error("Failed to initialise migrations", slog.Any("error", err))
		os.Exit(1)
	}
	defer m.Close()

	if err := run(m, command, fs.Args()); err != nil {
		slog.Error("Migration failed", slog.String("command", command), slog.Any("error", err))
		os.Exit(1)
	}
}

func run(m *migrate.Migrate, command string, args []string) error {
	switch command {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return errors.WithStack(err)
		}
		slog.Info("Migrations applied")

	case "down":
		steps := 1
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n <= 0 {
				return errors.Errorf("invalid step count %q", args[0])
			}
			steps = n
		}
		if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return errors.WithStack(err)
		}
		slog.Info("Migrations rolled back", slog.Int("steps", steps))

	case "version":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			fmt.Println("no migrations applied")

			return nil
		}
		if err != nil {
			return errors.WithStack(err)
		}
		fmt.Printf("version %d (dirty: %t)\n", version, dirty)

	case "force":
		if len(args) == 0 {
			return errors.New("force requires a version")
		}
		version, err := strconv.Atoi(args[0])
		if err != nil {
			return errors.Errorf("invalid version %q", args[0])
		}
		if err := m.Force(version); err != nil {
			return errors.WithStack(err)
		}
		slog.Info("Migration version forced", slog.Int("version", version))

	default:
		printUsage()

		return errors.Errorf("unknown command %q", command)
	}

	return nil
}

func printUsage() {
	fmt.Println("Usage: migrate <command> [flags] [args]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  up                 Apply all pending migrations")
	fmt.Println("  down [N]           Roll back N migrations (default 1)")
	fmt.Println("  version            Print the current schema version")
	fmt.Println("  force <version>    Set the schema version without migrating")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -path      Migrations directory (default: migrations)")
	fmt.Println("  -database  PostgreSQL URL (default: $DATABASE_URL)")
}
