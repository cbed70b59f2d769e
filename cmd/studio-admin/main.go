// Command studio-admin provides operational commands for the studio API:
// database migrations, account management, and session maintenance.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/ArturCreativeLab/studio-api/config"
	"github.com/ArturCreativeLab/studio-api/internal/bootstrap"
	"github.com/ArturCreativeLab/studio-api/internal/data"
)

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx    context.Context
	Logger *slog.Logger
	Config config.AppConfig
}

func main() {
	logger := bootstrap.InitLogger()

	if len(os.Args) < 2 {
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when no command is provided
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		if err := writef(os.Stderr, "unknown command %q\n\n", cmdName); err != nil {
			logger.Error("print unknown command message failed", "error", err)
		}
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when command is unknown
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		logger.ErrorContext(context.Background(), "load config", "error", err)
		os.Exit(1) //nolint:forbidigo // CLI must signal configuration load failure to shell scripts
	}

	cmdCtx := &commandContext{
		Ctx:    context.Background(),
		Logger: logger,
		Config: cfg,
	}
	if runErr := cmd.run(cmdCtx, os.Args[2:]); runErr != nil {
		logger.ErrorContext(cmdCtx.Ctx, "command failed", "command", cmdName, "error", runErr)
		os.Exit(1) //nolint:forbidigo // CLI must propagate command execution failure to callers
	}
}

func commands() map[string]command {
	return map[string]command{
		"migrate": {
			name:        "migrate",
			description: "Run database migrations",
			run:         runMigrateCommand,
		},
		"list-profiles": {
			name:        "list-profiles",
			description: "List registered profiles",
			run:         runListProfiles,
		},
		"create-user": {
			name:        "create-user",
			description: "Create a password-backed account with a confirmed email",
			run:         runCreateUser,
		},
		"confirm-email": {
			name:        "confirm-email",
			description: "Mark an account's email address as confirmed",
			run:         runConfirmEmail,
		},
		"set-role": {
			name:        "set-role",
			description: "Change a profile's role (admin or user)",
			run:         runSetRole,
		},
		"clear-sessions": {
			name:        "clear-sessions",
			description: "Delete active sessions from Redis",
			run:         runClearSessions,
		},
	}
}

func printUsage() error {
	if err := writef(os.Stdout, "Usage: studio-admin <command> [flags]\n\n"); err != nil {
		return err
	}
	if err := writef(os.Stdout, "Available commands:\n"); err != nil {
		return err
	}
	cmds := commands()
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := writef(os.Stdout, "  %-16s %s\n", name, cmds[name].description); err != nil {
			return err
		}
	}
	return nil
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func runMigrateCommand(ctx *commandContext, _ []string) error {
	db, _, err := connectInfra(&connectInfraOptions{
		Logger: ctx.Logger,
		Config: &ctx.Config,
		WantDB: true,
	})
	if err != nil {
		return err
	}
	defer closeInfra(ctx.Logger, db, nil)

	if err := data.RunMigrations(ctx.Ctx, db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	ctx.Logger.InfoContext(ctx.Ctx, "migrations applied")
	return nil
}
