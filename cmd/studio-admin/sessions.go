package main

import (
	"errors"
	"flag"
	"fmt"
)

const sessionKeyPattern = "session:*"

func runClearSessions(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("clear-sessions", flag.ContinueOnError)
	dryRun := fs.Bool("dry-run", false, "report matching keys without deleting")
	yes := fs.Bool("yes", false, "skip confirmation")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !*dryRun && !*yes {
		return errors.New("clear-sessions signs out every active user; re-run with -yes to confirm or -dry-run to preview")
	}

	_, redisClient, err := connectInfra(&connectInfraOptions{Logger: ctx.Logger, Config: &ctx.Config, WantRedis: true})
	if err != nil {
		return err
	}
	defer closeInfra(ctx.Logger, nil, redisClient)

	iter := redisClient.Scan(ctx.Ctx, 0, sessionKeyPattern, 1000).Iterator()
	keys := make([]string, 0)
	for iter.Next(ctx.Ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan redis: %w", err)
	}

	if *dryRun || len(keys) == 0 {
		ctx.Logger.InfoContext(ctx.Ctx, "sessions matched", "count", len(keys), "dry_run", *dryRun)
		return nil
	}

	for start := 0; start < len(keys); start += 100 {
		end := min(start+100, len(keys))
		if err := redisClient.Del(ctx.Ctx, keys[start:end]...).Err(); err != nil {
			return fmt.Errorf("delete session keys: %w", err)
		}
	}
	ctx.Logger.InfoContext(ctx.Ctx, "sessions cleared", "count", len(keys))
	return nil
}
