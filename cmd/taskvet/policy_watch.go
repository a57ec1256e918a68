package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/taskvet/taskvet/internal/policy"
)

var policyWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Continuously revalidate the policy file",
	Long: `Watch the policy file and revalidate it on every change. The last policy
that validated stays in effect while an invalid edit sits on disk.`,
	RunE: runPolicyWatch,
}

func init() {
	policyCmd.AddCommand(policyWatchCmd)
}

func runPolicyWatch(_ *cobra.Command, _ []string) error {
	path := resolvePolicyPath()

	// Initial load so the runtime starts from a known-good policy.
	cfg, err := policy.Load(path)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("✗ %s\n", err)
		return err
	}

	fmt.Printf("✓ %s is valid, watching for changes\n", path)

	runtime := policy.NewRuntime(cfg)

	watcher, err := policy.NewWatcher(path)
	if err != nil {
		return fmt.Errorf("failed to watch policy file: %w", err)
	}
	defer func() {
		if closeErr := watcher.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("failed to close policy watcher")
		}
	}()

	// Editor save storms are debounced by the watcher; the limiter caps
	// validation runs on top of that.
	limiter := rate.NewLimiter(rate.Every(time.Second), 1)

	watcher.OnReload(func(next *policy.Config) error {
		if !limiter.Allow() {
			log.Debug().Str("path", path).Msg("revalidation throttled")
			return nil
		}

		if err := next.Validate(); err != nil {
			fmt.Printf("✗ %s\n", err)
			return err
		}

		runtime.Store(next)
		fmt.Printf("✓ %s is valid\n", path)

		return nil
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watcher.Watch(ctx)
}
