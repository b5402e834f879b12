package cli

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Back up existing saves, then watch for changes until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := setup()
		if err != nil {
			return err
		}

		if err := mgr.BackupOnce(); err != nil {
			return fmt.Errorf("catch-up backup: %w", err)
		}

		watchErr := make(chan error, 1)
		go func() {
			watchErr <- mgr.Watch()
		}()

		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

		select {
		case sig := <-sigs:
			slog.Info("shutting down", "signal", sig.String())
			mgr.Unwatch()
			// Join the watch goroutine so shutdown is complete before exit.
			return <-watchErr
		case err := <-watchErr:
			return err
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
