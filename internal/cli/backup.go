package cli

import (
	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Back up every existing world save once and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := setup()
		if err != nil {
			return err
		}
		return mgr.BackupOnce()
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
}
