package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Print the resolved game and backup directories",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := setup()
		if err != nil {
			return err
		}
		fmt.Println("game root:  ", mgr.GameRoot())
		fmt.Println("backup root:", mgr.BackupRoot())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pathsCmd)
}
