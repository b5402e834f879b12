package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var listLimit int

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List backup artifacts, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := setup()
		if err != nil {
			return err
		}

		artifacts, err := mgr.ListArtifacts(listLimit)
		if err != nil {
			return err
		}
		if len(artifacts) == 0 {
			fmt.Println("no backups yet")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "WORLD\tSAVED AT\tARTIFACT")
		for _, a := range artifacts {
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				a.World, time.Unix(0, a.Stamp).Format(time.RFC3339), a.Path)
		}
		return w.Flush()
	},
}

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 0, "Only show the newest N artifacts")
	rootCmd.AddCommand(listCmd)
}
