package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vabshroo/builgen/pkg/action/snapshot"
)

func init() {
	rootCmd.AddCommand(NewSnapshotCommand())
}

func NewSnapshotCommand() *cobra.Command {
	var manifestPath string

	var snapshotCmd = &cobra.Command{
		Use:   "snapshot",
		Short: "inspect recorded generation snapshots",
	}
	snapshotCmd.PersistentFlags().StringVarP(&manifestPath, "manifest", "m", "builgen.yaml", "manifest file")

	var listCmd = &cobra.Command{
		Use:   "list",
		Short: "list recorded snapshots",
		RunE: func(c *cobra.Command, args []string) error {
			m, err := snapshot.List(manifestPath)
			if err != nil {
				return err
			}
			for _, s := range m.Snapshots {
				marker := " "
				if s.Version == m.CurrentVersion {
					marker = "*"
				}
				fmt.Fprintf(c.OutOrStdout(), "%s %s\t%s\t%s\t%s\n", marker, s.Version, s.Lang, s.Class, s.File)
			}
			return nil
		},
	}

	var diffCmd = &cobra.Command{
		Use:   "diff",
		Short: "diff the current snapshot against the previous one",
		RunE: func(c *cobra.Command, args []string) error {
			d, err := snapshot.DiffCurrentWithPrevious(manifestPath)
			if err != nil {
				return err
			}
			if d == "" {
				fmt.Fprintln(c.OutOrStdout(), "no changes")
				return nil
			}
			fmt.Fprint(c.OutOrStdout(), d)
			return nil
		},
	}

	snapshotCmd.AddCommand(listCmd, diffCmd)
	return snapshotCmd
}
