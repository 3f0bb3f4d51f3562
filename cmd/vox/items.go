package main

import (
	"fmt"
	"text/tabwriter"

	"vox/internal/registry"

	"github.com/spf13/cobra"
)

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Print the item catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tTAG\tRADIUS\tASSET")
		for _, e := range registry.Entries() {
			asset := e.AssetPath
			if e.Procedural {
				asset = "(procedural)"
			}
			fmt.Fprintf(tw, "%d\t%s\t%g\t%s\n", e.Type, e.Name, e.Radius, asset)
		}
		return tw.Flush()
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify [content-root]",
	Short: "Check that every item definition file exists",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, _, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		root := settings.ContentRoot
		if len(args) == 1 {
			root = args[0]
		}

		rep, err := registry.Verify(root)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, e := range rep.Missing {
			fmt.Fprintf(out, "missing %s: %s\n", e.Name, e.AssetPath)
		}
		if !rep.OK() {
			return fmt.Errorf("%d of %d item definitions missing under %s", len(rep.Missing), rep.Checked, root)
		}
		fmt.Fprintf(out, "all %d item definitions present under %s\n", rep.Checked, root)
		return nil
	},
}
