package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thisisniagahub/Quran-Pulse-sub001/translit"
)

func newTablesCmd(a *app) *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Validate the configured tables and print their sizes",
		Long: `Loads the phrase and word tables (embedded, or the files named by
phrases_path and words_path) and reports how many entries each holds.
Loading fails on invalid entries, so this doubles as a table linter.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			tables := []*translit.Table{a.engine.Phrases(), a.engine.Words()}

			if !list {
				for _, t := range tables {
					if _, err := fmt.Fprintf(out, "%s\t%d\n", t.Kind(), t.Len()); err != nil {
						return err
					}
				}
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, t := range tables {
				for _, e := range t.Entries() {
					if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n", t.Kind(), e.Key, e.Value); err != nil {
						return err
					}
				}
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "print every entry as kind, key, value")
	return cmd
}
