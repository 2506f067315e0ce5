package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/dtexplorer/internal/catalog"
)

func newZonesCmd() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "zones",
		Short: "List IANA time zones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			zones := catalog.FilterZones(filter)
			if len(zones) == 0 {
				return fmt.Errorf("no time zones match %q", filter)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(zones, "\n"))
			return nil
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "", "Only zones containing this text (case-insensitive)")
	return cmd
}

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog [name]",
		Short: "List option values; without a name, list the catalogues",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintln(w, strings.Join(catalog.Names(), "\n"))
				return nil
			}
			if args[0] == "locales" {
				for _, l := range catalog.Locales() {
					fmt.Fprintf(w, "%-12s %s\n", l.Tag, l.Title())
				}
				return nil
			}
			values, ok := catalog.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown catalogue %q (try: %s)", args[0], strings.Join(catalog.Names(), ", "))
			}
			fmt.Fprintln(w, strings.Join(values, "\n"))
			return nil
		},
	}
}
