package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/overlay/internal/theme"
)

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the built-in color themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range theme.Names() {
				t, _ := theme.Named(name)
				c := t.Resolved()
				marker := " "
				if name == theme.Default.Name {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %-6s background=%s secondary=%s mid=%s\n",
					marker, name, c.Background, c.SecondaryText, c.MidBackground)
			}
			return nil
		},
	}
}
