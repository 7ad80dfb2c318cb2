package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewMovesCommand creates the moves command.
func NewMovesCommand(opts *RootOptions) *cobra.Command {
	var detail bool

	cmd := &cobra.Command{
		Use:   "moves",
		Short: "List the moves of the catalog",
		Long: `List the 18 single-face moves in catalog order.

With --detail, print the change each move makes to a solved cube.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range opts.catalog.Names() {
				if !detail {
					fmt.Fprintln(out, name)
					continue
				}
				delta, err := opts.catalog.Lookup(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-3s %s\n", name, delta)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&detail, "detail", "d", false, "Show the cubie-level delta of every move")

	return cmd
}
