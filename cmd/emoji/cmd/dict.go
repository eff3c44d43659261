package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dictCmd = &cobra.Command{
	Use:   "dict",
	Short: "Print the effective dictionary in replacement order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		for _, e := range a.emoji.Dictionary().Entries() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", e.Word, e.Symbol)
		}
		return nil
	},
}
