package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yleoer/emoji/pkg/converter"
)

const storyText = `Il était une fois un aventurier qui aimait son chien fidèle. 
Sous le soleil brillant, ils exploraient des terres mystérieuses. 
Quand la lune se levait, ils allumaient un feu près de l'eau cristalline. 
Son coeur était rempli d'amour pour cette terre sauvage.`

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Print a short story before and after conversion",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		runDemo(cmd.OutOrStdout(), a.text)
		return nil
	},
}

func runDemo(w io.Writer, tc converter.TextConverter) {
	fmt.Fprintln(w, "=== Original story ===")
	fmt.Fprintln(w, storyText)
	fmt.Fprintln(w, "\n=== Story with emoji ===")
	fmt.Fprintln(w, tc.Convert(storyText))
}
