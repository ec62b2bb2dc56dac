package cmd

import (
	"fmt"
	"io"

	"github.com/bgraf/diashow/slideshow"
	"github.com/spf13/cobra"
)

var navigateCmd = &cobra.Command{
	Use:   "navigate next|prev IMAGE",
	Short: "Print the neighbouring image in the folder of IMAGE",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, _ := cmd.Flags().GetBool("ref")

		engine, err := collectionEngine(ref)
		if err != nil {
			return err
		}

		return printNeighbour(cmd.OutOrStdout(), engine, args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(navigateCmd)

	navigateCmd.Flags().Bool("ref", false, "Navigate the reference collection")
}

func printNeighbour(w io.Writer, engine *slideshow.Engine, direction, current string) error {
	dir, err := slideshow.ParseDirection(direction)
	if err != nil {
		return err
	}

	rel, err := engine.Navigate(dir, current)
	if err != nil {
		return fmt.Errorf("%s of '%s': %w", dir, current, err)
	}

	fmt.Fprintln(w, rel)
	return nil
}
