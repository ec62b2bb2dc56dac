package cmd

import (
	"fmt"

	"github.com/bgraf/diashow/logging"
	"github.com/spf13/cobra"
)

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Print randomly selected images",
	Args:  cobra.NoArgs,
	RunE:  runRandom,
}

func init() {
	rootCmd.AddCommand(randomCmd)

	randomCmd.Flags().StringP("prefix", "p", "", "Restrict the selection to this folder")
	randomCmd.Flags().IntP("count", "n", 1, "Number of images to print")
	randomCmd.Flags().Bool("ref", false, "Select from the reference collection")
}

func runRandom(cmd *cobra.Command, args []string) error {
	prefix, _ := cmd.Flags().GetString("prefix")
	count, _ := cmd.Flags().GetInt("count")
	ref, _ := cmd.Flags().GetBool("ref")

	if count < 1 {
		return fmt.Errorf("count must be positive")
	}

	engine, err := collectionEngine(ref)
	if err != nil {
		return err
	}

	for i := 0; i < count; i++ {
		rel, err := engine.Random(prefix)
		if err != nil {
			return fmt.Errorf("no image found below '%s': %w", prefix, err)
		}

		logging.Debug("selected image", logging.String("img", rel), logging.String("prefix", prefix))
		fmt.Fprintln(cmd.OutOrStdout(), rel)
	}

	return nil
}
