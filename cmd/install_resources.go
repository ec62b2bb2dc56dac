package cmd

import (
	"fmt"

	"github.com/bgraf/diashow/filesystem"
	"github.com/bgraf/diashow/res"
	"github.com/spf13/cobra"
)

var installResourcesCmd = &cobra.Command{
	Use:   "install-resources DIR",
	Short: "Write the built-in templates to DIR for customization",
	Long: `Write the built-in templates to DIR. Pass DIR to serve --resource-dir
to use the modified copies.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := filesystem.InstallFS(res.Templates, args[0]); err != nil {
			return fmt.Errorf("install resources: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installResourcesCmd)
}
