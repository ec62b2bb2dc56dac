package cmd

import (
	"github.com/bgraf/diashow/cmd/serve"
	"github.com/bgraf/diashow/config"
	"github.com/spf13/cobra"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the slideshow web interface",
	RunE:  serve.RunServeCmd,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP(
		"address",
		"a",
		config.DefaultAddress,
		"Listen address",
	)
	bindFlag(serveCmd.Flags().Lookup("address"), config.KeyServeAddress)

	serveCmd.Flags().StringP(
		"base",
		"b",
		"",
		"URL base path the slideshow is served below",
	)
	bindFlag(serveCmd.Flags().Lookup("base"), config.KeyServeBase)

	serveCmd.Flags().StringP(
		"resource-dir",
		"R",
		"",
		"Directory containing templates",
	)
	bindFlag(serveCmd.Flags().Lookup("resource-dir"), config.KeyServeResources)
}
