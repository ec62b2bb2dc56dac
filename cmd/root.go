package cmd

import (
	"fmt"
	"os"

	"github.com/bgraf/diashow/config"
	"github.com/bgraf/diashow/logging"
	"github.com/spf13/cobra"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "diashow",
	Short: "Random slideshow over a directory tree of images",
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.Sync()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.diashow.yaml)")

	rootCmd.PersistentFlags().StringP("root-dir", "r", "", "Image root directory")
	bindFlag(rootCmd.PersistentFlags().Lookup("root-dir"), config.KeyRootDirectory)

	rootCmd.PersistentFlags().String("ref-dir", "", "Reference image directory served below /ref")
	bindFlag(rootCmd.PersistentFlags().Lookup("ref-dir"), config.KeyRefDirectory)

	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	bindFlag(rootCmd.PersistentFlags().Lookup("log-level"), config.KeyLogLevel)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config.SetDefaults()

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in working and home directory with name ".diashow" (without extension).
		if dir, err := os.Getwd(); err == nil {
			viper.AddConfigPath(dir)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".diashow")
	}

	configErr := viper.ReadInConfig()

	err := logging.Init(logging.Config{
		Level:  config.LogLevel(),
		Format: config.LogFormat(),
		File:   config.LogFile(),
	})
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if configErr == nil {
		logging.Debug("using config file", logging.String("file", viper.ConfigFileUsed()))
	}
}
