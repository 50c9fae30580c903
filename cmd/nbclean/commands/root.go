// Package commands implements the CLI commands for nbclean.
package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "nbclean <notebook>...",
	Short: "Make Colab notebooks open in Jupyter, VS Code and Cursor",
	Long: `nbclean removes the interactive-widget state and Colab-only metadata
that stop Google Colab notebooks from rendering in other viewers.

Running nbclean with notebook arguments is the same as "nbclean clean".

Examples:
  # Clean a single notebook in place
  nbclean my_notebook.ipynb

  # Clean several notebooks, including quoted wildcards
  nbclean clean notebook1.ipynb "lessons/**/*.ipynb"

  # Preview changes as JSON without writing anything
  nbclean clean --dry-run --format json *.ipynb`,
	Args:          cobra.MinimumNArgs(1),
	RunE:          runClean,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.nbclean.yaml or ./.nbclean.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress the text report")

	addCleanFlags(rootCmd)
}

func initConfig() {
	if cfgFile, _ := rootCmd.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".nbclean")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("NBCLEAN")
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errIncomplete) {
		logError("%v", err)
	}
	return err
}

// logError prints an error message to stderr.
func logError(format string, args ...any) {
	fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: "+format+"\n", args...)
}
