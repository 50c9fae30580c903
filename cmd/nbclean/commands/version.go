package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/nbclean/internal/output"
	"github.com/jmylchreest/nbclean/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().String("format", "text", "output format: text, json, yaml")
}

func runVersion(cmd *cobra.Command, _ []string) error {
	formatStr, _ := cmd.Flags().GetString("format")
	format, err := output.ParseFormat(formatStr)
	if err != nil {
		return err
	}

	info := version.Get()
	if format == output.FormatText {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), info)
		return err
	}

	writer, err := output.NewWriter(cmd.OutOrStdout(), format, output.WithComment("nbclean build information"))
	if err != nil {
		return err
	}
	defer func() { _ = writer.Close() }()

	if err := writer.Write(info); err != nil {
		return err
	}
	return writer.Flush()
}
