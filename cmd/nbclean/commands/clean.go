package commands

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/nbclean/internal/batch"
	"github.com/jmylchreest/nbclean/internal/logger"
	"github.com/jmylchreest/nbclean/internal/output"
	"github.com/jmylchreest/nbclean/internal/pathexp"
	"github.com/jmylchreest/nbclean/internal/version"
	"github.com/jmylchreest/nbclean/pkg/cleaner"
)

// appFs is the filesystem notebooks are read from and written to.
var appFs = afero.NewOsFs()

// errIncomplete is returned when --strict is set and at least one notebook
// failed or was missing. The report has already described the failures.
var errIncomplete = errors.New("some notebooks could not be cleaned")

var cleanCmd = &cobra.Command{
	Use:   "clean <notebook>...",
	Short: "Clean notebooks in place",
	Long: `Clean removes widget state, widget output references and Colab-only
metadata from each notebook and writes it back in place.

Arguments containing * or ? are expanded; ** matches across directories.
Paths that are missing, or that do not end in .ipynb, are reported and skipped.

Examples:
  # Clean notebooks in place
  nbclean clean notebook1.ipynb notebook2.ipynb

  # Report what would change without writing
  nbclean clean --dry-run "course/**/*.ipynb"

  # Keep widget outputs, strip only metadata
  nbclean clean --no-widget-outputs notebook.ipynb

  # Also strip another Colab key
  nbclean clean --colab-key toc_visible --colab-key provenance notebook.ipynb`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)
	addCleanFlags(cleanCmd)
}

// addCleanFlags registers the cleaning flags on cmd. The root command
// carries them too so that "nbclean file.ipynb" behaves like "nbclean clean".
func addCleanFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	// Output settings
	flags.String("format", "text", "report format: text, json, jsonl, yaml")
	flags.Bool("dry-run", false, "report changes without writing files")

	// Processing settings
	flags.String("max-size", "0", "skip notebooks larger than this (e.g., 50MB, 0=unlimited)")
	flags.Bool("strict", true, "exit non-zero when any notebook failed or was missing (use --strict=false to disable)")

	// Rule settings
	flags.StringSlice("colab-key", nil, "metadata.colab key to remove (can be repeated, default toc_visible)")
	flags.Bool("no-widget-metadata", false, "keep metadata.widgets")
	flags.Bool("no-widget-outputs", false, "keep widget references in cell outputs")
	flags.Bool("no-colab", false, "keep metadata.colab untouched")
}

// cleanFlagKeys maps viper keys to flag names.
var cleanFlagKeys = map[string]string{
	"debug":              "debug",
	"quiet":              "quiet",
	"format":             "format",
	"dry_run":            "dry-run",
	"max_size":           "max-size",
	"strict":             "strict",
	"colab_keys":         "colab-key",
	"no_widget_metadata": "no-widget-metadata",
	"no_widget_outputs":  "no-widget-outputs",
	"no_colab":           "no-colab",
}

// bindCleanFlags binds the flags of the command actually running, since
// both root and clean define them.
func bindCleanFlags(cmd *cobra.Command) error {
	for key, name := range cleanFlagKeys {
		if err := viper.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return fmt.Errorf("binding --%s: %w", name, err)
		}
	}
	return nil
}

// cleanOptions is the resolved configuration for a clean run.
type cleanOptions struct {
	Paths   []string      `validate:"min=1,dive,required"`
	Format  output.Format `validate:"oneof=text json jsonl yaml"`
	MaxSize int64         `validate:"gte=0"`
	DryRun  bool
	Strict  bool
	Quiet   bool
	Cleaner *cleaner.Config `validate:"-"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// loadCleanOptions resolves flags, environment and config file into options.
func loadCleanOptions(args []string) (*cleanOptions, error) {
	opts := &cleanOptions{
		Paths:  args,
		Format: output.Format(strings.ToLower(strings.TrimSpace(viper.GetString("format")))),
		DryRun: viper.GetBool("dry_run"),
		Strict: viper.GetBool("strict"),
		Quiet:  viper.GetBool("quiet"),
	}

	// Get max size (0 or empty means unlimited)
	maxSizeStr := strings.TrimSpace(viper.GetString("max_size"))
	if maxSizeStr != "" && maxSizeStr != "0" {
		size, err := humanize.ParseBytes(maxSizeStr)
		if err != nil {
			return nil, fmt.Errorf("invalid max-size %q: %w", maxSizeStr, err)
		}
		opts.MaxSize = int64(size)
	}

	colabKeys := viper.GetStringSlice("colab_keys")
	if len(colabKeys) == 0 {
		colabKeys = append([]string(nil), cleaner.DefaultColabKeys...)
	}
	opts.Cleaner = &cleaner.Config{
		StripWidgetMetadata: !viper.GetBool("no_widget_metadata"),
		StripWidgetOutputs:  !viper.GetBool("no_widget_outputs"),
		StripColabKeys:      !viper.GetBool("no_colab"),
		ColabKeys:           colabKeys,
	}

	if err := validate.Struct(opts); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, fmt.Errorf("invalid %s: %q", strings.ToLower(verrs[0].Field()), fmt.Sprint(verrs[0].Value()))
		}
		return nil, err
	}
	if err := opts.Cleaner.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

func runClean(cmd *cobra.Command, args []string) error {
	// Arguments are valid by now; later errors are not usage errors.
	cmd.SilenceUsage = true

	if err := bindCleanFlags(cmd); err != nil {
		return err
	}

	// Initialize logger based on flags
	logger.Init(logger.Options{
		Debug:  viper.GetBool("debug"),
		Quiet:  viper.GetBool("quiet"),
		Output: cmd.ErrOrStderr(),
	})

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger.Debug("clean command starting", "args", len(args))

	opts, err := loadCleanOptions(args)
	if err != nil {
		return err
	}

	paths, err := pathexp.Expand(appFs, opts.Paths)
	if err != nil {
		return err
	}
	logger.Debug("notebooks to process", "count", len(paths), "dry_run", opts.DryRun, "max_size", opts.MaxSize)

	c := cleaner.New(opts.Cleaner)
	logger.Debug("cleaner configured", "rules", c.Name())

	summary, err := runBatch(ctx, cmd, opts, c, paths)
	if err != nil {
		return err
	}

	if opts.Strict && summary.Failed() > 0 {
		return errIncomplete
	}
	return nil
}

// runBatch processes paths and renders the report in the requested format.
// Text and JSONL reports stream per file; JSON and YAML write the summary
// once at the end.
func runBatch(ctx context.Context, cmd *cobra.Command, opts *cleanOptions, c *cleaner.Cleaner, paths []string) (*batch.Summary, error) {
	procOpts := batch.Options{
		DryRun:  opts.DryRun,
		MaxSize: opts.MaxSize,
	}

	out := cmd.OutOrStdout()

	if opts.Format == output.FormatText {
		report := newTextReport(out, opts.Quiet)
		report.Header(opts.DryRun)
		procOpts.OnResult = report.Result

		summary, err := batch.New(appFs, c, procOpts).Process(ctx, paths)
		report.Footer(summary)
		return summary, err
	}

	comment := "nbclean " + version.String() + " report"
	if opts.DryRun {
		comment += " (dry run, no files written)"
	}
	writer, err := output.NewWriter(out, opts.Format, output.WithComment(comment))
	if err != nil {
		return nil, err
	}
	defer func() { _ = writer.Close() }()

	var writeErr error
	if opts.Format.Streaming() {
		procOpts.OnResult = func(r batch.FileResult) {
			if err := writer.Write(r); err != nil && writeErr == nil {
				writeErr = err
			}
		}
	}

	summary, err := batch.New(appFs, c, procOpts).Process(ctx, paths)
	if err != nil {
		return summary, err
	}
	if writeErr != nil {
		return summary, fmt.Errorf("writing report: %w", writeErr)
	}

	if !opts.Format.Streaming() {
		if err := writer.Write(summary); err != nil {
			return summary, fmt.Errorf("writing report: %w", err)
		}
	}
	if err := writer.Flush(); err != nil {
		return summary, fmt.Errorf("writing report: %w", err)
	}
	return summary, nil
}
