package main

import (
	"context"
	"io"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/campaignrefs/pkg/config"
	"github.com/walteh/campaignrefs/pkg/log"
	"github.com/walteh/campaignrefs/pkg/operation"
	"github.com/walteh/campaignrefs/pkg/rules"
	"gitlab.com/tozd/go/errors"
)

const noteTitle = "NOTE: Frontend files will need environment variables configured:"

// rootOpts holds the flags of the root command
type rootOpts struct {
	configFile  string
	backendDir  string
	frontendDir string
	debug       bool
}

// newRootCmd creates the root command, writing user-facing output to out
func newRootCmd(out io.Writer) *cobra.Command {
	opts := &rootOpts{}

	cmd := &cobra.Command{
		Use:   "campaignrefs",
		Short: "Replace hardcoded campaign references with configuration lookups",
		Long: `campaignrefs rewrites the canvassing app's backend and frontend sources so the
candidate name, campaign name, consent text and canvassing script come from configuration
instead of being hardcoded.

It edits a fixed list of files in place, one at a time, and reports each file it changed.
A file that cannot be read or written is reported and skipped.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), out, opts)
		},
	}

	cmd.SetOut(out)
	cmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "layout file (.hcl, .yaml, .yml or .json)")
	cmd.PersistentFlags().StringVar(&opts.backendDir, "backend-dir", "", "root of the API project")
	cmd.PersistentFlags().StringVar(&opts.frontendDir, "frontend-dir", "", "root of the UI project")
	cmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "enable debug logging")

	cmd.AddCommand(newVersionCmd(out))

	return cmd
}

// run performs the migration and prints the summary
func run(ctx context.Context, out io.Writer, opts *rootOpts) error {
	level := zerolog.WarnLevel
	if opts.debug {
		level = zerolog.DebugLevel
	}
	logger := log.New(out, level)
	ctx = log.NewContext(logger.Zerolog().WithContext(ctx), logger)

	layout, err := resolveLayout(ctx, opts)
	if err != nil {
		return err
	}
	zerolog.Ctx(ctx).Debug().Stringer("layout", layout).Msg("resolved layout")

	jobs, err := operation.Plan(layout)
	if err != nil {
		return errors.Errorf("planning jobs: %w", err)
	}

	runner, err := operation.NewRunner(logger)
	if err != nil {
		return errors.Errorf("creating runner: %w", err)
	}

	summary := runner.Run(ctx, jobs)

	logger.Total(summary.Updated)
	logger.Note(noteTitle, rules.EnvironmentVariables())

	return nil
}

// resolveLayout starts from the built-in roots, applies the layout file and then the flags
func resolveLayout(ctx context.Context, opts *rootOpts) (*config.Layout, error) {
	layout := config.DefaultLayout()
	if opts.configFile != "" {
		loaded, err := config.Load(ctx, opts.configFile)
		if err != nil {
			return nil, errors.Errorf("loading layout: %w", err)
		}
		layout = loaded
	}

	layout = layout.Merge(&config.Layout{
		BackendDir:  opts.backendDir,
		FrontendDir: opts.frontendDir,
	})

	var err error
	if layout.BackendDir, err = filepath.Abs(layout.BackendDir); err != nil {
		return nil, errors.Errorf("resolving backend dir: %w", err)
	}
	if layout.FrontendDir, err = filepath.Abs(layout.FrontendDir); err != nil {
		return nil, errors.Errorf("resolving frontend dir: %w", err)
	}

	if err := layout.Validate(); err != nil {
		return nil, errors.Errorf("validating layout: %w", err)
	}
	return layout, nil
}
