package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/incgraph/pkg/config"
	"github.com/matzehuels/incgraph/pkg/errors"
	"github.com/matzehuels/incgraph/pkg/pipeline"
	"github.com/matzehuels/incgraph/pkg/render"
)

// renderFlags holds the flags shared by render and watch.
type renderFlags struct {
	format        string
	view          bool
	cluster       bool
	clusterLabels bool
	strict        bool
	exclude       []string
	gitignore     bool
	config        string
	noCache       bool
}

func addRenderFlags(cmd *cobra.Command, f *renderFlags) {
	fl := cmd.Flags()
	fl.StringVarP(&f.format, "format", "f", render.FormatSVG, "output format: "+strings.Join(render.Formats, ", "))
	fl.BoolVar(&f.view, "view", false, "open the rendered file in the default viewer")
	fl.BoolVarP(&f.cluster, "cluster", "c", false, "group the files of each directory into a cluster")
	fl.BoolVar(&f.clusterLabels, "cluster-labels", false, "label clusters with their directory (requires --cluster)")
	fl.BoolVarP(&f.strict, "strict", "s", false, "draw repeated includes as a single edge")
	fl.StringSliceVarP(&f.exclude, "exclude", "e", config.Default().Exclude, "directory name to skip, at any depth (repeatable)")
	fl.BoolVar(&f.gitignore, "gitignore", false, "skip paths matched by <input-folder>/.gitignore")
	fl.StringVar(&f.config, "config", "", "config file (default <input-folder>/"+config.FileName+")")
	fl.BoolVar(&f.noCache, "no-cache", false, "bypass the rendered artifact cache")
}

// options resolves the pipeline options for input and output. The format
// flag is checked before anything is read from disk; explicitly set flags
// override the config file.
func (f *renderFlags) options(cmd *cobra.Command, logger *log.Logger, input, output string) (pipeline.Options, error) {
	if output == "" {
		return pipeline.Options{}, errors.New(errors.ErrCodeInvalidInput, "output path is required")
	}
	if err := render.ValidateFormat(f.format); err != nil {
		return pipeline.Options{}, err
	}

	cfg, err := f.loadConfig(logger, input)
	if err != nil {
		return pipeline.Options{}, err
	}

	fl := cmd.Flags()
	if fl.Changed("format") {
		cfg.Render.Format = f.format
	}
	if fl.Changed("cluster") {
		cfg.Render.Cluster = f.cluster
	}
	if fl.Changed("cluster-labels") {
		cfg.Render.ClusterLabels = f.clusterLabels
	}
	if fl.Changed("strict") {
		cfg.Render.Strict = f.strict
	}
	if fl.Changed("exclude") {
		cfg.Exclude = f.exclude
	}
	if fl.Changed("gitignore") {
		cfg.Gitignore = f.gitignore
	}

	opts := pipeline.FromConfig(input, cfg)
	opts.Output = output
	opts.Refresh = f.noCache
	return opts, opts.Validate()
}

func (f *renderFlags) loadConfig(logger *log.Logger, input string) (config.Config, error) {
	if f.config != "" {
		logger.Debug("loading config", "path", f.config)
		return config.Load(f.config)
	}
	cfg, path, err := config.Discover(input)
	if path != "" {
		logger.Debug("loaded config", "path", path)
	}
	return cfg, err
}

// usageError prints the command usage for argument errors and passes err on.
func usageError(cmd *cobra.Command, err error) error {
	if errors.IsUsage(err) {
		cmd.PrintErrln(cmd.UsageString())
	}
	return err
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render <input-folder> <output>",
		Short: "Render the include graph of a source folder",
		Long: `Render scans input-folder for C/C++ headers and sources, follows their
#include directives and renders the graph with Graphviz.

The artifact is written to <output>.<format>, and the DOT source to <output>.
Formats: ` + strings.Join(render.Formats, ", ") + `. The dot format writes only the
graph source, json writes the graph description.`,
		Example: `  incgraph render src build/deps
  incgraph render src build/deps -f png --cluster --cluster-labels
  incgraph render . deps -e Test -e third_party --strict --view`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd, c.Logger, args[0], args[1])
			if err != nil {
				return usageError(cmd, err)
			}

			runner, err := c.newRunner(flags.noCache)
			if err != nil {
				return err
			}
			defer runner.Cache.Close()

			result, err := c.runRender(cmd.Context(), runner, opts)
			if err != nil {
				return err
			}
			if flags.view {
				view(result)
			}
			return nil
		},
	}

	addRenderFlags(cmd, &flags)
	return cmd
}

// runRender runs the pipeline once and reports what was written.
func (c *CLI) runRender(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options) (*pipeline.Result, error) {
	prog := newProgress(c.Logger)

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", opts.Format))
	spinner.Start()
	result, err := runner.Run(ctx, opts)
	spinner.Stop()
	if err != nil {
		return nil, err
	}

	prog.done(fmt.Sprintf("Rendered %d files", result.Stats.FileCount))
	if len(result.Paths) > 0 {
		printSuccess("Generated %s", result.Paths[0])
		for _, p := range result.Paths[1:] {
			printFile(p)
		}
	}
	printStats(result.Stats, result.CacheHit)
	return result, nil
}

func view(result *pipeline.Result) {
	if len(result.Paths) == 0 {
		return
	}
	if err := render.Open(result.Paths[0]); err != nil {
		printWarning("Could not open viewer: %v", err)
	}
}
