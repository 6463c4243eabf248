package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/incgraph/pkg/errors"
	"github.com/matzehuels/incgraph/pkg/watch"
)

// watchCommand creates the watch command.
func (c *CLI) watchCommand() *cobra.Command {
	var (
		flags    renderFlags
		debounce time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch <input-folder> <output>",
		Short: "Re-render the include graph whenever sources change",
		Long: `Watch renders like the render command, then keeps watching input-folder and
renders again once headers or sources have stopped changing for the debounce
window. Excluded directories are not watched. Stop with Ctrl-C.`,
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

			ctx := cmd.Context()
			result, err := c.runRender(ctx, runner, opts)
			if err != nil {
				return err
			}
			if flags.view {
				view(result)
			}

			w, err := watch.New(opts.Input, watch.Options{
				Debounce:   debounce,
				Exclude:    opts.Exclude,
				Extensions: opts.Categories.Extensions(),
				Logger:     c.Logger,
			})
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "watch %s", opts.Input)
			}
			defer w.Close()

			printInfo("Watching %s (Ctrl-C to stop)", opts.Input)
			return w.Run(ctx, func(ctx context.Context, changes []watch.Change) {
				c.Logger.Info("change detected", "files", len(changes), "path", changes[0].Path)
				if _, err := c.runRender(ctx, runner, opts); err != nil && ctx.Err() == nil {
					printError("%s", errors.UserMessage(err))
				}
			})
		},
	}

	addRenderFlags(cmd, &flags)
	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "quiet period before re-rendering")
	return cmd
}
