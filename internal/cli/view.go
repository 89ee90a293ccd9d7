package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	xduerr "github.com/matzehuels/goxdu/pkg/errors"
	xduio "github.com/matzehuels/goxdu/pkg/io"
	"github.com/matzehuels/goxdu/pkg/pipeline"
	"github.com/matzehuels/goxdu/pkg/tree"
	"github.com/matzehuels/goxdu/pkg/view"
)

// viewFlags holds the command-line flags for the interactive view.
type viewFlags struct {
	treeFlags
	dump string // write the tree as JSON instead of opening the view
}

// viewCommand creates the interactive view, which is also the root command.
func (c *CLI) viewCommand() *cobra.Command {
	var flags viewFlags

	cmd := &cobra.Command{
		Use:   "goxdu [file|-]",
		Short: "goxdu shows disk usage as nested columns",
		Long: `goxdu reads du output, one "size path" record per line, and shows the
directory tree as nested columns sized by usage.

Click a band to zoom into it, click the leftmost band to zoom out.

Keys:
  1-9, 0   show that many columns (0 shows 10)
  /        back to the root
  f, l     creation order, reversed
  a, A     alphabetical, reversed
  n, N     by size (largest first), reversed
  r        reverse the current order
  s        toggle sizes
  q        quit`,
		Example: `  du -ak /usr | goxdu -n
  goxdu -c 4 du.txt
  du -ak . | goxdu --dump tree.json
  goxdu --input-format json tree.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runView(cmd, args, &flags)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&flags.dump, "dump", "", "write the tree as JSON to this file (- for stdout) and exit")

	return cmd
}

func (c *CLI) runView(cmd *cobra.Command, args []string, flags *viewFlags) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(c.configPath)
	if err != nil {
		return err
	}
	opts := pipeline.Options{
		Input:  inputArg(args),
		Logger: loggerFromContext(ctx),
		Stdin:  cmd.InOrStdin(),
	}
	if err := flags.apply(cmd, cfg, &opts); err != nil {
		return err
	}
	if opts.IsStdin() && isTerminal(opts.Stdin) {
		_ = cmd.Usage()
		return xduerr.New(xduerr.ErrCodeInvalidInput, "no input: pipe du output into %s or name a file", appName)
	}

	root, err := c.load(ctx, cmd, opts)
	if err != nil {
		return err
	}

	if flags.dump != "" {
		return writeDump(cmd.OutOrStdout(), root, flags.dump)
	}
	return c.runTUI(ctx, root, opts)
}

// load reads the tree for the view. Malformed lines are reported on the
// command's stderr; on a terminal a spinner runs until loading is done.
func (c *CLI) load(ctx context.Context, cmd *cobra.Command, opts pipeline.Options) (*tree.Node, error) {
	stderr := cmd.ErrOrStderr()
	if c.verbose || !isTerminal(stderr) {
		c.reportSkipped(cmd, &opts)
	} else {
		sp := newSpinnerWithContext(ctx, "Reading "+opts.Source())
		sp.w = stderr
		opts.OnSkip = func(line string) { sp.Println(skipMessage(line)) }
		sp.Start()
		defer sp.Stop()
	}

	root, _, err := pipeline.Load(ctx, opts)
	return root, err
}

// reportSkipped routes skipped-line reports to the command's stderr.
func (c *CLI) reportSkipped(cmd *cobra.Command, opts *pipeline.Options) {
	stderr := cmd.ErrOrStderr()
	opts.OnSkip = func(line string) {
		fmt.Fprintln(stderr, skipMessage(line))
	}
}

// writeDump writes root as JSON to path, or to w when path is "-".
func writeDump(w io.Writer, root *tree.Node, path string) error {
	if path == pipeline.StdinInput {
		if err := xduio.WriteJSON(root, w); err != nil {
			return xduerr.Wrap(xduerr.ErrCodeIO, err, "write dump")
		}
		return nil
	}
	if err := xduio.ExportJSON(root, path); err != nil {
		return xduerr.Wrap(xduerr.ErrCodeIO, err, "write dump %s", path)
	}
	printSuccess("Wrote %d nodes", root.Count())
	printFile(path)
	return nil
}

// runTUI runs the interactive view until the user quits or ctx is done.
func (c *CLI) runTUI(ctx context.Context, root *tree.Node, opts pipeline.Options) error {
	logger, closeLog, err := tuiLogger(c.Logger.GetLevel())
	if err != nil {
		return err
	}
	defer closeLog()

	ctrl := view.New(root, view.Options{
		Order:   opts.Order,
		Columns: opts.Columns,
		Logger:  logger,
	})
	m := newViewModel(ctrl, opts.Source(), opts.ShowSizes)

	progOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	}
	if opts.IsStdin() {
		// The records came through stdin, so keys and clicks must be read
		// from the controlling terminal.
		progOpts = append(progOpts, tea.WithInputTTY())
	}

	logger.Debug("starting view", "source", opts.Source(), "nodes", root.Count())
	if _, err := tea.NewProgram(m, progOpts...).Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return xduerr.Wrap(xduerr.ErrCodeInternal, err, "interactive view")
	}
	return nil
}

// tuiLogger returns the logger used while the view owns the terminal: a
// file logger when GOXDU_LOG is set, otherwise one that discards.
func tuiLogger(level log.Level) (*log.Logger, func() error, error) {
	path := os.Getenv(logFileEnv)
	if path == "" {
		return log.NewWithOptions(io.Discard, log.Options{}), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, xduerr.Wrap(xduerr.ErrCodeIO, err, "open log file %s", path)
	}
	return newLogger(f, level), f.Close, nil
}
