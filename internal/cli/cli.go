// Package cli implements the goxdu command-line interface.
//
// The root command reads du output (or a JSON dump) and opens the
// interactive cascade view. The render command writes the same tree to
// SVG, PNG, PDF, DOT or JSON without a terminal.
//
// # Commands
//
//   - goxdu [file|-]: Interactive view, or a JSON dump with --dump
//   - render: Generate SVG, PNG, PDF, DOT or JSON output
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context. While the interactive view owns the
// terminal, log output goes to the file named by GOXDU_LOG, or nowhere.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/goxdu/pkg/buildinfo"
	xduerr "github.com/matzehuels/goxdu/pkg/errors"
	"github.com/matzehuels/goxdu/pkg/observability"
	"github.com/matzehuels/goxdu/pkg/pipeline"
	"github.com/matzehuels/goxdu/pkg/tree"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "goxdu"

	// logFileEnv names a file that receives log output while the
	// interactive view is running.
	logFileEnv = "GOXDU_LOG"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	verbose    bool
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Running the root command itself opens the interactive view.
func (c *CLI) RootCommand() *cobra.Command {
	root := c.viewCommand()
	root.Version = buildinfo.Version
	root.SilenceUsage = true
	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/goxdu/config.toml)")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if c.verbose {
			c.SetLogLevel(LogDebug)
			observability.SetPipelineHooks(observability.NewLogHooks(c.Logger))
		}
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		return nil
	}

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Shared Flags
// =============================================================================

// treeFlags are the flags shared by every command that loads a tree.
type treeFlags struct {
	inputFormat string
	separator   string
	order       string
	numeric     bool
	columns     string
	noSize      bool
}

func (f *treeFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.inputFormat, "input-format", pipeline.InputDU, "input format: du or json")
	flags.StringVar(&f.separator, "separator", "", "path separator in du records (default the platform's)")
	flags.StringVar(&f.order, "order", "", "sibling order: first, last, alpha, ralpha, size, rsize")
	flags.BoolVarP(&f.numeric, "numeric", "n", false, "sort by size, largest first (same as --order size)")
	flags.StringVarP(&f.columns, "columns", "c", "", fmt.Sprintf("number of columns shown (%d-%d)", xduerr.MinColumns, xduerr.MaxColumns))
	flags.BoolVar(&f.noSize, "no-size", false, "hide sizes in labels")
	cmd.MarkFlagsMutuallyExclusive("numeric", "order")

	orders := make([]string, len(tree.Orders))
	for i, o := range tree.Orders {
		orders[i] = o.String()
	}
	_ = cmd.RegisterFlagCompletionFunc("order", cobra.FixedCompletions(orders, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("input-format", cobra.FixedCompletions(
		[]string{pipeline.InputDU, pipeline.InputJSON}, cobra.ShellCompDirectiveNoFileComp))
}

// apply resolves the flags on top of cfg into opts. Flags the user did not
// set leave the configured value in place. A non-integer column count is
// reported here, before any input is read.
func (f *treeFlags) apply(cmd *cobra.Command, cfg Config, opts *pipeline.Options) error {
	order, err := cfg.order()
	if err != nil {
		return err
	}
	switch {
	case f.numeric:
		order = tree.OrderSize
	case f.order != "":
		if order, err = tree.ParseOrder(f.order); err != nil {
			return err
		}
	}
	opts.Order = order

	opts.Columns = cfg.Columns
	if cmd.Flags().Changed("columns") {
		if opts.Columns, err = xduerr.ParseColumns(f.columns); err != nil {
			return err
		}
	}

	opts.ShowSizes = cfg.showSizes() && !f.noSize
	opts.InputFormat = strings.ToLower(f.inputFormat)
	opts.Separator = f.separator
	return nil
}

// inputArg returns the input named on the command line, or stdin.
func inputArg(args []string) string {
	if len(args) == 0 {
		return pipeline.StdinInput
	}
	return args[0]
}

// isTerminal reports whether v is a file attached to a terminal. Readers
// and writers injected by tests never are.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// skipMessage formats the report for a malformed input line.
func skipMessage(line string) string {
	return fmt.Sprintf("%s: Skipping: %s", appName, line)
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	var formats []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			formats = append(formats, f)
		}
	}
	return formats
}
