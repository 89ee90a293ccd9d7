package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	xduerr "github.com/matzehuels/goxdu/pkg/errors"
	"github.com/matzehuels/goxdu/pkg/pipeline"
	"github.com/matzehuels/goxdu/pkg/render/nodelink"
)

// renderFlags holds the command-line flags for the render command.
type renderFlags struct {
	treeFlags
	output   string  // output file (single format) or base path (multiple)
	formats  string  // comma-separated output formats
	width    int     // frame width
	height   int     // frame height
	depth    int     // levels drawn by the node-link formats
	detailed bool    // sizes and shares in node-link labels
	scale    float64 // PNG scale factor
}

// renderCommand creates the render command for writing a tree to files.
// It supports the cascade layout (SVG, PNG, PDF), a node-link diagram
// (DOT source or Graphviz SVG) and the JSON dump.
func (c *CLI) renderCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Render a disk usage tree to SVG, PNG, PDF, DOT or JSON",
		Long: `Render reads du output (or a JSON dump) and writes it without opening
the interactive view.

Formats:
  svg       cascade layout, as shown by the interactive view
  png, pdf  the cascade layout converted with rsvg-convert
  dot       Graphviz source of the node-link diagram
  nodelink  node-link diagram rendered to SVG
  json      tree dump, readable with --input-format json`,
		Example: `  du -ak /usr | goxdu render -n -o usr.svg
  goxdu render --format svg,nodelink,json du.txt
  goxdu render --format dot --depth 2 -o - du.txt | dot -Tpng > du.png`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args, &flags)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (single format) or base path (multiple), - for stdout")
	cmd.Flags().StringVarP(&flags.formats, "format", "f", "", "output format(s): svg (default), png, pdf, dot, nodelink, json (comma-separated)")
	cmd.Flags().IntVar(&flags.width, "width", pipeline.DefaultWidth, "frame width")
	cmd.Flags().IntVar(&flags.height, "height", pipeline.DefaultHeight, "frame height")
	cmd.Flags().IntVar(&flags.depth, "depth", nodelink.DefaultMaxDepth, "levels below the root drawn by dot and nodelink")
	cmd.Flags().BoolVar(&flags.detailed, "detailed", false, "show sizes and shares in node-link labels")
	cmd.Flags().Float64Var(&flags.scale, "scale", pipeline.DefaultScale, "PNG scale factor")

	return cmd
}

// options resolves the render flags on top of cfg.
func (f *renderFlags) options(cmd *cobra.Command, cfg Config, opts *pipeline.Options) error {
	if err := f.apply(cmd, cfg, opts); err != nil {
		return err
	}

	opts.Formats = parseFormats(f.formats)
	if !cmd.Flags().Changed("format") && len(cfg.Render.Formats) > 0 {
		opts.Formats = cfg.Render.Formats
	}
	if err := pipeline.ValidateFormats(opts.Formats); err != nil {
		return err
	}
	if f.output == pipeline.StdinInput && len(opts.Formats) != 1 {
		return xduerr.New(xduerr.ErrCodeInvalidInput, "writing to stdout needs exactly one format, got %d", len(opts.Formats))
	}

	opts.Width = configured(cmd, "width", f.width, cfg.Render.Width)
	opts.Height = configured(cmd, "height", f.height, cfg.Render.Height)
	opts.MaxDepth = f.depth
	opts.Detailed = f.detailed
	opts.Scale = f.scale
	return nil
}

// configured returns the flag value when it was set, then the config
// value when it is non-zero, then the flag default.
func configured(cmd *cobra.Command, name string, flag, cfg int) int {
	if !cmd.Flags().Changed(name) && cfg != 0 {
		return cfg
	}
	return flag
}

func (c *CLI) runRender(cmd *cobra.Command, args []string, flags *renderFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(c.configPath)
	if err != nil {
		return err
	}
	opts := pipeline.Options{
		Input:  inputArg(args),
		Logger: logger,
		Stdin:  cmd.InOrStdin(),
	}
	if err := flags.options(cmd, cfg, &opts); err != nil {
		return err
	}
	if opts.IsStdin() && isTerminal(opts.Stdin) {
		_ = cmd.Usage()
		return xduerr.New(xduerr.ErrCodeInvalidInput, "no input: pipe du output into %s or name a file", appName)
	}

	c.reportSkipped(cmd, &opts)
	prog := newProgress(logger)
	result, err := pipeline.NewRunner(logger).Execute(ctx, opts)
	if err != nil {
		return err
	}

	if flags.output == pipeline.StdinInput {
		if _, err := cmd.OutOrStdout().Write(result.Artifacts[opts.Formats[0]]); err != nil {
			return xduerr.Wrap(xduerr.ErrCodeIO, err, "write %s", opts.Formats[0])
		}
		return nil
	}

	paths, err := writeArtifacts(result.Artifacts, opts.Formats, flags.output, opts.Input)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %s", opts.Source()))
	printStats(result.Stats.NodeCount, result.Stats.BandCount)
	for _, p := range paths {
		printFile(p)
	}
	if result.Stats.Skipped > 0 {
		printWarning("skipped %d malformed lines", result.Stats.Skipped)
	}
	return nil
}

// writeArtifacts writes every rendered format and returns the paths in
// format order.
func writeArtifacts(artifacts map[string][]byte, formats []string, output, input string) ([]string, error) {
	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		path := outputPath(format, len(formats), output, input)
		if input != "" && input != pipeline.StdinInput && filepath.Clean(path) == filepath.Clean(input) {
			return paths, xduerr.New(xduerr.ErrCodeInvalidInput, "output %s would overwrite the input", path)
		}
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return paths, xduerr.Wrap(xduerr.ErrCodeIO, err, "write %s", path)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// outputPath returns the file a format is written to. A single format
// goes to output unchanged; otherwise each format gets its own suffix on
// the base path.
func outputPath(format string, count int, output, input string) string {
	if count == 1 && output != "" {
		return output
	}
	return basePath(output, input) + formatSuffix(format)
}

// formatSuffix returns the file suffix for a format. The node-link SVG is
// told apart from the cascade SVG by name.
func formatSuffix(format string) string {
	if format == pipeline.FormatNodelink {
		return "_nodelink.svg"
	}
	return "." + format
}

// basePath derives the base output path from the output and input file paths.
// Without either, outputs are named after the application.
func basePath(output, input string) string {
	if output == "" {
		if input == "" || input == pipeline.StdinInput {
			return appName
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	// Strip known format extensions from output path
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
