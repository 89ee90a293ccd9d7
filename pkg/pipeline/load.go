package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	xduerr "github.com/matzehuels/goxdu/pkg/errors"
	xduio "github.com/matzehuels/goxdu/pkg/io"
	"github.com/matzehuels/goxdu/pkg/observability"
	"github.com/matzehuels/goxdu/pkg/tree"
)

// Load reads the configured input and returns the sorted tree.
//
// du input is parsed line by line; malformed lines go to opts.OnSkip.
// JSON input is a dump written by [xduio.WriteJSON]. The tree is sorted
// with opts.Order unless that is the order it was built in.
//
// A missing input file is reported as ErrCodeFileNotFound, a read failure
// as ErrCodeIO and an unparseable dump as ErrCodeInvalidInput. If ctx is
// cancelled while reading, its error is returned.
func Load(ctx context.Context, opts Options) (*tree.Node, tree.ParseStats, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, tree.ParseStats{}, err
	}

	hooks := observability.Pipeline()
	source := opts.Source()
	hooks.OnParseStart(ctx, source, opts.InputFormat)
	start := time.Now()

	root, stats, err := load(ctx, opts)
	hooks.OnParseComplete(ctx, source, observability.ParseStats{
		Records: stats.Records,
		Skipped: stats.Skipped,
		Nodes:   stats.Nodes,
	}, time.Since(start), err)
	if err != nil {
		return nil, stats, err
	}

	if opts.Order != tree.DefaultOrder {
		tree.Sort(root, opts.Order)
	}
	opts.Logger.Debug("loaded tree",
		"source", source,
		"records", stats.Records,
		"skipped", stats.Skipped,
		"nodes", stats.Nodes,
		"order", opts.Order)
	return root, stats, nil
}

func load(ctx context.Context, opts Options) (*tree.Node, tree.ParseStats, error) {
	r, closeFn, err := openInput(opts)
	if err != nil {
		return nil, tree.ParseStats{}, err
	}
	defer closeFn()

	cr := &ctxReader{ctx: ctx, r: r}

	switch opts.InputFormat {
	case InputJSON:
		root, err := xduio.ReadJSON(cr)
		if err != nil {
			return nil, tree.ParseStats{}, loadError(ctx, opts, err, xduerr.ErrCodeInvalidInput)
		}
		n := root.Count()
		return root, tree.ParseStats{Records: n, Nodes: n}, nil
	default:
		root, stats, err := tree.Parse(cr, tree.ParseOptions{
			Separator: opts.Separator,
			OnSkip:    opts.OnSkip,
		})
		if err != nil {
			return nil, stats, loadError(ctx, opts, err, xduerr.ErrCodeIO)
		}
		return root, stats, nil
	}
}

// openInput opens the input file, or returns stdin.
func openInput(opts Options) (io.Reader, func(), error) {
	if opts.IsStdin() {
		if opts.Stdin != nil {
			return opts.Stdin, func() {}, nil
		}
		return os.Stdin, func() {}, nil
	}

	f, err := os.Open(opts.Input)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, xduerr.Wrap(xduerr.ErrCodeFileNotFound, err, "input file not found: %s", opts.Input)
		}
		return nil, nil, xduerr.Wrap(xduerr.ErrCodeIO, err, "open %s", opts.Input)
	}
	return f, func() { f.Close() }, nil
}

// loadError reports a cancelled context as itself and wraps every other
// failure with code.
func loadError(ctx context.Context, opts Options, err error, code xduerr.Code) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("load %s: %w", opts.Source(), ctxErr)
	}
	return xduerr.Wrap(code, err, "load %s", opts.Source())
}

// ctxReader stops reading once its context is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
