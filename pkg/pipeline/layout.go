package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/goxdu/pkg/layout"
	"github.com/matzehuels/goxdu/pkg/observability"
	"github.com/matzehuels/goxdu/pkg/tree"
)

// =============================================================================
// Layout Generation
// =============================================================================

// Layout computes the cascade bands of the whole tree for the configured
// render size and column budget. Unset options take their defaults.
func Layout(ctx context.Context, root *tree.Node, opts Options) []layout.Band {
	opts.SetLayoutDefaults()

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, root.Name, opts.Columns)
	start := time.Now()

	bands := layout.Compute(root, opts.Viewport(), opts.Columns)

	hooks.OnLayoutComplete(ctx, root.Name, len(bands), time.Since(start))
	return bands
}
