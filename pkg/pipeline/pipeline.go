// Package pipeline provides the load → layout → render pipeline for goxdu.
//
// This package implements the stages shared by the interactive view and
// the non-interactive render command. By centralizing this logic, both
// entry points read input, report skipped lines and sort the tree the
// same way.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read du records or a JSON dump and build the size tree
//  2. Layout: Compute the cascade bands for a viewport and column budget
//  3. Render: Generate output in various formats (SVG, PNG, PDF, DOT, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Input:   "du.txt",
//	    Order:   tree.OrderSize,
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Load only
//	root, stats, err := pipeline.Load(ctx, opts)
//
//	// Layout an existing tree
//	bands := pipeline.Layout(ctx, root, opts)
//
//	// Render an existing layout
//	artifacts, err := pipeline.Render(ctx, root, bands, opts)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	xduerr "github.com/matzehuels/goxdu/pkg/errors"
	"github.com/matzehuels/goxdu/pkg/layout"
	"github.com/matzehuels/goxdu/pkg/tree"
	"github.com/matzehuels/goxdu/pkg/view"
)

// =============================================================================
// Default Values - Single Source of Truth for the view and render commands
// =============================================================================

const (
	// DefaultWidth is the default render width in SVG units.
	DefaultWidth = 800

	// DefaultHeight is the default render height in SVG units.
	DefaultHeight = 600

	// DefaultColumns is the default column budget.
	DefaultColumns = view.DefaultColumns

	// DefaultScale is the default PNG scale factor.
	DefaultScale = 2.0

	// StdinInput names standard input as the input source.
	StdinInput = "-"
)

// Input format constants.
const (
	InputDU   = "du"
	InputJSON = "json"
)

// Format constants for output formats.
const (
	FormatSVG      = "svg"
	FormatPNG      = "png"
	FormatPDF      = "pdf"
	FormatDOT      = "dot"
	FormatNodelink = "nodelink"
	FormatJSON     = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:      true,
	FormatPNG:      true,
	FormatPDF:      true,
	FormatDOT:      true,
	FormatNodelink: true,
	FormatJSON:     true,
}

// ValidInputFormats is the set of supported input formats.
var ValidInputFormats = map[string]bool{
	InputDU:   true,
	InputJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
type Options struct {
	// Load options
	Input       string     `json:"input,omitempty"`        // file path, "" or "-" for stdin
	InputFormat string     `json:"input_format,omitempty"` // "du" (default) or "json"
	Separator   string     `json:"separator,omitempty"`    // path separator, default the platform's
	Order       tree.Order `json:"order,omitempty"`

	// Layout options
	Columns int `json:"columns,omitempty"`
	Width   int `json:"width,omitempty"`
	Height  int `json:"height,omitempty"`

	// Render options
	Formats   []string `json:"formats,omitempty"`
	ShowSizes bool     `json:"show_sizes,omitempty"`
	MaxDepth  int      `json:"max_depth,omitempty"` // node-link levels, 0 for the default
	Detailed  bool     `json:"detailed,omitempty"`  // node-link labels with sizes
	Scale     float64  `json:"scale,omitempty"`     // PNG scale factor

	// Runtime options (not serialized)
	Logger *log.Logger       `json:"-"`
	Stdin  io.Reader         `json:"-"` // read for stdin input, default os.Stdin
	OnSkip func(line string) `json:"-"` // receives malformed du lines

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Root is the loaded, sorted tree.
	Root *tree.Node

	// Bands is the cascade layout of Root.
	Bands []layout.Band

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Records    int
	Skipped    int
	NodeCount  int
	BandCount  int
	ParseTime  time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return xduerr.New(xduerr.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, pdf, dot, nodelink, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateInputFormat checks that an input format is valid.
func ValidateInputFormat(format string) error {
	if !ValidInputFormats[format] {
		return xduerr.New(xduerr.ErrCodeInvalidFormat,
			"invalid input format: %q (must be one of: du, json)", format)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks all fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks load fields and applies their defaults.
func (o *Options) ValidateForLoad() error {
	if o.InputFormat == "" {
		o.InputFormat = InputDU
	}
	if err := ValidateInputFormat(o.InputFormat); err != nil {
		return err
	}
	if o.Separator != "" {
		if err := xduerr.ValidateSeparator(o.Separator); err != nil {
			return err
		}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Columns == 0 {
		o.Columns = DefaultColumns
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if err := xduerr.ValidateColumns(o.Columns); err != nil {
		return err
	}
	if o.Width < 0 || o.Height < 0 {
		return xduerr.New(xduerr.ErrCodeInvalidInput, "size must not be negative, got %dx%d", o.Width, o.Height)
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Scale < 0 {
		return xduerr.New(xduerr.ErrCodeInvalidInput, "scale must be positive, got %g", o.Scale)
	}
	return nil
}

// IsStdin reports whether the input is read from standard input.
func (o *Options) IsStdin() bool {
	return o.Input == "" || o.Input == StdinInput
}

// Source names the input for logs and messages.
func (o *Options) Source() string {
	if o.IsStdin() {
		return StdinInput
	}
	return o.Input
}

// Viewport returns the render size as a layout viewport.
func (o *Options) Viewport() layout.Viewport {
	return layout.Viewport{Width: o.Width, Height: o.Height}
}

func (o *Options) String() string {
	return fmt.Sprintf("input=%s format=%s order=%s columns=%d size=%dx%d",
		o.Source(), o.InputFormat, o.Order, o.Columns, o.Width, o.Height)
}
