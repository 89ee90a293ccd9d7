package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks reports pipeline events to a structured logger at debug level.
// Failures are logged at warn level.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns hooks that log to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{Logger: logger}
}

func (h *LogHooks) OnParseStart(_ context.Context, source, format string) {
	h.Logger.Debug("parse started", "source", source, "format", format)
}

func (h *LogHooks) OnParseComplete(_ context.Context, source string, stats ParseStats, d time.Duration, err error) {
	if err != nil {
		h.Logger.Warn("parse failed", "source", source, "error", err, "duration", d)
		return
	}
	h.Logger.Debug("parse complete",
		"source", source,
		"records", stats.Records,
		"skipped", stats.Skipped,
		"nodes", stats.Nodes,
		"duration", d)
}

func (h *LogHooks) OnLayoutStart(_ context.Context, focus string, columns int) {
	h.Logger.Debug("layout started", "focus", focus, "columns", columns)
}

func (h *LogHooks) OnLayoutComplete(_ context.Context, focus string, bands int, d time.Duration) {
	h.Logger.Debug("layout complete", "focus", focus, "bands", bands, "duration", d)
}

func (h *LogHooks) OnRenderStart(_ context.Context, format string) {
	h.Logger.Debug("render started", "format", format)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, format string, n int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Warn("render failed", "format", format, "error", err)
		return
	}
	h.Logger.Debug("render complete", "format", format, "bytes", n, "duration", d)
}
