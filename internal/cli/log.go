package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/incgraph/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Rendered 42 files (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// registerHooks routes pipeline and cache events to logger at debug level.
func registerHooks(logger *log.Logger) {
	observability.SetPipelineHooks(logHooks{logger})
	observability.SetCacheHooks(logHooks{logger})
}

type logHooks struct{ logger *log.Logger }

func (h logHooks) OnDiscoverStart(_ context.Context, root string) {
	h.logger.Debug("discover start", "root", root)
}

func (h logHooks) OnDiscoverComplete(_ context.Context, root string, files int, d time.Duration, err error) {
	h.logger.Debug("discover done", "root", root, "files", files, "duration", d, "error", err)
}

func (h logHooks) OnAssembleComplete(_ context.Context, nodes, edges int, d time.Duration, err error) {
	h.logger.Debug("assemble done", "nodes", nodes, "edges", edges, "duration", d, "error", err)
}

func (h logHooks) OnRenderStart(_ context.Context, format string) {
	h.logger.Debug("render start", "format", format)
}

func (h logHooks) OnRenderComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	h.logger.Debug("render done", "format", format, "bytes", size, "duration", d, "error", err)
}

func (h logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}
