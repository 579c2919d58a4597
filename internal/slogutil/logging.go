// Package slogutil builds the slog loggers used throughout the module, with
// per-component minimum levels controlled by the QUICMUX_LOG_LEVEL
// environment variable.
package slogutil

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LogLevelNone is a log level that disables all logging.
const LogLevelNone slog.Level = slog.LevelError + 1

// ComponentKey is the slog attribute key identifying the component a logger
// belongs to.
const ComponentKey = "component"

// A levelMap holds the minimum log level per component. The entry under the
// empty key is the fallback for components without an explicit level.
type levelMap map[string]slog.Level

func (m levelMap) enabled(component string, level slog.Level) bool {
	if lvl, ok := m[component]; ok {
		return level >= lvl
	}
	return level >= m[""]
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "none":
		return LogLevelNone, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level: %s", s)
}

// parseLevels parses the QUICMUX_LOG_LEVEL format: a comma separated mix of a
// bare fallback level and component=level pairs, e.g. "info",
// "debug,dispatcher=info", or "dispatcher=info,flowcontrol=error". Without a
// bare level, components that aren't mentioned stay silent.
func parseLevels(config string) (levelMap, error) {
	m := levelMap{"": LogLevelNone}
	for _, entry := range strings.Split(config, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		component, levelStr, isPair := strings.Cut(entry, "=")
		if !isPair {
			component, levelStr = "", entry
		}
		component = strings.TrimSpace(component)
		level, err := parseLevel(strings.TrimSpace(levelStr))
		if err != nil {
			if isPair {
				return nil, fmt.Errorf("component %s: %w", component, err)
			}
			return nil, err
		}
		m[component] = level
	}
	return m, nil
}

// handler filters records by the owning component's minimum level, and moves
// the message behind the attributes so lines lead with their key=value pairs.
// The component is picked up from the ComponentKey attribute added via
// Logger.With.
type handler struct {
	component string
	levels    levelMap
	inner     slog.Handler
}

var _ slog.Handler = &handler{}

func (h *handler) Enabled(_ context.Context, level slog.Level) bool {
	return h.levels.enabled(h.component, level)
}

func (h *handler) Handle(ctx context.Context, r slog.Record) error {
	r.AddAttrs(slog.String(slog.MessageKey, r.Message))
	r.Message = ""
	return h.inner.Handle(ctx, r)
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	component := h.component
	for _, a := range attrs {
		if a.Key == ComponentKey {
			component = a.Value.String()
			break
		}
	}
	return &handler{component: component, levels: h.levels, inner: h.inner.WithAttrs(attrs)}
}

func (h *handler) WithGroup(name string) slog.Handler {
	return &handler{component: h.component, levels: h.levels, inner: h.inner.WithGroup(name)}
}

func newHandler(w io.Writer, levels levelMap) slog.Handler {
	inner := slog.NewTextHandler(w, &slog.HandlerOptions{
		// level filtering happens per component in handler.Enabled
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// drop the empty message that Handle moved behind the attributes
			if len(groups) == 0 && a.Key == slog.MessageKey && a.Value.String() == "" {
				return slog.Attr{}
			}
			return a
		},
	})
	return &handler{levels: levels, inner: inner}
}

// NewLogger creates a logger writing to w, with levels taken from the
// QUICMUX_LOG_LEVEL environment variable.
func NewLogger(w io.Writer) *slog.Logger {
	levels, err := parseLevels(os.Getenv("QUICMUX_LOG_LEVEL"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse QUICMUX_LOG_LEVEL: %v\n", err)
		os.Exit(1)
	}
	return slog.New(newHandler(w, levels))
}
