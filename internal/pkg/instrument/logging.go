package instrument

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	sdklog "go.opentelemetry.io/otel/sdk/log"
)

const (
	correlationKey = "_cID"
	serviceKey     = "service"
	maskedValue    = "***"
)

type LogOptions struct {
	Service    string
	MaskFields []string
	Level      slog.Leveler
	// LoggerProvider, when set, also ships every record over OTLP.
	LoggerProvider *sdklog.LoggerProvider
}

// SetDefaultLogger installs a JSON logger writing to w as the slog default.
func SetDefaultLogger(w io.Writer, opts LogOptions) {
	slog.SetDefault(NewLogger(w, opts))
}

// NewLogger builds a JSON logger that masks sensitive fields and stamps every
// record with the service name and the context correlation id.
func NewLogger(w io.Writer, opts LogOptions) *slog.Logger {
	level := opts.Level
	if level == nil {
		level = slog.LevelInfo
	}

	outs := []slog.Handler{slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		AddSource:   true,
		ReplaceAttr: renameAttr,
	})}
	if opts.LoggerProvider != nil {
		outs = append(outs, otelslog.NewHandler(opts.Service, otelslog.WithLoggerProvider(opts.LoggerProvider)))
	}

	mask := make(map[string]struct{}, len(opts.MaskFields))
	for _, f := range opts.MaskFields {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			mask[f] = struct{}{}
		}
	}

	return slog.New(&handler{outs: outs, mask: mask, service: opts.Service})
}

func renameAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return a
	}

	switch a.Key {
	case slog.TimeKey:
		a.Key = "ts"
	case slog.LevelKey:
		a.Key = "severity"
	case slog.SourceKey:
		src, ok := a.Value.Any().(*slog.Source)
		if !ok {
			return a
		}
		_, rel, found := strings.Cut(src.File, "/internal/")
		if !found {
			return slog.Attr{}
		}
		return slog.String("file", "internal/"+rel+":"+strconv.Itoa(src.Line))
	}
	return a
}

type handler struct {
	outs    []slog.Handler
	mask    map[string]struct{}
	service string
}

func (h *handler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, out := range h.outs {
		if out.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *handler) Handle(ctx context.Context, r slog.Record) error {
	rec := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		rec.AddAttrs(h.maskAttr(a))
		return true
	})
	if h.service != "" {
		rec.AddAttrs(slog.String(serviceKey, h.service))
	}
	if cID := GetCorrelationID(ctx); cID != "" {
		rec.AddAttrs(slog.String(correlationKey, cID))
	}

	var errs []error
	for _, out := range h.outs {
		if !out.Enabled(ctx, rec.Level) {
			continue
		}
		if err := out.Handle(ctx, rec.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	masked := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		masked[i] = h.maskAttr(a)
	}
	return h.derive(func(out slog.Handler) slog.Handler { return out.WithAttrs(masked) })
}

func (h *handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return h.derive(func(out slog.Handler) slog.Handler { return out.WithGroup(name) })
}

func (h *handler) derive(fn func(slog.Handler) slog.Handler) *handler {
	outs := make([]slog.Handler, len(h.outs))
	for i, out := range h.outs {
		outs[i] = fn(out)
	}
	return &handler{outs: outs, mask: h.mask, service: h.service}
}

func (h *handler) masked(key string) bool {
	_, ok := h.mask[strings.ToLower(key)]
	return ok
}

func (h *handler) maskAttr(a slog.Attr) slog.Attr {
	if len(h.mask) == 0 {
		return a
	}
	if h.masked(a.Key) {
		return slog.String(a.Key, maskedValue)
	}

	v := a.Value.Resolve()
	switch v.Kind() {
	case slog.KindGroup:
		group := v.Group()
		out := make([]any, len(group))
		for i, g := range group {
			out[i] = h.maskAttr(g)
		}
		return slog.Group(a.Key, out...)
	case slog.KindString:
		if s, ok := h.maskJSON([]byte(v.String())); ok {
			return slog.String(a.Key, s)
		}
	case slog.KindAny:
		switch val := v.Any().(type) {
		case []byte:
			if s, ok := h.maskJSON(val); ok {
				return slog.String(a.Key, s)
			}
		case json.RawMessage:
			if s, ok := h.maskJSON(val); ok {
				return slog.String(a.Key, s)
			}
		case map[string]any:
			return slog.Any(a.Key, h.maskValue(val))
		}
	}
	return slog.Attr{Key: a.Key, Value: v}
}

// maskJSON rewrites a JSON object or array payload. ok is false when the
// payload is not JSON.
func (h *handler) maskJSON(payload []byte) (string, bool) {
	trimmed := strings.TrimSpace(string(payload))
	if trimmed == "" || (trimmed[0] != '{' && trimmed[0] != '[') {
		return "", false
	}

	var data any
	if err := json.Unmarshal([]byte(trimmed), &data); err != nil {
		return "", false
	}

	out, err := json.Marshal(h.maskValue(data))
	if err != nil {
		return "", false
	}
	return string(out), true
}

func (h *handler) maskValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			if h.masked(k) {
				out[k] = maskedValue
				continue
			}
			out[k] = h.maskValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = h.maskValue(item)
		}
		return out
	default:
		return v
	}
}
