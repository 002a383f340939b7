package router

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/shandysiswandi/gomailbox/internal/pkg/config"
	"github.com/shandysiswandi/gomailbox/internal/pkg/instrument"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

// bodyLogLimit caps how much of a request or response body is logged.
const bodyLogLimit = 16 << 10

// recorder captures the status, size, handler error and, when enabled, the
// head of a JSON response body.
type recorder struct {
	http.ResponseWriter
	status  int
	size    int
	err     error
	capture bool
	body    bytes.Buffer
}

func (w *recorder) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *recorder) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	if w.capture {
		if room := bodyLogLimit - w.body.Len(); room > 0 {
			w.body.Write(p[:min(room, len(p))])
		}
	}

	n, err := w.ResponseWriter.Write(p)
	w.size += n
	return n, err
}

// SetError lets the endpoint adapter hand the handler error to the span.
func (w *recorder) SetError(err error) { w.err = err }

// Flush keeps streaming endpoints working behind the recorder.
func (w *recorder) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (w *recorder) Unwrap() http.ResponseWriter { return w.ResponseWriter }

func (w *recorder) code() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

type httpMetrics struct {
	requests metric.Int64Counter
	duration metric.Float64Histogram
}

func newHTTPMetrics(m metric.Meter) httpMetrics {
	var hm httpMetrics
	var err error

	hm.requests, err = m.Int64Counter("http.server.requests", metric.WithDescription("Number of HTTP requests served"))
	if err != nil {
		slog.Error("router: failed to create request counter", "error", err)
	}
	hm.duration, err = m.Float64Histogram("http.server.duration",
		metric.WithDescription("HTTP request duration"), metric.WithUnit("ms"))
	if err != nil {
		slog.Error("router: failed to create duration histogram", "error", err)
	}
	return hm
}

func (hm httpMetrics) record(r *http.Request, elapsed time.Duration, attrs []attribute.KeyValue) {
	opt := metric.WithAttributes(attrs...)
	if hm.requests != nil {
		hm.requests.Add(r.Context(), 1, opt)
	}
	if hm.duration != nil {
		hm.duration.Record(r.Context(), float64(elapsed.Microseconds())/1000, opt)
	}
}

// middlewareObservability traces, measures and logs every request. Field
// masking is done by the default logger, so headers and bodies are handed to
// it as attributes it can inspect.
func middlewareObservability(cfg config.Config, ins instrument.Instrumentation) Middleware {
	logBody := cfg != nil && cfg.GetBool("app.server.log_body")
	tracer := ins.Tracer("http.server")
	hm := newHTTPMetrics(ins.Meter("http.server"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			route := routeOf(r)

			ctx, span := tracer.Start(r.Context(), r.Method+" "+route,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					semconv.HTTPRequestMethodKey.String(r.Method),
					semconv.HTTPRouteKey.String(route),
					semconv.ServerAddressKey.String(r.Host),
					semconv.UserAgentOriginalKey.String(r.UserAgent()),
				),
			)
			defer span.End()
			r = r.WithContext(ctx)

			reqAttrs := []any{"method", r.Method, "path", route, "uri", r.RequestURI, headersAttr(r.Header)}
			if logBody {
				reqAttrs = append(reqAttrs, bodyAttr(r.Header.Get("Content-Type"), peekBody(r)))
			}
			slog.InfoContext(ctx, "request received", reqAttrs...)

			rec := &recorder{ResponseWriter: w}
			rec.capture = logBody
			next.ServeHTTP(rec, r)

			elapsed := time.Since(start)
			status := rec.code()
			attrs := []attribute.KeyValue{
				semconv.HTTPRequestMethodKey.String(r.Method),
				semconv.HTTPRouteKey.String(route),
				semconv.HTTPResponseStatusCodeKey.Int(status),
			}
			span.SetAttributes(attrs...)
			span.SetAttributes(semconv.HTTPResponseBodySizeKey.Int(rec.size))
			switch {
			case rec.err != nil && status >= http.StatusInternalServerError:
				span.RecordError(rec.err)
				span.SetStatus(codes.Error, rec.err.Error())
			case status >= http.StatusInternalServerError:
				span.SetStatus(codes.Error, http.StatusText(status))
			case rec.err != nil:
				span.RecordError(rec.err)
			}
			hm.record(r, elapsed, attrs)

			respAttrs := []any{"method", r.Method, "path", route, "status", status, "bytes", rec.size, "latency_ms", elapsed.Milliseconds()}
			if logBody && rec.body.Len() > 0 {
				respAttrs = append(respAttrs, bodyAttr(rec.Header().Get("Content-Type"), rec.body.Bytes()))
			}
			slog.InfoContext(ctx, "response sent", respAttrs...)
		})
	}
}

func routeOf(r *http.Request) string {
	if p := httprouter.ParamsFromContext(r.Context()).MatchedRoutePath(); p != "" {
		return p
	}
	return r.URL.Path
}

func headersAttr(h http.Header) slog.Attr {
	attrs := make([]any, 0, len(h))
	for k, v := range h {
		attrs = append(attrs, slog.String(strings.ToLower(k), strings.Join(v, ", ")))
	}
	return slog.Group("headers", attrs...)
}

// peekBody reads at most bodyLogLimit bytes and restores the request body.
func peekBody(r *http.Request) []byte {
	if r.Body == nil || r.Body == http.NoBody {
		return nil
	}

	head, err := io.ReadAll(io.LimitReader(r.Body, bodyLogLimit))
	r.Body = struct {
		io.Reader
		io.Closer
	}{io.MultiReader(bytes.NewReader(head), r.Body), r.Body}
	if err != nil {
		return nil
	}
	return head
}

func bodyAttr(contentType string, body []byte) slog.Attr {
	if len(body) == 0 {
		return slog.Attr{}
	}

	mediaType, _, _ := mime.ParseMediaType(contentType)
	switch {
	case json.Valid(body):
		return slog.Any("body", json.RawMessage(body))
	case mediaType == "application/x-www-form-urlencoded":
		values, err := url.ParseQuery(string(body))
		if err != nil {
			break
		}
		attrs := make([]any, 0, len(values))
		for k := range values {
			attrs = append(attrs, slog.String(k, values.Get(k)))
		}
		return slog.Group("body", attrs...)
	case mediaType == "application/json":
		return slog.String("body", "<truncated json>")
	}
	if mediaType == "" {
		mediaType = "unknown"
	}
	return slog.String("body", "<omitted "+mediaType+">")
}
