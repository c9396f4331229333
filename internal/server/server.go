// Package server hosts the browser preview for chart development.
//
// The index page reloads the chart images on every window resize, so
// dragging the browser edge exercises the full measure and rebuild
// cycle. Chart endpoints measure a fresh container and render a
// brand-new canvas per request; nothing is cached between requests.
package server

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pillarchart/pillar/pkg/barchart"
	"github.com/pillarchart/pillar/pkg/errors"
	chartio "github.com/pillarchart/pillar/pkg/io"
	"github.com/pillarchart/pillar/pkg/observability"
	"github.com/pillarchart/pillar/pkg/pipeline"
	"github.com/pillarchart/pillar/pkg/raster"
	"github.com/pillarchart/pillar/pkg/timeline"
	"github.com/pillarchart/pillar/pkg/vector"
)

// Server hosts the preview endpoints.
type Server struct {
	logger *log.Logger
	cfg    chartio.FileConfig
	bars   []barchart.Bar
	tracks []timeline.Track
}

// Option configures a Server.
type Option func(*Server)

// WithLogger routes request and render logs to l. A nil logger keeps
// the discard default.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithConfig replaces the default chart configuration.
func WithConfig(cfg chartio.FileConfig) Option {
	return func(s *Server) { s.cfg = cfg }
}

// WithBars sets the bar chart preview data.
func WithBars(bars []barchart.Bar) Option {
	return func(s *Server) {
		if len(bars) > 0 {
			s.bars = bars
		}
	}
}

// WithTracks sets the timeline preview data.
func WithTracks(tracks []timeline.Track) Option {
	return func(s *Server) {
		if len(tracks) > 0 {
			s.tracks = tracks
		}
	}
}

// New creates a preview server. Charts without explicit data fall back
// to built-in sample data, so the harness works out of the box.
func New(opts ...Option) *Server {
	s := &Server{
		logger: log.New(io.Discard),
		cfg:    chartio.DefaultFileConfig(),
		bars:   sampleBars(),
		tracks: sampleTracks(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the preview routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.observe)
	r.Get("/", s.handleIndex)
	r.Get("/chart/bar", func(w http.ResponseWriter, r *http.Request) {
		s.serveChart(w, r, barchart.Kind)
	})
	r.Get("/chart/timeline", func(w http.ResponseWriter, r *http.Request) {
		s.serveChart(w, r, timeline.Kind)
	})
	return r
}

// Serve listens on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Handler()}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	s.logger.Info("preview server listening", "addr", addr)

	select {
	case err := <-errc:
		if err != nil && err != http.ErrServerClosed {
			return errors.Wrap(errors.ErrCodeIO, err, "preview server on %s", addr)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("preview server shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) serveChart(w http.ResponseWriter, r *http.Request, kind string) {
	width, err := queryFloat(r, "width", pipeline.DefaultWidth)
	if err != nil {
		s.httpError(w, err, http.StatusBadRequest)
		return
	}
	height, err := queryFloat(r, "height", pipeline.DefaultHeight)
	if err != nil {
		s.httpError(w, err, http.StatusBadRequest)
		return
	}
	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		s.httpError(w, err, http.StatusBadRequest)
		return
	}

	canvas, err := s.buildCanvas(kind, width, height)
	if err != nil {
		s.httpError(w, err, statusFor(err))
		return
	}

	switch format {
	case pipeline.FormatSVG:
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Write(canvas.SVG())
	case pipeline.FormatPNG:
		png, err := raster.ToPNG(canvas)
		if err != nil {
			s.httpError(w, err, http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write(png)
	}
}

// buildCanvas measures a fresh container and renders a brand-new chart,
// the same path a browser resize takes.
func (s *Server) buildCanvas(kind string, width, height float64) (*vector.Canvas, error) {
	container := vector.Fixed{W: width, H: height}

	switch kind {
	case barchart.Kind:
		chart, err := barchart.New(container, s.cfg.Barchart, barchart.WithLogger(s.logger))
		if err != nil {
			return nil, err
		}
		if err := chart.SetData(s.bars); err != nil {
			return nil, err
		}
		return chart.Canvas()
	case timeline.Kind:
		chart, err := timeline.New(container, s.cfg.Timeline, timeline.WithLogger(s.logger))
		if err != nil {
			return nil, err
		}
		if err := chart.SetData(s.tracks); err != nil {
			return nil, err
		}
		return chart.Canvas()
	}
	return nil, errors.New(errors.ErrCodeInvalidKind, "invalid kind %q", kind)
}

func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), duration)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", duration)
	})
}

func (s *Server) httpError(w http.ResponseWriter, err error, status int) {
	s.logger.Error("request failed", "status", status, "err", err)
	http.Error(w, errors.UserMessage(err), status)
}

// statusFor maps build errors to HTTP statuses: caller mistakes are
// 400s, render failures 500s.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeRenderFailed, errors.ErrCodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func queryFloat(r *http.Request, key string, def float64) (float64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.New(errors.ErrCodeNotMeasurable, "%s %q is not a number", key, raw)
	}
	return v, nil
}
