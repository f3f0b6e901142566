package devtools

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/pact/internal/errors"
	"github.com/vango-dev/pact/pkg/dom"
	"github.com/vango-dev/pact/pkg/runtime"
)

// Dispatcher is implemented by hosts that can invoke handler properties.
type Dispatcher interface {
	Dispatch(n dom.Node, event, value string) error
}

// Server is the devtools HTTP server for one root.
type Server struct {
	mu   sync.Mutex
	root *runtime.Root

	history  *History
	hub      *Hub
	router   *chi.Mux
	gatherer prometheus.Gatherer
	logger   *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithGatherer sets the metrics source for /metrics.
// Default: prometheus.DefaultGatherer
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithHistorySize sets how many pass reports are kept for replay.
func WithHistorySize(n int) Option {
	return func(s *Server) {
		s.history = NewHistory(n)
	}
}

// New creates a devtools server. Attach a root before serving tree routes.
func New(opts ...Option) *Server {
	s := &Server{}
	for _, opt := range opts {
		opt(s)
	}
	if s.history == nil {
		s.history = NewHistory(100)
	}
	if s.gatherer == nil {
		s.gatherer = prometheus.DefaultGatherer
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.hub = NewHub(s.history)
	s.router = s.routes()
	return s
}

func (s *Server) routes() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/tree", s.handleTree)
	r.Get("/tree.json", s.handleTreeJSON)
	r.Post("/dispatch", s.handleDispatch)
	r.Get("/history", s.handleHistory)
	r.Get("/ws", s.handleWS)
	r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	return r
}

// Middleware returns pass middleware that publishes a report of every pass.
func (s *Server) Middleware() runtime.Middleware {
	return func(next runtime.PassFunc) runtime.PassFunc {
		return func(ctx context.Context, info *runtime.PassInfo) error {
			err := next(ctx, info)
			s.hub.Publish(NewReport(info, err))
			return err
		}
	}
}

// Attach sets the root served by the tree and dispatch routes.
func (s *Server) Attach(root *runtime.Root) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.root = root
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// History returns the pass report buffer.
func (s *Server) History() *History {
	return s.history
}

// Hub returns the websocket hub.
func (s *Server) Hub() *Hub {
	return s.hub
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("devtools listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
		s.hub.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// withRoot runs fn with the attached root under the server mutex.
func (s *Server) withRoot(w http.ResponseWriter, fn func(root *runtime.Root)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.root == nil || !s.root.Mounted() {
		http.Error(w, "no root attached", http.StatusServiceUnavailable)
		return
	}
	fn(s.root)
}

func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	s.withRoot(w, func(root *runtime.Root) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := dom.WriteMarkup(w, root.Container()); err != nil {
			s.logger.Warn("write tree", "error", err)
		}
	})
}

func (s *Server) handleTreeJSON(w http.ResponseWriter, r *http.Request) {
	s.withRoot(w, func(root *runtime.Root) {
		writeJSON(w, http.StatusOK, dom.Snap(root.Container()))
	})
}

// dispatchResponse is the body of a successful /dispatch.
type dispatchResponse struct {
	Passes int    `json:"passes"`
	Markup string `json:"markup"`
	Error  string `json:"error,omitempty"`
}

func (s *Server) handleDispatch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("E140").Wrap(err))
		return
	}
	path, err := dom.ParsePath(r.FormValue("path"))
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("E140").WithDetailf("bad path %q", r.FormValue("path")))
		return
	}
	event := r.FormValue("event")
	if event == "" {
		writeError(w, http.StatusBadRequest, errors.New("E140").WithDetail("event is required"))
		return
	}

	s.withRoot(w, func(root *runtime.Root) {
		target, ok := dom.NodeAt(root.Container(), path)
		if !ok {
			writeError(w, http.StatusNotFound, errors.New("E006").WithDetailf("path %q", dom.FormatPath(path)))
			return
		}
		d, ok := root.Host().(Dispatcher)
		if !ok {
			http.Error(w, "host cannot dispatch events", http.StatusNotImplemented)
			return
		}

		before := root.Passes()
		if err := d.Dispatch(target, event, r.FormValue("value")); err != nil {
			writeError(w, http.StatusUnprocessableEntity, err)
			return
		}

		resp := dispatchResponse{
			Passes: root.Passes(),
			Markup: dom.InnerMarkup(root.Container()),
		}
		if root.Passes() > before && root.Err() != nil {
			resp.Error = root.Err().Error()
		}
		s.logger.Debug("dispatched", "path", dom.FormatPath(path), "event", event, "passes", resp.Passes-before)
		writeJSON(w, http.StatusOK, resp)
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	since, ok := parseSince(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.history.Since(since))
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	since, ok := parseSince(w, r)
	if !ok {
		return
	}
	s.hub.Serve(w, r, since)
}

func parseSince(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	raw := r.URL.Query().Get("since")
	if raw == "" {
		return 0, true
	}
	since, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("E140").WithDetailf("bad since %q", raw))
		return 0, false
	}
	return since, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	pe := errors.FromError(err, "E140")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(pe.FormatJSON()))
}
