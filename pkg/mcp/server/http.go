package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	// Packages
	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

///////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// Path of the streamable HTTP endpoint
	PathMCP = "/mcp"

	// Path of the health check
	PathHealth = "/healthz"

	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
)

///////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Handler returns an HTTP handler serving the tools at PathMCP
// with a health check at PathHealth
func (server *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(server.logRequests)

	r.Get(PathHealth, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status":  "ok",
			"name":    server.name,
			"version": server.version,
		})
	})
	r.Handle(PathMCP, mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server.server
	}, nil))

	return r
}

// ListenAndServe serves HTTP on addr until the context is done,
// then shuts down gracefully
func (server *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	server.log.Info().Str("executor", server.name).Str("addr", addr).Msg("serving on http")

	select {
	case <-ctx.Done():
		server.log.Info().Str("executor", server.name).Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

///////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (server *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		server.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("size", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
