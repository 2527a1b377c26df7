package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/RecipeBox_Go/internal/catalog"
	"github.com/osse101/RecipeBox_Go/internal/customrecipe"
	"github.com/osse101/RecipeBox_Go/internal/favorites"
	"github.com/osse101/RecipeBox_Go/internal/handler"
	"github.com/osse101/RecipeBox_Go/internal/logger"
	"github.com/osse101/RecipeBox_Go/internal/metrics"
	"github.com/osse101/RecipeBox_Go/internal/sse"
)

// Options configures the HTTP surface
type Options struct {
	Addr               string
	Version            string
	CORSAllowedOrigins []string
	MaxRequestBytes    int64
}

// Services are the application services exposed over HTTP
type Services struct {
	Catalog       catalog.Service
	Favorites     favorites.Service
	CustomRecipes customrecipe.Service
	Storage       handler.HealthChecker
	Hub           *sse.Hub
}

type Server struct {
	httpServer *http.Server
	router     chi.Router
}

// NewServer creates a new Server instance
func NewServer(opts Options, svc Services) *Server {
	if opts.MaxRequestBytes <= 0 {
		opts.MaxRequestBytes = DefaultMaxRequestBytes
	}

	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(CORSMiddleware(opts.CORSAllowedOrigins))
	r.Use(RequestSizeLimitMiddleware(opts.MaxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(svc.Storage))
	r.Get("/version", handler.HandleVersion(opts.Version))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// Store change stream
	r.Get("/events", sse.Handler(svc.Hub))

	catalogHandler := handler.NewCatalogHandler(svc.Catalog)
	favoritesHandler := handler.NewFavoritesHandler(svc.Favorites, svc.Catalog, svc.CustomRecipes)
	customHandler := handler.NewCustomRecipeHandler(svc.CustomRecipes)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/categories", catalogHandler.HandleCategories)

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", catalogHandler.HandleRecipes)
			r.Get("/{id}", catalogHandler.HandleRecipe)
		})

		r.Route("/favorites", func(r chi.Router) {
			r.Get("/", favoritesHandler.HandleList)
			r.Get("/status", favoritesHandler.HandleStatus)
			r.Post("/toggle", favoritesHandler.HandleToggle)
			r.Post("/reload", favoritesHandler.HandleReload)
		})

		r.Route("/custom-recipes", func(r chi.Router) {
			r.Get("/", customHandler.HandleList)
			r.Post("/", customHandler.HandleCreate)
			r.Post("/reload", customHandler.HandleReload)
			r.Put("/index/{index}", customHandler.HandleSaveAt)
			r.Delete("/index/{index}", customHandler.HandleDeleteAt)
			r.Get("/{id}", customHandler.HandleGet)
			r.Put("/{id}", customHandler.HandleUpdate)
			r.Delete("/{id}", customHandler.HandleDelete)
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              opts.Addr,
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		router: r,
	}
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush keeps the event stream working through the wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		// Honor a client supplied request ID so logs can be correlated across hops
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)

		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAuthorization) || strings.EqualFold(k, HeaderCookie) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server. It returns nil once Stop has been called.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
