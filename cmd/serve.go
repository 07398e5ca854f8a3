package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/sells-group/country-codes/internal/config"
	"github.com/sells-group/country-codes/internal/countrycode"
)

const shutdownTimeout = 10 * time.Second

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve read-only code lookups over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		srvCfg := cfg.Server
		if servePort != 0 {
			srvCfg.Port = servePort
		}
		if err := (&config.Config{Server: srvCfg}).Validate("serve"); err != nil {
			return err
		}

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", srvCfg.Port),
			Handler:           buildRouter(countrycode.Default(), srvCfg),
			ReadHeaderTimeout: 5 * time.Second,
		}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			zap.L().Info("starting server", zap.Int("port", srvCfg.Port))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return eris.Wrap(err, "server listen")
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			zap.L().Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return eris.Wrap(srv.Shutdown(shutdownCtx), "server shutdown")
		})

		return g.Wait()
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}

// buildRouter wires the lookup endpoints. /health is exempt from rate limiting.
func buildRouter(r *countrycode.Resolver, sc config.ServerConfig) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(requestLogger)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: sc.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		MaxAge:         300,
	}))

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	router.Group(func(api chi.Router) {
		if sc.RateLimit > 0 {
			api.Use(rateLimit(rate.NewLimiter(rate.Limit(sc.RateLimit), sc.RateBurst)))
		}
		api.Get("/country-name", countryNameHandler(r))
		api.Get("/countries", countriesHandler(r))
	})

	return router
}

func countryNameHandler(r *countrycode.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		code := countrycode.Normalize(req.URL.Query().Get("code"))
		if code == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "code is required"})
			return
		}

		name, err := r.Resolve(code)
		if err != nil {
			var uce *countrycode.UnknownCodeError
			if errors.As(err, &uce) {
				writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown code", "code": uce.Code})
				return
			}
			zap.L().Error("country name lookup failed", zap.String("code", code), zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"code": code, "name": name})
	}
}

func countriesHandler(r *countrycode.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		kind := req.URL.Query().Get("kind")
		if kind == "" {
			writeJSON(w, http.StatusOK, r.All())
			return
		}

		k, err := countrycode.ParseKind(kind)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid kind"})
			return
		}
		entries := r.Filter(k)
		if entries == nil {
			entries = []countrycode.Entry{}
		}
		writeJSON(w, http.StatusOK, entries)
	}
}

func rateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		zap.L().Debug("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("write json response", zap.Error(err))
	}
}
