package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/nfl-predictor-web/internal/app/games"
	"github.com/preston-bernstein/nfl-predictor-web/internal/app/predictor"
	"github.com/preston-bernstein/nfl-predictor-web/internal/config"
	httpserver "github.com/preston-bernstein/nfl-predictor-web/internal/http"
	"github.com/preston-bernstein/nfl-predictor-web/internal/http/handlers"
	"github.com/preston-bernstein/nfl-predictor-web/internal/http/middleware"
	"github.com/preston-bernstein/nfl-predictor-web/internal/logging"
	"github.com/preston-bernstein/nfl-predictor-web/internal/metrics"
	"github.com/preston-bernstein/nfl-predictor-web/internal/providers"
	"github.com/preston-bernstein/nfl-predictor-web/internal/views"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg              config.Config
	logger           *slog.Logger
	metrics          *metrics.Recorder
	predictorService *predictor.Service
	gamesService     *games.Service
	httpServer       httpServer
	metricsServer    httpServer
	metricsStop      func(context.Context) error
}

// New constructs a server talking to the configured prediction service.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.DataProvider) *Server {
	return newServerWithMetrics(cfg, logger, provider, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.DataProvider, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	if provider == nil {
		provider = newProviderFactory(logger, recorder).build(cfg)
	} else {
		provider = providers.NewRetryingProvider(provider, logger, recorder, normalizeProviderName(cfg.Provider, provider), cfg.Predictor.RetryAttempts, 0)
	}
	predictorSvc, gamesSvc := buildServices(provider)
	httpSrv := buildHTTPServer(cfg, predictorSvc, gamesSvc, logger, recorder)

	return &Server{
		cfg:              cfg,
		logger:           logger,
		metrics:          recorder,
		predictorService: predictorSvc,
		gamesService:     gamesSvc,
		httpServer:       httpSrv,
		metricsServer:    metricsSrv,
		metricsStop:      metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
	}
}

func buildServices(provider providers.DataProvider) (*predictor.Service, *games.Service) {
	return predictor.NewService(provider), games.NewService(provider)
}

func buildHTTPServer(cfg config.Config, predictorSvc *predictor.Service, gamesSvc *games.Service, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	handler := handlers.NewHandler(predictorSvc, gamesSvc, views.MustNewRenderer(), logger)
	router := httpserver.NewRouter(handler, cfg.CORS)
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the HTTP and metrics servers, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	if s.logger != nil {
		s.logger.Info("http server starting",
			slog.String("addr", s.httpServer.Addr()),
			slog.String("predictor_base_url", s.cfg.Predictor.BaseURL),
		)
	}
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	if s.logger != nil {
		s.logger.Info("metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
