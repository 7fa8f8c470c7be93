package http

import (
	nethttp "net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/preston-bernstein/nfl-predictor-web/internal/config"
	"github.com/preston-bernstein/nfl-predictor-web/internal/http/handlers"
	"github.com/preston-bernstein/nfl-predictor-web/internal/views"
)

// NewRouter registers the page, API, and static routes.
func NewRouter(handler *handlers.Handler, corsCfg config.CORSConfig) nethttp.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = nethttp.HandlerFunc(handler.NotFound)
	r.MethodNotAllowedHandler = nethttp.HandlerFunc(handler.MethodNotAllowed)

	r.HandleFunc("/", handler.Home).Methods(nethttp.MethodGet)
	r.HandleFunc("/predict", handler.Predict).Methods(nethttp.MethodPost)
	r.HandleFunc("/games", handler.Games).Methods(nethttp.MethodGet)
	r.HandleFunc("/how", handler.HowItWorks).Methods(nethttp.MethodGet)
	r.HandleFunc("/health", handler.Health).Methods(nethttp.MethodGet)
	r.PathPrefix("/static/").Handler(views.StaticHandler()).Methods(nethttp.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(newCORS(corsCfg).Handler)
	api.HandleFunc("/teams", handler.APITeams).Methods(nethttp.MethodGet, nethttp.MethodOptions)
	api.HandleFunc("/predict", handler.APIPredict).Methods(nethttp.MethodPost, nethttp.MethodOptions)
	api.HandleFunc("/games", handler.APIGames).Methods(nethttp.MethodGet, nethttp.MethodOptions)

	return r
}

// newCORS answers preflight requests itself; OPTIONS never reaches the API handlers.
func newCORS(cfg config.CORSConfig) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodPost, nethttp.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
	})
}
