package api

import (
	"net/http"

	"github.com/garnizeh/watchrepair/internal/config"
	"github.com/garnizeh/watchrepair/internal/validation"
	"github.com/garnizeh/watchrepair/pkg/repository"
	"github.com/gorilla/mux"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, store repository.Store, v *validation.Validator) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware(cfg.CORSOrigin))
	r.Use(RecoveryMiddleware)

	// Create handlers
	systemHandler := &SystemHandler{}
	catalogHandler := NewCatalogHandler(store, store, store)
	requestsHandler := NewRequestsHandler(store, store, v)

	// Open endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")

	apiRouter := r.PathPrefix("/api").Subrouter()

	// Catalog endpoints
	apiRouter.HandleFunc("/watchmakers", catalogHandler.ListWatchmakers).Methods("GET")
	apiRouter.HandleFunc("/watchmakers/{id:[0-9]+}", catalogHandler.GetWatchmaker).Methods("GET")
	apiRouter.HandleFunc("/services", catalogHandler.ListServices).Methods("GET")
	apiRouter.HandleFunc("/services/{id:[0-9]+}", catalogHandler.GetService).Methods("GET")
	apiRouter.HandleFunc("/gallery", catalogHandler.ListGallery).Methods("GET")
	apiRouter.HandleFunc("/gallery/{id:[0-9]+}", catalogHandler.GetGalleryItem).Methods("GET")

	// Quote and contact endpoints
	apiRouter.HandleFunc("/quotes", requestsHandler.CreateQuote).Methods("POST")
	apiRouter.HandleFunc("/quotes", requestsHandler.ListQuotes).Methods("GET")
	apiRouter.HandleFunc("/quotes/{id:[0-9]+}", requestsHandler.GetQuote).Methods("GET")
	apiRouter.HandleFunc("/quotes/{id:[0-9]+}/status", requestsHandler.UpdateQuoteStatus).Methods("PATCH")
	apiRouter.HandleFunc("/contacts", requestsHandler.CreateContact).Methods("POST")
	apiRouter.HandleFunc("/contacts", requestsHandler.ListContacts).Methods("GET")
	apiRouter.HandleFunc("/contacts/{id:[0-9]+}", requestsHandler.GetContact).Methods("GET")
	apiRouter.HandleFunc("/contacts/{id:[0-9]+}/status", requestsHandler.UpdateContactStatus).Methods("PATCH")

	// Router-level middleware does not run for unmatched routes, and a
	// subrouter answers its own misses. A preflight request matches a path but
	// not its method, so CORS answers it from the 405 handler.
	notFound, notAllowed := fallbackHandlers(cfg.CORSOrigin)
	r.NotFoundHandler = notFound
	r.MethodNotAllowedHandler = notAllowed
	apiRouter.NotFoundHandler = notFound
	apiRouter.MethodNotAllowedHandler = notAllowed

	return r
}

func fallbackHandlers(origin string) (notFound, notAllowed http.Handler) {
	wrap := func(status int, msg string) http.Handler {
		return RequestIDMiddleware(LoggingMiddleware(CORSMiddleware(origin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeMessage(w, msg, status)
		}))))
	}
	return wrap(http.StatusNotFound, "Not found"), wrap(http.StatusMethodNotAllowed, "Method not allowed")
}
