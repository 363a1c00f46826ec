package http

import (
	"net/http"

	"go-rest-brewery/internal/delivery/http/handler"
	"go-rest-brewery/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Router struct {
	router            *mux.Router
	beerHandler       *handler.BeerHandler
	auditLogHandler   *handler.AuditLogHandler
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

func NewRouter(
	beerHandler *handler.BeerHandler,
	auditLogHandler *handler.AuditLogHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		beerHandler:       beerHandler,
		auditLogHandler:   auditLogHandler,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Beer routes
	api.HandleFunc("/beer", r.beerHandler.ListBeers).Methods(http.MethodGet)
	api.HandleFunc("/beer", r.beerHandler.SaveNewBeer).Methods(http.MethodPost)
	api.HandleFunc("/beer/{id}", r.beerHandler.GetBeerByID).Methods(http.MethodGet)
	api.HandleFunc("/beer/{id}", r.beerHandler.UpdateBeer).Methods(http.MethodPut)
	api.HandleFunc("/beer/{id}", r.beerHandler.DeleteBeer).Methods(http.MethodDelete)
	api.HandleFunc("/beer/{id}/history", r.auditLogHandler.GetBeerHistory).Methods(http.MethodGet)
	api.HandleFunc("/beerUpc/{upc}", r.beerHandler.GetBeerByUpc).Methods(http.MethodGet)

	// API docs
	r.router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	r.router.Use(r.loggingMiddleware.Handle)
	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
