package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RecommendationHandler is the handler surface the router needs; the concrete
// implementation lives in server/handlers.
type RecommendationHandler interface {
	GetRecommendations(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	recommendationHandler RecommendationHandler
	router                *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	recommendationHandler RecommendationHandler,
	router *mux.Router) *Router {
	return &Router{
		recommendationHandler: recommendationHandler,
		router:                router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects a JSON RecommendationRequest body
	r.router.HandleFunc("/v1/dates/recommendations", r.recommendationHandler.GetRecommendations).Methods("POST")

	r.router.HandleFunc("/ping", r.recommendationHandler.Ping).Methods("GET")
}
