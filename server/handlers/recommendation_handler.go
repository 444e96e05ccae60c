package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"dp-server/models"
	services "dp-server/service"
)

// errorResponse is the wire shape for surfaced failures.
type errorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type RecommendationHandler struct {
	recommendationService *services.RecommendationService
}

func NewRecommendationHandler(recommendationService *services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService}
}

// GetRecommendations handles POST /v1/dates/recommendations
func (h *RecommendationHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	var req models.RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, string(services.KindInvalidInput), "request body is not valid JSON")
		return
	}

	resp, err := h.recommendationService.Recommend(r.Context(), req)
	if err != nil {
		log.Println("Error computing recommendations:", err)
		switch services.KindOf(err) {
		case services.KindInvalidInput:
			writeError(w, http.StatusBadRequest, string(services.KindInvalidInput), err.Error())
		case services.KindUpstreamUnavailable:
			writeError(w, http.StatusBadGateway, string(services.KindUpstreamUnavailable), err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "Internal", "internal server error")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Println("Error encoding response:", err)
	}
}

// Ping handles GET /ping
func (h *RecommendationHandler) Ping(w http.ResponseWriter, r *http.Request) {
	log.Println("Pinging server")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "pong"})
}

func writeError(w http.ResponseWriter, status int, kind, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Kind: kind, Message: message})
}
