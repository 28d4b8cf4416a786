package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"car-loan-advisor/domain"
	"car-loan-advisor/service"
)

type AdvisorHandler struct {
	service *service.AdvisorService
}

func NewAdvisorHandler(service *service.AdvisorService) *AdvisorHandler {
	return &AdvisorHandler{service: service}
}

// GetRecommendations handles POST /advisor/recommendations.
func (h *AdvisorHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Validar Content-Type
	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var input domain.UserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Printf("Error decoding request body: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if input.Vehicle.Cost <= 0 {
		http.Error(w, "vehicle cost must be greater than 0", http.StatusBadRequest)
		return
	}
	if input.UserContext.Country == "" {
		http.Error(w, "country is required", http.StatusBadRequest)
		return
	}

	result, err := h.service.FetchRecommendations(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoAPIKey):
			http.Error(w, "advisor is not configured", http.StatusServiceUnavailable)
		case errors.Is(err, service.ErrMalformedResponse):
			log.Printf("Malformed advisor response: %v", err)
			http.Error(w, "the advisor returned an unusable response, please try again", http.StatusBadGateway)
		default:
			log.Printf("Advisor call failed: %v", err)
			http.Error(w, err.Error(), http.StatusBadGateway)
		}
		return
	}

	// Codificar JSON en buffer primero para evitar escribir header si falla
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(result); err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}
