package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"car-loan-advisor/domain"
	"car-loan-advisor/repository"
)

// SelectionHandler moves one chosen recommendation between the summary
// list and the full-detail view through the hand-off store.
type SelectionHandler struct {
	store *repository.SelectionStore
}

func NewSelectionHandler(store *repository.SelectionStore) *SelectionHandler {
	return &SelectionHandler{store: store}
}

type selectionPutResponse struct {
	Token string `json:"token"`
}

// HandleSelection serves POST (store) and GET ?token= (retrieve).
func (h *SelectionHandler) HandleSelection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.put(w, r)
	case http.MethodGet:
		h.get(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *SelectionHandler) put(w http.ResponseWriter, r *http.Request) {
	var rec domain.Recommendation
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	token, err := h.store.Put(rec)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidSelection) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("Error storing selection: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, selectionPutResponse{Token: token})
}

func (h *SelectionHandler) get(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "token is required", http.StatusBadRequest)
		return
	}

	rec, err := h.store.Get(token)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSelectionNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, repository.ErrInvalidSelection):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			log.Printf("Error loading selection: %v", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, rec)
}

// writeJSON buffers the encoding so a marshal failure can still become
// a clean 500 instead of a half-written body.
func writeJSON(w http.ResponseWriter, payload any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}
