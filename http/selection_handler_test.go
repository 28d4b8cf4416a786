package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"car-loan-advisor/domain"
	"car-loan-advisor/repository"
)

func newSelectionHandler() *SelectionHandler {
	return NewSelectionHandler(repository.NewSelectionStore(repository.NewMockCache()))
}

func TestHandleSelection_RoundTrip(t *testing.T) {

	handler := newSelectionHandler()

	body := []byte(`{
		"rank": 1,
		"bankName": "Island Credit Union",
		"productName": "Drive Easy",
		"loanDetails": {"loanAmount": 8000, "currency": "JMD", "interestRate": 8.25, "loanTerm": 5, "estimatedMonthlyPayment": 163.2}
	}`)

	req := httptest.NewRequest(http.MethodPost, "/loan/selection", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	handler.HandleSelection(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}
	var put selectionPutResponse
	if err := json.NewDecoder(w.Body).Decode(&put); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}

	req = httptest.NewRequest(http.MethodGet, "/loan/selection?token="+put.Token, nil)
	w = httptest.NewRecorder()
	handler.HandleSelection(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}
	var rec domain.Recommendation
	if err := json.NewDecoder(w.Body).Decode(&rec); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if rec.BankName != "Island Credit Union" {
		t.Errorf("unexpected recommendation: %+v", rec)
	}
}

func TestHandleSelection_NotFound(t *testing.T) {

	handler := newSelectionHandler()

	req := httptest.NewRequest(http.MethodGet, "/loan/selection?token=nope", nil)
	w := httptest.NewRecorder()
	handler.HandleSelection(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestHandleSelection_InvalidBody(t *testing.T) {

	handler := newSelectionHandler()

	req := httptest.NewRequest(http.MethodPost, "/loan/selection", bytes.NewBufferString(`{"rank": 0}`))
	w := httptest.NewRecorder()
	handler.HandleSelection(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestHandleSelection_MethodNotAllowed(t *testing.T) {

	handler := newSelectionHandler()

	req := httptest.NewRequest(http.MethodDelete, "/loan/selection", nil)
	w := httptest.NewRecorder()
	handler.HandleSelection(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}
