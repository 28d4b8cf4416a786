package repository

import (
	"errors"
	"testing"

	"car-loan-advisor/domain"
)

func sampleRecommendation() domain.Recommendation {
	return domain.Recommendation{
		Rank:     1,
		BankName: "Island Credit Union",
		LoanDetails: domain.LoanDetails{
			LoanAmount:   8000,
			Currency:     "JMD",
			InterestRate: 8.25,
			LoanTerm:     5,
		},
	}
}

func TestSelectionStore_RoundTrip(t *testing.T) {

	store := NewSelectionStore(NewMockCache())

	token, err := store.Put(sampleRecommendation())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}

	rec, err := store.Get(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.BankName != "Island Credit Union" || rec.Rank != 1 {
		t.Errorf("unexpected recommendation: %+v", rec)
	}
}

func TestSelectionStore_NotFound(t *testing.T) {

	store := NewSelectionStore(NewMockCache())

	_, err := store.Get("missing-token")
	if !errors.Is(err, ErrSelectionNotFound) {
		t.Errorf("expected ErrSelectionNotFound, got %v", err)
	}
}

func TestSelectionStore_RejectsInvalidRecommendation(t *testing.T) {

	store := NewSelectionStore(NewMockCache())

	_, err := store.Put(domain.Recommendation{Rank: 0, BankName: ""})
	if !errors.Is(err, ErrInvalidSelection) {
		t.Errorf("expected ErrInvalidSelection, got %v", err)
	}
}

func TestSelectionStore_RejectsCorruptBlob(t *testing.T) {

	cache := NewMockCache()
	cache.Data[selectionKeyPrefix+"bad"] = "{not json"

	store := NewSelectionStore(cache)

	_, err := store.Get("bad")
	if !errors.Is(err, ErrInvalidSelection) {
		t.Errorf("expected ErrInvalidSelection, got %v", err)
	}
}
