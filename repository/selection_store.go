package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"car-loan-advisor/domain"
)

// selectionKeyPrefix is the well-known key under which a selected
// recommendation travels between the summary list and the full-detail
// view. The blob is opaque hand-off state, not a schema of its own.
const selectionKeyPrefix = "selectedLoanRecommendationDetails:"

const selectionTTL = 30 * time.Minute

var (
	ErrSelectionNotFound = errors.New("no se encontró la recomendación seleccionada")
	ErrInvalidSelection  = errors.New("la recomendación seleccionada no es válida")
)

// SelectionStore passes one selected recommendation between two
// independently rendered views as a serialized JSON blob keyed by an
// opaque token.
type SelectionStore struct {
	cache CacheRepository
}

func NewSelectionStore(cache CacheRepository) *SelectionStore {
	return &SelectionStore{cache: cache}
}

// Put validates and stores the recommendation, returning the hand-off
// token.
func (s *SelectionStore) Put(rec domain.Recommendation) (string, error) {
	if rec.Rank <= 0 || rec.BankName == "" {
		return "", ErrInvalidSelection
	}
	blob, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("serializando la recomendación: %w", err)
	}
	token := uuid.NewString()
	if err := s.cache.Set(selectionKeyPrefix+token, string(blob), selectionTTL); err != nil {
		return "", err
	}
	return token, nil
}

// Get retrieves and validates the recommendation for a token.
func (s *SelectionStore) Get(token string) (domain.Recommendation, error) {
	blob, ok := s.cache.Get(selectionKeyPrefix + token)
	if !ok {
		return domain.Recommendation{}, ErrSelectionNotFound
	}
	var rec domain.Recommendation
	if err := json.Unmarshal([]byte(blob), &rec); err != nil {
		return domain.Recommendation{}, fmt.Errorf("%w: %v", ErrInvalidSelection, err)
	}
	if rec.Rank <= 0 || rec.BankName == "" {
		return domain.Recommendation{}, ErrInvalidSelection
	}
	return rec, nil
}
