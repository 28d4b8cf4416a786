package service

import (
	"errors"
	"math"

	"car-loan-advisor/domain"
)

// Term bounds are the only hard failures of schedule normalization;
// every other malformed input degrades to zero or carry-forward values.
var (
	ErrInvalidLoanTerm = errors.New("plazo inválido: debe ser mayor a 0")
	ErrLoanTermTooLong = errors.New("plazo inválido: excede el máximo permitido")
)

// NormalizeSchedule turns the model's possibly partial yearly series
// into a complete, contiguous schedule of exactly loanTerm entries.
//
// Years present in the raw data are used as-is (non-numeric fields
// coerced to 0). Missing years are synthesized with zero payments and a
// carried-forward remaining balance: the balance of the nearest earlier
// resolved year, or, before any year resolves, an estimate of the
// original principal reconstructed from the first fully numeric entry.
// Pure function; never mutates its input.
func NormalizeSchedule(raw []domain.RawYearlyEntry, loanTerm int) ([]domain.YearlyOwnershipEntry, error) {
	if loanTerm <= 0 {
		return nil, ErrInvalidLoanTerm
	}
	if loanTerm > MaxLoanTermYears {
		return nil, ErrLoanTermTooLong
	}

	carry := 0.0
	if first, ok := firstValidEntry(raw); ok {
		carry = first.PrincipalPaid.Value + first.RemainingBalance.Value
	}

	schedule := make([]domain.YearlyOwnershipEntry, 0, loanTerm)
	for year := 1; year <= loanTerm; year++ {
		entry, found := findYear(raw, year)
		if !found {
			schedule = append(schedule, domain.YearlyOwnershipEntry{
				Year:             year,
				RemainingBalance: carry,
			})
			continue
		}
		normalized := domain.YearlyOwnershipEntry{
			Year:             year,
			PrincipalPaid:    entry.PrincipalPaid.Value,
			InterestPaid:     entry.InterestPaid.Value,
			RemainingBalance: entry.RemainingBalance.Value,
		}
		schedule = append(schedule, normalized)
		carry = normalized.RemainingBalance
	}
	return schedule, nil
}

// firstValidEntry finds the first entry whose three monetary fields all
// decoded as numbers; it anchors the pre-gap balance estimate.
func firstValidEntry(raw []domain.RawYearlyEntry) (domain.RawYearlyEntry, bool) {
	for _, e := range raw {
		if e.PrincipalPaid.Valid && e.InterestPaid.Valid && e.RemainingBalance.Valid {
			return e, true
		}
	}
	return domain.RawYearlyEntry{}, false
}

func findYear(raw []domain.RawYearlyEntry, year int) (domain.RawYearlyEntry, bool) {
	for _, e := range raw {
		if e.Year.Valid && int(math.Round(e.Year.Value)) == year {
			return e, true
		}
	}
	return domain.RawYearlyEntry{}, false
}
