package service

import (
	"encoding/json"
	"reflect"
	"testing"

	"car-loan-advisor/domain"
)

func amt(v float64) domain.Amount {
	return domain.Amount{Value: v, Valid: true}
}

func rawEntry(year int, principal, interest, balance float64) domain.RawYearlyEntry {
	return domain.RawYearlyEntry{
		Year:             amt(float64(year)),
		PrincipalPaid:    amt(principal),
		InterestPaid:     amt(interest),
		RemainingBalance: amt(balance),
	}
}

func TestNormalizeSchedule_CompleteInput(t *testing.T) {

	raw := []domain.RawYearlyEntry{
		rawEntry(1, 1000, 500, 9000),
		rawEntry(2, 1100, 400, 7900),
	}

	schedule, err := NormalizeSchedule(raw, 2)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(schedule) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(schedule))
	}
	for i, e := range schedule {
		if e.Year != i+1 {
			t.Errorf("expected contiguous years, got year %d at index %d", e.Year, i)
		}
	}
	if schedule[1].RemainingBalance != 7900 {
		t.Errorf("expected balance 7900, got %.2f", schedule[1].RemainingBalance)
	}
}

func TestNormalizeSchedule_InvalidTerm(t *testing.T) {

	_, err := NormalizeSchedule(nil, 0)
	if err != ErrInvalidLoanTerm {
		t.Errorf("expected ErrInvalidLoanTerm, got %v", err)
	}

	_, err = NormalizeSchedule(nil, -3)
	if err != ErrInvalidLoanTerm {
		t.Errorf("expected ErrInvalidLoanTerm, got %v", err)
	}
}

func TestNormalizeSchedule_TermAboveMaximum(t *testing.T) {

	_, err := NormalizeSchedule(nil, MaxLoanTermYears+1)
	if err != ErrLoanTermTooLong {
		t.Errorf("expected ErrLoanTermTooLong, got %v", err)
	}

	// El límite mismo sigue siendo válido
	schedule, err := NormalizeSchedule(nil, MaxLoanTermYears)
	if err != nil {
		t.Fatalf("unexpected error at the limit: %v", err)
	}
	if len(schedule) != MaxLoanTermYears {
		t.Errorf("expected %d entries, got %d", MaxLoanTermYears, len(schedule))
	}
}

func TestNormalizeSchedule_GapCarriesForwardBalance(t *testing.T) {

	// Falta el año 2 de un plazo de 3 años
	raw := []domain.RawYearlyEntry{
		rawEntry(1, 1000, 500, 9000),
		rawEntry(3, 1000, 300, 0),
	}

	schedule, err := NormalizeSchedule(raw, 3)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gap := schedule[1]
	if gap.Year != 2 {
		t.Fatalf("expected year 2, got %d", gap.Year)
	}
	if gap.PrincipalPaid != 0 || gap.InterestPaid != 0 {
		t.Errorf("expected zero payments for the synthesized year, got %.2f / %.2f",
			gap.PrincipalPaid, gap.InterestPaid)
	}
	if gap.RemainingBalance != 9000 {
		t.Errorf("expected carried-forward balance 9000, got %.2f", gap.RemainingBalance)
	}
	if schedule[2].RemainingBalance != 0 {
		t.Errorf("terminal balance should stay 0, got %.2f", schedule[2].RemainingBalance)
	}
}

func TestNormalizeSchedule_LeadingGapUsesReconstructedPrincipal(t *testing.T) {

	// El año 1 falta; la primera entrada válida es el año 2, por lo que
	// el saldo inicial se reconstruye como capital + saldo de esa entrada.
	raw := []domain.RawYearlyEntry{
		rawEntry(2, 1100, 400, 7900),
	}

	schedule, err := NormalizeSchedule(raw, 3)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if schedule[0].RemainingBalance != 9000 {
		t.Errorf("expected reconstructed balance 9000, got %.2f", schedule[0].RemainingBalance)
	}
	if schedule[2].RemainingBalance != 7900 {
		t.Errorf("expected carried-forward balance 7900, got %.2f", schedule[2].RemainingBalance)
	}
}

func TestNormalizeSchedule_NoValidEntries(t *testing.T) {

	schedule, err := NormalizeSchedule(nil, 4)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(schedule) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(schedule))
	}
	for _, e := range schedule {
		if e.PrincipalPaid != 0 || e.InterestPaid != 0 || e.RemainingBalance != 0 {
			t.Errorf("expected all-zero entry for year %d", e.Year)
		}
	}
}

func TestNormalizeSchedule_CoercesNumericStrings(t *testing.T) {

	blob := `[{"year":"1","principalPaid":"1,000.50","interestPaid":"x","remainingBalance":9000}]`
	var raw []domain.RawYearlyEntry
	if err := json.Unmarshal([]byte(blob), &raw); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}

	schedule, err := NormalizeSchedule(raw, 1)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if schedule[0].PrincipalPaid != 1000.50 {
		t.Errorf("expected coerced principal 1000.50, got %.2f", schedule[0].PrincipalPaid)
	}
	if schedule[0].InterestPaid != 0 {
		t.Errorf("non-numeric interest should default to 0, got %.2f", schedule[0].InterestPaid)
	}
}

func TestNormalizeSchedule_Idempotent(t *testing.T) {

	raw := []domain.RawYearlyEntry{
		rawEntry(1, 1000, 500, 9000),
		rawEntry(3, 1000, 300, 0),
	}

	first, err := NormalizeSchedule(raw, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	asRaw := make([]domain.RawYearlyEntry, len(first))
	for i, e := range first {
		asRaw[i] = rawEntry(e.Year, e.PrincipalPaid, e.InterestPaid, e.RemainingBalance)
	}

	second, err := NormalizeSchedule(asRaw, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("normalization is not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
