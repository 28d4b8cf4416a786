package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Amount is a monetary value as delivered by the model. The model is
// supposed to emit plain JSON numbers but in practice also produces
// numeric strings, formatted strings ("9,000.50") or garbage; anything
// non-numeric decodes to zero with Valid=false.
type Amount struct {
	Value float64
	Valid bool
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*a = Amount{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*a = Amount{}
			return nil
		}
		s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*a = Amount{}
			return nil
		}
		*a = Amount{Value: v, Valid: true}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		*a = Amount{}
		return nil
	}
	*a = Amount{Value: v, Valid: true}
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Value)
}

// RawYearlyEntry is one year of the amortization series exactly as the
// model returned it: possibly missing, possibly non-numeric.
type RawYearlyEntry struct {
	Year             Amount `json:"year"`
	PrincipalPaid    Amount `json:"principalPaid"`
	InterestPaid     Amount `json:"interestPaid"`
	RemainingBalance Amount `json:"remainingBalance"`
}

// YearlyOwnershipEntry is one fiscal year of a loan after normalization.
// Years are 1-indexed and contiguous; RemainingBalance is 0 at the final
// year of a fully amortized loan. Immutable once produced.
type YearlyOwnershipEntry struct {
	Year             int     `json:"year"`
	PrincipalPaid    float64 `json:"principalPaid"`
	InterestPaid     float64 `json:"interestPaid"`
	RemainingBalance float64 `json:"remainingBalance"`
}

// RecurringFeeDetail is a named annual running cost (licensing,
// registration, basic maintenance) outside the loan itself.
type RecurringFeeDetail struct {
	Name                  string  `json:"name"`
	EstimatedAnnualAmount float64 `json:"estimatedAnnualAmount"`
	Currency              string  `json:"currency"`
	Notes                 string  `json:"notes,omitempty"`
}

// RawOwnershipBreakdown is the ownership section of a recommendation as
// the model returned it, before normalization and reconciliation.
type RawOwnershipBreakdown struct {
	VehicleFullCost                   Amount               `json:"vehicleFullCost"`
	EstimatedDownPaymentAmount        Amount               `json:"estimatedDownPaymentAmount"`
	TotalLoanPrincipal                Amount               `json:"totalLoanPrincipal"`
	TotalEstimatedInterestPaid        Amount               `json:"totalEstimatedInterestPaid"`
	TotalEstimatedLoanCost            Amount               `json:"totalEstimatedLoanCost"`
	TotalOutOfPocketForVehicle        Amount               `json:"totalOutOfPocketForVehicle"`
	Currency                          string               `json:"currency"`
	YearlyBreakdown                   []RawYearlyEntry     `json:"yearlyBreakdown,omitempty"`
	EstimatedAnnualRecurringFeesTotal Amount               `json:"estimatedAnnualRecurringFeesTotal,omitempty"`
	RecurringFeeDetails               []RecurringFeeDetail `json:"recurringFeeDetails,omitempty"`
}

// OwnershipBreakdown is the reconciled aggregate cost structure of
// owning a financed vehicle. Invariants:
//
//	TotalEstimatedLoanCost     == TotalLoanPrincipal + TotalEstimatedInterestPaid
//	TotalOutOfPocketForVehicle == EstimatedDownPaymentAmount + TotalEstimatedLoanCost
//
// and all monetary fields are non-negative.
type OwnershipBreakdown struct {
	VehicleFullCost                   float64                `json:"vehicleFullCost"`
	EstimatedDownPaymentAmount        float64                `json:"estimatedDownPaymentAmount"`
	TotalLoanPrincipal                float64                `json:"totalLoanPrincipal"`
	TotalEstimatedInterestPaid        float64                `json:"totalEstimatedInterestPaid"`
	TotalEstimatedLoanCost            float64                `json:"totalEstimatedLoanCost"`
	TotalOutOfPocketForVehicle        float64                `json:"totalOutOfPocketForVehicle"`
	Currency                          string                 `json:"currency"`
	YearlyBreakdown                   []YearlyOwnershipEntry `json:"yearlyBreakdown"`
	EstimatedAnnualRecurringFeesTotal float64                `json:"estimatedAnnualRecurringFeesTotal"`
	RecurringFeeDetails               []RecurringFeeDetail   `json:"recurringFeeDetails,omitempty"`
}
