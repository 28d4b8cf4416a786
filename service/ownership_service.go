package service

import (
	"fmt"
	"math"

	"car-loan-advisor/domain"
)

// roundTo2Decimals redondea un float64 a 2 decimales (mitades alejándose de cero)
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// AggregateOwnershipCost derives the ownership totals from a normalized
// schedule and fee list. The schedule is trusted as ground truth for
// internal consistency; a stated loan amount that disagrees with the
// schedule's principal sum beyond the per-year tolerance band is
// surfaced as a warning, never a hard failure. Inputs are not mutated.
func AggregateOwnershipCost(
	schedule []domain.YearlyOwnershipEntry,
	fees []domain.RecurringFeeDetail,
	vehicleFullCost float64,
	downPayment float64,
	statedLoanAmount float64,
	currency string,
) (domain.OwnershipBreakdown, []string) {
	var warnings []string

	if downPayment < 0 {
		warnings = append(warnings, fmt.Sprintf("prima negativa (%.2f) ajustada a 0", downPayment))
		downPayment = 0
	}
	if vehicleFullCost < 0 {
		warnings = append(warnings, fmt.Sprintf("costo del vehículo negativo (%.2f) ajustado a 0", vehicleFullCost))
		vehicleFullCost = 0
	}

	var principal, interest float64
	for _, e := range schedule {
		principal += e.PrincipalPaid
		interest += e.InterestPaid
	}
	principal = roundTo2Decimals(math.Max(principal, 0))
	interest = roundTo2Decimals(math.Max(interest, 0))

	if statedLoanAmount > 0 {
		tolerance := PrincipalTolerancePerYear * float64(len(schedule))
		if math.Abs(principal-statedLoanAmount) > tolerance {
			warnings = append(warnings, fmt.Sprintf(
				"la suma de capital del cronograma (%.2f) difiere del monto declarado del préstamo (%.2f)",
				principal, statedLoanAmount))
		}
	}

	if len(fees) > MaxRecurringFees {
		warnings = append(warnings, fmt.Sprintf(
			"se recibieron %d cargos recurrentes; solo se consideran los primeros %d",
			len(fees), MaxRecurringFees))
		fees = fees[:MaxRecurringFees]
	}

	var feesTotal float64
	for _, f := range fees {
		if f.EstimatedAnnualAmount < 0 {
			warnings = append(warnings, fmt.Sprintf("cargo anual negativo %q ignorado", f.Name))
			continue
		}
		feesTotal += f.EstimatedAnnualAmount
	}
	feesTotal = roundTo2Decimals(feesTotal)

	loanCost := roundTo2Decimals(principal + interest)
	outOfPocket := roundTo2Decimals(downPayment + loanCost)

	breakdown := domain.OwnershipBreakdown{
		VehicleFullCost:                   roundTo2Decimals(vehicleFullCost),
		EstimatedDownPaymentAmount:        roundTo2Decimals(downPayment),
		TotalLoanPrincipal:                principal,
		TotalEstimatedInterestPaid:        interest,
		TotalEstimatedLoanCost:            loanCost,
		TotalOutOfPocketForVehicle:        outOfPocket,
		Currency:                          currency,
		YearlyBreakdown:                   schedule,
		EstimatedAnnualRecurringFeesTotal: feesTotal,
		RecurringFeeDetails:               fees,
	}
	return breakdown, warnings
}
