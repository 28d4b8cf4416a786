package service

const (
	MaxLoanTermYears   = 50  // plazo máximo en años
	MaxRecommendations = 6   // el asesor devuelve entre 0 y 6 ofertas
	MaxRecurringFees   = 20  // máximo de cargos recurrentes por desglose

	// SegmentEpsilon is the threshold under which a chart component is
	// treated as zero and omitted from the visual encoding.
	SegmentEpsilon = 0.001

	// PrincipalTolerancePerYear is the rounding slack allowed per
	// accumulated year when reconciling the schedule's principal sum
	// against the stated loan amount.
	PrincipalTolerancePerYear = 0.01

	// Bar geometry defaults matching the yearly payments chart.
	BarAreaHeightPx = 180.0
	MinBarHeightPx  = 2.0
)
