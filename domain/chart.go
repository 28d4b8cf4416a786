package domain

// ChartItem is one named magnitude to be encoded proportionally.
// ColorToken is an opaque presentation token; the engine never
// interprets it.
type ChartItem struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	ColorToken string  `json:"colorToken,omitempty"`
}

// ChartSegment is one proportioned slice of a chart's total. Percentage
// and CumulativeOffset parameterize the segment's span in 0-100%
// independent of rendering geometry. BelowMinimumVisible flags segments
// whose rendered extent would fall under the caller's pixel floor; the
// reported values are never altered.
type ChartSegment struct {
	Name                string  `json:"name"`
	Value               float64 `json:"value"`
	ColorToken          string  `json:"colorToken,omitempty"`
	Percentage          float64 `json:"percentage"`
	CumulativeOffset    float64 `json:"cumulativeOffsetPercentage"`
	BelowMinimumVisible bool    `json:"belowMinimumVisible,omitempty"`
}

// TooltipSnapshot is the detail shown for the focused year of a yearly
// payments chart. At most one snapshot is live at a time.
type TooltipSnapshot struct {
	Year             int     `json:"year"`
	PrincipalPaid    float64 `json:"principalPaid"`
	InterestPaid     float64 `json:"interestPaid"`
	TotalPayment     float64 `json:"totalPayment"`
	RemainingBalance float64 `json:"remainingBalance"`
	Currency         string  `json:"currency"`
	PointerX         float64 `json:"x"`
	PointerY         float64 `json:"y"`
}
