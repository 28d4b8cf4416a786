package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"car-loan-advisor/domain"
	"car-loan-advisor/service"
)

// Presentation tokens for the cost components; the chart engine treats
// them as opaque.
const (
	downPaymentToken = "primary.main"
	principalToken   = "primary.dark"
	interestToken    = "secondary.main"
)

type ChartHandler struct{}

func NewChartHandler() *ChartHandler {
	return &ChartHandler{}
}

type ownershipChartRequest struct {
	LoanTerm  int                          `json:"loanTerm"`
	Breakdown domain.RawOwnershipBreakdown `json:"ownershipBreakdown"`
	FocusYear int                          `json:"focusYear,omitempty"`
	PointerX  float64                      `json:"pointerX,omitempty"`
	PointerY  float64                      `json:"pointerY,omitempty"`
}

type yearBar struct {
	Year                int                   `json:"year"`
	Extent              float64               `json:"extent"`
	BelowMinimumVisible bool                  `json:"belowMinimumVisible,omitempty"`
	Segments            []domain.ChartSegment `json:"segments"`
}

type ownershipChartResponse struct {
	Breakdown     domain.OwnershipBreakdown `json:"ownershipBreakdown"`
	DonutSegments []domain.ChartSegment     `json:"donutSegments"`
	Placeholder   string                    `json:"placeholder,omitempty"`
	YearlyBars    []yearBar                 `json:"yearlyBars"`
	Tooltip       *domain.TooltipSnapshot   `json:"tooltip,omitempty"`
	Warnings      []string                  `json:"warnings,omitempty"`
}

// BuildOwnershipChart handles POST /loan/ownership-chart: it normalizes
// the yearly series, reconciles the totals and returns the donut and
// stacked-bar encodings plus an optional focused-year tooltip.
func (h *ChartHandler) BuildOwnershipChart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ownershipChartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Error decoding request body: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	schedule, err := service.NormalizeSchedule(req.Breakdown.YearlyBreakdown, req.LoanTerm)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	breakdown, warnings := service.AggregateOwnershipCost(
		schedule,
		req.Breakdown.RecurringFeeDetails,
		req.Breakdown.VehicleFullCost.Value,
		req.Breakdown.EstimatedDownPaymentAmount.Value,
		req.Breakdown.TotalLoanPrincipal.Value,
		req.Breakdown.Currency,
	)

	resp := ownershipChartResponse{
		Breakdown: breakdown,
		Warnings:  warnings,
	}

	donutItems := []domain.ChartItem{
		{Name: "Down Payment", Value: breakdown.EstimatedDownPaymentAmount, ColorToken: downPaymentToken},
		{Name: "Principal", Value: breakdown.TotalLoanPrincipal, ColorToken: principalToken},
		{Name: "Interest", Value: breakdown.TotalEstimatedInterestPaid, ColorToken: interestToken},
	}
	donut, donutWarnings, err := service.ComputeSegments(donutItems)
	resp.Warnings = append(resp.Warnings, donutWarnings...)
	switch {
	case errors.Is(err, service.ErrEmptyDataset):
		resp.Placeholder = "No cost data for chart."
	case err != nil:
		log.Printf("Error computing donut segments: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	default:
		resp.DonutSegments = donut
	}

	presenter := service.NewSeriesPresenter(schedule, breakdown.Currency, principalToken, interestToken)
	presenter.RenderExtents() // estado cero primero
	if err := presenter.BeginTransition(); err != nil {
		log.Printf("Error sequencing chart animation: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	extents := presenter.RenderExtents()
	resp.YearlyBars = make([]yearBar, 0, len(extents))
	for _, extent := range extents {
		bar := yearBar{
			Year:                extent.Year,
			Extent:              extent.Extent,
			BelowMinimumVisible: extent.BelowMinimumVisible,
			Segments:            []domain.ChartSegment{},
		}
		segments, _, err := presenter.Segments(extent.Year)
		if err == nil {
			bar.Segments = segments
		} else if !errors.Is(err, service.ErrEmptyDataset) {
			log.Printf("Error computing segments for year %d: %v", extent.Year, err)
		}
		resp.YearlyBars = append(resp.YearlyBars, bar)
	}

	if req.FocusYear > 0 {
		if snapshot, ok := presenter.OnFocus(req.FocusYear, req.PointerX, req.PointerY); ok {
			resp.Tooltip = &snapshot
		}
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(resp); err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}
