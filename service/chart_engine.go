package service

import (
	"errors"
	"fmt"

	"car-loan-advisor/domain"
)

// ErrEmptyDataset means every item filtered to zero; callers render a
// neutral placeholder instead of a chart. It is not a user-facing error.
var ErrEmptyDataset = errors.New("no hay datos para graficar")

// ComputeSegments turns named non-negative magnitudes into percentage
// shares and cumulative offsets in a 0-100% parameterization, suitable
// for driving a donut or stacked-bar encoding. Item order is preserved;
// items at or below SegmentEpsilon are omitted entirely. Negative
// values are clamped to 0 with a warning rather than failing.
func ComputeSegments(items []domain.ChartItem) ([]domain.ChartSegment, []string, error) {
	return ComputeSegmentsWithFloor(items, nil, 0)
}

// ComputeSegmentsWithFloor additionally flags segments whose rendered
// extent (scale applied to the value) would fall below minExtent, so
// the caller can clamp the drawn size without changing reported values.
// A nil scale disables flagging.
func ComputeSegmentsWithFloor(
	items []domain.ChartItem,
	scale func(float64) float64,
	minExtent float64,
) ([]domain.ChartSegment, []string, error) {
	var warnings []string

	filtered := make([]domain.ChartItem, 0, len(items))
	total := 0.0
	for _, item := range items {
		value := item.Value
		if value < 0 {
			warnings = append(warnings, fmt.Sprintf("valor negativo para %q ajustado a 0", item.Name))
			value = 0
		}
		if value <= SegmentEpsilon {
			continue
		}
		item.Value = value
		filtered = append(filtered, item)
		total += value
	}

	if len(filtered) == 0 || total <= SegmentEpsilon {
		return nil, warnings, ErrEmptyDataset
	}

	segments := make([]domain.ChartSegment, 0, len(filtered))
	offset := 0.0
	for _, item := range filtered {
		percentage := item.Value / total * 100
		segment := domain.ChartSegment{
			Name:             item.Name,
			Value:            item.Value,
			ColorToken:       item.ColorToken,
			Percentage:       percentage,
			CumulativeOffset: offset,
		}
		if scale != nil && scale(item.Value) < minExtent {
			segment.BelowMinimumVisible = true
		}
		segments = append(segments, segment)
		offset += percentage
	}
	return segments, warnings, nil
}
