package service

import (
	"errors"
	"math"

	"car-loan-advisor/domain"
)

// AnimationPhase sequences the entrance animation of a yearly chart:
// segments start at zero extent and transition to their true extents.
type AnimationPhase int

const (
	// PhaseZero: all extents report 0. Must be rendered at least once
	// before the transition to true extents may begin, or consumers
	// relying on measure-then-animate flash final values immediately.
	PhaseZero AnimationPhase = iota
	PhaseSettled
)

var ErrZeroStateNotRendered = errors.New("el estado cero aún no fue renderizado")

// BarExtent is the rendered height of one year's bar as a fraction of
// the bar area, plus the minimum-visible flag for small-but-nonzero
// payments.
type BarExtent struct {
	Year                int     `json:"year"`
	Extent              float64 `json:"extent"`
	BelowMinimumVisible bool    `json:"belowMinimumVisible,omitempty"`
}

// focus is a tagged union: zero value is Idle, focused=true is Focused.
type focusState struct {
	focused bool
	year    int
	x, y    float64
}

// SeriesPresenter wraps a normalized yearly schedule and the chart
// engine to serve per-year segment queries, single-focus tooltip
// lookups and entrance animation sequencing. One presenter per rendered
// recommendation card; not safe for concurrent use.
type SeriesPresenter struct {
	schedule       []domain.YearlyOwnershipEntry
	currency       string
	principalToken string
	interestToken  string

	phase        AnimationPhase
	zeroRendered bool
	focus        focusState
}

func NewSeriesPresenter(
	schedule []domain.YearlyOwnershipEntry,
	currency string,
	principalToken, interestToken string,
) *SeriesPresenter {
	return &SeriesPresenter{
		schedule:       schedule,
		currency:       currency,
		principalToken: principalToken,
		interestToken:  interestToken,
		phase:          PhaseZero,
	}
}

// SetData replaces the underlying series. A new identity restarts the
// entrance animation from the zero state and clears any focus.
func (p *SeriesPresenter) SetData(schedule []domain.YearlyOwnershipEntry, currency string) {
	p.schedule = schedule
	p.currency = currency
	p.phase = PhaseZero
	p.zeroRendered = false
	p.focus = focusState{}
}

func (p *SeriesPresenter) Phase() AnimationPhase {
	return p.phase
}

// Segments returns the stacked principal/interest segments for one
// year. Pure delegation to the chart engine; a year with no payments
// yields ErrEmptyDataset.
func (p *SeriesPresenter) Segments(year int) ([]domain.ChartSegment, []string, error) {
	entry, ok := p.entry(year)
	if !ok {
		return nil, nil, ErrEmptyDataset
	}
	items := []domain.ChartItem{
		{Name: "Principal", Value: entry.PrincipalPaid, ColorToken: p.principalToken},
		{Name: "Interest", Value: entry.InterestPaid, ColorToken: p.interestToken},
	}
	return ComputeSegments(items)
}

// RenderExtents returns the bar extent of every year for the current
// animation phase. Observing the zero state unlocks BeginTransition.
func (p *SeriesPresenter) RenderExtents() []BarExtent {
	extents := make([]BarExtent, len(p.schedule))
	if p.phase == PhaseZero {
		for i, e := range p.schedule {
			extents[i] = BarExtent{Year: e.Year}
		}
		p.zeroRendered = true
		return extents
	}

	maxTotal := 1.0
	for _, e := range p.schedule {
		maxTotal = math.Max(maxTotal, e.PrincipalPaid+e.InterestPaid)
	}
	for i, e := range p.schedule {
		total := e.PrincipalPaid + e.InterestPaid
		extent := total / maxTotal
		extents[i] = BarExtent{
			Year:                e.Year,
			Extent:              extent,
			BelowMinimumVisible: total > SegmentEpsilon && extent*BarAreaHeightPx < MinBarHeightPx,
		}
	}
	return extents
}

// BeginTransition moves from the zero state to the settled state. It
// fails unless the zero state was rendered at least once first.
func (p *SeriesPresenter) BeginTransition() error {
	if p.phase == PhaseSettled {
		return nil
	}
	if !p.zeroRendered {
		return ErrZeroStateNotRendered
	}
	p.phase = PhaseSettled
	return nil
}

// OnFocus focuses one year and produces its tooltip snapshot. Focusing
// another year implicitly unfocuses the previous one; an unknown year
// leaves the current state untouched.
func (p *SeriesPresenter) OnFocus(year int, pointerX, pointerY float64) (domain.TooltipSnapshot, bool) {
	entry, ok := p.entry(year)
	if !ok {
		return domain.TooltipSnapshot{}, false
	}
	p.focus = focusState{focused: true, year: year, x: pointerX, y: pointerY}
	return p.snapshot(entry), true
}

// OnBlur clears the current focus, if any.
func (p *SeriesPresenter) OnBlur() {
	p.focus = focusState{}
}

// Focused returns the live snapshot when a year is focused.
func (p *SeriesPresenter) Focused() (domain.TooltipSnapshot, bool) {
	if !p.focus.focused {
		return domain.TooltipSnapshot{}, false
	}
	entry, ok := p.entry(p.focus.year)
	if !ok {
		return domain.TooltipSnapshot{}, false
	}
	return p.snapshot(entry), true
}

func (p *SeriesPresenter) snapshot(entry domain.YearlyOwnershipEntry) domain.TooltipSnapshot {
	return domain.TooltipSnapshot{
		Year:             entry.Year,
		PrincipalPaid:    entry.PrincipalPaid,
		InterestPaid:     entry.InterestPaid,
		TotalPayment:     entry.PrincipalPaid + entry.InterestPaid,
		RemainingBalance: entry.RemainingBalance,
		Currency:         p.currency,
		PointerX:         p.focus.x,
		PointerY:         p.focus.y,
	}
}

func (p *SeriesPresenter) entry(year int) (domain.YearlyOwnershipEntry, bool) {
	for _, e := range p.schedule {
		if e.Year == year {
			return e, true
		}
	}
	return domain.YearlyOwnershipEntry{}, false
}
