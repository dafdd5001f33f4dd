// Package charts holds the pure math behind the dashboard visuals: bar
// proportions, totals and low-stock alert grouping. Rendering lives in the
// TUI; everything here is a plain transform over fetched records.
package charts

import "github.com/inventaria/inventaria/pkg/domain"

// Alert thresholds and rendering caps for the low-stock panel.
const (
	CriticalThreshold = 5
	WarningThreshold  = 10

	MaxCriticalShown = 5
	MaxWarningShown  = 3
)

// BarWidths scales each value to a percentage of the series maximum. An
// empty or all-zero series yields zero widths so callers can render the
// placeholder state instead of dividing by zero.
func BarWidths(values []float64) []float64 {
	widths := make([]float64, len(values))
	max := 0.0
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		return widths
	}
	for i, v := range values {
		widths[i] = v / max * 100
	}
	return widths
}

// Total sums a series.
func Total(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}

// StockValues extracts the magnitudes from a stock-by-category summary.
func StockValues(records []domain.CategoryStock) []float64 {
	values := make([]float64, len(records))
	for i, r := range records {
		values[i] = r.TotalStock
	}
	return values
}

// AlertGroups partitions low-stock alerts for rendering. Critical and
// Warning hold at most MaxCriticalShown and MaxWarningShown entries; the
// More counters carry the overflow shown as a "+N more" summary line.
type AlertGroups struct {
	Critical     []domain.LowStockAlert
	Warning      []domain.LowStockAlert
	MoreCritical int
	MoreWarning  int
}

// Empty reports whether there is nothing to render.
func (g AlertGroups) Empty() bool {
	return len(g.Critical) == 0 && len(g.Warning) == 0
}

// PartitionAlerts splits alerts into critical (stock at or below 5 units)
// and warning (at or below 10) groups, capped for display.
func PartitionAlerts(alerts []domain.LowStockAlert) AlertGroups {
	var groups AlertGroups
	for _, a := range alerts {
		switch {
		case a.Stock <= CriticalThreshold:
			if len(groups.Critical) < MaxCriticalShown {
				groups.Critical = append(groups.Critical, a)
			} else {
				groups.MoreCritical++
			}
		case a.Stock <= WarningThreshold:
			if len(groups.Warning) < MaxWarningShown {
				groups.Warning = append(groups.Warning, a)
			} else {
				groups.MoreWarning++
			}
		}
	}
	return groups
}

// TimelinePoint is one scaled day of the movements chart.
type TimelinePoint struct {
	Date         string
	Entries      float64
	Exits        float64
	EntriesWidth float64
	ExitsWidth   float64
}

// TimelineScale scales entries and exits against the maximum magnitude
// across both series so the two bars of a day stay comparable.
func TimelineScale(points []domain.MovementPoint) []TimelinePoint {
	max := 0.0
	for _, p := range points {
		if p.Entries > max {
			max = p.Entries
		}
		if p.Exits > max {
			max = p.Exits
		}
	}

	scaled := make([]TimelinePoint, len(points))
	for i, p := range points {
		scaled[i] = TimelinePoint{Date: p.Date, Entries: p.Entries, Exits: p.Exits}
		if max > 0 {
			scaled[i].EntriesWidth = p.Entries / max * 100
			scaled[i].ExitsWidth = p.Exits / max * 100
		}
	}
	return scaled
}
