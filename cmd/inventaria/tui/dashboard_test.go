package tui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inventaria/inventaria/pkg/domain"
	"github.com/inventaria/inventaria/pkg/i18n"
)

func TestRenderAlerts(t *testing.T) {
	t.Run("no alerts renders the placeholder", func(t *testing.T) {
		out := RenderAlerts(nil)
		assert.Contains(t, out, i18n.T("dashboard.alerts_none"))
	})

	t.Run("critical and warning entries are labeled", func(t *testing.T) {
		out := RenderAlerts([]domain.LowStockAlert{
			{Product: "Cola 600ml", Country: "GT", Stock: 2},
			{Product: "Agua 1L", Country: "HN", Stock: 8},
		})
		assert.Contains(t, out, "Cola 600ml")
		assert.Contains(t, out, "Agua 1L")
		assert.NotContains(t, out, i18n.T("dashboard.alerts_none"))
	})

	t.Run("overflow collapses into a more line", func(t *testing.T) {
		alerts := make([]domain.LowStockAlert, 0, 8)
		for i := 0; i < 8; i++ {
			alerts = append(alerts, domain.LowStockAlert{
				Product: fmt.Sprintf("Producto %d", i),
				Country: "GT",
				Stock:   1,
			})
		}
		out := RenderAlerts(alerts)

		assert.Contains(t, out, "Producto 4")
		assert.NotContains(t, out, "Producto 5")
		assert.Contains(t, out, "+3")
	})
}

func TestRenderStockChart(t *testing.T) {
	t.Run("empty data renders the placeholder", func(t *testing.T) {
		out := RenderStockChart(nil)
		assert.Contains(t, out, i18n.T("dashboard.no_data"))
	})

	t.Run("bars and total", func(t *testing.T) {
		out := RenderStockChart([]domain.CategoryStock{
			{Category: "Bebidas", TotalStock: 100},
			{Category: "Snacks", TotalStock: 50},
		})
		assert.Contains(t, out, "Bebidas")
		assert.Contains(t, out, "Snacks")
		assert.Contains(t, out, "150")
		// the largest category fills its bar, the half-size one does not
		assert.Contains(t, out, strings.Repeat("█", chartBarWidth))
	})
}

func TestFormatBar(t *testing.T) {
	cases := []struct {
		name    string
		percent float64
		filled  int
	}{
		{"empty", 0, 0},
		{"half", 50, 15},
		{"full", 100, 30},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bar := FormatBar(tc.percent, chartBarWidth)
			assert.Equal(t, tc.filled, strings.Count(bar, "█"))
			assert.Equal(t, chartBarWidth-tc.filled, strings.Count(bar, "░"))
		})
	}
}
