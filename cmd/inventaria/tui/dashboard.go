package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/inventaria/inventaria/pkg/charts"
	"github.com/inventaria/inventaria/pkg/client"
	"github.com/inventaria/inventaria/pkg/domain"
	"github.com/inventaria/inventaria/pkg/i18n"
)

const chartBarWidth = 30

// DashboardData is everything the dashboard renders.
type DashboardData struct {
	Stock     []domain.CategoryStock
	Timeline  []domain.MovementPoint
	Summaries []domain.CountrySummary
	Alerts    []domain.LowStockAlert
}

// FetchDashboard loads the four dashboard summaries. Stock, timeline and
// alerts are fetched in parallel; country summaries follow from the country
// list, one concurrent fetch per country.
func FetchDashboard(ctx context.Context, api *client.Client, days int) (*DashboardData, error) {
	var data DashboardData

	errCh := make(chan error, 3)
	go func() {
		var err error
		data.Stock, err = api.Statistics().StockByCategory(ctx)
		errCh <- err
	}()
	go func() {
		var err error
		data.Timeline, err = api.Statistics().MovementsTimeline(ctx, days)
		errCh <- err
	}()
	go func() {
		var err error
		data.Alerts, err = api.Statistics().LowStockAlerts(ctx)
		errCh <- err
	}()
	for i := 0; i < 3; i++ {
		if err := <-errCh; err != nil {
			return nil, err
		}
	}

	countries, err := api.Countries().List(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]*domain.CountrySummary, len(countries))
	sumCh := make(chan error, len(countries))
	for i, c := range countries {
		i, c := i, c
		go func() {
			var err error
			summaries[i], err = api.Statistics().CountrySummary(ctx, c.Code)
			sumCh <- err
		}()
	}
	for range countries {
		if err := <-sumCh; err != nil {
			return nil, err
		}
	}
	for _, s := range summaries {
		if s != nil {
			data.Summaries = append(data.Summaries, *s)
		}
	}

	return &data, nil
}

// RenderStockChart draws the stock-by-category bar chart: each bar scaled
// against the largest category, with the combined total underneath.
func RenderStockChart(records []domain.CategoryStock) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(i18n.T("dashboard.stock_by_cat")))
	b.WriteString("\n")

	if len(records) == 0 {
		b.WriteString(mutedStyle.Render(i18n.T("dashboard.no_data")))
		return b.String()
	}

	values := charts.StockValues(records)
	widths := charts.BarWidths(values)

	nameWidth := 0
	for _, r := range records {
		if len(r.Category) > nameWidth {
			nameWidth = len(r.Category)
		}
	}
	for i, r := range records {
		b.WriteString(fmt.Sprintf("%-*s %s %s\n",
			nameWidth, r.Category,
			FormatBar(widths[i], chartBarWidth),
			mutedStyle.Render(FormatCount(r.TotalStock))))
	}

	b.WriteString(infoStyle.Render(
		i18n.T("dashboard.total") + ": " + FormatCount(charts.Total(values))))
	return b.String()
}

// RenderTimeline draws entries and exits per day, both scaled against the
// series maximum so the bars stay comparable.
func RenderTimeline(points []domain.MovementPoint) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(i18n.T("dashboard.movements")))
	b.WriteString("\n")

	if len(points) == 0 {
		b.WriteString(mutedStyle.Render(i18n.T("dashboard.no_data")))
		return b.String()
	}

	for _, p := range charts.TimelineScale(points) {
		b.WriteString(mutedStyle.Render(p.Date))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			successStyle.Render("▲"),
			FormatBar(p.EntriesWidth, chartBarWidth),
			mutedStyle.Render(FormatCount(p.Entries))))
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			dangerStyle.Render("▼"),
			FormatBar(p.ExitsWidth, chartBarWidth),
			mutedStyle.Render(FormatCount(p.Exits))))
	}
	return b.String()
}

// RenderSummaries draws the per-country aggregate table.
func RenderSummaries(summaries []domain.CountrySummary) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(i18n.T("dashboard.countries")))
	b.WriteString("\n")

	if len(summaries) == 0 {
		b.WriteString(mutedStyle.Render(i18n.T("dashboard.no_data")))
		return b.String()
	}

	for _, s := range summaries {
		b.WriteString(fmt.Sprintf("%s %-20s %s\n",
			infoStyle.Render(s.Code),
			s.Name,
			mutedStyle.Render(fmt.Sprintf("%d products • %d movements • stock %s",
				s.Products, s.Movements, FormatCount(s.TotalStock)))))
	}
	return b.String()
}

// RenderAlerts draws the low-stock panel: critical entries first (capped at
// five), then warnings (capped at three), each overflow summarized as a
// "+N more" line. With no alerts at all the placeholder renders instead.
func RenderAlerts(alerts []domain.LowStockAlert) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(i18n.T("dashboard.alerts")))
	b.WriteString("\n")

	groups := charts.PartitionAlerts(alerts)
	if groups.Empty() {
		b.WriteString(mutedStyle.Render(i18n.T("dashboard.alerts_none")))
		return b.String()
	}

	for _, a := range groups.Critical {
		b.WriteString(fmt.Sprintf("%s %s (%s) — %d\n",
			dangerStyle.Render(i18n.T("dashboard.alert_critical")),
			a.Product, a.Country, a.Stock))
	}
	if groups.MoreCritical > 0 {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  +%d %s\n", groups.MoreCritical, i18n.T("dashboard.more"))))
	}
	for _, a := range groups.Warning {
		b.WriteString(fmt.Sprintf("%s %s (%s) — %d\n",
			warningStyle.Render(i18n.T("dashboard.alert_warning")),
			a.Product, a.Country, a.Stock))
	}
	if groups.MoreWarning > 0 {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  +%d %s\n", groups.MoreWarning, i18n.T("dashboard.more"))))
	}
	return b.String()
}

// DashboardModel is the interactive dashboard: fetch, render, refresh.
type DashboardModel struct {
	ctx    context.Context
	cancel context.CancelFunc
	api    *client.Client
	days   int

	loading bool
	data    *DashboardData
	err     error

	spin   spinner.Model
	width  int
	height int
}

// NewDashboard builds the dashboard model.
func NewDashboard(api *client.Client, days int) DashboardModel {
	ctx, cancel := context.WithCancel(context.Background())
	return DashboardModel{
		ctx:     ctx,
		cancel:  cancel,
		api:     api,
		days:    days,
		loading: true,
		spin:    spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

// Init fires the initial fetch.
func (m DashboardModel) Init() tea.Cmd {
	return tea.Batch(m.fetchCmd(), m.spin.Tick, tea.EnterAltScreen)
}

type dashboardLoadedMsg struct{ data *DashboardData }

type dashboardErrorMsg struct{ err error }

func (m DashboardModel) fetchCmd() tea.Cmd {
	return func() tea.Msg {
		data, err := FetchDashboard(m.ctx, m.api, m.days)
		if err != nil {
			return dashboardErrorMsg{err: err}
		}
		return dashboardLoadedMsg{data: data}
	}
}

// Update handles messages.
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case dashboardLoadedMsg:
		m.loading = false
		m.data = msg.data
		m.err = nil
		return m, nil

	case dashboardErrorMsg:
		m.loading = false
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.cancel()
			return m, tea.Quit
		case "r":
			if !m.loading {
				m.loading = true
				return m, tea.Batch(m.fetchCmd(), m.spin.Tick)
			}
		}
	}
	return m, nil
}

// View renders the dashboard.
func (m DashboardModel) View() string {
	if m.loading {
		return boxStyle.Render(m.spin.View() + " " + i18n.T("common.loading"))
	}
	if m.err != nil {
		return boxStyle.Render(errorStyle.Render(m.err.Error()) + "\n\n" +
			helpStyle.Render(FormatKey("r", "retry")+" • "+FormatKey("q", "quit")))
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		boxStyle.Render(RenderStockChart(m.data.Stock)),
		boxStyle.Render(RenderSummaries(m.data.Summaries)),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		boxStyle.Render(RenderTimeline(m.data.Timeline)),
		boxStyle.Render(RenderAlerts(m.data.Alerts)),
	)

	help := helpStyle.Render(FormatKey("r", "refresh") + " • " + FormatKey("q", "quit"))
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, left, right),
		help,
	)
}

// RunDashboard starts the interactive dashboard.
func RunDashboard(api *client.Client, days int) error {
	p := tea.NewProgram(NewDashboard(api, days))
	_, err := p.Run()
	return err
}
