package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/inventaria/inventaria/pkg/client"
	"github.com/inventaria/inventaria/pkg/domain"
	"github.com/inventaria/inventaria/pkg/i18n"
)

// PurgeMode selects what a country purge removes.
type PurgeMode int

const (
	PurgeProducts PurgeMode = iota + 1
	PurgeMovements
	PurgeAll
)

// PurgePhase is the current phase of the purge workflow.
type PurgePhase int

const (
	PhaseLoading PurgePhase = iota
	PhaseConfiguring
	PhaseConfirming
	PhaseDeleting
	PhaseDone
	PhaseFailed
)

// Configuring-stage focus order.
const (
	purgeFieldCountry = iota
	purgeFieldMode
	purgeFieldInclude
	purgeFieldPassword
	purgeFieldConfirm
	purgeFieldCount
)

// PurgeModel drives the two-step country data purge. The deletion only
// starts after the operator confirms the final warning; cancelling from the
// confirmation returns to configuration with no side effects. The operator
// password travels with the delete request and is verified server-side.
type PurgeModel struct {
	phase PurgePhase

	ctx    context.Context
	cancel context.CancelFunc
	api    *client.Client

	countries Select
	codes     map[int]string
	mode      Select
	include   bool
	password  textinput.Model
	confirm   textinput.Model
	focus     int
	fieldErr  string

	confirmation ConfirmationDialog
	logs         LogView
	result       *domain.PurgeResult
	err          error

	spin   spinner.Model
	width  int
	height int
}

// NewPurgeModel builds the purge workflow UI.
func NewPurgeModel(api *client.Client) PurgeModel {
	ctx, cancel := context.WithCancel(context.Background())

	password := textinput.New()
	password.Prompt = ""
	password.EchoMode = textinput.EchoPassword
	password.Placeholder = i18n.T("purge.password")

	confirm := textinput.New()
	confirm.Prompt = ""
	confirm.EchoMode = textinput.EchoPassword
	confirm.Placeholder = i18n.T("purge.password_confirm")

	return PurgeModel{
		phase:  PhaseLoading,
		ctx:    ctx,
		cancel: cancel,
		api:    api,
		mode: Select{
			Options: []Option{
				{ID: int(PurgeProducts), Label: i18n.T("purge.mode_products")},
				{ID: int(PurgeMovements), Label: i18n.T("purge.mode_movements")},
				{ID: int(PurgeAll), Label: i18n.T("purge.mode_all")},
			},
			Selected: int(PurgeProducts),
		},
		password: password,
		confirm:  confirm,
		logs:     NewLogView(8),
		spin:     spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

// Init loads the country list.
func (m PurgeModel) Init() tea.Cmd {
	return tea.Batch(m.loadCountriesCmd(), m.spin.Tick, tea.EnterAltScreen)
}

type purgeCountriesMsg struct{ countries []domain.Country }

type purgeDoneMsg struct{ result *domain.PurgeResult }

type purgeErrorMsg struct{ err error }

func (m PurgeModel) loadCountriesCmd() tea.Cmd {
	return func() tea.Msg {
		countries, err := m.api.Countries().List(m.ctx)
		if err != nil {
			return purgeErrorMsg{err: err}
		}
		return purgeCountriesMsg{countries: countries}
	}
}

func (m PurgeModel) deleteCmd() tea.Cmd {
	code := m.codes[m.countries.Selected]
	mode := PurgeMode(m.mode.Selected)
	include := m.include
	password := m.password.Value()

	return func() tea.Msg {
		var (
			result *domain.PurgeResult
			err    error
		)
		switch mode {
		case PurgeMovements:
			result, err = m.api.Statistics().PurgeMovements(m.ctx, code, password)
		case PurgeAll:
			result, err = m.api.Statistics().PurgeAll(m.ctx, code, password)
		default:
			result, err = m.api.Statistics().PurgeProducts(m.ctx, code, include, password)
		}
		if err != nil {
			return purgeErrorMsg{err: err}
		}
		return purgeDoneMsg{result: result}
	}
}

// Result returns the purge counts after a successful run.
func (m PurgeModel) Result() *domain.PurgeResult { return m.result }

// Err returns the terminal error, if the purge failed.
func (m PurgeModel) Err() error { return m.err }

// Update handles messages.
func (m PurgeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.phase == PhaseLoading || m.phase == PhaseDeleting {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case purgeCountriesMsg:
		opts := make([]Option, len(msg.countries))
		m.codes = make(map[int]string, len(msg.countries))
		for i, c := range msg.countries {
			opts[i] = Option{ID: c.ID, Label: c.Name + " (" + c.Code + ")"}
			m.codes[c.ID] = c.Code
		}
		m.countries = Select{Options: opts}
		m.phase = PhaseConfiguring
		return m, nil

	case purgeStartMsg:
		m.phase = PhaseDeleting
		m.logs.AddLog(i18n.T("purge.running") + ": " + m.countryLabel())
		return m, tea.Batch(m.deleteCmd(), m.spin.Tick)

	case purgeCancelMsg:
		m.phase = PhaseConfiguring
		return m, nil

	case purgeDoneMsg:
		m.result = msg.result
		m.phase = PhaseDone
		m.logs.AddLog(i18n.T("purge.done"))
		return m, nil

	case purgeErrorMsg:
		m.err = msg.err
		m.phase = PhaseFailed
		m.logs.AddLog(i18n.T("purge.failed"))
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m PurgeModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.phase {
	case PhaseLoading, PhaseDeleting:
		if msg.String() == "ctrl+c" {
			m.cancel()
			return m, tea.Quit
		}
		return m, nil

	case PhaseConfirming:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.phase = PhaseConfiguring
			return m, nil
		default:
			return m, m.confirmation.Update(msg)
		}

	case PhaseDone, PhaseFailed:
		switch msg.String() {
		case "ctrl+c", "q", "enter", "esc":
			m.cancel()
			return m, tea.Quit
		}
		return m, nil
	}

	// PhaseConfiguring
	switch msg.String() {
	case "ctrl+c", "esc":
		m.cancel()
		return m, tea.Quit

	case "tab":
		m.setFocus((m.focus + 1) % purgeFieldCount)
		return m, nil

	case "shift+tab":
		m.setFocus((m.focus + purgeFieldCount - 1) % purgeFieldCount)
		return m, nil

	case "ctrl+s":
		return m.tryConfirm()
	}

	switch m.focus {
	case purgeFieldCountry:
		m.countries.Update(msg)
		return m, nil
	case purgeFieldMode:
		m.mode.Update(msg)
		return m, nil
	case purgeFieldInclude:
		if msg.String() == " " {
			m.include = !m.include
		}
		return m, nil
	case purgeFieldPassword:
		var cmd tea.Cmd
		m.password, cmd = m.password.Update(msg)
		return m, cmd
	default:
		var cmd tea.Cmd
		m.confirm, cmd = m.confirm.Update(msg)
		return m, cmd
	}
}

func (m *PurgeModel) setFocus(focus int) {
	m.password.Blur()
	m.confirm.Blur()
	m.focus = focus
	switch focus {
	case purgeFieldPassword:
		m.password.Focus()
	case purgeFieldConfirm:
		m.confirm.Focus()
	}
}

// tryConfirm validates the configuration and, when sound, raises the final
// warning dialog. Nothing is deleted until that dialog is confirmed.
func (m PurgeModel) tryConfirm() (tea.Model, tea.Cmd) {
	switch {
	case m.countries.Selected == 0:
		m.fieldErr = i18n.T("purge.need_country")
		return m, nil
	case m.password.Value() == "":
		m.fieldErr = i18n.T("purge.need_password")
		return m, nil
	case m.password.Value() != m.confirm.Value():
		m.fieldErr = i18n.T("purge.mismatch")
		return m, nil
	}
	m.fieldErr = ""

	label := m.modeLabel()
	m.confirmation = NewConfirmationDialog(
		i18n.T("purge.title"),
		i18n.T("purge.warning")+"\n\n"+
			i18n.T("purge.country")+": "+m.countryLabel()+"\n"+
			i18n.T("purge.mode")+": "+label+"\n\n"+
			i18n.T("purge.confirm"),
	)
	m.confirmation.OnConfirm = func() tea.Cmd {
		return func() tea.Msg { return purgeStartMsg{} }
	}
	m.confirmation.OnCancel = func() tea.Cmd {
		return func() tea.Msg { return purgeCancelMsg{} }
	}
	m.phase = PhaseConfirming
	return m, nil
}

type purgeStartMsg struct{}

type purgeCancelMsg struct{}

func (m PurgeModel) countryLabel() string {
	for _, opt := range m.countries.Options {
		if opt.ID == m.countries.Selected {
			return opt.Label
		}
	}
	return ""
}

func (m PurgeModel) modeLabel() string {
	for _, opt := range m.mode.Options {
		if opt.ID == m.mode.Selected {
			return opt.Label
		}
	}
	return ""
}

// View renders the workflow.
func (m PurgeModel) View() string {
	switch m.phase {
	case PhaseLoading:
		return boxStyle.Render(m.spin.View() + " " + i18n.T("common.loading"))

	case PhaseConfirming:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.confirmation.View())

	case PhaseDeleting:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			lipgloss.JoinVertical(lipgloss.Left,
				boxStyle.Render(m.spin.View()+" "+i18n.T("purge.running")),
				m.logs.View()))

	case PhaseDone:
		msg := titleStyle.Render(i18n.T("purge.done")) + "\n\n" +
			successStyle.Render(m.successMessage()) + "\n\n" +
			helpStyle.Render(FormatKey("enter", "exit"))
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, boxStyle.Render(msg))

	case PhaseFailed:
		msg := titleStyle.Render(i18n.T("purge.failed")) + "\n\n" +
			errorStyle.Render(m.err.Error()) + "\n\n" +
			helpStyle.Render(FormatKey("enter", "exit"))
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, boxStyle.Render(msg))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(i18n.T("purge.title")))
	b.WriteString("\n")
	b.WriteString(warningStyle.Render(i18n.T("purge.warning")))
	b.WriteString("\n\n")

	b.WriteString(m.fieldLabel(i18n.T("purge.country"), purgeFieldCountry))
	b.WriteString(m.countries.View())

	b.WriteString(m.fieldLabel(i18n.T("purge.mode"), purgeFieldMode))
	b.WriteString(m.mode.View())

	if PurgeMode(m.mode.Selected) == PurgeProducts {
		mark := "[ ]"
		if m.include {
			mark = "[x]"
		}
		b.WriteString(m.fieldLabel(i18n.T("purge.include_moves"), purgeFieldInclude))
		b.WriteString(unselectedItemStyle.Render(mark))
		b.WriteString("\n")
	}

	b.WriteString(m.fieldLabel(i18n.T("purge.password"), purgeFieldPassword))
	b.WriteString(m.password.View())
	b.WriteString("\n")
	b.WriteString(m.fieldLabel(i18n.T("purge.password_confirm"), purgeFieldConfirm))
	b.WriteString(m.confirm.View())
	b.WriteString("\n")

	if m.fieldErr != "" {
		b.WriteString(dangerStyle.Render(m.fieldErr))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(
		FormatKey("tab", "next field") + " • " +
			FormatKey("ctrl+s", "continue") + " • " +
			FormatKey("esc", "cancel"),
	))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m PurgeModel) successMessage() string {
	if m.result == nil {
		return i18n.T("purge.done")
	}
	return fmt.Sprintf("%s: %d  •  %s: %d",
		i18n.T("purge.mode_products"), m.result.DeletedProducts,
		i18n.T("purge.mode_movements"), m.result.DeletedMovements)
}

func (m PurgeModel) fieldLabel(label string, field int) string {
	if m.focus == field {
		return selectedItemStyle.Render(label) + "\n"
	}
	return mutedStyle.Render(label) + "\n"
}

// RunPurgeUI starts the interactive purge workflow.
func RunPurgeUI(api *client.Client) (*domain.PurgeResult, error) {
	p := tea.NewProgram(NewPurgeModel(api))
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	if m, ok := final.(PurgeModel); ok {
		if m.Err() != nil {
			return nil, m.Err()
		}
		return m.Result(), nil
	}
	return nil, nil
}
