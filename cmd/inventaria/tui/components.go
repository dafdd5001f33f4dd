package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/inventaria/inventaria/pkg/i18n"
)

// ConfirmationDialog is a yes/no dialog. No is preselected so a stray enter
// never confirms a destructive action.
type ConfirmationDialog struct {
	Title       string
	Message     string
	YesSelected bool
	OnConfirm   func() tea.Cmd
	OnCancel    func() tea.Cmd
}

// NewConfirmationDialog creates a dialog with No preselected.
func NewConfirmationDialog(title, message string) ConfirmationDialog {
	return ConfirmationDialog{Title: title, Message: message}
}

// Update handles dialog key events.
func (d *ConfirmationDialog) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			d.YesSelected = true
			return nil
		case "right", "l":
			d.YesSelected = false
			return nil
		case "enter":
			if d.YesSelected && d.OnConfirm != nil {
				return d.OnConfirm()
			}
			if !d.YesSelected && d.OnCancel != nil {
				return d.OnCancel()
			}
			return nil
		}
	}
	return nil
}

// View renders the dialog.
func (d ConfirmationDialog) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(d.Title))
	b.WriteString("\n\n")
	b.WriteString(d.Message)
	b.WriteString("\n\n")

	yesButton := inactiveButtonStyle.Render(i18n.T("common.yes"))
	noButton := inactiveButtonStyle.Render(i18n.T("common.no"))
	if d.YesSelected {
		yesButton = activeButtonStyle.Render(i18n.T("common.yes"))
	} else {
		noButton = activeButtonStyle.Render(i18n.T("common.no"))
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Left, yesButton, "  ", noButton))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(FormatKey("←/→", "navigate") + " • " + FormatKey("enter", "confirm") + " • " + FormatKey("esc", "cancel")))

	return dangerBoxStyle.Render(b.String())
}

// Option is one entry of a selector.
type Option struct {
	ID    int
	Label string
}

// Select is a single-choice picker.
type Select struct {
	Options  []Option
	Cursor   int
	Selected int // selected option ID, 0 when nothing is chosen
}

// Update handles picker key events.
func (s *Select) Update(msg tea.Msg) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || len(s.Options) == 0 {
		return
	}
	switch key.String() {
	case "up", "k":
		if s.Cursor > 0 {
			s.Cursor--
		}
	case "down", "j":
		if s.Cursor < len(s.Options)-1 {
			s.Cursor++
		}
	case " ", "enter":
		s.Selected = s.Options[s.Cursor].ID
	}
}

// View renders the picker.
func (s Select) View() string {
	var b strings.Builder
	for i, opt := range s.Options {
		marker := "( )"
		if opt.ID == s.Selected {
			marker = "(•)"
		}
		line := marker + " " + opt.Label
		if i == s.Cursor {
			b.WriteString(selectedItemStyle.Render("▸ " + line))
		} else {
			b.WriteString(unselectedItemStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// MultiSelect is a multi-choice picker.
type MultiSelect struct {
	Options  []Option
	Cursor   int
	Selected map[int]bool
}

// NewMultiSelect builds a picker with nothing chosen.
func NewMultiSelect(options []Option) MultiSelect {
	return MultiSelect{Options: options, Selected: make(map[int]bool)}
}

// SelectedIDs returns the chosen ids in option order.
func (s MultiSelect) SelectedIDs() []int {
	ids := make([]int, 0, len(s.Selected))
	for _, opt := range s.Options {
		if s.Selected[opt.ID] {
			ids = append(ids, opt.ID)
		}
	}
	return ids
}

// Clear drops every selection.
func (s *MultiSelect) Clear() {
	s.Selected = make(map[int]bool)
}

// Update handles picker key events.
func (s *MultiSelect) Update(msg tea.Msg) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || len(s.Options) == 0 {
		return
	}
	switch key.String() {
	case "up", "k":
		if s.Cursor > 0 {
			s.Cursor--
		}
	case "down", "j":
		if s.Cursor < len(s.Options)-1 {
			s.Cursor++
		}
	case " ":
		id := s.Options[s.Cursor].ID
		if s.Selected[id] {
			delete(s.Selected, id)
		} else {
			s.Selected[id] = true
		}
	}
}

// View renders the picker.
func (s MultiSelect) View() string {
	var b strings.Builder
	for i, opt := range s.Options {
		marker := "[ ]"
		if s.Selected[opt.ID] {
			marker = "[x]"
		}
		line := marker + " " + opt.Label
		if i == s.Cursor {
			b.WriteString(selectedItemStyle.Render("▸ " + line))
		} else {
			b.WriteString(unselectedItemStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// LogView shows the trailing operation log of a long-running workflow.
type LogView struct {
	Logs   []string
	MaxLen int
}

// NewLogView creates a log view keeping at most maxLen entries.
func NewLogView(maxLen int) LogView {
	return LogView{Logs: make([]string, 0), MaxLen: maxLen}
}

// AddLog appends an entry, dropping the oldest past MaxLen.
func (l *LogView) AddLog(entry string) {
	l.Logs = append(l.Logs, entry)
	if len(l.Logs) > l.MaxLen {
		l.Logs = l.Logs[1:]
	}
}

// View renders the log view.
func (l LogView) View() string {
	if len(l.Logs) == 0 {
		return mutedStyle.Render("No logs")
	}
	var b strings.Builder
	for _, entry := range l.Logs {
		b.WriteString(mutedStyle.Render("• "))
		b.WriteString(entry)
		b.WriteString("\n")
	}
	return boxStyle.Render(b.String())
}
