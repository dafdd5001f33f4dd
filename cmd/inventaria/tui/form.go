package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/inventaria/inventaria/pkg/client"
	"github.com/inventaria/inventaria/pkg/domain"
	"github.com/inventaria/inventaria/pkg/i18n"
	"github.com/inventaria/inventaria/pkg/validate"
)

// FormMode is the current phase of the user form.
type FormMode int

const (
	FormLoading FormMode = iota
	FormEditing
	FormSubmitting
	FormDone
	FormError
)

// Form field focus order. Text inputs first, then the pickers.
const (
	fieldEmail = iota
	fieldPassword
	fieldFirstName
	fieldLastName
	fieldRole
	fieldCountries
	fieldCategories
	fieldCount
)

// SubmitFunc sends the normalized payload to the API.
type SubmitFunc func(ctx context.Context, payload map[string]any) (*domain.User, error)

// UserFormModel drives the create/edit user form. Reference lists (roles,
// countries, categories) are fetched in parallel on init and the form only
// renders once all three have resolved.
type UserFormModel struct {
	mode    FormMode
	editing bool
	userID  int

	ctx    context.Context
	cancel context.CancelFunc

	api    *client.Client
	submit SubmitFunc

	inputs     [4]textinput.Model
	roles      Select
	countries  MultiSelect
	categories MultiSelect
	active     bool
	focus      int

	roleList []domain.Role
	preset   *domain.User
	errors   map[string]string
	saved    *domain.User
	err      error

	spin   spinner.Model
	width  int
	height int
}

// NewUserForm builds a form for creating a user, or editing one when
// existing is non-nil.
func NewUserForm(api *client.Client, submit SubmitFunc, existing *domain.User) UserFormModel {
	ctx, cancel := context.WithCancel(context.Background())

	m := UserFormModel{
		mode:   FormLoading,
		ctx:    ctx,
		cancel: cancel,
		api:    api,
		submit: submit,
		active: true,
		errors: map[string]string{},
		spin:   spinner.New(spinner.WithSpinner(spinner.Dot)),
	}

	labels := [4]string{
		i18n.T("users.email"),
		i18n.T("users.password"),
		i18n.T("users.first_name"),
		i18n.T("users.last_name"),
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = labels[i]
		ti.CharLimit = 120
		m.inputs[i] = ti
	}
	m.inputs[fieldPassword].EchoMode = textinput.EchoPassword
	m.inputs[fieldEmail].Focus()

	if existing != nil {
		m.editing = true
		m.userID = existing.ID
		m.preset = existing
		m.active = existing.Active
		m.inputs[fieldEmail].SetValue(existing.Email)
		m.inputs[fieldFirstName].SetValue(existing.FirstName)
		m.inputs[fieldLastName].SetValue(existing.LastName)
		m.inputs[fieldPassword].Placeholder = i18n.T("users.password_hint")
	}

	return m
}

// Init fires the parallel reference fetch.
func (m UserFormModel) Init() tea.Cmd {
	return tea.Batch(m.loadReferenceCmd(), m.spin.Tick, tea.EnterAltScreen)
}

type referenceLoadedMsg struct {
	roles      []domain.Role
	countries  []domain.Country
	categories []domain.Category
}

type userSavedMsg struct{ user *domain.User }

type formErrorMsg struct{ err error }

func (m UserFormModel) loadReferenceCmd() tea.Cmd {
	return func() tea.Msg {
		roles, countries, categories, err := m.api.Users().Reference(m.ctx)
		if err != nil {
			return formErrorMsg{err: err}
		}
		return referenceLoadedMsg{roles: roles, countries: countries, categories: categories}
	}
}

func (m UserFormModel) submitCmd(payload map[string]any) tea.Cmd {
	return func() tea.Msg {
		user, err := m.submit(m.ctx, payload)
		if err != nil {
			return formErrorMsg{err: err}
		}
		return userSavedMsg{user: user}
	}
}

// Saved returns the stored user after a successful submission.
func (m UserFormModel) Saved() *domain.User { return m.saved }

// Err returns the terminal error, if the form failed.
func (m UserFormModel) Err() error { return m.err }

// Update handles messages.
func (m UserFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.mode == FormLoading || m.mode == FormSubmitting {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case referenceLoadedMsg:
		m.roleList = msg.roles
		m.roles = Select{Options: roleOptions(msg.roles)}
		m.countries = NewMultiSelect(countryOptions(msg.countries))
		m.categories = NewMultiSelect(categoryOptions(msg.categories))
		if m.preset != nil {
			m.roles.Selected = m.preset.RoleID
			for _, id := range m.preset.CountryIDs {
				m.countries.Selected[id] = true
			}
			for _, id := range m.preset.CategoryIDs {
				m.categories.Selected[id] = true
			}
		}
		m.mode = FormEditing
		return m, nil

	case userSavedMsg:
		m.saved = msg.user
		m.mode = FormDone
		return m, nil

	case formErrorMsg:
		m.err = msg.err
		m.mode = FormError
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m UserFormModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case FormLoading, FormSubmitting:
		if msg.String() == "ctrl+c" {
			m.cancel()
			return m, tea.Quit
		}
		return m, nil

	case FormDone, FormError:
		switch msg.String() {
		case "ctrl+c", "q", "enter", "esc":
			m.cancel()
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "esc":
		m.cancel()
		return m, tea.Quit

	case "tab":
		m.setFocus((m.focus + 1) % fieldCount)
		return m, nil

	case "shift+tab":
		m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, nil

	case "ctrl+a":
		m.active = !m.active
		return m, nil

	case "ctrl+s":
		return m.trySubmit()
	}

	switch m.focus {
	case fieldRole:
		before := m.roles.Selected
		m.roles.Update(msg)
		if m.roles.Selected != before {
			// Keep the category invariant continuously: a non-commercial
			// role drops any previously chosen categories.
			if role, ok := m.selectedRole(); !ok || !role.IsCommercial() {
				m.categories.Clear()
			}
		}
		return m, nil
	case fieldCountries:
		m.countries.Update(msg)
		return m, nil
	case fieldCategories:
		if role, ok := m.selectedRole(); ok && role.IsCommercial() {
			m.categories.Update(msg)
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
}

func (m *UserFormModel) setFocus(focus int) {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.focus = focus
	if focus < len(m.inputs) {
		m.inputs[focus].Focus()
	}
}

func (m UserFormModel) selectedRole() (domain.Role, bool) {
	for _, r := range m.roleList {
		if r.ID == m.roles.Selected {
			return r, true
		}
	}
	return domain.Role{}, false
}

func (m UserFormModel) buildInput() validate.UserInput {
	in := validate.UserInput{
		Email:     m.inputs[fieldEmail].Value(),
		Password:  m.inputs[fieldPassword].Value(),
		FirstName: m.inputs[fieldFirstName].Value(),
		LastName:  m.inputs[fieldLastName].Value(),
		Active:    m.active,
		Editing:   m.editing,
	}
	if m.roles.Selected > 0 {
		in.RoleID = strconv.Itoa(m.roles.Selected)
	}
	for _, id := range m.countries.SelectedIDs() {
		in.CountryIDs = append(in.CountryIDs, strconv.Itoa(id))
	}
	for _, id := range m.categories.SelectedIDs() {
		in.CategoryIDs = append(in.CategoryIDs, strconv.Itoa(id))
	}
	return in
}

func (m UserFormModel) trySubmit() (tea.Model, tea.Cmd) {
	in := m.buildInput()
	validate.ApplyRole(&in, m.roleList)

	m.errors = validate.ValidateUser(in, m.roleList)
	if len(m.errors) > 0 {
		return m, nil
	}

	payload, err := validate.BuildPayload(in)
	if err != nil {
		m.err = err
		m.mode = FormError
		return m, nil
	}

	m.mode = FormSubmitting
	return m, tea.Batch(m.submitCmd(payload), m.spin.Tick)
}

// View renders the form.
func (m UserFormModel) View() string {
	switch m.mode {
	case FormLoading:
		return boxStyle.Render(m.spin.View() + " " + i18n.T("common.loading"))

	case FormSubmitting:
		return boxStyle.Render(m.spin.View() + " " + i18n.T("common.loading"))

	case FormDone:
		key := "users.created"
		if m.editing {
			key = "users.updated"
		}
		return boxStyle.Render(successStyle.Render(i18n.T(key)) + "\n\n" +
			helpStyle.Render(FormatKey("enter", "exit")))

	case FormError:
		return boxStyle.Render(errorStyle.Render(m.err.Error()) + "\n\n" +
			helpStyle.Render(FormatKey("enter", "exit")))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(i18n.T("users.title")))
	b.WriteString("\n")

	labels := [4]string{
		i18n.T("users.email"),
		i18n.T("users.password"),
		i18n.T("users.first_name"),
		i18n.T("users.last_name"),
	}
	fieldKeys := [4]string{"email", "password", "first_name", "last_name"}
	for i, ti := range m.inputs {
		b.WriteString(m.fieldLabel(labels[i], i))
		b.WriteString(ti.View())
		b.WriteString("\n")
		if msg, ok := m.errors[fieldKeys[i]]; ok {
			b.WriteString(dangerStyle.Render("  " + msg))
			b.WriteString("\n")
		}
	}

	b.WriteString(m.fieldLabel(i18n.T("users.role"), fieldRole))
	b.WriteString(m.roles.View())
	if msg, ok := m.errors["role_id"]; ok {
		b.WriteString(dangerStyle.Render("  " + msg))
		b.WriteString("\n")
	}

	b.WriteString(m.fieldLabel(i18n.T("users.countries"), fieldCountries))
	b.WriteString(m.countries.View())
	if msg, ok := m.errors["country_ids"]; ok {
		b.WriteString(dangerStyle.Render("  " + msg))
		b.WriteString("\n")
	}

	if role, ok := m.selectedRole(); ok && role.IsCommercial() {
		b.WriteString(m.fieldLabel(i18n.T("users.categories"), fieldCategories))
		b.WriteString(m.categories.View())
		if msg, ok := m.errors["category_ids"]; ok {
			b.WriteString(dangerStyle.Render("  " + msg))
			b.WriteString("\n")
		}
	}

	activeMark := "[ ]"
	if m.active {
		activeMark = "[x]"
	}
	b.WriteString("\n" + mutedStyle.Render(activeMark+" "+i18n.T("common.active")) + "\n")

	b.WriteString(helpStyle.Render(
		FormatKey("tab", "next field") + " • " +
			FormatKey("space", "toggle") + " • " +
			FormatKey("ctrl+a", "active") + " • " +
			FormatKey("ctrl+s", "save") + " • " +
			FormatKey("esc", "cancel"),
	))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m UserFormModel) fieldLabel(label string, field int) string {
	if m.focus == field {
		return selectedItemStyle.Render(label) + "\n"
	}
	return mutedStyle.Render(label) + "\n"
}

func roleOptions(roles []domain.Role) []Option {
	opts := make([]Option, len(roles))
	for i, r := range roles {
		opts[i] = Option{ID: r.ID, Label: r.Name}
	}
	return opts
}

func countryOptions(countries []domain.Country) []Option {
	opts := make([]Option, len(countries))
	for i, c := range countries {
		opts[i] = Option{ID: c.ID, Label: c.Name + " (" + c.Code + ")"}
	}
	return opts
}

func categoryOptions(categories []domain.Category) []Option {
	opts := make([]Option, len(categories))
	for i, c := range categories {
		opts[i] = Option{ID: c.ID, Label: c.Name}
	}
	return opts
}

// RunUserForm starts the interactive user form and returns the stored user,
// or nil when the operator cancelled.
func RunUserForm(api *client.Client, submit SubmitFunc, existing *domain.User) (*domain.User, error) {
	p := tea.NewProgram(NewUserForm(api, submit, existing))
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	if m, ok := final.(UserFormModel); ok {
		if m.Err() != nil {
			return nil, m.Err()
		}
		return m.Saved(), nil
	}
	return nil, nil
}
