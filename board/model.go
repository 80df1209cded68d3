package board

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/example/teamboard/board/i18n"
	task "github.com/example/teamboard/domain/task"
)

// focusZone identifies which part of the screen receives key input.
type focusZone int

const (
	focusForm focusZone = iota
	focusBoard
)

// Model is the root bubbletea model: the add-task form above the
// three status columns.
type Model struct {
	store *Store
	form  *AddTaskForm

	locale i18n.Locale
	theme  string
	styles Styles

	focus  focusZone
	width  int
	height int

	logger zerolog.Logger
}

var _ tea.Model = (*Model)(nil)

// Option configures the model.
type Option func(*Model)

// WithLocale sets the initial interface language.
func WithLocale(l i18n.Locale) Option {
	return func(m *Model) { m.locale = l }
}

// WithTheme sets the initial theme by name.
func WithTheme(name string) Option {
	return func(m *Model) {
		if _, ok := GetPalette(name); ok {
			m.theme = name
		}
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Model) { m.logger = logger }
}

// NewModel builds the board for the given API.
func NewModel(api API, opts ...Option) *Model {
	m := &Model{
		store:  NewStore(api),
		locale: i18n.LocaleEnglish,
		theme:  DefaultTheme,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.form = NewAddTaskForm(api, m.locale)

	palette, _ := GetPalette(m.theme)
	m.styles = NewStyles(palette)
	return m
}

// Init fetches the task list as soon as the board is shown.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.store.Refresh(), textinput.Blink)
}

// Update handles key input and fetch results.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tasksLoadedMsg:
		m.store.Apply(msg)
		return m, nil

	case listFailedMsg:
		m.logger.Warn().Err(msg.err).Msg("task list refresh failed")
		m.store.Apply(msg)
		return m, nil

	case taskCreatedMsg:
		m.logger.Info().Str("task_id", msg.task.ID).Msg("task created")
		m.form.Apply(msg)
		// A successful create re-fetches so the board shows the
		// stored record, id and timestamp included.
		return m, m.store.Refresh()

	case createFailedMsg:
		m.logger.Warn().Err(msg.err).Msg("task creation failed")
		m.form.Apply(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, m.form.HandleInput(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C quits from anywhere, even mid-edit.
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.focus {
	case focusForm:
		return m.handleFormKey(msg)
	default:
		return m.handleBoardKey(msg)
	}
}

func (m *Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.focus = focusBoard
		m.form.Blur()
		return m, nil

	case tea.KeyTab, tea.KeyShiftTab:
		m.form.NextField()
		return m, nil

	case tea.KeyEnter:
		// Enter submits from the title field; in the description it
		// inserts a newline.
		if m.form.Focused() == fieldTitle {
			return m, m.form.Submit(m.locale)
		}

	case tea.KeyCtrlD:
		return m, m.form.Submit(m.locale)
	}

	return m, m.form.HandleInput(msg)
}

func (m *Model) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "r":
		return m, m.store.Refresh()
	case "t":
		m.theme = NextTheme(m.theme)
		palette, _ := GetPalette(m.theme)
		m.styles = NewStyles(palette)
		return m, nil
	case "l":
		m.locale = i18n.Next(m.locale)
		m.form.SetLocale(m.locale)
		return m, nil
	case "a", "enter", "esc":
		m.focus = focusForm
		m.form.Focus()
		return m, nil
	}
	return m, nil
}

// View renders the title, form, columns, and help line.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(i18n.T(m.locale, i18n.MsgBoardTitle)))
	b.WriteString("\n")
	b.WriteString(m.viewForm())
	b.WriteString("\n")
	b.WriteString(m.viewBoard())
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(i18n.T(m.locale, i18n.MsgHelp)))
	b.WriteString("\n")

	return b.String()
}

func (m *Model) viewForm() string {
	var b strings.Builder

	b.WriteString(m.styles.FormLabel.Render(i18n.T(m.locale, i18n.MsgAddTask)))
	b.WriteString("\n")
	b.WriteString(m.form.title.View())
	b.WriteString("\n")
	b.WriteString(m.form.description.View())
	b.WriteString("\n")

	if m.form.IsSubmitting() {
		b.WriteString(m.styles.CardMeta.Render(i18n.T(m.locale, i18n.MsgSubmitting)))
		b.WriteString("\n")
	}
	if errMsg := m.form.ErrMsg(); errMsg != "" {
		b.WriteString(m.styles.Error.Render(errMsg))
		b.WriteString("\n")
	}

	return m.styles.FormBox.Render(b.String())
}

func (m *Model) viewBoard() string {
	if m.store.IsLoading() && len(m.store.Tasks()) == 0 {
		return m.styles.Empty.Render(i18n.T(m.locale, i18n.MsgLoading))
	}

	columns := make([]string, 0, len(task.Statuses))
	for _, status := range task.Statuses {
		columns = append(columns, m.viewColumn(status))
	}
	board := lipgloss.JoinHorizontal(lipgloss.Top, columns...)

	if m.store.Err() != nil {
		notice := m.styles.Notice.Render(i18n.T(m.locale, i18n.MsgRefreshFailed))
		return lipgloss.JoinVertical(lipgloss.Left, notice, board)
	}
	return board
}

func (m *Model) viewColumn(status task.Status) string {
	tasks := m.store.ByStatus(status)

	var b strings.Builder
	b.WriteString(m.styles.ColumnTitle.Render(
		fmt.Sprintf("%s (%d)", i18n.StatusTitle(m.locale, status), len(tasks))))

	if len(tasks) == 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.Empty.Render(i18n.T(m.locale, i18n.MsgEmptyColumn)))
	}
	for _, t := range tasks {
		b.WriteString("\n")
		b.WriteString(m.viewCard(t))
	}

	width := m.columnWidth()
	return m.styles.Column.Width(width).Render(b.String())
}

func (m *Model) viewCard(t task.Task) string {
	var b strings.Builder

	b.WriteString(m.styles.CardTitle.Render(t.Title))
	if t.Description != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.CardBody.Render(t.Description))
	}

	b.WriteString("\n")
	if t.Assignee != "" {
		b.WriteString(m.styles.CardMeta.Render(
			i18n.T(m.locale, i18n.MsgAssignedTo) + " " + t.Assignee))
	} else {
		b.WriteString(m.styles.CardMeta.Render(i18n.T(m.locale, i18n.MsgUnassigned)))
	}

	return m.styles.Card.Render(b.String())
}

const minColumnWidth = 26

func (m *Model) columnWidth() int {
	if m.width == 0 {
		return minColumnWidth
	}
	w := m.width/len(task.Statuses) - 4
	if w < minColumnWidth {
		return minColumnWidth
	}
	return w
}
