package board

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/example/teamboard/board/i18n"
	"github.com/example/teamboard/client"
)

// formField identifies the focused form input.
type formField int

const (
	fieldTitle formField = iota
	fieldDescription
)

// AddTaskForm collects a title and optional description for a new
// task. New tasks are always created in the first column.
type AddTaskForm struct {
	api API

	title       textinput.Model
	description textarea.Model
	focused     formField

	errMsg       string
	isSubmitting bool
}

// NewAddTaskForm builds the form with the title field focused.
func NewAddTaskForm(api API, locale i18n.Locale) *AddTaskForm {
	title := textinput.New()
	title.Placeholder = i18n.T(locale, i18n.MsgTitlePlaceholder)
	title.CharLimit = 200
	title.Focus()

	description := textarea.New()
	description.Placeholder = i18n.T(locale, i18n.MsgDescPlaceholder)
	description.CharLimit = 1000
	description.SetHeight(3)

	return &AddTaskForm{
		api:         api,
		title:       title,
		description: description,
		focused:     fieldTitle,
	}
}

// SetLocale re-renders the placeholders in a new language.
func (f *AddTaskForm) SetLocale(locale i18n.Locale) {
	f.title.Placeholder = i18n.T(locale, i18n.MsgTitlePlaceholder)
	f.description.Placeholder = i18n.T(locale, i18n.MsgDescPlaceholder)
}

// Title returns the current title input value.
func (f *AddTaskForm) Title() string {
	return f.title.Value()
}

// Description returns the current description input value.
func (f *AddTaskForm) Description() string {
	return f.description.Value()
}

// ErrMsg returns the inline error to display, if any.
func (f *AddTaskForm) ErrMsg() string {
	return f.errMsg
}

// IsSubmitting reports whether a create request is in flight.
func (f *AddTaskForm) IsSubmitting() bool {
	return f.isSubmitting
}

// Focused returns the field that currently has focus.
func (f *AddTaskForm) Focused() formField {
	return f.focused
}

// NextField moves focus between the title and description inputs.
func (f *AddTaskForm) NextField() {
	if f.focused == fieldTitle {
		f.focused = fieldDescription
		f.title.Blur()
		f.description.Focus()
		return
	}
	f.focused = fieldTitle
	f.description.Blur()
	f.title.Focus()
}

// Blur removes focus from both inputs.
func (f *AddTaskForm) Blur() {
	f.title.Blur()
	f.description.Blur()
}

// Focus restores focus to the current field.
func (f *AddTaskForm) Focus() {
	if f.focused == fieldTitle {
		f.title.Focus()
		return
	}
	f.description.Focus()
}

// HandleInput forwards a message to the focused input.
func (f *AddTaskForm) HandleInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.focused == fieldTitle {
		f.title, cmd = f.title.Update(msg)
		return cmd
	}
	f.description, cmd = f.description.Update(msg)
	return cmd
}

// Submit validates the title locally and, when non-empty, posts the
// task. While a request is in flight further submissions are ignored.
func (f *AddTaskForm) Submit(locale i18n.Locale) tea.Cmd {
	if f.isSubmitting {
		return nil
	}

	if strings.TrimSpace(f.title.Value()) == "" {
		f.errMsg = i18n.T(locale, i18n.MsgTitleRequired)
		return nil
	}

	f.errMsg = ""
	f.isSubmitting = true

	api := f.api
	req := client.CreateTaskRequest{
		Title:       f.title.Value(),
		Description: f.description.Value(),
		Status:      "To Do",
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		created, err := api.Create(ctx, req)
		if err != nil {
			return createFailedMsg{err: err}
		}
		return taskCreatedMsg{task: created}
	}
}

// Apply folds a create result into the form. Success clears the
// fields; failure keeps them so the user can correct and retry.
func (f *AddTaskForm) Apply(msg tea.Msg) {
	switch msg := msg.(type) {
	case taskCreatedMsg:
		f.isSubmitting = false
		f.errMsg = ""
		f.title.SetValue("")
		f.description.SetValue("")
	case createFailedMsg:
		f.isSubmitting = false

		var apiErr *client.APIError
		if errors.As(msg.err, &apiErr) {
			f.errMsg = apiErr.Message()
			return
		}
		f.errMsg = msg.err.Error()
	}
}
