package board

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/teamboard/board/i18n"
	"github.com/example/teamboard/client"
	task "github.com/example/teamboard/domain/task"
)

func TestAddTaskForm_Submit(t *testing.T) {
	t.Run("empty title is rejected locally", func(t *testing.T) {
		api := &fakeAPI{}
		form := NewAddTaskForm(api, i18n.LocaleEnglish)

		cmd := form.Submit(i18n.LocaleEnglish)
		assert.Nil(t, cmd)
		assert.Equal(t, "Title is required.", form.ErrMsg())
		assert.Zero(t, api.createCount(), "no request may leave the client for an empty title")
	})

	t.Run("whitespace-only title is rejected locally", func(t *testing.T) {
		api := &fakeAPI{}
		form := NewAddTaskForm(api, i18n.LocaleEnglish)
		form.title.SetValue("   ")

		assert.Nil(t, form.Submit(i18n.LocaleEnglish))
		assert.Zero(t, api.createCount())
	})

	t.Run("always posts status To Do", func(t *testing.T) {
		api := &fakeAPI{created: &task.Task{ID: "t-9", Title: "Fix bug", Status: task.StatusToDo}}
		form := NewAddTaskForm(api, i18n.LocaleEnglish)
		form.title.SetValue("Fix bug")
		form.description.SetValue("crash on save")

		cmd := form.Submit(i18n.LocaleEnglish)
		require.NotNil(t, cmd)
		assert.True(t, form.IsSubmitting())

		msg := cmd()
		_, ok := msg.(taskCreatedMsg)
		require.True(t, ok, "expected taskCreatedMsg, got %T", msg)

		require.Len(t, api.createReqs, 1)
		assert.Equal(t, "Fix bug", api.createReqs[0].Title)
		assert.Equal(t, "crash on save", api.createReqs[0].Description)
		assert.Equal(t, "To Do", api.createReqs[0].Status)
	})

	t.Run("success clears the fields", func(t *testing.T) {
		api := &fakeAPI{created: &task.Task{ID: "t-9", Title: "Fix bug", Status: task.StatusToDo}}
		form := NewAddTaskForm(api, i18n.LocaleEnglish)
		form.title.SetValue("Fix bug")
		form.description.SetValue("crash on save")

		form.Apply(form.Submit(i18n.LocaleEnglish)())
		assert.False(t, form.IsSubmitting())
		assert.Empty(t, form.Title())
		assert.Empty(t, form.Description())
		assert.Empty(t, form.ErrMsg())
	})

	t.Run("failure keeps the fields and shows the server message", func(t *testing.T) {
		api := &fakeAPI{createErr: &client.APIError{
			StatusCode: http.StatusBadRequest,
			Messages:   []string{"`Blocked` is not a valid status; must be one of: To Do, In Progress, Done."},
		}}
		form := NewAddTaskForm(api, i18n.LocaleEnglish)
		form.title.SetValue("Fix bug")
		form.description.SetValue("crash on save")

		form.Apply(form.Submit(i18n.LocaleEnglish)())
		assert.False(t, form.IsSubmitting())
		assert.Equal(t, "Fix bug", form.Title(), "failed submit must keep the draft")
		assert.Equal(t, "crash on save", form.Description())
		assert.Contains(t, form.ErrMsg(), "not a valid status")
	})

	t.Run("transport failure shows the error text", func(t *testing.T) {
		api := &fakeAPI{createErr: errors.New("connection refused")}
		form := NewAddTaskForm(api, i18n.LocaleEnglish)
		form.title.SetValue("Fix bug")

		form.Apply(form.Submit(i18n.LocaleEnglish)())
		assert.Contains(t, form.ErrMsg(), "connection refused")
	})

	t.Run("submit is ignored while a request is in flight", func(t *testing.T) {
		api := &fakeAPI{created: &task.Task{ID: "t-9"}}
		form := NewAddTaskForm(api, i18n.LocaleEnglish)
		form.title.SetValue("Fix bug")

		require.NotNil(t, form.Submit(i18n.LocaleEnglish))
		assert.Nil(t, form.Submit(i18n.LocaleEnglish))
	})
}

func TestAddTaskForm_Localization(t *testing.T) {
	api := &fakeAPI{}
	form := NewAddTaskForm(api, i18n.LocaleFarsi)

	form.Submit(i18n.LocaleFarsi)
	assert.Equal(t, i18n.T(i18n.LocaleFarsi, i18n.MsgTitleRequired), form.ErrMsg())
}
