// Package i18n provides the board's interface translations.
package i18n

import (
	task "github.com/example/teamboard/domain/task"
)

// Locale identifies an interface language.
type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleFarsi   Locale = "fa"
)

// Locales lists the supported locales in switch order.
var Locales = []Locale{LocaleEnglish, LocaleFarsi}

// Parse returns the locale for a tag like "en", or false for an
// unsupported tag.
func Parse(tag string) (Locale, bool) {
	for _, l := range Locales {
		if string(l) == tag {
			return l, true
		}
	}
	return "", false
}

// Next cycles to the following supported locale.
func Next(l Locale) Locale {
	for i, candidate := range Locales {
		if candidate == l {
			return Locales[(i+1)%len(Locales)]
		}
	}
	return Locales[0]
}

// Message keys.
const (
	MsgBoardTitle       = "board.title"
	MsgLoading          = "board.loading"
	MsgEmptyColumn      = "board.empty_column"
	MsgRefreshFailed    = "board.refresh_failed"
	MsgAddTask          = "form.add_task"
	MsgTitlePlaceholder = "form.title_placeholder"
	MsgDescPlaceholder  = "form.desc_placeholder"
	MsgTitleRequired    = "form.title_required"
	MsgSubmit           = "form.submit"
	MsgSubmitting       = "form.submitting"
	MsgAssignedTo       = "card.assigned_to"
	MsgUnassigned       = "card.unassigned"
	MsgHelp             = "board.help"
)

var messages = map[Locale]map[string]string{
	LocaleEnglish: {
		MsgBoardTitle:       "Team Task Board",
		MsgLoading:          "Loading tasks...",
		MsgEmptyColumn:      "No tasks in this column.",
		MsgRefreshFailed:    "Failed to refresh tasks.",
		MsgAddTask:          "Add New Task",
		MsgTitlePlaceholder: "Task Title",
		MsgDescPlaceholder:  "Task Description (Optional)",
		MsgTitleRequired:    "Title is required.",
		MsgSubmit:           "Add Task",
		MsgSubmitting:       "Adding...",
		MsgAssignedTo:       "Assigned to:",
		MsgUnassigned:       "Unassigned",
		MsgHelp:             "tab: fields • enter: add • esc: board • r: refresh • t: theme • l: language • q: quit",
	},
	LocaleFarsi: {
		MsgBoardTitle:       "تخته وظایف تیم",
		MsgLoading:          "در حال بارگذاری وظایف...",
		MsgEmptyColumn:      "هیچ وظیفه‌ای در این ستون نیست.",
		MsgRefreshFailed:    "به‌روزرسانی وظایف ناموفق بود.",
		MsgAddTask:          "افزودن وظیفه جدید",
		MsgTitlePlaceholder: "عنوان وظیفه",
		MsgDescPlaceholder:  "توضیحات وظیفه (اختیاری)",
		MsgTitleRequired:    "عنوان الزامی است.",
		MsgSubmit:           "افزودن وظیفه",
		MsgSubmitting:       "در حال افزودن...",
		MsgAssignedTo:       "مسئول:",
		MsgUnassigned:       "بدون مسئول",
		MsgHelp:             "tab: فیلدها • enter: افزودن • esc: تخته • r: تازه‌سازی • t: تم • l: زبان • q: خروج",
	},
}

var statusTitles = map[Locale]map[task.Status]string{
	LocaleEnglish: {
		task.StatusToDo:       "To Do",
		task.StatusInProgress: "In Progress",
		task.StatusDone:       "Done",
	},
	LocaleFarsi: {
		task.StatusToDo:       "انجام نشده",
		task.StatusInProgress: "در حال انجام",
		task.StatusDone:       "انجام شده",
	},
}

// T returns the message for key in the given locale, falling back to
// English for unknown locales or keys.
func T(l Locale, key string) string {
	if m, ok := messages[l]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	return messages[LocaleEnglish][key]
}

// StatusTitle returns the localized column header for a status.
func StatusTitle(l Locale, s task.Status) string {
	if m, ok := statusTitles[l]; ok {
		if title, ok := m[s]; ok {
			return title
		}
	}
	return string(s)
}
