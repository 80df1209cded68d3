package board

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Palette defines the semantic colors of a board theme.
type Palette struct {
	Primary    lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Surface    lipgloss.Color
	Error      lipgloss.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "dark"

var themes = map[string]Palette{
	"dark": {
		Primary:    lipgloss.Color("#7aa2f7"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Surface:    lipgloss.Color("#3b4261"),
		Error:      lipgloss.Color("#f7768e"),
	},
	"light": {
		Primary:    lipgloss.Color("#2e7de9"),
		Foreground: lipgloss.Color("#3760bf"),
		Muted:      lipgloss.Color("#848cb5"),
		Surface:    lipgloss.Color("#c4c8da"),
		Error:      lipgloss.Color("#f52a65"),
	},
}

// ThemeNames returns the sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// NextTheme cycles to the following theme name.
func NextTheme(name string) string {
	names := ThemeNames()
	for i, n := range names {
		if n == name {
			return names[(i+1)%len(names)]
		}
	}
	return DefaultTheme
}

// Styles holds the rendered lipgloss styles for one palette.
type Styles struct {
	Title       lipgloss.Style
	Column      lipgloss.Style
	ColumnTitle lipgloss.Style
	Card        lipgloss.Style
	CardTitle   lipgloss.Style
	CardBody    lipgloss.Style
	CardMeta    lipgloss.Style
	Empty       lipgloss.Style
	FormBox     lipgloss.Style
	FormLabel   lipgloss.Style
	Error       lipgloss.Style
	Notice      lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles builds the style set for a palette.
func NewStyles(p Palette) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			MarginBottom(1),
		Column: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Surface).
			Padding(0, 1).
			MarginRight(1),
		ColumnTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(p.Primary),
		Card: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.Surface).
			Padding(0, 1).
			MarginTop(1),
		CardTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Foreground),
		CardBody: lipgloss.NewStyle().
			Foreground(p.Foreground),
		CardMeta: lipgloss.NewStyle().
			Foreground(p.Muted),
		Empty: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true).
			MarginTop(1),
		FormBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Surface).
			Padding(0, 1).
			MarginBottom(1),
		FormLabel: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),
		Error: lipgloss.NewStyle().
			Foreground(p.Error),
		Notice: lipgloss.NewStyle().
			Foreground(p.Error).
			Italic(true),
		Help: lipgloss.NewStyle().
			Foreground(p.Muted).
			MarginTop(1),
	}
}
