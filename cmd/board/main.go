// Command board runs the terminal task board against a running API
// server.
package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/example/teamboard/board"
	"github.com/example/teamboard/board/i18n"
	"github.com/example/teamboard/client"
)

func main() {
	cmd := &cli.Command{
		Name:  "board",
		Usage: "terminal task board",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Usage:   "base URL of the task API",
				Value:   "http://localhost:3000",
				Sources: cli.EnvVars("TEAMBOARD_ADDR"),
			},
			&cli.StringFlag{
				Name:    "locale",
				Usage:   "interface language (en, fa)",
				Value:   string(i18n.LocaleEnglish),
				Sources: cli.EnvVars("TEAMBOARD_LOCALE"),
			},
			&cli.StringFlag{
				Name:    "theme",
				Usage:   "color theme (dark, light)",
				Value:   board.DefaultTheme,
				Sources: cli.EnvVars("TEAMBOARD_THEME"),
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "write diagnostic logs to this file",
				Sources: cli.EnvVars("TEAMBOARD_LOG_FILE"),
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	locale, ok := i18n.Parse(cmd.String("locale"))
	if !ok {
		return fmt.Errorf("unsupported locale %q", cmd.String("locale"))
	}

	theme := cmd.String("theme")
	if _, ok := board.GetPalette(theme); !ok {
		return fmt.Errorf("unknown theme %q", theme)
	}

	logger := zerolog.Nop()
	if path := cmd.String("log-file"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logger = zerolog.New(f).With().Timestamp().Logger()
	}

	api := client.New(cmd.String("addr"))
	model := board.NewModel(api,
		board.WithLocale(locale),
		board.WithTheme(theme),
		board.WithLogger(logger),
	)

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("board exited with error: %w", err)
	}
	return nil
}
