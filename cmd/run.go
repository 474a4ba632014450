package cmd

import (
	"fmt"
	"io"
	"log"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/cogquiz/internal/app"
	"github.com/abhisek/cogquiz/internal/quiz"
)

// runApp sets up logging, builds the engine, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	closeLog, err := setupLogging(resolveFlag(cmd, "log", "COGQUIZ_DEBUG_LOG"))
	if err != nil {
		return err
	}
	defer closeLog()

	skipIntro, _ := cmd.Flags().GetBool("skip-intro")
	opts := app.Options{
		Engine:      quiz.NewEngine(quiz.DefaultBank()),
		Participant: resolveFlag(cmd, "name", "COGQUIZ_NAME"),
		SkipIntro:   skipIntro,
	}

	return app.Run(opts)
}

// setupLogging sends the standard logger to path, or discards it when path is
// empty so nothing is written over the alt screen.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := tea.LogToFile(path, "cogquiz")
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}
	return func() { f.Close() }, nil
}
