package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/pagebuilder/internal/config"
	"github.com/jask/pagebuilder/internal/layout"
	"github.com/jask/pagebuilder/internal/tui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, opts, err := config.Load(args)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if opts.PrintConfig {
		return config.Encode(os.Stdout, cfg)
	}

	// the terminal belongs to bubbletea, so logs go to a file or nowhere
	if cfg.Log.File != "" {
		f, err := tea.LogToFile(cfg.Log.File, cfg.Log.Prefix)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	var progOpts []tea.ProgramOption
	if cfg.UI.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(tui.New(cfg, layout.NewEditor(layout.UUIDGenerator{}, layout.UUIDGenerator{})), progOpts...)
	_, err = p.Run()
	return err
}
