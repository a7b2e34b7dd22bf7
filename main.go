package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/llehouerou/soundsphere/internal/catalog"
	"github.com/llehouerou/soundsphere/internal/config"
	"github.com/llehouerou/soundsphere/internal/library"
	"github.com/llehouerou/soundsphere/internal/media"
	"github.com/llehouerou/soundsphere/internal/playback"
	"github.com/llehouerou/soundsphere/internal/storage"
	"github.com/llehouerou/soundsphere/internal/ui"
)

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// The TUI owns the terminal, so logs go to a file or nowhere.
	logOut := io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := log.NewWithOptions(logOut, log.Options{ReportTimestamp: true})

	var st storage.Store
	if cfg.DataPath != "" {
		st, err = storage.Open(cfg.DataPath)
	} else {
		st, err = storage.OpenDefault()
	}
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer st.Close()

	lib := library.Open(st, library.WithLogger(logger))

	el := media.NewBeep()
	defer el.Close()

	player := playback.New(el, playback.WithVolume(cfg.Volume))
	defer player.Close()

	m := ui.New(player, lib, catalog.New())
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
