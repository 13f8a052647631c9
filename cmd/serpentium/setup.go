package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/serpentium/internal/config"
	"github.com/vovakirdan/serpentium/internal/storage"
)

// env holds what every interactive command needs.
type env struct {
	cfg    config.Config
	store  *storage.Store
	logger *log.Logger
	logOut io.Closer
	width  int
	height int
}

// setup loads configuration, opens the logger and the score store.
// A missing store is not fatal: the game still works without scores.
func setup() (*env, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, closer, err := openLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		logger, closer = log.New(io.Discard), nil
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "error", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return &env{
		cfg:    cfg,
		store:  store,
		logger: logger,
		logOut: closer,
		width:  width,
		height: height,
	}, nil
}

func (e *env) Close() {
	if e.store != nil {
		e.store.Close()
	}
	if e.logOut != nil {
		e.logOut.Close()
	}
}
