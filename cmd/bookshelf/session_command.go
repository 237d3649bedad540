package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"bookshelf/internal/config"
	"bookshelf/internal/library"
	"bookshelf/internal/logging"
	"bookshelf/internal/session"
	"bookshelf/internal/store"
)

func runSession(ctx *commandContext, cmd *cobra.Command) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newSessionLogger(cfg)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warn: session log unavailable: %v\n", err)
		logger = logging.NewNop()
		closeLog = func() {}
	}
	defer closeLog()
	logger = logger.With(logging.String("run_id", uuid.NewString()))

	st := store.New(cfg.Library.Path, logger)
	if ok, lockErr := st.TryLock(); lockErr != nil {
		logger.Warn("library lock unavailable", logging.Error(lockErr))
	} else if !ok {
		fmt.Fprintln(cmd.ErrOrStderr(), "warn: another bookshelf session appears to be using this library")
		logger.Warn("library lock held elsewhere", logging.String("path", cfg.Library.Path))
	} else {
		defer st.Unlock()
	}

	out := cmd.OutOrStdout()
	books, loadErr := st.Load()
	if loadErr != nil {
		// Degrade to an empty catalog; the document on disk is only replaced
		// if the user exits through the menu.
		fmt.Fprintf(out, "Error loading library: %v\n", loadErr)
		fmt.Fprintln(out, "Starting with an empty library.")
		logger.Error("library load failed", logging.Error(loadErr))
		books = nil
	}

	opts := session.Options{
		ClearScreen: cfg.Session.ClearScreen && stdoutIsTerminal(),
		Colorize:    resolveColor(cfg.Session.Color),
	}

	s := session.New(library.New(books), st, cmd.InOrStdin(), out, logger, opts)
	if err := s.Run(); err != nil {
		if errors.Is(err, io.EOF) {
			// Input ended without an explicit exit; unsaved changes are lost
			// by design and there is nobody left to re-prompt.
			fmt.Fprintln(out)
			return nil
		}
		return err
	}
	return nil
}

func newSessionLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	if cfg.Logging.Dir == "" {
		return logging.NewNop(), func() {}, nil
	}
	runStamp := time.Now().UTC().Format("20060102T150405")
	path := filepath.Join(cfg.Logging.Dir, fmt.Sprintf("bookshelf-%s.log", runStamp))
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open session log: %w", err)
	}
	logger, err := logging.New(file, logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		file.Close()
		return nil, nil, err
	}
	return logger, func() { file.Close() }, nil
}

func stdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func resolveColor(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return stdoutIsTerminal()
	}
}
