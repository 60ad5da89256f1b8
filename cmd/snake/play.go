package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := launchConfig(cmd, args)
	if err != nil {
		return err
	}
	// Past validation, failures are not usage mistakes.
	cmd.SilenceUsage = true

	logger, closeLog, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		return err
	}
	defer closeLog()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal")
	}

	rt := core.DefaultConfig()
	rt.FPS = cfg.Launch.FPS
	rt.Speed = cfg.Launch.Speed
	rt.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	// Round history lives for this process only.
	store, err := storage.Open(storage.MemoryDSN)
	if err != nil {
		logger.Warn("could not open round log", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	session, err := snake.New(cfg, core.NewMonotonicClock(), core.NewRandom(rt.Seed),
		snake.WithLogger(logger),
		snake.WithRoundEndHook(tui.RoundRecorder(store, cfg, logger)),
	)
	if err != nil {
		return err
	}

	needW, needH := tui.ScreenSize(session.Board())
	if rt.ScreenW < needW || rt.ScreenH < needH+1 {
		logger.Warn("terminal smaller than the board", "have", fmt.Sprintf("%dx%d", rt.ScreenW, rt.ScreenH),
			"need", fmt.Sprintf("%dx%d", needW, needH+1))
	}

	logger.Info("starting", "fps", rt.FPS, "speed", rt.Speed, "seed", rt.Seed,
		"move_us", cfg.MoveInterval(), "poll_us", session.PollInterval())

	if err := tui.Run(session, store, rt, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// newLogger builds the game logger. The terminal belongs to the UI, so logs
// only go to a file; without one they are discarded.
func newLogger(path string, debug bool) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, func() { f.Close() }, nil
}
