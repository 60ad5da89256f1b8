package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
)

func TestApplyLaunchArgs(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantFPS   int
		wantSpeed int
		wantErr   bool
		wantValid bool
	}{
		{"no args keeps defaults", nil, 30, 5, false, true},
		{"fps only", []string{"60"}, 60, 5, false, true},
		{"fps and speed", []string{"100", "10"}, 100, 10, false, true},
		{"lowest", []string{"1", "1"}, 1, 1, false, true},
		{"fps not a number", []string{"fast"}, 30, 5, true, false},
		{"speed not a number", []string{"30", "x"}, 30, 5, true, false},
		{"fps too high", []string{"101"}, 101, 5, false, false},
		{"fps zero", []string{"0"}, 0, 5, false, false},
		{"speed too high", []string{"30", "11"}, 30, 11, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultSnakeConfig()
			err := applyLaunchArgs(&cfg, tc.args)

			if (err != nil) != tc.wantErr {
				t.Fatalf("applyLaunchArgs() error = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil {
				if !errors.Is(err, config.ErrInvalid) {
					t.Errorf("error %v does not wrap ErrInvalid", err)
				}
				return
			}
			if cfg.Launch.FPS != tc.wantFPS || cfg.Launch.Speed != tc.wantSpeed {
				t.Errorf("launch = %+v, expected fps %d speed %d", cfg.Launch, tc.wantFPS, tc.wantSpeed)
			}
			if valid := cfg.Validate() == nil; valid != tc.wantValid {
				t.Errorf("Validate() ok = %v, expected %v", valid, tc.wantValid)
			}
		})
	}
}

func TestNewLoggerWithoutFileDiscards(t *testing.T) {
	logger, closeLog, err := newLogger("", true)
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	defer closeLog()
	logger.Info("dropped") // must not panic
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.log")

	logger, closeLog, err := newLogger(path, true)
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Debug("turn", "heading", "up")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "turn") || !strings.Contains(string(data), "heading=up") {
		t.Errorf("debug entry missing from log file: %q", data)
	}
}
