package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tapball/internal/audio"
	"github.com/vovakirdan/tapball/internal/config"
	"github.com/vovakirdan/tapball/internal/core"
	"github.com/vovakirdan/tapball/internal/games/tapball"
	"github.com/vovakirdan/tapball/internal/logging"
	"github.com/vovakirdan/tapball/internal/platform/spectate"
	"github.com/vovakirdan/tapball/internal/platform/tui"
	"github.com/vovakirdan/tapball/internal/storage"
)

// env holds what a play command opens before the game starts.
// Everything is optional: a missing database or audio device only costs that feature.
type env struct {
	store   *storage.Store
	logger  *log.Logger
	logFile io.Closer
	sounds  *audio.Player
	hub     *spectate.Hub
	cancel  context.CancelFunc
}

// configureGame applies --config and --difficulty before any game is created.
func configureGame() error {
	if flagConfig != "" {
		if _, err := config.LoadTapBall(flagConfig); err != nil {
			return err
		}
	}
	tapball.SetConfigPath(flagConfig)

	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		tapball.SetDifficultyPreset(preset)
	}
	return nil
}

// openEnv opens the log file, the score store, the speaker and the spectator stream.
func openEnv(withAudio bool, spectateAddr string) (*env, error) {
	level, err := logging.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, err
	}

	e := &env{logger: logging.Discard()}

	logPath := flagLogFile
	if logPath == "" {
		logPath = logging.DefaultPath
	}
	if logger, closer, logErr := logging.Open(logPath, "tapball", level); logErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", logErr)
	} else {
		e.logger, e.logFile = logger, closer
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		e.logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		// Continue without storage - game still works
	} else {
		e.store = store
	}

	if withAudio {
		if player, audioErr := audio.NewPlayer(); audioErr != nil {
			e.logger.Warn("audio disabled", "error", audioErr)
		} else {
			e.sounds = player
		}
	}

	if spectateAddr != "" {
		e.startSpectate(spectateAddr)
	}

	return e, nil
}

func (e *env) startSpectate(addr string) {
	ctx, cancel := context.WithCancel(context.Background())
	e.cancel = cancel
	e.hub = spectate.NewHub(spectate.DefaultRate, e.logger)

	go func() {
		if err := spectate.Serve(ctx, addr, e.hub); err != nil {
			e.logger.Error("spectator stream stopped", "address", addr, "error", err)
		}
	}()
}

// hooks returns the collaborators for the TUI host.
func (e *env) hooks() tui.Hooks {
	h := tui.Hooks{Logger: e.logger}
	if e.sounds != nil {
		h.Sounds = e.sounds
	}
	if e.hub != nil {
		h.Spectate = e.hub
	}
	return h
}

// Close releases everything openEnv opened.
func (e *env) Close() {
	if e.cancel != nil {
		e.cancel()
	}
	e.sounds.Close()
	if e.store != nil {
		e.store.Close()
	}
	if e.logFile != nil {
		e.logFile.Close()
	}
}

// runtimeConfig builds the runtime config from the global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
}
