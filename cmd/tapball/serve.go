package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tapball/internal/logging"
	"github.com/vovakirdan/tapball/internal/platform/spectate"
	"github.com/vovakirdan/tapball/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeSpect  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Tap the Ball SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with a variant picker menu.
Scores are stored per-server (all users share the same leaderboard).
Click the ball with the mouse; your SSH client must forward mouse events.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.tapball/host_key

Examples:
  tapball serve                           # Listen on :23234 with auto-generated key
  tapball serve --ssh :2222               # Listen on port 2222
  tapball serve --host-key ./my_host_key  # Use specific host key
  tapball serve --db ./scores.db          # Use specific database
  tapball serve --spectate :8080          # Also stream sessions over WebSocket

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeSpect, "spectate", "", "Stream snapshots to WebSocket spectators on this address")
}

func runServe(_ *cobra.Command, _ []string) {
	if err := configureGame(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	level, err := logging.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New(os.Stderr, "tapball-ssh", level)

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		Logger:      logger,
	}

	if flagServeSpect != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		hub := spectate.NewHub(spectate.DefaultRate, logger)
		cfg.Spectate = hub
		go func() {
			if err := spectate.Serve(ctx, flagServeSpect, hub); err != nil {
				logger.Error("spectator stream stopped", "error", err)
			}
		}()
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Tap the Ball SSH server on %s\n", cfg.Address)
	fmt.Printf("Connect with: ssh localhost -p %s\n", port(cfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// port returns the port part of a host:port address.
func port(addr string) string {
	for i := len(addr) - 1; i >= 0; i-- {
		if addr[i] == ':' {
			return addr[i+1:]
		}
	}
	return addr
}
