package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skillshot/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve [drill]",
	Short: "Start the trainer SSH server",
	Long: `Start an SSH server that gives every connection its own training
session. Sessions share nothing but the trainer config. Without a drill
argument connections play the standard drill.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.skillshot/host_key

Examples:
  skillshot serve                           # Listen on :23234, standard drill
  skillshot serve --ssh :2222               # Listen on port 2222
  skillshot serve skillshot-classic         # Serve the classic drill
  skillshot serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, args []string) error {
	drill, err := newDrill(drillArg(args))
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr, "skillshot-ssh")
	if err != nil {
		return err
	}
	defer closeLog()

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Drill:       drill.ID(),
		Trainer:     drill.Config(),
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Starting skillshot SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe(cmd.Context())
}
