package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/treblecross/internal/config"
	"github.com/vovakirdan/treblecross/internal/platform/tui"
)

var (
	flagSSHAddress  string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the game over SSH",
	Long: `Serve the game over SSH so people can play remotely.

Anyone can connect with a plain SSH client and gets the menu in
their own session:

  ssh -p 23235 localhost

Match results from all sessions land in the shared database.`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddress, "ssh", ":23235", "SSH listen address")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Host key path (auto-generated if empty)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Close idle sessions after this long")
}

func runServe(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	serverCfg := tui.DefaultSSHServerConfig()
	serverCfg.Address = flagSSHAddress
	serverCfg.HostKeyPath = flagHostKey
	serverCfg.DBPath = flagDBPath
	serverCfg.BoardSize = cfg.Board.Size
	serverCfg.GameOptions = gameOptions(cfg)
	serverCfg.IdleTimeout = flagIdleTimeout

	server, err := tui.NewSSHServer(serverCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating SSH server: %v\n", err)
		os.Exit(1)
	}

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
