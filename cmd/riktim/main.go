package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/aeolun/riktim/pkg/auth"
	"github.com/aeolun/riktim/pkg/chat"
	"github.com/aeolun/riktim/pkg/client"
	"github.com/aeolun/riktim/pkg/config"
	"github.com/aeolun/riktim/pkg/notify"
	"github.com/aeolun/riktim/pkg/ui"
)

var Version = "dev"

func main() {
	configPath := flag.String("config", "", "Path to config file (default: ~/.config/riktim/config.toml)")
	statePath := flag.String("state", "", "Path to state database (default: XDG data dir)")
	logPath := flag.String("log", "", "Write debug logs to this file")
	reset := flag.Bool("reset", false, "Clear the stored session and preferences, then exit")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("riktim %s\n", Version)
		return
	}

	if *configPath == "" {
		*configPath = "~/.config/riktim/config.toml"
	}
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs go to a file or nowhere
	logger := log.New(os.Stderr)
	logger.SetLevel(log.WarnLevel)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger = log.New(f)
		logger.SetLevel(log.DebugLevel)
	}

	if *statePath == "" {
		// Same XDG resolution terminal apps conventionally use
		xdgData := os.Getenv("XDG_DATA_HOME")
		if xdgData == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to get home directory: %v\n", err)
				os.Exit(1)
			}
			xdgData = filepath.Join(homeDir, ".local", "share")
		}
		*statePath = filepath.Join(xdgData, "riktim", "state.db")
	}

	state, err := client.OpenState(*statePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open state database: %v\n", err)
		os.Exit(1)
	}
	defer state.Close()

	if *reset {
		if err := state.ClearSession(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to clear session: %v\n", err)
			os.Exit(1)
		}
		state.SetTheme("")
		state.SetWallpaper("")
		fmt.Println("Stored session and preferences cleared")
		return
	}

	verifier := auth.StaticVerifier{
		AcceptedCode:  cfg.Auth.AcceptedCode,
		DispatchDelay: time.Duration(cfg.Auth.CodeDispatchDelayMs) * time.Millisecond,
		VerifyDelay:   time.Duration(cfg.Auth.VerifyDelayMs) * time.Millisecond,
	}

	var alerter notify.Alerter
	if cfg.Notifications.DesktopAlerts {
		alerter = notify.DesktopAlerter{AppName: "Riktim"}
	}
	queue := notify.NewQueue(time.Duration(cfg.Notifications.ToastTTLSecs)*time.Second, alerter)

	model := ui.NewModel(state, cfg, verifier, chat.SeedStore(), queue, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
