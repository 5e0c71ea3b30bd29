package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"excelsearch/internal/catalog"
	"excelsearch/internal/config"
	"excelsearch/internal/domain"
	"excelsearch/internal/eventbus"
	"excelsearch/internal/ui"
)

func main() {
	// Parse command line arguments
	var (
		configPath string
		backendURL string
		startDir   string
		language   string
		logPath    string
	)
	flag.StringVar(&configPath, "config", "", "Path to the config file")
	flag.StringVar(&backendURL, "backend", "", "Catalog backend address")
	flag.StringVar(&startDir, "dir", "", "Directory the file picker opens in")
	flag.StringVar(&startDir, "d", "", "Directory the file picker opens in (shorthand)")
	flag.StringVar(&language, "lang", "", "Interface language (tr or en)")
	flag.StringVar(&logPath, "log", "", "Log file")
	flag.Parse()

	// A bare argument is the picker directory
	if startDir == "" && flag.NArg() > 0 {
		startDir = flag.Arg(0)
	}

	configSvc := config.NewConfigService()
	if configPath != "" {
		configSvc = config.NewConfigServiceAt(configPath)
	}
	cfg := loadOrCreateConfig(configSvc)

	if err := config.ApplyEnv(cfg, ".env"); err != nil {
		fmt.Printf("Error reading environment: %v\n", err)
		os.Exit(1)
	}

	// Flags win over file and environment
	if backendURL != "" {
		cfg.BackendURL = backendURL
	}
	if language != "" {
		cfg.Language = language
	}
	if logPath != "" {
		cfg.LogFile = logPath
	}
	if startDir != "" {
		absDir, err := filepath.Abs(startDir)
		if err != nil {
			fmt.Printf("Error resolving path: %v\n", err)
			os.Exit(1)
		}
		cfg.StartDir = absDir
	}

	if err := cfg.Validate(); err != nil {
		fmt.Printf("Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// Set up logging
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := eventbus.New()
	defer bus.Close()
	logActivity(bus)

	client := catalog.NewClient(cfg.BackendURL, cfg.Timeout())
	log.Printf("Using catalog backend at %s (timeout %s)", client.BaseURL(), cfg.Timeout())

	uiModel := ui.NewModel(ctx, bus, client, cfg)
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
		p.Quit()
	}()

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}

// loadOrCreateConfig loads the config file, writing the defaults on first run
func loadOrCreateConfig(configSvc config.ConfigService) *config.Config {
	_, statErr := os.Stat(configSvc.Path())

	cfg, err := configSvc.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	if errors.Is(statErr, fs.ErrNotExist) {
		if err := configSvc.Save(cfg); err != nil {
			log.Printf("Failed to save default config: %v", err)
		}
	}
	return cfg
}

// logActivity writes every domain event to the log file
func logActivity(bus eventbus.EventBus) {
	for _, eventType := range domain.AllEventTypes() {
		bus.Subscribe(eventType, func(e eventbus.DomainEvent) {
			log.Printf("[event] %s %+v", e.Type(), e)
		})
	}
}
