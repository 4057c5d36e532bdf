package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"tunegrip/internal/config"
	"tunegrip/internal/eventbus"
	"tunegrip/internal/history"
	"tunegrip/internal/provider"
	"tunegrip/internal/session"
	"tunegrip/internal/ui"
)

func main() {
	// Parse command line arguments
	var configPath string
	var country string
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.StringVar(&country, "country", "", "Catalog store front country code (overrides config)")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("tunegrip.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg := loadOrCreateConfig(configSvc, configPath)
	if country != "" {
		cfg.Country = country
	}

	// Initialize services
	catalog := provider.NewClient(cfg.Country)
	historyStore := history.NewStore(bus)
	searchSession := session.New(catalog, bus, cfg.MinTermLength, cfg.MaxResults)
	defer searchSession.Close()

	// Create event channel for UI
	eventChan := make(chan eventbus.DomainEvent, 100)

	// Forward events to the event channel
	forwardEvent := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	for _, et := range []eventbus.EventType{
		eventbus.EventSearchStarted,
		eventbus.EventSearchCompleted,
		eventbus.EventSearchFailed,
		eventbus.EventSearchCleared,
		eventbus.EventHistoryAdded,
		eventbus.EventHistoryDuplicate,
		eventbus.EventHistoryRemoved,
		eventbus.EventError,
	} {
		bus.Subscribe(et, forwardEvent)
	}

	// Create UI model
	uiModel := ui.NewModel(cfg, searchSession, historyStore)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Quit()
	}()

	// Start forwarding events to UI in background
	done := make(chan struct{})
	go func() {
		defer close(done)
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Run the UI
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	// Cleanup
	close(eventChan)
	<-done
}

// loadOrCreateConfig loads config from the given path (or the default
// location) and writes the defaults on first run
func loadOrCreateConfig(configSvc config.ConfigService, path string) *config.Config {
	if path != "" {
		if cfg, err := configSvc.LoadFromPath(path); err == nil {
			log.Printf("Loaded config from %s", path)
			return cfg
		}
		log.Printf("Creating new config at %s", path)
		cfg := config.DefaultConfig()
		if err := configSvc.SaveToPath(cfg, path); err != nil {
			log.Printf("Failed to save config: %v", err)
		}
		return cfg
	}

	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Failed to load config, using defaults: %v", err)
		return config.DefaultConfig()
	}
	return cfg
}
