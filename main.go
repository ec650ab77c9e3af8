package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"peoplefinder/internal/config"
	"peoplefinder/internal/eventbus"
	"peoplefinder/internal/people"
	"peoplefinder/internal/ui"
)

func main() {
	var (
		configPath string
		peoplePath string
		logPath    string
		debounce   time.Duration
		blurGrace  time.Duration
	)
	flag.StringVar(&configPath, "config", "", "Config file (default: user config dir)")
	flag.StringVar(&peoplePath, "people", "", "TOML file with the people to search")
	flag.StringVar(&logPath, "log", "peoplefinder.log", "Log file")
	flag.DurationVar(&debounce, "debounce", 0, "Pause after the last keystroke before filtering")
	flag.DurationVar(&blurGrace, "blur-grace", 0, "Delay before the suggestions close on blur")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Load configuration
	configSvc := config.NewConfigService()
	if configPath != "" {
		configSvc = config.NewConfigServiceAt(configPath)
	}
	cfg, err := config.LoadOrCreate(configSvc)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Flags win over the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debounce":
			cfg.Search.DebounceMS = int(debounce / time.Millisecond)
		case "blur-grace":
			cfg.Search.BlurGraceMS = int(blurGrace / time.Millisecond)
		case "people":
			cfg.DatasetPath = peoplePath
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Invalid settings: %v\n", err)
		os.Exit(1)
	}

	dataset, err := loadDataset(cfg.DatasetPath)
	if err != nil {
		fmt.Printf("Error loading people: %v\n", err)
		os.Exit(1)
	}
	log.Printf("Loaded %d people, config %s", dataset.Len(), configSvc.Path())

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	bus.Subscribe(eventbus.EventQueryCommitted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.QueryCommittedEvent); ok {
			log.Printf("Query %q matched %d people", event.Query, event.Matches)
		}
	})
	bus.Subscribe(eventbus.EventPersonSelected, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.PersonSelectedEvent); ok {
			log.Printf("Selected %s", event.Person.Lifespan())
		}
	})

	var opts []ui.Option
	if os.Getenv("PEOPLEFINDER_E2E_TEST") == "1" {
		opts = append(opts, ui.WithReadyMarker())
	}
	uiModel := ui.NewModel(bus, cfg, dataset, opts...)

	p := tea.NewProgram(uiModel,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)

	// Handle termination signals; ctrl+c arrives as a key in raw mode
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		<-sigChan
		p.Send(ui.ShutdownMsg{})
	}()

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}

// loadDataset reads the people file, or the built-in list when path is empty
func loadDataset(path string) (*people.Dataset, error) {
	if path == "" {
		return people.Builtin()
	}
	return people.LoadFile(path)
}
