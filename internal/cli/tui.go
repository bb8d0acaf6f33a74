package cli

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"knighty/internal/config"
	"knighty/internal/eventbus"
	"knighty/internal/ui"
)

func runTUI(cmd *cobra.Command, args []string) error {
	closeLog := setupLogging(logFile)
	defer closeLog()

	// Create event bus
	bus := eventbus.New()

	a, err := loadApp(bus)
	if err != nil {
		bus.Close()
		return err
	}

	// Persist every language switch
	_, unsubscribe := config.NewLanguageSaver(bus, a.configSvc, a.cfg)
	defer func() {
		// Pending saves land before the subscription goes away
		bus.Close()
		unsubscribe()
	}()

	sessionID := uuid.NewString()
	log.Printf("Starting session %s with %d cheat sheets", sessionID, a.store.Count())

	uiModel := ui.NewModel(bus, a.cfg, a.store, a.bundle, sessionID)
	if len(args) == 1 {
		uiModel.OpenLink(args[0])
	}

	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseAllMotion())
	uiModel.SetProgram(p)

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	defer bus.Subscribe(eventbus.EventError, forward)()
	defer bus.Subscribe(eventbus.EventConfigSaved, forward)()

	stop := make(chan struct{})
	go func() {
		for {
			select {
			case event := <-eventChan:
				p.Send(ui.EventMsg{Event: event})
			case <-stop:
				return
			}
		}
	}()

	// Run the UI
	_, err = p.Run()
	close(stop)
	if err != nil {
		log.Printf("Error running program: %v", err)
		return fmt.Errorf("error running program: %w", err)
	}
	log.Printf("UI exited normally")
	return nil
}
