package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"knighty/internal/config"
	"knighty/internal/eventbus"
	"knighty/internal/i18n"
)

var langCmd = &cobra.Command{
	Use:       "lang [en|ar]",
	Short:     "Print or set the interface language",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: i18n.Supported(),
	RunE:      runLang,
}

func init() {
	rootCmd.AddCommand(langCmd)
}

func runLang(cmd *cobra.Command, args []string) error {
	bus := eventbus.New()

	a, err := loadApp(bus)
	if err != nil {
		bus.Close()
		return err
	}

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		bus.Close()
		fmt.Fprintln(out, a.cfg.Language())
		return nil
	}

	lang, err := i18n.Parse(args[0])
	if err != nil {
		bus.Close()
		return err
	}

	// Same write-through path as the browser's language toggle
	failed := make(chan error, 1)
	unsubErr := bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ErrorEvent); ok {
			select {
			case failed <- event.Err:
			default:
			}
		}
	})
	_, unsubscribe := config.NewLanguageSaver(bus, a.configSvc, a.cfg)
	bus.Publish(eventbus.LanguageChangedEvent{Language: lang})
	bus.Close()
	unsubscribe()
	unsubErr()

	select {
	case err := <-failed:
		return fmt.Errorf("language not saved: %w", err)
	default:
	}

	fmt.Fprintf(out, "%s %s\n", config.LanguageKey, lang)
	return nil
}
