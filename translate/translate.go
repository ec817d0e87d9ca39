// Package translate formats user visible messages for the current locale.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printer     *message.Printer
	printerOnce sync.Once
)

func load() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("emuview: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	printerOnce.Do(load)
	return printer.Sprintf(key, args...)
}

// SetLanguage forces the message language, overriding the process locale.
func SetLanguage(tag language.Tag) {
	printerOnce.Do(load)
	printer = message.NewPrinter(tag)
}
