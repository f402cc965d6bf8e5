// Command lx200console is an interactive, single-keystroke REPL that drives
// the dispatcher in-process and prints ANSI-colored command/response
// traffic, in the style of the teacher's Y/N/R/T single-key prompts
// (ui.NextYN, ui.NextRetryOrExit) adapted here into a numbered menu of
// canned LX200 command mnemonics rather than a yes/no gate.
package main

import (
	"fmt"
	"os"

	"github.com/telescopio-montemayor/lx200-go/dispatcher"
	"github.com/telescopio-montemayor/lx200-go/ui"
)

// menuEntry pairs a single keystroke with the framed payload it sends.
type menuEntry struct {
	key     rune
	label   string
	payload string // bytes between ':' and '#', empty for bare ACK
	ack     bool
}

var menu = []menuEntry{
	{'1', "Query alignment mode (ACK)", "", true},
	{'2', "Get right ascension (GR)", "GR", false},
	{'3', "Get declination (GD)", "GD", false},
	{'4', "Get tracking rate (GT)", "GT", false},
	{'5', "Get alignment status (GW)", "GW", false},
	{'6', "Sync database (CM)", "CM", false},
	{'7', "Distance bars (D)", "D", false},
	{'8', "Slew to target (MS)", "MS", false},
}

func main() {
	d := dispatcher.New()

	ui.ClearScreen()
	ui.Greenf("lx200console — single-key command REPL. Press a number to send a command, Q to quit.\n\n")
	printMenu()

	ui.DrainKeys()
	keyEvents := ui.StartKeyEvents()
	for {
		k, ok := <-keyEvents
		if !ok {
			return
		}
		if k == 'q' || k == 'Q' || k == 27 {
			fmt.Println("\nbye")
			os.Exit(0)
		}
		entry, found := lookup(k)
		if !found {
			continue
		}
		send(d, entry)
	}
}

func printMenu() {
	for _, e := range menu {
		fmt.Printf("  [%c] %s\n", e.key, e.label)
	}
	fmt.Println("  [Q] quit")
	fmt.Println()
}

func lookup(k rune) (menuEntry, bool) {
	for _, e := range menu {
		if e.key == k {
			return e, true
		}
	}
	return menuEntry{}, false
}

func send(d *dispatcher.Dispatcher, e menuEntry) {
	var out []byte
	if e.ack {
		ui.Greenf("-> ACK (0x06)\n")
		out = d.HandleACK()
	} else {
		ui.Greenf("-> :%s#\n", e.payload)
		out = d.Handle(e.payload)
	}
	if len(out) == 0 {
		ui.Warningf("<- (no reply)\n\n")
		return
	}
	ui.Cyanf("<- %s\n\n", string(out))
}
