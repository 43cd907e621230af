// Command keycalc is a keypad calculator for the terminal. Widen the
// window (or press tab) for the scientific keypad.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", defaultConfigPath(), "path to configuration file")
	layout := flag.String("layout", "", "keypad layout: auto, standard or scientific (overrides config)")
	debug := flag.Bool("debug", false, "write a debug log to keycalc.log")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if *layout != "" {
		cfg.Layout = *layout
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 2
		}
	}

	logPath := cfg.DebugLog
	if *debug && logPath == "" {
		logPath = "keycalc.log"
	}
	if logPath != "" {
		f, err := tea.LogToFile(logPath, "keycalc")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: opening debug log: %v\n", err)
			return 1
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(initialModel(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
