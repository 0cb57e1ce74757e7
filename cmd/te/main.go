// Package main is the entry point for the te editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lemodoescoding/te/internal/app"
	"github.com/lemodoescoding/te/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer application.Shutdown()

	terminal := backend.NewTerminal(os.Stdin, os.Stdout)
	application.SetBackend(terminal)

	// Raw mode disables SIGINT; SIGTERM and SIGHUP still need the
	// terminal restored. The application itself belongs to the Run loop.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM, syscall.SIGHUP)
	defer func() {
		signal.Stop(signals)
		close(signals)
	}()
	go restoreOnSignal(signals, terminal.Shutdown, os.Exit)

	if err := application.Run(); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// restoreOnSignal waits for a signal, restores the terminal and exits.
// A closed channel means the editor finished on its own.
func restoreOnSignal(signals <-chan os.Signal, restore func(), exit func(int)) {
	if _, ok := <-signals; !ok {
		return
	}
	restore()
	exit(1)
}

func parseFlags(args []string) (app.Options, error) {
	var opts app.Options
	var showVersion bool

	fs := flag.NewFlagSet("te", flag.ContinueOnError)
	fs.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	fs.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	fs.BoolVar(&showVersion, "version", false, "Show version information")
	fs.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "te - a small terminal text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: te [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  Ctrl-S  save\n  Ctrl-Q  quit\n  Ctrl-F  find\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if showVersion {
		fmt.Printf("te %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	switch fs.NArg() {
	case 0:
	case 1:
		opts.File = fs.Arg(0)
	default:
		return opts, fmt.Errorf("only one file can be opened, got %d", fs.NArg())
	}
	return opts, nil
}
