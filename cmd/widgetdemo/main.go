package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"headlessui/internal/config"
	"headlessui/internal/store"
	"headlessui/internal/trace"
)

// options holds the parsed CLI flags.
type options struct {
	configPath string
	logPath    string
	verbose    bool
}

func registerFlags(fs *flag.FlagSet, opts *options) {
	fs.StringVar(&opts.configPath, "config", "", "path to a TOML or YAML config file")
	fs.StringVar(&opts.logPath, "log", "", "write logs to this file")
	fs.BoolVar(&opts.verbose, "verbose", false, "log every widget transition")
}

func parseFlags() options {
	var opts options
	registerFlags(flag.CommandLine, &opts)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: widgetdemo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Widgetdemo drives a dropdown, a modal and a tab group from the\n")
		fmt.Fprintf(os.Stderr, "keyboard and mouse.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	return opts
}

func run(opts options) error {
	if opts.logPath != "" {
		f, err := tea.LogToFile(opts.logPath, "widgetdemo")
		if err != nil {
			return fmt.Errorf("open log %q: %w", opts.logPath, err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	ctx := context.Background()
	exporter, err := trace.NewOTLPExporter(ctx, cfg.Trace.ServiceName)
	if err != nil {
		return fmt.Errorf("otlp exporter: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := exporter.Shutdown(ctx); err != nil {
			log.Printf("otlp shutdown: %v", err)
		}
	}()

	var observers []store.Observer
	if exporter != nil {
		observers = append(observers, exporter.Observer())
	}
	if opts.verbose {
		observers = append(observers, logObserver())
	}

	m, err := newModel(cfg, store.NewMultiObserver(observers...))
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func logObserver() store.Observer {
	return store.ObserverFunc(func(t store.Transition) {
		if !t.Changed {
			return
		}
		log.Printf("%s %s %s: %v -> %v", t.Widget, t.ID, t.Action, t.From, t.To)
	})
}

func main() {
	opts := parseFlags()
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "widgetdemo: %v\n", err)
		os.Exit(1)
	}
}
