package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/skim"
	"github.com/iw2rmb/skim/buffer"
	"github.com/iw2rmb/skim/internal/config"
	"github.com/iw2rmb/skim/internal/highlight"
	"github.com/iw2rmb/skim/terminal"
	"github.com/iw2rmb/skim/viewer"
)

type options struct {
	configPath  string
	backend     string
	empty       string
	status      bool
	syntax      string
	theme       string
	debugLog    string
	showVersion bool

	// set records the flags given on the command line.
	set  map[string]bool
	path string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet(skim.Name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.configPath, "config", "", "Path to a TOML or YAML configuration file")
	fs.StringVar(&opts.backend, "backend", string(config.BackendTea), "Terminal frontend (tea, ansi, tcell)")
	fs.StringVar(&opts.empty, "empty", buffer.EmptyBlank.String(), "Document shown without a file (blank, greeting)")
	fs.BoolVar(&opts.status, "status", true, "Show the status and message bars")
	fs.StringVar(&opts.syntax, "syntax", config.SyntaxAuto, "Syntax colouring: auto, off or a language name")
	fs.StringVar(&opts.theme, "theme", "", "Chroma style for syntax colouring")
	fs.StringVar(&opts.debugLog, "debug-log", "", "Write diagnostics to this file")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "skim - terminal text viewer\n\n")
		fmt.Fprintf(stderr, "Usage: skim [options] [file]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return opts, fmt.Errorf("expected at most one file, got %d", fs.NArg())
	}
	opts.path = fs.Arg(0)

	opts.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })
	return opts, nil
}

// resolveSettings layers defaults, the config file and explicit flags.
func resolveSettings(opts options, file config.File) (config.Settings, error) {
	s, err := file.Apply(config.Defaults())
	if err != nil {
		return s, err
	}

	if opts.set["backend"] {
		b, err := config.ParseBackend(opts.backend)
		if err != nil {
			return s, err
		}
		s.Backend = b
	}
	if opts.set["empty"] {
		m, ok := buffer.ParseEmptyMode(opts.empty)
		if !ok {
			return s, fmt.Errorf("unknown empty mode %q (want blank or greeting)", opts.empty)
		}
		s.EmptyMode = m
	}
	if opts.set["status"] {
		s.StatusBar = opts.status
	}
	if opts.set["syntax"] {
		s.Syntax = opts.syntax
	}
	if opts.set["theme"] {
		s.Theme = opts.theme
	}
	if opts.set["debug-log"] {
		s.DebugLog = opts.debugLog
	}
	return s, nil
}

// viewerConfig opens the document and assembles the viewer configuration.
// A file that cannot be opened is reported in the message bar.
func viewerConfig(path string, s config.Settings, logger viewer.Logger) viewer.Config {
	doc, err := buffer.Open(path, s.EmptyMode)

	cfg := viewer.Config{
		Document:  doc,
		StatusBar: s.StatusBar,
		Welcome:   skim.Welcome(),
		KeyMap:    viewer.DefaultKeyMap(),
		Style:     viewer.DefaultStyle(),
		Logger:    logger,
	}
	if err != nil {
		cfg.Message = "ERR: Could not open file: " + path
		if logger != nil {
			logger.Printf("open: %v", err)
		}
	}

	if s.Syntax != config.SyntaxOff {
		opt := highlight.Options{Theme: s.Theme}
		if s.Syntax != config.SyntaxAuto {
			opt.Language = s.Syntax
		}
		if h := highlight.ForDocument(doc, opt); h != nil {
			cfg.Highlighter = h
			if logger != nil {
				logger.Printf("highlight: %s", h.Language())
			}
		}
	}
	return cfg
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	if opts.showVersion {
		fmt.Fprintf(stdout, "%s %s\n", skim.Name, skim.Version())
		return 0
	}

	file, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	settings, err := resolveSettings(opts, file)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	var logger viewer.Logger
	if settings.DebugLog != "" {
		f, err := tea.LogToFile(settings.DebugLog, skim.Name)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		defer f.Close()
		logger = log.Default()
	}

	cfg := viewerConfig(opts.path, settings, logger)
	if err := runBackend(settings.Backend, cfg, stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func runBackend(b config.Backend, cfg viewer.Config, stdout io.Writer) error {
	switch b {
	case config.BackendANSI:
		drv, err := terminal.OpenANSI(os.Stdin, os.Stdout, cfg.KeyMap, cfg.Style)
		if err != nil {
			return err
		}
		return closeAfter(drv, terminal.Run(viewer.NewState(cfg), drv, drv))
	case config.BackendTcell:
		drv, err := terminal.OpenTcell(stdout, cfg.KeyMap, cfg.Style)
		if err != nil {
			return err
		}
		return closeAfter(drv, terminal.Run(viewer.NewState(cfg), drv, drv))
	default:
		p := tea.NewProgram(newApp(cfg), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return err
		}
		fmt.Fprintln(stdout, terminal.Farewell)
		return nil
	}
}

func closeAfter(drv terminal.Driver, err error) error {
	if cerr := drv.Close(); err == nil {
		err = cerr
	}
	return err
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
