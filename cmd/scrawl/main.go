// Command scrawl is a small terminal diagram editor built around in-place
// label editing.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"scrawl/config"
	"scrawl/diagram"
	"scrawl/tui"
)

type options struct {
	Config  string `short:"c" long:"config" description:"Path to config file (default: ~/.config/scrawl/config.yaml)"`
	LogFile string `long:"log-file" description:"Write debug logs to this file"`
	Version bool   `short:"v" long:"version" description:"Show the program version"`

	Args struct {
		File string `positional-arg-name:"diagram.json"`
	} `positional-args:"true"`
}

var version = "dev"

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[OPTIONS] [diagram.json]"
	if _, err := parser.Parse(); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Println("scrawl", version)
		return
	}

	setupLogging(opts.LogFile)

	cfgPath := opts.Config
	if cfgPath == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			cfgPath = filepath.Join(home, ".config", "scrawl", "config.yaml")
		}
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	d := &diagram.Diagram{}
	if opts.Args.File != "" {
		if _, err := os.Stat(opts.Args.File); err == nil {
			d, err = diagram.LoadFile(opts.Args.File)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		}
	}

	app, err := tui.NewApp(d, opts.Args.File, cfg.Editor.OverlayOptions(), cfg.UI.SelectionColor)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := app.Run(); err != nil {
		log.Error().Err(err).Msg("editor exited with error")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupLogging sends logs to a file when asked for, and silences them
// otherwise so they cannot corrupt the terminal UI.
func setupLogging(path string) {
	if path == "" {
		log.Logger = zerolog.Nop()
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.Logger = zerolog.Nop()
		return
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: f, NoColor: true}).
		With().Timestamp().Logger().Level(zerolog.DebugLevel)
}
