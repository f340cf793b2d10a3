// Package main provides the stui command, which runs the bundled demo
// applications.
//
// Usage:
//
//	stui run [-demo name] [-host terminal|bubbletea] [-config path]
//	stui demos
//	stui version
//	stui help
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tui "github.com/JakeHillion/stateful-tui"
	"github.com/JakeHillion/stateful-tui/internal/config"
	"github.com/JakeHillion/stateful-tui/internal/debug"
	"github.com/JakeHillion/stateful-tui/internal/demo"
)

const version = "0.1.0"

const usage = `stui - reactive terminal UI demos

Usage:
  stui <command> [options]

Commands:
  run         Run a demo (default: pets)
  demos       List the available demos
  version     Print version information
  help        Show this help message

Run options:
  -demo name      Demo to run
  -host name      terminal (default) or bubbletea
  -config path    Config file (default ~/.config/stateful-tui/config.toml)

Debug logging:
  STUI_DEBUG=/tmp/stui.log STUI_LOG_LEVEL=trace stui run
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		args = []string{"run"}
	}

	command, args := args[0], args[1:]
	switch command {
	case "run":
		if err := runDemo(args, stderr); err != nil {
			fmt.Fprintf(stderr, "stui: %v\n", err)
			return 1
		}
	case "demos":
		fmt.Fprintln(stdout, strings.Join(demo.Names(), "\n"))
	case "version":
		fmt.Fprintf(stdout, "stui version %s\n", version)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
	default:
		fmt.Fprintf(stderr, "unknown command: %s\n\n", command)
		fmt.Fprint(stderr, usage)
		return 1
	}
	return 0
}

func runDemo(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "override config path (optional)")
	name := fs.String("demo", "pets", "demo to run: "+strings.Join(demo.Names(), ", "))
	hostName := fs.String("host", "", "terminal or bubbletea (overrides config)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *hostName != "" {
		if cfg.Host, err = config.ParseHost(*hostName); err != nil {
			return err
		}
	}

	if err := cfg.StartLogging(); err != nil {
		return err
	}
	if err := debug.InitFromEnv(); err != nil {
		return err
	}
	defer debug.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	err = demo.Run(ctx, *name, cfg.Host, cfg.Options()...)
	if errors.Is(err, tui.ErrNotTerminal) {
		return fmt.Errorf("%w (stui needs an interactive terminal)", err)
	}
	return err
}
