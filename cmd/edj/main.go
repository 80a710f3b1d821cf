// Package main is the entry point for the edj line editor.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/dshills/edj/internal/app"
	"github.com/dshills/edj/internal/config"
	"github.com/dshills/edj/internal/log"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var (
	ConfigFlag = &cli.PathFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to a TOML or YAML configuration file",
	}
	LogLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "Log level (debug, info, warn, error)",
	}
	JumpPolicyFlag = &cli.StringFlag{
		Name:  "jump-policy",
		Usage: "What a new jump does to forward locations (edit, log)",
	}
	PromptFlag = &cli.StringFlag{
		Name:    "prompt",
		Aliases: []string{"p"},
		Usage:   "Command prompt",
	}
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newApp(os.Stdin, os.Stdout, os.Stderr).RunContext(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "edj",
		Usage:     "line editor with undo, redo, jumps and a command journal",
		ArgsUsage: "[FILE]",
		Version:   fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			ConfigFlag,
			LogLevelFlag,
			JumpPolicyFlag,
			PromptFlag,
		},
		Action: func(c *cli.Context) error {
			return edit(c)
		},
	}
}

// edit loads configuration, applies flag overrides and runs a session on
// the app's reader.
func edit(c *cli.Context) error {
	if c.NArg() > 1 {
		return fmt.Errorf("expected at most one file, got %d", c.NArg())
	}

	cfg := config.New(config.WithFile(c.Path(ConfigFlag.Name)))
	if err := cfg.Load(c.Context); err != nil {
		return err
	}
	overrides := map[string]*cli.StringFlag{
		"logging.level":     LogLevelFlag,
		"navigation.policy": JumpPolicyFlag,
		"editor.prompt":     PromptFlag,
	}
	for path, flag := range overrides {
		if c.IsSet(flag.Name) {
			if err := cfg.Set(path, c.String(flag.Name)); err != nil {
				return err
			}
		}
	}

	level, ok := log.ParseLevel(cfg.Logging().Level)
	if !ok {
		return fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", cfg.Logging().Level)
	}
	logger := log.NewLogger(log.LoggerConfig{Level: level, Output: c.App.ErrWriter, Prefix: "edj"})
	log.SetDefault(logger)
	for path, err := range cfg.ConfigErrors() {
		logger.Warn("ignoring setting", "path", path, "error", err)
	}

	session, err := app.NewSession(app.Options{
		Config: cfg,
		Out:    c.App.Writer,
		FS:     osFS{},
		Logger: logger,
	})
	if err != nil {
		return err
	}

	if c.NArg() == 1 {
		if err := session.Open(c.Args().First()); err != nil {
			fmt.Fprintf(c.App.Writer, "? %v\n", err)
		}
	}

	err = session.Run(c.Context, c.App.Reader)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// osFS opens names as given, relative to the working directory or absolute.
type osFS struct{}

func (osFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}
