package commands

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"cryptonoise/internal/app"
	"cryptonoise/internal/config"
	"cryptonoise/internal/domain"
)

// options carries global flag values and the wiring built from them.
type options struct {
	home       string
	configPath string
	logLevel   string

	settings config.Config
	logger   *slog.Logger
	wire     *app.Wire

	// Test hooks; nil in production.
	entropy    io.Reader
	clipboard  domain.Clipboard
	isTerminal func(io.Writer) bool
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return execute(context.Background(), &options{}, os.Args[1:], os.Stdout, os.Stderr)
}

// execute runs the root command and reports any failure through the logger.
func execute(ctx context.Context, opts *options, args []string, stdout, stderr io.Writer) error {
	root := newRootCmd(opts)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.ExecuteContext(ctx)
	if err != nil {
		log := opts.logger
		if log == nil {
			log = newLogger(stderr, slog.LevelInfo)
		}
		log.Error("command failed", "error", err)
	}
	return err
}

func newRootCmd(opts *options) *cobra.Command {
	root := &cobra.Command{
		Use:           "cryptonoise",
		Short:         "Generate short cryptographic noise strings",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				opts.home = filepath.Join(dir, ".cryptonoise")
			}
			if opts.configPath == "" {
				opts.configPath = filepath.Join(opts.home, config.FileName)
			}
			level, err := config.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			opts.logger = newLogger(cmd.ErrOrStderr(), level)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.home, "home", "", "config dir (default ~/.cryptonoise)")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default <home>/config.yaml)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(generateCmd(opts), configCmd(opts))
	return root
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// load reads the config file and applies --log-level. Commands that rewrite
// the file skip it so a broken file can still be replaced.
func (o *options) load(cmd *cobra.Command) error {
	settings, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		settings.LogLevel = o.logLevel
	}
	level, err := config.ParseLevel(settings.LogLevel)
	if err != nil {
		return err
	}
	o.logger = newLogger(cmd.ErrOrStderr(), level)
	o.settings = settings
	return nil
}

// build wires the app from the loaded settings.
func (o *options) build() error {
	w, err := app.NewWire(app.Config{
		Settings:  o.settings,
		Logger:    o.logger,
		Entropy:   o.entropy,
		Clipboard: o.clipboard,
	})
	if err != nil {
		return err
	}
	o.wire = w
	return nil
}

// terminal reports whether w is an interactive terminal.
func (o *options) terminal(w io.Writer) bool {
	if o.isTerminal != nil {
		return o.isTerminal(w)
	}
	return isTerminal(w)
}
