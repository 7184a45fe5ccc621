package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/aretw0/quipnote"
	"github.com/aretw0/quipnote/internal/config"
	"github.com/aretw0/quipnote/pkg/screen"
)

// errReported means the failure was already drawn on the screen output, so
// Execute only sets the exit code.
var errReported = errors.New("reported")

// app carries the global flags shared by every command.
type app struct {
	verbose    bool
	configPath string
	dataDir    string
	adapter    string
	codec      string
	jokeURL    string
	noColor    bool

	logger *slog.Logger
}

// newRootCmd builds the command tree. A fresh tree per call keeps flag state
// from leaking between invocations in tests.
func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "quipnote",
		Short: "A random joke and a list of notes, in your terminal",
		Long: `quipnote fetches a random joke on demand and keeps a short list of notes.
Notes are persisted as one blob in a local slot and survive restarts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}

			opts := &slog.HandlerOptions{
				Level: level,
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
			slog.SetDefault(a.logger)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	flags.StringVar(&a.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/quipnote/config.yaml)")
	flags.StringVar(&a.dataDir, "data-dir", "", "Directory holding the notes slot")
	flags.StringVar(&a.adapter, "adapter", "", "Slot store: fs, memory (lost when the process exits) or redis")
	flags.StringVar(&a.codec, "codec", "", "Slot encoding: json or yaml")
	flags.StringVar(&a.jokeURL, "joke-url", "", "Joke endpoint")
	flags.BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		newJokeCmd(a),
		newAddCmd(a),
		newListCmd(a),
		newClearCmd(a),
		newScreenCmd(a),
		newWatchCmd(a),
		newStatusCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the CLI and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// open loads the config, applies flag overrides and builds a screen. When
// load is set the notes slot is read before returning.
func (a *app) open(ctx context.Context, load bool) (*quipnote.Screen, error) {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return nil, err
	}
	if a.dataDir != "" {
		cfg.DataDir = a.dataDir
	}
	if a.adapter != "" {
		cfg.Adapter = a.adapter
	}
	if a.codec != "" {
		cfg.Codec = a.codec
	}
	if a.jokeURL != "" {
		cfg.JokeURL = a.jokeURL
	}

	s, err := quipnote.New(cfg.DataDir,
		quipnote.WithLogger(a.logger),
		quipnote.WithAdapter(cfg.Adapter),
		quipnote.WithCodec(cfg.Codec),
		quipnote.WithSlotKey(cfg.SlotKey),
		quipnote.WithJokeURL(cfg.JokeURL),
		quipnote.WithTimeout(cfg.Timeout),
		quipnote.WithReadOnly(cfg.ReadOnly),
		quipnote.WithRedis(cfg.RedisAddr, cfg.RedisDB),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize quipnote: %w", err)
	}

	if load {
		// A load failure is part of the view; the list starts empty.
		_ = s.Start(ctx)
	}
	return s, nil
}

func (a *app) renderer(w io.Writer) *screen.Renderer {
	useColor := !a.noColor
	if f, ok := w.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		useColor = false
	}
	return screen.NewRenderer(useColor)
}

// outcome maps an action error to the command's return value.
func outcome(err error) error {
	if err != nil {
		return errReported
	}
	return nil
}
