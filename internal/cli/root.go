// Package cli implements the command-line interface for cubestate.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/cubestate"
	"github.com/SeamusWaldron/cubestate/internal/config"
	"github.com/SeamusWaldron/cubestate/internal/logging"
	"github.com/SeamusWaldron/cubestate/internal/render"
	"github.com/SeamusWaldron/cubestate/internal/storage"
)

const version = "0.1.0"

// RootOptions holds global flags and the state shared by all commands.
type RootOptions struct {
	ConfigPath string
	DBPath     string
	Verbose    bool

	cfg     *config.Config
	logger  *zap.Logger
	catalog *cubestate.Catalog
}

// NewRootCommand creates the root command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "cubestate",
		Short: "Cube state calculator",
		Long: `cubestate - A CLI tool for applying scrambles to a 3x3x3 cube and viewing the result.

Apply move sequences in standard notation, inspect the resulting corner and
edge vectors, project them onto stickers, draw the cube as SVG and keep a
history of scrambles in a local database.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "Config file (default: ~/.cubestate/config.yaml)")
	cmd.PersistentFlags().StringVar(&opts.DBPath, "db", "", "Database file path (default: ~/.cubestate/cubestate.db)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable verbose output")

	cmd.AddCommand(NewMovesCommand(opts))
	cmd.AddCommand(NewApplyCommand(opts))
	cmd.AddCommand(NewProjectCommand(opts))
	cmd.AddCommand(NewDrawCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))
	cmd.AddCommand(NewPlayCommand(opts))

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads configuration and builds the logger and move catalog.
func (o *RootOptions) setup() error {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return err
	}
	o.cfg = cfg

	logger, err := logging.New(o.Verbose || cfg.Log.Verbose)
	if err != nil {
		return err
	}
	o.logger = logger
	o.catalog = cubestate.NewCatalog()

	o.logger.Debug("configuration loaded",
		zap.String("config", o.ConfigPath),
		zap.String("db", o.dbPath()),
		zap.Bool("validate", cfg.Validate),
	)
	return nil
}

// dbPath returns the database path from flag, then config, else empty for
// the default location.
func (o *RootOptions) dbPath() string {
	if o.DBPath != "" {
		return o.DBPath
	}
	if o.cfg != nil {
		return o.cfg.DBPath
	}
	return ""
}

// openDB opens and migrates the scramble history database.
func (o *RootOptions) openDB() (*storage.DB, error) {
	db, err := storage.OpenHistory(o.dbPath())
	if err != nil {
		return nil, err
	}
	o.logger.Debug("database opened", zap.String("path", db.Path()))
	return db, nil
}

// loadScramble reads a stored scramble by ID, or the newest one for "last".
func loadScramble(db *storage.DB, ref string) (*storage.Scramble, error) {
	repo := storage.NewScrambleRepository(db)

	var s *storage.Scramble
	var err error
	if ref == "last" {
		s, err = repo.GetLast()
	} else {
		s, err = repo.Get(ref)
	}
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("scramble not found: %s", ref)
	}
	return s, nil
}

// renderOptions builds drawing options from the configuration.
func (o *RootOptions) renderOptions() render.Options {
	opts := render.DefaultOptions()
	if o.cfg == nil {
		return opts
	}
	opts.Size = o.cfg.Render.Size
	opts.Elevation = o.cfg.Render.Elevation
	opts.Azimuth = o.cfg.Render.Azimuth
	opts.Palette = opts.Palette.WithOverrides(o.cfg.PaletteOverrides())
	return opts
}

// scrambleOptions returns the options for cubestate.Scramble.
func (o *RootOptions) scrambleOptions(validate bool) []cubestate.Option {
	return []cubestate.Option{
		cubestate.WithCatalog(o.catalog),
		cubestate.WithValidation(validate || (o.cfg != nil && o.cfg.Validate)),
	}
}

// notationArg joins positional arguments into one move sequence so both
// `apply "R U"` and `apply R U` work.
func notationArg(args []string) string {
	return strings.Join(args, " ")
}
