package main

import (
	"encoding/json"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wayfind/building"
	"github.com/katalvlaran/wayfind/internal/config"
	"github.com/katalvlaran/wayfind/internal/logging"
	"github.com/katalvlaran/wayfind/navigator"
)

// globalFlags override the matching config values when set.
type globalFlags struct {
	configPath string
	buildings  []string
	building   string
	logLevel   string
	logFormat  string
}

// app is the state shared by every subcommand of one invocation.
type app struct {
	flags  globalFlags
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
	nav    *navigator.Navigator
}

func newRootCmd(stdout, stderr io.Writer) (*cobra.Command, *app) {
	a := &app{stdout: stdout, stderr: stderr}
	a.logger, _ = logging.New(logging.Config{Level: "warn"}, stderr)

	root := &cobra.Command{
		Use:   "wayfind",
		Short: "wayfind - indoor wayfinding on building floor grids",
		Long: `wayfind computes walkable routes between cells of a building floor,
optionally avoiding stairs for wheelchair users, and turns them into
step-by-step directions.

Buildings are read from JSON, YAML or TOML files listed in the config file
or passed with --buildings. Without any, a small built-in building is used.
All output is JSON.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configPath, "config", "", "Config file (default: ./wayfind.{yaml,toml,json})")
	pf.StringSliceVar(&a.flags.buildings, "buildings", nil, "Building files or directories (overrides config)")
	pf.StringVar(&a.flags.building, "building", "", "Building id (default: the configured default building)")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "Log level: debug, info, warn, error or off")
	pf.StringVar(&a.flags.logFormat, "log-format", "", "Log format: text or json")

	root.AddCommand(
		newPathCmd(a),
		newDirectionsCmd(a),
		newRouteRoomsCmd(a),
		newReachCmd(a),
		newSearchCmd(a),
		newRoomCmd(a),
		newFloorsCmd(a),
		newBuildingsCmd(a),
	)
	return root, a
}

// setup loads config, builds the request logger and the navigator.
// Precedence: flags > WAYFIND_* environment > config file > defaults.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.flags.configPath)
	if err != nil {
		return err
	}
	if len(a.flags.buildings) > 0 {
		cfg.Buildings = a.flags.buildings
	}
	if a.flags.logLevel != "" {
		cfg.Logging.Level = a.flags.logLevel
	}
	if a.flags.logFormat != "" {
		cfg.Logging.Format = a.flags.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.LoggerConfig(), a.stderr)
	if err != nil {
		return err
	}
	a.logger = logger.With("request_id", uuid.NewString(), "command", cmd.Name())

	cat, err := building.LoadCatalog(cfg.DefaultBuilding, cfg.Buildings...)
	if err != nil {
		return err
	}
	a.nav = navigator.New(cat,
		navigator.WithStairsPenalty(cfg.Search.StairsPenalty),
		navigator.WithMaxExpansions(cfg.Search.MaxExpansions),
	)
	a.logger.Debug("catalog loaded", "buildings", cat.Len(), "default", cat.DefaultID())
	return nil
}

// buildingID is the building a command targets, for output labels.
func (a *app) buildingID() string {
	if a.flags.building != "" {
		return a.flags.building
	}
	return a.nav.Catalog().DefaultID()
}

func (a *app) writeJSON(v any) error {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
