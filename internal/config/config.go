// Package config loads the floorpath host configuration through viper.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/floorpath/layout"
	"github.com/katalvlaran/floorpath/pathfind"
)

var (
	// ErrUnknownAlgorithm is returned by Config.Finder.
	ErrUnknownAlgorithm = errors.New("config: unknown algorithm")
	// ErrUnknownHeuristic is returned by Config.HeuristicFunc.
	ErrUnknownHeuristic = errors.New("config: unknown heuristic")
)

// Config is the typed view of the loaded settings.
type Config struct {
	LogLevel     string         `json:"logLevel" mapstructure:"logLevel"`
	Algorithm    string         `json:"algorithm" mapstructure:"algorithm"`
	Heuristic    string         `json:"heuristic" mapstructure:"heuristic"`
	Policy       string         `json:"policy" mapstructure:"policy"`
	MaxSequences int            `json:"maxSequences" mapstructure:"maxSequences"`
	Transfers    bool           `json:"transfers" mapstructure:"transfers"`
	Building     BuildingConfig `json:"building" mapstructure:"building"`
	Query        QueryConfig    `json:"query" mapstructure:"query"`
}

// BuildingConfig describes floors as character rows (see layout.ParseFloor)
// plus the links between connector cells.
type BuildingConfig struct {
	Floors [][]string   `json:"floors" mapstructure:"floors"`
	Links  []LinkConfig `json:"links" mapstructure:"links"`
}

// LinkConfig joins two connector cells.
type LinkConfig struct {
	From PointConfig `json:"from" mapstructure:"from"`
	To   PointConfig `json:"to" mapstructure:"to"`
}

// PointConfig is a cell address.
type PointConfig struct {
	X int `json:"x" mapstructure:"x"`
	Y int `json:"y" mapstructure:"y"`
	Z int `json:"z" mapstructure:"z"`
}

// QueryConfig is the route the host should compute.
type QueryConfig struct {
	Start PointConfig `json:"start" mapstructure:"start"`
	Dest  PointConfig `json:"dest" mapstructure:"dest"`
}

// SetDefaults registers the default values.
func SetDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("algorithm", "thetastar")
	viper.SetDefault("heuristic", "manhattan")
	viper.SetDefault("policy", "shortest-cost")
	viper.SetDefault("maxSequences", 0)
	viper.SetDefault("transfers", false)
}

// Load sets defaults, enables FLOORPATH_* environment overrides and reads
// floorpath.{json,yaml,toml} from configDir.
func Load(configDir string) error {
	SetDefaults()

	viper.SetEnvPrefix("FLOORPATH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName("floorpath")
	viper.AddConfigPath(configDir)

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// Get decodes the current settings.
func Get() (Config, error) {
	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}

	return c, nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// Build parses the floors and links into a layout.Building.
func (b BuildingConfig) Build() (*layout.Building, error) {
	links := make([]layout.Link, len(b.Links))
	for i, l := range b.Links {
		links[i] = layout.Link{A: l.From.Coordinate(), B: l.To.Coordinate()}
	}

	return layout.ParseBuilding(b.Floors, links...)
}

// Coordinate converts p to a layout.Coordinate.
func (p PointConfig) Coordinate() layout.Coordinate {
	return layout.At(p.X, p.Y, p.Z)
}

// HeuristicFunc resolves Heuristic: "manhattan" or "octile".
func (c Config) HeuristicFunc() (pathfind.Heuristic, error) {
	switch strings.ToLower(c.Heuristic) {
	case "", "manhattan":
		return pathfind.Manhattan, nil
	case "octile":
		return pathfind.Octile, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, c.Heuristic)
	}
}

// Finder builds the single-floor search named by Algorithm: "astar" or
// "thetastar". The configured heuristic is prepended to opts.
func (c Config) Finder(opts ...pathfind.Option) (pathfind.Finder, error) {
	h, err := c.HeuristicFunc()
	if err != nil {
		return nil, err
	}
	opts = append([]pathfind.Option{pathfind.WithHeuristic(h)}, opts...)

	switch strings.ToLower(c.Algorithm) {
	case "astar", "a*":
		return pathfind.NewAStar(opts...), nil
	case "", "thetastar", "theta*":
		return pathfind.NewThetaStar(opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, c.Algorithm)
	}
}
