package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/1siamBot/iso-tactics/engine/maplib"
	"github.com/spf13/viper"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// MapConfig describes the board geometry
type MapConfig struct {
	Size       int    `mapstructure:"size"`
	TileWidth  int    `mapstructure:"tileWidth"`
	TileHeight int    `mapstructure:"tileHeight"`
	Scale      int    `mapstructure:"scale"`
	Layout     string `mapstructure:"layout"` // JSON layout file, empty for the prototype board
}

// UnitConfig holds unit tuning
type UnitConfig struct {
	Speed float64 `mapstructure:"speed"` // milliseconds per tile step
}

// LoopConfig holds the simulation rate
type LoopConfig struct {
	TickRate float64 `mapstructure:"tickRate"`
}

// WindowConfig holds the host window settings
type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Config is the full game configuration
type Config struct {
	Map    MapConfig    `mapstructure:"map"`
	Unit   UnitConfig   `mapstructure:"unit"`
	Loop   LoopConfig   `mapstructure:"loop"`
	Window WindowConfig `mapstructure:"window"`
	Log    LogConfig    `mapstructure:"log"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("map.size", 11)
	v.SetDefault("map.tileWidth", 16)
	v.SetDefault("map.tileHeight", 17)
	v.SetDefault("map.scale", 4)
	v.SetDefault("map.layout", "")

	v.SetDefault("unit.speed", 200)

	v.SetDefault("loop.tickRate", 60)

	v.SetDefault("window.width", 800)
	v.SetDefault("window.height", 600)
	v.SetDefault("window.title", "Tactical Roguelike")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Load reads configuration from defaults, TACTICS_* environment variables and,
// when path is not empty, the config file at path.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("tactics")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the board cannot be built from
func (c Config) Validate() error {
	switch {
	case c.Map.Layout == "" && c.Map.Size < maplib.MinLayoutSize:
		return fmt.Errorf("%w: map.size %d below %d", ErrInvalidConfig, c.Map.Size, maplib.MinLayoutSize)
	case c.Map.TileWidth <= 0 || c.Map.TileHeight <= 0:
		return fmt.Errorf("%w: tile size %dx%d", ErrInvalidConfig, c.Map.TileWidth, c.Map.TileHeight)
	case c.Map.Scale <= 0:
		return fmt.Errorf("%w: map.scale %d", ErrInvalidConfig, c.Map.Scale)
	case c.Loop.TickRate <= 0:
		return fmt.Errorf("%w: loop.tickRate %g", ErrInvalidConfig, c.Loop.TickRate)
	case c.Unit.Speed <= 0:
		return fmt.Errorf("%w: unit.speed %g", ErrInvalidConfig, c.Unit.Speed)
	}
	return nil
}

// BoardLayout returns the layout the board is populated from. A layout file
// brings its own size, otherwise the prototype board is built at map.size.
func (c Config) BoardLayout() (*maplib.Layout, error) {
	if c.Map.Layout == "" {
		return maplib.PrototypeLayout(c.Map.Size), nil
	}
	l, err := maplib.LoadJSON(c.Map.Layout)
	if err != nil {
		return nil, fmt.Errorf("load layout: %w", err)
	}
	return l, nil
}
