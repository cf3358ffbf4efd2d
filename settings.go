package main

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Settings is everything the presentation layer needs to boot. Values come
// from defaults, an optional tilecast.yaml, and TILECAST_* env overrides,
// in that order of increasing priority.
type Settings struct {
	ScreenWidth  int `mapstructure:"screen_width"`
	ScreenHeight int `mapstructure:"screen_height"`
	TPS          int `mapstructure:"tps"`

	FOVDegrees float64 `mapstructure:"fov_degrees"`
	Rays       int     `mapstructure:"rays"`
	TileSize   float64 `mapstructure:"tile_size"`

	MoveSpeed       float64 `mapstructure:"move_speed"`        // world units per tick
	RotDegrees      float64 `mapstructure:"rot_degrees"`       // degrees per tick
	CollisionRadius float64 `mapstructure:"collision_radius"`  // world units
	SpawnX          float64 `mapstructure:"spawn_x"`           // fraction of grid width
	SpawnY          float64 `mapstructure:"spawn_y"`           // fraction of grid height
	SpawnDegrees    float64 `mapstructure:"spawn_degrees"`

	MinimapScale float64 `mapstructure:"minimap_scale"`
	MinimapAlpha float64 `mapstructure:"minimap_alpha"`
	ShowMinimap  bool    `mapstructure:"show_minimap"`
	ShowRays     bool    `mapstructure:"show_rays"`

	Textured        bool    `mapstructure:"textured"`
	MaxColumnHeight float64 `mapstructure:"max_column_height"`
	FontPath        string  `mapstructure:"font_path"`

	// Level is the map layout, one string per row: '#' or '1' is a wall,
	// '.', ' ' or '0' is open floor.
	Level []string `mapstructure:"level"`
}

func loadSettings() (Settings, error) {
	v := viper.New()
	v.SetConfigName("tilecast")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/tilecast")
	v.SetEnvPrefix("tilecast")
	v.AutomaticEnv()

	v.SetDefault("screen_width", 800)
	v.SetDefault("screen_height", 600)
	v.SetDefault("tps", 30)
	v.SetDefault("fov_degrees", 60.0)
	v.SetDefault("rays", 64)
	v.SetDefault("tile_size", 60.0)
	v.SetDefault("move_speed", 2.0)
	v.SetDefault("rot_degrees", 5.0)
	v.SetDefault("collision_radius", 10.0)
	v.SetDefault("spawn_x", 0.6)
	v.SetDefault("spawn_y", 0.6)
	v.SetDefault("spawn_degrees", 270.0)
	v.SetDefault("minimap_scale", 0.3)
	v.SetDefault("minimap_alpha", 1.0)
	v.SetDefault("show_minimap", true)
	v.SetDefault("show_rays", false)
	v.SetDefault("textured", true)
	v.SetDefault("max_column_height", 1000.0)
	v.SetDefault("font_path", "")
	v.SetDefault("level", defaultLevel)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("read config: %w", err)
		}
		// no config file is fine, defaults and env cover everything
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("parse config: %w", err)
	}
	if err := s.validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// validate rejects configuration errors up front so nothing has to be
// checked per frame.
func (s Settings) validate() error {
	if s.ScreenWidth <= 0 || s.ScreenHeight <= 0 {
		return fmt.Errorf("settings: screen size %dx%d must be positive", s.ScreenWidth, s.ScreenHeight)
	}
	if s.TPS <= 0 {
		return fmt.Errorf("settings: tps must be positive, got %d", s.TPS)
	}
	if s.FOVDegrees <= 0 || s.FOVDegrees >= 180 {
		return fmt.Errorf("settings: fov must be inside (0, 180) degrees, got %v", s.FOVDegrees)
	}
	if s.Rays < 2 {
		return fmt.Errorf("settings: ray fan needs at least 2 rays, got %d", s.Rays)
	}
	if s.TileSize <= 0 {
		return fmt.Errorf("settings: tile size must be positive, got %v", s.TileSize)
	}
	if s.MinimapScale <= 0 {
		return fmt.Errorf("settings: minimap scale must be positive, got %v", s.MinimapScale)
	}
	if s.MinimapAlpha < 0 || s.MinimapAlpha > 1 {
		return fmt.Errorf("settings: minimap alpha must be inside [0, 1], got %v", s.MinimapAlpha)
	}
	if len(s.Level) == 0 {
		return errors.New("settings: level layout is empty")
	}
	return nil
}
