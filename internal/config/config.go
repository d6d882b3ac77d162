// Package config loads pedmap-tools settings from an optional YAML file,
// the environment (PEDMAP_ prefix) and .env files.
//
// API credentials are never compiled in. They arrive through the
// environment, typically from a .env file next to the notebooks:
//
//	PEDMAP_FETCH_DATAFORSYNINGEN_TOKEN=...
//	PEDMAP_FETCH_GOOGLE_API_KEY=...
//	PEDMAP_FETCH_MAPBOX_TOKEN=...
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "PEDMAP"

type Config struct {
	Log          LogConfig          `mapstructure:"log"`
	Paths        PathsConfig        `mapstructure:"paths"`
	Fetch        FetchConfig        `mapstructure:"fetch"`
	Segmentation SegmentationConfig `mapstructure:"segmentation"`
	Evaluation   EvaluationConfig   `mapstructure:"evaluation"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// PathsConfig replaces the machine-specific directories the notebooks used.
type PathsConfig struct {
	DataDir   string `mapstructure:"data_dir"`
	OutputDir string `mapstructure:"output_dir"`
	TilesRoot string `mapstructure:"tiles_root"`
}

type FetchConfig struct {
	UserAgent       string                `mapstructure:"user_agent"`
	RequestDelay    time.Duration         `mapstructure:"request_delay"`
	Timeout         time.Duration         `mapstructure:"timeout"`
	Dataforsyningen DataforsyningenConfig `mapstructure:"dataforsyningen"`
	Google          GoogleConfig          `mapstructure:"google"`
	MapBox          MapBoxConfig          `mapstructure:"mapbox"`
}

type DataforsyningenConfig struct {
	Token string `mapstructure:"token"`
}

type GoogleConfig struct {
	APIKey   string `mapstructure:"api_key"`
	Language string `mapstructure:"language"`
	Region   string `mapstructure:"region"`
}

type MapBoxConfig struct {
	Token string `mapstructure:"token"`
}

// SegmentationConfig holds the tunable cut-offs of the segmentation
// pipeline. Colour ranges are fixed in the segmentation package.
type SegmentationConfig struct {
	MinContourArea     float64 `mapstructure:"min_contour_area"`
	MaxContourFraction float64 `mapstructure:"max_contour_fraction"`
	RouteFraction      float64 `mapstructure:"route_fraction"`
	VegetationFraction float64 `mapstructure:"vegetation_fraction"`
	RemoveStructures   bool    `mapstructure:"remove_structures"`
}

type EvaluationConfig struct {
	FeatureTypes   []string `mapstructure:"feature_types"`
	OverlayOpacity float64  `mapstructure:"overlay_opacity"`
}

// Load reads configuration from configPath (may be empty) with
// environment overrides applied on top.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDotEnv loads .env style files into the process environment.
// Missing files are ignored; existing variables are not overwritten.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// Validate rejects values that would make the pipeline meaningless.
func (c *Config) Validate() error {
	s := c.Segmentation
	if s.MinContourArea < 0 {
		return fmt.Errorf("segmentation.min_contour_area must be >= 0, got %v", s.MinContourArea)
	}
	if s.MaxContourFraction <= 0 || s.MaxContourFraction > 1 {
		return fmt.Errorf("segmentation.max_contour_fraction must be in (0,1], got %v", s.MaxContourFraction)
	}
	if s.RouteFraction < 0 || s.VegetationFraction < 0 {
		return errors.New("segmentation fractions must be >= 0")
	}
	if c.Fetch.RequestDelay < 0 {
		return fmt.Errorf("fetch.request_delay must be >= 0, got %v", c.Fetch.RequestDelay)
	}
	if o := c.Evaluation.OverlayOpacity; o < 0 || o > 1 {
		return fmt.Errorf("evaluation.overlay_opacity must be in [0,1], got %v", o)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("paths.data_dir", ".")
	v.SetDefault("paths.output_dir", "./results")
	v.SetDefault("paths.tiles_root", "./tiles")

	v.SetDefault("fetch.user_agent", "pedmap-tools")
	v.SetDefault("fetch.request_delay", 100*time.Millisecond)
	v.SetDefault("fetch.timeout", 60*time.Second)
	v.SetDefault("fetch.dataforsyningen.token", "")
	v.SetDefault("fetch.google.api_key", "")
	v.SetDefault("fetch.google.language", "en-US")
	v.SetDefault("fetch.google.region", "EU")
	v.SetDefault("fetch.mapbox.token", "")

	v.SetDefault("segmentation.min_contour_area", 100.0)
	v.SetDefault("segmentation.max_contour_fraction", 0.5)
	v.SetDefault("segmentation.route_fraction", 0.001)
	v.SetDefault("segmentation.vegetation_fraction", 0.10)
	v.SetDefault("segmentation.remove_structures", false)

	v.SetDefault("evaluation.feature_types", []string{"sidewalk", "road", "crosswalk"})
	v.SetDefault("evaluation.overlay_opacity", 0.25)
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info", Format: "console"},
		Paths: PathsConfig{
			DataDir:   ".",
			OutputDir: "./results",
			TilesRoot: "./tiles",
		},
		Fetch: FetchConfig{
			UserAgent:    "pedmap-tools",
			RequestDelay: 100 * time.Millisecond,
			Timeout:      60 * time.Second,
			Google:       GoogleConfig{Language: "en-US", Region: "EU"},
		},
		Segmentation: SegmentationConfig{
			MinContourArea:     100,
			MaxContourFraction: 0.5,
			RouteFraction:      0.001,
			VegetationFraction: 0.10,
		},
		Evaluation: EvaluationConfig{
			FeatureTypes:   []string{"sidewalk", "road", "crosswalk"},
			OverlayOpacity: 0.25,
		},
	}
}
