// Package config loads the optional project configuration file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/appguide/pkg/guide"
	"github.com/aretw0/appguide/pkg/registry"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// FileName is looked up in the project root when no explicit path is given.
const FileName = "appguide.yaml"

// Recorder kinds.
const (
	RecorderFile  = "file"
	RecorderRedis = "redis"
	RecorderNone  = "none"
)

// ErrInvalidConfig is returned for values that decode but make no sense.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the project configuration. Zero values never reach callers: Load
// starts from Default and only overrides what the file sets.
type Config struct {
	GuideDir     string         `mapstructure:"guide_dir"`
	PreviewLines int            `mapstructure:"preview_lines"`
	ProgressFile string         `mapstructure:"progress_file"`
	Debug        bool           `mapstructure:"debug"`
	Recorder     RecorderConfig `mapstructure:"recorder"`
	Server       ServerConfig   `mapstructure:"server"`
}

// RecorderConfig selects where phase completions are recorded.
type RecorderConfig struct {
	Kind          string `mapstructure:"kind"`
	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db"`
	Prefix        string `mapstructure:"prefix"`
}

// ServerConfig configures the HTTP progress API.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		GuideDir:     registry.DefaultGuideDir,
		PreviewLines: guide.DefaultPreviewLines,
		ProgressFile: "MASTER_GOAL_PROGRESS.md",
		Recorder: RecorderConfig{
			Kind:      RecorderFile,
			RedisAddr: "localhost:6379",
			Prefix:    "appguide:",
		},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// Load reads the configuration for the project at root.
// With an empty path, root/appguide.yaml is used if present and defaults otherwise.
// An explicit path must exist. JSON is accepted for .json files.
func Load(root, path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = filepath.Join(root, FileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	raw := map[string]any{}
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	if err := decode(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func decode(raw map[string]any, cfg *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	switch c.Recorder.Kind {
	case RecorderFile, RecorderRedis, RecorderNone:
	default:
		return fmt.Errorf("%w: recorder.kind %q (want file, redis or none)", ErrInvalidConfig, c.Recorder.Kind)
	}
	if c.PreviewLines < 0 {
		return fmt.Errorf("%w: preview_lines must not be negative", ErrInvalidConfig)
	}
	if c.GuideDir == "" {
		return fmt.Errorf("%w: guide_dir is empty", ErrInvalidConfig)
	}
	return nil
}

// ProgressPath resolves the progress log against root.
func (c Config) ProgressPath(root string) string {
	if filepath.IsAbs(c.ProgressFile) {
		return c.ProgressFile
	}
	return filepath.Join(root, c.ProgressFile)
}
