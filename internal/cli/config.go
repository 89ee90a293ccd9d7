package cli

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	xduerr "github.com/matzehuels/goxdu/pkg/errors"
	"github.com/matzehuels/goxdu/pkg/pipeline"
	"github.com/matzehuels/goxdu/pkg/tree"
)

// configFileName is the file looked up inside the config directory.
const configFileName = "config.toml"

// Config holds user defaults read from a TOML file. Zero values mean
// "not configured" and leave the built-in default in place.
//
//	order = "size"
//	columns = 4
//	show_sizes = false
//
//	[render]
//	width = 1200
//	height = 800
//	formats = ["svg", "json"]
type Config struct {
	Order     string       `toml:"order"`
	Columns   int          `toml:"columns"`
	ShowSizes *bool        `toml:"show_sizes"`
	Render    RenderConfig `toml:"render"`
}

// RenderConfig holds defaults for the render command.
type RenderConfig struct {
	Width   int      `toml:"width"`
	Height  int      `toml:"height"`
	Formats []string `toml:"formats"`
}

// configDir returns the config directory using XDG standard (~/.config/goxdu/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// loadConfig reads the config file at path, or the default location when
// path is empty. A missing default file yields an empty Config; a missing
// explicit file is an error.
func loadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return Config{}, nil
		}
		path = filepath.Join(dir, configFileName)
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if explicit {
				return Config{}, xduerr.Wrap(xduerr.ErrCodeFileNotFound, err, "config file not found: %s", path)
			}
			return Config{}, nil
		}
		return Config{}, xduerr.Wrap(xduerr.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, xduerr.New(xduerr.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return Config{}, xduerr.Wrap(xduerr.ErrCodeInvalidConfig, err, "invalid config %s", path)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if _, err := c.order(); err != nil {
		return err
	}
	if c.Columns != 0 {
		if err := xduerr.ValidateColumns(c.Columns); err != nil {
			return err
		}
	}
	if c.Render.Width < 0 || c.Render.Height < 0 {
		return xduerr.New(xduerr.ErrCodeInvalidConfig, "render size must not be negative, got %dx%d", c.Render.Width, c.Render.Height)
	}
	if len(c.Render.Formats) > 0 {
		return pipeline.ValidateFormats(c.Render.Formats)
	}
	return nil
}

// order returns the configured order, or the default.
func (c Config) order() (tree.Order, error) {
	if c.Order == "" {
		return tree.DefaultOrder, nil
	}
	return tree.ParseOrder(c.Order)
}

// showSizes reports whether labels include sizes. Sizes are shown unless
// the config turns them off.
func (c Config) showSizes() bool {
	return c.ShowSizes == nil || *c.ShowSizes
}
