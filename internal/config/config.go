// Package config loads imgview settings from a TOML file.
//
// Example file:
//
//	image = "~/Pictures/grades.png"
//	screen_percent = 80
//	title = "Img Viewer"
//	interpolation = "nearest"
//	show_info = true
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is where Load looks when no path is given.
const DefaultPath = "~/.config/imgview/config.toml"

// Interpolation modes accepted in the config file.
const (
	InterpNearest  = "nearest"
	InterpBilinear = "bilinear"
	InterpBicubic  = "bicubic"
)

// ErrInvalid is returned when a value is out of range.
var ErrInvalid = errors.New("config: invalid value")

// Config holds every setting imgview reads from disk.
type Config struct {
	Image         string `toml:"image"`
	ScreenPercent int    `toml:"screen_percent"`
	ScreenWidth   int    `toml:"screen_width"`
	ScreenHeight  int    `toml:"screen_height"`
	Title         string `toml:"title"`
	Interpolation string `toml:"interpolation"`
	ShowInfo      bool   `toml:"show_info"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Image:         "grades.png",
		ScreenPercent: 90,
		Title:         "Img Viewer",
		Interpolation: InterpBilinear,
	}
}

// Load reads the file at path on top of Default. An empty path means
// DefaultPath, which may be absent; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	optional := path == ""
	if optional {
		path = DefaultPath
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return cfg, fmt.Errorf("config: expand %q: %w", path, err)
	}

	data, err := os.ReadFile(filepath.Clean(expanded))
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read: %w", err)
	}

	if err := Decode(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", expanded, err)
	}
	return cfg, nil
}

// Decode parses TOML data into cfg and validates the result.
// Keys imgview does not know are rejected.
func Decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if c.ScreenPercent < 1 || c.ScreenPercent > 100 {
		return fmt.Errorf("%w: screen_percent %d not in 1..100", ErrInvalid, c.ScreenPercent)
	}
	if c.ScreenWidth < 0 || c.ScreenHeight < 0 || (c.ScreenWidth == 0) != (c.ScreenHeight == 0) {
		return fmt.Errorf("%w: screen_width and screen_height must both be positive or both unset", ErrInvalid)
	}
	switch c.Interpolation {
	case InterpNearest, InterpBilinear, InterpBicubic:
	default:
		return fmt.Errorf("%w: interpolation %q", ErrInvalid, c.Interpolation)
	}
	if c.Image == "" {
		return fmt.Errorf("%w: image is empty", ErrInvalid)
	}
	return nil
}

// Screen returns the configured screen override as WxH, or "" if unset.
func (c Config) Screen() string {
	if c.ScreenWidth == 0 {
		return ""
	}
	return fmt.Sprintf("%dx%d", c.ScreenWidth, c.ScreenHeight)
}
