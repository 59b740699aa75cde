// Package config loads slideshow settings from defaults, an optional YAML
// file, SLIDESHOW_* environment variables and command-line flags, in that
// order of precedence (flags win).
package config

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

type Config struct {
	DataFile     string   `yaml:"data_file" env:"DATA_FILE"`
	PhotosDir    string   `yaml:"photos_dir" env:"PHOTOS_DIR"`
	PhotoSubdirs []string `yaml:"photo_subdirs" env:"PHOTO_SUBDIRS" envSeparator:","`
	LogoPath     string   `yaml:"logo" env:"LOGO"`
	CacheDir     string   `yaml:"cache_dir" env:"CACHE_DIR"`
	Output       string   `yaml:"output" env:"OUTPUT"`
	Manifest     string   `yaml:"manifest" env:"MANIFEST"`
	Title        string   `yaml:"title" env:"TITLE"`

	PrimaryFont   string `yaml:"primary_font" env:"PRIMARY_FONT"`
	SecondaryFont string `yaml:"secondary_font" env:"SECONDARY_FONT"`

	Width          int    `yaml:"width" env:"WIDTH"`
	Height         int    `yaml:"height" env:"HEIGHT"`
	Background     string `yaml:"background" env:"BACKGROUND"`
	PrimaryColor   string `yaml:"primary_color" env:"PRIMARY_COLOR"`
	SecondaryColor string `yaml:"secondary_color" env:"SECONDARY_COLOR"`
	QRText         string `yaml:"qr_text" env:"QR_TEXT"`
	JPEGQuality    int    `yaml:"jpeg_quality" env:"JPEG_QUALITY"`

	AwardsOnly bool     `yaml:"awards_only" env:"AWARDS_ONLY"`
	Statuses   []string `yaml:"statuses" env:"STATUSES" envSeparator:","`

	Listen string `yaml:"listen" env:"LISTEN"`
}

const envPrefix = "SLIDESHOW_"

// Default mirrors the layout of the original graduation deck.
func Default() Config {
	return Config{
		DataFile:       filepath.Join("data", "grads.tsv"),
		PhotosDir:      "images",
		PhotoSubdirs:   []string{"RETAKES", "ORIGINALS"},
		LogoPath:       filepath.Join("images", "school_logo.png"),
		CacheDir:       filepath.Join("images", "cache"),
		Output:         "slideshow.pdf",
		Title:          "Graduating Class",
		PrimaryFont:    filepath.Join("fonts", "Cambo-Regular.ttf"),
		SecondaryFont:  filepath.Join("fonts", "ArialTh.ttf"),
		Width:          1920,
		Height:         1080,
		Background:     "#000000",
		PrimaryColor:   "#ffffff",
		SecondaryColor: "#adadad",
		JPEGQuality:    90,
		Listen:         ":8080",
	}
}

// LoadFile merges the YAML file at path over cfg. Keys absent from the
// file keep their current values.
func LoadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// ParseEnv merges SLIDESHOW_* environment variables over cfg.
func ParseEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ParseConfig builds the configuration for a command. The -config flag
// names an optional YAML file; remaining flags override everything else.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var (
		configPath string
		flagCfg    Config
		statuses   string
	)
	fs.StringVar(&configPath, "config", "", "YAML configuration file")
	fs.StringVar(&flagCfg.DataFile, "data", "", "graduate list (.tsv, .csv or .xlsx)")
	fs.StringVar(&flagCfg.PhotosDir, "photos", "", "photo base directory")
	fs.StringVar(&flagCfg.LogoPath, "logo", "", "school logo path or URL")
	fs.StringVar(&flagCfg.Output, "out", "", "output PDF path")
	fs.StringVar(&flagCfg.Manifest, "manifest", "", "optional slide manifest path")
	fs.BoolVar(&flagCfg.AwardsOnly, "awards-only", false, "only include students with awards")
	fs.StringVar(&statuses, "status", "", "comma separated statuses to include")
	fs.StringVar(&flagCfg.Listen, "listen", "", "preview server listen address")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Default()
	if configPath != "" {
		if err := LoadFile(&cfg, configPath); err != nil {
			return Config{}, err
		}
	}
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	overlay(&cfg.DataFile, flagCfg.DataFile)
	overlay(&cfg.PhotosDir, flagCfg.PhotosDir)
	overlay(&cfg.LogoPath, flagCfg.LogoPath)
	overlay(&cfg.Output, flagCfg.Output)
	overlay(&cfg.Manifest, flagCfg.Manifest)
	overlay(&cfg.Listen, flagCfg.Listen)
	if flagCfg.AwardsOnly {
		cfg.AwardsOnly = true
	}
	if statuses != "" {
		cfg.Statuses = splitList(statuses)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func overlay(dst *string, v string) {
	if strings.TrimSpace(v) != "" {
		*dst = v
	}
}

func splitList(s string) []string {
	out := []string{}
	for _, p := range strings.Split(s, ",") {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Validate checks the merged configuration.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DataFile) == "" {
		return errors.New("data file is required")
	}
	if strings.TrimSpace(c.Output) == "" {
		return errors.New("output is required")
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("slide size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return fmt.Errorf("jpeg quality must be in [1, 100], got %d", c.JPEGQuality)
	}
	for _, s := range []string{c.Background, c.PrimaryColor, c.SecondaryColor} {
		if _, err := ParseColor(s); err != nil {
			return err
		}
	}
	return nil
}

// ParseColor accepts #rrggbb, #rgb or an SVG colour name.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
