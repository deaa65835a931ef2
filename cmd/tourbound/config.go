// SPDX-License-Identifier: MIT
// Package: tourbound/cmd/tourbound
//
// config.go — file configuration, the points file format, logging setup.
//
// Precedence (last wins): built-in defaults ← --config YAML ← explicit flags.

package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tourbound/costmatrix"
	"github.com/katalvlaran/tourbound/stream"
)

// Config is the optional YAML service configuration loaded via --config.
type Config struct {
	// Addr is the serve listen address.
	Addr string `yaml:"addr"`

	// Capacity bounds the serve run store.
	Capacity int `yaml:"capacity"`

	// Verbosity is the log level: debug, info, warn, or error.
	Verbosity string `yaml:"verbosity"`
}

// DefaultConfig returns the built-in defaults used when neither a config
// file nor flags say otherwise.
func DefaultConfig() Config {
	return Config{
		Addr:      ":8080",
		Capacity:  stream.DefaultCapacity,
		Verbosity: "info",
	}
}

// loadConfig merges the YAML file at path into cfg. An empty path is a
// no-op; keys absent from the file keep their current values.
func loadConfig(path string, cfg *Config) error {
	if path == "" {
		return nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// parseLevel maps a verbosity word onto a slog level. The empty string
// means info.
func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown verbosity %q (want debug, info, warn, or error)", s)
	}
}

// initLogging installs the process-wide slog logger at the given verbosity.
func initLogging(verbosity string) error {
	level, err := parseLevel(verbosity)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
	return nil
}

// PointsFile is the on-disk instance format shared by gen and solve.
type PointsFile struct {
	Cities []CityYAML `yaml:"cities"`
}

// CityYAML is one labelled position in a points file.
type CityYAML struct {
	ID string  `yaml:"id"`
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
}

// writePointsFile marshals pts to path.
func writePointsFile(path string, pts []costmatrix.Point) error {
	file := PointsFile{Cities: make([]CityYAML, len(pts))}
	for i, p := range pts {
		file.Cities[i] = CityYAML{ID: p.ID, X: p.X, Y: p.Y}
	}
	raw, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode points: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write points: %w", err)
	}
	return nil
}

// readPointsFile loads a points file back into builder points.
func readPointsFile(path string) ([]costmatrix.Point, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read points: %w", err)
	}
	var file PointsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse points %s: %w", path, err)
	}
	pts := make([]costmatrix.Point, len(file.Cities))
	for i, c := range file.Cities {
		pts[i] = costmatrix.Point{ID: c.ID, X: c.X, Y: c.Y}
	}
	return pts, nil
}
