// SPDX-License-Identifier: MIT

// Package config loads the navmesh tool configuration from YAML and turns it
// into loggers, network options and store options.
//
//	log:
//	  level: info      # debug | info | warn | error
//	  format: text     # text | json
//	search:
//	  frontier: list   # list | ordered
//	  unique_links: false
//	  strict_checks: false
//	store:
//	  path: ./navmesh.db
//	  in_memory: false
//	  sync_writes: true
//	batch:
//	  workers: 4
//	metrics:
//	  exporter: none   # none | stdout
//
// Missing keys keep the values of Default.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/idledeity/marsminingco-sub000/mesh"
	"github.com/idledeity/marsminingco-sub000/navstore"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the root document.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Search  SearchConfig  `yaml:"search"`
	Store   StoreConfig   `yaml:"store"`
	Batch   BatchConfig   `yaml:"batch"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// SearchConfig maps onto mesh options.
type SearchConfig struct {
	Frontier     string `yaml:"frontier" validate:"frontier"`
	UniqueLinks  bool   `yaml:"unique_links"`
	StrictChecks bool   `yaml:"strict_checks"`
}

// StoreConfig maps onto navstore.Options.
type StoreConfig struct {
	Path       string `yaml:"path" validate:"required_without=InMemory"`
	InMemory   bool   `yaml:"in_memory"`
	SyncWrites bool   `yaml:"sync_writes"`
}

// BatchConfig bounds concurrent route queries.
type BatchConfig struct {
	Workers int `yaml:"workers" validate:"gte=1,lte=256"`
}

// MetricsConfig selects where search metrics go. "none" leaves the
// OpenTelemetry API on its no-op provider.
type MetricsConfig struct {
	Exporter string `yaml:"exporter" validate:"oneof=none stdout"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("frontier", validateFrontier)
}

func validateFrontier(fl validator.FieldLevel) bool {
	_, err := mesh.ParseFrontier(fl.Field().String())
	return err == nil
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Log:     LogConfig{Level: "info", Format: "text"},
		Search:  SearchConfig{Frontier: mesh.FrontierList.String()},
		Store:   StoreConfig{Path: "navmesh.db", SyncWrites: true},
		Batch:   BatchConfig{Workers: 4},
		Metrics: MetricsConfig{Exporter: "none"},
	}
}

// Load reads and validates the file at path. An empty path yields Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes data over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field constraints and reports every violation at once.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		msgs[i] = fmt.Sprintf("%s fails %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value())
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

// SlogLevel returns the slog level; unknown strings map to Info.
func (c LogConfig) SlogLevel() slog.Level {
	switch c.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	return slog.LevelInfo
}

// Logger builds a logger writing to w.
func (c LogConfig) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// NetworkOptions returns the mesh options described by the search section.
func (c Config) NetworkOptions(logger *slog.Logger) []mesh.Option {
	kind, _ := mesh.ParseFrontier(c.Search.Frontier)
	opts := []mesh.Option{mesh.WithFrontier(kind), mesh.WithLogger(logger)}
	if c.Search.UniqueLinks {
		opts = append(opts, mesh.WithUniqueLinks())
	}
	if c.Search.StrictChecks {
		opts = append(opts, mesh.WithStrictChecks())
	}

	return opts
}

// StoreOptions returns the navstore options of the store section.
func (c Config) StoreOptions(logger *slog.Logger) navstore.Options {
	return navstore.Options{
		Path:       c.Store.Path,
		InMemory:   c.Store.InMemory,
		SyncWrites: c.Store.SyncWrites,
		Logger:     logger,
	}
}
