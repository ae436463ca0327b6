// Package config loads the settings of a style resolution
// from a YAML file.
//
// A typical file is
//
//	medium: print
//	parallel: true
//	logging:
//	  level: debug
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	pr "github.com/benoitkugler/webstyle/css/properties"
	"github.com/benoitkugler/webstyle/html/tree"
	"github.com/benoitkugler/webstyle/logger"
)

// Config holds the settings of a conversion.
type Config struct {
	// Medium is one of "screen", "print" or "all" (same as "screen").
	Medium   string  `yaml:"medium" validate:"required,oneof=screen print all"`
	// Parallel resolves sibling subtrees concurrently.
	Parallel bool    `yaml:"parallel"`
	Logging  Logging `yaml:"logging"`
}

// Logging configures the verbosity of the loggers.
type Logging struct {
	// Level is "none", "normal" (warnings and progress) or "debug".
	Level string `yaml:"level" validate:"required,oneof=none normal debug"`
}

// Default returns the configuration used when no file is provided.
func Default() Config {
	return Config{
		Medium:  "screen",
		Logging: Logging{Level: "normal"},
	}
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New(validator.WithRequiredStructEnabled())
	})
	return validateInst
}

// Load reads and validates the configuration file at [path].
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := LoadBytes(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadBytes decodes and validates a YAML configuration. Missing
// fields keep their [Default] value, and unknown fields are rejected.
func LoadBytes(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// an empty document is valid and means the default configuration
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("invalid YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the fields of the configuration.
func (cfg Config) Validate() error {
	err := validatorInstance().Struct(cfg)
	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		ve := ves[0]
		return fmt.Errorf("invalid field %s: %q is not valid for tag '%s'", yamlFieldName(ve), ve.Value(), ve.Tag())
	}
	return err
}

// yamlFieldName returns the path of the field, as written in the file
func yamlFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")[1:] // skip Config
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}

// MediumType returns the parsed medium.
func (cfg Config) MediumType() (pr.Medium, error) { return pr.ParseMedium(cfg.Medium) }

// Logger builds the logger matching the logging level.
// It returns a no-op logger for the "none" level.
func (cfg Config) Logger() *zap.Logger {
	switch cfg.Logging.Level {
	case "none":
		return zap.NewNop()
	case "debug":
		return logger.NewConsole(zapcore.DebugLevel)
	default:
		return logger.NewConsole(zapcore.InfoLevel)
	}
}

// ResolverOptions returns the options to use for a [tree.Resolver].
func (cfg Config) ResolverOptions() (tree.Options, error) {
	medium, err := cfg.MediumType()
	if err != nil {
		return tree.Options{}, err
	}
	return tree.Options{Medium: medium, Parallel: cfg.Parallel}, nil
}
