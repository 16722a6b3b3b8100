// Package config loads the settings shared by the textrank CLI and HTTP
// server: extraction parameters, server options and logging.
//
// Sources are applied in order, each overriding the previous one:
// built-in defaults, an optional YAML file, then TEXTRANK_* environment
// variables. A .env file in the working directory is loaded into the
// environment first when present.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/az-ai-labs/textrank/textrank"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "TEXTRANK_"

// File is the full configuration.
type File struct {
	Extraction textrank.Config `yaml:"extraction"`
	Server     Server          `yaml:"server"`
	Log        Log             `yaml:"log"`
}

// Server configures the HTTP surface.
type Server struct {
	Addr            string        `yaml:"addr" validate:"required"`
	ReadTimeout     time.Duration `yaml:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
	// MaxBodyBytes caps request bodies; it should exceed the extraction
	// input limit to leave room for the JSON envelope.
	MaxBodyBytes int64 `yaml:"max_body_bytes" validate:"gt=0"`
	// Workers bounds concurrent documents in corpus evaluation.
	Workers int `yaml:"workers" validate:"gte=1"`
}

// Log configures the zap logger. An empty File logs to stderr.
type Log struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
	File        string `yaml:"file"`
	MaxSizeMB   int    `yaml:"max_size_mb" validate:"gte=0"`
	MaxBackups  int    `yaml:"max_backups" validate:"gte=0"`
	MaxAgeDays  int    `yaml:"max_age_days" validate:"gte=0"`
	Compress    bool   `yaml:"compress"`
}

// Default returns the configuration used when no file or variable is set.
func Default() *File {
	return &File{
		Extraction: textrank.DefaultConfig(),
		Server: Server{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 15 * time.Second,
			MaxBodyBytes:    textrank.DefaultMaxInputBytes + 64<<10,
			Workers:         4,
		},
		Log: Log{
			Level:      "info",
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load reads .env, then path (skipped when empty), then the environment.
func Load(path string) (*File, error) {
	_ = godotenv.Load()
	return load(path, os.LookupEnv)
}

func load(path string, lookup func(string) (string, bool)) (*File, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
		if err := decodeYAML(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	}
	if err := applyEnv(cfg, lookup); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decodeYAML decodes over the defaults already in cfg. Unknown keys fail.
func decodeYAML(data []byte, cfg *File) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func applyEnv(cfg *File, lookup func(string) (string, bool)) error {
	ex := &cfg.Extraction
	vars := []struct {
		name string
		set  func(string) error
	}{
		{"POS_TAGS", func(v string) error { ex.POSTags = splitList(v); return nil }},
		{"WINDOW", intVar(&ex.Window)},
		{"DAMPING", floatVar(&ex.Damping)},
		{"EPSILON", floatVar(&ex.Epsilon)},
		{"MAX_ITERATIONS", intVar(&ex.MaxIterations)},
		{"WEIGHTING", func(v string) error { ex.Weighting = textrank.Weighting(v); return nil }},
		{"STOPWORDS", func(v string) error { ex.Stopwords = splitList(v); return nil }},
		{"DISABLE_STOPWORDS", boolVar(&ex.DisableStopwords)},
		{"MIN_TOKEN_RUNES", intVar(&ex.MinTokenRunes)},
		{"MIN_PHRASE_WORDS", intVar(&ex.MinPhraseWords)},
		{"MAX_INPUT_BYTES", intVar(&ex.MaxInputBytes)},
		{"ADDR", func(v string) error { cfg.Server.Addr = v; return nil }},
		{"READ_TIMEOUT", durationVar(&cfg.Server.ReadTimeout)},
		{"WRITE_TIMEOUT", durationVar(&cfg.Server.WriteTimeout)},
		{"SHUTDOWN_TIMEOUT", durationVar(&cfg.Server.ShutdownTimeout)},
		{"WORKERS", intVar(&cfg.Server.Workers)},
		{"LOG_LEVEL", func(v string) error { cfg.Log.Level = strings.ToLower(v); return nil }},
		{"LOG_FILE", func(v string) error { cfg.Log.File = v; return nil }},
		{"LOG_DEVELOPMENT", boolVar(&cfg.Log.Development)},
	}
	for _, ev := range vars {
		v, ok := lookup(EnvPrefix + ev.name)
		if !ok || v == "" {
			continue
		}
		if err := ev.set(strings.TrimSpace(v)); err != nil {
			return fmt.Errorf("config: %s%s: %w", EnvPrefix, ev.name, err)
		}
	}
	return nil
}

func intVar(dst *int) func(string) error {
	return func(v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*dst = n
		return nil
	}
}

func floatVar(dst *float64) func(string) error {
	return func(v string) error {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		*dst = f
		return nil
	}
}

func boolVar(dst *bool) func(string) error {
	return func(v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		*dst = b
		return nil
	}
}

func durationVar(dst *time.Duration) func(string) error {
	return func(v string) error {
		d, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		*dst = d
		return nil
	}
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

var validate = func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		return name
	})
	return v
}()

// Validate checks every section. Extraction errors keep their
// *textrank.ConfigurationError type.
func (f *File) Validate() error {
	if err := f.Extraction.Validate(); err != nil {
		return err
	}
	if err := validateSection("server", f.Server); err != nil {
		return err
	}
	return validateSection("log", f.Log)
}

func validateSection(name string, section any) error {
	err := validate.Struct(section)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("config: %s.%s failed %q (got %v)", name, fe.Field(), fe.ActualTag(), fe.Value())
	}
	return fmt.Errorf("config: %s: %w", name, err)
}
