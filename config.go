// FILE: config.go
package dfslog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/config"
)

// Config holds every user-settable knob of the facility. It maps 1:1 onto a
// [dfslog] TOML table so hosts can ship filter settings alongside the rest of
// their client configuration.
type Config struct {
	// Filtering
	Level      string `toml:"level"`      // Minimum level: trace, debug, info, warn, error
	Components string `toml:"components"` // Comma-separated component names, or "all"

	// Sink selection
	Sink          string `toml:"sink"`           // "console", "callback", "capture", or "none"
	ConsoleTarget string `toml:"console_target"` // "stderr" or "stdout"

	// Console display toggles
	ShowTimestamp   bool   `toml:"show_timestamp"`
	ShowLevel       bool   `toml:"show_level"`
	ShowComponent   bool   `toml:"show_component"`
	ShowGoroutine   bool   `toml:"show_goroutine"`
	TimestampFormat string `toml:"timestamp_format"`
}

// defaultConfig matches the out-of-the-box state: a stderr console sink that
// accepts every level and component, all display tags on.
var defaultConfig = Config{
	Level:           "trace",
	Components:      "all",
	Sink:            "console",
	ConsoleTarget:   "stderr",
	ShowTimestamp:   true,
	ShowLevel:       true,
	ShowComponent:   true,
	ShowGoroutine:   true,
	TimestampFormat: time.RFC3339Nano,
}

// DefaultConfig returns a copy of the default configuration.
func DefaultConfig() *Config {
	copiedConfig := defaultConfig
	return &copiedConfig
}

// NewConfigFromFile loads configuration from a TOML file and returns a
// validated Config. A missing file yields the defaults.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	loader := config.New()

	if err := loader.RegisterStruct("dfslog.", *cfg); err != nil {
		return nil, fmtErrorf("failed to register config struct: %w", err)
	}

	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmtErrorf("failed to load config from %s: %w", path, err)
	}

	if err := extractConfig(loader, "dfslog.", cfg); err != nil {
		return nil, fmtErrorf("failed to extract config values: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// extractConfig copies loaded values into the Config struct by toml tag.
func extractConfig(loader *config.Config, prefix string, cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		tomlTag := field.Tag.Get("toml")
		if tomlTag == "" {
			continue
		}

		val, found := loader.Get(prefix + tomlTag)
		if !found {
			continue
		}

		if err := setFieldValue(fieldValue, val); err != nil {
			return fmt.Errorf("failed to set field %s: %w", field.Name, err)
		}
	}

	return nil
}

// setFieldValue sets a reflect.Value with type conversion.
func setFieldValue(field reflect.Value, value any) error {
	switch field.Kind() {
	case reflect.String:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		field.SetString(strVal)

	case reflect.Bool:
		boolVal, ok := value.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
		field.SetBool(boolVal)

	default:
		return fmt.Errorf("unsupported field type: %v", field.Kind())
	}

	return nil
}

// validate performs validation on the configuration.
func (c *Config) validate() error {
	if _, err := LevelFromString(c.Level); err != nil {
		return err
	}

	if _, err := ComponentsFromString(c.Components); err != nil {
		return err
	}

	switch c.Sink {
	case "console", "callback", "capture", "none":
	default:
		return fmtErrorf("invalid sink: '%s' (use console, callback, capture, or none)", c.Sink)
	}

	if c.ConsoleTarget != "stderr" && c.ConsoleTarget != "stdout" {
		return fmtErrorf("invalid console_target: '%s' (use stderr or stdout)", c.ConsoleTarget)
	}

	if strings.TrimSpace(c.TimestampFormat) == "" {
		return fmtErrorf("timestamp_format cannot be empty")
	}

	return nil
}

// Clone creates a copy of the configuration.
func (c *Config) Clone() *Config {
	copiedConfig := *c
	return &copiedConfig
}

// buildSink constructs the sink the configuration describes, with the filter
// already applied. "none" yields a nil sink, which uninstalls.
func (c *Config) buildSink() (Sink, error) {
	threshold, err := LevelFromString(c.Level)
	if err != nil {
		return nil, err
	}
	mask, err := ComponentsFromString(c.Components)
	if err != nil {
		return nil, err
	}

	applyFilter := func(s Sink) Sink {
		s.SetThreshold(threshold)
		s.DisableComponent(ComponentAll)
		s.EnableComponent(mask)
		return s
	}

	switch c.Sink {
	case "console":
		sink := NewConsoleSink()
		if c.ConsoleTarget == "stdout" {
			sink.SetOutput(os.Stdout)
		}
		sink.ShowTimestamp(c.ShowTimestamp)
		sink.ShowLevel(c.ShowLevel)
		sink.ShowComponent(c.ShowComponent)
		sink.ShowGoroutine(c.ShowGoroutine)
		sink.SetTimestampFormat(c.TimestampFormat)
		return applyFilter(sink), nil
	case "callback":
		// Installed without a callback; the host registers one by building
		// and installing its own CallbackSink.
		return applyFilter(NewCallbackSink()), nil
	case "capture":
		return applyFilter(NewCaptureSink()), nil
	case "none":
		return nil, nil
	default:
		return nil, fmtErrorf("invalid sink: '%s'", c.Sink)
	}
}

// ApplyConfig validates the configuration, builds the sink it describes, and
// installs it atomically. This is the primary way host applications configure
// the facility.
func (m *Manager) ApplyConfig(cfg *Config) error {
	if cfg == nil {
		return fmtErrorf("configuration cannot be nil")
	}
	if err := cfg.validate(); err != nil {
		return fmtErrorf("invalid configuration: %w", err)
	}

	sink, err := cfg.buildSink()
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if old, ok := m.sink.(io.Closer); ok {
		_ = old.Close()
	}
	m.sink = sink
	m.cfg = cfg.Clone()

	return nil
}

// ApplyConfigString applies "key=value" overrides on top of the manager's
// current configuration.
func (m *Manager) ApplyConfigString(overrides ...string) error {
	cfg := m.GetConfig()

	var errs []error
	for _, override := range overrides {
		key, value, err := parseKeyValue(override)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := applyConfigField(cfg, key, value); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return combineConfigErrors(errs)
	}

	return m.ApplyConfig(cfg)
}

// GetConfig returns a copy of the manager's current configuration.
func (m *Manager) GetConfig() *Config {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cfg == nil {
		return DefaultConfig()
	}
	return m.cfg.Clone()
}

// applyConfigField applies one string override to a Config.
func applyConfigField(cfg *Config, key, value string) error {
	switch strings.ToLower(key) {
	case "level":
		cfg.Level = value
	case "components":
		cfg.Components = value
	case "sink":
		cfg.Sink = value
	case "console_target":
		cfg.ConsoleTarget = value
	case "timestamp_format":
		cfg.TimestampFormat = value
	case "show_timestamp", "show_level", "show_component", "show_goroutine":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean for %s: '%s'", key, value)
		}
		switch strings.ToLower(key) {
		case "show_timestamp":
			cfg.ShowTimestamp = b
		case "show_level":
			cfg.ShowLevel = b
		case "show_component":
			cfg.ShowComponent = b
		case "show_goroutine":
			cfg.ShowGoroutine = b
		}
	default:
		return fmtErrorf("unknown config key: %s", key)
	}
	return nil
}
