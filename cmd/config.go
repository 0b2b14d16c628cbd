package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort string
	LogLevel slog.Level

	SchedulerPollInterval time.Duration
	SweepInterval         time.Duration
	ReapInterval          time.Duration
	RetentionWindow       time.Duration

	ShippingDelayMin  time.Duration
	ShippingDelayMax  time.Duration
	ShippingDelayStep time.Duration

	ShutdownTimeout time.Duration
	ConsoleEnabled  bool
	MetricsEnabled  bool
}

// DefaultConfig returns the configuration used when no variable is set.
func DefaultConfig() Config {
	return Config{
		HTTPPort:              "8080",
		LogLevel:              slog.LevelInfo,
		SchedulerPollInterval: 500 * time.Millisecond,
		SweepInterval:         time.Second,
		ReapInterval:          5 * time.Second,
		RetentionWindow:       60 * time.Second,
		ShippingDelayMin:      4 * time.Second,
		ShippingDelayMax:      8 * time.Second,
		ShippingDelayStep:     time.Second,
		ShutdownTimeout:       15 * time.Second,
		ConsoleEnabled:        true,
		MetricsEnabled:        true,
	}
}

// LoadDotEnv loads variables from the given files into the process environment.
// Missing files are ignored; variables already set are never overridden.
func LoadDotEnv(filenames ...string) error {
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load %s: %w", name, err)
		}
	}
	return nil
}

// LoadConfig reads the configuration through lookup (os.LookupEnv in production),
// falling back to DefaultConfig for unset variables. Every malformed or invalid value
// is reported in the returned error.
func LoadConfig(lookup func(key string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()
	var problems []error

	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	duration := func(key string, dst *time.Duration) {
		v, ok := lookup(key)
		if !ok || v == "" {
			return
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			problems = append(problems, fmt.Errorf("%s: %w", key, err))
			return
		}
		*dst = d
	}
	boolean := func(key string, dst *bool) {
		v, ok := lookup(key)
		if !ok || v == "" {
			return
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			problems = append(problems, fmt.Errorf("%s: %w", key, err))
			return
		}
		*dst = b
	}

	str("HTTP_PORT", &cfg.HTTPPort)
	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			problems = append(problems, fmt.Errorf("LOG_LEVEL: %w", err))
		}
	}
	duration("SCHEDULER_POLL_INTERVAL", &cfg.SchedulerPollInterval)
	duration("SWEEP_INTERVAL", &cfg.SweepInterval)
	duration("REAP_INTERVAL", &cfg.ReapInterval)
	duration("RETENTION_WINDOW", &cfg.RetentionWindow)
	duration("SHIPPING_DELAY_MIN", &cfg.ShippingDelayMin)
	duration("SHIPPING_DELAY_MAX", &cfg.ShippingDelayMax)
	duration("SHIPPING_DELAY_STEP", &cfg.ShippingDelayStep)
	duration("SHUTDOWN_TIMEOUT", &cfg.ShutdownTimeout)
	boolean("CONSOLE_ENABLED", &cfg.ConsoleEnabled)
	boolean("METRICS_ENABLED", &cfg.MetricsEnabled)

	if len(problems) > 0 {
		return Config{}, errors.Join(problems...)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration and reports every problem at once.
func (c Config) Validate() error {
	var problems []error

	if port, err := strconv.Atoi(c.HTTPPort); err != nil || port < 1 || port > 65535 {
		problems = append(problems, fmt.Errorf("HTTP_PORT %q is not a valid port", c.HTTPPort))
	}

	for _, d := range []struct {
		key   string
		value time.Duration
	}{
		{"SCHEDULER_POLL_INTERVAL", c.SchedulerPollInterval},
		{"RETENTION_WINDOW", c.RetentionWindow},
		{"SHIPPING_DELAY_MIN", c.ShippingDelayMin},
		{"SHIPPING_DELAY_STEP", c.ShippingDelayStep},
		{"SHUTDOWN_TIMEOUT", c.ShutdownTimeout},
	} {
		if d.value <= 0 {
			problems = append(problems, fmt.Errorf("%s must be positive, got %s", d.key, d.value))
		}
	}

	for _, d := range []struct {
		key   string
		value time.Duration
	}{
		{"SWEEP_INTERVAL", c.SweepInterval},
		{"REAP_INTERVAL", c.ReapInterval},
	} {
		if d.value < time.Second || d.value%time.Second != 0 {
			problems = append(problems, fmt.Errorf("%s must be a whole number of seconds, at least 1s, got %s",
				d.key, d.value))
		}
	}
	if c.ShippingDelayMax < c.ShippingDelayMin {
		problems = append(problems, fmt.Errorf("SHIPPING_DELAY_MAX %s is below SHIPPING_DELAY_MIN %s",
			c.ShippingDelayMax, c.ShippingDelayMin))
	}

	return errors.Join(problems...)
}
