// Package config defines the planner policy configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"planweaver/internal/core"
	"planweaver/internal/dag"
)

// Config is the top-level planner configuration. It holds policy only; the
// planning request itself never lives in configuration.
type Config struct {
	// TieBreak is the ordering precedence among ready tasks:
	// "deadline-first" (default) or "priority-first".
	TieBreak string `json:"tie_break" yaml:"tie_break"`

	// WorkWindow is the daily window used when a request omits one.
	WorkWindow WindowConfig `json:"work_window" yaml:"work_window"`

	// DefaultPriority is assigned to tasks that declare none.
	DefaultPriority int `json:"default_priority" yaml:"default_priority"`
}

// WindowConfig is a daily clock-time window in "HH:MM" form.
type WindowConfig struct {
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
}

// DefaultConfig returns a config with the built-in defaults: deadline-first
// ordering, an 18:00-23:00 window, priority 3.
func DefaultConfig() *Config {
	return &Config{
		TieBreak: string(dag.TieBreakDeadlineFirst),
		WorkWindow: WindowConfig{
			Start: "18:00",
			End:   "23:00",
		},
		DefaultPriority: 3,
	}
}

// Load reads a YAML config file, layering it over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the policy values.
func (c *Config) Validate() error {
	if !dag.TieBreak(c.TieBreak).Valid() {
		return fmt.Errorf("unknown tie_break %q (want %q or %q)",
			c.TieBreak, dag.TieBreakDeadlineFirst, dag.TieBreakPriorityFirst)
	}
	window, err := c.Window()
	if err != nil {
		return err
	}
	if err := window.Validate(); err != nil {
		return fmt.Errorf("work_window: %w", err)
	}
	return nil
}

// TieBreakPolicy returns the configured ordering policy.
func (c *Config) TieBreakPolicy() dag.TieBreak { return dag.TieBreak(c.TieBreak) }

// Window parses the configured default work window.
func (c *Config) Window() (core.WorkWindow, error) {
	start, err := core.ParseClockTime(c.WorkWindow.Start)
	if err != nil {
		return core.WorkWindow{}, fmt.Errorf("work_window.start: %w", err)
	}
	end, err := core.ParseClockTime(c.WorkWindow.End)
	if err != nil {
		return core.WorkWindow{}, fmt.Errorf("work_window.end: %w", err)
	}
	return core.WorkWindow{Start: start, End: end}, nil
}
