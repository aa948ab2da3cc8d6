// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Lift LiftConfig `yaml:"lift"`
}

// ---- LIFT ----

type LiftConfig struct {
	Controller ControllerConfig `yaml:"controller"`
	Plant      PlantConfig      `yaml:"plant"`
	Scan       ScanConfig       `yaml:"scan"`
	RemoteIO   RemoteIOConfig   `yaml:"remote_io"`
	Trace      TraceConfig      `yaml:"trace"`
}

// ---- CONTROLLER ----

type ControllerConfig struct {
	MaxLoadKg     float64 `yaml:"max_load_kg"`
	LiftSpeed     float64 `yaml:"lift_speed"`
	LowerSpeed    float64 `yaml:"lower_speed"`
	StationaryEps float64 `yaml:"stationary_eps"`
}

// ---- PLANT ----

type PlantConfig struct {
	Acceleration float64 `yaml:"acceleration"`
}

// ---- SCAN ----

type ScanConfig struct {
	IntervalMs   int `yaml:"interval_ms"`
	StatusEveryN int `yaml:"status_every_n"` // console status print cadence, in cycles
}

// ---- REMOTE IO (OPT-IN) ----

type RemoteIOConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Endpoint  string `yaml:"endpoint"`
	UnitID    uint8  `yaml:"unit_id"`
	TimeoutMs int    `yaml:"timeout_ms"`

	// Input geometry: 5 discrete inputs starting at input_address
	// (up, down, hold, estop, reset) plus one input register for load.
	InputAddress uint16 `yaml:"input_address"`
	LoadRegister uint16 `yaml:"load_register"`

	// Output geometry: 3 coils starting at coil_address (motor enable,
	// brake, fault lamp) and the telemetry block at status_address.
	CoilAddress   uint16 `yaml:"coil_address"`
	StatusAddress uint16 `yaml:"status_address"`
}

// ---- TRACE (OPT-IN) ----

type TraceConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"` // empty = generated name
}

// Load reads and decodes a yaml config file. It performs no validation;
// callers must run Validate and then Normalize on the result.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	return &cfg, nil
}

// Default returns the config an empty file would produce after Normalize.
func Default() *Config {
	cfg := &Config{}
	Normalize(cfg)
	return cfg
}
