package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the kiosk configuration.
type Config struct {
	Store     StoreConfig     `yaml:"store"`
	Input     InputConfig     `yaml:"input"`
	Display   DisplayConfig   `yaml:"display"`
	Standards StandardsConfig `yaml:"standards"`
	Serial    SerialConfig    `yaml:"serial"`
	Melody    MelodyConfig    `yaml:"melody"`
	Log       LogConfig       `yaml:"log"`
}

// StoreConfig contains sample store parameters.
type StoreConfig struct {
	Capacity int    `yaml:"capacity"`
	Policy   string `yaml:"policy"` // "reject" or "overwrite-oldest"
}

// InputConfig contains keypad entry parameters.
type InputConfig struct {
	MaxWidth int           `yaml:"max_width"`
	Debounce time.Duration `yaml:"debounce"` // Pause after every key read
}

// DisplayConfig contains character display parameters.
type DisplayConfig struct {
	Width       int           `yaml:"width"`
	SettleDelay time.Duration `yaml:"settle_delay"` // Pause before drawing a screen
}

// StandardsConfig contains the reference value shown for each parameter.
type StandardsConfig struct {
	PH           float64 `yaml:"ph"`
	Conductivity float64 `yaml:"conductivity"`
	Hardness     float64 `yaml:"hardness"`
}

// SerialConfig contains serial console configuration.
type SerialConfig struct {
	Port        string        `yaml:"port"`
	BaudRate    int           `yaml:"baud_rate"`
	ReadTimeout time.Duration `yaml:"read_timeout"`
}

// MelodyConfig contains buzzer parameters.
type MelodyConfig struct {
	BootTune string        `yaml:"boot_tune"` // Empty disables the boot tune
	Tempo    time.Duration `yaml:"tempo"`     // Duration of one beat
}

// LogConfig contains log output configuration.
type LogConfig struct {
	File string `yaml:"file"` // Used when running as a service
}

// Default returns a default configuration matching the reference device.
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Capacity: 5,
			Policy:   "reject",
		},
		Input: InputConfig{
			MaxWidth: 16,
			Debounce: 100 * time.Millisecond,
		},
		Display: DisplayConfig{
			Width:       16,
			SettleDelay: 10 * time.Millisecond,
		},
		Standards: StandardsConfig{
			PH:           7.0,
			Conductivity: 400.0,
			Hardness:     90.0,
		},
		Serial: SerialConfig{
			Port:        "COM3", // Default for Windows, should be "/dev/ttyACM0" on Linux/Mac
			BaudRate:    115200,
			ReadTimeout: 50 * time.Millisecond,
		},
		Melody: MelodyConfig{
			BootTune: "",
			Tempo:    60 * time.Millisecond,
		},
		Log: LogConfig{
			File: "kiosk.log",
		},
	}
}

// Load loads configuration from a YAML file. If the file doesn't exist or
// fields are missing, it uses default values.
func Load(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.ensureDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}

	return cfg, nil
}

// Save saves the configuration to a YAML file.
func (c *Config) Save(filename string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks values that have no safe default.
func (c *Config) Validate() error {
	switch c.Store.Policy {
	case "reject", "overwrite-oldest":
	default:
		return fmt.Errorf("store.policy must be reject or overwrite-oldest, got %q", c.Store.Policy)
	}
	if c.Store.Capacity < 0 {
		return fmt.Errorf("store.capacity must not be negative, got %d", c.Store.Capacity)
	}
	if c.Input.MaxWidth > c.Display.Width {
		return fmt.Errorf("input.max_width %d exceeds display.width %d", c.Input.MaxWidth, c.Display.Width)
	}
	if c.Display.Width > 40 {
		return fmt.Errorf("display.width must be at most 40, got %d", c.Display.Width)
	}
	return nil
}

// ensureDefaults ensures that all required fields have default values if missing.
func (c *Config) ensureDefaults() {
	def := Default()

	if c.Store.Capacity == 0 {
		c.Store.Capacity = def.Store.Capacity
	}
	if c.Store.Policy == "" {
		c.Store.Policy = def.Store.Policy
	}

	if c.Input.MaxWidth == 0 {
		c.Input.MaxWidth = def.Input.MaxWidth
	}
	if c.Input.Debounce == 0 {
		c.Input.Debounce = def.Input.Debounce
	}

	if c.Display.Width == 0 {
		c.Display.Width = def.Display.Width
	}
	if c.Display.SettleDelay == 0 {
		c.Display.SettleDelay = def.Display.SettleDelay
	}

	if c.Standards.PH == 0 {
		c.Standards.PH = def.Standards.PH
	}
	if c.Standards.Conductivity == 0 {
		c.Standards.Conductivity = def.Standards.Conductivity
	}
	if c.Standards.Hardness == 0 {
		c.Standards.Hardness = def.Standards.Hardness
	}

	if c.Serial.Port == "" {
		c.Serial.Port = def.Serial.Port
	}
	if c.Serial.BaudRate == 0 {
		c.Serial.BaudRate = def.Serial.BaudRate
	}
	if c.Serial.ReadTimeout == 0 {
		c.Serial.ReadTimeout = def.Serial.ReadTimeout
	}

	if c.Melody.Tempo == 0 {
		c.Melody.Tempo = def.Melody.Tempo
	}

	if c.Log.File == "" {
		c.Log.File = def.Log.File
	}
}
