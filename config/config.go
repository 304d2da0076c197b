package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

type Config struct {
	LogLines     int    `json:"log_lines"`
	LogsDir      string `json:"logs_dir"`
	RecentDir    string `json:"recent_dir"`
	OutputPath   string `json:"output_path"`
	MachinePath  string `json:"machine_path"`
	FrameDelayMs int    `json:"frame_delay_ms"`
}

var (
	defaultConfig *Config
	once          sync.Once
)

func Default() *Config {
	return &Config{
		LogLines:     1000,
		LogsDir:      "logs",
		RecentDir:    "recent",
		OutputPath:   filepath.Join("print", "msg.txt"),
		MachinePath:  "machine.yaml",
		FrameDelayMs: 75,
	}
}

func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		// Try default locations
		defaultPaths := []string{
			"enigma.json",
			".enigma.json",
			filepath.Join(os.Getenv("HOME"), ".config", "enigma", "config.json"),
		}

		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}

		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return cfg, nil
}

// Apply defaults for any zero values
func (c *Config) applyDefaults() {
	def := Default()
	if c.LogLines <= 0 {
		c.LogLines = def.LogLines
	}
	if c.LogsDir == "" {
		c.LogsDir = def.LogsDir
	}
	if c.RecentDir == "" {
		c.RecentDir = def.RecentDir
	}
	if c.OutputPath == "" {
		c.OutputPath = def.OutputPath
	}
	if c.MachinePath == "" {
		c.MachinePath = def.MachinePath
	}
	if c.FrameDelayMs <= 0 {
		c.FrameDelayMs = def.FrameDelayMs
	}
}

// FrameDelay is the length of one animation frame.
func (c *Config) FrameDelay() time.Duration {
	return time.Duration(c.FrameDelayMs) * time.Millisecond
}

// LoadDefault loads the config once and caches it
func LoadDefault() (*Config, error) {
	var err error
	once.Do(func() {
		defaultConfig, err = Load("")
	})
	if err != nil || defaultConfig == nil {
		return Default(), err
	}
	return defaultConfig, nil
}
