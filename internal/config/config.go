// Package config loads and persists the .formlist/config.json
// settings file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Loading modes.
const (
	ModeClient = "client" // eager: load everything, filter locally
	ModeServer = "server" // incremental: page on demand, filter at the source
)

// Config represents the formlist configuration
type Config struct {
	// Loading strategy
	Mode     string `json:"mode"`
	PageSize int    `json:"page_size"`

	// Search settings. Zero interval means "use the mode default"
	// (1000ms server, 300ms client).
	DebounceIntervalMs int `json:"debounce_interval_ms"`

	// Continuation trigger
	VisibilityThreshold float64 `json:"visibility_threshold"`
	LookaheadMarginRows int     `json:"lookahead_margin_rows"`

	// Data source; empty means the built-in demo source
	SourceURL string `json:"source_url"`

	// UI preferences
	Theme string `json:"theme"`
	Debug bool   `json:"debug"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Mode:                ModeServer,
		PageSize:            20,
		DebounceIntervalMs:  0,
		VisibilityThreshold: 0.01,
		LookaheadMarginRows: 3,
		SourceURL:           "",
		Theme:               "clinic",
		Debug:               false,
	}
}

// Manager handles configuration loading and saving
type Manager struct {
	workDir    string
	configPath string
	config     *Config
}

// NewManager creates a new configuration manager rooted at workDir.
func NewManager(workDir string) *Manager {
	dataDir := filepath.Join(workDir, ".formlist")
	return &Manager{
		workDir:    workDir,
		configPath: filepath.Join(dataDir, "config.json"),
		config:     DefaultConfig(),
	}
}

// DataDir returns the directory holding config and logs.
func (m *Manager) DataDir() string {
	return filepath.Dir(m.configPath)
}

// Load reads the configuration from disk, creating defaults if needed
func (m *Manager) Load() error {
	if err := os.MkdirAll(m.DataDir(), 0o755); err != nil {
		return fmt.Errorf("failed to create .formlist directory: %w", err)
	}

	if _, err := os.Stat(m.configPath); os.IsNotExist(err) {
		return m.Save()
	}

	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse config JSON: %w", err)
	}

	config.SourceURL = expandString(config.SourceURL)
	config.Theme = expandString(config.Theme)

	if err := validate(&config); err != nil {
		return err
	}

	m.config = &config
	return nil
}

// Save writes the current configuration to disk
func (m *Manager) Save() error {
	data, err := json.MarshalIndent(m.config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(m.configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Get returns the current configuration
func (m *Manager) Get() *Config {
	return m.config
}

// Set updates a configuration value and saves
func (m *Manager) Set(key, value string) error {
	switch key {
	case "mode":
		if value != ModeClient && value != ModeServer {
			return fmt.Errorf("mode must be %q or %q", ModeClient, ModeServer)
		}
		m.config.Mode = value
	case "page_size":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("page_size must be a positive integer: %q", value)
		}
		m.config.PageSize = n
	case "debounce_interval_ms":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("debounce_interval_ms must be a non-negative integer: %q", value)
		}
		m.config.DebounceIntervalMs = n
	case "visibility_threshold":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f < 0 || f > 1 {
			return fmt.Errorf("visibility_threshold must be in [0,1]: %q", value)
		}
		m.config.VisibilityThreshold = f
	case "lookahead_margin_rows":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("lookahead_margin_rows must be a non-negative integer: %q", value)
		}
		m.config.LookaheadMarginRows = n
	case "source_url":
		m.config.SourceURL = value
	case "theme":
		m.config.Theme = value
	case "debug":
		m.config.Debug = value == "true"
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}

	return m.Save()
}

func validate(c *Config) error {
	if c.Mode != ModeClient && c.Mode != ModeServer {
		return fmt.Errorf("invalid mode %q", c.Mode)
	}
	if c.PageSize < 1 {
		return fmt.Errorf("page_size must be at least 1, got %d", c.PageSize)
	}
	if c.VisibilityThreshold < 0 || c.VisibilityThreshold > 1 {
		return fmt.Errorf("visibility_threshold must be in [0,1], got %g", c.VisibilityThreshold)
	}
	if c.LookaheadMarginRows < 0 {
		return fmt.Errorf("lookahead_margin_rows must not be negative, got %d", c.LookaheadMarginRows)
	}
	return nil
}

// expandString expands environment variables in a string.
// Supports $VAR and ${VAR} syntax.
func expandString(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

	return re.ReplaceAllStringFunc(s, func(match string) string {
		var varName string
		if strings.HasPrefix(match, "${") {
			varName = match[2 : len(match)-1]
		} else {
			varName = match[1:]
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}

		return match
	})
}
