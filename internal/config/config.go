// Package config handles global Magpie configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the global Magpie configuration.
type Config struct {
	// DefaultVault is the name of the default vault (from Vaults map).
	DefaultVault string `toml:"default_vault"`

	// Vaults is a map of vault names to paths.
	Vaults map[string]string `toml:"vaults"`

	// Linker controls annotation behavior defaults.
	Linker LinkerConfig `toml:"linker"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// LinkerConfig holds the annotation defaults applied when the
// corresponding flags are not given. Field polarity is chosen so the
// TOML zero value matches the built-in defaults: first occurrence
// only, case insensitive, no implicit detection.
type LinkerConfig struct {
	// AllOccurrences links every match of an entity instead of only
	// the first.
	AllOccurrences bool `toml:"all_occurrences"`

	// CaseSensitive requires exact-case matches.
	CaseSensitive bool `toml:"case_sensitive"`

	// DetectImplicit reports heuristic entity candidates alongside
	// known-entity links.
	DetectImplicit bool `toml:"detect_implicit"`

	// ImplicitPatterns selects which heuristic families run. Empty
	// means all of them.
	ImplicitPatterns []string `toml:"implicit_patterns"`

	// ExcludePatterns are regular expressions; implicit candidates
	// matching any of them are dropped.
	ExcludePatterns []string `toml:"exclude_patterns"`

	// MinEntityLength is the minimum implicit candidate length.
	// Zero means the built-in default.
	MinEntityLength int `toml:"min_entity_length"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for CLI output and markdown
	// rendering. Supported values are ANSI color codes ("0" to "255")
	// or hex colors ("#RRGGBB").
	Accent string `toml:"accent"`

	// CodeTheme sets the Glamour/Chroma theme used for rendered
	// markdown code blocks.
	CodeTheme string `toml:"code_theme"`
}

// GetVaultPath returns the path for a named vault.
// If name is empty, returns the default vault path.
func (c *Config) GetVaultPath(name string) (string, error) {
	if name == "" {
		name = c.DefaultVault
	}

	if c.Vaults != nil {
		if path, ok := c.Vaults[name]; ok {
			return path, nil
		}
	}

	if name == "" {
		return "", fmt.Errorf("no default vault configured")
	}
	return "", fmt.Errorf("vault '%s' not found in config", name)
}

// GetDefaultVaultPath returns the default vault path.
func (c *Config) GetDefaultVaultPath() (string, error) {
	return c.GetVaultPath("")
}

// ListVaults returns all configured vaults with their paths.
func (c *Config) ListVaults() map[string]string {
	result := make(map[string]string)
	for name, path := range c.Vaults {
		result[name] = path
	}
	return result
}

// Load loads the configuration from the default location.
// Returns a default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath := DefaultPath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &Config{}, nil
	}

	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &config, nil
}

// DefaultPath returns the default config file path.
// Checks ~/.config/magpie/config.toml first (XDG style),
// then falls back to OS-specific location.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "magpie", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "magpie", "config.toml")
	}

	return filepath.Join(".", "config.toml")
}

// CreateDefault creates a default config file if it doesn't exist.
func CreateDefault() (string, error) {
	configPath := DefaultPath()

	if _, err := os.Stat(configPath); err == nil {
		return configPath, nil // Already exists
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	defaultConfig := `# Magpie Configuration

# Default vault name (must exist in [vaults] below)
# default_vault = "personal"

# Named vaults
# [vaults]
# personal = "/path/to/your/notes"
# work = "/path/to/work/notes"

# Annotation defaults. The commented values are the built-in defaults.
# [linker]
# all_occurrences = false
# case_sensitive = false
# detect_implicit = false
# implicit_patterns = []
# exclude_patterns = []
# min_entity_length = 3

# Optional UI accent color for headers/links in terminal output.
# Supports ANSI color codes (0-255) or hex (#RRGGBB).
# [ui]
# accent = "39"
# code_theme = "monokai"
`

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return configPath, nil
}
