package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Resolver merges configuration layers.
// Priority (highest to lowest): flags > env > global file > defaults.
type Resolver struct {
	globalPath string
	defaults   map[string]string
	errWriter  io.Writer

	// Warnings collects non-fatal issues during resolution.
	Warnings []string
}

// DefaultGlobalPath returns ~/.config/repotidy/config.yaml, or "" when the
// home directory is unknown.
func DefaultGlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", AppDir, "config.yaml")
}

// NewResolver creates a resolver reading the global file at globalPath.
// An empty path skips the file layer.
func NewResolver(globalPath string) *Resolver {
	return &Resolver{
		globalPath: globalPath,
		defaults:   Defaults(),
		errWriter:  os.Stderr,
	}
}

// WithErrWriter sets where warnings are printed. nil silences them.
func (r *Resolver) WithErrWriter(w io.Writer) *Resolver {
	r.errWriter = w
	return r
}

// GlobalPath returns the path to the global config file.
func (r *Resolver) GlobalPath() string {
	return r.globalPath
}

func (r *Resolver) warn(msg string) {
	r.Warnings = append(r.Warnings, msg)
	if r.errWriter != nil {
		fmt.Fprintf(r.errWriter, "Warning: %s\n", msg)
	}
}

// Resolved holds the final merged configuration.
type Resolved struct {
	values  map[string]string
	sources map[string]Source
}

// Get returns the value for a key, or empty string if not set.
func (c *Resolved) Get(key string) string {
	return c.values[key]
}

// Source returns the source of a key's value.
func (c *Resolved) Source(key string) Source {
	return c.sources[key]
}

// GetWithSource returns both the value and its source.
func (c *Resolved) GetWithSource(key string) (string, Source) {
	return c.values[key], c.sources[key]
}

// All returns a copy of all key-value pairs.
func (c *Resolved) All() map[string]string {
	result := make(map[string]string, len(c.values))
	for k, v := range c.values {
		result[k] = v
	}
	return result
}

// Keys returns all configuration keys, sorted.
func (c *Resolved) Keys() []string {
	keys := make([]string, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Resolve builds the final config by merging defaults, the global file and
// the environment.
func (r *Resolver) Resolve() *Resolved {
	cfg := &Resolved{
		values:  make(map[string]string),
		sources: make(map[string]Source),
	}

	r.applyDefaults(cfg)
	r.applyGlobal(cfg)
	r.applyEnv(cfg)

	return cfg
}

// ResolveWithFlags resolves config and applies flag overrides.
// Empty flag values are ignored.
func (r *Resolver) ResolveWithFlags(flags map[string]string) *Resolved {
	cfg := r.Resolve()

	for key, value := range flags {
		if value != "" {
			cfg.values[key] = value
			cfg.sources[key] = SourceFlag
		}
	}

	return cfg
}

func (r *Resolver) applyDefaults(cfg *Resolved) {
	for key, value := range r.defaults {
		cfg.values[key] = value
		cfg.sources[key] = SourceDefault
	}
}

func (r *Resolver) applyGlobal(cfg *Resolved) {
	if r.globalPath == "" {
		return
	}

	data, err := os.ReadFile(r.globalPath)
	if err != nil {
		return // File doesn't exist - not an error
	}

	var parsed map[string]interface{}
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		r.warn(fmt.Sprintf("could not parse %s: %v", r.globalPath, err))
		return
	}

	for key, value := range parsed {
		if !ValidKey(key) {
			r.warn(fmt.Sprintf("ignoring unknown key %q in %s", key, r.globalPath))
			continue
		}
		if strVal := toString(value); strVal != "" {
			cfg.values[key] = strVal
			cfg.sources[key] = SourceGlobal
		}
	}
}

func (r *Resolver) applyEnv(cfg *Resolved) {
	for _, key := range Keys {
		envKey := EnvPrefix + strings.ToUpper(key)
		if value := os.Getenv(envKey); value != "" {
			cfg.values[key] = value
			cfg.sources[key] = SourceEnv
		}
	}

	// Also check standard NO_COLOR env var (always, regardless of prefix)
	if _, hasNoColor := os.LookupEnv("NO_COLOR"); hasNoColor {
		cfg.values[KeyNoColor] = "true"
		cfg.sources[KeyNoColor] = SourceEnv
	}
}

// toString flattens a YAML scalar or list into the string form used by
// every layer. Lists join with commas.
func toString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int, int64, float64:
		return fmt.Sprintf("%v", val)
	case []interface{}:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			if s := toString(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ",")
	default:
		return ""
	}
}
