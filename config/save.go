package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SaveGlobal writes a key-value pair to the global config file at path,
// keeping the other keys.
func SaveGlobal(path, key, value string) error {
	if path == "" {
		return fmt.Errorf("global config path not configured")
	}
	if !ValidKey(key) {
		return fmt.Errorf("unknown config key: %s\n\nValid keys: %s",
			key, strings.Join(Keys, ", "))
	}

	existing, err := readFile(path)
	if err != nil {
		return err
	}
	existing[key] = parseValue(value)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return writeFile(path, existing)
}

// DeleteGlobalKey removes a key from the global config file at path.
func DeleteGlobalKey(path, key string) error {
	if _, err := os.Stat(path); err != nil {
		return nil // Nothing to delete
	}
	existing, err := readFile(path)
	if err != nil {
		return err
	}
	delete(existing, key)
	return writeFile(path, existing)
}

func readFile(path string) (map[string]interface{}, error) {
	existing := make(map[string]interface{})
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return existing, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, &existing); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if existing == nil {
		existing = make(map[string]interface{})
	}
	return existing, nil
}

func writeFile(path string, values map[string]interface{}) error {
	data, err := yaml.Marshal(values)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// parseValue converts string values to appropriate types for YAML.
func parseValue(value string) interface{} {
	lower := strings.ToLower(value)
	if lower == "true" {
		return true
	}
	if lower == "false" {
		return false
	}
	return value
}
