// Package yaml loads and saves invoicefmt configuration files.
package yaml

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/invoicefmt"
	"gopkg.in/yaml.v3"
)

// Config and IBAN file names inside a project's config directory.
const (
	ConfigFileName = "config.yml"
	IbanFileName   = "iban.yml"
)

// LoadConfig reads a render configuration from path. A partial file
// degrades field-by-field: absent fields keep their defaults because
// the file is unmarshalled over a fully-populated default config. A
// missing file yields pure defaults and is not an error.
func LoadConfig(path string) (*invoicefmt.Config, error) {
	cfg := invoicefmt.DefaultConfig()
	if err := loadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadIbanConfig reads the IBAN configuration from path. A missing file
// yields an empty IBAN; the conversion-blocking policy lives with the
// caller.
func LoadIbanConfig(path string) (*invoicefmt.IbanConfig, error) {
	cfg := invoicefmt.DefaultIbanConfig()
	if err := loadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfig writes cfg to path, creating parent directories.
func SaveConfig(path string, cfg *invoicefmt.Config) error {
	return save(path, cfg)
}

// SaveIbanConfig writes cfg to path, creating parent directories.
func SaveIbanConfig(path string, cfg *invoicefmt.IbanConfig) error {
	return save(path, cfg)
}

func loadInto(path string, v any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return invoicefmt.Errorf(invoicefmt.EINVALID, "invalid config file %s: %v", path, err)
	}
	return nil
}

func save(path string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
