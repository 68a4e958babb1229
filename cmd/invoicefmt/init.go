package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/invoicefmt"
	"github.com/fwojciec/invoicefmt/fs"
	"github.com/fwojciec/invoicefmt/yaml"
)

// Run executes the init command.
func (c *InitCmd) Run(deps *Dependencies) error {
	if err := fs.EnsureProject(c.Dir); err != nil {
		return fmt.Errorf("creating project structure: %w", err)
	}

	configDir := filepath.Join(c.Dir, fs.ConfigDir)

	configPath := filepath.Join(configDir, yaml.ConfigFileName)
	if err := yaml.SaveConfig(configPath, invoicefmt.DefaultConfig()); err != nil {
		return fmt.Errorf("writing %s: %w", configPath, err)
	}

	ibanPath := filepath.Join(configDir, yaml.IbanFileName)
	if err := yaml.SaveIbanConfig(ibanPath, invoicefmt.DefaultIbanConfig()); err != nil {
		return fmt.Errorf("writing %s: %w", ibanPath, err)
	}

	fmt.Fprintf(deps.Stdout, "Created project folder %s (input/, output/, config/)\n", c.Dir)
	fmt.Fprintf(deps.Stdout, "Set iban in %s before converting\n", ibanPath)
	return nil
}
