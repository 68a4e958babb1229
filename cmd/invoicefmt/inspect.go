package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fwojciec/invoicefmt"
)

// Run executes the inspect command.
func (c *InspectCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("reading %s: %w", c.File, err)
	}

	inv, err := deps.Extractor.Extract(string(data))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", invoicefmt.ErrorMessage(err))
		return err
	}

	out, err := json.MarshalIndent(inv, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(out))
	return nil
}
