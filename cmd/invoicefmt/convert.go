package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/invoicefmt"
	"github.com/fwojciec/invoicefmt/convert"
	"github.com/fwojciec/invoicefmt/fs"
	"github.com/fwojciec/invoicefmt/yaml"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	dir, err := c.resolveProjectDir(deps)
	if err != nil {
		return err
	}

	configDir := filepath.Join(dir, fs.ConfigDir)
	cfg, err := yaml.LoadConfig(filepath.Join(configDir, yaml.ConfigFileName))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", invoicefmt.ErrorMessage(err))
		return err
	}
	iban, err := yaml.LoadIbanConfig(filepath.Join(configDir, yaml.IbanFileName))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", invoicefmt.ErrorMessage(err))
		return err
	}
	if iban.IBAN == "" {
		fmt.Fprintf(deps.Stderr, "Set iban in %s before converting\n", filepath.Join(configDir, yaml.IbanFileName))
		return invoicefmt.Errorf(invoicefmt.EINVALID, "IBAN is required before conversion")
	}

	paths, err := fs.ListInputs(dir)
	if err != nil {
		return fmt.Errorf("listing input files: %w", err)
	}
	if len(paths) == 0 {
		fmt.Fprintf(deps.Stdout, "No input files found in %s\n", filepath.Join(dir, fs.InputDir))
		return nil
	}

	inputs := make([]convert.Input, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		inputs = append(inputs, convert.Input{Name: filepath.Base(path), HTML: string(data)})
	}

	converter := &convert.Converter{
		Extractor:  deps.Extractor,
		Renderer:   deps.Renderer,
		Rasterizer: deps.Rasterizer,
		Banners:    fs.NewBannerResolver(dir),
		Outputs:    fs.NewProjectWriter(dir),
		Config:     cfg,
		Iban:       iban,
		Options: convert.Options{
			KeepHTML:    c.KeepHTML,
			Overwrite:   c.Overwrite,
			GeneratePDF: !c.NoPDF,
		},
		Logger: deps.Logger,
	}

	progress := func(event convert.ProgressEvent) {
		switch event.Type {
		case convert.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Converting %d file(s)\n", event.Total)
		case convert.ProgressSkipped:
			fmt.Fprintf(deps.Stdout, "  skip %s: output exists (use --overwrite)\n", event.Name)
		case convert.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  fail %s: %v\n", event.Name, event.Error)
		}
	}

	result, err := converter.Convert(deps.Ctx, inputs, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", invoicefmt.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Conversion complete. %d converted, %d errors.\n", result.Converted, result.Errors)

	// Remember the project folder for the next run.
	if err := deps.Settings.Set(deps.Ctx, invoicefmt.SettingProjectDir, dir); err != nil {
		fmt.Fprintf(deps.Stderr, "warning: failed to remember project folder: %v\n", err)
	}

	return nil
}

// resolveProjectDir uses the argument when given and otherwise falls
// back to the remembered project folder.
func (c *ConvertCmd) resolveProjectDir(deps *Dependencies) (string, error) {
	if c.Dir != "" {
		return c.Dir, nil
	}
	dir, err := deps.Settings.Get(deps.Ctx, invoicefmt.SettingProjectDir)
	if err != nil {
		fmt.Fprintln(deps.Stderr, "Hint: pass a project folder or run 'invoicefmt project --set DIR'")
		return "", invoicefmt.Errorf(invoicefmt.EINVALID, "no project folder specified and none remembered")
	}
	return dir, nil
}
