package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/invoicefmt"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	Settings   invoicefmt.SettingsService
	Extractor  invoicefmt.Extractor
	Renderer   invoicefmt.Renderer
	Rasterizer invoicefmt.Rasterizer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Debug bool `help:"Enable debug logging"`

	Init    InitCmd    `cmd:"" help:"Create a project folder with input/, output/, and config/ plus default config files"`
	Convert ConvertCmd `cmd:"" help:"Convert the invoices in a project's input folder"`
	Inspect InspectCmd `cmd:"" help:"Extract one invoice document and print the record as JSON"`
	Project ProjectCmd `cmd:"" help:"Show or change the remembered project folder"`
}

// InitCmd is the "init" subcommand.
type InitCmd struct {
	Dir string `arg:"" help:"Project folder to create"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	Dir       string `arg:"" optional:"" help:"Project folder (defaults to the remembered one)"`
	KeepHTML  bool   `default:"true" negatable:"" help:"Keep the rendered HTML alongside the PDF"`
	Overwrite bool   `help:"Overwrite existing output files instead of skipping"`
	NoPDF     bool   `help:"Skip PDF generation"`
}

// InspectCmd is the "inspect" subcommand.
type InspectCmd struct {
	File string `arg:"" help:"Invoice HTML file"`
}

// ProjectCmd is the "project" subcommand.
type ProjectCmd struct {
	Set   string `help:"Remember a project folder"`
	Clear bool   `help:"Forget the remembered project folder"`
}
