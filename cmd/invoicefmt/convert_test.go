package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/invoicefmt"
	main "github.com/fwojciec/invoicefmt/cmd/invoicefmt"
	"github.com/fwojciec/invoicefmt/fs"
	"github.com/fwojciec/invoicefmt/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newProject creates a project folder with one input file and a
// configured IBAN.
func newProject(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, fs.EnsureProject(dir))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "iban.yml"), []byte("iban: NL00BANK0123456789\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "input", "a.html"), []byte("A-1"), 0644))
	return dir
}

func convertDeps(stdout, stderr *bytes.Buffer) *main.Dependencies {
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Extractor: &mock.Extractor{ExtractFn: func(rawHTML string) (*invoicefmt.Invoice, error) {
			return &invoicefmt.Invoice{InvoiceNumber: rawHTML, ClientName: "Client"}, nil
		}},
		Renderer: &mock.Renderer{RenderFn: func(inv *invoicefmt.Invoice, cfg *invoicefmt.Config, iban *invoicefmt.IbanConfig, banner *invoicefmt.BannerAsset) (string, error) {
			return "<html>doc</html>", nil
		}},
		Settings: &mock.SettingsService{
			SetFn: func(ctx context.Context, key, value string) error { return nil },
		},
	}
}

func TestCmdConvert(t *testing.T) {
	t.Parallel()

	t.Run("converts input files into the output folder", func(t *testing.T) {
		t.Parallel()

		dir := newProject(t)
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := convertDeps(stdout, stderr)

		var rememberedDir string
		deps.Settings = &mock.SettingsService{
			SetFn: func(ctx context.Context, key, value string) error {
				rememberedDir = value
				return nil
			},
		}

		cmd := &main.ConvertCmd{Dir: dir, KeepHTML: true, NoPDF: true}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "Converting 1 file(s)")
		assert.Contains(t, stdout.String(), "Conversion complete. 1 converted, 0 errors.")
		assert.Equal(t, dir, rememberedDir)

		data, err := os.ReadFile(filepath.Join(dir, "output", "Invoice-A-1-Client-improved.html"))
		require.NoError(t, err)
		assert.Equal(t, "<html>doc</html>", string(data))
	})

	t.Run("blocks conversion without an IBAN", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, fs.EnsureProject(dir))
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := convertDeps(stdout, stderr)

		cmd := &main.ConvertCmd{Dir: dir, KeepHTML: true, NoPDF: true}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, invoicefmt.EINVALID, invoicefmt.ErrorCode(err))
		assert.Contains(t, stderr.String(), "Set iban in")
		assert.NoFileExists(t, filepath.Join(dir, "output", "Invoice-A-1-Client-improved.html"))
	})

	t.Run("reports when there is nothing to convert", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, fs.EnsureProject(dir))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "iban.yml"), []byte("iban: NL00BANK0123456789\n"), 0644))
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

		cmd := &main.ConvertCmd{Dir: dir, KeepHTML: true, NoPDF: true}
		require.NoError(t, cmd.Run(convertDeps(stdout, stderr)))

		assert.Contains(t, stdout.String(), "No input files found")
	})

	t.Run("falls back to the remembered project folder", func(t *testing.T) {
		t.Parallel()

		dir := newProject(t)
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := convertDeps(stdout, stderr)
		deps.Settings = &mock.SettingsService{
			GetFn: func(ctx context.Context, key string) (string, error) {
				assert.Equal(t, invoicefmt.SettingProjectDir, key)
				return dir, nil
			},
			SetFn: func(ctx context.Context, key, value string) error { return nil },
		}

		cmd := &main.ConvertCmd{KeepHTML: true, NoPDF: true}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "Conversion complete. 1 converted, 0 errors.")
	})

	t.Run("errors without a project folder anywhere", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := convertDeps(stdout, stderr)
		deps.Settings = &mock.SettingsService{
			GetFn: func(ctx context.Context, key string) (string, error) {
				return "", invoicefmt.Errorf(invoicefmt.ENOTFOUND, "setting %q not found", key)
			},
		}

		cmd := &main.ConvertCmd{KeepHTML: true, NoPDF: true}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, invoicefmt.EINVALID, invoicefmt.ErrorCode(err))
		assert.Contains(t, stderr.String(), "invoicefmt project --set")
	})

	t.Run("reports per-file failures and keeps going", func(t *testing.T) {
		t.Parallel()

		dir := newProject(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "input", "b.html"), []byte("bad"), 0644))
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := convertDeps(stdout, stderr)
		deps.Extractor = &mock.Extractor{ExtractFn: func(rawHTML string) (*invoicefmt.Invoice, error) {
			if rawHTML == "bad" {
				return nil, invoicefmt.Errorf(invoicefmt.EINVALID, "not an invoice")
			}
			return &invoicefmt.Invoice{InvoiceNumber: rawHTML, ClientName: "Client"}, nil
		}}

		cmd := &main.ConvertCmd{Dir: dir, KeepHTML: true, NoPDF: true}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stderr.String(), "fail b.html")
		assert.Contains(t, stdout.String(), "Conversion complete. 1 converted, 1 errors.")
	})
}
