package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/invoicefmt"
	main "github.com/fwojciec/invoicefmt/cmd/invoicefmt"
	"github.com/fwojciec/invoicefmt/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCmdInspect(t *testing.T) {
	t.Parallel()

	t.Run("prints the extracted record as JSON", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "a.html")
		require.NoError(t, os.WriteFile(path, []byte("<html>invoice</html>"), 0644))

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Extractor: &mock.Extractor{ExtractFn: func(rawHTML string) (*invoicefmt.Invoice, error) {
				assert.Equal(t, "<html>invoice</html>", rawHTML)
				return &invoicefmt.Invoice{
					InvoiceNumber: "A-007",
					Columns:       []invoicefmt.Column{{Key: invoicefmt.ColTotal, Label: "Total"}},
				}, nil
			}},
		}

		cmd := &main.InspectCmd{File: path}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), `"invoiceNumber": "A-007"`)
		assert.Contains(t, stdout.String(), `"detectedColumns"`)
		assert.Empty(t, stderr.String())
	})

	t.Run("fails for a missing file", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
		}

		cmd := &main.InspectCmd{File: filepath.Join(t.TempDir(), "missing.html")}
		assert.Error(t, cmd.Run(deps))
	})

	t.Run("surfaces extraction failures", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "a.html")
		require.NoError(t, os.WriteFile(path, []byte("junk"), 0644))

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Extractor: &mock.Extractor{ExtractFn: func(rawHTML string) (*invoicefmt.Invoice, error) {
				return nil, invoicefmt.Errorf(invoicefmt.EINVALID, "not an invoice")
			}},
		}

		cmd := &main.InspectCmd{File: path}
		require.Error(t, cmd.Run(deps))
		assert.Contains(t, stderr.String(), "not an invoice")
	})
}
