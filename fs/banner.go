package fs

import (
	"context"
	"encoding/base64"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/invoicefmt"
)

// Ensure BannerResolver implements invoicefmt.BannerResolver at compile
// time.
var _ invoicefmt.BannerResolver = (*BannerResolver)(nil)

// BannerResolver loads banner images from a project's config directory
// and returns them as data URIs, so the rendered document has no
// external file dependencies.
type BannerResolver struct {
	configDir string
}

// NewBannerResolver creates a resolver against a project folder's
// config directory.
func NewBannerResolver(projectDir string) *BannerResolver {
	return &BannerResolver{configDir: filepath.Join(projectDir, ConfigDir)}
}

// Resolve loads the banner referenced by path. Absolute URLs, data
// URIs, and empty paths return (nil, nil): they are referenced by the
// renderer as-is or omitted. A relative path is resolved against the
// config directory; a missing file returns ENOTFOUND, which callers
// degrade to omission.
func (r *BannerResolver) Resolve(ctx context.Context, path string) (*invoicefmt.BannerAsset, error) {
	if path == "" || strings.HasPrefix(path, "http") || strings.HasPrefix(path, "data:") {
		return nil, nil
	}

	name := strings.TrimPrefix(path, "./")
	name = strings.TrimPrefix(name, ConfigDir+"/")

	data, err := os.ReadFile(filepath.Join(r.configDir, name))
	if err != nil {
		return nil, invoicefmt.Errorf(invoicefmt.ENOTFOUND, "banner %q not found in %s", path, r.configDir)
	}

	mimeType := mime.TypeByExtension(filepath.Ext(name))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	return &invoicefmt.BannerAsset{
		DataURI: "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data),
	}, nil
}
