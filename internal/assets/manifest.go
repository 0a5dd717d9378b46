// Package assets serves the page's static images and records their intrinsic
// dimensions so the renderer can reserve layout space before they load.
package assets

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"

	_ "golang.org/x/image/webp"
)

// Dimensions is the intrinsic pixel size of an image.
type Dimensions struct {
	Width  int
	Height int
}

// Manifest maps asset paths (as referenced by the catalog, e.g. "/kerala.jpg")
// to their dimensions. It is built once by Probe and read-only afterwards.
type Manifest struct {
	sizes map[string]Dimensions
}

// Size implements view.ImageSizer.
func (m *Manifest) Size(p string) (int, int, bool) {
	if m == nil {
		return 0, 0, false
	}
	d, ok := m.sizes[p]
	return d.Width, d.Height, ok
}

// Len returns the number of probed assets.
func (m *Manifest) Len() int {
	if m == nil {
		return 0
	}
	return len(m.sizes)
}

// Probe decodes the header of every referenced image in fsys and returns the
// resulting manifest. A missing or undecodable asset is logged and skipped;
// the page still references it and the browser shows its broken-image
// placeholder. Only a cancelled context is an error.
func Probe(ctx context.Context, fsys fs.FS, paths []string, log *slog.Logger) (*Manifest, error) {
	m := &Manifest{sizes: make(map[string]Dimensions, len(paths))}
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("assets.Probe: %w", err)
		}
		if _, seen := m.sizes[p]; seen {
			continue
		}

		d, err := probeOne(fsys, p)
		if err != nil {
			log.WarnContext(ctx, "asset unavailable", "path", p, "error", err)
			continue
		}
		m.sizes[p] = d
		log.DebugContext(ctx, "asset probed", "path", p, "width", d.Width, "height", d.Height)
	}
	return m, nil
}

func probeOne(fsys fs.FS, p string) (Dimensions, error) {
	name, err := fsName(p)
	if err != nil {
		return Dimensions{}, err
	}
	f, err := fsys.Open(name)
	if err != nil {
		return Dimensions{}, err
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return Dimensions{}, fmt.Errorf("decode %s: %w", name, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Dimensions{}, fmt.Errorf("decode %s: empty %s image", name, format)
	}
	return Dimensions{Width: cfg.Width, Height: cfg.Height}, nil
}

// fsName converts a URL-style asset path into an fs.FS name.
func fsName(p string) (string, error) {
	name := strings.TrimPrefix(path.Clean("/"+p), "/")
	if !fs.ValidPath(name) || name == "." {
		return "", fmt.Errorf("invalid asset path %q", p)
	}
	return name, nil
}

// Handler serves the files in fsys. Mount it with http.StripPrefix so that
// request paths match catalog paths.
func Handler(fsys fs.FS) http.Handler {
	return http.FileServer(http.FS(fsys))
}
