package tabwrap

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// Rasterization constants.
const (
	// defaultDPI is the rasterization resolution when Options.DPI is 0.
	defaultDPI = 300

	// cropPadding is the fixed pixel margin kept around the content
	// bounding box.
	cropPadding = 10

	// contentThreshold separates content from background: a pixel is
	// content when every channel is below it (near-white pages scan
	// slightly under 255).
	contentThreshold = 250
)

// Rasterizer abstracts PDF page rendering. Render returns pixel data for
// the first page of the PDF at the given DPI.
type Rasterizer interface {
	Render(ctx context.Context, pdfPath string, dpi int) (image.Image, error)
}

// PDFToPPM rasterizes via the pdftoppm binary (poppler-utils).
type PDFToPPM struct {
	runner CommandRunner
}

// NewPDFToPPM creates a rasterizer backed by pdftoppm on PATH.
func NewPDFToPPM() *PDFToPPM {
	return &PDFToPPM{runner: execRunner{}}
}

// Render renders the first PDF page to pixels. pdftoppm writes a sibling
// file derived from the PDF name, which is decoded and removed before
// returning; the path never collides across units because it derives from
// the unit's own artifact name.
func (r *PDFToPPM) Render(ctx context.Context, pdfPath string, dpi int) (image.Image, error) {
	prefix := strings.TrimSuffix(pdfPath, ".pdf") + "_page1"
	_, stderr, code, err := r.runner.Run(ctx, "pdftoppm",
		"-png", "-r", strconv.Itoa(dpi), "-f", "1", "-l", "1", "-singlefile",
		pdfPath, prefix)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, fmt.Errorf("%w: %v", ErrRasterizerNotFound, err)
		}
		return nil, err
	}
	if code != 0 {
		return nil, fmt.Errorf("pdftoppm exited with code %d: %s", code, strings.TrimSpace(stderr))
	}

	rawPath := prefix + ".png"
	defer os.Remove(rawPath)

	f, err := os.Open(rawPath) // #nosec G304 -- path derived from our own artifact
	if err != nil {
		return nil, fmt.Errorf("reading rendered page: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding rendered page: %w", err)
	}
	return img, nil
}

// cropToContent crops an image to the bounding box of its non-background
// pixels plus a fixed padding. An all-background page is returned whole.
func cropToContent(img image.Image, padding int) image.Image {
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r>>8 < contentThreshold && g>>8 < contentThreshold && bl>>8 < contentThreshold {
				if x < minX {
					minX = x
				}
				if x > maxX {
					maxX = x
				}
				if y < minY {
					minY = y
				}
				if y > maxY {
					maxY = y
				}
			}
		}
	}

	if maxX < minX {
		return img
	}

	crop := image.Rect(minX-padding, minY-padding, maxX+1+padding, maxY+1+padding).Intersect(b)
	dst := image.NewRGBA(image.Rect(0, 0, crop.Dx(), crop.Dy()))
	draw.Draw(dst, dst.Bounds(), img, crop.Min, draw.Src)
	return dst
}

// writePNG serializes an image to path.
func writePNG(img image.Image, path string) error {
	f, err := os.Create(path) // #nosec G304 -- path derived from unit output naming
	if err != nil {
		return fmt.Errorf("creating PNG: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return f.Close()
}

// SVGConverter abstracts PDF to SVG conversion of the first page.
type SVGConverter interface {
	Convert(ctx context.Context, pdfPath, svgPath string) error
}

// PDFToCairo converts via the pdftocairo binary (poppler-utils).
type PDFToCairo struct {
	runner CommandRunner
}

// NewPDFToCairo creates an SVG converter backed by pdftocairo on PATH.
func NewPDFToCairo() *PDFToCairo {
	return &PDFToCairo{runner: execRunner{}}
}

// Convert renders the first PDF page as SVG. No cropping is applied; SVG
// output keeps the page geometry.
func (c *PDFToCairo) Convert(ctx context.Context, pdfPath, svgPath string) error {
	_, stderr, code, err := c.runner.Run(ctx, "pdftocairo",
		"-svg", "-f", "1", "-l", "1", pdfPath, svgPath)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("%w: %v", ErrSVGToolNotFound, err)
		}
		return err
	}
	if code != 0 {
		return fmt.Errorf("pdftocairo exited with code %d: %s", code, strings.TrimSpace(stderr))
	}
	return nil
}
