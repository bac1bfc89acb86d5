package render

import (
	"bytes"
	"context"
	"os/exec"
	"strconv"

	"github.com/matzehuels/treesvg/pkg/errors"
)

// converterBin is the external tool used for SVG rasterization and PDF
// conversion. It ships with librsvg (brew install librsvg on macOS,
// apt install librsvg2-bin on Debian/Ubuntu).
const converterBin = "rsvg-convert"

// ToPDF converts an SVG document to PDF.
func ToPDF(svg []byte) ([]byte, error) {
	return convert(context.Background(), svg, "pdf")
}

// ToPNG rasterizes an SVG document to PNG at the given scale factor.
// A scale of 2 doubles the pixel dimensions of the output.
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	return convert(context.Background(), svg, "png",
		"-z", strconv.FormatFloat(scale, 'f', 2, 64))
}

func convert(ctx context.Context, svg []byte, format string, extra ...string) ([]byte, error) {
	if _, err := exec.LookPath(converterBin); err != nil {
		return nil, errors.New(errors.ErrCodeUnsupported,
			"%s output needs %s on PATH (install librsvg)", format, converterBin)
	}

	var out, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, converterBin, append([]string{"-f", format}, extra...)...)
	cmd.Stdin = bytes.NewReader(svg)
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err,
			"%s %s: %s", converterBin, format, stderr.String())
	}
	return out.Bytes(), nil
}
