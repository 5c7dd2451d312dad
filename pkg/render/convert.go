package render

import (
	"bytes"
	"context"
	"os/exec"
	"strconv"
	"strings"

	"github.com/matzehuels/proofgen/pkg/errors"
)

// Converter is the librsvg command-line tool every conversion shells out to.
const Converter = "rsvg-convert"

const installHint = `Install librsvg:
  macOS:  brew install librsvg
  Linux:  apt install librsvg2-bin`

// Available reports whether [Converter] is on PATH.
func Available() bool {
	_, err := exec.LookPath(Converter)
	return err == nil
}

// ToPDF converts an SVG document to PDF.
func ToPDF(svg []byte) ([]byte, error) {
	return ToPDFContext(context.Background(), svg)
}

// ToPNG converts an SVG document to PNG. A scale of 2 doubles the pixel
// dimensions; scales of zero or less render at 1.
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	return ToPNGContext(context.Background(), svg, scale)
}

// ToPDFContext is [ToPDF] bound to ctx. Cancelling ctx kills the converter.
func ToPDFContext(ctx context.Context, svg []byte) ([]byte, error) {
	return convert(ctx, svg, "pdf")
}

// ToPNGContext is [ToPNG] bound to ctx. Cancelling ctx kills the converter.
func ToPNGContext(ctx context.Context, svg []byte, scale float64) ([]byte, error) {
	if scale <= 0 {
		scale = 1
	}
	return convert(ctx, svg, "png", "--zoom", strconv.FormatFloat(scale, 'f', 2, 64))
}

func convert(ctx context.Context, svg []byte, format string, flags ...string) ([]byte, error) {
	bin, err := exec.LookPath(Converter)
	if err != nil {
		return nil, errors.New(errors.ErrCodeUnsupported, "%s output needs %s. %s", format, Converter, installHint)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, append([]string{"--format", format}, flags...)...)
	cmd.Stdin = bytes.NewReader(svg)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = "conversion failed"
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "%s to %s: %s", Converter, format, msg)
	}
	if stdout.Len() == 0 {
		return nil, errors.New(errors.ErrCodeInternal, "%s produced no %s output", Converter, format)
	}
	return stdout.Bytes(), nil
}
