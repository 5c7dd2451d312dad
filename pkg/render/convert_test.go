package render

import (
	"bytes"
	"context"
	"testing"

	"github.com/matzehuels/proofgen/pkg/errors"
)

const tinySVG = `<svg xmlns="http://www.w3.org/2000/svg" width="4" height="4"><rect width="4" height="4"/></svg>`

func TestConvertWithoutConverter(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	if Available() {
		t.Fatal("Available() = true with empty PATH")
	}
	_, err := ToPNG([]byte(tinySVG), 2)
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("ToPNG error = %v, want UNSUPPORTED", err)
	}
	_, err = ToPDF([]byte(tinySVG))
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("ToPDF error = %v, want UNSUPPORTED", err)
	}
}

func TestConvert(t *testing.T) {
	if !Available() {
		t.Skip("rsvg-convert not installed")
	}

	png, err := ToPNG([]byte(tinySVG), 1)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}

	pdf, err := ToPDF([]byte(tinySVG))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("output is not a PDF")
	}
}

func TestConvertCancelled(t *testing.T) {
	if !Available() {
		t.Skip("rsvg-convert not installed")
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := ToPNGContext(ctx, []byte(tinySVG), 1); err == nil {
		t.Error("expected an error for a cancelled context")
	}
}

func TestConvertRejectsGarbage(t *testing.T) {
	if !Available() {
		t.Skip("rsvg-convert not installed")
	}
	_, err := ToPDF([]byte("not an svg"))
	if !errors.Is(err, errors.ErrCodeInternal) {
		t.Errorf("error = %v, want INTERNAL_ERROR", err)
	}
}
