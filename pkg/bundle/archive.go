package bundle

import (
	"archive/zip"
	"io"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/matzehuels/proofgen/pkg/errors"
)

// zipEpoch is the fixed modification time stamped on archive entries so
// that equal bundles produce equal archives.
var zipEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// ZipName returns the archive file name, e.g. "leads-go-cold.zip".
func (b *Bundle) ZipName() string { return b.Name + ".zip" }

// WriteZip writes the bundle as a ZIP archive with every entry under
// "<name>/".
func (b *Bundle) WriteZip(w io.Writer) error {
	zw := zip.NewWriter(w)
	for _, f := range b.Files {
		if err := errors.ValidatePath(f.Path); err != nil {
			return err
		}
		hdr := &zip.FileHeader{
			Name:     path.Join(b.Name, f.Path),
			Method:   zip.Deflate,
			Modified: zipEpoch,
		}
		fw, err := zw.CreateHeader(hdr)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "zip %s", f.Path)
		}
		if _, err := io.WriteString(fw, f.Content); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "zip %s", f.Path)
		}
	}
	if err := zw.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "close zip")
	}
	return nil
}

// WriteDir writes every file below dir, creating directories as needed.
// Existing files with the same paths are overwritten.
func (b *Bundle) WriteDir(dir string) error {
	for _, f := range b.Files {
		if err := errors.ValidatePath(f.Path); err != nil {
			return err
		}
		dst := filepath.Join(dir, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "create %s", filepath.Dir(dst))
		}
		if err := os.WriteFile(dst, []byte(f.Content), 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "write %s", dst)
		}
	}
	return nil
}
