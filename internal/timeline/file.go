package timeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/lifemap/internal/domain"
)

// FileExtension is the conventional suffix for timeline documents.
const FileExtension = ".tiwut_timeline"

// EnsureExtension appends FileExtension unless path already has an extension.
func EnsureExtension(path string) string {
	if filepath.Ext(path) == "" {
		return path + FileExtension
	}
	return path
}

// HasExtension reports whether path uses the timeline suffix.
func HasExtension(path string) bool {
	return strings.EqualFold(filepath.Ext(path), FileExtension)
}

// ReadFile loads and decodes a timeline document. Read failures are returned
// as *domain.IOError and content problems as *domain.ValidationError.
func ReadFile(path string) (*domain.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.IOError{Op: "read", Path: path, Err: err}
	}
	tree, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return tree, nil
}

// WriteFile encodes tree and replaces path with it. The document is written
// to a temporary file in the same directory and renamed into place, so a
// failed write leaves any existing file intact.
func WriteFile(path string, tree *domain.Tree) error {
	data, err := Encode(tree)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &domain.IOError{Op: "write", Path: path, Err: err}
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return &domain.IOError{Op: "write", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &domain.IOError{Op: "write", Path: path, Err: err}
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return &domain.IOError{Op: "write", Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		return &domain.IOError{Op: "write", Path: path, Err: err}
	}
	committed = true
	return nil
}
