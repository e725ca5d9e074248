package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	pkgopenapi "github.com/goliatone/go-clientruntime/pkg/openapi"
)

// ErrNotConfigured reports a source kind the loader was not set up to read.
var ErrNotConfigured = errors.New("source kind is not configured")

// LoadError carries the source a read failed for.
type LoadError struct {
	Kind     pkgopenapi.SourceKind
	Location string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("openapi loader: %s %q: %v", e.Kind, e.Location, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func readFile(ctx context.Context, path string, maxBytes int64) ([]byte, error) {
	if path == "" || path == "." {
		return nil, errors.New("file path is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()
	return readLimited(file, maxBytes)
}

func readFS(ctx context.Context, files fs.FS, name string, maxBytes int64) ([]byte, error) {
	if files == nil {
		return nil, ErrNotConfigured
	}
	if name == "" || !fs.ValidPath(name) {
		return nil, fmt.Errorf("invalid fs path %q", name)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	file, err := files.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()
	return readLimited(file, maxBytes)
}

// readLimited reads at most maxBytes and fails instead of truncating.
func readLimited(r io.Reader, maxBytes int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("document exceeds %d bytes", maxBytes)
	}
	return data, nil
}
