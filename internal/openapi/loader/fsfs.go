package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
)

// loadFromFS reads name from filesystem. Names must be valid fs.FS paths
// (slash separated, unrooted, no "..").
func loadFromFS(ctx context.Context, filesystem fs.FS, name string) ([]byte, error) {
	if filesystem == nil {
		return nil, errors.New("openapi loader: no filesystem configured for fs sources")
	}
	if !fs.ValidPath(name) || name == "." {
		return nil, fmt.Errorf("openapi loader: invalid fs path %q", name)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(filesystem, name)
	if err != nil {
		return nil, fmt.Errorf("openapi loader: read fs entry %s: %w", name, err)
	}
	return data, nil
}
