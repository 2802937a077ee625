package scaffold

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/moldtool/mold/pkg/source"
)

// Create scaffolds a new project at dir from the named template. An empty
// version means the latest published version; the version actually used
// is returned.
//
// The archive is unpacked into a staging directory next to dir and moved
// into place only after extraction succeeds, so dir either appears fully
// populated or not at all. Create refuses to touch an existing dir.
func (f *Fetcher) Create(ctx context.Context, src source.Source, name, version, dir string) (string, error) {
	if _, err := os.Stat(dir); err == nil {
		return "", fmt.Errorf("target directory %s already exists", dir)
	} else if !os.IsNotExist(err) {
		return "", err
	}

	data, resolved, err := f.Fetch(ctx, src, name, version)
	if err != nil {
		return "", err
	}

	// Staged as a sibling of dir so the final rename never crosses
	// filesystems.
	staging := filepath.Join(filepath.Dir(dir), "."+filepath.Base(dir)+"-"+uuid.NewString())
	defer os.RemoveAll(staging)

	if err := Unpack(data, staging); err != nil {
		return "", err
	}
	if err := os.Rename(staging, dir); err != nil {
		return "", fmt.Errorf("move project into place: %w", err)
	}
	return resolved, nil
}
