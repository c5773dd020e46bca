// Package authors loads the optional author directory used to resolve
// author ids during corpus validation.
//
// The directory holds one JSON file per author. The author's id is the
// file basename without extension; a top-level "id" field inside the
// file overrides it. Supplying the directory turns author references
// from a shape-only check into an existence check.
package authors

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qdocs/demolint/internal/files/filesystem"
	"github.com/qdocs/demolint/pkg/demolint"
)

// LoadDirectory reads every author file in dirPath and returns the set
// of known author ids. A missing or unreadable directory is an error:
// the caller asked for author resolution, so silently skipping it would
// hide dangling references.
func LoadDirectory(fsProvider filesystem.Provider, dirPath string) (demolint.StringSet, error) {
	entries, err := fsProvider.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read author directory %s: %w", dirPath, err)
	}

	ids := make(demolint.StringSet)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(strings.ToLower(name), demolint.MetadataFileSuffix) {
			continue
		}

		id := strings.TrimSuffix(name, filepath.Ext(name))

		content, err := fsProvider.ReadFile(filepath.Join(dirPath, name))
		if err != nil {
			return nil, fmt.Errorf("failed to read author file %s: %w", name, err)
		}

		// An explicit id field wins over the filename.
		var record struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(content, &record); err == nil && record.ID != "" {
			id = record.ID
		}

		ids[id] = struct{}{}
	}

	return ids, nil
}
