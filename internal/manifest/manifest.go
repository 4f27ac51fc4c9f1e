// Package manifest reads the package.json the documented project is published from.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the manifest file looked up inside a directory.
const FileName = "package.json"

// ErrManifestNotFound indicates that no package.json exists at the requested location.
var ErrManifestNotFound = errors.New("package.json not found")

// PackageJSON holds the manifest fields compared against the metadata record.
type PackageJSON struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Private bool   `json:"private"`
}

// Read parses the manifest at path. A directory is resolved to its package.json.
func Read(path string) (PackageJSON, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, FileName)
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return PackageJSON{}, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
	}
	if err != nil {
		return PackageJSON{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes manifest content. Comments and trailing commas are tolerated.
func Parse(data []byte) (PackageJSON, error) {
	var pkg PackageJSON
	if err := json.Unmarshal(StripJSONC(data), &pkg); err != nil {
		return PackageJSON{}, fmt.Errorf("failed to parse package.json: %w", err)
	}
	return pkg, nil
}
