// Package manifest locates and reads the package manifest of a project.
// It supports package.json and the pnpm package.yaml / package.yml forms.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jswork/pkgclip/core"
)

// Manifest holds the fields pkgclip reads from a package manifest.
// A loaded Manifest always has a non-empty Name.
type Manifest struct {
	Name    string
	Version string
	Path    string
	Format  Format

	raw []byte
}

// Loader finds manifests in a directory.
type Loader struct {
	// FileNames overrides DefaultFileNames when non-empty.
	FileNames []string
}

// Load searches dir with the default file names.
func Load(dir string) (*Manifest, error) {
	return Loader{}.Load(dir)
}

// Load returns the first manifest found in dir.
func (l Loader) Load(dir string) (*Manifest, error) {
	path, err := l.Find(dir)
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// Find returns the path of the first candidate file that exists in dir.
func (l Loader) Find(dir string) (string, error) {
	names := l.FileNames
	if len(names) == 0 {
		names = DefaultFileNames
	}

	for _, name := range names {
		candidate := filepath.Join(dir, name)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("checking %s: %w", candidate, err)
		}
	}
	return "", fmt.Errorf("%w in %s (looked for %v)", core.ErrFileNotFound, dir, names)
}

// LoadFile reads and validates the manifest at path.
func LoadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path from caller
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", core.ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes data as the manifest stored at path.
func Parse(data []byte, path string) (*Manifest, error) {
	format := DetectFormat(path)
	raw, err := decode(data, format)
	if err != nil {
		return nil, &core.ParseError{Path: path, Err: err}
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: %s is empty", core.ErrInvalidManifest, path)
	}

	value, ok := raw["name"]
	if !ok {
		return nil, fmt.Errorf("%w: %s has no name field", core.ErrInvalidManifest, path)
	}
	name, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("%w: %s name is %T, want string", core.ErrInvalidManifest, path, value)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: %s name is empty", core.ErrInvalidManifest, path)
	}

	m := &Manifest{
		Name:   name,
		Path:   path,
		Format: format,
		raw:    data,
	}
	if version, ok := raw["version"].(string); ok {
		m.Version = version
	}
	return m, nil
}
