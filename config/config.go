// Package config loads the optional pkgclip YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"gopkg.in/yaml.v3"
)

const (
	projectConfigName = ".pkgclip.yaml"
	homeConfigDir     = ".pkgclip"
	homeConfigName    = "config.yaml"
)

// ErrNotFound is returned when an explicitly named config file does not exist.
var ErrNotFound = errors.New("config file not found")

// File is the shape of .pkgclip.yaml.
type File struct {
	// InstallPrefix replaces "npm i" in the install command.
	InstallPrefix string `yaml:"install_prefix,omitempty"`

	// Print sends output to stdout instead of the clipboard.
	Print bool `yaml:"print,omitempty"`

	// ManifestFiles overrides the ordered list of manifest file names.
	ManifestFiles []string `yaml:"manifest_files,omitempty"`
}

// DiscoverPath resolves the config location with first-match semantics:
// the explicit path, then projectDir/.pkgclip.yaml, then
// ~/.pkgclip/config.yaml. An empty projectDir means the working directory.
func DiscoverPath(explicitPath, projectDir string) (string, bool, error) {
	if projectDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", false, fmt.Errorf("resolve working directory: %w", err)
		}
		projectDir = cwd
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}
	return DiscoverPathFrom(explicitPath, projectDir, homeDir)
}

// DiscoverPathFrom is a testable variant of DiscoverPath.
func DiscoverPathFrom(explicitPath, cwd, homeDir string) (string, bool, error) {
	candidates := make([]string, 0, 2)
	explicit := strings.TrimSpace(explicitPath) != ""
	if explicit {
		candidates = append(candidates, filepath.Clean(strings.TrimSpace(explicitPath)))
	} else {
		candidates = append(candidates, filepath.Join(cwd, projectConfigName))
		if homeDir != "" {
			candidates = append(candidates, filepath.Join(homeDir, homeConfigDir, homeConfigName))
		}
	}

	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, true, nil
		}
		// ENOTDIR: a path component is a file, so the candidate cannot exist.
		if err == nil || errors.Is(err, os.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			if explicit {
				return "", false, fmt.Errorf("%w: %q", ErrNotFound, candidate)
			}
			continue
		}
		return "", false, fmt.Errorf("checking config path %q: %w", candidate, err)
	}
	return "", false, nil
}

// Load reads the config file at path.
func Load(path string) (File, error) {
	// #nosec G304 -- path resolved from explicit local config discovery.
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("reading config %q: %w", path, err)
	}

	var cfg File
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return File{}, fmt.Errorf("parsing config %q: %w", path, err)
	}
	cfg.InstallPrefix = strings.TrimSpace(os.ExpandEnv(cfg.InstallPrefix))
	return cfg, nil
}

// Resolve discovers and loads the config. A missing implicit config yields
// the zero File and an empty path.
func Resolve(explicitPath, projectDir string) (File, string, error) {
	path, found, err := DiscoverPath(explicitPath, projectDir)
	if err != nil {
		return File{}, "", err
	}
	if !found {
		return File{}, "", nil
	}
	cfg, err := Load(path)
	if err != nil {
		return File{}, "", err
	}
	return cfg, path, nil
}
