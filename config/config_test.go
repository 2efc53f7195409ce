package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestDiscoverPathFrom_ProjectBeforeHome(t *testing.T) {
	cwd := t.TempDir()
	home := t.TempDir()
	project := filepath.Join(cwd, projectConfigName)
	writeConfig(t, project, "print: true\n")
	writeConfig(t, filepath.Join(home, homeConfigDir, homeConfigName), "print: false\n")

	path, found, err := DiscoverPathFrom("", cwd, home)
	if err != nil {
		t.Fatalf("DiscoverPathFrom: %v", err)
	}
	if !found || path != project {
		t.Fatalf("got (%q, %v), want (%q, true)", path, found, project)
	}
}

func TestDiscoverPathFrom_FallsBackToHome(t *testing.T) {
	cwd := t.TempDir()
	home := t.TempDir()
	homeCfg := filepath.Join(home, homeConfigDir, homeConfigName)
	writeConfig(t, homeCfg, "print: true\n")

	path, found, err := DiscoverPathFrom("", cwd, home)
	if err != nil {
		t.Fatalf("DiscoverPathFrom: %v", err)
	}
	if !found || path != homeCfg {
		t.Fatalf("got (%q, %v), want (%q, true)", path, found, homeCfg)
	}
}

func TestDiscoverPathFrom_NothingFound(t *testing.T) {
	path, found, err := DiscoverPathFrom("", t.TempDir(), "")
	if err != nil {
		t.Fatalf("DiscoverPathFrom: %v", err)
	}
	if found || path != "" {
		t.Fatalf("got (%q, %v), want nothing", path, found)
	}
}

func TestDiscoverPathFrom_ExplicitMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	_, _, err := DiscoverPathFrom(missing, t.TempDir(), t.TempDir())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDiscoverPathFrom_ExplicitDirectory(t *testing.T) {
	dir := t.TempDir()
	_, _, err := DiscoverPathFrom(dir, t.TempDir(), "")
	if err == nil {
		t.Fatal("expected error for directory config path")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	t.Setenv("PKGCLIP_TEST_PM", "pnpm")
	writeConfig(t, path, `install_prefix: " ${PKGCLIP_TEST_PM} add "
print: true
manifest_files:
  - package.yaml
  - package.json
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.InstallPrefix != "pnpm add" {
		t.Errorf("InstallPrefix = %q, want %q", cfg.InstallPrefix, "pnpm add")
	}
	if !cfg.Print {
		t.Error("Print = false, want true")
	}
	if len(cfg.ManifestFiles) != 2 || cfg.ManifestFiles[0] != "package.yaml" {
		t.Errorf("ManifestFiles = %v", cfg.ManifestFiles)
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	writeConfig(t, path, "print: [\n")
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "parsing config") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestResolve_Explicit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	writeConfig(t, path, "install_prefix: yarn add\n")

	cfg, got, err := Resolve(path, t.TempDir())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != path {
		t.Errorf("path = %q, want %q", got, path)
	}
	if cfg.InstallPrefix != "yarn add" {
		t.Errorf("InstallPrefix = %q", cfg.InstallPrefix)
	}
}

func TestResolve_ProjectDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	writeConfig(t, filepath.Join(dir, projectConfigName), "print: true\n")

	cfg, path, err := Resolve("", dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if path != filepath.Join(dir, projectConfigName) || !cfg.Print {
		t.Fatalf("got (%+v, %q)", cfg, path)
	}
}

func TestResolve_NoConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, path, err := Resolve("", t.TempDir())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if path != "" || cfg.Print || cfg.InstallPrefix != "" {
		t.Fatalf("expected zero config, got (%+v, %q)", cfg, path)
	}
}

func TestDiscoverPathFrom_ProjectDirIsAFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "package.json")
	writeConfig(t, file, `{"name": "foo"}`)

	path, found, err := DiscoverPathFrom("", file, "")
	if err != nil {
		t.Fatalf("DiscoverPathFrom: %v", err)
	}
	if found || path != "" {
		t.Fatalf("got (%q, %v), want nothing", path, found)
	}
}
