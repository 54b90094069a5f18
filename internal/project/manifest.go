// Package project reads ember.toml project manifests.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the canonical manifest file name.
const ManifestName = "ember.toml"

var (
	// ErrPackageSectionMissing indicates that [package] is missing in a manifest.
	ErrPackageSectionMissing = errors.New("missing [package]")
	// ErrManifestNotFound indicates no manifest exists in the directory chain.
	ErrManifestNotFound = errors.New("ember.toml not found")
)

// Manifest describes a project's ember.toml [package] section.
type Manifest struct {
	Name string
	Root string // source root, relative to the manifest directory
	Dir  string // directory the manifest was read from
}

type manifestFile struct {
	Package struct {
		Name string `toml:"name"`
		Root string `toml:"root"`
	} `toml:"package"`
}

// LoadManifest parses the manifest at path.
func LoadManifest(path string) (Manifest, error) {
	var raw manifestFile
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrPackageSectionMissing)
	}
	root := raw.Package.Root
	if root == "" {
		root = "."
	}
	return Manifest{
		Name: raw.Package.Name,
		Root: root,
		Dir:  filepath.Dir(path),
	}, nil
}

// FindManifest ищет ember.toml от dir вверх по дереву каталогов.
func FindManifest(dir string) (Manifest, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return Manifest{}, err
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return LoadManifest(candidate)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return Manifest{}, ErrManifestNotFound
		}
		dir = parent
	}
}

// SourceRoot returns the absolute source root directory.
func (m Manifest) SourceRoot() string {
	return filepath.Join(m.Dir, m.Root)
}
