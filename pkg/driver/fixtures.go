package driver

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ManifestName is the fixture manifest file the test harness looks for.
const ManifestName = "sol_tests.yml"

// Fixture declares one program under test: its source file and either the
// expected stdout transcript, an expected error fragment, or both when
// output precedes the failure.
type Fixture struct {
	Name   string   `yaml:"name"`
	File   string   `yaml:"file"`
	Stdout []string `yaml:"stdout"`
	Error  string   `yaml:"error"`

	// Dir is the manifest directory; File is resolved against it.
	Dir string `yaml:"-"`
}

// SourcePath returns the fixture's source file path, resolved against the
// manifest directory.
func (f Fixture) SourcePath() string {
	if f.Dir == "" || filepath.IsAbs(f.File) {
		return f.File
	}
	return filepath.Join(f.Dir, f.File)
}

// ExpectsError reports whether the fixture declares a failure expectation.
func (f Fixture) ExpectsError() bool { return f.Error != "" }

// Manifest is the parsed fixture declaration file.
type Manifest struct {
	Fixtures []Fixture `yaml:"fixtures"`
}

// LoadManifest reads and validates a fixture manifest.
func LoadManifest(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	var manifest Manifest
	if err := yaml.Unmarshal(raw, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	dir := filepath.Dir(path)
	seen := make(map[string]bool, len(manifest.Fixtures))
	for idx := range manifest.Fixtures {
		fixture := &manifest.Fixtures[idx]
		fixture.Dir = dir
		if fixture.Name == "" {
			return nil, fmt.Errorf("manifest %s: fixture %d has no name", path, idx)
		}
		if seen[fixture.Name] {
			return nil, fmt.Errorf("manifest %s: duplicate fixture name %q", path, fixture.Name)
		}
		seen[fixture.Name] = true
		if fixture.File == "" {
			return nil, fmt.Errorf("manifest %s: fixture %q has no file", path, fixture.Name)
		}
		if fixture.Stdout == nil && fixture.Error == "" {
			return nil, fmt.Errorf("manifest %s: fixture %q declares neither stdout nor error", path, fixture.Name)
		}
	}
	return &manifest, nil
}

// FindManifest locates the fixture manifest in dir or any parent of dir.
func FindManifest(dir string) (string, error) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(current, ManifestName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", fmt.Errorf("%s not found in %s or any parent", ManifestName, dir)
		}
		current = parent
	}
}
