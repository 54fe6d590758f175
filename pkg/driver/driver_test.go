package driver

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sol/interpreter-go/pkg/interpreter"
	"sol/interpreter-go/pkg/scanner"
)

func TestLoadSourceFrontEndsProgram(t *testing.T) {
	program, err := LoadSource("hello.sol", `function main() { print("hi"); }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if program.Tree == nil || len(program.Tree.Decls) != 1 {
		t.Fatalf("unexpected tree %#v", program.Tree)
	}
	if len(program.Tokens) == 0 {
		t.Fatalf("expected tokens")
	}
}

func TestLoadSourceKeepsSourceOnParseError(t *testing.T) {
	program, err := LoadSource("broken.sol", "function main( {")
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if program == nil || program.Source == nil {
		t.Fatalf("expected source buffer for diagnostics")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.sol")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestRenderScanErrorWithSnippet(t *testing.T) {
	src := "function main() { @ }"
	program, err := LoadSource("bad.sol", src)
	if err == nil {
		t.Fatalf("expected scan error")
	}
	rendered := Render(err, program.Source)
	if !strings.Contains(rendered, "scan error:") {
		t.Fatalf("missing class in %q", rendered)
	}
	if !strings.Contains(rendered, "line 1, column 19") {
		t.Fatalf("missing position in %q", rendered)
	}
	if !strings.Contains(rendered, "^") {
		t.Fatalf("missing caret in %q", rendered)
	}
}

func TestRenderRuntimeErrorWithoutPosition(t *testing.T) {
	err := &interpreter.RuntimeError{Message: "no main function declared"}
	rendered := Render(err, scanner.NewSource(""))
	if rendered != "runtime error: no main function declared" {
		t.Fatalf("unexpected rendering %q", rendered)
	}
}

func TestDescribeClassifiesErrors(t *testing.T) {
	_, scanErr := LoadSource("x.sol", "@")
	if d := Describe(scanErr); d.Class != "scan error" {
		t.Fatalf("unexpected class %q", d.Class)
	}
	_, parseErr := LoadSource("x.sol", "function")
	if d := Describe(parseErr); d.Class != "parse error" {
		t.Fatalf("unexpected class %q", d.Class)
	}
	if d := Describe(os.ErrNotExist); d.Class != "" {
		t.Fatalf("unexpected class %q for plain error", d.Class)
	}
}

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
fixtures:
  - name: hello
    file: hello.sol
    stdout:
      - "Hello, world!"
  - name: broken
    file: broken.sol
    error: "expected return type"
`)
	manifest, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(manifest.Fixtures) != 2 {
		t.Fatalf("expected 2 fixtures, got %d", len(manifest.Fixtures))
	}
	hello := manifest.Fixtures[0]
	if hello.SourcePath() != filepath.Join(dir, "hello.sol") {
		t.Fatalf("unexpected source path %q", hello.SourcePath())
	}
	if hello.ExpectsError() {
		t.Fatalf("hello should not expect an error")
	}
	if !manifest.Fixtures[1].ExpectsError() {
		t.Fatalf("broken should expect an error")
	}
}

func TestLoadManifestValidation(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		content  string
		fragment string
	}{
		{"fixtures:\n  - file: a.sol\n    stdout: []\n", "no name"},
		{"fixtures:\n  - name: a\n    stdout: []\n", "no file"},
		{"fixtures:\n  - name: a\n    file: a.sol\n", "neither stdout nor error"},
		{"fixtures:\n  - name: a\n    file: a.sol\n    stdout: []\n  - name: a\n    file: b.sol\n    stdout: []\n", "duplicate fixture name"},
	}
	for _, c := range cases {
		path := writeManifest(t, dir, c.content)
		_, err := LoadManifest(path)
		if err == nil || !strings.Contains(err.Error(), c.fragment) {
			t.Fatalf("expected error containing %q, got %v", c.fragment, err)
		}
	}
}

func TestFindManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "fixtures: []\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("failed to create dirs: %v", err)
	}
	found, err := FindManifest(nested)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found != filepath.Join(root, ManifestName) {
		t.Fatalf("unexpected path %q", found)
	}
	if _, err := FindManifest(filepath.Join(t.TempDir())); err == nil {
		t.Fatalf("expected error when manifest is absent")
	}
}
