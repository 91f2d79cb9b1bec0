package generate

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func toolProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"package.json": `{"name":"tool","bin":{"tool":"cli.js"}}`,
		"cli.js":       "switch (cmd) {\n  case 'build':\n    break;\n}\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerate_WritesReadmeThenGuards(t *testing.T) {
	dir := toolProject(t)
	out, err := execute(t, "--no-probe", dir)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if !strings.Contains(out, "Package: tool@1.0.0") {
		t.Fatalf("missing summary: %q", out)
	}
	readme := filepath.Join(dir, "README.md")
	first, err := os.ReadFile(readme)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.HasPrefix(string(first), "# tool\n") || !strings.Contains(string(first), "npm install -g tool") {
		t.Fatalf("unexpected README:\n%s", first)
	}

	_, err = execute(t, "--no-probe", dir)
	assertExitError(t, err, exitCodeReadmeExists)
	second, _ := os.ReadFile(readme)
	if !bytes.Equal(first, second) {
		t.Fatalf("README changed by guarded run")
	}

	if _, err := execute(t, "--no-probe", "--force", "--quiet", dir); err != nil {
		t.Fatalf("forced run: %v", err)
	}
}

func TestGenerate_StdoutModes(t *testing.T) {
	dir := toolProject(t)
	out, err := execute(t, "--no-probe", "--stdout", dir)
	if err != nil || !strings.HasPrefix(out, "# tool\n") {
		t.Fatalf("stdout markdown: %v %q", err, out)
	}
	out, err = execute(t, "--no-probe", "--json", dir)
	if err != nil || !strings.Contains(out, `"name": "tool"`) {
		t.Fatalf("json: %v %q", err, out)
	}
	out, err = execute(t, "--no-probe", "--format", "yaml", dir)
	if err != nil || !strings.Contains(out, "name: tool\n") {
		t.Fatalf("yaml: %v %q", err, out)
	}
	if _, err := os.Stat(filepath.Join(dir, "README.md")); err == nil {
		t.Fatalf("stdout modes must not write README.md")
	}
}

func TestGenerate_ManifestAndTargetErrors(t *testing.T) {
	_, err := execute(t, "--no-probe", t.TempDir())
	assertExitError(t, err, exitCodeManifest)
	_, err = execute(t, "--no-probe", filepath.Join(t.TempDir(), "missing"))
	assertExitError(t, err, exitCodeGeneral)
	if !strings.HasPrefix(err.Error(), "target directory not found") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestGenerate_RejectsUnknownFormat(t *testing.T) {
	_, err := execute(t, "--no-probe", "--format", "html", toolProject(t))
	assertExitError(t, err, exitCodeGeneral)
}
