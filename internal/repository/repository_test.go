package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/flarebyte/scribe/internal/manifest"
)

func TestParseURL_StripsGitSuffix(t *testing.T) {
	ref, ok := ParseURL("https://github.com/acme/widgets.git")
	if !ok {
		t.Fatalf("expected match")
	}
	if ref.User != "acme" || ref.Repo != "widgets" {
		t.Fatalf("unexpected ref: %+v", ref)
	}
}

func TestParseURL_Forms(t *testing.T) {
	cases := map[string]string{
		"git+https://github.com/acme/widgets.git":    "acme/widgets",
		"git@github.com:acme/widgets.git":            "acme/widgets",
		"https://github.com/acme/widgets/tree/main":  "acme/widgets",
		"https://github.com/acme/widgets#readme":     "acme/widgets",
		"ssh://git@github.com/acme/widgets.js":       "acme/widgets.js",
	}
	for in, want := range cases {
		ref, ok := ParseURL(in)
		if !ok {
			t.Fatalf("%s: expected match", in)
		}
		if ref.String() != want {
			t.Fatalf("%s: got %s want %s", in, ref.String(), want)
		}
	}
	if _, ok := ParseURL("https://example.com/acme/widgets"); ok {
		t.Fatalf("unexpected match for non-github url")
	}
}

func writeGitConfig(t *testing.T, dir, content string) {
	t.Helper()
	gitDir := filepath.Join(dir, ".git")
	if err := os.MkdirAll(gitDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(gitDir, "config"), []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestIdentify_ManifestWins(t *testing.T) {
	dir := t.TempDir()
	writeGitConfig(t, dir, "[remote \"origin\"]\n\turl = git@github.com:other/thing.git\n")
	ref := Identify(manifest.Manifest{Repository: "https://github.com/acme/widgets"}, dir)
	if ref == nil || ref.String() != "acme/widgets" {
		t.Fatalf("unexpected ref: %+v", ref)
	}
}

func TestIdentify_FallsBackToGitConfigOriginFirst(t *testing.T) {
	dir := t.TempDir()
	writeGitConfig(t, dir, `[core]
	bare = false
[remote "upstream"]
	url = https://github.com/up/stream.git
[remote "origin"]
	url = git@github.com:acme/widgets.git
	fetch = +refs/heads/*:refs/remotes/origin/*
`)
	ref := Identify(manifest.Manifest{}, dir)
	if ref == nil || ref.String() != "acme/widgets" {
		t.Fatalf("unexpected ref: %+v", ref)
	}
}

func TestIdentify_NoMatch(t *testing.T) {
	dir := t.TempDir()
	if ref := Identify(manifest.Manifest{Repository: "not a url"}, dir); ref != nil {
		t.Fatalf("expected nil, got %+v", ref)
	}
	writeGitConfig(t, dir, "[remote \"origin\"\n broken")
	if ref := Identify(manifest.Manifest{}, dir); ref != nil {
		t.Fatalf("expected nil on broken config, got %+v", ref)
	}
}
