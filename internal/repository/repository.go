// Package repository identifies the GitHub user/repo pair of a project.
package repository

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	gitconfig "github.com/go-git/go-git/v5/plumbing/format/config"

	"github.com/flarebyte/scribe/internal/logger"
	"github.com/flarebyte/scribe/internal/manifest"
	"github.com/flarebyte/scribe/internal/model"
)

var hostPattern = regexp.MustCompile(`github\.com[/:]([^/\s:]+)/([^/\s#?]+)`)

// ParseURL extracts user/repo from a hosting url. A trailing ".git" is
// stripped from the repository name.
func ParseURL(raw string) (model.RepositoryRef, bool) {
	m := hostPattern.FindStringSubmatch(raw)
	if m == nil {
		return model.RepositoryRef{}, false
	}
	repo := strings.TrimSuffix(m[2], ".git")
	if m[1] == "" || repo == "" {
		return model.RepositoryRef{}, false
	}
	return model.RepositoryRef{User: m[1], Repo: repo}, true
}

// Identify tries the manifest repository field first and falls back to the
// remotes of <dir>/.git/config. It never fails: nil means no match.
func Identify(m manifest.Manifest, dir string) *model.RepositoryRef {
	if ref, ok := ParseURL(m.Repository); ok {
		return &ref
	}
	for _, u := range remoteURLs(filepath.Join(dir, ".git", "config")) {
		if ref, ok := ParseURL(u); ok {
			return &ref
		}
	}
	return nil
}

// remoteURLs returns remote urls with origin first, then the other remotes
// in file order.
func remoteURLs(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		logger.Debug().Err(err).Str("path", path).Msg("git config unavailable")
		return nil
	}
	defer func() { _ = f.Close() }()

	cfg := gitconfig.New()
	if err := gitconfig.NewDecoder(f).Decode(cfg); err != nil {
		logger.Debug().Err(err).Str("path", path).Msg("git config not decodable")
		return nil
	}
	remotes := cfg.Section("remote")
	var urls []string
	if remotes.HasSubsection("origin") {
		urls = append(urls, remotes.Subsection("origin").Options.GetAll("url")...)
	}
	for _, sub := range remotes.Subsections {
		if sub.Name == "origin" {
			continue
		}
		urls = append(urls, sub.Options.GetAll("url")...)
	}
	return urls
}
