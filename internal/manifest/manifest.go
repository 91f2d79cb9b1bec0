// Package manifest loads the package.json manifest of a Node.js project.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/flarebyte/scribe/internal/model"
)

// FileName is the manifest file looked up in the project directory.
const FileName = "package.json"

const (
	defaultDescription = "A Node.js project"
	defaultVersion     = "1.0.0"
	defaultLicense     = "MIT"
	defaultMain        = "index.js"
)

var (
	// ErrManifestMissing is returned when package.json does not exist.
	ErrManifestMissing = errors.New("package.json not found")
	// ErrManifestInvalid is returned when package.json is not a JSON object.
	ErrManifestInvalid = errors.New("package.json is not valid JSON")
)

// Manifest holds the manifest fields consumed by the analysis.
type Manifest struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Version     string            `json:"version"`
	License     string            `json:"license"`
	Author      string            `json:"author,omitempty"`
	Scripts     map[string]string `json:"scripts"`
	Bin         map[string]string `json:"bin"`
	Keywords    []string          `json:"keywords"`
	Main        string            `json:"main"`
	// Repository is the raw repository url, from either the string form or
	// the object form of the field.
	Repository string `json:"repository,omitempty"`
}

// Load reads <dir>/package.json and fills defaults for absent fields.
func Load(dir string) (Manifest, error) {
	path := filepath.Join(dir, FileName)
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Manifest{}, fmt.Errorf("%w: %s", ErrManifestMissing, path)
		}
		return Manifest{}, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Parse(b, filepath.Base(filepath.Clean(dir)))
}

// Parse decodes manifest bytes. fallbackName replaces a missing name.
func Parse(b []byte, fallbackName string) (Manifest, error) {
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil || raw == nil {
		return Manifest{}, ErrManifestInvalid
	}
	m := Manifest{
		Name:        stringField(raw, "name", fallbackName),
		Description: stringField(raw, "description", defaultDescription),
		Version:     stringField(raw, "version", defaultVersion),
		License:     licenseField(raw["license"]),
		Author:      authorField(raw["author"]),
		Scripts:     stringMap(raw["scripts"]),
		Keywords:    stringList(raw["keywords"]),
		Main:        stringField(raw, "main", defaultMain),
		Repository:  repositoryField(raw["repository"]),
	}
	m.Bin = binField(raw["bin"], m.Name)
	return m, nil
}

// Entries returns the main entry followed by the bin targets in command
// order, without duplicates.
func (m Manifest) Entries() []string {
	seen := map[string]bool{}
	out := []string{}
	add := func(p string) {
		p = filepath.Clean(filepath.FromSlash(p))
		if p == "" || p == "." || seen[p] {
			return
		}
		seen[p] = true
		out = append(out, p)
	}
	add(m.Main)
	for _, name := range model.SortedKeys(m.Bin) {
		add(m.Bin[name])
	}
	return out
}

func stringField(raw map[string]any, key, def string) string {
	if s, ok := raw[key].(string); ok && strings.TrimSpace(s) != "" {
		return s
	}
	return def
}

func licenseField(v any) string {
	switch x := v.(type) {
	case string:
		if x != "" {
			return x
		}
	case map[string]any:
		if t, ok := x["type"].(string); ok && t != "" {
			return t
		}
	}
	return defaultLicense
}

func authorField(v any) string {
	switch x := v.(type) {
	case string:
		return strings.TrimSpace(x)
	case map[string]any:
		name, _ := x["name"].(string)
		email, _ := x["email"].(string)
		return normalizeAuthor(name, email)
	}
	return ""
}

func normalizeAuthor(name, email string) string {
	n := strings.TrimSpace(name)
	e := strings.TrimSpace(email)
	if n == "" {
		if e == "" {
			return ""
		}
		return "<" + e + ">"
	}
	if e == "" {
		return n
	}
	return n + " <" + e + ">"
}

func repositoryField(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case map[string]any:
		u, _ := x["url"].(string)
		return u
	}
	return ""
}

// binField accepts both the object form and the string shorthand, which
// installs the package name as the command.
func binField(v any, name string) map[string]string {
	switch x := v.(type) {
	case string:
		if x == "" {
			return map[string]string{}
		}
		return map[string]string{name: x}
	default:
		return stringMap(v)
	}
}

func stringMap(v any) map[string]string {
	out := map[string]string{}
	m, ok := v.(map[string]any)
	if !ok {
		return out
	}
	for k, vv := range m {
		if s, ok := vv.(string); ok {
			out[k] = s
		}
	}
	return out
}

func stringList(v any) []string {
	out := []string{}
	arr, ok := v.([]any)
	if !ok {
		return out
	}
	for _, it := range arr {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
