// Package render turns an AnalysisResult into Markdown, JSON or YAML.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"regexp"
	"strings"
	"text/template"

	"github.com/flarebyte/scribe/internal/model"
)

//go:embed templates/readme.md.tmpl
var templatesFS embed.FS

var readmeTmpl = template.Must(template.New("readme.md.tmpl").
	Funcs(template.FuncMap{"cell": tableCell}).
	ParseFS(templatesFS, "templates/readme.md.tmpl"))

// MarkdownOptions toggles optional Markdown sections.
type MarkdownOptions struct {
	Badges bool
}

const maxDevScripts = 3

type readmeView struct {
	model.AnalysisResult
	Badges      []string
	Identifier  string
	DevScripts  []string
	HasTest     bool
	LicenseLine string
}

// Markdown renders the README document.
func Markdown(res model.AnalysisResult, opts MarkdownOptions) ([]byte, error) {
	view := readmeView{
		AnalysisResult: res,
		Identifier:     identifier(res.Name),
		LicenseLine:    licenseLine(res),
	}
	if opts.Badges {
		view.Badges = badges(res)
	}
	view.DevScripts, view.HasTest = devScripts(res)

	var buf bytes.Buffer
	if err := readmeTmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}
	return buf.Bytes(), nil
}

func badges(res model.AnalysisResult) []string {
	out := []string{
		fmt.Sprintf("[![npm version](https://img.shields.io/npm/v/%s.svg)](https://www.npmjs.com/package/%s)", res.Name, res.Name),
		fmt.Sprintf("[![License: %s](https://img.shields.io/badge/License-%s-blue.svg)](https://opensource.org/licenses/%s)",
			res.License, shieldEscape(res.License), res.License),
	}
	if res.Repository != nil {
		repo := res.Repository.String()
		out = append(out,
			fmt.Sprintf("[![GitHub stars](https://img.shields.io/github/stars/%s.svg)](https://github.com/%s/stargazers)", repo, repo),
			fmt.Sprintf("[![GitHub issues](https://img.shields.io/github/issues/%s.svg)](https://github.com/%s/issues)", repo, repo),
		)
	}
	return out
}

// shieldEscape doubles dashes, which shields.io treats as separators.
func shieldEscape(s string) string {
	return strings.ReplaceAll(s, "-", "--")
}

// devScripts returns up to three non-test scripts in name order and whether
// a test script exists.
func devScripts(res model.AnalysisResult) ([]string, bool) {
	var out []string
	hasTest := false
	for _, name := range res.ScriptNames() {
		if name == "test" {
			hasTest = true
			continue
		}
		if len(out) < maxDevScripts {
			out = append(out, name)
		}
	}
	return out, hasTest
}

func licenseLine(res model.AnalysisResult) string {
	line := res.License
	if res.HasLicenseFile {
		line = fmt.Sprintf("This project is licensed under the %s License - see the [LICENSE](LICENSE) file for details.", res.License)
	}
	if res.Author != "" {
		line += "\n\n© " + res.Author
	}
	return line
}

var nonIdent = regexp.MustCompile(`[^A-Za-z0-9_$]+`)

// identifier derives a JavaScript variable name from a package name,
// dropping any npm scope.
func identifier(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	parts := nonIdent.Split(name, -1)
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		if b.Len() == 0 {
			b.WriteString(p)
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]) + p[1:])
	}
	id := b.String()
	if id == "" || (id[0] >= '0' && id[0] <= '9') {
		id = "pkg" + id
	}
	return id
}

// tableCell keeps a description on one Markdown table row.
func tableCell(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return strings.ReplaceAll(s, "|", `\|`)
}
