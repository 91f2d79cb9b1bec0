package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/flarebyte/scribe/internal/model"
)

func toolResult() model.AnalysisResult {
	return model.AnalysisResult{
		Name:          "tool",
		Description:   "Builds things",
		Version:       "1.0.0",
		License:       "MIT",
		Main:          "index.js",
		Keywords:      []string{},
		Scripts:       map[string]string{},
		Bin:           map[string]string{"tool": "cli.js"},
		Commands:      []model.CommandRecord{{Name: "build"}},
		Flags:         []model.FlagRecord{},
		UsageExamples: []string{},
	}
}

func TestMarkdown_MinimalBinProject(t *testing.T) {
	b, err := Markdown(toolResult(), MarkdownOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "# tool\n\nBuilds things\n\n## Installation\n\n```bash\nnpm install -g tool\n```\n\n" +
		"## Usage\n\n```bash\ntool [command] [options]\n```\n\n" +
		"## Commands\n\n| Command | Description |\n|---------|-------------|\n| `build` |  |\n\n" +
		"## License\n\nMIT\n"
	if string(b) != want {
		t.Fatalf("unexpected markdown\nwant:\n%s\ngot:\n%s", want, string(b))
	}
}

func TestMarkdown_LibraryProjectSections(t *testing.T) {
	res := toolResult()
	res.Name = "@acme/left-pad"
	res.Bin = map[string]string{}
	res.Commands = nil
	res.Flags = []model.FlagRecord{{Name: "--force", Description: "overwrite | replace"}}
	res.UsageExamples = []string{"left-pad <str>"}
	res.Scripts = map[string]string{"test": "jest", "lint": "eslint", "build": "tsc", "dev": "x", "watch": "y"}
	res.Author = "Ada"
	res.HasLicenseFile = true

	b, err := Markdown(res, MarkdownOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	out := string(b)
	for _, want := range []string{
		"npm install @acme/left-pad\n",
		"const leftPad = require('@acme/left-pad');",
		"| `--force` | overwrite \\| replace |",
		"## Examples\n\n```bash\nleft-pad <str>\n```",
		"npm install\nnpm run build\nnpm run dev\nnpm run lint\nnpm test\n```",
		"see the [LICENSE](LICENSE) file",
		"© Ada",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
	for _, absent := range []string{"## Commands", "npm run watch", "npm install -g"} {
		if strings.Contains(out, absent) {
			t.Fatalf("unexpected %q in:\n%s", absent, out)
		}
	}
}

func TestMarkdown_Badges(t *testing.T) {
	res := toolResult()
	res.License = "Apache-2.0"
	res.Repository = &model.RepositoryRef{User: "acme", Repo: "tool"}
	b, err := Markdown(res, MarkdownOptions{Badges: true})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	out := string(b)
	if !strings.Contains(out, "Builds things\n\n[![npm version](https://img.shields.io/npm/v/tool.svg)]") {
		t.Fatalf("badges must follow the description:\n%s", out)
	}
	for _, want := range []string{"License-Apache--2.0-blue", "github/stars/acme/tool", "github.com/acme/tool/issues"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
	plain, _ := Markdown(res, MarkdownOptions{})
	if strings.Contains(string(plain), "img.shields.io") {
		t.Fatalf("badges rendered without being requested")
	}
}

func TestIdentifier(t *testing.T) {
	cases := map[string]string{
		"tool":           "tool",
		"left-pad":       "leftPad",
		"@scope/my.lib":  "myLib",
		"3d-engine":      "pkg3dEngine",
	}
	for in, want := range cases {
		if got := identifier(in); got != want {
			t.Fatalf("%q: got %q want %q", in, got, want)
		}
	}
}

func TestJSON_DumpsResult(t *testing.T) {
	res := toolResult()
	res.Repository = &model.RepositoryRef{User: "acme", Repo: "tool"}
	b, err := JSON(res)
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	var back model.AnalysisResult
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if back.Name != "tool" || back.Repository == nil || back.Repository.Repo != "tool" || len(back.Commands) != 1 {
		t.Fatalf("unexpected dump: %s", string(b))
	}
}

func TestYAML_CanonicalAndStable(t *testing.T) {
	res := toolResult()
	b1, err := YAML(res)
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}
	b2, _ := YAML(res)
	if string(b1) != string(b2) {
		t.Fatalf("yaml output not stable")
	}
	out := string(b1)
	if !strings.HasPrefix(out, "bin:\n  tool: cli.js\ncommands:\n  - description: \"\"\n    name: build\n") {
		t.Fatalf("unexpected yaml:\n%s", out)
	}
	if !strings.Contains(out, "flags: []\n") || !strings.Contains(out, "scripts: {}\n") {
		t.Fatalf("empty collections should be flow style:\n%s", out)
	}
}
