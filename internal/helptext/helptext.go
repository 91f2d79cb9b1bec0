// Package helptext turns free-form --help output into command and flag
// records.
package helptext

import (
	"regexp"
	"strings"

	"github.com/flarebyte/scribe/internal/model"
)

// Result holds records in the order they were encountered.
type Result struct {
	Commands []model.CommandRecord `json:"commands"`
	Flags    []model.FlagRecord    `json:"flags"`
}

const (
	sectionCommands = "commands"
	sectionUsage    = "usage"
	sectionOptions  = "options"
	sectionFlags    = "flags"
)

var (
	sectionHeader = regexp.MustCompile(`(?i)^(Commands|Usage|Options|Flags):`)
	commandLine   = regexp.MustCompile(`^\s+(\w[\w:-]*)\s{2,}(\S.*)$`)
	flagLine      = regexp.MustCompile(`^\s+(-{1,2}[\w-]+(?:[ =]?(?:<[^>]*>|\[[^\]]*\]|[A-Z][A-Z_]*))?(?:\s*,\s*-{1,2}[\w-]+(?:[ =]?(?:<[^>]*>|\[[^\]]*\]|[A-Z][A-Z_]*))?)*)\s{2,}(\S.*)$`)
	flagToken     = regexp.MustCompile(`-{1,2}[\w-]+`)
)

// Parse scans text line by line. Section headers move the cursor and are
// not data; lines that match no rule for the current section are dropped.
func Parse(text string) Result {
	res := Result{Commands: []model.CommandRecord{}, Flags: []model.FlagRecord{}}
	section := ""
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if m := sectionHeader.FindStringSubmatch(trimmed); m != nil {
			section = strings.ToLower(m[1])
			continue
		}
		switch section {
		case sectionCommands:
			if rec, ok := parseCommandLine(line); ok {
				res.Commands = append(res.Commands, rec)
			}
		case sectionOptions, sectionFlags:
			if rec, ok := parseFlagLine(line); ok {
				res.Flags = append(res.Flags, rec)
			}
		}
	}
	return res
}

func parseCommandLine(line string) (model.CommandRecord, bool) {
	m := commandLine.FindStringSubmatch(line)
	if m == nil {
		return model.CommandRecord{}, false
	}
	return model.CommandRecord{Name: m[1], Description: strings.TrimSpace(m[2])}, true
}

func parseFlagLine(line string) (model.FlagRecord, bool) {
	m := flagLine.FindStringSubmatch(line)
	if m == nil {
		return model.FlagRecord{}, false
	}
	name := canonicalFlag(m[1])
	if name == "" {
		return model.FlagRecord{}, false
	}
	return model.FlagRecord{Name: name, Description: strings.TrimSpace(m[2])}, true
}

// canonicalFlag prefers the first long alternative and falls back to the
// first alternative.
func canonicalFlag(list string) string {
	var first string
	for _, alt := range strings.Split(list, ",") {
		tok := flagToken.FindString(strings.TrimSpace(alt))
		if tok == "" {
			continue
		}
		if strings.HasPrefix(tok, "--") {
			return tok
		}
		if first == "" {
			first = tok
		}
	}
	return first
}
