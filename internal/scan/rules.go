package scan

import (
	"regexp"
	"strings"
)

// Kind is the record kind a rule produces.
type Kind string

const (
	KindCommand Kind = "command"
	KindFlag    Kind = "flag"
)

// Rule is one independent lexical classifier. Match returns every candidate
// name the rule recognizes in text; candidates are not yet filtered.
type Rule struct {
	Name    string
	Kind    Kind
	pattern *regexp.Regexp
	mapper  func(capture string) string
}

// Match applies the rule to the whole text.
func (r Rule) Match(text string) []string {
	var out []string
	for _, m := range r.pattern.FindAllStringSubmatch(text, -1) {
		name := m[1]
		if r.mapper != nil {
			name = r.mapper(name)
		}
		out = append(out, name)
	}
	return out
}

const quote = "['\"`]"

// Rules is the ordered rule list used by Scan.
var Rules = []Rule{
	{
		Name:    "case-label",
		Kind:    KindCommand,
		pattern: regexp.MustCompile(`\bcase\s+` + quote + `(\w[\w:-]*)` + quote + `\s*:`),
	},
	{
		Name:    "args-index",
		Kind:    KindCommand,
		pattern: regexp.MustCompile(`\bargs\[0\]\s*={2,3}\s*` + quote + `(\w[\w:-]*)` + quote),
	},
	{
		Name:    "command-var",
		Kind:    KindCommand,
		pattern: regexp.MustCompile(`\bcommand\s*={2,3}\s*` + quote + `(\w[\w:-]*)` + quote),
	},
	{
		Name:    "if-equality",
		Kind:    KindCommand,
		pattern: regexp.MustCompile(`\bif\s*\(\s*[\w.\[\]]+\s*={2,3}\s*` + quote + `(\w[\w:-]*)` + quote),
	},
	{
		Name:    "flag-literal",
		Kind:    KindFlag,
		pattern: regexp.MustCompile(`(?:={2,3}\s*|\.includes\(\s*|\.indexOf\(\s*)` + quote + `(-{1,2}[\w-]+)` + quote),
	},
	{
		Name:    "options-property",
		Kind:    KindFlag,
		pattern: regexp.MustCompile(`\b(?:opts|options|flags|argv|args)\.([A-Za-z_$][\w$]*)`),
		mapper:  propertyFlag,
	},
}

// propertyFlag maps a property name to a flag: one letter gets a single
// dash, longer names a double dash.
func propertyFlag(prop string) string {
	if len(prop) == 1 {
		return "-" + prop
	}
	return "--" + prop
}

var commandStoplist = stopSet(
	"help", "version", "default", "true", "false",
	"command", "cmd", "action", "error", "exit",
)

var methodStoplist = stopSet(
	"--push", "--pop", "--shift", "--unshift", "--slice", "--splice",
	"--map", "--filter", "--reduce", "--forEach", "--length", "--includes",
	"--indexOf", "--join", "--concat", "--find", "--some", "--every",
	"--keys", "--values", "--entries", "--sort", "--toString", "--hasOwnProperty",
)

var placeholderStoplist = stopSet(
	"--flag", "--cmd", "--opt", "--arg", "--args", "--foo", "--bar",
	"-flag", "-cmd", "-opt", "-arg", "-args", "-foo", "-bar",
)

var flagShape = regexp.MustCompile(`^--?[A-Za-z][\w-]*$`)

func stopSet(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[strings.ToLower(w)] = true
	}
	return m
}

// AcceptCommand reports whether name survives the generic token stoplist.
func AcceptCommand(name string) bool {
	return name != "" && !commandStoplist[strings.ToLower(name)]
}

// AcceptFlag reports whether name is a plausible flag.
func AcceptFlag(name string) bool {
	lower := strings.ToLower(name)
	if methodStoplist[lower] || placeholderStoplist[lower] {
		return false
	}
	return flagShape.MatchString(name)
}
