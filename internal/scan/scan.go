// Package scan recovers command and flag names from entry-point source text
// with lexical rules. It never recovers descriptions.
package scan

import (
	"encoding/json"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/flarebyte/scribe/internal/logger"
)

// Set is an unordered set of names.
type Set map[string]struct{}

// Add inserts name.
func (s Set) Add(name string) { s[name] = struct{}{} }

// Has reports membership.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the members in ascending order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// MarshalJSON encodes the set as a sorted list.
func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// Result is the outcome of a scan.
type Result struct {
	Commands      Set      `json:"commands"`
	Flags         Set      `json:"flags"`
	UsageExamples []string `json:"usageExamples"`
}

// NewResult returns an empty result.
func NewResult() Result {
	return Result{Commands: Set{}, Flags: Set{}, UsageExamples: []string{}}
}

var (
	usageLine    = regexp.MustCompile(`(?i)usage:[ \t]*([^\r\n]*)`)
	usageTrailer = regexp.MustCompile("(?:\\\\n|['\"`);,+\\s])+$")
)

// Scan reads each path and applies every rule. Missing or unreadable files
// are skipped.
func Scan(paths []string) Result {
	res := NewResult()
	for _, p := range paths {
		b, err := os.ReadFile(p)
		if err != nil {
			logger.Debug().Err(err).Str("path", p).Msg("source skipped")
			continue
		}
		scanInto(&res, string(b))
	}
	return res
}

// ScanText applies every rule to a single source text.
func ScanText(text string) Result {
	res := NewResult()
	scanInto(&res, text)
	return res
}

func scanInto(res *Result, text string) {
	for _, rule := range Rules {
		for _, name := range rule.Match(text) {
			switch rule.Kind {
			case KindCommand:
				if AcceptCommand(name) {
					res.Commands.Add(name)
				}
			case KindFlag:
				if AcceptFlag(name) {
					res.Flags.Add(name)
				}
			}
		}
	}
	if example, ok := firstUsage(text); ok && !contains(res.UsageExamples, example) {
		res.UsageExamples = append(res.UsageExamples, example)
	}
}

// firstUsage returns the text following the first "Usage:" occurrence, with
// trailing string delimiters and escaped newlines removed.
func firstUsage(text string) (string, bool) {
	m := usageLine.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	s := strings.TrimSpace(usageTrailer.ReplaceAllString(m[1], ""))
	if s == "" {
		return "", false
	}
	return s, true
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
