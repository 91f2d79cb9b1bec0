// Package model defines the records shared by the analysis pipeline.
package model

// CommandRecord is a sub-command recovered from help output or source text.
type CommandRecord struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// FlagRecord is a command-line flag. Name always starts with "-" or "--".
type FlagRecord struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RepositoryRef identifies a hosted repository as user/repo.
type RepositoryRef struct {
	User string `json:"user"`
	Repo string `json:"repo"`
}

// String returns "user/repo".
func (r RepositoryRef) String() string { return r.User + "/" + r.Repo }

// AnalysisResult is the merged model handed to the renderers.
// Commands and Flags are sorted ascending by name.
type AnalysisResult struct {
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Version        string            `json:"version"`
	License        string            `json:"license"`
	Author         string            `json:"author,omitempty"`
	Main           string            `json:"main"`
	Keywords       []string          `json:"keywords"`
	Scripts        map[string]string `json:"scripts"`
	Bin            map[string]string `json:"bin"`
	Commands       []CommandRecord   `json:"commands"`
	Flags          []FlagRecord      `json:"flags"`
	UsageExamples  []string          `json:"usageExamples"`
	Repository     *RepositoryRef    `json:"repository,omitempty"`
	HasLicenseFile bool              `json:"hasLicenseFile"`
}

// HasBin reports whether the project installs any executable command.
func (r AnalysisResult) HasBin() bool { return len(r.Bin) > 0 }

// BinNames returns the bin command names in ascending order.
func (r AnalysisResult) BinNames() []string {
	return SortedKeys(r.Bin)
}

// ScriptNames returns the script names in ascending order.
func (r AnalysisResult) ScriptNames() []string {
	return SortedKeys(r.Scripts)
}
