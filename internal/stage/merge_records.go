package stage

import (
	"context"
	"os"
	"path/filepath"

	"github.com/flarebyte/scribe/internal/helptext"
	"github.com/flarebyte/scribe/internal/luafilter"
	"github.com/flarebyte/scribe/internal/merge"
	"github.com/flarebyte/scribe/internal/model"
	"github.com/flarebyte/scribe/internal/scan"
)

const licenseFileName = "LICENSE"

// MergeRecords overlays dynamic records on static findings, applies the
// optional record filter and builds the AnalysisResult.
func MergeRecords(_ context.Context, in Envelope, _ Deps) (Envelope, error) {
	if in.Manifest == nil {
		return Envelope{}, ErrMissingInput{Stage: "merge-records", Field: "manifest"}
	}
	help := helptext.Result{}
	if in.Help != nil {
		help = *in.Help
	}
	static := scan.NewResult()
	if in.Scan != nil {
		static = *in.Scan
	}

	commands := merge.Commands(static.Commands.Sorted(), help.Commands)
	flags := merge.Flags(static.Flags.Sorted(), help.Flags)

	filter := luafilter.New(in.settings().FilterInline, luafilter.DefaultTimeout)
	var err error
	if commands, err = filter.Commands(commands); err != nil {
		return Envelope{}, err
	}
	if flags, err = filter.Flags(flags); err != nil {
		return Envelope{}, err
	}

	m := in.Manifest
	res := model.AnalysisResult{
		Name:           m.Name,
		Description:    m.Description,
		Version:        m.Version,
		License:        m.License,
		Author:         m.Author,
		Main:           m.Main,
		Keywords:       m.Keywords,
		Scripts:        m.Scripts,
		Bin:            m.Bin,
		Commands:       commands,
		Flags:          flags,
		UsageExamples:  static.UsageExamples,
		Repository:     in.Repository,
		HasLicenseFile: fileExists(filepath.Join(in.dir(), licenseFileName)),
	}
	out := in
	out.Result = &res
	return out, nil
}

func fileExists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}

func init() { Register("merge-records", MergeRecords) }
