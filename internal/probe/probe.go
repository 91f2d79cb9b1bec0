// Package probe runs a project's entry point with --help and captures what
// it prints. Every failure collapses to empty output.
package probe

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/flarebyte/scribe/internal/logger"
)

const (
	// DefaultTimeout bounds the whole probe.
	DefaultTimeout = 2000 * time.Millisecond
	// DefaultMaxBytes caps captured stdout.
	DefaultMaxBytes = 1 << 20

	defaultTermGrace = 100 * time.Millisecond
	helpArg          = "--help"
)

// Options controls a single probe.
type Options struct {
	// Entry is the resolved path of the entry file.
	Entry string
	// Dir is the working directory, normally the project root.
	Dir string
	// Program overrides the interpreter. Empty selects node for JavaScript
	// entries and the entry itself otherwise.
	Program   string
	Timeout   time.Duration
	MaxBytes  int
	TermGrace time.Duration
}

func (o Options) withDefaults() Options {
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.MaxBytes <= 0 {
		o.MaxBytes = DefaultMaxBytes
	}
	if o.TermGrace <= 0 {
		o.TermGrace = defaultTermGrace
	}
	return o
}

// Command returns the program and arguments used to probe entry.
func Command(entry, program string) (string, []string) {
	if program != "" {
		return program, []string{entry, helpArg}
	}
	switch strings.ToLower(filepath.Ext(entry)) {
	case ".js", ".cjs", ".mjs":
		return "node", []string{entry, helpArg}
	default:
		return entry, []string{helpArg}
	}
}

// Run executes the help invocation and returns its stdout, or "" when the
// entry is missing, the process cannot start, fails to run, or times out.
// A non-zero exit status still yields the captured stdout.
func Run(ctx context.Context, opts Options) string {
	opts = opts.withDefaults()
	if st, err := os.Stat(opts.Entry); err != nil || st.IsDir() {
		logger.Debug().Str("entry", opts.Entry).Msg("probe skipped: entry missing")
		return ""
	}
	res := runCommand(ctx, opts)
	if res.timedOut {
		logger.Debug().Str("entry", opts.Entry).Dur("timeout", opts.Timeout).Msg("probe timed out")
		return ""
	}
	if res.errorMsg != "" {
		logger.Debug().Str("entry", opts.Entry).Str("reason", res.errorMsg).Msg("probe failed")
		return ""
	}
	if res.truncated {
		logger.Warn().Str("entry", opts.Entry).Int("maxBytes", opts.MaxBytes).Msg("help output truncated")
	}
	logger.Debug().Str("entry", opts.Entry).Int("exitCode", res.exitCode).Int("bytes", len(res.stdout)).Msg("probe finished")
	return res.stdout
}

type runResult struct {
	stdout    string
	exitCode  int
	timedOut  bool
	truncated bool
	errorMsg  string
}

func runCommand(ctx context.Context, opts Options) runResult {
	program, args := Command(opts.Entry, opts.Program)
	cmd := exec.Command(program, args...)
	cmd.Dir = opts.Dir
	cmd.Env = colorlessEnv(os.Environ())
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	outBuf := &limitedBuffer{max: opts.MaxBytes}
	cmd.Stdout = outBuf
	cmd.Stderr = nil
	cmd.Stdin = nil

	if err := cmd.Start(); err != nil {
		var ee *exec.Error
		if errors.As(err, &ee) {
			return runResult{exitCode: -1, errorMsg: "program " + program + " not found"}
		}
		return runResult{exitCode: -1, errorMsg: "program " + program + " start failed"}
	}

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	timer := time.NewTimer(opts.Timeout)
	defer timer.Stop()

	var runErr error
	timedOut := false
	select {
	case runErr = <-done:
	case <-timer.C:
		timedOut = true
	case <-ctx.Done():
		timedOut = true
	}
	if timedOut {
		signalGroup(cmd, syscall.SIGTERM)
		grace := time.NewTimer(opts.TermGrace)
		select {
		case <-done:
			grace.Stop()
		case <-grace.C:
			signalGroup(cmd, syscall.SIGKILL)
			<-done
		}
		return runResult{exitCode: -2, timedOut: true}
	}

	res := runResult{stdout: outBuf.String(), truncated: outBuf.truncated}
	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			res.exitCode = exitErr.ExitCode()
			return res
		}
		return runResult{exitCode: -1, errorMsg: "program " + program + " execution failed"}
	}
	return res
}

func signalGroup(cmd *exec.Cmd, sig syscall.Signal) {
	if cmd == nil || cmd.Process == nil {
		return
	}
	if pid := cmd.Process.Pid; pid > 0 {
		if err := syscall.Kill(-pid, sig); err == nil {
			return
		}
	}
	_ = cmd.Process.Signal(sig)
}

var colorOverlay = map[string]string{
	"NO_COLOR":            "1",
	"FORCE_COLOR":         "0",
	"NODE_DISABLE_COLORS": "1",
}

// colorlessEnv returns base with the color suppression variables forced.
func colorlessEnv(base []string) []string {
	out := make([]string, 0, len(base)+len(colorOverlay))
	for _, kv := range base {
		i := strings.IndexByte(kv, '=')
		if i <= 0 {
			continue
		}
		if _, ok := colorOverlay[kv[:i]]; ok {
			continue
		}
		out = append(out, kv)
	}
	for _, k := range []string{"FORCE_COLOR", "NODE_DISABLE_COLORS", "NO_COLOR"} {
		out = append(out, k+"="+colorOverlay[k])
	}
	return out
}
