package probe

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/flarebyte/scribe/internal/logger"
)

func requirePOSIXShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("probe tests require POSIX shell")
	}
}

func writeScript(t *testing.T, body string) (dir, entry string) {
	t.Helper()
	dir = t.TempDir()
	entry = filepath.Join(dir, "cli.sh")
	if err := os.WriteFile(entry, []byte(body), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return dir, entry
}

func TestCommand_SelectsInterpreter(t *testing.T) {
	p, args := Command("cli.js", "")
	if p != "node" || len(args) != 2 || args[0] != "cli.js" || args[1] != "--help" {
		t.Fatalf("unexpected js command: %s %v", p, args)
	}
	p, args = Command("bin/tool", "")
	if p != "bin/tool" || len(args) != 1 || args[0] != "--help" {
		t.Fatalf("unexpected native command: %s %v", p, args)
	}
	p, args = Command("cli.ts", "tsx")
	if p != "tsx" || args[0] != "cli.ts" {
		t.Fatalf("unexpected explicit program: %s %v", p, args)
	}
}

func TestRun_CapturesStdoutOnly(t *testing.T) {
	requirePOSIXShell(t)
	dir, entry := writeScript(t, "printf 'Usage: tool\\n'\nprintf 'noise' >&2\necho \"color=$NO_COLOR\"\n")
	got := Run(context.Background(), Options{Entry: entry, Dir: dir, Program: "sh"})
	if got != "Usage: tool\ncolor=1\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestRun_NonZeroExitKeepsStdout(t *testing.T) {
	requirePOSIXShell(t)
	dir, entry := writeScript(t, "echo 'Commands:'\nexit 3\n")
	got := Run(context.Background(), Options{Entry: entry, Dir: dir, Program: "sh"})
	if got != "Commands:\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestRun_TimeoutDiscardsOutput(t *testing.T) {
	requirePOSIXShell(t)
	dir, entry := writeScript(t, "echo partial\nsleep 5\n")
	start := time.Now()
	got := Run(context.Background(), Options{Entry: entry, Dir: dir, Program: "sh", Timeout: 100 * time.Millisecond, TermGrace: 20 * time.Millisecond})
	if got != "" {
		t.Fatalf("expected empty output on timeout, got %q", got)
	}
	if time.Since(start) > 3*time.Second {
		t.Fatalf("probe did not honor timeout")
	}
}

func TestRun_MissingEntryOrProgram(t *testing.T) {
	if got := Run(context.Background(), Options{Entry: filepath.Join(t.TempDir(), "nope.js")}); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
	_, entry := writeScript(t, "echo hi\n")
	if got := Run(context.Background(), Options{Entry: entry, Program: "definitely-not-a-program-xyz"}); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestLimitedBuffer_Truncates(t *testing.T) {
	b := &limitedBuffer{max: 4}
	_, _ = b.Write([]byte("abc"))
	_, _ = b.Write([]byte("def"))
	if b.String() != "abcd" || !b.truncated {
		t.Fatalf("unexpected buffer: %q truncated=%v", b.String(), b.truncated)
	}
}

func TestColorlessEnv_OverridesExisting(t *testing.T) {
	env := colorlessEnv([]string{"FORCE_COLOR=3", "PATH=/bin", "broken"})
	joined := strings.Join(env, "\n")
	if strings.Contains(joined, "FORCE_COLOR=3") || strings.Contains(joined, "broken") {
		t.Fatalf("unexpected env: %v", env)
	}
	for _, want := range []string{"PATH=/bin", "FORCE_COLOR=0", "NO_COLOR=1", "NODE_DISABLE_COLORS=1"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("missing %s in %v", want, env)
		}
	}
}

func TestRun_TruncatedOutputWarns(t *testing.T) {
	requirePOSIXShell(t)
	old := logger.Log
	defer func() { logger.Log = old }()
	var logs bytes.Buffer
	logger.Init(false, &logs)

	dir, entry := writeScript(t, "printf 'abcdefgh'\nexit 2\n")
	got := Run(context.Background(), Options{Entry: entry, Dir: dir, Program: "sh", MaxBytes: 4})
	if got != "abcd" {
		t.Fatalf("unexpected output: %q", got)
	}
	if !strings.Contains(logs.String(), "help output truncated") {
		t.Fatalf("expected truncation warning, got %q", logs.String())
	}
}

func TestRun_DebugLogsExitCode(t *testing.T) {
	requirePOSIXShell(t)
	old := logger.Log
	defer func() { logger.Log = old }()
	var logs bytes.Buffer
	logger.Init(true, &logs)

	dir, entry := writeScript(t, "echo hi\nexit 3\n")
	if got := Run(context.Background(), Options{Entry: entry, Dir: dir, Program: "sh"}); got != "hi\n" {
		t.Fatalf("unexpected output: %q", got)
	}
	if !strings.Contains(logs.String(), "exitCode=3") {
		t.Fatalf("expected exit code in debug line, got %q", logs.String())
	}
}
