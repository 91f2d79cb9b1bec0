// Package luafilter evaluates a user supplied Lua predicate against merged
// records inside a restricted interpreter.
package luafilter

import (
	"context"
	"fmt"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"

	"github.com/flarebyte/scribe/internal/model"
)

// DefaultTimeout bounds one predicate evaluation.
const DefaultTimeout = 200 * time.Millisecond

const sandboxTimeoutViolation = "sandbox timeout"

// Filter is a compiled predicate. The zero value keeps every record.
type Filter struct {
	code    string
	timeout time.Duration
}

// New wraps a bare expression in a return statement. Code that does not
// compile as an expression is kept as a chunk. An empty inline yields a
// filter that keeps everything.
func New(inline string, timeout time.Duration) Filter {
	code := strings.TrimSpace(inline)
	if code != "" {
		if wrapped := "return (" + code + ")"; compiles(wrapped) {
			code = wrapped
		}
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return Filter{code: code, timeout: timeout}
}

// Enabled reports whether a predicate is configured.
func (f Filter) Enabled() bool { return f.code != "" }

// Commands keeps the command records accepted by the predicate.
func (f Filter) Commands(recs []model.CommandRecord) ([]model.CommandRecord, error) {
	if !f.Enabled() {
		return recs, nil
	}
	out := make([]model.CommandRecord, 0, len(recs))
	for _, r := range recs {
		keep, err := f.eval("command", r.Name, r.Description)
		if err != nil {
			return nil, err
		}
		if keep {
			out = append(out, r)
		}
	}
	return out, nil
}

// Flags keeps the flag records accepted by the predicate.
func (f Filter) Flags(recs []model.FlagRecord) ([]model.FlagRecord, error) {
	if !f.Enabled() {
		return recs, nil
	}
	out := make([]model.FlagRecord, 0, len(recs))
	for _, r := range recs {
		keep, err := f.eval("flag", r.Name, r.Description)
		if err != nil {
			return nil, err
		}
		if keep {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f Filter) eval(kind, name, description string) (bool, error) {
	L := newSandboxState()
	defer L.Close()

	ctx, cancel := context.WithTimeout(context.Background(), f.timeout)
	defer cancel()
	L.SetContext(ctx)

	L.SetGlobal("kind", lua.LString(kind))
	L.SetGlobal("name", lua.LString(name))
	L.SetGlobal("description", lua.LString(description))

	fn, err := L.LoadString(f.code)
	if err != nil {
		return false, fmt.Errorf("filter: %v", err)
	}
	L.Push(fn)
	if err := L.PCall(0, 1, nil); err != nil {
		if isTimeoutError(err) {
			return false, fmt.Errorf("filter: %s", sandboxTimeoutViolation)
		}
		return false, fmt.Errorf("filter: %v", err)
	}
	ret := L.Get(-1)
	L.Pop(1)
	return ret == lua.LTrue, nil
}

func newSandboxState() *lua.LState {
	L := lua.NewState(lua.Options{
		SkipOpenLibs:     true,
		RegistrySize:     256,
		RegistryMaxSize:  1024,
		RegistryGrowStep: 0,
	})
	openLib := func(name string, f lua.LGFunction) {
		L.Push(L.NewFunction(f))
		L.Push(lua.LString(name))
		L.Call(1, 0)
	}
	openLib("base", lua.OpenBase)
	openLib("string", lua.OpenString)
	openLib("table", lua.OpenTable)
	return L
}

// compiles reports whether code parses as a Lua chunk.
func compiles(code string) bool {
	_, err := parse.Parse(strings.NewReader(code), "<string>")
	return err == nil
}

func isTimeoutError(err error) bool {
	if err == nil {
		return false
	}
	if err == context.DeadlineExceeded {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "deadline") || strings.Contains(msg, "context canceled")
}
