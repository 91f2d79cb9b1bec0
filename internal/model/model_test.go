package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSortedKeys_Ascending(t *testing.T) {
	got := SortedKeys(map[string]string{"lint": "", "build": "", "test": ""})
	if strings.Join(got, ",") != "build,lint,test" {
		t.Fatalf("unexpected keys: %v", got)
	}
	if len(SortedKeys(nil)) != 0 {
		t.Fatalf("expected no keys for nil map")
	}
}

func TestAnalysisResult_NamesAndJSONShape(t *testing.T) {
	res := AnalysisResult{
		Name:       "tool",
		Bin:        map[string]string{"b": "b.js", "a": "a.js"},
		Scripts:    map[string]string{"test": "x"},
		Commands:   []CommandRecord{{Name: "build"}},
		Repository: &RepositoryRef{User: "acme", Repo: "tool"},
	}
	if !res.HasBin() || strings.Join(res.BinNames(), ",") != "a,b" || res.ScriptNames()[0] != "test" {
		t.Fatalf("unexpected names: %v %v", res.BinNames(), res.ScriptNames())
	}
	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, want := range []string{`"commands":[{"name":"build","description":""}]`, `"repository":{"user":"acme","repo":"tool"}`} {
		if !strings.Contains(string(b), want) {
			t.Fatalf("missing %s in %s", want, b)
		}
	}
	if res.Repository.String() != "acme/tool" {
		t.Fatalf("unexpected repository: %s", res.Repository)
	}
}
