package list

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/elves/linkedlist/pkg/must"
	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestMarshalYAML(t *testing.T) {
	got := string(must.OK1(yaml.Marshal(From("a", "b", "c"))))
	want := "- a\n- b\n- c\n"
	if got != want {
		t.Errorf("yaml.Marshal -> %q, want %q", got, want)
	}
}

func TestMarshalYAML_Empty(t *testing.T) {
	got := string(must.OK1(yaml.Marshal(New[int]())))
	if got != "[]\n" {
		t.Errorf("yaml.Marshal of empty list -> %q, want %q", got, "[]\n")
	}
}

func TestMarshalYAML_AsField(t *testing.T) {
	doc := struct {
		Items *List[int] `yaml:"items"`
	}{From(1, 2)}
	got := string(must.OK1(yaml.Marshal(doc)))
	want := "items:\n    - 1\n    - 2\n"
	if got != want {
		t.Errorf("yaml.Marshal -> %q, want %q", got, want)
	}
}

func TestUnmarshalYAML(t *testing.T) {
	l := From("stale")
	must.OK(yaml.Unmarshal([]byte("- x\n- y\n- x\n"), l))
	if diff := cmp.Diff([]string{"x", "y", "x"}, collect(l)); diff != "" {
		t.Errorf("yaml.Unmarshal (-want +got):\n%s", diff)
	}
}

func TestUnmarshalYAML_FlowSequence(t *testing.T) {
	var l List[int]
	must.OK(yaml.Unmarshal([]byte("[3, 1, 2]"), &l))
	if diff := cmp.Diff([]int{3, 1, 2}, collect(&l)); diff != "" {
		t.Errorf("yaml.Unmarshal (-want +got):\n%s", diff)
	}
}

func TestUnmarshalYAML_RejectsNonSequence(t *testing.T) {
	var l List[string]
	err := yaml.Unmarshal([]byte("a: b\n"), &l)
	if err == nil || !strings.Contains(err.Error(), "cannot load list from mapping") {
		t.Errorf("yaml.Unmarshal of mapping -> %v, want error about mapping", err)
	}
}

func TestUnmarshalYAML_RejectsBadElement(t *testing.T) {
	var l List[int]
	if err := yaml.Unmarshal([]byte("[1, two]"), &l); err == nil {
		t.Errorf("yaml.Unmarshal with non-integer element succeeded")
	}
}

func TestMarshalJSON(t *testing.T) {
	tests := []struct {
		l    *List[string]
		want string
	}{
		{New[string](), `[]`},
		{From("a"), `["a"]`},
		{From("a", "b"), `["a","b"]`},
	}
	for _, test := range tests {
		got := string(must.OK1(json.Marshal(test.l)))
		if got != test.want {
			t.Errorf("json.Marshal(%v) -> %s, want %s", test.l, got, test.want)
		}
	}
}

func TestUnmarshalJSON(t *testing.T) {
	l := From(9)
	must.OK(json.Unmarshal([]byte(`[1, 2, 3]`), l))
	if diff := cmp.Diff([]int{1, 2, 3}, collect(l)); diff != "" {
		t.Errorf("json.Unmarshal (-want +got):\n%s", diff)
	}
}

func TestJSONRoundTrip_PreservesOrderAfterMutation(t *testing.T) {
	l := From(2, 3)
	l.Prepend(1)
	l.Remove(3)
	l.Add(4)
	var restored List[int]
	must.OK(json.Unmarshal(must.OK1(json.Marshal(l)), &restored))
	if diff := cmp.Diff(collect(l), collect(&restored)); diff != "" {
		t.Errorf("restored list differs (-original +restored):\n%s", diff)
	}
}
