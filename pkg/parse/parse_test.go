package parse

import (
	"testing"

	"github.com/elves/linkedlist/pkg/diag"
	"github.com/google/go-cmp/cmp"
)

// Returns the head and argument values of all forms in a chunk.
func formValues(c *Chunk) [][]string {
	var values [][]string
	for _, f := range c.Forms {
		words := []string{f.Head.Value}
		for _, arg := range f.Args {
			words = append(words, arg.Value)
		}
		values = append(values, words)
	}
	return values
}

var parseTests = []struct {
	name string
	code string
	want [][]string
}{
	{"empty code", "", nil},
	{"only blanks and comments", "  \n# comment\n\t\n", nil},
	{"one form", "add a", [][]string{{"add", "a"}}},
	{"form without arguments", "show", [][]string{{"show"}}},
	{"forms on separate lines", "add a\nadd b\r\nshow\n",
		[][]string{{"add", "a"}, {"add", "b"}, {"show"}}},
	{"forms separated by semicolons", "add a;prepend b ; show",
		[][]string{{"add", "a"}, {"prepend", "b"}, {"show"}}},
	{"multiple arguments", "add a b\tc", [][]string{{"add", "a", "b", "c"}}},
	{"trailing comment", "add a # comment; show",
		[][]string{{"add", "a"}}},
	{"hash inside a word is not a comment", "add a#b", [][]string{{"add", "a#b"}}},
	{"single-quoted string", `add 'a b' ''`, [][]string{{"add", "a b", ""}}},
	{"escaped single quote", `add 'it''s'`, [][]string{{"add", "it's"}}},
	{"double-quoted string", `add "a\tb" "\"q\"" "é"`,
		[][]string{{"add", "a\tb", `"q"`, "é"}}},
	{"quoted separators", `add ';' "#"`, [][]string{{"add", ";", "#"}}},
	{"quoted head", `'add' x`, [][]string{{"add", "x"}}},
}

func TestParse(t *testing.T) {
	for _, test := range parseTests {
		t.Run(test.name, func(t *testing.T) {
			chunk, err := Parse(Source{Name: "[test]", Code: test.code})
			if err != nil {
				t.Fatalf("Parse(%q) returns error %v", test.code, err)
			}
			if diff := cmp.Diff(test.want, formValues(chunk)); diff != "" {
				t.Errorf("Parse(%q) forms (-want +got):\n%s", test.code, diff)
			}
		})
	}
}

func TestParse_Ranges(t *testing.T) {
	code := "add 'a b' c\nshow"
	chunk, err := Parse(Source{Name: "[test]", Code: code})
	if err != nil {
		t.Fatal(err)
	}
	want := &Chunk{
		Ranging: diag.Ranging{From: 0, To: 16},
		Forms: []*Form{
			{
				Ranging: diag.Ranging{From: 0, To: 11},
				Head:    &Word{diag.Ranging{From: 0, To: 3}, "add"},
				Args: []*Word{
					{diag.Ranging{From: 4, To: 9}, "a b"},
					{diag.Ranging{From: 10, To: 11}, "c"},
				},
			},
			{
				Ranging: diag.Ranging{From: 12, To: 16},
				Head:    &Word{diag.Ranging{From: 12, To: 16}, "show"},
				Args:    []*Word{},
			},
		},
	}
	if diff := cmp.Diff(want, chunk); diff != "" {
		t.Errorf("Parse (-want +got):\n%s", diff)
	}
}

type wantError struct {
	message string
	ranging diag.Ranging
}

var parseErrorTests = []struct {
	name string
	code string
	want []wantError
}{
	{"unterminated single quote", "add 'abc",
		[]wantError{{"unterminated single-quoted string", diag.Ranging{From: 4, To: 8}}}},
	{"unterminated double quote", `add "abc`,
		[]wantError{{"unterminated double-quoted string", diag.Ranging{From: 4, To: 8}}}},
	{"backslash before end of code", `add "abc\`,
		[]wantError{{"unterminated double-quoted string", diag.Ranging{From: 4, To: 9}}}},
	{"invalid escape", `add "\q"`,
		[]wantError{{"invalid escape sequence in double-quoted string", diag.Ranging{From: 4, To: 8}}}},
	{"character after quoted string", `add 'a'b`,
		[]wantError{{"unexpected character after quoted string", diag.Ranging{From: 7, To: 8}}}},
	{"multiple errors", "add 'a\nshow\nadd \"b",
		[]wantError{
			{"unterminated single-quoted string", diag.Ranging{From: 4, To: 6}},
			{"unterminated double-quoted string", diag.Ranging{From: 16, To: 18}},
		}},
	{"multiple errors on one line", `add "\q"; add 'y`,
		[]wantError{
			{"invalid escape sequence in double-quoted string", diag.Ranging{From: 4, To: 8}},
			{"unterminated single-quoted string", diag.Ranging{From: 14, To: 16}},
		}},
}

func TestParse_Errors(t *testing.T) {
	for _, test := range parseErrorTests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse(Source{Name: "[test]", Code: test.code})
			var got []wantError
			for _, e := range UnpackErrors(err) {
				if e.Type != ErrorType {
					t.Errorf("error has type %q, want %q", e.Type, ErrorType)
				}
				if e.Context.Name != "[test]" || e.Context.Source != test.code {
					t.Errorf("error has context name %q and source %q",
						e.Context.Name, e.Context.Source)
				}
				got = append(got, wantError{e.Message, e.Range()})
			}
			if diff := cmp.Diff(test.want, got, cmp.AllowUnexported(wantError{})); diff != "" {
				t.Errorf("Parse(%q) errors (-want +got):\n%s", test.code, diff)
			}
		})
	}
}

func TestParse_ErrorsSkipOnlyAffectedForms(t *testing.T) {
	chunk, err := Parse(Source{Name: "[test]", Code: "add 'a\nshow"})
	if err == nil {
		t.Fatalf("no error")
	}
	if diff := cmp.Diff([][]string{{"show"}}, formValues(chunk)); diff != "" {
		t.Errorf("forms after error (-want +got):\n%s", diff)
	}
}

func TestParse_ErrorsSkipToSemicolon(t *testing.T) {
	chunk, err := Parse(Source{Name: "[test]", Code: `add 'a'b c; show`})
	if err == nil {
		t.Fatalf("no error")
	}
	if diff := cmp.Diff([][]string{{"show"}}, formValues(chunk)); diff != "" {
		t.Errorf("forms after error (-want +got):\n%s", diff)
	}
}

func TestUnpackErrors_Nil(t *testing.T) {
	if UnpackErrors(nil) != nil {
		t.Errorf("UnpackErrors(nil) != nil")
	}
}
