// Package eval evaluates lls code. Each form of the code invokes a builtin
// command that operates on a list of strings.
package eval

import (
	"fmt"
	"io"

	"github.com/elves/linkedlist/pkg/diag"
	"github.com/elves/linkedlist/pkg/errutil"
	"github.com/elves/linkedlist/pkg/list"
	"github.com/elves/linkedlist/pkg/logutil"
	"github.com/elves/linkedlist/pkg/parse"
	"github.com/elves/linkedlist/pkg/store/storedefs"
	"gopkg.in/yaml.v3"
)

var logger = logutil.GetLogger("[eval] ")

const (
	// CompilationErrorType is the value of the Type field of errors about
	// forms that can't be evaluated.
	CompilationErrorType = "compilation error"
	// RuntimeErrorType is the value of the Type field of errors from
	// commands that failed.
	RuntimeErrorType = "runtime error"
)

// Evaler keeps the state of an lls session. It is not safe for concurrent
// use.
type Evaler struct {
	// The list all commands operate on.
	List *list.List[string]
	// Whether the show command writes JSON.
	JSON bool
	// Storage for saved lists and the command history. Commands that need it
	// fail when it is nil.
	Store storedefs.Store
}

// NewEvaler creates a new Evaler with an empty list.
func NewEvaler() *Evaler {
	return &Evaler{List: list.New[string]()}
}

// Load replaces the content of the list with a YAML sequence.
func (ev *Evaler) Load(data []byte) error {
	return yaml.Unmarshal(data, ev.List)
}

// Check parses and checks the source without evaluating it. It returns the
// parse and compilation errors, each of which is nil or can be passed to
// parse.UnpackErrors or UnpackCompilationErrors respectively.
func (ev *Evaler) Check(src parse.Source) (parseErr, compileErr error) {
	chunk, parseErr := parse.Parse(src)
	return parseErr, compile(src, chunk)
}

// Eval parses, checks and evaluates the source, writing output to out. If
// there are any parse or compilation errors, nothing is evaluated. Otherwise
// forms are evaluated in order until one fails.
func (ev *Evaler) Eval(src parse.Source, out io.Writer) error {
	chunk, parseErr := parse.Parse(src)
	if err := errutil.Multi(parseErr, compile(src, chunk)); err != nil {
		return err
	}
	for _, form := range chunk.Forms {
		args := wordValues(form.Args)
		logger.Printf("%s: %s %q", src.Name, form.Head.Value, args)
		err := builtins[form.Head.Value].fn(ev, out, args)
		if err != nil {
			return &diag.Error{
				Type:    RuntimeErrorType,
				Message: err.Error(),
				Context: *diag.NewContext(src.Name, src.Code, form),
			}
		}
	}
	return nil
}

// UnpackCompilationErrors returns the constituent *diag.Error values of a
// compilation error returned by Check.
func UnpackCompilationErrors(err error) []*diag.Error {
	var errs []*diag.Error
	for _, e := range errutil.Unpack(err) {
		if de, ok := e.(*diag.Error); ok && de.Type == CompilationErrorType {
			errs = append(errs, de)
		}
	}
	return errs
}

func compile(src parse.Source, chunk *parse.Chunk) error {
	var errs []error
	compileError := func(r diag.Ranger, format string, args ...any) {
		errs = append(errs, &diag.Error{
			Type:    CompilationErrorType,
			Message: fmt.Sprintf(format, args...),
			Context: *diag.NewContext(src.Name, src.Code, r),
		})
	}
	for _, form := range chunk.Forms {
		name := form.Head.Value
		b, ok := builtins[name]
		if !ok {
			compileError(form.Head, "unknown command: %s", name)
			continue
		}
		if n := len(form.Args); n < b.minArgs || (b.maxArgs >= 0 && n > b.maxArgs) {
			compileError(form, "arity mismatch: %s takes %s, got %d", name, b.arity(), n)
		}
	}
	return errutil.Multi(errs...)
}

func wordValues(words []*parse.Word) []string {
	values := make([]string, len(words))
	for i, w := range words {
		values[i] = w.Value
	}
	return values
}
