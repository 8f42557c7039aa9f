package shell

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/elves/linkedlist/pkg/diag"
	"github.com/elves/linkedlist/pkg/eval"
	"github.com/elves/linkedlist/pkg/parse"
)

// How to run a script or code from -c.
type scriptCfg struct {
	Cmd         bool
	CompileOnly bool
	JSON        bool
}

// Runs the list commands in args[0], which is a file name or, with -c, the
// code itself. Further arguments are ignored. It returns the exit status.
func script(ev *eval.Evaler, fds [3]*os.File, args []string, cfg *scriptCfg) int {
	if len(args) > 1 {
		logger.Println("ignoring extra arguments", args[1:])
	}
	src, err := scriptSource(args[0], cfg.Cmd)
	if err != nil {
		fmt.Fprintln(fds[2], err)
		return 2
	}

	if !cfg.CompileOnly {
		duration, err := evalTimed(ev, fds[1], src)
		logger.Printf("%s took %vs", src.Name, duration)
		if err != nil {
			diag.ShowError(fds[2], err)
			return 2
		}
		return 0
	}

	parseErr, compileErr := ev.Check(src)
	if cfg.JSON {
		fmt.Fprintf(fds[1], "%s\n", errorsToJSON(parseErr, compileErr))
	} else {
		showErrors(fds[2], parseErr, compileErr)
	}
	if parseErr != nil || compileErr != nil {
		return 2
	}
	return 0
}

func scriptSource(arg string, inArg bool) (parse.Source, error) {
	if inArg {
		return parse.Source{Name: "code from -c", Code: arg}, nil
	}
	path, err := filepath.Abs(arg)
	if err != nil {
		return parse.Source{}, fmt.Errorf("cannot get full path of script %q: %w", arg, err)
	}
	code, err := readFileUTF8(path)
	if err != nil {
		return parse.Source{}, fmt.Errorf("cannot read script %q: %w", path, err)
	}
	return parse.Source{Name: path, Code: code, IsFile: true}, nil
}

func showErrors(w io.Writer, errs ...error) {
	for _, err := range errs {
		if err != nil {
			diag.ShowError(w, err)
		}
	}
}

var errSourceNotUTF8 = errors.New("source is not UTF-8")

func readFileUTF8(fname string) (string, error) {
	bytes, err := os.ReadFile(fname)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(bytes) {
		return "", errSourceNotUTF8
	}
	return string(bytes), nil
}

// One parse or compilation error in the output of -compileonly -json. Offsets
// are in bytes.
type jsonError struct {
	FileName string `json:"fileName"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Message  string `json:"message"`
}

// Converts parse and compilation errors into a JSON array, which is empty
// when there are no errors.
func errorsToJSON(parseErr, compileErr error) []byte {
	errs := append(parse.UnpackErrors(parseErr), eval.UnpackCompilationErrors(compileErr)...)
	converted := make([]jsonError, len(errs))
	for i, e := range errs {
		converted[i] = jsonError{e.Context.Name, e.Context.From, e.Context.To, e.Message}
	}
	data, err := json.Marshal(converted)
	if err != nil {
		return []byte(`[{"message":"cannot convert errors to JSON"}]`)
	}
	return data
}
