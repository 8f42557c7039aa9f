// Package progtest contains utilities for testing subprograms.
package progtest

import (
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/elves/linkedlist/pkg/must"
	"github.com/elves/linkedlist/pkg/prog"
)

// Case is a test case that can be used in Test.
type Case struct {
	args  []string
	stdin string
	want  result
}

type result struct {
	exitCode int
	stdout   output
	stderr   output
}

type output struct {
	content string
	partial bool
}

func (o output) String() string {
	if o.partial {
		return "text containing " + strconv.Quote(o.content)
	}
	return strconv.Quote(o.content)
}

// ThatLls returns a new Case with the specified CLI arguments.
//
// The new Case expects the program run to exit with 0, and write nothing to
// stdout or stderr.
//
// When combined with subsequent method calls, a test case reads like English.
// For example, a test for the fact that "lls -c hello" writes "hello\n" to
// stdout reads:
//
//	ThatLls("-c", "hello").WritesStdout("hello\n")
func ThatLls(args ...string) Case {
	return Case{args: append([]string{"lls"}, args...)}
}

// WithStdin returns an altered Case that provides the given input to stdin
// of the program.
func (c Case) WithStdin(s string) Case {
	c.stdin = s
	return c
}

// DoesNothing returns c itself. It is useful to mark tests that otherwise
// don't have any expectations, for example:
//
//	ThatLls("-c", "").DoesNothing()
func (c Case) DoesNothing() Case {
	return c
}

// ExitsWith returns an altered Case that requires the program run to return
// with the given exit code.
func (c Case) ExitsWith(code int) Case {
	c.want.exitCode = code
	return c
}

// WritesStdout returns an altered Case that requires the program run to write
// exactly the given text to stdout.
func (c Case) WritesStdout(s string) Case {
	c.want.stdout = output{content: s}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program run
// to write output to stdout that contains the given text as a substring.
func (c Case) WritesStdoutContaining(s string) Case {
	c.want.stdout = output{content: s, partial: true}
	return c
}

// WritesStderr returns an altered Case that requires the program run to write
// exactly the given text to stderr.
func (c Case) WritesStderr(s string) Case {
	c.want.stderr = output{content: s}
	return c
}

// WritesStderrContaining returns an altered Case that requires the program run
// to write output to stderr that contains the given text as a substring.
func (c Case) WritesStderrContaining(s string) Case {
	c.want.stderr = output{content: s, partial: true}
	return c
}

// Test runs test cases.
//
// For each test case, a new pair of pipes are created for stdout and stderr,
// and stdin is fed from a pipe holding the case's input. The program is run
// in the current process, and its outputs are compared with the expectations.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			t.Helper()
			r := run(p, c.args, c.stdin)
			if c.want.exitCode != r.exitCode {
				t.Errorf("got exit code %v, want %v", r.exitCode, c.want.exitCode)
			}
			if !matchOutput(r.stdout.content, c.want.stdout) {
				t.Errorf("got stdout %v, want %v", r.stdout, c.want.stdout)
			}
			if !matchOutput(r.stderr.content, c.want.stderr) {
				t.Errorf("got stderr %v, want %v", r.stderr, c.want.stderr)
			}
		})
	}
}

// Run runs a Program with the given arguments and stdin. It returns the exit
// code and the content of stdout and stderr.
func Run(p prog.Program, args []string, stdin string) (exit int, stdout, stderr string) {
	r := run(p, append([]string{"lls"}, args...), stdin)
	return r.exitCode, r.stdout.content, r.stderr.content
}

// RunWithStdin is like Run, but uses the given file as stdin and doesn't
// close it.
func RunWithStdin(p prog.Program, args []string, stdin *os.File) (exit int, stdout, stderr string) {
	r := runWithFile(p, append([]string{"lls"}, args...), stdin)
	return r.exitCode, r.stdout.content, r.stderr.content
}

func run(p prog.Program, args []string, stdin string) result {
	r0, w0 := must.Pipe()
	// Write stdin in a separate goroutine, so that large inputs don't block
	// waiting for the program to read them.
	go func() {
		w0.WriteString(stdin)
		w0.Close()
	}()
	defer r0.Close()
	return runWithFile(p, args, r0)
}

func runWithFile(p prog.Program, args []string, stdin *os.File) result {
	r1, w1 := must.Pipe()
	r2, w2 := must.Pipe()
	// Read stdout and stderr concurrently, so that programs writing more than
	// a pipe can buffer don't deadlock.
	stdoutCh := readAllAsync(r1)
	stderrCh := readAllAsync(r2)

	exitCode := prog.Run([3]*os.File{stdin, w1, w2}, args, p)
	w1.Close()
	w2.Close()
	return result{exitCode, output{content: <-stdoutCh}, output{content: <-stderrCh}}
}

func readAllAsync(r *os.File) <-chan string {
	ch := make(chan string, 1)
	go func() {
		ch <- string(must.ReadAllAndClose(r))
	}()
	return ch
}

func matchOutput(got string, want output) bool {
	if want.partial {
		return strings.Contains(got, want.content)
	}
	return got == want.content
}
