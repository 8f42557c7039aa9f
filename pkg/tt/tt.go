// Package tt supports table-driven tests with little boilerplate.
//
// A typical use looks like this:
//
//	tt.Test(t, tt.Fn(strings.Repeat).Named("Repeat"),
//		tt.It("repeats a string").Args("ab", 2).Rets("abab"),
//		tt.It("returns an empty string for 0 repetitions").Args("ab", 0).Rets(""),
//	)
//
// Return values are compared with [cmp.Equal] unless the expected value
// implements [Matcher]. Mismatches are reported as [cmp.Diff] output.
package tt

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// Case is a test case. It is created by It or Args, and offers setters that
// augment and return itself; those calls can be chained like
// It(...).Args(...).Rets(...).
type Case struct {
	desc         string
	args         []any
	retsMatchers [][]any
}

// It returns a new Case with the given description.
func It(desc string) *Case {
	return &Case{desc: desc}
}

// Args returns a new Case with the given arguments and no description.
func Args(args ...any) *Case {
	return &Case{args: args}
}

// Args modifies the test case to call the function with the given arguments.
// It returns the receiver.
func (c *Case) Args(args ...any) *Case {
	c.args = args
	return c
}

// Rets modifies the test case so that it requires the return values to match
// the given values. It returns the receiver. It can be called more than once,
// in which case all of the expectations must hold.
func (c *Case) Rets(matchers ...any) *Case {
	c.retsMatchers = append(c.retsMatchers, matchers)
	return c
}

// FnDescriptor describes a function to test.
type FnDescriptor struct {
	name    string
	body    any
	argsFmt string
	retsFmt string
}

// Fn makes a new FnDescriptor with the given function body. The name used in
// error messages is derived from the body and can be overridden with Named.
func Fn(body any) *FnDescriptor {
	return &FnDescriptor{name: funcName(body), body: body}
}

// Named sets the name of the function in test error messages, and returns
// fn itself.
func (fn *FnDescriptor) Named(name string) *FnDescriptor {
	fn.name = name
	return fn
}

// ArgsFmt sets the string for formatting arguments in test error messages,
// and returns fn itself.
func (fn *FnDescriptor) ArgsFmt(s string) *FnDescriptor {
	fn.argsFmt = s
	return fn
}

// RetsFmt sets the string for formatting return values in test error
// messages, and returns fn itself.
func (fn *FnDescriptor) RetsFmt(s string) *FnDescriptor {
	fn.retsFmt = s
	return fn
}

// T is the interface for accessing testing.T.
type T interface {
	Helper()
	Errorf(format string, args ...any)
}

// Test tests a function against test cases.
func Test(t T, fn *FnDescriptor, tests ...*Case) {
	t.Helper()
	for _, test := range tests {
		rets := call(fn.body, test.args)
		for _, retsMatcher := range test.retsMatchers {
			if match(retsMatcher, rets) {
				continue
			}
			var args string
			if fn.argsFmt == "" {
				args = sprintCommaDelimited(test.args...)
			} else {
				args = fmt.Sprintf(fn.argsFmt, test.args...)
			}
			var diff string
			if fn.retsFmt == "" {
				diff = cmp.Diff(forDiff(retsMatcher, rets), rets)
			} else {
				diff = cmp.Diff(
					fmt.Sprintf(fn.retsFmt, retsMatcher...),
					fmt.Sprintf(fn.retsFmt, rets...))
			}
			var prefix string
			if test.desc != "" {
				prefix = "It " + test.desc + ": "
			}
			t.Errorf("%s%s(%s) returns (-Wanted +Actual):\n%s", prefix, fn.name, args, diff)
		}
	}
}

// RetValue is an empty interface used in the Matcher interface.
type RetValue any

// Matcher wraps the Match method.
type Matcher interface {
	// Match reports whether a return value is considered a match. The argument
	// is of type RetValue so that it cannot be implemented accidentally.
	Match(RetValue) bool
}

// Any is a Matcher that matches any value.
var Any Matcher = anyMatcher{}

type anyMatcher struct{}

func (anyMatcher) Match(RetValue) bool { return true }

func (anyMatcher) String() string { return "tt.Any" }

func match(matchers, actual []any) bool {
	if len(matchers) != len(actual) {
		return false
	}
	for i, matcher := range matchers {
		if !matchOne(matcher, actual[i]) {
			return false
		}
	}
	return true
}

func matchOne(m, a any) bool {
	if m, ok := m.(Matcher); ok {
		return m.Match(a)
	}
	return cmp.Equal(m, a)
}

// Returns a copy of matchers suitable for passing to cmp.Diff. Matchers that
// match are replaced by the actual value so that they don't show up in the
// diff; the others are replaced by their string form.
func forDiff(matchers, actual []any) []any {
	result := make([]any, len(matchers))
	for i, m := range matchers {
		if matcher, ok := m.(Matcher); ok {
			if i < len(actual) && matcher.Match(actual[i]) {
				result[i] = actual[i]
			} else {
				result[i] = fmt.Sprint(matcher)
			}
		} else {
			result[i] = m
		}
	}
	return result
}

func sprintCommaDelimited(args ...any) string {
	var b strings.Builder
	for i, arg := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, arg)
	}
	return b.String()
}

func funcName(f any) string {
	v := reflect.ValueOf(f)
	if v.Kind() != reflect.Func {
		return "<not a function>"
	}
	name := runtime.FuncForPC(v.Pointer()).Name()
	if i := strings.LastIndexByte(name, '.'); i != -1 {
		name = name[i+1:]
	}
	return name
}

func call(fn any, args []any) []any {
	fnType := reflect.TypeOf(fn)
	argsReflect := make([]reflect.Value, len(args))
	for i, arg := range args {
		if arg == nil {
			// reflect.ValueOf(nil) returns a zero Value; use a zero Value of
			// the parameter type instead.
			argsReflect[i] = reflect.Zero(paramType(fnType, i))
		} else {
			argsReflect[i] = reflect.ValueOf(arg)
		}
	}
	retsReflect := reflect.ValueOf(fn).Call(argsReflect)
	rets := make([]any, len(retsReflect))
	for i, retReflect := range retsReflect {
		rets[i] = retReflect.Interface()
	}
	return rets
}

func paramType(fnType reflect.Type, i int) reflect.Type {
	if fnType.IsVariadic() && i >= fnType.NumIn()-1 {
		return fnType.In(fnType.NumIn() - 1).Elem()
	}
	return fnType.In(i)
}
