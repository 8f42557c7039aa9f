// Package diag contains building blocks for formatting and processing
// diagnostic information.
package diag

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Context is a range of text in a source code. It is typically used for
// errors that can be associated with a part of the source code, like parse
// errors.
type Context struct {
	Name   string
	Source string
	Ranging
}

// NewContext creates a new Context.
func NewContext(name, source string, r Ranger) *Context {
	return &Context{name, source, r.Range()}
}

// Variables controlling the style of the culprit.
var (
	culpritStart       = "\033[1;4m"
	culpritEnd         = "\033[m"
	culpritPlaceHolder = "^"
)

// Position returns the 1-based line and column numbers of the start of the
// range. The column is counted in codepoints.
func (c *Context) Position() (line, col int) {
	before := c.Source[:c.From]
	return strings.Count(before, "\n") + 1, utf8.RuneCountInString(lastLine(before)) + 1
}

// Describe returns "name:line:col", or a description of the problem if the
// range is invalid.
func (c *Context) Describe() string {
	if err := c.checkPosition(); err != nil {
		return err.Error()
	}
	line, col := c.Position()
	return fmt.Sprintf("%s:%d:%d", c.Name, line, col)
}

// Show shows the context on one line, prefixed by its position. If the
// culprit spans multiple lines, the following lines are indented to line up
// with the first, with indent prepended.
func (c *Context) Show(indent string) string {
	if err := c.checkPosition(); err != nil {
		return err.Error()
	}
	desc := c.Describe() + ": "
	descIndent := strings.Repeat(" ", utf8.RuneCountInString(desc))

	var sb strings.Builder
	sb.WriteString(desc)
	sb.WriteString(lastLine(c.Source[:c.From]))

	culprit := strings.TrimSuffix(c.Source[c.From:c.To], "\n")
	if culprit == "" {
		culprit = culpritPlaceHolder
	}
	for i, line := range strings.Split(culprit, "\n") {
		if i > 0 {
			sb.WriteString("\n" + indent + descIndent)
		}
		sb.WriteString(culpritStart + line + culpritEnd)
	}

	if !strings.HasSuffix(c.Source[c.From:c.To], "\n") {
		sb.WriteString(firstLine(c.Source[c.To:]))
	}
	return sb.String()
}

func (c *Context) checkPosition() error {
	if c.From < 0 || c.To > len(c.Source) || c.From > c.To {
		return fmt.Errorf("%s, invalid position %d-%d", c.Name, c.From, c.To)
	}
	return nil
}

func firstLine(s string) string {
	i := strings.IndexByte(s, '\n')
	if i == -1 {
		return s
	}
	return s[:i]
}

func lastLine(s string) string {
	// When s does not contain '\n', LastIndexByte returns -1, which happens to
	// be what we want.
	return s[strings.LastIndexByte(s, '\n')+1:]
}
