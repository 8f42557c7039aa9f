package diag

import (
	"fmt"

	"github.com/elves/linkedlist/pkg/strutil"
)

// Error represents an error with context that can be showed.
type Error struct {
	Type    string
	Message string
	Context Context
}

// Variables controlling the style of the message in Show.
var (
	messageStart = "\033[31;1m"
	messageEnd   = "\033[m"
)

// Error returns a plain text representation of the error.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Type, e.Context.Describe(), e.Message)
}

// Range returns the range of the error.
func (e *Error) Range() Ranging {
	return e.Context.Range()
}

// Show shows the error.
func (e *Error) Show(indent string) string {
	return fmt.Sprintf("%s: %s%s%s\n%s  %s",
		strutil.Title(e.Type), messageStart, e.Message, messageEnd,
		indent, e.Context.Show(indent+"  "))
}
