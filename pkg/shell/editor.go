package shell

import (
	"bufio"
	"io"
	"os"

	"github.com/elves/linkedlist/pkg/strutil"
	"github.com/elves/linkedlist/pkg/sys"
)

const prompt = "lls> "

// A line reader that shows a prompt only when the input is a terminal.
type minEditor struct {
	in         *bufio.Reader
	out        io.Writer
	showPrompt bool
}

func newMinEditor(in, out *os.File) *minEditor {
	return &minEditor{bufio.NewReader(in), out, sys.IsATTY(in)}
}

// ReadCode reads one line. At the end of input, it returns the last
// unterminated line, if any, together with io.EOF.
func (ed *minEditor) ReadCode() (string, error) {
	if ed.showPrompt {
		io.WriteString(ed.out, prompt)
	}
	line, err := ed.in.ReadString('\n')
	return strutil.ChopLineEnding(line), err
}
