//go:build unix

package shell

import (
	"io"
	"testing"

	"github.com/creack/pty"
	"github.com/elves/linkedlist/pkg/prog/progtest"
)

func TestInteract_ShowsPromptOnTerminal(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skip("cannot open pty:", err)
	}
	defer ptmx.Close()
	defer tty.Close()
	// Drain the echo of the input.
	go io.Copy(io.Discard, ptmx)

	// A ^D at the start of a line is read as the end of input.
	if _, err := ptmx.WriteString("add a\nshow\n\x04"); err != nil {
		t.Fatal(err)
	}
	exit, stdout, stderr := progtest.RunWithStdin(&Program{}, nil, tty)

	if exit != 0 {
		t.Errorf("got exit %v, want 0", exit)
	}
	if stdout != "[a]\n" {
		t.Errorf("got stdout %q, want %q", stdout, "[a]\n")
	}
	if want := prompt + prompt + prompt + "\n"; stderr != want {
		t.Errorf("got stderr %q, want %q", stderr, want)
	}
}
