// Lls is a small shell for a singly linked list of strings. It reads commands
// like "add", "prepend", "remove" and "show" from a script, the command line
// or an interactive session. With -lsp, it runs a language server for lls
// scripts instead.
package main

import (
	"os"

	"github.com/elves/linkedlist/pkg/buildinfo"
	"github.com/elves/linkedlist/pkg/lsp"
	"github.com/elves/linkedlist/pkg/prog"
	"github.com/elves/linkedlist/pkg/shell"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(buildinfo.Program, lsp.Program, &shell.Program{})))
}
