package shell

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/elves/linkedlist/pkg/diag"
	"github.com/elves/linkedlist/pkg/eval"
	"github.com/elves/linkedlist/pkg/parse"
)

// Runs an interactive session, reading one chunk per line until the end of
// input.
func interact(ev *eval.Evaler, fds [3]*os.File) {
	ed := newMinEditor(fds[0], fds[2])
	cooldown := time.Second
	cmdNum := 0

	for {
		line, err := ed.ReadCode()
		if err != nil && err != io.EOF {
			fmt.Fprintln(fds[2], "Editor error:", err)
			fmt.Fprintln(fds[2], "Restarting editor in", cooldown)
			time.Sleep(cooldown)
			if cooldown < time.Minute {
				cooldown *= 2
			}
			continue
		}
		cooldown = time.Second

		if line != "" {
			cmdNum++
			if ev.Store != nil {
				if _, err := ev.Store.AddCmd(line); err != nil {
					logger.Println("failed to add command to history:", err)
				}
			}
			src := parse.Source{Name: fmt.Sprintf("[tty %v]", cmdNum), Code: line}
			duration, evalErr := evalTimed(ev, fds[1], src)
			logger.Printf("%s took %vs", src.Name, duration)
			if evalErr != nil {
				diag.ShowError(fds[2], evalErr)
			}
		}
		if err == io.EOF {
			if ed.showPrompt {
				fmt.Fprintln(fds[2])
			}
			return
		}
	}
}
