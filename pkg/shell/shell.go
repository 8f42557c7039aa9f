// Package shell is the entry point for the list shell.
package shell

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/elves/linkedlist/pkg/eval"
	"github.com/elves/linkedlist/pkg/logutil"
	"github.com/elves/linkedlist/pkg/parse"
	"github.com/elves/linkedlist/pkg/prog"
	"github.com/elves/linkedlist/pkg/store"
)

var logger = logutil.GetLogger("[shell] ")

// Program is the shell subprogram. It runs a script when given arguments,
// and an interactive session otherwise.
type Program struct{}

func (p *Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if f.RC != "" {
		cfg, err := readRC(f.RC)
		if err != nil {
			fmt.Fprintf(fds[2], "cannot read rc file %q: %v\n", f.RC, err)
			return prog.Exit(2)
		}
		cfg.applyTo(f)
	}

	ev := eval.NewEvaler()
	ev.JSON = f.JSON
	if f.Load != "" {
		if err := load(ev, f.Load); err != nil {
			fmt.Fprintf(fds[2], "cannot load %q: %v\n", f.Load, err)
			return prog.Exit(2)
		}
	}

	if f.DB != "" {
		st, err := store.NewStore(f.DB)
		if err != nil {
			fmt.Fprintf(fds[2], "cannot open database %q: %v\n", f.DB, err)
			return prog.Exit(2)
		}
		defer st.Close()
		ev.Store = st
	}

	if len(args) > 0 {
		exit := script(ev, fds, args, &scriptCfg{
			Cmd: f.CodeInArg, CompileOnly: f.CompileOnly, JSON: f.JSON})
		return prog.Exit(exit)
	}
	if f.CodeInArg {
		return prog.BadUsage("-c requires an argument")
	}
	interact(ev, fds)
	return nil
}

func load(ev *eval.Evaler, fname string) error {
	data, err := os.ReadFile(fname)
	if err != nil {
		return err
	}
	return ev.Load(data)
}

func evalTimed(ev *eval.Evaler, out io.Writer, src parse.Source) (float64, error) {
	start := time.Now()
	err := ev.Eval(src, out)
	return time.Since(start).Seconds(), err
}
