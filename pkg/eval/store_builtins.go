package eval

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/elves/linkedlist/pkg/store/storedefs"
)

var errNoStore = errors.New("no store; start lls with -db")

func (ev *Evaler) store() (storedefs.Store, error) {
	if ev.Store == nil {
		return nil, errNoStore
	}
	return ev.Store, nil
}

func save(ev *Evaler, _ io.Writer, args []string) error {
	st, err := ev.store()
	if err != nil {
		return err
	}
	return st.SaveList(args[0], ev.List)
}

func restore(ev *Evaler, _ io.Writer, args []string) error {
	st, err := ev.store()
	if err != nil {
		return err
	}
	l, err := st.List(args[0])
	if err != nil {
		return listError(err, args[0])
	}
	ev.List = l
	return nil
}

func forget(ev *Evaler, _ io.Writer, args []string) error {
	st, err := ev.store()
	if err != nil {
		return err
	}
	if err := st.DelList(args[0]); err != nil {
		return listError(err, args[0])
	}
	return nil
}

// Names the list in "no such saved list" errors, and passes on other errors
// from the store.
func listError(err error, name string) error {
	if errors.Is(err, storedefs.ErrNoList) {
		return fmt.Errorf("%w: %s", err, name)
	}
	return fmt.Errorf("cannot access saved list %s: %w", name, err)
}

func saved(ev *Evaler, out io.Writer, _ []string) error {
	st, err := ev.store()
	if err != nil {
		return err
	}
	names, err := st.ListNames()
	if err != nil {
		return err
	}
	for _, name := range names {
		if _, err := fmt.Fprintln(out, name); err != nil {
			return err
		}
	}
	return nil
}

func history(ev *Evaler, out io.Writer, _ []string) error {
	st, err := ev.store()
	if err != nil {
		return err
	}
	cmds, err := st.CmdsWithSeq(0, math.MaxInt)
	if err != nil {
		return err
	}
	for _, cmd := range cmds {
		if _, err := fmt.Fprintf(out, "%5d  %s\n", cmd.Seq, cmd.Text); err != nil {
			return err
		}
	}
	return nil
}
