package eval

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

type builtin struct {
	// Range of the number of arguments; a negative maxArgs means no upper
	// bound.
	minArgs, maxArgs int
	fn               func(ev *Evaler, out io.Writer, args []string) error
	usage            string
}

func (b builtin) arity() string {
	switch {
	case b.maxArgs < 0:
		return fmt.Sprintf("%d or more arguments", b.minArgs)
	case b.maxArgs == 0:
		return "no arguments"
	case b.minArgs == 1 && b.maxArgs == 1:
		return "1 argument"
	default:
		return fmt.Sprintf("%d to %d arguments", b.minArgs, b.maxArgs)
	}
}

var builtins map[string]builtin

func init() {
	builtins = map[string]builtin{
		"add":     {1, -1, add, "add value...: append values to the list"},
		"prepend": {1, 1, prepend, "prepend value: insert a value at the front of the list"},
		"remove":  {1, 1, remove, "remove value: remove the first occurrence of a value and print whether one was found"},
		"show":    {0, 0, show, "show: print the list"},
		"len":     {0, 0, length, "len: print the number of elements"},
		"dump":    {0, 0, dump, "dump: print the list as YAML"},
		"help":    {0, 0, help, "help: print the names of all commands"},

		"save":    {1, 1, save, "save name: save the list under a name"},
		"restore": {1, 1, restore, "restore name: replace the list with a saved one"},
		"forget":  {1, 1, forget, "forget name: delete a saved list"},
		"saved":   {0, 0, saved, "saved: print the names of saved lists"},
		"history": {0, 0, history, "history: print the command history"},
	}
}

// Usage returns a one-line description of a builtin command.
func Usage(name string) (string, bool) {
	b, ok := builtins[name]
	return b.usage, ok
}

// BuiltinNames returns the names of all builtin commands, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func add(ev *Evaler, _ io.Writer, args []string) error {
	for _, arg := range args {
		ev.List.Add(arg)
	}
	return nil
}

func prepend(ev *Evaler, _ io.Writer, args []string) error {
	ev.List.Prepend(args[0])
	return nil
}

func remove(ev *Evaler, out io.Writer, args []string) error {
	_, err := fmt.Fprintln(out, ev.List.Remove(args[0]))
	return err
}

func show(ev *Evaler, out io.Writer, _ []string) error {
	if ev.JSON {
		data, err := json.Marshal(ev.List)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "%s\n", data)
		return err
	}
	_, err := fmt.Fprintln(out, ev.List)
	return err
}

func length(ev *Evaler, out io.Writer, _ []string) error {
	_, err := fmt.Fprintln(out, ev.List.Len())
	return err
}

func dump(ev *Evaler, out io.Writer, _ []string) error {
	data, err := yaml.Marshal(ev.List)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

func help(_ *Evaler, out io.Writer, _ []string) error {
	_, err := fmt.Fprintln(out, "commands:", strings.Join(BuiltinNames(), " "))
	return err
}
