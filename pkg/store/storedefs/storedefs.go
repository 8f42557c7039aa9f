// Package storedefs contains definitions of the store API.
//
// It is a separate package so that packages that only depend on the store API
// does not need to depend on the concrete implementation.
package storedefs

import (
	"errors"

	"github.com/elves/linkedlist/pkg/list"
)

// ErrNoMatchingCmd is the error returned when a Cmd query completes with no
// result.
var ErrNoMatchingCmd = errors.New("no matching command line")

// ErrNoList is the error returned when a saved list doesn't exist.
var ErrNoList = errors.New("no such saved list")

// Store is an interface satisfied by the storage service.
type Store interface {
	NextCmdSeq() (int, error)
	AddCmd(text string) (int, error)
	Cmd(seq int) (string, error)
	CmdsWithSeq(from, upto int) ([]Cmd, error)

	SaveList(name string, l *list.List[string]) error
	List(name string) (*list.List[string], error)
	DelList(name string) error
	ListNames() ([]string, error)
}

// Cmd is an entry in the command history.
type Cmd struct {
	Text string
	Seq  int
}
