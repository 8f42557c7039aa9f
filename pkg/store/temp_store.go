package store

import (
	"path/filepath"

	"github.com/elves/linkedlist/pkg/must"
	"github.com/elves/linkedlist/pkg/testutil"
)

// MustTempStore returns a Store backed by a file in a temporary directory.
// The Store is closed and the directory removed when the test finishes.
func MustTempStore(c testutil.Cleanuper) DBStore {
	st := must.OK1(NewStore(filepath.Join(testutil.TempDir(c), "db")))
	c.Cleanup(func() { st.Close() })
	return st
}
