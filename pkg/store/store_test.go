package store_test

import (
	"path/filepath"
	"slices"
	"testing"

	"github.com/elves/linkedlist/pkg/list"
	"github.com/elves/linkedlist/pkg/store"
	"github.com/elves/linkedlist/pkg/store/storedefs"
	"github.com/elves/linkedlist/pkg/testutil"
	"github.com/google/go-cmp/cmp"
)

func TestCmd(t *testing.T) {
	st := store.MustTempStore(t)

	startSeq, err := st.NextCmdSeq()
	if startSeq != 1 || err != nil {
		t.Errorf("st.NextCmdSeq() => (%v, %v), want (1, nil)", startSeq, err)
	}

	cmds := []string{"add a", "show", "remove a"}
	for i, cmd := range cmds {
		seq, err := st.AddCmd(cmd)
		if seq != startSeq+i || err != nil {
			t.Errorf("st.AddCmd(%q) => (%v, %v), want (%v, nil)", cmd, seq, err, startSeq+i)
		}
	}

	endSeq, err := st.NextCmdSeq()
	if wantedEndSeq := startSeq + len(cmds); endSeq != wantedEndSeq || err != nil {
		t.Errorf("st.NextCmdSeq() => (%v, %v), want (%v, nil)", endSeq, err, wantedEndSeq)
	}

	cmd, err := st.Cmd(2)
	if cmd != "show" || err != nil {
		t.Errorf("st.Cmd(2) => (%q, %v), want (%q, nil)", cmd, err, "show")
	}
	if _, err := st.Cmd(10); err != storedefs.ErrNoMatchingCmd {
		t.Errorf("st.Cmd(10) returns error %v, want ErrNoMatchingCmd", err)
	}

	got, err := st.CmdsWithSeq(2, 10)
	want := []storedefs.Cmd{{Text: "show", Seq: 2}, {Text: "remove a", Seq: 3}}
	if err != nil {
		t.Errorf("st.CmdsWithSeq returns error %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("st.CmdsWithSeq(2, 10) (-want +got):\n%s", diff)
	}
}

func TestList(t *testing.T) {
	st := store.MustTempStore(t)

	names, err := st.ListNames()
	if len(names) != 0 || err != nil {
		t.Errorf("st.ListNames() => (%v, %v), want (nil, nil)", names, err)
	}

	must(t, st.SaveList("b", list.From("x", "y")))
	must(t, st.SaveList("a", list.New[string]()))
	must(t, st.SaveList("b", list.From("z")))

	names, err = st.ListNames()
	if diff := cmp.Diff([]string{"a", "b"}, names); diff != "" || err != nil {
		t.Errorf("st.ListNames() returns error %v, diff (-want +got):\n%s", err, diff)
	}

	for name, want := range map[string][]string{"a": nil, "b": {"z"}} {
		l, err := st.List(name)
		if err != nil {
			t.Errorf("st.List(%q) returns error %v", name, err)
			continue
		}
		if diff := cmp.Diff(want, slices.Collect(l.All())); diff != "" {
			t.Errorf("st.List(%q) (-want +got):\n%s", name, diff)
		}
	}
	if _, err := st.List("c"); err != storedefs.ErrNoList {
		t.Errorf("st.List(%q) returns error %v, want ErrNoList", "c", err)
	}

	must(t, st.DelList("a"))
	if err := st.DelList("a"); err != storedefs.ErrNoList {
		t.Errorf("deleting a deleted list returns error %v, want ErrNoList", err)
	}
	names, _ = st.ListNames()
	if diff := cmp.Diff([]string{"b"}, names); diff != "" {
		t.Errorf("st.ListNames() after DelList (-want +got):\n%s", diff)
	}
}

func TestNewStore_PersistsAcrossOpens(t *testing.T) {
	dbname := filepath.Join(testutil.TempDir(t), "db")
	st, err := store.NewStore(dbname)
	if err != nil {
		t.Fatal(err)
	}
	must(t, st.SaveList("saved", list.From("a", "b")))
	st.AddCmd("show")
	must(t, st.Close())

	st, err = store.NewStore(dbname)
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()
	l, err := st.List("saved")
	if err != nil || l.String() != "[a b]" {
		t.Errorf("st.List after reopening => (%v, %v), want ([a b], nil)", l, err)
	}
	if seq, _ := st.NextCmdSeq(); seq != 2 {
		t.Errorf("st.NextCmdSeq after reopening => %v, want 2", seq)
	}
}

func TestNewStore_BadPath(t *testing.T) {
	_, err := store.NewStore(filepath.Join(testutil.TempDir(t), "nonexistent", "db"))
	if err == nil {
		t.Errorf("NewStore in a nonexistent directory returns nil error")
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}
