package buildinfo

import (
	"fmt"
	"os"
	"runtime"
	"testing"

	"github.com/elves/linkedlist/pkg/prog"
	"github.com/elves/linkedlist/pkg/prog/progtest"
)

var (
	Test    = progtest.Test
	ThatLls = progtest.ThatLls
)

func TestVersion(t *testing.T) {
	Test(t, Program,
		ThatLls("-version").WritesStdout(Version+VersionSuffix+"\n"),
	)
}

func TestBuildInfo(t *testing.T) {
	Test(t, Program,
		ThatLls("-buildinfo").WritesStdout(fmt.Sprintf(
			"Version: %v\nGo version: %v\nReproducible build: %v\n",
			Version+VersionSuffix, runtime.Version(), Reproducible)),
		ThatLls("-buildinfo", "-json").WritesStdout(fmt.Sprintf(
			`{"version":"%s","goversion":"%s","reproducible":%v}`+"\n",
			Version+VersionSuffix, runtime.Version(), Reproducible)),
	)
}

func TestNotSuitableWithoutFlags(t *testing.T) {
	Test(t, prog.Composite(Program, fallback{}),
		ThatLls().WritesStdout("fallback"),
	)
}

type fallback struct{}

func (fallback) Run(fds [3]*os.File, _ *prog.Flags, _ []string) error {
	fds[1].WriteString("fallback")
	return nil
}
