package shell

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/elves/linkedlist/pkg/prog"
)

// Settings that can be given in an rc file. Command-line flags take
// precedence over them.
type rcConfig struct {
	JSON bool   `toml:"json"`
	Load string `toml:"load"`
	DB   string `toml:"db"`
}

// Reads the rc file. Relative paths are resolved against the directory of the
// rc file.
func readRC(fname string) (*rcConfig, error) {
	var cfg rcConfig
	md, err := toml.DecodeFile(fname, &cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown keys: %v", undecoded)
	}
	dir := filepath.Dir(fname)
	for _, p := range []*string{&cfg.Load, &cfg.DB} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
	return &cfg, nil
}

// Applies the settings to f, skipping those whose flags were given on the
// command line.
func (cfg *rcConfig) applyTo(f *prog.Flags) {
	if !f.IsSet("json") {
		f.JSON = cfg.JSON
	}
	if !f.IsSet("load") {
		f.Load = cfg.Load
	}
	if !f.IsSet("db") {
		f.DB = cfg.DB
	}
}
