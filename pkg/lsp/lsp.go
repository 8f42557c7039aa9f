// Package lsp implements a language server for lls code.
package lsp

import (
	"context"
	"io"
	"os"

	"github.com/elves/linkedlist/pkg/logutil"
	"github.com/elves/linkedlist/pkg/prog"
	"github.com/sourcegraph/jsonrpc2"
)

var logger = logutil.GetLogger("[lsp] ")

// Program is the LSP subprogram.
var Program prog.Program = program{}

type program struct{}

func (program) Run(fds [3]*os.File, f *prog.Flags, _ []string) error {
	if !f.LSP {
		return prog.ErrNotSuitable
	}
	<-serve(context.Background(), transport{fds[0], fds[1]}).DisconnectNotify()
	return nil
}

// Starts serving on a connection, and returns the connection.
func serve(ctx context.Context, rwc io.ReadWriteCloser) *jsonrpc2.Conn {
	s := newServer()
	return jsonrpc2.NewConn(ctx,
		jsonrpc2.NewBufferedStream(rwc, jsonrpc2.VSCodeObjectCodec{}),
		handler(s))
}

type transport struct{ in, out *os.File }

func (c transport) Read(p []byte) (int, error)  { return c.in.Read(p) }
func (c transport) Write(p []byte) (int, error) { return c.out.Write(p) }

func (c transport) Close() error {
	if err := c.in.Close(); err != nil {
		c.out.Close()
		return err
	}
	return c.out.Close()
}
