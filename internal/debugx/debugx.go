// Package debugx provides goroutine dumps on demand for diagnosing a wedged
// process, such as a provisioning run stuck on an external collaborator.
package debugx

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/pprof"
	"time"

	"github.com/james-lawrence/keystoregen/internal/errorsx"
	"github.com/pkg/errors"
)

func genDst() (path string, dst io.WriteCloser) {
	t := time.Now()
	path = filepath.Join(os.TempDir(), fmt.Sprintf("%s-%s-%d.trace", filepath.Base(os.Args[0]), t.Format("2006-01-02"), t.Unix()))

	dst, err := os.Create(path)
	if err != nil {
		log.Println(errors.Wrapf(err, "failed to open file: %s", path))
		log.Println("routine dump falling back to stderr")
		return "stderr", writeNopCloser{os.Stderr}
	}

	return path, dst
}

// DumpRoutines writes current goroutine stack traces to a temp file
// and returns that files path. if for some reason a file could not be opened
// it falls back to stderr.
func DumpRoutines() (path string, err error) {
	var (
		dst io.WriteCloser
	)

	path, dst = genDst()
	err = pprof.Lookup("goroutine").WriteTo(dst, 1)
	return path, errorsx.Compact(err, dst.Close())
}

// DumpOnSignal writes goroutine stacks whenever one of the provided
// signals is received.
func DumpOnSignal(ctx context.Context, sigs ...os.Signal) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, sigs...)
	defer signal.Stop(signals)

	for {
		select {
		case <-ctx.Done():
			return
		case <-signals:
			if path, err := DumpRoutines(); err == nil {
				log.Println("dump located at:", path)
			} else {
				log.Println(errors.Wrap(err, "failed to dump routines"))
			}
		}
	}
}

type writeNopCloser struct {
	io.Writer
}

func (t writeNopCloser) Close() error { return nil }
