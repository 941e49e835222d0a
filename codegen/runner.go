package codegen

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"sync"

	"go.uber.org/zap"
)

// Runner runs a generator executable to completion and hands back
// whatever it wrote to standard error.
type Runner interface {
	Run(ctx context.Context, dir, name string, args []string) (stderr []byte, err error)
}

// execRunner runs generators with os/exec. Executable lookups are
// cached per name for the lifetime of the runner.
type execRunner struct {
	mu    sync.Mutex
	paths map[string]lookupResult
}

type lookupResult struct {
	path string
	err  error
}

// NewRunner returns a Runner backed by the operating system.
func NewRunner() Runner {
	return &execRunner{paths: make(map[string]lookupResult)}
}

func (r *execRunner) lookup(name string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, ok := r.paths[name]
	if !ok {
		res.path, res.err = exec.LookPath(name)
		r.paths[name] = res
	}
	return res.path, res.err
}

// Run blocks until the generator exits. The process runs in dir so
// relative paths in its arguments land where the config declared them.
// Standard output passes through to the caller's terminal; standard
// error is captured for diagnostics.
func (r *execRunner) Run(ctx context.Context, dir, name string, args []string) ([]byte, error) {
	path, err := r.lookup(name)
	if err != nil {
		return nil, err
	}

	var errBuf bytes.Buffer
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = &errBuf

	zap.S().Debugw("running generator", "path", path, "args", args, "dir", dir)
	err = cmd.Run()
	return errBuf.Bytes(), err
}
