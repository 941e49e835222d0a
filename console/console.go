// Package console implements the terminal status sink commands use to
// report per-project progress.
package console

import (
	"fmt"
	"io"
)

// Console reports the lifecycle of long-running work to the user.
type Console interface {
	// Start reports that a unit of work has begun.
	Start(msg string)

	// Succeed reports that the most recently started work finished.
	Succeed(msg string)

	// Info reports a neutral notice.
	Info(msg string)

	// Warn reports a non-fatal diagnostic.
	Warn(msg string)
}

type writerConsole struct {
	w io.Writer
}

// New returns a Console that writes status lines to w.
func New(w io.Writer) Console { return &writerConsole{w: w} }

func (c *writerConsole) Start(msg string)   { fmt.Fprintf(c.w, "… %s\n", msg) }
func (c *writerConsole) Succeed(msg string) { fmt.Fprintf(c.w, "✔ %s\n", msg) }
func (c *writerConsole) Info(msg string)    { fmt.Fprintf(c.w, "ℹ %s\n", msg) }
func (c *writerConsole) Warn(msg string)    { fmt.Fprintf(c.w, "⚠ %s\n", msg) }
