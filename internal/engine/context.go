// Released under an MIT license. See LICENSE.

// Package engine provides the jl context and the evaluator.
package engine

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/jl-lang/jl/internal/cell"
	"github.com/jl-lang/jl/internal/diag"
)

// Context is one interpreter instance. It owns the heap and its free-list,
// the current scope, the diagnostic sink, and the line counter maintained by
// the parser. A context is a sequential object: all operations on it are
// serialized by the caller.
type Context struct {
	heap  *cell.Heap
	scope *cell.Scope
	sink  diag.Sink
	out   io.Writer
	line  int
}

// New creates a context with an empty root scope. Diagnostics go to stderr
// and printed output to stdout until the host says otherwise.
func New() *Context {
	h := cell.NewHeap()

	return &Context{
		heap:  h,
		scope: h.NewScope(nil),
		sink:  diag.Writer(os.Stderr),
		out:   os.Stdout,
		line:  1,
	}
}

// Close releases the current scope chain. The context must not be used
// afterwards.
func (c *Context) Close() {
	c.scope.Release()
	c.scope = nil
}

// Heap returns the context's heap.
func (c *Context) Heap() *cell.Heap {
	return c.heap
}

// Scope returns the current scope.
func (c *Context) Scope() *cell.Scope {
	return c.scope
}

// Enter pushes a fresh scope whose parent is the current scope.
func (c *Context) Enter() {
	c.scope = c.heap.NewScope(c.scope)
}

// Leave pops the current scope. The popped scope is released; it persists
// only while a lambda closes over it.
func (c *Context) Leave() {
	popped := c.scope
	c.scope = popped.Parent()
	popped.Release()
}

// Define binds name to value in the current scope, retaining value.
func (c *Context) Define(name string, value *cell.T) {
	c.scope.Define(name, value)
}

// Lookup resolves name against the current scope chain. The returned value
// is retained for the caller; ok reports whether the name was bound at all.
func (c *Context) Lookup(name string) (value *cell.T, ok bool) {
	value, ok = c.scope.Lookup(name)
	c.heap.Retain(value)

	return value, ok
}

// Names returns the names visible from the current scope, deduplicated and
// sorted. The REPL uses this for completion.
func (c *Context) Names() []string {
	all := c.scope.Names(nil)

	seen := make(map[string]struct{}, len(all))
	names := all[:0]

	for _, name := range all {
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}

	sort.Strings(names)

	return names
}

// Retain increments the reference count of v. Nil is tolerated.
func (c *Context) Retain(v *cell.T) {
	c.heap.Retain(v)
}

// Release decrements the reference count of v. Nil is tolerated.
func (c *Context) Release(v *cell.T) {
	c.heap.Release(v)
}

// NewNumber creates a Number cell.
func (c *Context) NewNumber(f float64) *cell.T {
	return c.heap.NewNumber(f)
}

// NewString creates a String cell.
func (c *Context) NewString(s string) *cell.T {
	return c.heap.NewString(s)
}

// Errorf reports a diagnostic of kind k at the current line.
func (c *Context) Errorf(k diag.Kind, format string, args ...interface{}) {
	c.sink(diag.T{Kind: k, Line: c.line, Text: fmt.Sprintf(format, args...)})
}

// Report forwards the diagnostic d to the sink.
func (c *Context) Report(d diag.T) {
	c.sink(d)
}

// SetSink replaces the diagnostic sink.
func (c *Context) SetSink(sink diag.Sink) {
	c.sink = sink
}

// Output returns the standard sink for printed values.
func (c *Context) Output() io.Writer {
	return c.out
}

// SetOutput replaces the standard sink for printed values.
func (c *Context) SetOutput(w io.Writer) {
	c.out = w
}

// Line returns the parser's current line number.
func (c *Context) Line() int {
	return c.line
}

// SetLine sets the parser's current line number.
func (c *Context) SetLine(line int) {
	if line < 1 {
		line = 1
	}

	c.line = line
}
