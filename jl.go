// Released under an MIT license. See LICENSE.

// Package jl is the embedding interface to the jl interpreter, a small
// s-expression language designed to be linked into a host program,
// extended with host-provided operations, and driven either from a REPL
// or programmatically.
package jl

import (
	"fmt"
	"io"
	"strings"

	"github.com/jl-lang/jl/internal/cell"
	"github.com/jl-lang/jl/internal/diag"
	"github.com/jl-lang/jl/internal/engine"
	"github.com/jl-lang/jl/internal/engine/commands"
	"github.com/jl-lang/jl/internal/reader/lexer"
	"github.com/jl-lang/jl/internal/reader/parser"
)

// Interpreter version.
const (
	VersionMajor = 0
	VersionMinor = 1

	Version = "0.1"
)

// Value is an opaque handle to a jl value. A nil Value is the language's
// none: it stands for both the absence of a value and false.
type Value = cell.T

// Diagnostic is one reported error: a kind, a source line, and a message.
type Diagnostic = diag.T

// Diagnostic kinds, for hosts that dispatch on the kind of failure.
const (
	ParseError    = diag.Parse
	UnboundError  = diag.Unbound
	ArgumentError = diag.Argument
	ArityError    = diag.Arity
	CallError     = diag.Call
)

// Func is a host operation. It receives the head cell of the invoking list
// (args names the operation; the unevaluated arguments follow via Next) and
// the cookie it was registered with. The returned value's single reference
// transfers to the caller.
type Func func(ctx *Context, args *Value, cookie interface{}) *Value

// Context is one interpreter instance. A context is a sequential object;
// two contexts are independent.
type Context struct {
	e *engine.Context
}

// NewContext creates a context whose root scope contains all built-ins.
func NewContext() *Context {
	c := &Context{e: engine.New()}

	for name, fn := range commands.Table() {
		fn := fn

		s := c.e.Heap().NewSpecial(func(args *Value) *Value {
			return fn(c.e, args)
		})

		c.e.Define(name, s)
		c.e.Release(s)
	}

	return c
}

// Close releases the context's current scope chain and the values its scopes
// hold. A scope that binds a lambda closing over that same scope (a
// recursive definition) is still referenced by the lambda and is not
// released.
func (c *Context) Close() {
	c.e.Close()
}

// Retain increments the reference count of v. Nil is tolerated.
func (c *Context) Retain(v *Value) {
	c.e.Retain(v)
}

// Release decrements the reference count of v, recycling it when the count
// reaches zero. Nil is tolerated.
func (c *Context) Release(v *Value) {
	c.e.Release(v)
}

// DefineValue binds name to v in the current scope.
func (c *Context) DefineValue(name string, v *Value) {
	c.e.Define(name, v)
}

// DefineSpecial registers a host operation under name in the current scope.
func (c *Context) DefineSpecial(name string, fn Func, cookie interface{}) {
	s := c.e.Heap().NewSpecial(func(args *Value) *Value {
		return fn(c, args, cookie)
	})

	c.e.Define(name, s)
	c.e.Release(s)
}

// DefineNumber builds a number and, if name is non-empty, binds it in the
// current scope. The returned value must be released if not used.
func (c *Context) DefineNumber(name string, x float64) *Value {
	v := c.e.NewNumber(x)

	if name != "" {
		c.e.Define(name, v)
	}

	return v
}

// NewString builds a string value. The returned value must be released if
// not used.
func (c *Context) NewString(s string) *Value {
	return c.e.NewString(s)
}

// Parse consumes one expression from src and returns it along with the
// unconsumed remainder. At end of input, or on a malformed expression
// (reported to the diagnostic sink), the value is nil.
func (c *Context) Parse(src string) (*Value, string) {
	l := lexer.New("jl", src, c.e.Line())
	p := parser.New(c.e.Heap(), c.e.Report, l)

	v := p.Parse()
	c.e.SetLine(l.Line())

	return v, src[l.Offset():]
}

// Evaluate reduces v and returns a retained result, which may be nil.
func (c *Context) Evaluate(v *Value) *Value {
	return c.e.Evaluate(v)
}

// EvaluateString parses and evaluates every expression in src and returns
// the last result. A buffer must contain complete expressions; the parser
// is not restartable on partial input.
func (c *Context) EvaluateString(src string) *Value {
	c.e.SetLine(1)

	var result *Value

	rest := src
	for strings.TrimSpace(rest) != "" {
		var v *Value

		v, rest = c.Parse(rest)
		if v != nil {
			c.Release(result)
			result = c.e.Evaluate(v)
			c.Release(v)
		}
	}

	return result
}

// Print writes the s-expression rendering of v to the standard sink.
// Nil prints as nil.
func (c *Context) Print(v *Value) {
	fmt.Fprint(c.e.Output(), v.Literal())
}

// Sprint returns the s-expression rendering of v.
func Sprint(v *Value) string {
	return v.Literal()
}

// SetOutput redirects the standard sink used by Print.
func (c *Context) SetOutput(w io.Writer) {
	c.e.SetOutput(w)
}

// Output returns the standard sink used by Print.
func (c *Context) Output() io.Writer {
	return c.e.Output()
}

// SetSink redirects diagnostics. The default sink renders them on stderr.
func (c *Context) SetSink(sink func(Diagnostic)) {
	c.e.SetSink(sink)
}

// Names returns the names visible from the current scope, sorted. The REPL
// uses this for completion.
func (c *Context) Names() []string {
	return c.e.Names()
}

// IsNumber reports whether v is a number. Nil is allowed.
func IsNumber(v *Value) bool {
	return v.Tag() == cell.Number
}

// IsString reports whether v is a string. Nil is allowed.
func IsString(v *Value) bool {
	return v.Tag() == cell.String
}

// IsList reports whether v is a list. Nil is allowed.
func IsList(v *Value) bool {
	return v.Tag() == cell.List
}

// GetNumber returns the numeric payload of a number value.
func GetNumber(v *Value) float64 {
	return v.Num()
}

// GetString returns the payload of a string value.
func GetString(v *Value) string {
	return v.Text()
}

// GetHead returns the first cell of a list value, possibly nil.
func GetHead(v *Value) *Value {
	return v.Head()
}

// GetNext returns the cell following v in its list chain, possibly nil.
func GetNext(v *Value) *Value {
	return v.Next()
}
