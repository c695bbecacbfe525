// Released under an MIT license. See LICENSE.

package engine

import (
	"github.com/jl-lang/jl/internal/cell"
	"github.com/jl-lang/jl/internal/diag"
)

// Evaluate reduces v in the context c and returns a retained result, which
// may be nil. Numbers, strings, lambdas, and specials evaluate to
// themselves; variables resolve against the current scope; lists apply
// their head to their tail. Nil evaluates to nil.
func (c *Context) Evaluate(v *cell.T) *cell.T {
	switch v.Tag() {
	case cell.Invalid:
		return nil
	case cell.Number, cell.String, cell.Lambda, cell.Special:
		c.heap.Retain(v)

		return v
	case cell.Variable:
		value, ok := c.Lookup(v.Text())
		if !ok {
			c.Errorf(diag.Unbound, "undefined: %s", v.Text())
		}

		return value
	case cell.List:
		return c.apply(v)
	}

	return nil
}

// apply evaluates the head of the list v and invokes the result on the
// remaining elements. Specials receive the unevaluated chain; lambdas are
// entered with their actuals evaluated left to right in the caller's scope.
func (c *Context) apply(v *cell.T) *cell.T {
	head := v.Head()
	if head == nil {
		// The empty list has nothing to call and evaluates to nil.
		return nil
	}

	op := c.Evaluate(head)

	var result *cell.T

	switch op.Tag() {
	case cell.Special:
		result = op.Invoke(head)
	case cell.Lambda:
		result = c.enter(op, head)
	default:
		c.Errorf(diag.Call, "invalid call to %s", head.Literal())
	}

	c.heap.Release(op)

	return result
}

// enter applies the lambda fn to the invocation whose head cell is head.
// The new scope's parent is the scope captured when the lambda was created,
// not the caller's current scope.
func (c *Context) enter(fn, head *cell.T) *cell.T {
	params := fn.Head()
	if params.Tag() != cell.List {
		c.Errorf(diag.Argument, "invalid argument to lambda")

		return nil
	}

	var actuals []*cell.T
	for a := head.Next(); a != nil; a = a.Next() {
		actuals = append(actuals, c.Evaluate(a))
	}

	caller := c.scope
	c.scope = c.heap.NewScope(fn.Scope())

	// Extra actuals are ignored; missing actuals bind to nil.
	i := 0

	for p := params.Head(); p != nil; p = p.Next() {
		var value *cell.T
		if i < len(actuals) {
			value = actuals[i]
		}

		if p.Tag() == cell.Variable {
			c.Define(p.Text(), value)
		} else {
			c.Errorf(diag.Argument, "invalid argument to lambda")
		}

		i++
	}

	for _, a := range actuals {
		c.heap.Release(a)
	}

	var result *cell.T

	for b := params.Next(); b != nil; b = b.Next() {
		c.heap.Release(result)
		result = c.Evaluate(b)
	}

	c.scope.Release()
	c.scope = caller

	return result
}
