// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/jl-lang/jl/internal/cell"
	"github.com/jl-lang/jl/internal/engine"
)

// ifForm evaluates its condition and then exactly one branch. A missing
// else branch yields nil.
func ifForm(ctx *engine.Context, args *cell.T) *cell.T {
	vp := args.Next()

	if vp == nil || vp.Next() == nil {
		return tooFewArguments(ctx, args)
	}

	if vp.Next().Next() != nil && vp.Next().Next().Next() != nil {
		return tooManyArguments(ctx, args)
	}

	if condition(ctx, vp) {
		return ctx.Evaluate(vp.Next())
	}

	return ctx.Evaluate(vp.Next().Next())
}

// begin evaluates its arguments in a fresh scope, releasing intermediate
// results, and returns the last. Definitions made inside are not visible
// after the scope is left.
func begin(ctx *engine.Context, args *cell.T) *cell.T {
	ctx.Enter()

	var result *cell.T

	for vp := args.Next(); vp != nil; vp = vp.Next() {
		ctx.Release(result)
		result = ctx.Evaluate(vp)
	}

	ctx.Leave()

	return result
}

// define binds its first argument, which must be a variable and is not
// evaluated, to the value of its second in the current scope.
func define(ctx *engine.Context, args *cell.T) *cell.T {
	vp := args.Next()

	if vp == nil || vp.Next() == nil {
		return tooFewArguments(ctx, args)
	}

	if vp.Next().Next() != nil {
		return tooManyArguments(ctx, args)
	}

	if vp.Tag() != cell.Variable {
		return invalidArgument(ctx, args)
	}

	result := ctx.Evaluate(vp.Next())
	ctx.Define(vp.Text(), result)

	return result
}

// lambda captures the current scope and returns a lambda holding the
// unevaluated parameter list and body chain.
func lambda(ctx *engine.Context, args *cell.T) *cell.T {
	vp := args.Next()

	if vp == nil || vp.Next() == nil {
		return tooFewArguments(ctx, args)
	}

	if vp.Tag() != cell.List {
		return invalidArgument(ctx, args)
	}

	captured := ctx.Scope()
	captured.Retain()
	ctx.Retain(vp)

	return ctx.Heap().NewLambda(captured, vp)
}
