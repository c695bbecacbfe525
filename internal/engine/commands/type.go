// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/jl-lang/jl/internal/cell"
	"github.com/jl-lang/jl/internal/engine"
)

// predicate evaluates the single argument and reports whether its tag is
// want.
func predicate(ctx *engine.Context, args *cell.T, want cell.Tag) *cell.T {
	if args.Next() == nil {
		return tooFewArguments(ctx, args)
	}

	if args.Next().Next() != nil {
		return tooManyArguments(ctx, args)
	}

	arg := ctx.Evaluate(args.Next())

	var result *cell.T
	if arg.Tag() == want {
		result = one(ctx)
	}

	ctx.Release(arg)

	return result
}

func isNumber(ctx *engine.Context, args *cell.T) *cell.T {
	return predicate(ctx, args, cell.Number)
}

func isString(ctx *engine.Context, args *cell.T) *cell.T {
	return predicate(ctx, args, cell.String)
}

func isList(ctx *engine.Context, args *cell.T) *cell.T {
	return predicate(ctx, args, cell.List)
}

func isNull(ctx *engine.Context, args *cell.T) *cell.T {
	if args.Next() == nil {
		return tooFewArguments(ctx, args)
	}

	if args.Next().Next() != nil {
		return tooManyArguments(ctx, args)
	}

	arg := ctx.Evaluate(args.Next())
	if arg == nil {
		return one(ctx)
	}

	ctx.Release(arg)

	return nil
}
