// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/jl-lang/jl/internal/cell"
	"github.com/jl-lang/jl/internal/engine"
)

// and evaluates its arguments in order and stops at the first falsy one.
func and(ctx *engine.Context, args *cell.T) *cell.T {
	for vp := args.Next(); vp != nil; vp = vp.Next() {
		if !condition(ctx, vp) {
			return nil
		}
	}

	return one(ctx)
}

// or evaluates its arguments in order and stops at the first truthy one.
func or(ctx *engine.Context, args *cell.T) *cell.T {
	for vp := args.Next(); vp != nil; vp = vp.Next() {
		if condition(ctx, vp) {
			return one(ctx)
		}
	}

	return nil
}

func not(ctx *engine.Context, args *cell.T) *cell.T {
	if args.Next() == nil {
		return tooFewArguments(ctx, args)
	}

	if args.Next().Next() != nil {
		return tooManyArguments(ctx, args)
	}

	if !condition(ctx, args.Next()) {
		return one(ctx)
	}

	return nil
}
