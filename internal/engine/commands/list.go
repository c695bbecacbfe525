// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/jl-lang/jl/internal/cell"
	"github.com/jl-lang/jl/internal/engine"
)

// makeList evaluates each argument and builds a list of detached copies.
// With no arguments it yields nil, not the empty list. An argument that
// evaluates to nil contributes no slot.
func makeList(ctx *engine.Context, args *cell.T) *cell.T {
	if args.Next() == nil {
		return nil
	}

	var head, tail *cell.T

	for vp := args.Next(); vp != nil; vp = vp.Next() {
		arg := ctx.Evaluate(vp)
		if arg == nil {
			continue
		}

		e := ctx.Heap().Copy(arg)
		ctx.Release(arg)

		if head == nil {
			head = e
		} else {
			tail.SetNext(e)
		}

		tail = e
	}

	return ctx.Heap().NewList(head)
}

// cons prepends a detached copy of its first argument to the chain of its
// second, which must be a list or nil. The chain is shared, not copied.
func cons(ctx *engine.Context, args *cell.T) *cell.T {
	if args.Next() == nil || args.Next().Next() == nil {
		return tooFewArguments(ctx, args)
	}

	if args.Next().Next().Next() != nil {
		return tooManyArguments(ctx, args)
	}

	rest := ctx.Evaluate(args.Next().Next())
	if rest != nil && rest.Tag() != cell.List {
		ctx.Release(rest)

		return invalidArgument(ctx, args)
	}

	temp := ctx.Evaluate(args.Next())
	head := ctx.Heap().Copy(temp)
	ctx.Release(temp)

	if head == nil {
		ctx.Release(rest)

		return invalidArgument(ctx, args)
	}

	if rest != nil {
		head.SetNext(rest.Head())
		ctx.Retain(rest.Head())
		ctx.Release(rest)
	}

	return ctx.Heap().NewList(head)
}

// head returns the first cell of a list, retained in place; its chain stays
// owned by the list. An empty list yields nil.
func head(ctx *engine.Context, args *cell.T) *cell.T {
	if args.Next() == nil {
		return tooFewArguments(ctx, args)
	}

	if args.Next().Next() != nil {
		return tooManyArguments(ctx, args)
	}

	vp := ctx.Evaluate(args.Next())
	if vp.Tag() != cell.List {
		ctx.Release(vp)

		return invalidArgument(ctx, args)
	}

	result := vp.Head()
	ctx.Retain(result)
	ctx.Release(vp)

	return result
}

// rest returns a list wrapping the tail chain, or nil if there is no tail.
func rest(ctx *engine.Context, args *cell.T) *cell.T {
	if args.Next() == nil {
		return tooFewArguments(ctx, args)
	}

	if args.Next().Next() != nil {
		return tooManyArguments(ctx, args)
	}

	vp := ctx.Evaluate(args.Next())
	if vp.Tag() != cell.List {
		ctx.Release(vp)

		return invalidArgument(ctx, args)
	}

	var result *cell.T

	if vp.Head() != nil && vp.Head().Next() != nil {
		ctx.Retain(vp.Head().Next())
		result = ctx.Heap().NewList(vp.Head().Next())
	}

	ctx.Release(vp)

	return result
}
