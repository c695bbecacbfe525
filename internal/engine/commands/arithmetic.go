// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/jl-lang/jl/internal/cell"
	"github.com/jl-lang/jl/internal/engine"
)

// foldNumber folds f over the evaluated arguments, starting from init.
// A non-number argument is an error.
func foldNumber(ctx *engine.Context, args *cell.T, init float64, f func(a, b float64) float64) *cell.T {
	acc := init

	for vp := args.Next(); vp != nil; vp = vp.Next() {
		arg := ctx.Evaluate(vp)
		if arg.Tag() != cell.Number {
			ctx.Release(arg)

			return invalidArgument(ctx, args)
		}

		acc = f(acc, arg.Num())
		ctx.Release(arg)
	}

	return ctx.NewNumber(acc)
}

// foldInt folds f over the integer projections of the evaluated arguments.
func foldInt(ctx *engine.Context, args *cell.T, init int64, f func(a, b int64) int64) *cell.T {
	acc := init

	for vp := args.Next(); vp != nil; vp = vp.Next() {
		arg := ctx.Evaluate(vp)
		if arg.Tag() != cell.Number {
			ctx.Release(arg)

			return invalidArgument(ctx, args)
		}

		acc = f(acc, cell.Int(arg.Num()))
		ctx.Release(arg)
	}

	return ctx.NewNumber(float64(acc))
}

func add(ctx *engine.Context, args *cell.T) *cell.T {
	return foldNumber(ctx, args, 0, func(a, b float64) float64 { return a + b })
}

func bitAnd(ctx *engine.Context, args *cell.T) *cell.T {
	return foldInt(ctx, args, -1, func(a, b int64) int64 { return a & b })
}

func bitOr(ctx *engine.Context, args *cell.T) *cell.T {
	return foldInt(ctx, args, 0, func(a, b int64) int64 { return a | b })
}

func bitXor(ctx *engine.Context, args *cell.T) *cell.T {
	return foldInt(ctx, args, 0, func(a, b int64) int64 { return a ^ b })
}

// sub subtracts the remaining arguments from the first. The unary form
// negates.
func sub(ctx *engine.Context, args *cell.T) *cell.T {
	vp := args.Next()
	if vp == nil {
		return tooFewArguments(ctx, args)
	}

	arg := ctx.Evaluate(vp)
	if arg.Tag() != cell.Number {
		ctx.Release(arg)

		return invalidArgument(ctx, args)
	}

	total := arg.Num()
	ctx.Release(arg)

	if vp.Next() == nil {
		return ctx.NewNumber(-total)
	}

	for vp = vp.Next(); vp != nil; vp = vp.Next() {
		arg = ctx.Evaluate(vp)
		if arg.Tag() != cell.Number {
			ctx.Release(arg)

			return invalidArgument(ctx, args)
		}

		total -= arg.Num()
		ctx.Release(arg)
	}

	return ctx.NewNumber(total)
}

func mul(ctx *engine.Context, args *cell.T) *cell.T {
	return foldNumber(ctx, args, 1, func(a, b float64) float64 { return a * b })
}

// binary evaluates exactly two numeric arguments.
func binary(ctx *engine.Context, args *cell.T) (a, b float64, ok bool) {
	if args.Next() == nil || args.Next().Next() == nil {
		tooFewArguments(ctx, args)

		return 0, 0, false
	}

	if args.Next().Next().Next() != nil {
		tooManyArguments(ctx, args)

		return 0, 0, false
	}

	va := ctx.Evaluate(args.Next())
	vb := ctx.Evaluate(args.Next().Next())

	ok = va.Tag() == cell.Number && vb.Tag() == cell.Number
	if ok {
		a, b = va.Num(), vb.Num()
	} else {
		invalidArgument(ctx, args)
	}

	ctx.Release(va)
	ctx.Release(vb)

	return a, b, ok
}

// div follows IEEE-754 double semantics, so dividing by zero yields an
// infinity or NaN rather than an error.
func div(ctx *engine.Context, args *cell.T) *cell.T {
	a, b, ok := binary(ctx, args)
	if !ok {
		return nil
	}

	return ctx.NewNumber(a / b)
}

func mod(ctx *engine.Context, args *cell.T) *cell.T {
	a, b, ok := binary(ctx, args)
	if !ok {
		return nil
	}

	if cell.Int(b) == 0 {
		return invalidArgument(ctx, args)
	}

	return ctx.NewNumber(float64(cell.Int(a) % cell.Int(b)))
}

func shiftLeft(ctx *engine.Context, args *cell.T) *cell.T {
	a, b, ok := binary(ctx, args)
	if !ok {
		return nil
	}

	if cell.Int(b) < 0 {
		return invalidArgument(ctx, args)
	}

	return ctx.NewNumber(float64(cell.Int(a) << uint64(cell.Int(b))))
}

func shiftRight(ctx *engine.Context, args *cell.T) *cell.T {
	a, b, ok := binary(ctx, args)
	if !ok {
		return nil
	}

	if cell.Int(b) < 0 {
		return invalidArgument(ctx, args)
	}

	return ctx.NewNumber(float64(cell.Int(a) >> uint64(cell.Int(b))))
}

// bitNot complements the integer projection of its argument.
func bitNot(ctx *engine.Context, args *cell.T) *cell.T {
	if args.Next() == nil {
		return tooFewArguments(ctx, args)
	}

	if args.Next().Next() != nil {
		return tooManyArguments(ctx, args)
	}

	va := ctx.Evaluate(args.Next())
	if va.Tag() != cell.Number {
		ctx.Release(va)

		return invalidArgument(ctx, args)
	}

	result := ctx.NewNumber(float64(^cell.Int(va.Num())))
	ctx.Release(va)

	return result
}
