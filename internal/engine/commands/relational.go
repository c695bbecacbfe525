// Released under an MIT license. See LICENSE.

package commands

import (
	"strings"

	"github.com/jl-lang/jl/internal/cell"
	"github.com/jl-lang/jl/internal/engine"
)

// compare implements =, !=, <, <=, > and >=, dispatching on the name the
// operation was invoked through. Operands of different types (or of a type
// with no ordering) compare by identity for = and !=; the relational
// operators require two numbers or two strings.
func compare(ctx *engine.Context, args *cell.T) *cell.T {
	op := opName(args)

	if args.Next() == nil || args.Next().Next() == nil {
		return tooFewArguments(ctx, args)
	}

	if args.Next().Next().Next() != nil {
		return tooManyArguments(ctx, args)
	}

	va := ctx.Evaluate(args.Next())
	vb := ctx.Evaluate(args.Next().Next())

	cond := false

	switch {
	case va.Tag() != vb.Tag() || (va.Tag() != cell.Number && va.Tag() != cell.String):
		switch op {
		case "=":
			cond = va == vb
		case "!=":
			cond = va != vb
		default:
			invalidArgument(ctx, args)
		}
	case va.Tag() == cell.Number:
		cond = ordered(op, numCompare(va.Num(), vb.Num()))
	default:
		cond = ordered(op, strings.Compare(va.Text(), vb.Text()))
	}

	ctx.Release(va)
	ctx.Release(vb)

	if cond {
		return one(ctx)
	}

	return nil
}

func numCompare(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}

func ordered(op string, diff int) bool {
	switch op {
	case "=":
		return diff == 0
	case "!=":
		return diff != 0
	case "<":
		return diff < 0
	case "<=":
		return diff <= 0
	case ">":
		return diff > 0
	case ">=":
		return diff >= 0
	}

	return false
}
