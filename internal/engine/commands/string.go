// Released under an MIT license. See LICENSE.

package commands

import (
	"strconv"
	"strings"

	"github.com/jl-lang/jl/internal/cell"
	"github.com/jl-lang/jl/internal/engine"
)

// substr extracts a substring by start position and length. Start defaults
// to 0 and length to the remainder; a negative or absent length means "to
// end". An out-of-range start or a zero length yields nil. Each evaluated
// argument is released exactly once.
func substr(ctx *engine.Context, args *cell.T) *cell.T {
	if args.Next() == nil {
		return tooFewArguments(ctx, args)
	}

	if a2 := args.Next().Next(); a2 != nil && a2.Next() != nil && a2.Next().Next() != nil {
		return tooManyArguments(ctx, args)
	}

	var sv, startv, lenv *cell.T

	defer func() {
		ctx.Release(sv)
		ctx.Release(startv)
		ctx.Release(lenv)
	}()

	sv = ctx.Evaluate(args.Next())
	if sv.Tag() != cell.String {
		return invalidArgument(ctx, args)
	}

	start := 0
	length := -1

	if a2 := args.Next().Next(); a2 != nil {
		startv = ctx.Evaluate(a2)

		if startv != nil {
			if startv.Tag() != cell.Number {
				return invalidArgument(ctx, args)
			}

			start = int(startv.Num())
		}

		if a3 := a2.Next(); a3 != nil {
			lenv = ctx.Evaluate(a3)

			if lenv != nil {
				if lenv.Tag() != cell.Number {
					return invalidArgument(ctx, args)
				}

				length = int(lenv.Num())
				if length == 0 {
					return nil
				}

				if length < 0 {
					length = -1
				}
			}
		}
	}

	s := sv.Text()
	if start < 0 || start >= len(s) {
		return nil
	}

	end := len(s)
	if length >= 0 && start+length < end {
		end = start + length
	}

	return ctx.NewString(s[start:end])
}

// concat joins its arguments, which must all be strings. With no arguments
// it yields the empty string.
func concat(ctx *engine.Context, args *cell.T) *cell.T {
	var b strings.Builder

	for vp := args.Next(); vp != nil; vp = vp.Next() {
		arg := ctx.Evaluate(vp)
		if arg.Tag() != cell.String {
			ctx.Release(arg)

			return invalidArgument(ctx, args)
		}

		b.WriteString(arg.Text())
		ctx.Release(arg)
	}

	return ctx.NewString(b.String())
}

// strToInt parses the longest valid prefix of a string in the given base.
// No digits means zero.
func strToInt(ctx *engine.Context, args *cell.T) *cell.T {
	if args.Next() == nil || args.Next().Next() == nil {
		return tooFewArguments(ctx, args)
	}

	if args.Next().Next().Next() != nil {
		return tooManyArguments(ctx, args)
	}

	va := ctx.Evaluate(args.Next())
	vb := ctx.Evaluate(args.Next().Next())

	defer func() {
		ctx.Release(va)
		ctx.Release(vb)
	}()

	if va.Tag() != cell.String || vb.Tag() != cell.Number {
		return invalidArgument(ctx, args)
	}

	base := int(vb.Num())
	if base < 2 || base > 36 {
		return invalidArgument(ctx, args)
	}

	return ctx.NewNumber(float64(parsePrefix(va.Text(), base)))
}

// intToStr renders the integer projection of a number in the given base.
// At least one digit is always emitted. Base 10 negatives get a leading
// minus; other bases render the two's-complement unsigned projection, with
// digits above nine uppercase.
func intToStr(ctx *engine.Context, args *cell.T) *cell.T {
	if args.Next() == nil || args.Next().Next() == nil {
		return tooFewArguments(ctx, args)
	}

	if args.Next().Next().Next() != nil {
		return tooManyArguments(ctx, args)
	}

	va := ctx.Evaluate(args.Next())
	vb := ctx.Evaluate(args.Next().Next())

	defer func() {
		ctx.Release(va)
		ctx.Release(vb)
	}()

	if va.Tag() != cell.Number || vb.Tag() != cell.Number {
		return invalidArgument(ctx, args)
	}

	base := int(vb.Num())
	if base < 2 || base > 36 {
		return invalidArgument(ctx, args)
	}

	n := cell.Int(va.Num())

	if base == 10 {
		return ctx.NewString(strconv.FormatInt(n, 10))
	}

	return ctx.NewString(strings.ToUpper(strconv.FormatUint(uint64(n), base)))
}

func parsePrefix(s string, base int) int64 {
	i := 0

	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}

	negative := false

	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		negative = s[i] == '-'
		i++
	}

	var n int64

	for ; i < len(s); i++ {
		d := digit(s[i])
		if d < 0 || d >= base {
			break
		}

		n = n*int64(base) + int64(d)
	}

	if negative {
		return -n
	}

	return n
}

func digit(b byte) int {
	switch {
	case '0' <= b && b <= '9':
		return int(b - '0')
	case 'a' <= b && b <= 'z':
		return int(b-'a') + 10
	case 'A' <= b && b <= 'Z':
		return int(b-'A') + 10
	}

	return -1
}
