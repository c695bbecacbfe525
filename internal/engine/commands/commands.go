// Released under an MIT license. See LICENSE.

// Package commands provides the built-in special forms and primitive
// operations of the jl language. Every entry receives the head cell of the
// invoking list (the operation's name) with the unevaluated arguments
// linked through the head's next field, and evaluates its own arguments —
// selectively, for the forms that must not (if, and, or, define, lambda).
package commands

import (
	"github.com/jl-lang/jl/internal/cell"
	"github.com/jl-lang/jl/internal/diag"
	"github.com/jl-lang/jl/internal/engine"
)

// Table returns a mapping of names to built-in operations. The embedding
// layer installs each as a special in a fresh context's root scope.
func Table() map[string]func(*engine.Context, *cell.T) *cell.T {
	return map[string]func(*engine.Context, *cell.T) *cell.T{
		"=":       compare,
		"!=":      compare,
		"<":       compare,
		"<=":      compare,
		">":       compare,
		">=":      compare,
		"+":       add,
		"-":       sub,
		"*":       mul,
		"/":       div,
		"%":       mod,
		"&":       bitAnd,
		"|":       bitOr,
		"^":       bitXor,
		"~":       bitNot,
		"<<":      shiftLeft,
		">>":      shiftRight,
		"and":     and,
		"or":      or,
		"not":     not,
		"if":      ifForm,
		"begin":   begin,
		"define":  define,
		"lambda":  lambda,
		"list":    makeList,
		"cons":    cons,
		"head":    head,
		"rest":    rest,
		"substr":  substr,
		"concat":  concat,
		"int":     strToInt,
		"str":     intToStr,
		"number?": isNumber,
		"string?": isString,
		"list?":   isList,
		"null?":   isNull,
	}
}

// condition evaluates v and reports its truth value.
func condition(ctx *engine.Context, v *cell.T) bool {
	cond := ctx.Evaluate(v)
	rc := cell.Truthy(cond)
	ctx.Release(cond)

	return rc
}

// one is the canonical truthy result.
func one(ctx *engine.Context) *cell.T {
	return ctx.NewNumber(1)
}

// opName names the operation for error messages. The head cell is normally
// the variable the operation was looked up through.
func opName(args *cell.T) string {
	if args.Tag() == cell.Variable {
		return args.Text()
	}

	return args.Name()
}

func invalidArgument(ctx *engine.Context, args *cell.T) *cell.T {
	ctx.Errorf(diag.Argument, "invalid argument to %s", opName(args))

	return nil
}

func tooFewArguments(ctx *engine.Context, args *cell.T) *cell.T {
	ctx.Errorf(diag.Arity, "too few arguments to %s", opName(args))

	return nil
}

func tooManyArguments(ctx *engine.Context, args *cell.T) *cell.T {
	ctx.Errorf(diag.Arity, "too many arguments to %s", opName(args))

	return nil
}
