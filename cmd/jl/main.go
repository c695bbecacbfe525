// Released under an MIT license. See LICENSE.

// Jl is a REPL and script runner for the jl language.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jl-lang/jl"
	"github.com/jl-lang/jl/internal/system/options"
	"github.com/jl-lang/jl/internal/ui"
)

func main() {
	options.Parse(jl.Version)

	ctx := jl.NewContext()
	defer ctx.Close()

	ctx.DefineSpecial("print", printFunc, nil)

	switch {
	case options.Command() != "":
		run(ctx, options.Command())
	case options.Script() != "":
		text, err := os.ReadFile(options.Script())
		if err != nil {
			fmt.Fprintf(os.Stderr, "jl: %v\n", err)
			os.Exit(1)
		}

		result := ctx.EvaluateString(string(text))
		ctx.Release(result)
	case options.Interactive():
		ui.Run(ctx)
	default:
		text, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "jl: %v\n", err)
			os.Exit(1)
		}

		run(ctx, string(text))
	}
}

func run(ctx *jl.Context, src string) {
	result := ctx.EvaluateString(src)
	fmt.Fprintf(ctx.Output(), "%s\n", jl.Sprint(result))
	ctx.Release(result)
}

// printFunc writes each evaluated argument to the standard sink: strings
// raw, everything else in printed form. It is registered as a special so
// the stock binary demonstrates the host operation interface.
func printFunc(ctx *jl.Context, args *jl.Value, _ interface{}) *jl.Value {
	for vp := jl.GetNext(args); vp != nil; vp = jl.GetNext(vp) {
		result := ctx.Evaluate(vp)

		if jl.IsString(result) {
			fmt.Fprint(ctx.Output(), jl.GetString(result))
		} else {
			ctx.Print(result)
		}

		ctx.Release(result)
	}

	return nil
}
