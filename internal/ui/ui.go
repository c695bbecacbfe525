// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for the jl language.
package ui

import (
	"fmt"
	"strings"

	"github.com/jl-lang/jl"
	"github.com/jl-lang/jl/internal/system/history"
	"github.com/peterh/liner"
)

// Run reads expressions a line at a time, evaluates each complete buffer,
// and prints the last result. It returns on end of input.
func Run(ctx *jl.Context) {
	fmt.Fprintf(ctx.Output(), "jl interpreter v%s\n", jl.Version)
	fmt.Fprintln(ctx.Output(), "Type ^D to exit")

	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetCompleter(complete(ctx))

	_ = history.Load(cli.ReadHistory)

	defer func() {
		_ = history.Save(cli.WriteHistory)
	}()

	for {
		line, err := cli.Prompt("> ")

		switch err {
		case nil:
		case liner.ErrPromptAborted:
			continue
		default:
			fmt.Fprintln(ctx.Output())

			return
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		cli.AppendHistory(line)

		result := ctx.EvaluateString(line)
		fmt.Fprintf(ctx.Output(), "=> %s\n", jl.Sprint(result))
		ctx.Release(result)
	}
}

// complete returns a completer that extends the trailing token of the line
// with the names visible in the current scope.
func complete(ctx *jl.Context) liner.Completer {
	return func(line string) []string {
		start := strings.LastIndexAny(line, " \t()\"") + 1
		prefix := line[start:]

		var completions []string

		for _, name := range ctx.Names() {
			if strings.HasPrefix(name, prefix) {
				completions = append(completions, line[:start]+name)
			}
		}

		return completions
	}
}
