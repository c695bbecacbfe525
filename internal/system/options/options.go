// Released under an MIT license. See LICENSE.

// Package options parses jl's command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

//nolint:gochecknoglobals
var (
	command     string
	interactive bool
	script      string
	usage       = `jl

Usage:
  jl [SCRIPT]
  jl -c COMMAND
  jl -h
  jl -v

Arguments:
  SCRIPT  Path to a jl script.

Options:
  -c, --command=COMMAND  Evaluate the given command and print the result.
  -h, --help             Display this help.
  -v, --version          Print jl version.

If jl's stdin is a TTY and neither a script nor a command is given, an
interactive REPL starts. Otherwise expressions are read from stdin until
end of input.
`
)

// Command returns the command passed with -c, if any.
func Command() string {
	return command
}

// Interactive returns true if jl should start a REPL.
func Interactive() bool {
	return interactive
}

// Parse parses the command line. Help and version requests exit here.
func Parse(version string) {
	opts, err := docopt.ParseArgs(usage, nil, version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	command, _ = opts.String("--command")
	script, _ = opts.String("SCRIPT")

	if command == "" && script == "" && isatty.IsTerminal(os.Stdin.Fd()) {
		interactive = true
	}
}

// Script returns the script path, if any.
func Script() string {
	return script
}
