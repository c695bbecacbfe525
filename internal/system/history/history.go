// Released under an MIT license. See LICENSE.

// Package history saves and restores the REPL's command history.
package history

import (
	"io"
	"os"
	"path/filepath"
)

const name = ".jl_history"

// Load passes the history file to read. Reader and writer signatures match
// liner's ReadHistory and WriteHistory.
func Load(read func(r io.Reader) (int, error)) error {
	f, err := file(os.Open)
	if err != nil {
		return err
	}

	_, err = read(f)
	if err != nil {
		return err
	}

	return f.Close()
}

// Save passes the history file to write.
func Save(write func(w io.Writer) (int, error)) error {
	f, err := file(os.Create)
	if err != nil {
		return err
	}

	_, err = write(f)
	if err != nil {
		return err
	}

	return f.Close()
}

func file(open func(string) (*os.File, error)) (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	return open(filepath.Join(home, name))
}
