// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for the jl language.
// It consumes exactly one top-level expression per Parse call, building a
// cell tree on the caller's heap.
package parser

import (
	"strconv"

	"github.com/jl-lang/jl/internal/cell"
	"github.com/jl-lang/jl/internal/common/struct/token"
	"github.com/jl-lang/jl/internal/diag"
	"github.com/jl-lang/jl/internal/reader/lexer"
)

// T holds the state of the parser.
type T struct {
	heap   *cell.Heap
	lexer  *lexer.T
	report diag.Sink
}

type parser = T

// New creates a new parser reading tokens from l and allocating on h.
// Malformed input is reported through report.
func New(h *cell.Heap, report diag.Sink, l *lexer.T) *T {
	return &parser{heap: h, lexer: l, report: report}
}

// Parse consumes one expression and returns it, or nil at end of input or
// on a malformed expression. An error consumes no more of the buffer than
// the offending token.
func (p *parser) Parse() *cell.T {
	t := p.lexer.Token()
	if t == nil {
		return nil
	}

	return p.expression(t)
}

func (p *parser) expression(t *token.T) *cell.T {
	switch t.Class() {
	case token.Open:
		return p.list()
	case token.Close:
		p.error(t, "unexpected )")

		return nil
	case token.Str:
		return p.heap.NewString(t.Value())
	case token.Num:
		f, err := strconv.ParseFloat(t.Value(), 64)
		if err != nil {
			p.error(t, "malformed number "+t.Value())

			return nil
		}

		return p.heap.NewNumber(f)
	case token.Sym:
		return p.heap.NewVariable(t.Value())
	}

	// token.Error
	p.error(t, t.Value())

	return nil
}

// list consumes expressions up to the closing parenthesis and stitches them
// into a chain through each cell's next link.
func (p *parser) list() *cell.T {
	var head, tail *cell.T

	for {
		t := p.lexer.Token()
		if t == nil {
			p.report(diag.T{Kind: diag.Parse, Line: p.lexer.Line(), Text: "missing )"})
			p.heap.Release(head)

			return nil
		}

		if t.Is(token.Close) {
			return p.heap.NewList(head)
		}

		e := p.expression(t)
		if e == nil {
			p.heap.Release(head)

			return nil
		}

		if head == nil {
			head = e
		} else {
			tail.SetNext(e)
		}

		tail = e
	}
}

func (p *parser) error(t *token.T, text string) {
	p.report(diag.T{Kind: diag.Parse, Line: t.Source().Line, Text: text})
}
