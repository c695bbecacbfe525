// Released under an MIT license. See LICENSE.

package lexer

import (
	"testing"

	"github.com/jl-lang/jl/internal/common/struct/token"
)

type item struct {
	class token.Class
	value string
}

func scan(t *testing.T, text string) []item {
	t.Helper()

	l := New("test", text, 1)

	var items []item

	for {
		tok := l.Token()
		if tok == nil {
			return items
		}

		items = append(items, item{tok.Class(), tok.Value()})
	}
}

func TestTokens(t *testing.T) {
	cases := []struct {
		text string
		want []item
	}{
		{"(+ 1 2)", []item{
			{token.Open, "("},
			{token.Sym, "+"},
			{token.Num, "1"},
			{token.Num, "2"},
			{token.Close, ")"},
		}},
		{"  \t\r\n ", nil},
		{"; a comment\nx ; trailing\n", []item{{token.Sym, "x"}}},
		{`"hello, world"`, []item{{token.Str, "hello, world"}}},
		{`"a\"b\\c\nd\te\qf"`, []item{{token.Str, "a\"b\\c\nd\te" + "qf"}}},
		{`"open ended`, []item{{token.Error, "unterminated string"}}},
		{"-5 +2 1. .5 1.25", []item{
			{token.Num, "-5"},
			{token.Num, "+2"},
			{token.Num, "1."},
			{token.Num, ".5"},
			{token.Num, "1.25"},
		}},
		{"- + <= list? 1.2.3 12a", []item{
			{token.Sym, "-"},
			{token.Sym, "+"},
			{token.Sym, "<="},
			{token.Sym, "list?"},
			{token.Sym, "1.2.3"},
			{token.Sym, "12a"},
		}},
		{`(concat"a""b")`, []item{
			{token.Open, "("},
			{token.Sym, "concat"},
			{token.Str, "a"},
			{token.Str, "b"},
			{token.Close, ")"},
		}},
	}

	for _, c := range cases {
		got := scan(t, c.text)

		if len(got) != len(c.want) {
			t.Errorf("%q: got %v, want %v", c.text, got, c.want)

			continue
		}

		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("%q: token %d: got %v, want %v", c.text, i, got[i], c.want[i])
			}
		}
	}
}

func TestOffset(t *testing.T) {
	l := New("test", "one two", 1)

	tok := l.Token()
	if tok == nil || tok.Value() != "one" {
		t.Fatalf("unexpected first token: %v", tok)
	}

	if rest := "one two"[l.Offset():]; rest != " two" {
		t.Fatalf("offset leaves %q, want %q", rest, " two")
	}
}

func TestLineTracking(t *testing.T) {
	l := New("test", "a\nb\n\nc", 3)

	for _, want := range []int{3, 4, 6} {
		tok := l.Token()
		if tok == nil {
			t.Fatal("ran out of tokens")
		}

		if tok.Source().Line != want {
			t.Errorf("%s on line %d, want %d", tok.Value(), tok.Source().Line, want)
		}
	}
}
