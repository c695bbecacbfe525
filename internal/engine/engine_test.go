// Released under an MIT license. See LICENSE.

package engine_test

import (
	"testing"

	"github.com/jl-lang/jl/internal/cell"
	"github.com/jl-lang/jl/internal/diag"
	"github.com/jl-lang/jl/internal/engine"
	"github.com/jl-lang/jl/internal/engine/commands"
	"github.com/jl-lang/jl/internal/reader/lexer"
	"github.com/jl-lang/jl/internal/reader/parser"
)

// newContext builds a context with all built-ins installed and diagnostics
// collected instead of written to stderr.
func newContext() (*engine.Context, *[]diag.T) {
	ctx := engine.New()

	var reported []diag.T

	ctx.SetSink(func(d diag.T) {
		reported = append(reported, d)
	})

	for name, fn := range commands.Table() {
		fn := fn

		s := ctx.Heap().NewSpecial(func(args *cell.T) *cell.T {
			return fn(ctx, args)
		})

		ctx.Define(name, s)
		ctx.Release(s)
	}

	return ctx, &reported
}

// eval parses and evaluates every expression in src and returns the last
// result.
func eval(t *testing.T, ctx *engine.Context, src string) *cell.T {
	t.Helper()

	p := parser.New(ctx.Heap(), ctx.Report, lexer.New("test", src, 1))

	var result *cell.T

	for {
		v := p.Parse()
		if v == nil {
			return result
		}

		ctx.Release(result)
		result = ctx.Evaluate(v)
		ctx.Release(v)
	}
}

func expect(t *testing.T, ctx *engine.Context, src, want string) {
	t.Helper()

	result := eval(t, ctx, src)
	if got := result.Literal(); got != want {
		t.Errorf("%s: got %s, want %s", src, got, want)
	}

	ctx.Release(result)
}

func TestScenarios(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{`(+ 1 2 3)`, "6"},
		{`(define fact (lambda (n) (if (<= n 1) 1 (* n (fact (- n 1)))))) (fact 5)`, "120"},
		{`(define make-adder (lambda (x) (lambda (y) (+ x y)))) (define inc (make-adder 1)) (inc 41)`, "42"},
		{`(concat "hello, " "world")`, `"hello, world"`},
		{`(head (rest (list 1 2 3)))`, "2"},
		{`(if (null? ()) "yes" "no")`, `"yes"`},
	}

	for _, c := range cases {
		ctx, reported := newContext()

		expect(t, ctx, c.src, c.want)

		if len(*reported) != 0 {
			t.Errorf("%s: unexpected diagnostics %v", c.src, *reported)
		}

		ctx.Close()
	}
}

// TestClosureCapturesDefiningScope is the load-bearing closure test: free
// variables resolve against the scope captured at lambda creation, not the
// caller's current scope.
func TestClosureCapturesDefiningScope(t *testing.T) {
	ctx, _ := newContext()
	defer ctx.Close()

	expect(t, ctx, `
		(define x 1)
		(define get-x (lambda () x))
		(define shadowing (lambda (x) (get-x)))
		(shadowing 99)`,
		"1")
}

func TestLambdaParameterBinding(t *testing.T) {
	ctx, reported := newContext()
	defer ctx.Close()

	// Missing actuals bind to nil; extra actuals are ignored.
	expect(t, ctx, `(define f (lambda (a b) (if (null? b) "none" b))) (f 1)`, `"none"`)
	expect(t, ctx, `(f 1 2 3)`, "2")

	if len(*reported) != 0 {
		t.Errorf("unexpected diagnostics %v", *reported)
	}
}

func TestIfEvaluatesExactlyOneBranch(t *testing.T) {
	ctx, _ := newContext()
	defer ctx.Close()

	expect(t, ctx, `(define n 0) (if 1 (define n 1) (define n 2)) n`, "1")
	expect(t, ctx, `(if 0 (define m 1) (define m 2)) m`, "2")
	expect(t, ctx, `(if 0 1)`, "nil")
}

func TestBeginScope(t *testing.T) {
	ctx, reported := newContext()
	defer ctx.Close()

	expect(t, ctx, `(begin (define z 9) z)`, "9")

	if len(*reported) != 0 {
		t.Fatalf("unexpected diagnostics %v", *reported)
	}

	expect(t, ctx, `z`, "nil")

	if len(*reported) != 1 || (*reported)[0].Kind != diag.Unbound {
		t.Fatalf("expected one unbound diagnostic, got %v", *reported)
	}

	if (*reported)[0].Text != "undefined: z" {
		t.Errorf("got %q, want %q", (*reported)[0].Text, "undefined: z")
	}
}

func TestUndefinedVariable(t *testing.T) {
	ctx, reported := newContext()
	defer ctx.Close()

	expect(t, ctx, `missing`, "nil")

	if len(*reported) != 1 || (*reported)[0].Kind != diag.Unbound {
		t.Fatalf("expected one unbound diagnostic, got %v", *reported)
	}
}

func TestInvalidCall(t *testing.T) {
	ctx, reported := newContext()
	defer ctx.Close()

	expect(t, ctx, `(5 1)`, "nil")

	if len(*reported) != 1 || (*reported)[0].Kind != diag.Call {
		t.Fatalf("expected one call diagnostic, got %v", *reported)
	}
}

func TestEmptyListEvaluatesQuietly(t *testing.T) {
	ctx, reported := newContext()
	defer ctx.Close()

	expect(t, ctx, `()`, "nil")

	if len(*reported) != 0 {
		t.Fatalf("unexpected diagnostics %v", *reported)
	}
}

func TestSelfEvaluating(t *testing.T) {
	ctx, _ := newContext()
	defer ctx.Close()

	expect(t, ctx, `42`, "42")
	expect(t, ctx, `"s"`, `"s"`)
	expect(t, ctx, `(define id (lambda (v) v)) (id id)`, "(lambda (v) v)")
}

func TestTruthinessInConditions(t *testing.T) {
	ctx, _ := newContext()
	defer ctx.Close()

	expect(t, ctx, `(if 0 "t" "f")`, `"f"`)
	expect(t, ctx, `(if () "t" "f")`, `"f"`)
	expect(t, ctx, `(if "" "t" "f")`, `"t"`)
	expect(t, ctx, `(if (list 1) "t" "f")`, `"t"`)
}

func TestDeeplyNestedClosures(t *testing.T) {
	ctx, reported := newContext()
	defer ctx.Close()

	expect(t, ctx, `
		(define compose (lambda (f g) (lambda (v) (f (g v)))))
		(define inc (lambda (v) (+ v 1)))
		(define double (lambda (v) (* v 2)))
		((compose inc double) 20)`,
		"41")

	if len(*reported) != 0 {
		t.Errorf("unexpected diagnostics %v", *reported)
	}
}
