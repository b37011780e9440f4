package translator

import (
	"strings"
	"testing"
)

func TestEmit_Expressions(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{"number", &Number{Lexeme: "42"}, "42"},
		{"variable", &Variable{Name: "x"}, "x"},
		{"string", &StringLiteral{Value: "hi"}, `"hi"`},
		{
			"binary always parenthesized",
			&Binary{Op: Plus, Left: &Number{Lexeme: "1"}, Right: &Number{Lexeme: "2"}},
			"(1+2)",
		},
		{
			"nested binary",
			&Binary{Op: Plus, Left: &Number{Lexeme: "1"}, Right: &Binary{Op: Star, Left: &Number{Lexeme: "2"}, Right: &Number{Lexeme: "3"}}},
			"(1+(2*3))",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := emitExpr(tt.expr); got != tt.want {
				t.Errorf("emitExpr() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEmit_VarDecl(t *testing.T) {
	withInit := &VarDecl{TypeName: "int", Name: "x", Init: &Number{Lexeme: "1"}}
	if got := emitStmt(withInit, 0); got != "x = 1" {
		t.Errorf("VarDecl with init: got %q", got)
	}

	withoutInit := &VarDecl{TypeName: "float", Name: "y"}
	if got := emitStmt(withoutInit, 0); got != "y = None" {
		t.Errorf("VarDecl without init: got %q", got)
	}
}

func TestEmit_Cout(t *testing.T) {
	tests := []struct {
		name string
		cout *Cout
		want string
	}{
		{
			"parts only",
			&Cout{Parts: []Expr{&Variable{Name: "x"}}},
			"print(x)",
		},
		{
			"terminator only",
			&Cout{HasTerminator: true},
			"print()",
		},
		{
			"multiple parts joined with comma",
			&Cout{Parts: []Expr{&StringLiteral{Value: "hi"}, &Variable{Name: "x"}}, HasTerminator: true},
			`print("hi", x)`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := emitStmt(tt.cout, 0); got != tt.want {
				t.Errorf("emitStmt(Cout) = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEmit_ForToRange(t *testing.T) {
	tests := []struct {
		name string
		f    *For
		want string
	}{
		{
			name: "counting up, step omitted",
			f:    &For{Init: "int i = 0 ", Cond: "i < 3 ", Increment: "i ++ "},
			want: "for i in range(0, 3):\n",
		},
		{
			name: "counting down, step -1 emitted",
			f:    &For{Init: "int k = 10 ", Cond: "k > 0 ", Increment: "k - - "},
			want: "for k in range(10, 0, -1):\n",
		},
		{
			name: "bare assignment init, no type prefix to strip",
			f:    &For{Init: "i = 0 ", Cond: "i <= 5 ", Increment: "i = i + 1 "},
			want: "for i in range(0, 5):\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := emitStmt(tt.f, 0)
			if !strings.HasPrefix(got, tt.want) {
				t.Errorf("emitFor header = %q, want prefix %q", got, tt.want)
			}
		})
	}
}

func TestEmit_IfElseIfChain(t *testing.T) {
	stmt := &If{
		Condition: &Binary{Op: Greater, Left: &Variable{Name: "x"}, Right: &Number{Lexeme: "5"}},
		Body:      []Stmt{&Cout{Parts: []Expr{&StringLiteral{Value: "big"}}}},
		ElseIfs: []ElseIf{
			{
				Condition: &Binary{Op: Equals, Left: &Variable{Name: "x"}, Right: &Number{Lexeme: "5"}},
				Body:      []Stmt{&Cout{Parts: []Expr{&StringLiteral{Value: "mid"}}}},
			},
		},
		ElseBody: []Stmt{&Cout{Parts: []Expr{&StringLiteral{Value: "small"}}}},
	}
	got := emitStmt(stmt, 0)
	for _, want := range []string{"if (x>5):\n", "elif (x==5):\n", "else:\n", `print("big")`, `print("mid")`, `print("small")`} {
		if !strings.Contains(got, want) {
			t.Errorf("emitIf output missing %q; got:\n%s", want, got)
		}
	}
}

func TestEmit_EmptyElseBodyOmitted(t *testing.T) {
	stmt := &If{
		Condition: &Variable{Name: "x"},
		Body:      []Stmt{&Assignment{Name: "x", Value: &Number{Lexeme: "1"}}},
	}
	got := emitStmt(stmt, 0)
	if strings.Contains(got, "else") {
		t.Errorf("expected no else clause when ElseBody is empty, got:\n%s", got)
	}
}

func TestEmit_IndentationIsMultipleOfFour(t *testing.T) {
	prog := Program{
		&While{
			Condition: &Variable{Name: "x"},
			Body: []Stmt{
				&If{
					Condition: &Variable{Name: "x"},
					Body:      []Stmt{&Assignment{Name: "x", Value: &Number{Lexeme: "0"}}},
				},
			},
		},
	}
	out := Emit(prog)
	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}
		leading := len(line) - len(strings.TrimLeft(line, " "))
		if leading%4 != 0 {
			t.Errorf("line %q has indentation %d, not a multiple of four", line, leading)
		}
	}
}
