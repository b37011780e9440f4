package translator

import "fmt"

//  Expression nodes

// Expr is implemented by every node that produces a value. The set is
// closed: Number, Variable, StringLiteral, Binary — nothing else exists in
// a well-formed tree (spec.md §3).
type Expr interface {
	exprNode()
	String() string
}

// Number is a non-empty run of decimal digits, optionally containing at
// most one '.'. It is kept as its source lexeme rather than parsed into a
// numeric type: the translator never evaluates it, only re-emits it.
type Number struct {
	Lexeme string
}

func (*Number) exprNode()        {}
func (n *Number) String() string { return n.Lexeme }

// Variable is a read of a named value.
type Variable struct {
	Name string
}

func (*Variable) exprNode()        {}
func (v *Variable) String() string { return v.Name }

// StringLiteral is the raw content between a pair of double quotes, with no
// escape processing performed at any stage.
type StringLiteral struct {
	Value string
}

func (*StringLiteral) exprNode()        {}
func (s *StringLiteral) String() string { return fmt.Sprintf("%q", s.Value) }

// Binary is a two-operand expression. Op is one of
// + - * / < > <= >= == != and is always emitted with the same symbol it was
// parsed with.
type Binary struct {
	Op    Kind
	Left  Expr
	Right Expr
}

func (*Binary) exprNode() {}
func (b *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right)
}

//  Statement nodes

// Stmt is implemented by every node that does not produce a value. The set
// is closed: VarDecl, Assignment, Cout, If, For, While.
type Stmt interface {
	stmtNode()
	String() string
}

// VarDecl represents "int name = expr;" or "float name;" — the declared
// type name is kept only for fidelity of String(); the Emitter discards it
// (spec.md §4.3: the target language has no static types).
type VarDecl struct {
	TypeName string // "int" or "float"
	Name     string
	Init     Expr // nil when there is no initializer
}

func (*VarDecl) stmtNode() {}
func (d *VarDecl) String() string {
	if d.Init != nil {
		return fmt.Sprintf("VarDecl(%s %s = %s)", d.TypeName, d.Name, d.Init)
	}
	return fmt.Sprintf("VarDecl(%s %s)", d.TypeName, d.Name)
}

// Assignment represents "name = value;".
type Assignment struct {
	Name  string
	Value Expr
}

func (*Assignment) stmtNode() {}
func (a *Assignment) String() string {
	return fmt.Sprintf("Assignment(%s = %s)", a.Name, a.Value)
}

// Cout represents "cout << part << part << endl;" in any combination and
// order. HasTerminator is true once any "<< endl" appeared; repeating endl
// leaves it true (idempotent). The invariant len(Parts) + bool(HasTerminator)
// >= 1 holds for every well-formed Cout (spec.md §3).
type Cout struct {
	Parts         []Expr
	HasTerminator bool
}

func (*Cout) stmtNode() {}
func (c *Cout) String() string {
	return fmt.Sprintf("Cout(parts=%v, endl=%t)", c.Parts, c.HasTerminator)
}

// ElseIf is one "else if (cond) { body }" clause. Clauses are ordered; the
// first with a true condition wins under the emitted program's own
// evaluation semantics, never re-decided here.
type ElseIf struct {
	Condition Expr
	Body      []Stmt
}

// If represents "if (cond) {..} (else if (cond) {..})* (else {..})?".
// ElseBody is nil when no else clause was present, and also for an
// explicitly empty "else {}" (parseBlock returns nil for an empty block);
// either way the Emitter omits the else clause.
type If struct {
	Condition Expr
	Body      []Stmt
	ElseIfs   []ElseIf
	ElseBody  []Stmt
}

func (*If) stmtNode() {}
func (i *If) String() string {
	return fmt.Sprintf("If(cond=%s, then=%d stmts, elseifs=%d, else=%d stmts)",
		i.Condition, len(i.Body), len(i.ElseIfs), len(i.ElseBody))
}

// For represents "for (init; cond; increment) { body }". init, cond, and
// increment are captured as raw, space-joined token text rather than
// sub-parsed — see parser.go's parseForHeaderSegment and emitter.go's
// emitFor for why and how they are reinterpreted.
type For struct {
	Init      string
	Cond      string
	Increment string
	Body      []Stmt
}

func (*For) stmtNode() {}
func (f *For) String() string {
	return fmt.Sprintf("For(init=%q, cond=%q, inc=%q, body=%d stmts)", f.Init, f.Cond, f.Increment, len(f.Body))
}

// While represents "while (cond) { body }".
type While struct {
	Condition Expr
	Body      []Stmt
}

func (*While) stmtNode() {}
func (w *While) String() string {
	return fmt.Sprintf("While(cond=%s, body=%d stmts)", w.Condition, len(w.Body))
}

// Program is the parser's top-level output: an ordered sequence of
// statements with no function boundaries.
type Program []Stmt
