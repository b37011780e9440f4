package translator

import (
	"strconv"
	"strings"
)

// Emit walks prog and produces the target text. It is total on any
// well-formed Program: no return value carries an error. A statement kind
// emitStmt's switch does not recognize (there should never be one, since
// Stmt is a closed set) falls through to an "# unknown stmt" marker rather than
// panicking, as a safety net for future AST extensions.
func Emit(prog Program) string {
	return emitBody(prog, 0)
}

// emitBody renders a sequence of statements at the given indent level. Each
// statement's own text is followed by exactly one newline, unconditionally —
// for a simple statement (which carries no internal newline) this is just
// its line terminator, but for a compound statement (whose own text already
// ends in a newline from its last body line) this produces the blank line
// between blocks described for top-level output. The same join is used for
// nested bodies, so a compound statement nested inside another block gets
// the same spacing as one at the top level.
func emitBody(stmts []Stmt, indent int) string {
	var b strings.Builder
	for _, s := range stmts {
		b.WriteString(emitStmt(s, indent))
		b.WriteByte('\n')
	}
	return b.String()
}

func emitStmt(s Stmt, indent int) string {
	ind := strings.Repeat(" ", indent)
	switch v := s.(type) {
	case *VarDecl:
		if v.Init != nil {
			return ind + v.Name + " = " + emitExpr(v.Init)
		}
		return ind + v.Name + " = None"

	case *Assignment:
		return ind + v.Name + " = " + emitExpr(v.Value)

	case *Cout:
		parts := make([]string, len(v.Parts))
		for i, p := range v.Parts {
			parts[i] = emitExpr(p)
		}
		return ind + "print(" + strings.Join(parts, ", ") + ")"

	case *If:
		return emitIf(v, indent)

	case *For:
		return emitFor(v, indent)

	case *While:
		return emitWhile(v, indent)

	default:
		return ind + "# unknown stmt"
	}
}

func emitIf(i *If, indent int) string {
	ind := strings.Repeat(" ", indent)
	var b strings.Builder
	b.WriteString(ind + "if " + emitExpr(i.Condition) + ":\n")
	b.WriteString(emitBody(i.Body, indent+4))
	for _, ei := range i.ElseIfs {
		b.WriteString(ind + "elif " + emitExpr(ei.Condition) + ":\n")
		b.WriteString(emitBody(ei.Body, indent+4))
	}
	if len(i.ElseBody) > 0 {
		b.WriteString(ind + "else:\n")
		b.WriteString(emitBody(i.ElseBody, indent+4))
	}
	return b.String()
}

func emitWhile(w *While, indent int) string {
	ind := strings.Repeat(" ", indent)
	return ind + "while " + emitExpr(w.Condition) + ":\n" + emitBody(w.Body, indent+4)
}

// emitFor reinterprets the raw init/cond/increment text captured by
// parseForHeaderSegment into a Python-style range loop, per the algorithm:
// locate the loop variable and start expression across the first '=' in
// init, the end expression across the first relational operator in cond,
// and the step direction from whether "--" appears in increment once its
// spaces are removed. The spaces matter because "k--" lexes as two Minus
// tokens and is captured as "k - - ", which contains no literal "--".
func emitFor(f *For, indent int) string {
	ind := strings.Repeat(" ", indent)

	init := strings.TrimSpace(f.Init)
	cond := strings.TrimSpace(f.Cond)
	inc := strings.TrimSpace(f.Increment)

	var varName, start string
	if eq := strings.IndexByte(init, '='); eq >= 0 {
		left := strings.TrimSpace(init[:eq])
		left = strings.TrimPrefix(left, "int ")
		left = strings.TrimPrefix(left, "float ")
		varName = strings.TrimSpace(left)
		start = strings.TrimSpace(init[eq+1:])
	}

	end := "/*cond*/"
	if idx := strings.IndexAny(cond, "<>"); idx >= 0 {
		rest := idx + 1
		if rest < len(cond) && cond[rest] == '=' {
			rest++
		}
		end = strings.TrimSpace(cond[rest:])
	}

	step := 1
	if strings.Contains(strings.ReplaceAll(inc, " ", ""), "--") {
		step = -1
	}

	header := ind + "for " + varName + " in range(" + start + ", " + end
	if step != 1 {
		header += ", " + strconv.Itoa(step)
	}
	header += "):\n"

	return header + emitBody(f.Body, indent+4)
}

func emitExpr(e Expr) string {
	switch v := e.(type) {
	case *Number:
		return v.Lexeme
	case *Variable:
		return v.Name
	case *StringLiteral:
		return "\"" + v.Value + "\""
	case *Binary:
		return "(" + emitExpr(v.Left) + opSymbol(v.Op) + emitExpr(v.Right) + ")"
	default:
		return ""
	}
}

// opSymbol renders the Kind of a Binary node with the exact symbol it was
// parsed with; && and || are not modeled and never reach here.
func opSymbol(k Kind) string {
	switch k {
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Star:
		return "*"
	case Slash:
		return "/"
	case Less:
		return "<"
	case Greater:
		return ">"
	case LessEq:
		return "<="
	case GreaterEq:
		return ">="
	case Equals:
		return "=="
	case NotEq:
		return "!="
	default:
		return "?"
	}
}
