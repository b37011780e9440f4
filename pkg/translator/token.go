package translator

import "fmt"

// Kind identifies the category of a lexed token. The set is closed: every
// construct this translator's source language admits maps to exactly one
// Kind, including constructs (Percent, PlusPlus) that are tokenized but
// have no expression-grammar production of their own. Note there is no
// MinusMinus kind: unlike '+', a second '-' gets no lookahead special case,
// so "k--" lexes as two adjacent Minus tokens (see the for-header raw
// capture discussion in emitter.go).
type Kind int

const (
	EOF Kind = iota // sentinel: end of input

	// Literals
	Identifier
	NumberLiteral
	StringLit

	// Keywords
	Int
	Float
	KindIf
	Else
	KindFor
	KindWhile
	KindCout
	Endl
	Main

	// Operators
	Assign
	Equals
	Plus
	PlusPlus
	Minus
	Star
	Slash
	Percent
	Less
	LessEq
	Greater
	GreaterEq
	NotEq
	Shl // << (stream operator)

	// Punctuation
	LParen
	RParen
	LBrace
	RBrace
	Semicolon

	// Control
	Unknown // lex-level anomaly; carries the single offending character
)

// kindNames is indexed by Kind; every Kind above must have an entry here.
var kindNames = [...]string{
	EOF:           "EOF",
	Identifier:    "Identifier",
	NumberLiteral: "NumberLiteral",
	StringLit:     "StringLit",
	Int:           "Int",
	Float:         "Float",
	KindIf:        "If",
	Else:          "Else",
	KindFor:       "For",
	KindWhile:     "While",
	KindCout:      "Cout",
	Endl:          "Endl",
	Main:          "Main",
	Assign:        "Assign",
	Equals:        "Equals",
	Plus:          "Plus",
	PlusPlus:      "PlusPlus",
	Minus:         "Minus",
	Star:          "Star",
	Slash:         "Slash",
	Percent:       "Percent",
	Less:          "Less",
	LessEq:        "LessEq",
	Greater:       "Greater",
	GreaterEq:     "GreaterEq",
	NotEq:         "NotEq",
	Shl:           "Shl",
	LParen:        "LParen",
	RParen:        "RParen",
	LBrace:        "LBrace",
	RBrace:        "RBrace",
	Semicolon:     "Semicolon",
	Unknown:       "Unknown",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// keywords maps source text to its keyword Kind. Any identifier text not in
// this set lexes as Identifier.
var keywords = map[string]Kind{
	"int":   Int,
	"float": Float,
	"if":    KindIf,
	"else":  Else,
	"for":   KindFor,
	"while": KindWhile,
	"cout":  KindCout,
	"endl":  Endl,
	"main":  Main,
}

// Token is a single lexical unit produced by the Lexer: an immutable
// (kind, lexeme) pair plus the 1-based source line it was scanned from.
// Tokens are never mutated once produced.
type Token struct {
	Kind   Kind
	Lexeme string
	Line   int
}

func (t Token) String() string {
	return fmt.Sprintf("%-14s %-14q line %d", t.Kind, t.Lexeme, t.Line)
}
