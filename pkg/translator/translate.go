package translator

// Translate is the pure entry point for the core pipeline: lex, parse, emit.
// It is a pure function from source text to output text or error — no
// files, no globals, no process-wide state. The Lexer never fails; any
// error returned here originates from the Parser.
func Translate(src string) (string, error) {
	tokens := Lex(src)

	prog, err := Parse(tokens, src)
	if err != nil {
		return "", err
	}

	return Emit(prog), nil
}
