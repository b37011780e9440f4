package translator

import (
	"strings"

	"github.com/go-python/gpython/parser"
	"github.com/go-python/gpython/py"
)

// ValidatePythonSyntax parses src with a real Python grammar and returns a
// non-nil error if it is not syntactically valid Python. It exists purely as
// an external oracle for tests and the CLI's -verify-python flag: the core
// Translate pipeline never calls it and never fails on its account, since
// the Emitter's contract (§4.3) is that it is total regardless of whether
// the text it produces happens to parse as Python.
func ValidatePythonSyntax(src string) error {
	_, err := parser.Parse(strings.NewReader(src), "<emitted>", py.ExecMode)
	return err
}
