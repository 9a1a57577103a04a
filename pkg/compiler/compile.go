package compiler

import (
	"fmt"

	"epsilang/internal/diag"
)

// Compile runs the full Lex → Parse → Generate pipeline over src and
// returns the resulting FASM assembly text. If sink has recorded any
// error-severity diagnostic by the end of the pipeline, Compile returns the
// (possibly partial or ill-formed) assembly text alongside a non-nil error
// reporting how many diagnostics were raised; the caller decides whether to
// write that text out or discard it.
func Compile(src string, sink *diag.Sink) (string, error) {
	tokens := Lex(src, sink)
	stmts := Parse(tokens, sink)
	syms := NewSymbolTable()
	asm := Generate(stmts, syms, sink)

	if n := sink.ErrorCount(); n > 0 {
		return asm, fmt.Errorf("compilation failed with %d error(s)", n)
	}
	return asm, nil
}
