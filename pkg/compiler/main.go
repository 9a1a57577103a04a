// Package compiler provides a lexer, parser, and code generator for the
// epsilang toy language, targeting FASM-syntax x86-64 assembly on Linux.
//
// Pipeline: source text → Lex → Parse → Generate → FASM assembly text
package compiler
