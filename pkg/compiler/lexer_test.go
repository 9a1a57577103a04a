package compiler

import (
	"bytes"
	"reflect"
	"testing"

	"epsilang/internal/diag"
)

func TestLex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:     "Empty",
			input:    "",
			expected: []Token{{Type: EOF, Lexeme: "", Line: 1}},
		},
		{
			name:  "Delimiters and operators",
			input: "+ - * / = == != >= <= > < ; , { } ( )",
			expected: []Token{
				{Type: PLUS, Lexeme: "+", Line: 1},
				{Type: MINUS, Lexeme: "-", Line: 1},
				{Type: STAR, Lexeme: "*", Line: 1},
				{Type: SLASH, Lexeme: "/", Line: 1},
				{Type: ASSIGN, Lexeme: "=", Line: 1},
				{Type: EQ, Lexeme: "==", Line: 1},
				{Type: NEQ, Lexeme: "!=", Line: 1},
				{Type: GE, Lexeme: ">=", Line: 1},
				{Type: LE, Lexeme: "<=", Line: 1},
				{Type: GT, Lexeme: ">", Line: 1},
				{Type: LT, Lexeme: "<", Line: 1},
				{Type: SEMI, Lexeme: ";", Line: 1},
				{Type: COMMA, Lexeme: ",", Line: 1},
				{Type: LBRACE, Lexeme: "{", Line: 1},
				{Type: RBRACE, Lexeme: "}", Line: 1},
				{Type: LPAREN, Lexeme: "(", Line: 1},
				{Type: RPAREN, Lexeme: ")", Line: 1},
				{Type: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Keywords and identifiers",
			input: "exit let if else while return fn counter _x2",
			expected: []Token{
				{Type: EXIT, Lexeme: "exit", Line: 1},
				{Type: LET, Lexeme: "let", Line: 1},
				{Type: IF, Lexeme: "if", Line: 1},
				{Type: ELSE, Lexeme: "else", Line: 1},
				{Type: WHILE, Lexeme: "while", Line: 1},
				{Type: RETURN, Lexeme: "return", Line: 1},
				{Type: FN, Lexeme: "fn", Line: 1},
				{Type: IDENTIFIER, Lexeme: "counter", Line: 1},
				{Type: IDENTIFIER, Lexeme: "_x2", Line: 1},
				{Type: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Integers",
			input: "0 42 1000000",
			expected: []Token{
				{Type: INT_LIT, Lexeme: "0", Line: 1},
				{Type: INT_LIT, Lexeme: "42", Line: 1},
				{Type: INT_LIT, Lexeme: "1000000", Line: 1},
				{Type: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Line tracking",
			input: "let a = 1;\nlet b = 2;",
			expected: []Token{
				{Type: LET, Lexeme: "let", Line: 1},
				{Type: IDENTIFIER, Lexeme: "a", Line: 1},
				{Type: ASSIGN, Lexeme: "=", Line: 1},
				{Type: INT_LIT, Lexeme: "1", Line: 1},
				{Type: SEMI, Lexeme: ";", Line: 1},
				{Type: LET, Lexeme: "let", Line: 2},
				{Type: IDENTIFIER, Lexeme: "b", Line: 2},
				{Type: ASSIGN, Lexeme: "=", Line: 2},
				{Type: INT_LIT, Lexeme: "2", Line: 2},
				{Type: SEMI, Lexeme: ";", Line: 2},
				{Type: EOF, Lexeme: "", Line: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := diag.NewSink(&bytes.Buffer{})
			got := Lex(tt.input, sink)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Lex(%q) = %v, want %v", tt.input, got, tt.expected)
			}
			if sink.ErrorCount() != 0 {
				t.Errorf("Lex(%q) reported %d unexpected error(s)", tt.input, sink.ErrorCount())
			}
		})
	}
}

func TestLexSkipsBadCharacterAndReportsError(t *testing.T) {
	var buf bytes.Buffer
	sink := diag.NewSink(&buf)

	got := Lex("1 @ 2", sink)

	want := []Token{
		{Type: INT_LIT, Lexeme: "1", Line: 1},
		{Type: INT_LIT, Lexeme: "2", Line: 1},
		{Type: EOF, Lexeme: "", Line: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Lex with bad char = %v, want %v", got, want)
	}
	if sink.ErrorCount() != 1 {
		t.Errorf("ErrorCount() = %d, want 1", sink.ErrorCount())
	}
}

func TestLexBareBangIsAnError(t *testing.T) {
	var buf bytes.Buffer
	sink := diag.NewSink(&buf)

	Lex("a ! b", sink)

	if sink.ErrorCount() != 1 {
		t.Errorf("ErrorCount() = %d, want 1", sink.ErrorCount())
	}
}
