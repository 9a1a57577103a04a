package compiler

import (
	"fmt"
	"sort"
	"strings"
)

// GlobalSymbol is one entry of the global symbol table: a top-level (or
// function-free block-nested) `let` binding, addressed in the emitted
// assembly by its mangled .data label.
type GlobalSymbol struct {
	Name  string
	Label string // "var_<name>"
}

// SymbolTable holds the two side tables the code generator consults: the
// flat global table and the function table. Each *FuncDecl additionally
// carries its own Locals map directly (see ast.go), populated by the same
// declaration pre-pass that fills these two tables.
type SymbolTable struct {
	globals map[string]GlobalSymbol
	funcs   map[string]*FuncDecl
}

// NewSymbolTable returns an empty table, scoped to a single Generate call.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		globals: make(map[string]GlobalSymbol),
		funcs:   make(map[string]*FuncDecl),
	}
}

// DefineGlobal records name as a global, returning the existing symbol and
// true if it was already defined (re-declaring a global is not an error in
// this grammar; the first declaration wins, matching a single flat .data
// slot per name).
func (t *SymbolTable) DefineGlobal(name string) (GlobalSymbol, bool) {
	if sym, ok := t.globals[name]; ok {
		return sym, true
	}
	sym := GlobalSymbol{Name: name, Label: "var_" + name}
	t.globals[name] = sym
	return sym, false
}

// LookupGlobal resolves a name against the global table only.
func (t *SymbolTable) LookupGlobal(name string) (GlobalSymbol, bool) {
	sym, ok := t.globals[name]
	return sym, ok
}

// DefineFunc records a function definition under its name.
func (t *SymbolTable) DefineFunc(fn *FuncDecl) {
	t.funcs[fn.Name] = fn
}

// LookupFunc resolves a callee name against the function table.
func (t *SymbolTable) LookupFunc(name string) (*FuncDecl, bool) {
	fn, ok := t.funcs[name]
	return fn, ok
}

// GlobalNames returns every declared global's name, sorted for deterministic
// .data emission order.
func (t *SymbolTable) GlobalNames() []string {
	names := make([]string, 0, len(t.globals))
	for name := range t.globals {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Funcs returns the defined functions, sorted by name for deterministic
// emission order.
func (t *SymbolTable) Funcs() []*FuncDecl {
	names := make([]string, 0, len(t.funcs))
	for name := range t.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]*FuncDecl, 0, len(names))
	for _, name := range names {
		out = append(out, t.funcs[name])
	}
	return out
}

// String returns a deterministically ordered dump of the table, in the
// style of a compiler's -v/--dump-symbols output.
func (t *SymbolTable) String() string {
	var sb strings.Builder

	names := make([]string, 0, len(t.globals))
	for name := range t.globals {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) > 0 {
		sb.WriteString("Globals:\n")
		for _, name := range names {
			fmt.Fprintf(&sb, "  %-16s %s\n", name, t.globals[name].Label)
		}
	} else {
		sb.WriteString("Globals: (empty)\n")
	}

	fnames := make([]string, 0, len(t.funcs))
	for name := range t.funcs {
		fnames = append(fnames, name)
	}
	sort.Strings(fnames)
	if len(fnames) > 0 {
		sb.WriteString("Functions:\n")
		for _, name := range fnames {
			fn := t.funcs[name]
			fmt.Fprintf(&sb, "  %-16s params=%v locals=%d\n", name, fn.Params, len(fn.Locals))
		}
	} else {
		sb.WriteString("Functions: (empty)\n")
	}

	return sb.String()
}
