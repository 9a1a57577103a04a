package compiler

import "testing"

func TestDefineGlobalIsIdempotent(t *testing.T) {
	syms := NewSymbolTable()

	sym1, existed1 := syms.DefineGlobal("counter")
	if existed1 {
		t.Fatal("first DefineGlobal reported existed=true")
	}
	if sym1.Label != "var_counter" {
		t.Errorf("Label = %q, want %q", sym1.Label, "var_counter")
	}

	sym2, existed2 := syms.DefineGlobal("counter")
	if !existed2 {
		t.Fatal("second DefineGlobal reported existed=false")
	}
	if sym2 != sym1 {
		t.Errorf("second DefineGlobal returned %#v, want %#v", sym2, sym1)
	}
}

func TestLookupGlobalMiss(t *testing.T) {
	syms := NewSymbolTable()
	if _, ok := syms.LookupGlobal("nope"); ok {
		t.Error("LookupGlobal found an undeclared name")
	}
}

func TestFuncsSortedByName(t *testing.T) {
	syms := NewSymbolTable()
	syms.DefineFunc(&FuncDecl{Name: "zeta"})
	syms.DefineFunc(&FuncDecl{Name: "alpha"})
	syms.DefineFunc(&FuncDecl{Name: "mid"})

	got := syms.Funcs()
	want := []string{"alpha", "mid", "zeta"}
	if len(got) != len(want) {
		t.Fatalf("got %d funcs, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("Funcs()[%d].Name = %q, want %q", i, got[i].Name, name)
		}
	}
}

func TestGlobalNamesSorted(t *testing.T) {
	syms := NewSymbolTable()
	syms.DefineGlobal("zeta")
	syms.DefineGlobal("alpha")

	got := syms.GlobalNames()
	want := []string{"alpha", "zeta"}
	for i, name := range want {
		if got[i] != name {
			t.Errorf("GlobalNames()[%d] = %q, want %q", i, got[i], name)
		}
	}
}
