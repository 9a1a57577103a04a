package compiler

// runDeclarationPass walks the top-level program once, populating syms'
// global and function tables and, for every FuncDecl reachable from the top
// level, that function's own Locals slot table. It is idempotent: re-running
// it over an already-processed program leaves every table unchanged, since
// DefineGlobal is a no-op on a name that is already present, DefineFunc
// stores the same *FuncDecl under the same name again, and declLocals only
// assigns a slot to a name that does not have one yet.
func runDeclarationPass(stmts []Stmt, syms *SymbolTable) {
	for _, s := range stmts {
		switch n := s.(type) {
		case *LetStmt:
			syms.DefineGlobal(n.Name)
		case *IfStmt:
			declGlobalsInBranch(n.Then, syms)
			declGlobalsInBranch(n.Else, syms)
		case *WhileStmt:
			declGlobalsInBranch(n.Body, syms)
		case *FuncDecl:
			syms.DefineFunc(n)
			if n.Locals == nil {
				n.Locals = make(map[string]int)
			}
			declLocals(n.Body, n)
		}
	}
}

// declGlobalsInBranch handles a `let` nested in top-level control flow: with
// no enclosing function, it is still a global declaration.
func declGlobalsInBranch(s Stmt, syms *SymbolTable) {
	switch n := s.(type) {
	case nil:
		return
	case *BlockStmt:
		for _, inner := range n.Stmts {
			switch in := inner.(type) {
			case *LetStmt:
				syms.DefineGlobal(in.Name)
			case *IfStmt:
				declGlobalsInBranch(in.Then, syms)
				declGlobalsInBranch(in.Else, syms)
			case *WhileStmt:
				declGlobalsInBranch(in.Body, syms)
			}
		}
	case *IfStmt:
		declGlobalsInBranch(n.Then, syms)
		declGlobalsInBranch(n.Else, syms)
	}
}

// declLocals walks a function body, assigning the next free slot index (in
// declaration order, 0-based) to every `let` it finds, at any nesting depth
// inside the function. All locals of a function share one flat slot space;
// there is no per-block shadowing in this grammar.
func declLocals(stmts []Stmt, fn *FuncDecl) {
	for _, s := range stmts {
		switch n := s.(type) {
		case *LetStmt:
			if _, ok := fn.Locals[n.Name]; !ok {
				fn.Locals[n.Name] = len(fn.Locals)
			}
		case *BlockStmt:
			declLocals(n.Stmts, fn)
		case *IfStmt:
			declLocals(n.Then.Stmts, fn)
			if n.Else != nil {
				declLocalsInElse(n.Else, fn)
			}
		case *WhileStmt:
			declLocals(n.Body.Stmts, fn)
		}
	}
}

func declLocalsInElse(s Stmt, fn *FuncDecl) {
	switch n := s.(type) {
	case *BlockStmt:
		declLocals(n.Stmts, fn)
	case *IfStmt:
		declLocals(n.Then.Stmts, fn)
		if n.Else != nil {
			declLocalsInElse(n.Else, fn)
		}
	}
}
