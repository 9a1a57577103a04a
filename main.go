//go:build !js

package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"epsilang/internal/diag"
	"epsilang/pkg/asm"
	"epsilang/pkg/compiler"
	"epsilang/pkg/utils"
)

func main() {
	outPath := flag.String("o", "", "output assembly path (default: ../output/output.asm)")
	noAssemble := flag.Bool("no-assemble", false, "skip invoking fasm/ld; just write the .asm file")
	verbose := flag.Bool("v", false, "dump the token stream and AST alongside the assembly")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: epsilang [-o out.asm] [-no-assemble] [-v] <source-file>")
		os.Exit(1)
	}
	sourcePath := flag.Arg(0)

	fullPath, _, err := utils.GetPathInfo(sourcePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to resolve %q: %v\n", sourcePath, err)
		os.Exit(1)
	}
	source, err := os.ReadFile(fullPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %q: %v\n", fullPath, err)
		os.Exit(1)
	}

	out := *outPath
	if out == "" {
		out = "../output/output.asm"
	}

	var diagLog bytes.Buffer
	sink := diag.NewSink(&diagLog)

	tokens := compiler.Lex(string(source), sink)
	stmts := compiler.Parse(tokens, sink)
	syms := compiler.NewSymbolTable()
	assembly := compiler.Generate(stmts, syms, sink)

	if *verbose {
		fmt.Printf("Tokens (%d)\n", len(tokens))
		for _, tok := range tokens {
			fmt.Println(" ", tok)
		}
		fmt.Println()

		fmt.Println("AST")
		for _, s := range stmts {
			fmt.Println(" ", s)
		}
		fmt.Println()
	}

	os.Stderr.Write(diagLog.Bytes())

	if sink.ErrorCount() > 0 {
		fmt.Fprintf(os.Stderr, "compilation failed with %d error(s)\n", sink.ErrorCount())
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create output directory for %q: %v\n", out, err)
		os.Exit(1)
	}
	if err := os.WriteFile(out, []byte(assembly), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write %q: %v\n", out, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d bytes -> %s\n", len(assembly), out)

	if *noAssemble {
		return
	}

	objPath := strings.TrimSuffix(out, filepath.Ext(out)) + ".o"
	binPath := strings.TrimSuffix(out, filepath.Ext(out))
	if err := asm.AssembleAndLink(nil, out, objPath, binPath); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Printf("assembled -> %s\n", binPath)
}
