// Package asm invokes the external fasm/ld toolchain to turn generated FASM
// source into a runnable ELF64 binary. It replaces the original C++
// implementation's system() shell-string calls with argv-based os/exec
// invocations, closing the shell-injection surface those calls had.
package asm

import (
	"fmt"
	"os/exec"
)

// Runner executes an external command and reports combined stdout/stderr
// alongside any error, letting tests substitute a fake without touching the
// filesystem or spawning a real fasm/ld.
type Runner interface {
	Run(name string, args ...string) (output []byte, err error)
}

// execRunner shells out for real via os/exec.
type execRunner struct{}

func (execRunner) Run(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	return cmd.CombinedOutput()
}

// DefaultRunner is the Runner used by Assemble and Link when none is given.
var DefaultRunner Runner = execRunner{}

// Assemble invokes fasm on asmPath, producing an ELF64 object file at
// objPath. Assembler failures are returned as an error carrying fasm's
// combined output; they are not reported through a diagnostics sink, since
// they are a toolchain failure rather than a semantic error in the source.
func Assemble(runner Runner, asmPath, objPath string) error {
	if runner == nil {
		runner = DefaultRunner
	}
	out, err := runner.Run("fasm", asmPath, objPath)
	if err != nil {
		return fmt.Errorf("fasm %s %s: %w\n%s", asmPath, objPath, err, out)
	}
	return nil
}

// Link invokes ld on objPath, producing an executable at binPath.
func Link(runner Runner, objPath, binPath string) error {
	if runner == nil {
		runner = DefaultRunner
	}
	out, err := runner.Run("ld", "-o", binPath, objPath)
	if err != nil {
		return fmt.Errorf("ld -o %s %s: %w\n%s", binPath, objPath, err, out)
	}
	return nil
}

// AssembleAndLink runs Assemble then Link, leaving the intermediate object
// file at objPath on disk (the caller decides whether to remove it).
func AssembleAndLink(runner Runner, asmPath, objPath, binPath string) error {
	if err := Assemble(runner, asmPath, objPath); err != nil {
		return err
	}
	return Link(runner, objPath, binPath)
}
