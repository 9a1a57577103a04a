// Command inspector is a small GUI that compiles a source file through every
// pipeline stage and displays the token stream, the AST, and the generated
// assembly as three switchable panes — a windowed counterpart to the root
// epsilang command's -v stdout dump of tokens and AST.
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"epsilang/internal/diag"
	"epsilang/pkg/compiler"
	"epsilang/pkg/grid"
	"epsilang/pkg/utils"
)

type pane int

const (
	paneTokens pane = iota
	paneAST
	paneAssembly
	paneCount
)

var paneLabels = [...]string{"tokens", "ast", "assembly"}

const (
	lineHeight  = 16
	tabColWidth = 160
)

// Game holds the three rendered pipeline stages and which one is on screen.
// Like the teacher's desktop Game, it owns no compiler state that could be
// mutated concurrently with a Generate call — the text is computed once in
// main before ebiten.RunGame starts.
type Game struct {
	panes  [paneCount]string
	active pane
	scroll int
}

func (g *Game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyTab), inpututil.IsKeyJustPressed(ebiten.KeyRight):
		g.active = (g.active + 1) % paneCount
		g.scroll = 0
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		g.active = (g.active - 1 + paneCount) % paneCount
		g.scroll = 0
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		g.scroll++
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		if g.scroll > 0 {
			g.scroll--
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	for i, label := range paneLabels {
		col, row := grid.GetGridCoords(i, len(paneLabels))
		marker := "  "
		if pane(i) == g.active {
			marker = "> "
		}
		ebitenutil.DebugPrintAt(screen, marker+label, col*tabColWidth, row*lineHeight)
	}

	lines := strings.Split(g.panes[g.active], "\n")
	for row := 0; row+g.scroll < len(lines); row++ {
		ebitenutil.DebugPrintAt(screen, lines[row+g.scroll], 0, (row+1)*lineHeight)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return 900, 700
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: inspector <source-file>")
		os.Exit(2)
	}

	fullPath, _, err := utils.GetPathInfo(os.Args[1])
	if err != nil {
		log.Fatalf("failed to resolve %q: %v", os.Args[1], err)
	}
	source, err := os.ReadFile(fullPath)
	if err != nil {
		log.Fatalf("failed to read %q: %v", fullPath, err)
	}

	var diagLog bytes.Buffer
	sink := diag.NewSink(&diagLog)

	tokens := compiler.Lex(string(source), sink)
	var tokensText strings.Builder
	for _, tok := range tokens {
		fmt.Fprintln(&tokensText, tok)
	}

	stmts := compiler.Parse(tokens, sink)
	var astText strings.Builder
	for _, s := range stmts {
		fmt.Fprintln(&astText, s)
	}

	syms := compiler.NewSymbolTable()
	assemblyText := compiler.Generate(stmts, syms, sink)

	if sink.ErrorCount() > 0 {
		fmt.Fprintf(os.Stderr, "compilation reported %d error(s):\n%s", sink.ErrorCount(), diagLog.String())
	}

	game := &Game{}
	game.panes[paneTokens] = tokensText.String()
	game.panes[paneAST] = astText.String()
	game.panes[paneAssembly] = assemblyText

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(900, 700)
	ebiten.SetWindowTitle("epsilang inspector")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
