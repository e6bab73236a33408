// Package tui renders the hunt in the terminal with ANSI colours and reads
// single key presses in raw mode.
package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gookit/color"
	log "github.com/sirupsen/logrus"

	"treasurehunt/pkg/engine/input"
	"treasurehunt/pkg/engine/terminal"
	"treasurehunt/pkg/engine/world"
	"treasurehunt/pkg/game/i18n"
	"treasurehunt/pkg/game/renderer"
	"treasurehunt/pkg/game/state"
)

// Icon constants
const (
	PlayerIcon   = "@"
	IconWall     = "▒"
	IconTreasure = "$"
	IconHint     = "*"
	IconEmpty    = "·"
	IconHidden   = " "
)

// cellWidth is the number of columns each cell occupies
const cellWidth = 2

// linesOutsideMap counts title, border, status, instructions and the messages pane
const linesOutsideMap = 14

// ErrNotInteractive is returned by Init when stdin is not a terminal
var ErrNotInteractive = errors.New("stdin is not a terminal")

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out     io.Writer
	readKey func() (string, error)
	fits    func(cells int) bool

	colorWall     color.Style
	colorTreasure color.Style
	colorHint     color.Style
	colorPlayer   color.Style
	colorEmpty    color.Style
	colorTitle    color.Style
	colorStatus   color.Style
	colorSubtle   color.Style
}

// New creates a new TUI renderer writing to stdout
func New() *TUIRenderer {
	return &TUIRenderer{out: os.Stdout, readKey: input.ReadKey, fits: fitsTerminal}
}

// fitsTerminal reports whether a bordered map cells wide fits the terminal
func fitsTerminal(cells int) bool {
	return terminal.Fits(cells, cellWidth, linesOutsideMap)
}

// Init initializes the TUI renderer colours and checks the terminal
func (t *TUIRenderer) Init() error {
	t.initColors()
	if !terminal.IsInteractive() {
		return ErrNotInteractive
	}
	return nil
}

func (t *TUIRenderer) initColors() {
	t.colorWall = color.Style{color.FgGray}
	t.colorTreasure = color.Style{color.FgYellow, color.OpBold}
	t.colorHint = color.Style{color.FgGreen, color.OpBold}
	t.colorPlayer = color.Style{color.FgBlue, color.BgBlack, color.OpBold}
	t.colorEmpty = color.Style{color.FgWhite}
	t.colorTitle = color.Style{color.FgMagenta, color.OpBold}
	t.colorStatus = color.Style{color.FgCyan}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	terminal.Clear(t.out)
}

// GetInput reads one key press and returns the matching Intent.
// A read failure is treated as a request to quit.
func (t *TUIRenderer) GetInput() input.Intent {
	code, err := t.readKey()
	if err != nil {
		log.WithError(err).Error("reading key")
		return input.Intent{Action: input.ActionQuit}
	}
	raw := input.RawInput{
		Device:    input.DeviceTerminal,
		Code:      code,
		Timestamp: time.Now(),
	}
	return input.MapToIntent(input.NewDebouncedInput(raw))
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, msg)
}

// Run executes the game loop directly; the terminal has no event loop of its own
func (t *TUIRenderer) Run(loop func()) error {
	loop()
	return nil
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(s *state.Session) {
	var b strings.Builder

	b.WriteString(t.colorTitle.Sprint(i18n.T("Treasure Hunt")))
	if s.MapName != "" {
		b.WriteString(t.colorSubtle.Sprintf("  (%s)", s.MapName))
	}
	b.WriteString("\n\n")

	if t.fits != nil && !t.fits(s.Grid.Size()+2) {
		b.WriteString(t.colorSubtle.Sprint(i18n.T("(terminal too small, map may wrap)")))
		b.WriteString("\n")
	}

	t.writeMap(&b, s)
	b.WriteString("\n")
	b.WriteString(t.colorStatus.Sprint(renderer.StatusLine(s)))
	b.WriteString("\n")
	b.WriteString(t.colorSubtle.Sprint(i18n.T("Arrows/WASD move, 1 BFS hint, 2 A* hint, q quit")))
	b.WriteString("\n\n")
	t.writeMessagesPane(&b, s)

	fmt.Fprint(t.out, b.String())
}

// writeMap draws the grid inside a border, one row per line
func (t *TUIRenderer) writeMap(b *strings.Builder, s *state.Session) {
	size := s.Grid.Size()
	border := strings.Repeat("─", size*cellWidth)
	b.WriteString("┌" + border + "┐\n")
	for y := 0; y < size; y++ {
		b.WriteString("│")
		for x := 0; x < size; x++ {
			b.WriteString(t.renderCell(s, world.Pos(x, y)))
		}
		b.WriteString("│\n")
	}
	b.WriteString("└" + border + "┘\n")
}

// renderCell returns the string representation of a cell, cellWidth columns wide
func (t *TUIRenderer) renderCell(s *state.Session, p world.Position) string {
	switch renderer.CellGlyph(s, p) {
	case renderer.GlyphPlayer:
		return t.colorPlayer.Sprint(PlayerIcon + " ")
	case renderer.GlyphWall:
		return t.colorWall.Sprint(strings.Repeat(IconWall, cellWidth))
	case renderer.GlyphTreasure:
		return t.colorTreasure.Sprint(IconTreasure + " ")
	case renderer.GlyphHint:
		return t.colorHint.Sprint(IconHint + " ")
	case renderer.GlyphEmpty:
		return t.colorEmpty.Sprint(IconEmpty + " ")
	default:
		return strings.Repeat(IconHidden, cellWidth)
	}
}

// writeMessagesPane prints the recent messages, newest last
func (t *TUIRenderer) writeMessagesPane(b *strings.Builder, s *state.Session) {
	b.WriteString(t.colorSubtle.Sprint("─── " + i18n.T("Messages") + " ───"))
	b.WriteString("\n")
	for _, msg := range s.Messages {
		b.WriteString("- " + msg + "\n")
	}
}
