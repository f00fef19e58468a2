package ux3270

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// Model-2 fallback dimensions, used whenever the terminal cannot be queried.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Terminal is the output half of a session: buffered ANSI writes plus the
// size query. Coordinates are 0-indexed in the API and translated to the
// 1-indexed wire form.
type Terminal struct {
	w      *bufio.Writer
	fd     int
	isTerm bool

	width  int
	height int
}

// NewTerminal wraps w for panel output. Pass nil for os.Stdout. Size is
// queried immediately and again on every Refresh.
func NewTerminal(w io.Writer) *Terminal {
	if w == nil {
		w = os.Stdout
	}
	t := &Terminal{w: bufio.NewWriter(w), fd: -1}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		t.fd = int(f.Fd())
		t.isTerm = true
	}
	t.Refresh()
	return t
}

// Refresh re-queries the terminal size, falling back to 24x80 (IBM 3270
// Model 2) when the query fails. Dialogs call this once per visit; a resize
// while a panel is open is not observed.
func (t *Terminal) Refresh() {
	if t.isTerm {
		if w, h, err := term.GetSize(t.fd); err == nil && w > 0 && h > 0 {
			t.width, t.height = w, h
			return
		}
	}
	t.width, t.height = DefaultWidth, DefaultHeight
}

// Size returns the dimensions captured by the last Refresh.
func (t *Terminal) Size() (width, height int) {
	return t.width, t.height
}

// Clear erases the screen and homes the cursor.
func (t *Terminal) Clear() {
	t.w.WriteString("\x1b[2J\x1b[H")
}

// MoveTo positions the cursor (0-indexed).
func (t *Terminal) MoveTo(row, col int) {
	fmt.Fprintf(t.w, "\x1b[%d;%dH", row+1, col+1)
}

// Print writes styled text at the current cursor position.
func (t *Terminal) Print(s Style, text string) {
	t.w.WriteString(s.Sprint(text))
}

// PrintAt positions the cursor and writes styled text.
func (t *Terminal) PrintAt(row, col int, s Style, text string) {
	t.MoveTo(row, col)
	t.Print(s, text)
}

// PrintCentered writes styled text centered on the given row.
func (t *Terminal) PrintCentered(row int, s Style, text string) {
	col := (t.width - runewidth.StringWidth(text)) / 2
	if col < 0 {
		col = 0
	}
	t.PrintAt(row, col, s, text)
}

// ClearLine blanks an entire row.
func (t *Terminal) ClearLine(row int) {
	t.MoveTo(row, 0)
	t.w.WriteString("\x1b[2K")
}

// Separator draws the full-width CUA separator line.
func (t *Terminal) Separator(row int) {
	t.PrintAt(row, 0, DimText, strings.Repeat("─", t.width))
}

// ShowCursor makes the cursor visible.
func (t *Terminal) ShowCursor() {
	t.w.WriteString("\x1b[?25h")
}

// HideCursor hides the cursor.
func (t *Terminal) HideCursor() {
	t.w.WriteString("\x1b[?25l")
}

// Flush pushes buffered output to the terminal.
func (t *Terminal) Flush() {
	t.w.Flush()
}
