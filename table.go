package ux3270

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Table chrome: title/panel row, instruction, blank, column headers and
// separator above the data; count row, separator and function keys below.
const (
	tableHeaderLines = 5
	tableFooterLines = 3
)

// columnWidths sizes each column to its widest header or cell.
func columnWidths(columns []string, rows [][]string) []int {
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = runewidth.StringWidth(col)
	}
	for _, row := range rows {
		for i, val := range row {
			if i >= len(widths) {
				break
			}
			if w := runewidth.StringWidth(val); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// rowCountText is the standard "ROW x TO y OF z" position line.
func rowCountText(top, visible, total int) string {
	if total == 0 {
		return ""
	}
	end := top + visible
	if end > total {
		end = total
	}
	return fmt.Sprintf("ROW %d TO %d OF %d", top+1, end, total)
}

// Table is the read-only tabular display: column headers in intensified
// text, green data rows, F7/F8 pagination. Enter, F3 or Q returns.
//
// usage:
//
//	t := ux3270.NewTable("Stock Report", "INV05", []string{"SKU", "Desc", "Qty"})
//	t.AddRow("A-100", "Widget", "42")
//	t.Show()
type Table struct {
	Title       string
	PanelID     string
	Instruction string

	columns []string
	rows    [][]string
	session *Session

	pager  Paginator
	closed bool
}

// NewTable creates a table panel with the given column headers.
func NewTable(title, panelID string, columns []string) *Table {
	return &Table{
		Title:   strings.ToUpper(title),
		PanelID: strings.ToUpper(panelID),
		columns: columns,
	}
}

// WithSession attaches a specific session.
func (t *Table) WithSession(sess *Session) *Table {
	t.session = sess
	return t
}

// AddRow appends one data row.
func (t *Table) AddRow(values ...string) *Table {
	t.rows = append(t.rows, values)
	return t
}

func (t *Table) sess() *Session {
	if t.session == nil {
		t.session = DefaultSession()
	}
	return t.session
}

// Show displays the table and blocks until the user returns.
func (t *Table) Show() {
	sess := t.sess()
	sess.Term.Refresh()
	_, height := sess.Term.Size()
	t.pager = Paginator{
		Total:    len(t.rows),
		PageSize: listPageSize(height, tableHeaderLines, tableFooterLines),
	}
	t.closed = false
	sess.run(t)
	sess.Term.Clear()
	sess.Term.Flush()
}

func (t *Table) done() bool { return t.closed }

func (t *Table) render(full bool) {
	if !full {
		return
	}
	term := t.sess().Term
	_, height := term.Size()
	widths := columnWidths(t.columns, t.rows)

	term.Clear()
	term.HideCursor()
	if t.PanelID != "" {
		term.PrintAt(TitleRow, 0, Protected, t.PanelID)
	}
	if t.Title != "" {
		term.PrintCentered(TitleRow, TitleText, t.Title)
	}
	if t.Instruction != "" {
		term.PrintAt(InstructionRow, 0, Protected, t.Instruction)
	}

	renderGridHeader(term, BodyStartRow, t.columns, widths, false)

	start, end := t.pager.Bounds()
	for i, row := range t.rows[start:end] {
		term.MoveTo(BodyStartRow+2+i, 0)
		term.Print(Plain, "  ")
		renderGridRow(term, row, widths, Plain)
	}

	term.PrintAt(height-messageRowOffset, 0, InfoText, rowCountText(start, t.pager.PageSize, len(t.rows)))
	term.Separator(height - separatorRowOffset)

	hints := []string{InfoText.Sprint("F3=Return")}
	if t.pager.Multi() {
		if t.pager.CanBack() {
			hints = append(hints, InfoText.Sprint("F7=Up"))
		}
		if t.pager.CanFwd() {
			hints = append(hints, InfoText.Sprint("F8=Down"))
		}
	}
	hints = append(hints, DimText.Sprint("Enter=Return"))
	term.PrintAt(height-fkeyRowOffset, 0, Plain, strings.Join(hints, "  "))
}

func (t *Table) handleKey(k Key) bool {
	switch k.Kind {
	case KeyCancel, KeyEnter:
		t.closed = true
		return true
	case KeyPageUp:
		return t.pager.Back()
	case KeyPageDown:
		return t.pager.Fwd()
	case KeyRune:
		switch k.Rune {
		case 'q', 'Q':
			t.closed = true
			return true
		case 'k', 'K':
			return t.pager.Back()
		case 'j', 'J':
			return t.pager.Fwd()
		}
	}
	return false
}

// renderGridHeader draws the intensified column headers and the separator
// row beneath them. Grid dialogs with an action column pass action=true to
// prepend its one-character header.
func renderGridHeader(t *Terminal, row int, columns []string, widths []int, action bool) {
	t.MoveTo(row, 0)
	t.Print(Plain, "  ")
	if action {
		t.Print(HeaderText, "S")
		t.Print(Protected, " │ ")
	}
	for i, col := range columns {
		if i > 0 {
			t.Print(Protected, " │ ")
		}
		t.Print(HeaderText, pad(col, widths[i]))
	}

	t.MoveTo(row+1, 0)
	t.Print(Plain, "  ")
	var sep []string
	if action {
		sep = append(sep, "─")
	}
	for _, w := range widths {
		sep = append(sep, strings.Repeat("─", w))
	}
	t.Print(Protected, strings.Join(sep, "─┼─"))
}

// renderGridRow draws one data row's cells at the current cursor position.
func renderGridRow(t *Terminal, row []string, widths []int, style Style) {
	for i, w := range widths {
		if i > 0 {
			if style == Reverse {
				t.Print(Reverse, " │ ")
			} else {
				t.Print(Protected, " │ ")
			}
		}
		val := ""
		if i < len(row) {
			val = row[i]
		}
		t.Print(style, pad(val, w))
	}
}

// pad left-justifies s in a cell of width w, truncating when too wide.
func pad(s string, w int) string {
	sw := runewidth.StringWidth(s)
	if sw > w {
		return runewidth.Truncate(s, w, "")
	}
	return s + strings.Repeat(" ", w-sw)
}
