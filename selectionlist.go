package ux3270

import (
	"strings"
)

// SelectionList is the CUA pick list behind F4=Prompt: a scrollable grid
// with a one-character action column. The user selects a row by typing S
// beside it and pressing Enter, or by moving the cursor bar onto it and
// pressing Enter. An optional F6=Add callback creates a new row and returns
// it as the selection.
//
// usage:
//
//	l := ux3270.NewSelectionList("Select Item", "INV04", []string{"SKU", "Desc"})
//	l.AddRow("A-100", "Widget")
//	row, ok := l.Show()
type SelectionList struct {
	Title       string
	PanelID     string
	Instruction string

	columns []string
	rows    [][]string
	onAdd   func() ([]string, bool)
	session *Session

	// runtime
	pageSize int
	top      int // first visible row index
	cursor   int // cursor bar position, relative to top
	marked   int // row index carrying the S action, -1 when none
	finished bool
	selected []string
	ok       bool
}

// NewSelectionList creates a selection list with the given data columns (the
// action column is implicit).
func NewSelectionList(title, panelID string, columns []string) *SelectionList {
	return &SelectionList{
		Title:       strings.ToUpper(title),
		PanelID:     strings.ToUpper(panelID),
		Instruction: "Type S to select item",
		columns:     columns,
	}
}

// WithSession attaches a specific session.
func (l *SelectionList) WithSession(sess *Session) *SelectionList {
	l.session = sess
	return l
}

// AddRow appends one selectable row.
func (l *SelectionList) AddRow(values ...string) *SelectionList {
	l.rows = append(l.rows, values)
	return l
}

// OnAdd enables F6=Add. The callback runs with the terminal restored; it
// should create a new item and return it as a row, or ok=false when the user
// backs out. Either way the list closes: a created row becomes the selection.
func (l *SelectionList) OnAdd(fn func() ([]string, bool)) *SelectionList {
	l.onAdd = fn
	return l
}

func (l *SelectionList) sess() *Session {
	if l.session == nil {
		l.session = DefaultSession()
	}
	return l.session
}

// Show displays the list and blocks until a row is selected or the user
// cancels. An empty list returns immediately with ok=false.
func (l *SelectionList) Show() ([]string, bool) {
	if len(l.rows) == 0 && l.onAdd == nil {
		return nil, false
	}
	sess := l.sess()
	sess.Term.Refresh()
	_, height := sess.Term.Size()
	l.pageSize = listPageSize(height, tableHeaderLines, tableFooterLines)
	l.top, l.cursor, l.marked = 0, 0, -1
	l.finished, l.selected, l.ok = false, nil, false

	sess.run(l)
	sess.Term.Clear()
	sess.Term.Flush()
	return l.selected, l.ok
}

func (l *SelectionList) done() bool { return l.finished }

func (l *SelectionList) render(full bool) {
	if !full {
		return
	}
	t := l.sess().Term
	_, height := t.Size()
	widths := columnWidths(l.columns, l.rows)

	t.Clear()
	t.HideCursor()
	if l.PanelID != "" {
		t.PrintAt(TitleRow, 0, Protected, l.PanelID)
	}
	if l.Title != "" {
		t.PrintCentered(TitleRow, TitleText, l.Title)
	}
	if l.Instruction != "" {
		t.PrintAt(InstructionRow, 0, Protected, l.Instruction)
	}

	renderGridHeader(t, BodyStartRow, l.columns, widths, true)

	end := l.top + l.pageSize
	if end > len(l.rows) {
		end = len(l.rows)
	}
	for i, row := range l.rows[l.top:end] {
		abs := l.top + i
		style := Plain
		if i == l.cursor {
			style = Reverse
		}
		action := " "
		if abs == l.marked {
			action = "S"
		}
		t.MoveTo(BodyStartRow+2+i, 0)
		t.Print(Plain, "  ")
		if style == Reverse {
			t.Print(Reverse, action)
			t.Print(Reverse, " │ ")
		} else {
			t.Print(InputText, action)
			t.Print(Protected, " │ ")
		}
		renderGridRow(t, row, widths, style)
	}

	t.PrintAt(height-messageRowOffset, 0, InfoText, rowCountText(l.top, l.pageSize, len(l.rows)))
	t.Separator(height - separatorRowOffset)

	hints := []string{InfoText.Sprint("F3=Cancel")}
	if l.onAdd != nil {
		hints = append(hints, InfoText.Sprint("F6=Add"))
	}
	hints = append(hints, InfoText.Sprint("Enter=Select"))
	if len(l.rows) > l.pageSize {
		if l.top > 0 {
			hints = append(hints, InfoText.Sprint("F7=Bkwd"))
		}
		if l.top+l.pageSize < len(l.rows) {
			hints = append(hints, InfoText.Sprint("F8=Fwd"))
		}
	}
	t.PrintAt(height-fkeyRowOffset, 0, Plain, strings.Join(hints, "  "))
}

func (l *SelectionList) handleKey(k Key) bool {
	switch k.Kind {
	case KeyCancel:
		l.finished = true
		return true

	case KeyAdd:
		if l.onAdd == nil {
			return false
		}
		var row []string
		var ok bool
		l.sess().suspend(func() { row, ok = l.onAdd() })
		if ok {
			l.selected, l.ok = row, true
		}
		l.finished = true
		return true

	case KeyEnter:
		idx := l.top + l.cursor
		if l.marked >= 0 {
			idx = l.marked
		}
		if idx >= 0 && idx < len(l.rows) {
			l.selected, l.ok = l.rows[idx], true
			l.finished = true
		}
		return true

	case KeyUp:
		if l.cursor > 0 {
			l.cursor--
		} else if l.top > 0 {
			l.top--
		}
		return true
	case KeyDown:
		if l.cursor < l.pageSize-1 && l.top+l.cursor < len(l.rows)-1 {
			l.cursor++
		} else if l.top+l.pageSize < len(l.rows) {
			l.top++
		}
		return true

	case KeyPageUp:
		if l.top > 0 {
			l.top -= l.pageSize
			if l.top < 0 {
				l.top = 0
			}
			l.cursor = 0
		}
		return true
	case KeyPageDown:
		if l.top+l.pageSize < len(l.rows) {
			l.top += l.pageSize
			if max := len(l.rows) - l.pageSize; l.top > max {
				l.top = max
			}
			l.cursor = 0
		}
		return true

	case KeyRune:
		if k.Rune == 's' || k.Rune == 'S' {
			abs := l.top + l.cursor
			if abs == l.marked {
				l.marked = -1 // toggle off
			} else {
				l.marked = abs // single select
			}
			return true
		}
	}
	return false
}
