package ux3270

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// WorkWithList chrome: title, instruction, blank, action legend, blank,
// column headers and separator above the data rows. Filter fields add one
// row each between the legend and the headers.
const (
	workWithLegendRow   = 3
	workWithFilterRow   = 4
	workWithHeaderRow   = 5
	workWithDataRow     = 7
	workWithHeaderLines = 7
	workWithFooterLines = 3
	workWithActionCol   = 2 // screen column of the per-row action field
)

// WorkAction is one legend entry: a short code and its description.
type WorkAction struct {
	Code string
	Desc string
}

// WorkItem is one processed action: the code the user typed and the row it
// was typed against.
type WorkItem struct {
	Code  string
	Index int
	Row   []string
}

// WorkWithList is the AS/400-style "work with" panel: a record list with a
// one-character action field per row. The user types action codes against any
// number of rows and presses Enter to process them all at once. Optional
// filter fields sit above the list and share its Tab chain; Enter with filter
// input and no actions hands control back so the caller can rebuild the list.
//
// usage:
//
//	w := ux3270.NewWorkWithList("Work with Items", "INV03", []string{"SKU", "Desc", "Qty"})
//	w.AddAction("2", "Change").AddAction("4", "Delete")
//	w.AddRow("A-100", "Widget", "42")
//	items, ok := w.Show()
type WorkWithList struct {
	Title       string
	PanelID     string
	Instruction string

	columns []string
	rows    [][]string
	actions []WorkAction
	filters []*Field
	inputs  []string // typed action code per row
	onAdd   func()
	session *Session

	// runtime
	pageSize int
	top      int
	cursor   int // row within the visible page
	ffocus   int // filter field index, -1 while the cursor is in the list
	fcursor  int // text cursor within the focused filter
	finished bool
	result   []WorkItem
	ok       bool
}

// NewWorkWithList creates a work-with panel with the given data columns (the
// action column is implicit).
func NewWorkWithList(title, panelID string, columns []string) *WorkWithList {
	return &WorkWithList{
		Title:       strings.ToUpper(title),
		PanelID:     strings.ToUpper(panelID),
		Instruction: "Type action code, press Enter to process.",
		columns:     columns,
	}
}

// WithSession attaches a specific session.
func (w *WorkWithList) WithSession(sess *Session) *WorkWithList {
	w.session = sess
	return w
}

// AddAction defines a legend entry. Only defined codes are processed on
// Enter; anything else typed into an action field is carried but ignored.
func (w *WorkWithList) AddAction(code, desc string) *WorkWithList {
	w.actions = append(w.actions, WorkAction{Code: strings.ToUpper(code), Desc: desc})
	return w
}

// AddFilter adds a positioning/filter field above the list. The caller keeps
// the pointer and reads its Value after Show returns; the list itself never
// interprets filters.
func (w *WorkWithList) AddFilter(f *Field) *WorkWithList {
	if f.Value == "" {
		f.Value = f.Default
	}
	w.filters = append(w.filters, f)
	return w
}

// OnAdd enables F6=Add. The callback runs with the terminal restored and the
// list closes afterward with ok=true and no items, so the caller's loop can
// rebuild against fresh data.
func (w *WorkWithList) OnAdd(fn func()) *WorkWithList {
	w.onAdd = fn
	return w
}

// AddRow appends one record.
func (w *WorkWithList) AddRow(values ...string) *WorkWithList {
	w.rows = append(w.rows, values)
	w.inputs = append(w.inputs, "")
	return w
}

func (w *WorkWithList) sess() *Session {
	if w.session == nil {
		w.session = DefaultSession()
	}
	return w.session
}

// Show displays the list and blocks until actions are processed or the user
// exits. Returns the typed actions in row order. ok=false means F3=Exit;
// ok=true with no items means F6=Add ran or the filters changed, and the
// caller should rebuild.
func (w *WorkWithList) Show() ([]WorkItem, bool) {
	sess := w.sess()
	sess.Term.Refresh()
	_, height := sess.Term.Size()
	w.pageSize = listPageSize(height, workWithHeaderLines+len(w.filters), workWithFooterLines)
	w.top, w.cursor = 0, 0
	w.ffocus, w.fcursor = -1, 0
	if len(w.filters) > 0 {
		w.ffocus = 0
		w.fcursor = len([]rune(w.filters[0].Value))
	}
	w.finished, w.result, w.ok = false, nil, false

	sess.run(w)
	sess.Term.Clear()
	sess.Term.Flush()
	return w.result, w.ok
}

func (w *WorkWithList) done() bool { return w.finished }

func (w *WorkWithList) headerRow() int { return workWithHeaderRow + len(w.filters) }
func (w *WorkWithList) dataRow() int   { return workWithDataRow + len(w.filters) }

// filterCol is the shared input column for the filter fields.
func (w *WorkWithList) filterCol() int {
	maxLabel := 0
	for _, f := range w.filters {
		if lw := runewidth.StringWidth(f.Label); lw > maxLabel {
			maxLabel = lw
		}
	}
	col := LabelCol + maxLabel + MinLabelFieldGap
	if col < DefaultFieldCol {
		col = DefaultFieldCol
	}
	return col
}

func (w *WorkWithList) visible() int {
	n := len(w.rows) - w.top
	if n > w.pageSize {
		n = w.pageSize
	}
	return n
}

func (w *WorkWithList) render(full bool) {
	t := w.sess().Term
	if full {
		w.renderAll(t)
	} else if w.ffocus >= 0 {
		w.renderFilter(t, w.ffocus)
	} else {
		// Only the action fields can have changed.
		for i := 0; i < w.visible(); i++ {
			w.renderAction(t, i)
		}
	}
	w.placeCursor(t)
}

func (w *WorkWithList) placeCursor(t *Terminal) {
	if w.ffocus >= 0 {
		t.MoveTo(workWithFilterRow+w.ffocus, w.filterCol()+w.fcursor)
		t.ShowCursor()
		return
	}
	if w.visible() > 0 {
		t.MoveTo(w.dataRow()+w.cursor, workWithActionCol)
		t.ShowCursor()
		return
	}
	t.HideCursor()
}

func (w *WorkWithList) renderAction(t *Terminal, i int) {
	val := w.inputs[w.top+i]
	if val == "" {
		val = "_"
	}
	t.PrintAt(w.dataRow()+i, workWithActionCol, InputText, val)
}

func (w *WorkWithList) renderFilter(t *Terminal, i int) {
	f := w.filters[i]
	col := w.filterCol()
	t.MoveTo(workWithFilterRow+i, col)
	t.Print(InputText, f.Value)
	if remaining := f.Length - len([]rune(f.Value)); remaining > 0 {
		t.Print(DimText, strings.Repeat("_", remaining))
	}
}

func (w *WorkWithList) renderAll(t *Terminal) {
	width, height := t.Size()
	widths := columnWidths(w.columns, w.rows)

	t.Clear()
	if w.PanelID != "" {
		t.PrintAt(TitleRow, 0, Protected, w.PanelID)
	}
	if w.Title != "" {
		t.PrintCentered(TitleRow, TitleText, w.Title)
	}
	if w.Instruction != "" {
		t.PrintAt(InstructionRow, 0, Protected, w.Instruction)
	}

	if len(w.actions) > 0 {
		legend := make([]string, len(w.actions))
		for i, a := range w.actions {
			legend[i] = a.Code + "=" + a.Desc
		}
		t.PrintAt(workWithLegendRow, LabelCol, Protected, strings.Join(legend, "  "))
	}

	for i, f := range w.filters {
		t.PrintAt(workWithFilterRow+i, LabelCol, Protected,
			leaderText(f.Label, w.filterCol()-LabelCol))
		w.renderFilter(t, i)
	}

	t.MoveTo(w.headerRow(), 0)
	t.Print(Plain, "  ")
	t.Print(HeaderText, "Act")
	for i, col := range w.columns {
		t.Print(Plain, "  ")
		t.Print(HeaderText, pad(col, widths[i]))
	}

	t.MoveTo(w.headerRow()+1, 0)
	sep := []string{"───"}
	for _, cw := range widths {
		sep = append(sep, strings.Repeat("─", cw))
	}
	t.Print(Plain, "  ")
	t.Print(Protected, strings.Join(sep, "──"))

	for i := 0; i < w.visible(); i++ {
		row := w.rows[w.top+i]
		w.renderAction(t, i)
		t.MoveTo(w.dataRow()+i, workWithActionCol+1)
		for j, cw := range widths {
			val := ""
			if j < len(row) {
				val = row[j]
			}
			t.Print(Plain, "  ")
			t.Print(Plain, pad(val, cw))
		}
	}

	if len(w.rows) > 0 {
		msg := rowCountText(w.top, w.pageSize, len(w.rows))
		t.PrintAt(height-messageRowOffset, width-len(msg)-1, InfoText, msg)
	}
	t.Separator(height - separatorRowOffset)

	hints := []string{InfoText.Sprint("F3=Exit")}
	if w.onAdd != nil {
		hints = append(hints, InfoText.Sprint("F6=Add"))
	}
	if len(w.rows) > w.pageSize {
		if w.top > 0 {
			hints = append(hints, InfoText.Sprint("F7=Up"))
		}
		if w.top+w.pageSize < len(w.rows) {
			hints = append(hints, InfoText.Sprint("F8=Down"))
		}
	}
	t.PrintAt(height-fkeyRowOffset, 0, Plain, strings.Join(hints, "  "))
}

func (w *WorkWithList) validCode(code string) bool {
	for _, a := range w.actions {
		if a.Code == code {
			return true
		}
	}
	return false
}

// advance moves the cursor to the next row, scrolling when the page is full
// and wrapping into the filter fields from the last row. Reports whether a
// full redraw is needed.
func (w *WorkWithList) advance() bool {
	if w.cursor < w.visible()-1 {
		w.cursor++
		return false
	}
	if w.top+w.pageSize < len(w.rows) {
		w.top++
		return true
	}
	if len(w.filters) > 0 {
		w.focusFilter(0)
	}
	return false
}

// retreat is the Backtab counterpart: up a row, scrolling at the top edge
// and wrapping into the last filter field.
func (w *WorkWithList) retreat() bool {
	if w.cursor > 0 {
		w.cursor--
		return false
	}
	if w.top > 0 {
		w.top--
		return true
	}
	if len(w.filters) > 0 {
		w.focusFilter(len(w.filters) - 1)
	}
	return false
}

func (w *WorkWithList) focusFilter(i int) {
	w.ffocus = i
	w.fcursor = len([]rune(w.filters[i].Value))
}

// collect gathers the recognized action codes in row order.
func (w *WorkWithList) collect() []WorkItem {
	var items []WorkItem
	for i, code := range w.inputs {
		if code != "" && w.validCode(code) {
			items = append(items, WorkItem{Code: code, Index: i, Row: w.rows[i]})
		}
	}
	return items
}

// filtersTouched reports whether any filter field holds input.
func (w *WorkWithList) filtersTouched() bool {
	for _, f := range w.filters {
		if f.Value != "" {
			return true
		}
	}
	return false
}

func (w *WorkWithList) submit() bool {
	items := w.collect()
	if len(items) == 0 {
		if w.filtersTouched() {
			// No actions but filter input: hand back for a rebuild.
			w.result, w.ok = nil, true
			w.finished = true
			return true
		}
		return false // nothing to process, keep editing
	}
	w.result, w.ok = items, true
	w.finished = true
	return true
}

func (w *WorkWithList) handleKey(k Key) bool {
	if w.ffocus >= 0 {
		return w.handleFilterKey(k)
	}

	abs := w.top + w.cursor

	switch k.Kind {
	case KeyCancel:
		w.result, w.ok = nil, false
		w.finished = true
		return true

	case KeyAdd:
		if w.onAdd == nil {
			return false
		}
		w.sess().suspend(w.onAdd)
		w.result, w.ok = nil, true
		w.finished = true
		return true

	case KeyEnter:
		return w.submit()

	case KeyUp, KeyBackTab:
		return w.retreat()
	case KeyDown, KeyTab:
		return w.advance()

	case KeyPageUp:
		if w.top > 0 {
			w.top -= w.pageSize
			if w.top < 0 {
				w.top = 0
			}
			w.cursor = 0
			return true
		}
		return false
	case KeyPageDown:
		if w.top+w.pageSize < len(w.rows) {
			w.top += w.pageSize
			if max := len(w.rows) - w.pageSize; w.top > max {
				w.top = max
			}
			w.cursor = 0
			return true
		}
		return false

	case KeyBackspace, KeyDelete, KeyEraseEOF:
		if abs < len(w.inputs) {
			w.inputs[abs] = ""
		}
		return false

	case KeyRune:
		if abs < len(w.inputs) {
			w.inputs[abs] = strings.ToUpper(string(k.Rune))
			return w.advance()
		}
	}
	return false
}

// handleFilterKey edits the focused filter field with the shared field
// editing rules, moving along the Tab chain into the list at either end.
func (w *WorkWithList) handleFilterKey(k Key) bool {
	f := w.filters[w.ffocus]
	pos, act := f.edit(k, w.fcursor, &w.sess().Insert)
	w.fcursor = pos

	switch act {
	case editNone:
		return false
	case editNext:
		if w.ffocus < len(w.filters)-1 {
			w.focusFilter(w.ffocus + 1)
		} else {
			w.ffocus = -1
			w.cursor = 0
		}
		return false
	case editPrev:
		if w.ffocus > 0 {
			w.focusFilter(w.ffocus - 1)
		} else {
			w.ffocus = -1
			w.cursor = w.visible() - 1
			if w.cursor < 0 {
				w.cursor = 0
			}
		}
		return false
	case editCancel:
		w.result, w.ok = nil, false
		w.finished = true
		return true
	case editSubmit:
		return w.submit()
	case editPageUp, editPageDown:
		w.ffocus = -1
		w.cursor = 0
		return w.handleKey(k)
	}
	return false
}
