package ux3270

import (
	"strings"
)

// TabularEntry chrome: error row joins the usual count/separator/fkey footer.
const (
	tabularDataRow     = 5
	tabularHeaderLines = 5
	tabularFooterLines = 4
	tabularErrorOffset = 4
)

// TabularColumn defines one column of a TabularEntry: static display or an
// input field of the given width.
type TabularColumn struct {
	Name      string
	Width     int
	Editable  bool
	Type      FieldType
	Required  bool
	Validator func(string) bool
}

// cellRef addresses one editable cell.
type cellRef struct {
	row, col int
}

// TabularEntry is the multi-row data-entry grid: static columns in protected
// text beside editable columns rendered as input fields. Tab moves between
// cells, Enter validates and submits every row, F7/F8 page.
//
// usage:
//
//	e := ux3270.NewTabularEntry("Count Sheet", "INV06")
//	e.AddColumn(ux3270.TabularColumn{Name: "SKU", Width: 8})
//	e.AddColumn(ux3270.TabularColumn{Name: "Counted", Width: 5, Editable: true,
//		Type: ux3270.Numeric, Required: true})
//	e.AddRow("A-100", "")
//	rows, ok := e.Show()
type TabularEntry struct {
	Title       string
	PanelID     string
	Instruction string

	columns []TabularColumn
	rows    [][]string // static values, indexed by column
	fields  [][]*Field // per row, nil for static columns
	session *Session

	// runtime
	pageSize int
	top      int
	cells    []cellRef
	cell     int // index into cells
	cursor   int
	errMsg   string
	finished bool
	result   []map[string]string
	ok       bool
}

// NewTabularEntry creates an entry grid.
func NewTabularEntry(title, panelID string) *TabularEntry {
	return &TabularEntry{
		Title:       strings.ToUpper(title),
		PanelID:     strings.ToUpper(panelID),
		Instruction: "Enter values and press Enter to submit",
	}
}

// WithSession attaches a specific session.
func (e *TabularEntry) WithSession(sess *Session) *TabularEntry {
	e.session = sess
	return e
}

// AddColumn appends a column definition. Columns must be defined before rows.
func (e *TabularEntry) AddColumn(col TabularColumn) *TabularEntry {
	e.columns = append(e.columns, col)
	return e
}

// AddRow appends a data row. Values align with the defined columns; editable
// columns take the value as their initial field content.
func (e *TabularEntry) AddRow(values ...string) *TabularEntry {
	row := make([]string, len(e.columns))
	fields := make([]*Field, len(e.columns))
	for i, col := range e.columns {
		val := ""
		if i < len(values) {
			val = values[i]
		}
		if col.Editable {
			fields[i] = &Field{
				Label:     col.Name,
				Length:    col.Width,
				Type:      col.Type,
				Required:  col.Required,
				Validator: col.Validator,
				Value:     val,
			}
		} else {
			row[i] = val
		}
	}
	e.rows = append(e.rows, row)
	e.fields = append(e.fields, fields)
	return e
}

func (e *TabularEntry) sess() *Session {
	if e.session == nil {
		e.session = DefaultSession()
	}
	return e.session
}

// Show displays the grid and blocks until submit or cancel. Returns one
// column-keyed map per row, merging static and edited values; ok=false on
// cancel. A grid with no editable cells returns its data immediately.
func (e *TabularEntry) Show() ([]map[string]string, bool) {
	e.cells = e.cells[:0]
	for r := range e.rows {
		for c, col := range e.columns {
			if col.Editable {
				e.cells = append(e.cells, cellRef{row: r, col: c})
			}
		}
	}
	if len(e.cells) == 0 {
		return e.merged(), true
	}

	sess := e.sess()
	sess.Term.Refresh()
	_, height := sess.Term.Size()
	e.pageSize = listPageSize(height, tabularHeaderLines, tabularFooterLines)
	e.top, e.cell, e.cursor = 0, 0, 0
	e.errMsg = ""
	e.finished, e.result, e.ok = false, nil, false

	sess.run(e)
	sess.Term.Clear()
	sess.Term.Flush()
	return e.result, e.ok
}

func (e *TabularEntry) done() bool { return e.finished }

// colPos returns the screen column where column i begins.
func (e *TabularEntry) colPos(i int) int {
	pos := 2
	for j := 0; j < i; j++ {
		pos += e.columns[j].Width + 3
	}
	return pos
}

func (e *TabularEntry) field(ref cellRef) *Field {
	return e.fields[ref.row][ref.col]
}

func (e *TabularEntry) render(full bool) {
	t := e.sess().Term
	if full {
		e.renderAll(t)
	} else {
		e.renderCell(t, e.cells[e.cell])
	}

	ref := e.cells[e.cell]
	t.MoveTo(tabularDataRow+ref.row-e.top, e.colPos(ref.col)+e.cursor)
	t.ShowCursor()
}

// renderCell redraws one editable cell's value and placeholder underscores.
func (e *TabularEntry) renderCell(t *Terminal, ref cellRef) {
	f := e.field(ref)
	t.MoveTo(tabularDataRow+ref.row-e.top, e.colPos(ref.col))
	t.Print(InputText, f.Value)
	if remaining := f.Length - len([]rune(f.Value)); remaining > 0 {
		t.Print(DimText, strings.Repeat("_", remaining))
	}
}

func (e *TabularEntry) renderAll(t *Terminal) {
	width, height := t.Size()

	t.Clear()
	if e.PanelID != "" {
		t.PrintAt(TitleRow, 0, Protected, e.PanelID)
	}
	if e.Title != "" {
		t.PrintCentered(TitleRow, TitleText, e.Title)
	}
	if e.Instruction != "" {
		t.PrintAt(InstructionRow, 0, Protected, e.Instruction)
	}

	// Column headers; required input columns are flagged with a star.
	t.MoveTo(BodyStartRow, 0)
	t.Print(Plain, "  ")
	for i, col := range e.columns {
		if i > 0 {
			t.Print(Protected, " │ ")
		}
		name := col.Name
		if col.Editable && col.Required {
			name = "*" + name
		}
		t.Print(HeaderText, pad(name, col.Width))
	}
	t.MoveTo(BodyStartRow+1, 0)
	t.Print(Plain, "  ")
	sep := make([]string, len(e.columns))
	for i, col := range e.columns {
		sep[i] = strings.Repeat("─", col.Width)
	}
	t.Print(Protected, strings.Join(sep, "─┼─"))

	end := e.top + e.pageSize
	if end > len(e.rows) {
		end = len(e.rows)
	}
	for r := e.top; r < end; r++ {
		t.MoveTo(tabularDataRow+r-e.top, 0)
		t.Print(Plain, "  ")
		for c, col := range e.columns {
			if c > 0 {
				t.Print(Protected, " │ ")
			}
			if col.Editable {
				e.renderCell(t, cellRef{row: r, col: c})
				t.MoveTo(tabularDataRow+r-e.top, e.colPos(c)+col.Width)
			} else {
				t.Print(Protected, pad(e.rows[r][c], col.Width))
			}
		}
	}

	if e.errMsg != "" {
		t.PrintAt(height-tabularErrorOffset, 0, ErrorText, e.errMsg)
	}
	if len(e.rows) > 0 {
		msg := rowCountText(e.top, e.pageSize, len(e.rows))
		t.PrintAt(height-messageRowOffset, width-len(msg)-1, InfoText, msg)
	}
	t.Separator(height - separatorRowOffset)

	hints := []string{InfoText.Sprint("F3=Cancel"), InfoText.Sprint("Enter=Submit")}
	if len(e.rows) > e.pageSize {
		if e.top > 0 {
			hints = append(hints, InfoText.Sprint("F7=Up"))
		}
		if e.top+e.pageSize < len(e.rows) {
			hints = append(hints, InfoText.Sprint("F8=Down"))
		}
	}
	t.PrintAt(height-fkeyRowOffset, 0, Plain, strings.Join(hints, "  "))
}

// moveTo focuses the editable cell at index i, scrolling its row into view.
// Reports whether the page scrolled.
func (e *TabularEntry) moveTo(i int) bool {
	if i < 0 || i >= len(e.cells) {
		return false
	}
	e.cell = i
	e.cursor = 0
	row := e.cells[i].row
	if row < e.top {
		e.top = row
		return true
	}
	if row >= e.top+e.pageSize {
		e.top = row - e.pageSize + 1
		return true
	}
	return false
}

// neighbor finds the editable cell in the same column of an adjacent row.
func (e *TabularEntry) neighbor(delta int) int {
	ref := e.cells[e.cell]
	for i, c := range e.cells {
		if c.row == ref.row+delta && c.col == ref.col {
			return i
		}
	}
	return -1
}

func (e *TabularEntry) handleKey(k Key) bool {
	ref := e.cells[e.cell]
	f := e.field(ref)

	switch k.Kind {
	case KeyTab:
		e.errMsg = ""
		if e.cell < len(e.cells)-1 {
			e.moveTo(e.cell + 1)
			return true
		}
		return false
	case KeyBackTab:
		e.errMsg = ""
		if e.cell > 0 {
			e.moveTo(e.cell - 1)
			return true
		}
		return false
	case KeyUp:
		e.errMsg = ""
		if i := e.neighbor(-1); i >= 0 {
			e.moveTo(i)
			return true
		}
		return false
	case KeyDown:
		e.errMsg = ""
		if i := e.neighbor(1); i >= 0 {
			e.moveTo(i)
			return true
		}
		return false

	case KeyPageUp:
		if e.top > 0 {
			e.top -= e.pageSize
			if e.top < 0 {
				e.top = 0
			}
			e.focusFirstVisible()
			return true
		}
		return false
	case KeyPageDown:
		if e.top+e.pageSize < len(e.rows) {
			e.top += e.pageSize
			if max := len(e.rows) - e.pageSize; e.top > max {
				e.top = max
			}
			e.focusFirstVisible()
			return true
		}
		return false
	}

	pos, act := f.edit(k, e.cursor, &e.sess().Insert)
	e.cursor = pos

	switch act {
	case editCancel:
		e.result, e.ok = nil, false
		e.finished = true
		return true
	case editSubmit:
		return e.submit()
	}
	return false
}

func (e *TabularEntry) focusFirstVisible() {
	for i, c := range e.cells {
		if c.row >= e.top && c.row < e.top+e.pageSize {
			e.cell = i
			e.cursor = 0
			return
		}
	}
}

// submit validates every editable cell row-major and commits on success. The
// first failing cell is focused, paging to it when needed.
func (e *TabularEntry) submit() bool {
	for i, ref := range e.cells {
		if ok, msg := e.field(ref).Validate(); !ok {
			e.errMsg = msg
			e.moveTo(i)
			return true
		}
	}
	e.result, e.ok = e.merged(), true
	e.finished = true
	return true
}

// merged builds the result rows: static values overlaid with edits.
func (e *TabularEntry) merged() []map[string]string {
	out := make([]map[string]string, len(e.rows))
	for r := range e.rows {
		m := make(map[string]string, len(e.columns))
		for c, col := range e.columns {
			if f := e.fields[r][c]; f != nil {
				m[col.Name] = f.Value
			} else {
				m[col.Name] = e.rows[r][c]
			}
		}
		out[r] = m
	}
	return out
}
