package ux3270

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// formItem is one vertical slot on a form: a field or a line of static text.
// Each slot occupies two rows (content plus spacing).
type formItem struct {
	field *Field
	text  string
}

// Form is the high-level data-entry dialog: labeled fields stacked two rows
// apart, paginated automatically when they outgrow the terminal. Validation
// on Enter covers every page; when the first invalid field is off-screen the
// form jumps to its page and focuses it.
//
// usage:
//
//	f := ux3270.NewForm("Add Item", "INV02", "Type values, press Enter")
//	f.AddField(&ux3270.Field{Label: "SKU", Length: 8, Required: true})
//	f.AddField(&ux3270.Field{Label: "Qty", Length: 5, Type: ux3270.Numeric})
//	values := f.Show()
type Form struct {
	Title       string
	PanelID     string
	Instruction string

	items   []formItem
	fields  []*Field // declaration order, across all pages
	help    string
	session *Session
}

// NewForm creates a form. Title and panel ID display upper-cased.
func NewForm(title, panelID, instruction string) *Form {
	return &Form{
		Title:       strings.ToUpper(title),
		PanelID:     strings.ToUpper(panelID),
		Instruction: instruction,
	}
}

// WithSession attaches a specific session.
func (f *Form) WithSession(sess *Session) *Form {
	f.session = sess
	return f
}

// Help sets the panel-level F1 text.
func (f *Form) Help(text string) *Form {
	f.help = text
	return f
}

// AddField appends a field to the next slot. Row and Col are assigned at
// display time; a blank value is seeded from the field default.
func (f *Form) AddField(fld *Field) *Form {
	if fld.Value == "" {
		fld.Value = fld.Default
	}
	f.items = append(f.items, formItem{field: fld})
	f.fields = append(f.fields, fld)
	return f
}

// AddText appends a line of static text to the next slot.
func (f *Form) AddText(text string) *Form {
	f.items = append(f.items, formItem{text: text})
	return f
}

func (f *Form) sess() *Session {
	if f.session == nil {
		f.session = DefaultSession()
	}
	return f.session
}

// Show displays the form and blocks until the user submits or cancels.
// Returns label-keyed values on submit, nil on cancel. Edits survive page
// changes; submit validates every page.
func (f *Form) Show() map[string]string {
	sess := f.sess()
	sess.Term.Refresh()
	_, height := sess.Term.Size()

	pager := Paginator{Total: len(f.items), PageSize: formPageSize(height)}

	// The input column derives from the longest label on any page, so it
	// never shifts as the user pages.
	maxLabel := 0
	for _, fld := range f.fields {
		if w := runewidth.StringWidth(fld.Label); w > maxLabel {
			maxLabel = w
		}
	}

	var focus *Field
	errMsg := ""
	for {
		scr := f.pageScreen(pager, maxLabel)
		scr.ErrorMessage = errMsg
		scr.focusField = focus
		focus, errMsg = nil, ""

		scr.start()
		sess.run(scr)

		switch scr.action {
		case ActionSubmit:
			return f.values()
		case ActionCancel:
			return nil
		case ActionPageUp:
			pager.Back()
		case ActionPageDown:
			pager.Fwd()
		case actionJump:
			// First invalid field lives on another page.
			pager.Page = pager.PageOf(f.slotOf(scr.invalid))
			focus = scr.invalid
			errMsg = scr.ErrorMessage
		}
	}
}

// pageScreen builds the panel for the pager's current page, sharing the
// canonical field pointers so edits persist across page changes.
func (f *Form) pageScreen(pager Paginator, maxLabel int) *Screen {
	title := f.Title
	if pager.Multi() {
		title = fmt.Sprintf("%s - PAGE %d OF %d", f.Title, pager.Page+1, pager.Pages())
	}
	scr := NewScreen(title, f.PanelID, f.Instruction).WithSession(f.sess())
	scr.help = f.help
	scr.maxLabelWidth = maxLabel
	scr.pageable = pager.Multi()
	scr.onSubmit = f.validateAll

	start, end := pager.Bounds()
	row := BodyStartRow
	for _, it := range f.items[start:end] {
		if it.field != nil {
			it.field.Row = row
			// Defaults were seeded at AddField time; a value the user
			// erased stays erased across page rebuilds.
			scr.fields = append(scr.fields, it.field)
		} else {
			scr.AddText(row, LabelCol, it.text)
		}
		row += 2
	}

	if pager.Multi() {
		if pager.CanBack() {
			scr.hints = append(scr.hints, "F7=Up")
		}
		if pager.CanFwd() {
			scr.hints = append(scr.hints, "F8=Down")
		}
	}
	return scr
}

// validateAll checks every field in declaration order, not just the visible
// page, and reports the first failure.
func (f *Form) validateAll() (*Field, string) {
	for _, fld := range f.fields {
		if ok, msg := fld.Validate(); !ok {
			return fld, msg
		}
	}
	return nil, ""
}

func (f *Form) slotOf(fld *Field) int {
	for i, it := range f.items {
		if it.field == fld {
			return i
		}
	}
	return 0
}

// values maps field labels to their current values across every page.
func (f *Form) values() map[string]string {
	out := make(map[string]string, len(f.fields))
	for i, fld := range f.fields {
		key := fld.Label
		if key == "" {
			key = fmt.Sprintf("field_%d", i)
		}
		out[key] = fld.Value
	}
	return out
}
