// Package ux3270 reproduces the IBM 3270 block-mode interaction model on a
// modern ANSI terminal. The application defines a panel of labeled, typed,
// fixed-length fields, hands control to the user for full-screen editing, and
// regains control when an attention key (Enter, F3, ...) ends the visit.
//
// The package follows IBM CUA panel conventions: panel ID top-left, title
// centered, instruction line, message line and function-key hints at the
// bottom. Six dialog patterns (Menu, Form, Table, SelectionList, WorkWithList,
// TabularEntry) compose the low-level Screen, Field and KeyDecoder primitives.
//
// usage:
//
//	form := ux3270.NewForm("Add Item", "INV01", "Fill in the item details")
//	form.AddField(&ux3270.Field{Label: "SKU", Length: 20, Required: true})
//	form.AddField(&ux3270.Field{Label: "Qty", Length: 10, Type: ux3270.Numeric, Default: "0"})
//	values := form.Show() // nil when the user cancels with F3
package ux3270

// CUA layout constants, 0-indexed row offsets from the screen edges.
const (
	TitleRow       = 0 // panel ID left, title centered
	InstructionRow = 1
	BodyStartRow   = 3 // first panel body row used by dialogs

	// Bottom chrome, offsets from height.
	messageRowOffset   = 3 // transient message line
	separatorRowOffset = 2 // full-width separator
	fkeyRowOffset      = 1 // function-key hints
)

// Field column layout. The label column is stable across every page of a
// dialog because it is computed from the whole field set, not the visible
// slice.
const (
	LabelCol         = 2  // left edge of labels
	DefaultFieldCol  = 20 // minimum input column
	MinLabelFieldGap = 4  // smallest label-to-field gap (space, dots, space)
	MinFieldWidth    = 10 // columns that must remain for input after clamping
)

// Action reports how a panel visit ended.
type Action uint8

const (
	ActionNone     Action = iota
	ActionSubmit          // Enter, all fields valid
	ActionCancel          // F3, Ctrl+C or end of input
	ActionPageUp          // F7
	ActionPageDown        // F8
	actionJump            // submit rejected on a field outside the visible page
)
