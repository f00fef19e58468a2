package ux3270

import (
	"fmt"
	"strings"
)

// FieldType controls how a field is rendered and which characters it accepts.
type FieldType uint8

const (
	Text     FieldType = iota
	Password           // rendered as asterisks
	Numeric            // accepts only digits, '.' and '-'
	Readonly           // never entered by the cursor, mutated only by the dialog
)

// Prompter supplies a replacement value for a field when the user presses
// F4=Prompt, typically by opening a SelectionList. Returning ok=false means
// "no change". A returned value is applied verbatim; respecting the field
// length is the prompter's responsibility (validation catches the rest).
type Prompter interface {
	Prompt() (value string, ok bool)
}

// PrompterFunc adapts a plain function to the Prompter interface.
type PrompterFunc func() (string, bool)

// Prompt implements Prompter.
func (f PrompterFunc) Prompt() (string, bool) { return f() }

// Field is one data-entry or display cell on a panel: a position, a maximum
// length, a type and the current value. Construct fields as struct literals;
// Row and Col are assigned by the owning dialog for auto-laid-out panels.
type Field struct {
	Row    int
	Col    int
	Length int
	Type   FieldType

	Label     string // result key; also drawn with a dot leader when set
	Value     string
	Default   string
	Required  bool
	Validator func(string) bool // rejects a non-blank value when false
	Help      string            // field-specific F1 text
	Prompter  Prompter          // enables F4=Prompt
}

// editAction is the panel-level signal produced by one keystroke.
type editAction uint8

const (
	editNone editAction = iota
	editSubmit
	editNext
	editPrev
	editCancel
	editHelp
	editPrompt
	editPageUp
	editPageDown
)

func (f *Field) editable() bool {
	return f.Type != Readonly
}

// numericRune reports whether r may be typed into a Numeric field.
func numericRune(r rune) bool {
	return (r >= '0' && r <= '9') || r == '.' || r == '-'
}

// edit applies one logical key to the field with the cursor at pos, using the
// session-wide insert flag, and returns the new cursor position plus any
// panel-level action. The value never exceeds Length and a Numeric field
// never accepts a character outside [0-9.-].
func (f *Field) edit(k Key, pos int, insert *bool) (int, editAction) {
	value := []rune(f.Value)
	if pos < 0 {
		pos = 0
	}
	if pos > len(value) {
		pos = len(value)
	}

	switch k.Kind {
	case KeyEnter:
		return pos, editSubmit
	case KeyTab:
		return pos, editNext
	case KeyBackTab:
		return pos, editPrev
	case KeyCancel:
		return pos, editCancel
	case KeyHelp:
		return pos, editHelp
	case KeyPrompt:
		return pos, editPrompt
	case KeyPageUp:
		return pos, editPageUp
	case KeyPageDown:
		return pos, editPageDown

	case KeyLeft:
		if pos > 0 {
			pos--
		}
	case KeyRight:
		if pos < len(value) {
			pos++
		}
	case KeyHome:
		pos = 0
	case KeyEnd:
		pos = len(value)

	case KeyInsert:
		*insert = !*insert

	case KeyBackspace:
		if pos > 0 {
			f.Value = string(value[:pos-1]) + string(value[pos:])
			pos--
		}
	case KeyDelete:
		if pos < len(value) {
			f.Value = string(value[:pos]) + string(value[pos+1:])
		}
	case KeyEraseEOF:
		f.Value = string(value[:pos])

	case KeyRune:
		if f.Type == Numeric && !numericRune(k.Rune) {
			break
		}
		if *insert {
			// Insert mode: shift the tail right, reject when full.
			if len(value) < f.Length {
				f.Value = string(value[:pos]) + string(k.Rune) + string(value[pos:])
				pos++
			}
		} else {
			// Overwrite, the 3270 default: replace under the cursor or
			// append at the end.
			if pos < len(value) {
				value[pos] = k.Rune
				f.Value = string(value)
				pos++
			} else if len(value) < f.Length {
				f.Value = string(value) + string(k.Rune)
				pos++
			}
		}
	}
	return pos, editNone
}

// Validate checks the field per the panel submit rules: a required field may
// not be blank, and the custom validator must accept any non-blank value.
func (f *Field) Validate() (bool, string) {
	name := f.Label
	if name == "" {
		name = "Field"
	}
	if f.Required && strings.TrimSpace(f.Value) == "" {
		return false, fmt.Sprintf("%s is required", name)
	}
	if f.Validator != nil && strings.TrimSpace(f.Value) != "" && !f.Validator(f.Value) {
		return false, fmt.Sprintf("%s has invalid value", name)
	}
	return true, ""
}
