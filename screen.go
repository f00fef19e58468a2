package ux3270

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// StaticText is protected text placed at a fixed panel position.
type StaticText struct {
	Row, Col int
	Text     string
}

type screenState uint8

const (
	stateEditing screenState = iota
	stateHelp
	stateAck // no editable fields: render once, wait for one key
	stateDone
)

// Screen is the renderable unit for one panel visit: an ordered set of fields
// and static text with CUA chrome, plus the state machine that drives
// full-screen editing. Dialogs build a Screen per page; callers that need a
// one-off panel can use it directly.
//
// Labeled fields are laid out automatically: the input column is computed
// from the longest label (or the owning dialog's whole-set hint, so the
// column never shifts between pages) and the gap is filled with a dot leader.
// Unlabeled fields keep their explicit Row/Col.
//
// usage:
//
//	scr := ux3270.NewScreen("Sign On", "SYS01", "Type your credentials, press Enter")
//	scr.AddField(&ux3270.Field{Row: 3, Label: "User", Length: 8, Required: true})
//	scr.AddField(&ux3270.Field{Row: 5, Label: "Password", Length: 8, Type: ux3270.Password})
//	values := scr.Show()
type Screen struct {
	Title        string
	PanelID      string
	Instruction  string
	ErrorMessage string

	fields  []*Field
	static  []StaticText
	command *Field // optional ===> command line
	help    string // panel-level F1 text

	session       *Session
	maxLabelWidth int      // whole-dialog label width hint for stable columns
	hints         []string // extra function-key hints (F7/F8 from the dialog)
	pageable      bool     // owning dialog handles F7/F8
	onSubmit      func() (*Field, string)
	focusField    *Field

	// runtime
	nav     []*Field // editable fields plus command line, in tab order
	cur     int
	cursor  int
	state   screenState
	action  Action
	invalid *Field // off-page field that rejected the submit
	result  map[string]string
}

// NewScreen creates a panel. Title and panel ID display upper-cased per IBM
// convention.
func NewScreen(title, panelID, instruction string) *Screen {
	return &Screen{
		Title:       strings.ToUpper(title),
		PanelID:     strings.ToUpper(panelID),
		Instruction: instruction,
	}
}

// WithSession attaches a specific session (tests use a scripted one).
func (s *Screen) WithSession(sess *Session) *Screen {
	s.session = sess
	return s
}

// AddField appends a field. A blank value is seeded from the field default.
func (s *Screen) AddField(f *Field) *Screen {
	if f.Value == "" {
		f.Value = f.Default
	}
	s.fields = append(s.fields, f)
	return s
}

// AddText places static protected text.
func (s *Screen) AddText(row, col int, text string) *Screen {
	s.static = append(s.static, StaticText{Row: row, Col: col, Text: text})
	return s
}

// Help sets the panel-level F1 text, shown when the focused field has none.
func (s *Screen) Help(text string) *Screen {
	s.help = text
	return s
}

// EnableCommandLine adds a ===> command line below the body. It joins the tab
// chain after the last field and its value is returned under "Command".
func (s *Screen) EnableCommandLine() *Screen {
	if s.command == nil {
		s.command = &Field{Label: "Command"}
	}
	return s
}

func (s *Screen) sess() *Session {
	if s.session == nil {
		s.session = DefaultSession()
	}
	return s.session
}

// Show runs one panel visit and returns the committed values, or nil when
// the user cancels. Showing a panel with no fields at all is a dialog author
// bug and panics.
func (s *Screen) Show() map[string]string {
	sess := s.sess()
	s.start()
	sess.run(s)
	return s.result
}

// Result returns the values committed by the last visit (nil on cancel).
func (s *Screen) Result() map[string]string { return s.result }

// start resets the visit state machine.
func (s *Screen) start() {
	if len(s.fields) == 0 && s.command == nil {
		panic("ux3270: Screen.Show on a panel with no fields")
	}

	s.nav = s.nav[:0]
	for _, f := range s.fields {
		if f.editable() {
			s.nav = append(s.nav, f)
		}
	}
	if s.command != nil {
		s.nav = append(s.nav, s.command)
	}

	s.action = ActionNone
	s.invalid = nil
	s.result = nil
	s.cur = 0
	if s.focusField != nil {
		for i, f := range s.nav {
			if f == s.focusField {
				s.cur = i
				break
			}
		}
		s.focusField = nil
	}

	if len(s.nav) == 0 {
		s.state = stateAck
		return
	}
	s.state = stateEditing
	s.cursor = len([]rune(s.nav[s.cur].Value))
}

func (s *Screen) done() bool {
	return s.state == stateDone
}

// layout assigns the shared input column to every labeled field. The column
// derives from the longest label across the whole dialog so it cannot shift
// between pages, and is clamped so at least MinFieldWidth columns remain for
// input.
func (s *Screen) layout(width, height int) {
	maxLabel := s.maxLabelWidth
	if maxLabel == 0 {
		for _, f := range s.fields {
			if w := runewidth.StringWidth(f.Label); w > maxLabel {
				maxLabel = w
			}
		}
	}
	fieldCol := DefaultFieldCol
	if c := LabelCol + maxLabel + MinLabelFieldGap; c > fieldCol {
		fieldCol = c
	}
	if c := width - MinFieldWidth; fieldCol > c {
		fieldCol = c
	}
	for _, f := range s.fields {
		if f.Label != "" {
			f.Col = fieldCol
		}
	}
	if s.command != nil {
		s.command.Row = height - 4
		s.command.Col = 5
		s.command.Length = width - 6
	}
}

// leaderText pads a label with a dot leader out to span columns. The leader
// begins and ends with a space and its dots sit on even absolute columns, so
// dots line up across labels of different lengths.
func leaderText(label string, span int) string {
	lw := runewidth.StringWidth(label)
	if lw > span-1 {
		label = runewidth.Truncate(label, span-1, "")
		lw = runewidth.StringWidth(label)
	}
	b := []rune(label)
	for p := lw; p < span; p++ {
		abs := LabelCol + p
		if p == lw || p == span-1 || abs%2 != 0 {
			b = append(b, ' ')
		} else {
			b = append(b, '.')
		}
	}
	return string(b)
}

func (s *Screen) render(full bool) {
	t := s.sess().Term
	if s.state == stateHelp {
		s.renderHelp(t)
		return
	}
	if full {
		s.renderAll(t)
	} else if s.state == stateEditing {
		s.renderValue(t, s.nav[s.cur])
	}
	s.placeCursor(t)
}

func (s *Screen) renderAll(t *Terminal) {
	width, height := t.Size()
	s.layout(width, height)

	t.Clear()
	if s.PanelID != "" {
		t.PrintAt(TitleRow, 0, Protected, s.PanelID)
	}
	if s.Title != "" {
		t.PrintCentered(TitleRow, TitleText, s.Title)
	}
	if s.Instruction != "" {
		t.PrintAt(InstructionRow, 0, Protected, s.Instruction)
	}

	for _, st := range s.static {
		t.PrintAt(st.Row, st.Col, Protected, st.Text)
	}

	for _, f := range s.fields {
		if f.Label != "" {
			t.PrintAt(f.Row, LabelCol, Protected, leaderText(f.Label, f.Col-LabelCol))
		}
		s.renderValue(t, f)
	}

	if s.command != nil {
		t.PrintAt(s.command.Row, 0, Protected, "===>")
		s.renderValue(t, s.command)
	}

	if s.ErrorMessage != "" {
		t.PrintAt(height-messageRowOffset, 0, ErrorText, s.ErrorMessage)
	}
	t.Separator(height - separatorRowOffset)
	t.PrintAt(height-fkeyRowOffset, 0, Plain, strings.Join(s.fkeyHints(), "  "))
}

// renderValue redraws one field's value and its underscore placeholders. This
// is the partial-redraw path used for every in-field keystroke.
func (s *Screen) renderValue(t *Terminal, f *Field) {
	t.MoveTo(f.Row, f.Col)
	switch f.Type {
	case Password:
		t.Print(InputText, strings.Repeat("*", len([]rune(f.Value))))
	case Readonly:
		t.Print(DimText, f.Value)
		return // readonly fields show no placeholder
	default:
		t.Print(InputText, f.Value)
	}
	if remaining := f.Length - len([]rune(f.Value)); remaining > 0 {
		t.Print(DimText, strings.Repeat("_", remaining))
	}
}

func (s *Screen) placeCursor(t *Terminal) {
	if s.state != stateEditing || len(s.nav) == 0 {
		t.HideCursor()
		return
	}
	f := s.nav[s.cur]
	t.MoveTo(f.Row, f.Col+s.cursor)
	t.ShowCursor()
}

func (s *Screen) fkeyHints() []string {
	if s.state == stateAck {
		return []string{InfoText.Sprint("Enter=Continue")}
	}
	hints := []string{
		InfoText.Sprint("F3=Cancel"),
		InfoText.Sprint("Enter=Submit"),
		InfoText.Sprint("Tab=Next"),
	}
	if s.hasHelp() {
		hints = append(hints, InfoText.Sprint("F1=Help"))
	}
	if f := s.currentField(); f != nil && f.Prompter != nil {
		hints = append(hints, InfoText.Sprint("F4=Prompt"))
	}
	for _, h := range s.hints {
		hints = append(hints, InfoText.Sprint(h))
	}
	return hints
}

func (s *Screen) hasHelp() bool {
	if s.help != "" {
		return true
	}
	for _, f := range s.fields {
		if f.Help != "" {
			return true
		}
	}
	return false
}

func (s *Screen) renderHelp(t *Terminal) {
	_, height := t.Size()
	t.Clear()
	t.HideCursor()
	if s.PanelID != "" {
		t.PrintAt(TitleRow, 0, Protected, s.PanelID)
	}
	t.PrintCentered(TitleRow, TitleText, "HELP")

	text := s.help
	if f := s.currentField(); f != nil && f.Help != "" {
		text = f.Help
	}
	if text == "" {
		text = "No help is available."
	}
	row := BodyStartRow
	for _, line := range strings.Split(text, "\n") {
		t.PrintAt(row, LabelCol, Protected, line)
		row++
	}

	t.Separator(height - separatorRowOffset)
	t.PrintAt(height-fkeyRowOffset, 0, Plain, InfoText.Sprint("Press any key to return"))
}

func (s *Screen) currentField() *Field {
	if s.state != stateEditing && s.state != stateHelp {
		return nil
	}
	if len(s.nav) == 0 {
		return nil
	}
	return s.nav[s.cur]
}

// finish ends the visit, clearing the screen for terminal outcomes.
func (s *Screen) finish(a Action, clear bool) {
	s.action = a
	s.state = stateDone
	if clear {
		t := s.sess().Term
		t.Clear()
		t.ShowCursor()
		t.Flush()
	}
}

func (s *Screen) handleKey(k Key) bool {
	switch s.state {
	case stateHelp:
		// Any key dismisses help; cursor state is untouched.
		s.state = stateEditing
		return true

	case stateAck:
		s.result = s.values()
		s.finish(ActionSubmit, true)
		return true
	}

	f := s.nav[s.cur]
	pos, act := f.edit(k, s.cursor, &s.sess().Insert)
	s.cursor = pos

	switch act {
	case editNone:
		return false

	case editNext:
		s.moveFocus(1)
		return true
	case editPrev:
		s.moveFocus(-1)
		return true

	case editCancel:
		s.result = nil
		s.finish(ActionCancel, true)
		return true

	case editSubmit:
		return s.submit()

	case editHelp:
		s.state = stateHelp
		return true

	case editPrompt:
		if f.Prompter == nil {
			return false
		}
		var v string
		var ok bool
		s.sess().suspend(func() { v, ok = f.Prompter.Prompt() })
		if ok {
			f.Value = v
			s.cursor = len([]rune(v))
		}
		return true

	case editPageUp:
		if !s.pageable {
			return false
		}
		s.finish(ActionPageUp, false)
		return true
	case editPageDown:
		if !s.pageable {
			return false
		}
		s.finish(ActionPageDown, false)
		return true
	}
	return false
}

// submit validates every field in declaration order and commits on success.
// Only the first invalid field is reported; when it lives on another page the
// owning dialog is asked to jump there.
func (s *Screen) submit() bool {
	var bad *Field
	var msg string
	if s.onSubmit != nil {
		bad, msg = s.onSubmit()
	} else {
		for _, f := range s.fields {
			if ok, m := f.Validate(); !ok {
				bad, msg = f, m
				break
			}
		}
	}

	if bad == nil {
		s.result = s.values()
		s.finish(ActionSubmit, true)
		return true
	}

	s.ErrorMessage = msg
	for i, f := range s.nav {
		if f == bad {
			s.cur = i
			s.cursor = len([]rune(f.Value))
			return true
		}
	}
	// The invalid field lives outside this page.
	s.invalid = bad
	s.finish(actionJump, false)
	return true
}

// moveFocus advances the tab chain, wrapping at either end. Readonly fields
// were never added to the chain. Navigation clears the transient message row.
func (s *Screen) moveFocus(delta int) {
	s.ErrorMessage = ""
	n := len(s.nav)
	s.cur = (s.cur + n + delta) % n
	s.cursor = len([]rune(s.nav[s.cur].Value))
}

// values maps field labels to their current values. Unlabeled fields fall
// back to a positional key.
func (s *Screen) values() map[string]string {
	out := make(map[string]string, len(s.fields))
	for i, f := range s.fields {
		key := f.Label
		if key == "" {
			key = fmt.Sprintf("field_%d", i)
		}
		out[key] = f.Value
	}
	if s.command != nil {
		out["Command"] = s.command.Value
	}
	return out
}
