package ux3270

import "strings"

// MenuItem is one selectable entry: a single selection character, a label and
// the action invoked when the entry is chosen.
type MenuItem struct {
	Key    string
	Label  string
	Action func()
}

// Menu is the single-key menu panel: numbered or lettered entries in the
// body, F3=Exit at the bottom. Selection is immediate; no Enter is required.
//
// usage:
//
//	ux3270.NewMenu("Main Menu", "MAIN01", "Select an option").
//		AddItem("1", "Work with items", workWithItems).
//		AddItem("2", "Reports", reports).
//		Run()
type Menu struct {
	Title       string
	PanelID     string
	Instruction string

	items   []MenuItem
	session *Session

	selected *MenuItem
	exited   bool
}

// NewMenu creates a menu panel. Title and panel ID display upper-cased.
func NewMenu(title, panelID, instruction string) *Menu {
	return &Menu{
		Title:       strings.ToUpper(title),
		PanelID:     strings.ToUpper(panelID),
		Instruction: instruction,
	}
}

// WithSession attaches a specific session.
func (m *Menu) WithSession(sess *Session) *Menu {
	m.session = sess
	return m
}

// AddItem appends a menu entry.
func (m *Menu) AddItem(key, label string, action func()) *Menu {
	m.items = append(m.items, MenuItem{Key: key, Label: label, Action: action})
	return m
}

func (m *Menu) sess() *Session {
	if m.session == nil {
		m.session = DefaultSession()
	}
	return m.session
}

// Show displays the menu once and waits for a selection. The chosen item's
// action runs with the terminal restored to line mode, so it may open panels
// of its own. Returns the selection key, or ok=false when the user exits
// (F3, X or Ctrl+C).
func (m *Menu) Show() (string, bool) {
	sess := m.sess()
	m.selected = nil
	m.exited = false
	sess.run(m)

	sess.Term.Clear()
	sess.Term.Flush()
	if m.selected == nil {
		return "", false
	}
	if m.selected.Action != nil {
		m.selected.Action()
	}
	return m.selected.Key, true
}

// Run redisplays the menu after each action until the user exits.
func (m *Menu) Run() {
	for {
		if _, ok := m.Show(); !ok {
			return
		}
	}
}

func (m *Menu) done() bool {
	return m.selected != nil || m.exited
}

func (m *Menu) render(full bool) {
	if !full {
		return
	}
	t := m.sess().Term
	_, height := t.Size()

	t.Clear()
	t.HideCursor()
	if m.PanelID != "" {
		t.PrintAt(TitleRow, 0, Protected, m.PanelID)
	}
	if m.Title != "" {
		t.PrintCentered(TitleRow, TitleText, m.Title)
	}
	if m.Instruction != "" {
		t.PrintAt(InstructionRow, 0, Protected, m.Instruction)
	}

	for i, item := range m.items {
		t.PrintAt(BodyStartRow+i, LabelCol, HeaderText, item.Key)
		t.Print(Protected, " - ")
		t.Print(Plain, item.Label)
	}

	t.Separator(height - separatorRowOffset)
	t.PrintAt(height-fkeyRowOffset, 0, Plain, InfoText.Sprint("F3=Exit"))
}

func (m *Menu) handleKey(k Key) bool {
	switch k.Kind {
	case KeyCancel:
		m.exited = true
		return true
	case KeyRune:
		r := string(k.Rune)
		if strings.EqualFold(r, "x") {
			m.exited = true
			return true
		}
		for i := range m.items {
			if strings.EqualFold(m.items[i].Key, r) {
				m.selected = &m.items[i]
				return true
			}
		}
	}
	return false
}
