package ux3270

import "testing"

func TestSuspendParksRawDepth(t *testing.T) {
	// A callback sees depth zero, so a panel it opens runs a real raw-mode
	// acquire/release cycle of its own; the suspended visit's depth comes
	// back afterward.
	sess, _ := testSession("")
	sess.rawDepth = 1
	inside := -1
	sess.suspend(func() {
		inside = sess.rawDepth
		sess.enterRaw()
		sess.restore()
	})
	if inside != 0 {
		t.Errorf("depth inside callback = %d, want 0", inside)
	}
	if sess.rawDepth != 1 {
		t.Errorf("depth after suspend = %d, want 1", sess.rawDepth)
	}
}

func TestPromptOpensNestedPanel(t *testing.T) {
	// F4 prompt backed by a SelectionList on the same session: the nested
	// panel runs a complete visit and its choice lands in the field.
	sess, _ := testSession("\x1bOS\r\r")
	scr := NewScreen("Order", "T01", "").WithSession(sess)
	scr.AddField(&Field{Row: 3, Label: "Item", Length: 10,
		Prompter: PrompterFunc(func() (string, bool) {
			l := NewSelectionList("Pick", "T02", []string{"SKU"}).WithSession(sess)
			l.AddRow("A-100")
			l.AddRow("B-200")
			row, ok := l.Show()
			if !ok {
				return "", false
			}
			return row[0], true
		})})

	got := scr.Show()
	if got == nil {
		t.Fatal("submit returned nil")
	}
	if got["Item"] != "A-100" {
		t.Errorf("Item: got %q, want A-100", got["Item"])
	}
}
