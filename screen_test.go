package ux3270

import (
	"bytes"
	"strings"
	"testing"
)

// testSession builds a session scripted from input; dialogs drive to
// completion against it without a real terminal. Output collects in the
// returned buffer for chrome assertions.
func testSession(input string) (*Session, *bytes.Buffer) {
	var out bytes.Buffer
	return NewSessionIO(strings.NewReader(input), &out), &out
}

func TestLeaderTextEdges(t *testing.T) {
	got := leaderText("Name", 18)
	if len([]rune(got)) != 18 {
		t.Fatalf("length: got %d, want 18", len([]rune(got)))
	}
	if got[4] != ' ' {
		t.Errorf("first leader cell after label: got %q, want space", got[4])
	}
	if got[17] != ' ' {
		t.Errorf("last leader cell: got %q, want space", got[17])
	}
}

func TestLeaderTextDotsOnEvenColumns(t *testing.T) {
	got := leaderText("SKU", 18)
	for p, r := range got {
		if r == '.' && (LabelCol+p)%2 != 0 {
			t.Errorf("dot at odd absolute column %d", LabelCol+p)
		}
	}
}

// Dots must line up vertically across labels of different lengths: every dot
// column of the longer leader appears in the shorter one too.
func TestLeaderTextDotsAlignAcrossLabels(t *testing.T) {
	short := leaderText("Qty", 20)
	long := leaderText("Warehouse", 20)

	dots := func(s string) map[int]bool {
		m := map[int]bool{}
		for p, r := range s {
			if r == '.' {
				m[p] = true
			}
		}
		return m
	}
	shortDots, longDots := dots(short), dots(long)
	if len(longDots) == 0 {
		t.Fatal("long label produced no dots")
	}
	for p := range longDots {
		if !shortDots[p] {
			t.Errorf("dot at %d in long leader missing from short leader", p)
		}
	}
	if len(shortDots) <= len(longDots) {
		t.Error("shorter label should produce more dots")
	}
}

func TestScreenSubmitReturnsValues(t *testing.T) {
	sess, _ := testSession("bob\t42\r")
	scr := NewScreen("Test", "T01", "").WithSession(sess)
	scr.AddField(&Field{Row: 3, Label: "Name", Length: 10})
	scr.AddField(&Field{Row: 5, Label: "Qty", Length: 5, Type: Numeric})

	got := scr.Show()
	if got == nil {
		t.Fatal("submit returned nil")
	}
	if got["Name"] != "bob" || got["Qty"] != "42" {
		t.Errorf("values: got %v", got)
	}
}

func TestScreenCancelReturnsNil(t *testing.T) {
	sess, _ := testSession("typed\x1b[13~")
	scr := NewScreen("Test", "T01", "").WithSession(sess)
	scr.AddField(&Field{Row: 3, Label: "Name", Length: 10})

	if got := scr.Show(); got != nil {
		t.Errorf("cancel: got %v, want nil", got)
	}
}

func TestScreenRequiredBlocksSubmit(t *testing.T) {
	sess, out := testSession("\rx\r")
	scr := NewScreen("Test", "T01", "").WithSession(sess)
	scr.AddField(&Field{Row: 3, Label: "Name", Length: 10, Required: true})

	got := scr.Show()
	if got == nil {
		t.Fatal("second submit should succeed")
	}
	if got["Name"] != "x" {
		t.Errorf("value: got %q, want %q", got["Name"], "x")
	}
	if !strings.Contains(out.String(), "Name is required") {
		t.Error("missing validation message on the message line")
	}
}

func TestScreenDefaultSeedsValue(t *testing.T) {
	sess, _ := testSession("\r")
	scr := NewScreen("Test", "T01", "").WithSession(sess)
	scr.AddField(&Field{Row: 3, Label: "Mode", Length: 4, Default: "FAST"})

	got := scr.Show()
	if got["Mode"] != "FAST" {
		t.Errorf("default: got %q, want %q", got["Mode"], "FAST")
	}
}

func TestScreenTabSkipsReadonlyAndWraps(t *testing.T) {
	sess, _ := testSession("1\t2\t3\r")
	scr := NewScreen("Test", "T01", "").WithSession(sess)
	a := &Field{Row: 3, Label: "A", Length: 5}
	b := &Field{Row: 5, Label: "B", Length: 5, Type: Readonly, Value: "ro"}
	c := &Field{Row: 7, Label: "C", Length: 5}
	scr.AddField(a).AddField(b).AddField(c)

	got := scr.Show()
	// Tab from A lands on C (B is protected); the second Tab wraps to A.
	if got["A"] != "13" || got["C"] != "2" {
		t.Errorf("values: got %v", got)
	}
	if got["B"] != "ro" {
		t.Errorf("readonly value changed: got %q", got["B"])
	}
}

func TestScreenBackTabWrapsToLast(t *testing.T) {
	sess, _ := testSession("\x1b[Zx\r")
	scr := NewScreen("Test", "T01", "").WithSession(sess)
	a := &Field{Row: 3, Label: "A", Length: 5}
	b := &Field{Row: 5, Label: "B", Length: 5}
	c := &Field{Row: 7, Label: "C", Length: 5, Type: Readonly, Value: "ro"}
	scr.AddField(a).AddField(b).AddField(c)

	got := scr.Show()
	// Shift+Tab from A wraps backward past protected C and lands on B.
	if got["A"] != "" || got["B"] != "x" {
		t.Errorf("values: got %v", got)
	}
}

func TestScreenAllReadonlyAcknowledges(t *testing.T) {
	sess, out := testSession("x")
	scr := NewScreen("Status", "T02", "").WithSession(sess)
	scr.AddField(&Field{Row: 3, Label: "State", Length: 8, Type: Readonly, Value: "READY"})

	got := scr.Show()
	if got == nil || got["State"] != "READY" {
		t.Errorf("ack values: got %v", got)
	}
	if !strings.Contains(out.String(), "Enter=Continue") {
		t.Error("acknowledge panel missing Enter=Continue hint")
	}
}

func TestScreenHelpOverlay(t *testing.T) {
	sess, out := testSession("\x1bOPz\r")
	scr := NewScreen("Test", "T01", "").WithSession(sess)
	scr.AddField(&Field{Row: 3, Label: "SKU", Length: 8, Help: "Stock keeping unit code"})

	got := scr.Show()
	if !strings.Contains(out.String(), "Stock keeping unit code") {
		t.Error("help text not rendered")
	}
	// The key that dismisses help is consumed, not typed into the field.
	if got["SKU"] != "" {
		t.Errorf("dismiss key leaked into field: got %q", got["SKU"])
	}
}

func TestScreenPrompterFillsField(t *testing.T) {
	sess, _ := testSession("\x1b[14~\r")
	scr := NewScreen("Test", "T01", "").WithSession(sess)
	scr.AddField(&Field{Row: 3, Label: "Item", Length: 10,
		Prompter: PrompterFunc(func() (string, bool) { return "A-100", true })})

	got := scr.Show()
	if got["Item"] != "A-100" {
		t.Errorf("prompted value: got %q, want %q", got["Item"], "A-100")
	}
}

func TestScreenCommandLine(t *testing.T) {
	sess, _ := testSession("v\twrkitm\r")
	scr := NewScreen("Test", "T01", "").WithSession(sess).EnableCommandLine()
	scr.AddField(&Field{Row: 3, Label: "A", Length: 5})

	got := scr.Show()
	if got["A"] != "v" || got["Command"] != "wrkitm" {
		t.Errorf("values: got %v", got)
	}
}

func TestScreenUnlabeledFieldKey(t *testing.T) {
	sess, _ := testSession("hi\r")
	scr := NewScreen("Test", "T01", "").WithSession(sess)
	scr.AddField(&Field{Row: 3, Col: 10, Length: 5})

	got := scr.Show()
	if got["field_0"] != "hi" {
		t.Errorf("positional key: got %v", got)
	}
}

func TestScreenPanicsWithoutFields(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Show on an empty screen did not panic")
		}
	}()
	sess, _ := testSession("\r")
	NewScreen("Test", "T01", "").WithSession(sess).Show()
}

func TestScreenInsertFlagIsSessionWide(t *testing.T) {
	// Toggle insert in the first field, then type into the second; the
	// second field must still be in insert mode.
	sess, _ := testSession("\x1b[2~\t\r")
	scr := NewScreen("Test", "T01", "").WithSession(sess)
	scr.AddField(&Field{Row: 3, Label: "A", Length: 5})
	scr.AddField(&Field{Row: 5, Label: "B", Length: 5})

	if scr.Show() == nil {
		t.Fatal("submit failed")
	}
	if !sess.Insert {
		t.Error("insert flag did not persist on the session")
	}
}
