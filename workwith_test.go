package ux3270

import (
	"strings"
	"testing"
)

func testWorkWith(sess *Session) *WorkWithList {
	w := NewWorkWithList("Work with Items", "INV03", []string{"SKU", "Desc"}).WithSession(sess)
	w.AddAction("2", "Change").AddAction("4", "Delete")
	w.AddRow("A-100", "Widget")
	w.AddRow("B-200", "Gadget")
	w.AddRow("C-300", "Sprocket")
	return w
}

func TestWorkWithProcessesActions(t *testing.T) {
	// 2 against the first row auto-advances; Down skips a row; 4 against
	// the third.
	sess, _ := testSession("2\x1b[B4\r")
	items, ok := testWorkWith(sess).Show()
	if !ok {
		t.Fatal("exited instead of processing")
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2: %v", len(items), items)
	}
	if items[0].Code != "2" || items[0].Index != 0 {
		t.Errorf("first item: got %+v", items[0])
	}
	if items[1].Code != "4" || items[1].Index != 2 || items[1].Row[0] != "C-300" {
		t.Errorf("second item: got %+v", items[1])
	}
}

func TestWorkWithLowercaseCodeUppercased(t *testing.T) {
	w := NewWorkWithList("W", "T01", []string{"N"})
	w.AddAction("d", "Delete")
	sess, _ := testSession("d\r")
	w.WithSession(sess).AddRow("x")

	items, ok := w.Show()
	if !ok || len(items) != 1 || items[0].Code != "D" {
		t.Errorf("got %v ok=%v", items, ok)
	}
}

func TestWorkWithInvalidCodesNotProcessed(t *testing.T) {
	// z is not in the legend; Enter has nothing to process and the panel
	// keeps editing until F3.
	sess, _ := testSession("z\r\x1b[13~")
	if _, ok := testWorkWith(sess).Show(); ok {
		t.Error("invalid code was processed")
	}
}

func TestWorkWithBackspaceClearsAction(t *testing.T) {
	sess, _ := testSession("4\x1b[A\x7f2\r")
	items, ok := testWorkWith(sess).Show()
	if !ok || len(items) != 1 {
		t.Fatalf("got %v ok=%v", items, ok)
	}
	if items[0].Code != "2" || items[0].Index != 0 {
		t.Errorf("got %+v, want code 2 on row 0", items[0])
	}
}

func TestWorkWithAddClosesForRebuild(t *testing.T) {
	added := false
	sess, _ := testSession("\x1b[17~")
	w := testWorkWith(sess).OnAdd(func() { added = true })

	items, ok := w.Show()
	if !added {
		t.Error("add callback did not run")
	}
	if !ok || items != nil {
		t.Errorf("got %v ok=%v, want nil items with ok=true", items, ok)
	}
}

func TestWorkWithExit(t *testing.T) {
	sess, _ := testSession("\x1b[13~")
	if _, ok := testWorkWith(sess).Show(); ok {
		t.Error("F3 did not exit")
	}
}

func TestWorkWithFilterThenAction(t *testing.T) {
	// Focus starts in the filter field; Tab moves into the list where an
	// action can be typed as usual.
	pos := &Field{Label: "Position to", Length: 10}
	sess, out := testSession("AB\t2\r")
	w := testWorkWith(sess).AddFilter(pos)

	items, ok := w.Show()
	if !ok || len(items) != 1 || items[0].Code != "2" || items[0].Index != 0 {
		t.Fatalf("got %v ok=%v", items, ok)
	}
	if pos.Value != "AB" {
		t.Errorf("filter value = %q, want AB", pos.Value)
	}
	if !strings.Contains(out.String(), "Position to") {
		t.Error("filter label not rendered")
	}
}

func TestWorkWithFilterEnterRebuilds(t *testing.T) {
	// Enter with filter input and no actions closes with ok=true and no
	// items so the caller can rebuild the list.
	pos := &Field{Label: "Position to", Length: 10}
	sess, _ := testSession("wid\r")
	w := testWorkWith(sess).AddFilter(pos)

	items, ok := w.Show()
	if !ok || items != nil {
		t.Fatalf("got %v ok=%v, want nil items with ok=true", items, ok)
	}
	if pos.Value != "wid" {
		t.Errorf("filter value = %q, want wid", pos.Value)
	}
}

func TestWorkWithBackTabReturnsToFilter(t *testing.T) {
	// Backtab from the first list row re-enters the filter with the cursor
	// at the end of its value.
	pos := &Field{Label: "Position to", Length: 10}
	sess, _ := testSession("a\t\x1b[Zb\x1b[13~")
	w := testWorkWith(sess).AddFilter(pos)

	if _, ok := w.Show(); ok {
		t.Fatal("F3 did not exit")
	}
	if pos.Value != "ab" {
		t.Errorf("filter value = %q, want ab", pos.Value)
	}
}

func TestWorkWithRendersLegend(t *testing.T) {
	sess, out := testSession("\x1b[13~")
	testWorkWith(sess).Show()

	s := out.String()
	for _, want := range []string{"WORK WITH ITEMS", "2=Change  4=Delete", "Act", "F3=Exit"} {
		if !strings.Contains(s, want) {
			t.Errorf("chrome missing %q", want)
		}
	}
}
