package ux3270

import (
	"strings"
	"testing"
)

func testEntry(sess *Session) *TabularEntry {
	e := NewTabularEntry("Count Sheet", "INV06").WithSession(sess)
	e.AddColumn(TabularColumn{Name: "SKU", Width: 8})
	e.AddColumn(TabularColumn{Name: "Counted", Width: 5, Editable: true, Type: Numeric, Required: true})
	e.AddRow("A-100", "")
	e.AddRow("B-200", "")
	return e
}

func TestTabularEntrySubmit(t *testing.T) {
	sess, _ := testSession("5\t17\r")
	rows, ok := testEntry(sess).Show()
	if !ok {
		t.Fatal("submit cancelled")
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows", len(rows))
	}
	if rows[0]["SKU"] != "A-100" || rows[0]["Counted"] != "5" {
		t.Errorf("row 0: got %v", rows[0])
	}
	if rows[1]["Counted"] != "17" {
		t.Errorf("row 1: got %v", rows[1])
	}
}

func TestTabularEntryNumericCharset(t *testing.T) {
	sess, _ := testSession("5x\t7\r")
	rows, ok := testEntry(sess).Show()
	if !ok {
		t.Fatal("submit cancelled")
	}
	if rows[0]["Counted"] != "5" {
		t.Errorf("row 0: got %q, want %q", rows[0]["Counted"], "5")
	}
}

func TestTabularEntryValidationFocusesCell(t *testing.T) {
	// First submit fails on the blank required cell; the retry fills both.
	sess, out := testSession("\r5\t7\r")
	rows, ok := testEntry(sess).Show()
	if !ok {
		t.Fatal("second submit should succeed")
	}
	if rows[0]["Counted"] != "5" || rows[1]["Counted"] != "7" {
		t.Errorf("rows: got %v", rows)
	}
	if !strings.Contains(out.String(), "Counted is required") {
		t.Error("missing validation message")
	}
}

func TestTabularEntryCancel(t *testing.T) {
	sess, _ := testSession("\x1b[13~")
	if _, ok := testEntry(sess).Show(); ok {
		t.Error("F3 did not cancel")
	}
}

func TestTabularEntryNoEditableCellsReturnsData(t *testing.T) {
	sess, _ := testSession("")
	e := NewTabularEntry("View", "T01").WithSession(sess)
	e.AddColumn(TabularColumn{Name: "SKU", Width: 8})
	e.AddRow("A-100")

	rows, ok := e.Show()
	if !ok || len(rows) != 1 || rows[0]["SKU"] != "A-100" {
		t.Errorf("got %v ok=%v", rows, ok)
	}
}

func TestTabularEntryArrowMovesWithinColumn(t *testing.T) {
	// Down from row 0 lands on the same editable column in row 1.
	sess, _ := testSession("5\x1b[B7\r")
	rows, ok := testEntry(sess).Show()
	if !ok {
		t.Fatal("submit cancelled")
	}
	if rows[0]["Counted"] != "5" || rows[1]["Counted"] != "7" {
		t.Errorf("rows: got %v", rows)
	}
}

func TestTabularEntryRequiredColumnStarredInHeader(t *testing.T) {
	sess, out := testSession("\x1b[13~")
	testEntry(sess).Show()
	if !strings.Contains(out.String(), "*Coun") {
		t.Error("required column header not starred")
	}
}

func TestTabularEntrySeedValuesEditable(t *testing.T) {
	sess, _ := testSession("\r")
	e := NewTabularEntry("Adjust", "T02").WithSession(sess)
	e.AddColumn(TabularColumn{Name: "SKU", Width: 8})
	e.AddColumn(TabularColumn{Name: "Qty", Width: 5, Editable: true, Type: Numeric})
	e.AddRow("A-100", "42")

	rows, ok := e.Show()
	if !ok || rows[0]["Qty"] != "42" {
		t.Errorf("got %v ok=%v", rows, ok)
	}
}
