package ux3270

import (
	"strings"
	"testing"
)

func TestMenuSelectionRunsAction(t *testing.T) {
	sess, _ := testSession("2")
	ran := ""
	m := NewMenu("Main Menu", "MAIN01", "Select an option").WithSession(sess)
	m.AddItem("1", "First", func() { ran = "1" })
	m.AddItem("2", "Second", func() { ran = "2" })

	key, ok := m.Show()
	if !ok || key != "2" {
		t.Fatalf("selection: got %q ok=%v", key, ok)
	}
	if ran != "2" {
		t.Errorf("action: ran %q, want %q", ran, "2")
	}
}

func TestMenuSelectionIsCaseInsensitive(t *testing.T) {
	sess, _ := testSession("a")
	m := NewMenu("Menu", "M01", "").WithSession(sess)
	m.AddItem("A", "Alpha", nil)

	if key, ok := m.Show(); !ok || key != "A" {
		t.Errorf("got %q ok=%v", key, ok)
	}
}

func TestMenuExitKeys(t *testing.T) {
	for _, input := range []string{"\x1b[13~", "x", "X", "\x03"} {
		sess, _ := testSession(input)
		m := NewMenu("Menu", "M01", "").WithSession(sess)
		m.AddItem("1", "First", nil)
		if _, ok := m.Show(); ok {
			t.Errorf("input %q: menu did not exit", input)
		}
	}
}

func TestMenuIgnoresUnknownKeys(t *testing.T) {
	sess, _ := testSession("9z1")
	m := NewMenu("Menu", "M01", "").WithSession(sess)
	m.AddItem("1", "First", nil)

	if key, ok := m.Show(); !ok || key != "1" {
		t.Errorf("got %q ok=%v", key, ok)
	}
}

func TestMenuRendersChrome(t *testing.T) {
	sess, out := testSession("x")
	m := NewMenu("main menu", "main01", "Select an option").WithSession(sess)
	m.AddItem("1", "Work with items", nil)
	m.Show()

	s := out.String()
	for _, want := range []string{"MAIN MENU", "MAIN01", "Select an option", "Work with items", "F3=Exit"} {
		if !strings.Contains(s, want) {
			t.Errorf("chrome missing %q", want)
		}
	}
}

func TestMenuRunLoopsUntilExit(t *testing.T) {
	sess, _ := testSession("11x")
	count := 0
	m := NewMenu("Menu", "M01", "").WithSession(sess)
	m.AddItem("1", "Count", func() { count++ })

	m.Run()
	if count != 2 {
		t.Errorf("action ran %d times, want 2", count)
	}
}

func TestMessagePanelAcknowledge(t *testing.T) {
	sess, out := testSession("z\r")
	p := NewMessagePanel("Item added", MsgSuccess).WithPanel("inv01", "confirm").WithSession(sess)
	p.Show()

	s := out.String()
	if !strings.Contains(s, "Item added") {
		t.Error("message not rendered")
	}
	if !strings.Contains(s, "Enter=Continue") {
		t.Error("missing acknowledge hint")
	}
	if !strings.Contains(s, "CONFIRM") {
		t.Error("title not upper-cased")
	}
}
