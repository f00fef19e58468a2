package ux3270

import "testing"

func TestVInteger(t *testing.T) {
	for s, want := range map[string]bool{"42": true, "-7": true, " 3 ": true, "3.5": false, "abc": false, "": false} {
		if got := VInteger(s); got != want {
			t.Errorf("VInteger(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestVDecimal(t *testing.T) {
	for s, want := range map[string]bool{"3.5": true, "-0.25": true, "10": true, "1.2.3": false, "-": false} {
		if got := VDecimal(s); got != want {
			t.Errorf("VDecimal(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestVRange(t *testing.T) {
	v := VRange(1, 100)
	for s, want := range map[string]bool{"1": true, "100": true, "50.5": true, "0": false, "101": false, "x": false} {
		if got := v(s); got != want {
			t.Errorf("VRange(1,100)(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestVMaxLen(t *testing.T) {
	v := VMaxLen(3)
	if !v("abc") || v("abcd") {
		t.Error("VMaxLen(3) boundary wrong")
	}
}

func TestVMatch(t *testing.T) {
	v := VMatch(`^[A-Z]-\d{3}$`)
	if !v("A-100") || v("a-100") {
		t.Error("VMatch pattern wrong")
	}
}

func TestVOneOf(t *testing.T) {
	v := VOneOf("EA", "BOX", "KG")
	if !v("ea") || v("LB") {
		t.Error("VOneOf membership wrong")
	}
}
