package ux3270

import "strconv"

// Attr represents text styling attributes that can be combined.
type Attr uint8

const (
	AttrNone Attr = 0
	AttrBold Attr = 1 << iota
	AttrDim
	AttrReverse
)

// Has returns true if the attribute set contains the given attribute.
func (a Attr) Has(attr Attr) bool {
	return a&attr != 0
}

// Style is a foreground color plus attributes, emitted as an SGR sequence.
// The zero value renders text unstyled.
type Style struct {
	FG   uint8 // ANSI SGR color code (30-37, 90-97), 0 for terminal default
	Attr Attr
}

// Sprint wraps text in the style's SGR sequence and a reset.
func (s Style) Sprint(text string) string {
	seq := s.sgr()
	if seq == "" {
		return text
	}
	return seq + text + "\x1b[0m"
}

func (s Style) sgr() string {
	if s.FG == 0 && s.Attr == AttrNone {
		return ""
	}
	seq := "\x1b["
	sep := ""
	if s.Attr.Has(AttrBold) {
		seq += "1"
		sep = ";"
	}
	if s.Attr.Has(AttrDim) {
		seq += sep + "2"
		sep = ";"
	}
	if s.Attr.Has(AttrReverse) {
		seq += sep + "7"
		sep = ";"
	}
	if s.FG != 0 {
		seq += sep + strconv.Itoa(int(s.FG))
	}
	return seq + "m"
}

// The fixed 3270 palette. Protected (label) text is turquoise, unprotected
// input is green and intensified text is white, per the original hardware
// conventions.
var (
	Protected   = Style{FG: 36}
	TitleText   = Style{FG: 37, Attr: AttrBold}
	InputText   = Style{FG: 32}
	DimText     = Style{Attr: AttrDim}
	HeaderText  = Style{FG: 37, Attr: AttrBold}
	ErrorText   = Style{FG: 31, Attr: AttrBold}
	SuccessText = Style{FG: 32, Attr: AttrBold}
	WarningText = Style{FG: 33, Attr: AttrBold}
	InfoText    = Style{FG: 36}
	Reverse     = Style{Attr: AttrReverse}
	Plain       = Style{}
)
