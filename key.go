package ux3270

import (
	"bufio"
	"io"
	"unicode/utf8"
)

// KeyKind identifies a logical key. Function keys are named for their 3270
// attention semantics (F1=Help, F3=Cancel, F4=Prompt, F6=Add, F7/F8=paging).
type KeyKind uint8

const (
	KeyRune KeyKind = iota
	KeyEnter
	KeyTab
	KeyBackTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyBackspace
	KeyEraseEOF // Ctrl+E or Shift+End
	KeyCancel   // F3, Ctrl+C or end of input
	KeyHelp     // F1
	KeyPrompt   // F4
	KeyAdd      // F6
	KeyPageUp   // F7, PgUp
	KeyPageDown // F8, PgDn
	KeyIgnored  // unrecognized sequence, treated as a no-op
)

// Key is one logical key event. Rune is set only for KeyRune.
type Key struct {
	Kind KeyKind
	Rune rune
}

// KeyDecoder turns a raw byte stream into logical keys. Each ReadKey call
// blocks until a complete key has been decoded; escape-sequence continuation
// bytes are always drained so an unrecognized sequence can never desynchronize
// the stream.
type KeyDecoder struct {
	r *bufio.Reader
}

// NewKeyDecoder creates a decoder reading from r.
func NewKeyDecoder(r io.Reader) *KeyDecoder {
	return &KeyDecoder{r: bufio.NewReader(r)}
}

// ReadKey decodes the next logical key. A closed input stream decodes as
// KeyCancel.
func (d *KeyDecoder) ReadKey() Key {
	b, err := d.r.ReadByte()
	if err != nil {
		return Key{Kind: KeyCancel}
	}

	switch b {
	case '\r', '\n':
		return Key{Kind: KeyEnter}
	case '\t':
		return Key{Kind: KeyTab}
	case 0x7f, 0x08:
		return Key{Kind: KeyBackspace}
	case 0x05: // Ctrl+E
		return Key{Kind: KeyEraseEOF}
	case 0x03: // Ctrl+C
		return Key{Kind: KeyCancel}
	case 0x1b:
		return d.readEscape()
	}

	if b < 0x20 {
		return Key{Kind: KeyIgnored}
	}
	if b < utf8.RuneSelf {
		return Key{Kind: KeyRune, Rune: rune(b)}
	}
	return d.readRune(b)
}

// readRune assembles a multi-byte UTF-8 rune starting with lead.
func (d *KeyDecoder) readRune(lead byte) Key {
	buf := []byte{lead}
	for !utf8.FullRune(buf) && len(buf) < utf8.UTFMax {
		b, err := d.r.ReadByte()
		if err != nil {
			return Key{Kind: KeyCancel}
		}
		buf = append(buf, b)
	}
	r, _ := utf8.DecodeRune(buf)
	if r == utf8.RuneError {
		return Key{Kind: KeyIgnored}
	}
	return Key{Kind: KeyRune, Rune: r}
}

func (d *KeyDecoder) readEscape() Key {
	b, err := d.r.ReadByte()
	if err != nil {
		return Key{Kind: KeyCancel}
	}
	switch b {
	case '[':
		return d.readCSI()
	case 'O':
		return d.readSS3()
	}
	// Bare escape or an unknown introducer.
	return Key{Kind: KeyIgnored}
}

// readCSI consumes a CSI sequence: parameter bytes up to a final byte in
// 0x40..0x7e, then maps the whole sequence to a key.
func (d *KeyDecoder) readCSI() Key {
	var params []byte
	for {
		b, err := d.r.ReadByte()
		if err != nil {
			return Key{Kind: KeyCancel}
		}
		if b >= 0x40 && b <= 0x7e {
			return csiKey(string(params), b)
		}
		params = append(params, b)
		if len(params) > 16 { // runaway sequence
			return d.drainCSI()
		}
	}
}

// drainCSI discards the rest of an oversized CSI sequence through its final
// byte, so the tail never decodes as literal characters.
func (d *KeyDecoder) drainCSI() Key {
	for {
		b, err := d.r.ReadByte()
		if err != nil {
			return Key{Kind: KeyCancel}
		}
		if b >= 0x40 && b <= 0x7e {
			return Key{Kind: KeyIgnored}
		}
	}
}

func csiKey(params string, final byte) Key {
	switch final {
	case 'A':
		return Key{Kind: KeyUp}
	case 'B':
		return Key{Kind: KeyDown}
	case 'C':
		return Key{Kind: KeyRight}
	case 'D':
		return Key{Kind: KeyLeft}
	case 'Z':
		return Key{Kind: KeyBackTab}
	case 'H':
		if params == "" {
			return Key{Kind: KeyHome}
		}
	case 'F':
		switch params {
		case "":
			return Key{Kind: KeyEnd}
		case "1;2": // Shift+End, the 3270 Erase EOF key
			return Key{Kind: KeyEraseEOF}
		}
	case '~':
		switch params {
		case "1":
			return Key{Kind: KeyHome}
		case "2":
			return Key{Kind: KeyInsert}
		case "3":
			return Key{Kind: KeyDelete}
		case "4":
			return Key{Kind: KeyEnd}
		case "5":
			return Key{Kind: KeyPageUp}
		case "6":
			return Key{Kind: KeyPageDown}
		case "11":
			return Key{Kind: KeyHelp} // F1
		case "13":
			return Key{Kind: KeyCancel} // F3
		case "14":
			return Key{Kind: KeyPrompt} // F4
		case "17":
			return Key{Kind: KeyAdd} // F6
		case "18":
			return Key{Kind: KeyPageUp} // F7
		case "19":
			return Key{Kind: KeyPageDown} // F8
		}
	}
	return Key{Kind: KeyIgnored}
}

func (d *KeyDecoder) readSS3() Key {
	b, err := d.r.ReadByte()
	if err != nil {
		return Key{Kind: KeyCancel}
	}
	switch b {
	case 'P':
		return Key{Kind: KeyHelp} // F1
	case 'Q':
		return Key{Kind: KeyAdd} // F6
	case 'R':
		return Key{Kind: KeyCancel} // F3
	case 'S':
		return Key{Kind: KeyPrompt} // F4
	case 'H':
		return Key{Kind: KeyHome}
	case 'F':
		return Key{Kind: KeyEnd}
	}
	return Key{Kind: KeyIgnored}
}
