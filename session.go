package ux3270

import (
	"io"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Session owns the terminal resources shared by every dialog: the output
// Terminal, the input KeyDecoder, the raw-mode state of the input device and
// the insert/overwrite flag. The flag is deliberately session-wide rather
// than per-field: a physical 3270 keyboard has a single INS MODE latch shared
// by every field on the panel.
type Session struct {
	Term *Terminal
	Keys *KeyDecoder

	// Insert is the shared insert-mode flag. Overwrite is the 3270 default.
	Insert bool

	fd       int
	isTerm   bool
	saved    *unix.Termios
	rawDepth int
}

// NewSession binds a session to stdin/stdout.
func NewSession() *Session {
	return NewSessionIO(os.Stdin, os.Stdout)
}

// NewSessionIO binds a session to arbitrary streams. When r is not an
// interactive terminal, raw-mode handling is skipped entirely, which makes
// every dialog scriptable from tests.
func NewSessionIO(r io.Reader, w io.Writer) *Session {
	s := &Session{
		Term: NewTerminal(w),
		Keys: NewKeyDecoder(r),
		fd:   -1,
	}
	if f, ok := r.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		s.fd = int(f.Fd())
		s.isTerm = true
	}
	return s
}

var defaultSession *Session

// DefaultSession returns the lazily-created stdin/stdout session that dialogs
// use when none is supplied.
func DefaultSession() *Session {
	if defaultSession == nil {
		defaultSession = NewSession()
	}
	return defaultSession
}

// enterRaw puts the input device into raw mode: character-at-a-time,
// unbuffered, no echo, no signal generation (Ctrl+C arrives as a byte).
// Nested panel visits stack; only the outermost call saves and the matching
// outermost restore puts the original state back.
func (s *Session) enterRaw() error {
	s.rawDepth++
	if s.rawDepth > 1 || !s.isTerm {
		return nil
	}

	termios, err := unix.IoctlGetTermios(s.fd, ioctlGetTermios)
	if err != nil {
		return err
	}
	s.saved = termios

	raw := *termios
	rawify(&raw)
	return unix.IoctlSetTermios(s.fd, ioctlSetTermios, &raw)
}

// rawify clears the flags that buffer, echo or translate input.
func rawify(t *unix.Termios) {
	t.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	t.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	t.Cflag |= unix.CS8
	t.Cc[unix.VMIN] = 1
	t.Cc[unix.VTIME] = 0
}

// restore undoes the matching enterRaw. Unconditional restoration on every
// exit path is a hard requirement: a panic that leaves the terminal raw and
// silent corrupts the user's shell.
func (s *Session) restore() {
	if s.rawDepth > 0 {
		s.rawDepth--
	}
	if s.rawDepth > 0 || !s.isTerm || s.saved == nil {
		return
	}
	unix.IoctlSetTermios(s.fd, ioctlSetTermios, s.saved)
}

// suspend restores the saved terminal state, runs fn, then re-enters raw
// mode. Dialogs use it around user callbacks (menu actions, F6=Add, F4
// prompts) so those may perform ordinary line-mode I/O or open panels of
// their own. The raw depth is parked at zero for the duration: a panel
// opened inside fn must run its own full enterRaw/restore cycle, not see
// the suspended visit's depth and skip the ioctl.
func (s *Session) suspend(fn func()) {
	if s.isTerm && s.saved != nil {
		unix.IoctlSetTermios(s.fd, ioctlSetTermios, s.saved)
	}
	depth, saved := s.rawDepth, s.saved
	s.rawDepth, s.saved = 0, nil
	fn()
	s.rawDepth, s.saved = depth, saved
	if s.isTerm && s.rawDepth > 0 && s.saved != nil {
		raw := *s.saved
		rawify(&raw)
		unix.IoctlSetTermios(s.fd, ioctlSetTermios, &raw)
	}
}

// dialog is the shared shape of one panel visit: render the current page,
// fold one logical key into the state machine, report when a terminal state
// has been reached. handleKey returns true when the next render must be a
// full redraw rather than a single-field update.
type dialog interface {
	render(full bool)
	handleKey(k Key) bool
	done() bool
}

// run drives one panel visit: {render, read one key, mutate} until the
// dialog reaches a terminal state. Raw mode spans the visit and is restored
// on every exit path, including panics raised mid-read.
func (s *Session) run(d dialog) {
	s.Term.Refresh()
	s.enterRaw()
	defer s.restore()

	full := true
	for !d.done() {
		d.render(full)
		s.Term.Flush()
		full = d.handleKey(s.Keys.ReadKey())
	}
}
