package ux3270

import "strings"

// MsgType selects the style of a message panel's message line.
type MsgType uint8

const (
	MsgInfo MsgType = iota
	MsgSuccess
	MsgWarning
	MsgError
)

func (t MsgType) style() Style {
	switch t {
	case MsgSuccess:
		return SuccessText
	case MsgWarning:
		return WarningText
	case MsgError:
		return ErrorText
	}
	return InfoText
}

// MessagePanel is the simple information panel: one styled message on the
// standard message row, acknowledged with Enter or F3. Per CUA it carries no
// command line or input fields.
type MessagePanel struct {
	Message string
	Type    MsgType
	PanelID string
	Title   string

	session *Session
	acked   bool
}

// NewMessagePanel creates a message panel.
func NewMessagePanel(message string, msgType MsgType) *MessagePanel {
	return &MessagePanel{Message: message, Type: msgType}
}

// WithPanel sets the panel ID and title (displayed upper-cased).
func (p *MessagePanel) WithPanel(panelID, title string) *MessagePanel {
	p.PanelID = strings.ToUpper(panelID)
	p.Title = strings.ToUpper(title)
	return p
}

// WithSession attaches a specific session.
func (p *MessagePanel) WithSession(sess *Session) *MessagePanel {
	p.session = sess
	return p
}

func (p *MessagePanel) sess() *Session {
	if p.session == nil {
		p.session = DefaultSession()
	}
	return p.session
}

// Show displays the message and blocks until it is acknowledged.
func (p *MessagePanel) Show() {
	sess := p.sess()
	p.acked = false
	sess.run(p)
	sess.Term.Clear()
	sess.Term.Flush()
}

func (p *MessagePanel) done() bool { return p.acked }

func (p *MessagePanel) render(full bool) {
	if !full {
		return
	}
	t := p.sess().Term
	_, height := t.Size()

	t.Clear()
	t.HideCursor()
	if p.PanelID != "" {
		t.PrintAt(TitleRow, 0, Protected, p.PanelID)
	}
	if p.Title != "" {
		t.PrintCentered(TitleRow, TitleText, p.Title)
	}

	t.PrintAt(height-messageRowOffset, 0, p.Type.style(), p.Message)
	t.Separator(height - separatorRowOffset)
	t.PrintAt(height-fkeyRowOffset, 0, Plain, InfoText.Sprint("Enter=Continue"))
}

func (p *MessagePanel) handleKey(k Key) bool {
	switch k.Kind {
	case KeyEnter, KeyCancel:
		p.acked = true
		return true
	}
	return false
}

// ShowMessage displays a one-off message panel on the default session.
func ShowMessage(message string, msgType MsgType) {
	NewMessagePanel(message, msgType).Show()
}
