package clipboard

import (
	"github.com/atotto/clipboard"

	"github.com/bethropolis/composer/internal/core/text"
	"github.com/bethropolis/composer/internal/logger"
	"github.com/bethropolis/composer/internal/types"
)

// Backend stores clipboard text.
type Backend interface {
	Read() (string, error)
	Write(s string) error
}

// Register is an in-process clipboard.
type Register struct {
	text string
}

func (r *Register) Read() (string, error) { return r.text, nil }

func (r *Register) Write(s string) error {
	r.text = s
	return nil
}

// System is the desktop clipboard.
type System struct{}

func (System) Read() (string, error) { return clipboard.ReadAll() }
func (System) Write(s string) error  { return clipboard.WriteAll(s) }

// Manager handles clipboard operations
type Manager struct {
	textArea *text.TextArea
	ops      text.Operations
	backend  Backend
	register *Register // Fallback when backend fails, and the backend itself when no system clipboard is used
}

// NewManager creates a clipboard manager. useSystem selects the desktop
// clipboard, which is also disabled when atotto reports it unsupported.
func NewManager(textArea *text.TextArea, ops text.Operations, useSystem bool) *Manager {
	register := &Register{}
	var backend Backend = register
	if useSystem && !clipboard.Unsupported {
		backend = System{}
	}
	return &Manager{textArea: textArea, ops: ops, backend: backend, register: register}
}

// NewManagerWithBackend creates a clipboard manager over a custom backend.
func NewManagerWithBackend(textArea *text.TextArea, ops text.Operations, backend Backend) *Manager {
	return &Manager{textArea: textArea, ops: ops, backend: backend, register: &Register{}}
}

// Copy stores the text selected by c. It returns false when c is a caret.
func (m *Manager) Copy(c types.Cursor) bool {
	if !c.IsSelection() {
		return false
	}
	content := m.textArea.Selection(c)
	m.write(content)
	logger.DebugTagf("clipboard", "Copied %d runes", c.Len())
	return true
}

// Cut copies the selection and removes it, returning the caret where it was.
func (m *Manager) Cut(c types.Cursor) (types.Cursor, bool) {
	if !m.Copy(c) {
		return c, false
	}
	removed := m.ops.Insert(c, "")
	return types.NewCaret(removed.Start), true
}

// Paste replaces the selection with the clipboard text and returns a caret
// after it. It returns false when the clipboard is empty.
func (m *Manager) Paste(c types.Cursor) (types.Cursor, bool) {
	content := m.read()
	if content == "" {
		return c, false
	}
	inserted := m.ops.Insert(c, content)
	logger.DebugTagf("clipboard", "Pasted %d runes at %d", inserted.Len(), inserted.Start)
	return types.NewCaret(inserted.End), true
}

func (m *Manager) write(s string) {
	_ = m.register.Write(s) // Register writes cannot fail
	if m.backend == Backend(m.register) {
		return
	}
	if err := m.backend.Write(s); err != nil {
		logger.Warnf("Clipboard: system write failed, using internal register: %v", err)
	}
}

func (m *Manager) read() string {
	if m.backend == Backend(m.register) {
		return m.register.text
	}
	s, err := m.backend.Read()
	if err != nil {
		logger.Warnf("Clipboard: system read failed, using internal register: %v", err)
		return m.register.text
	}
	return s
}
