package input

import (
	"github.com/gdamore/tcell/v2"
)

// maxCount bounds the numeric prefix so a held digit key cannot overflow
const maxCount = 999

// InputState tracks the key parser
type InputState uint8

const (
	StateIdle  InputState = iota // Awaiting initial key
	StateCount                   // Accumulating numeric prefix (1-9 start, 0 continues)
)

// Machine parses tcell events into Intents
// Not safe for concurrent use; runs on the frame loop goroutine
type Machine struct {
	state    InputState
	keyTable *KeyTable
	count    int
}

// NewMachine creates a parser with the default key table
func NewMachine() *Machine {
	return &Machine{
		state:    StateIdle,
		keyTable: DefaultKeyTable(),
	}
}

// Reset clears any pending count prefix
func (m *Machine) Reset() {
	m.state = StateIdle
	m.count = 0
}

// Count returns the pending numeric prefix, 0 when none
func (m *Machine) Count() int {
	return m.count
}

// Process converts an event into an Intent; unbound events yield nil
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		_, row := ev.Position()
		return &Intent{Type: IntentPointer, Row: row}
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if m.acceptDigit(r) {
			return nil
		}
		if entry, ok := m.keyTable.Runes[r]; ok {
			return m.resolve(entry)
		}
		m.Reset()
		return nil
	}

	if entry, ok := m.keyTable.SpecialKeys[ev.Key()]; ok {
		return m.resolve(entry)
	}
	m.Reset()
	return nil
}

// acceptDigit extends the count prefix; a leading 0 is not a count
func (m *Machine) acceptDigit(r rune) bool {
	if r < '0' || r > '9' {
		return false
	}
	if m.state == StateIdle && r == '0' {
		return false
	}
	m.state = StateCount
	m.count = m.count*10 + int(r-'0')
	if m.count > maxCount {
		m.count = maxCount
	}
	return true
}

func (m *Machine) resolve(entry KeyEntry) *Intent {
	count := m.count
	if count == 0 {
		count = 1
	}
	m.Reset()

	switch entry.IntentType {
	case IntentNudge:
		return &Intent{Type: IntentNudge, Steps: entry.Direction * count}
	case IntentNone:
		return nil
	default:
		return &Intent{Type: entry.IntentType}
	}
}
