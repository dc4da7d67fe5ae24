package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit    // q, Esc, Ctrl+C, Ctrl+Q
	IntentResize  // Terminal resize event
	IntentPointer // Mouse motion: center player paddle on a row
	IntentNudge   // j/k/arrows with optional count prefix
)

// Intent is a parsed input action
type Intent struct {
	Type  IntentType
	Row   int // IntentPointer: terminal row of the pointer
	Steps int // IntentNudge: signed step count, positive moves down
}

// String returns the intent name for logging
func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "Quit"
	case IntentResize:
		return "Resize"
	case IntentPointer:
		return "Pointer"
	case IntentNudge:
		return "Nudge"
	default:
		return "None"
	}
}
