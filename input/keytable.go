package input

import "github.com/gdamore/tcell/v2"

// KeyEntry describes what a key does
type KeyEntry struct {
	IntentType IntentType
	Direction  int // IntentNudge: -1 up, +1 down
}

// KeyTable maps keys to entries
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {IntentType: IntentQuit},
			tcell.KeyCtrlQ:  {IntentType: IntentQuit},
			tcell.KeyEscape: {IntentType: IntentQuit},
			tcell.KeyUp:     {IntentType: IntentNudge, Direction: -1},
			tcell.KeyDown:   {IntentType: IntentNudge, Direction: 1},
		},
		Runes: map[rune]KeyEntry{
			'q': {IntentType: IntentQuit},
			'k': {IntentType: IntentNudge, Direction: -1},
			'j': {IntentType: IntentNudge, Direction: 1},
		},
	}
}
