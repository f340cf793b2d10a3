package tui

import (
	"fmt"
	"strings"
)

// Key identifies a keyboard key.
type Key uint16

const (
	KeyNone Key = iota
	// KeyRune is a printable character; see KeyEvent.Rune.
	KeyRune
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	// KeyCtrlA through KeyCtrlZ are contiguous, so KeyCtrlA+n is Ctrl plus
	// the nth letter.
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH
	KeyCtrlI
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlL
	KeyCtrlM
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ
	// KeyCtrlSpace is NUL (0x00).
	KeyCtrlSpace
)

var keyNames = map[Key]string{
	KeyNone:      "None",
	KeyRune:      "Rune",
	KeyEscape:    "Escape",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyInsert:    "Insert",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyCtrlSpace: "Ctrl+Space",
}

// String returns a human-readable name such as "Up", "F5" or "Ctrl+C".
func (k Key) String() string {
	switch {
	case k >= KeyF1 && k <= KeyF12:
		return fmt.Sprintf("F%d", k-KeyF1+1)
	case k >= KeyCtrlA && k <= KeyCtrlZ:
		return "Ctrl+" + string(rune('A'+k-KeyCtrlA))
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Modifier is a set of modifier keys.
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << (iota - 1)
	ModAlt
	ModCtrl
)

// Has reports whether m includes mod.
func (m Modifier) Has(mod Modifier) bool { return m&mod != 0 }

func (m Modifier) String() string {
	if m == ModNone {
		return "None"
	}
	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	return strings.Join(parts, "+")
}

// InputEvent is something read from the terminal: a KeyEvent or a ResizeEvent.
type InputEvent interface {
	isInput()
}

// KeyEvent is a key press.
type KeyEvent struct {
	Key  Key
	Rune rune
	Mod  Modifier
}

// ResizeEvent reports a new terminal size.
type ResizeEvent struct {
	Width, Height int
}

func (KeyEvent) isInput()    {}
func (ResizeEvent) isInput() {}

// IsInterrupt reports whether the key is the Ctrl+C chord.
func (e KeyEvent) IsInterrupt() bool {
	return e.Key == KeyCtrlC || (e.Key == KeyRune && e.Mod.Has(ModCtrl) && (e.Rune == 'c' || e.Rune == 'C'))
}

func (e KeyEvent) String() string {
	name := e.Key.String()
	if e.Key == KeyRune {
		name = string(e.Rune)
	}
	if e.Mod == ModNone {
		return name
	}
	return e.Mod.String() + "+" + name
}
