package tui

import "testing"

func TestKey_String(t *testing.T) {
	type tc struct {
		key  Key
		want string
	}

	tests := map[string]tc{
		"none":       {key: KeyNone, want: "None"},
		"up":         {key: KeyUp, want: "Up"},
		"f1":         {key: KeyF1, want: "F1"},
		"f12":        {key: KeyF12, want: "F12"},
		"ctrl+a":     {key: KeyCtrlA, want: "Ctrl+A"},
		"ctrl+c":     {key: KeyCtrlC, want: "Ctrl+C"},
		"ctrl+z":     {key: KeyCtrlZ, want: "Ctrl+Z"},
		"ctrl+space": {key: KeyCtrlSpace, want: "Ctrl+Space"},
		"unknown":    {key: Key(999), want: "Unknown"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.key.String(); got != tt.want {
				t.Errorf("Key(%d).String() = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestModifier(t *testing.T) {
	m := ModCtrl | ModShift
	if !m.Has(ModCtrl) || !m.Has(ModShift) || m.Has(ModAlt) {
		t.Errorf("Has() wrong for %v", m)
	}
	if got := m.String(); got != "Ctrl+Shift" {
		t.Errorf("String() = %q, want %q", got, "Ctrl+Shift")
	}
	if got := ModNone.String(); got != "None" {
		t.Errorf("ModNone.String() = %q, want %q", got, "None")
	}
}

func TestKeyEvent_IsInterrupt(t *testing.T) {
	type tc struct {
		ev   KeyEvent
		want bool
	}

	tests := map[string]tc{
		"ctrl+c key":      {ev: KeyEvent{Key: KeyCtrlC}, want: true},
		"ctrl modified c": {ev: KeyEvent{Key: KeyRune, Rune: 'c', Mod: ModCtrl}, want: true},
		"plain c":         {ev: KeyEvent{Key: KeyRune, Rune: 'c'}, want: false},
		"ctrl+d":          {ev: KeyEvent{Key: KeyCtrlD}, want: false},
		"alt modified c":  {ev: KeyEvent{Key: KeyRune, Rune: 'c', Mod: ModAlt}, want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.ev.IsInterrupt(); got != tt.want {
				t.Errorf("%v.IsInterrupt() = %v, want %v", tt.ev, got, tt.want)
			}
		})
	}
}
