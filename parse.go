package tui

import "unicode/utf8"

// parseInput decodes terminal input bytes into key events. It returns the
// events and the number of trailing bytes that form an incomplete UTF-8 rune
// or CSI sequence; the caller should prepend those to the next read.
func parseInput(data []byte) (events []InputEvent, pending int) {
	i := 0
	for i < len(data) {
		b := data[i]

		if b == 0x1b {
			ev, n := parseEscape(data[i:])
			if n == 0 {
				return events, len(data) - i
			}
			if ev.Key != KeyNone {
				events = append(events, ev)
			}
			i += n
			continue
		}

		if b < 0x20 {
			events = append(events, KeyEvent{Key: controlToKey(b)})
			i++
			continue
		}

		// DEL is backspace on most terminals.
		if b == 0x7f {
			events = append(events, KeyEvent{Key: KeyBackspace})
			i++
			continue
		}

		if !utf8.FullRune(data[i:]) {
			return events, len(data) - i
		}
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			i++
			continue
		}
		events = append(events, KeyEvent{Key: KeyRune, Rune: r})
		i += size
	}
	return events, 0
}

// parseEscape decodes a sequence starting with ESC. It returns n == 0 when
// the sequence is incomplete.
func parseEscape(data []byte) (KeyEvent, int) {
	if len(data) == 1 {
		return KeyEvent{Key: KeyEscape}, 1
	}
	switch next := data[1]; {
	case next == '[':
		key, mod, n := parseCSISequence(data)
		switch {
		case n > 0:
			return KeyEvent{Key: key, Mod: mod}, n
		case n < 0:
			return KeyEvent{Key: KeyEscape}, 1
		}
		return KeyEvent{}, 0
	case next == 'O':
		if len(data) < 3 {
			return KeyEvent{}, 0
		}
		if key := parseSS3(data[2]); key != KeyNone {
			return KeyEvent{Key: key}, 3
		}
		return KeyEvent{Key: KeyEscape}, 1
	case next >= 0x20 && next < 0x7f:
		return KeyEvent{Key: KeyRune, Rune: rune(next), Mod: ModAlt}, 2
	case next < 0x20 && next != 0x1b:
		ev := KeyEvent{Key: controlToKey(next), Mod: ModAlt}
		return ev, 2
	}
	return KeyEvent{Key: KeyEscape}, 1
}

// controlToKey converts a C0 control byte to a Key.
func controlToKey(b byte) Key {
	switch b {
	case 0x00:
		return KeyCtrlSpace
	case 0x08:
		return KeyBackspace
	case 0x09:
		return KeyTab
	case 0x0d:
		return KeyEnter
	case 0x1b:
		return KeyEscape
	}
	if b >= 0x01 && b <= 0x1a {
		return KeyCtrlA + Key(b-0x01)
	}
	return KeyNone
}

// parseCSISequence parses ESC [ params final. n is the number of bytes
// consumed, 0 if more input is needed and -1 if the sequence is malformed.
func parseCSISequence(data []byte) (key Key, mod Modifier, n int) {
	var params []int
	cur, has := 0, false
	for i := 2; i < len(data); i++ {
		switch b := data[i]; {
		case b >= '0' && b <= '9':
			cur = cur*10 + int(b-'0')
			has = true
		case b == ';':
			params = append(params, cur)
			cur, has = 0, false
		case b >= 0x40 && b <= 0x7e:
			if has {
				params = append(params, cur)
			}
			key, mod = parseCSI(params, b)
			return key, mod, i + 1
		default:
			return KeyNone, ModNone, -1
		}
	}
	return KeyNone, ModNone, 0
}

var csiFinal = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
	'P': KeyF1,
	'Q': KeyF2,
	'R': KeyF3,
	'S': KeyF4,
}

var csiTilde = map[int]Key{
	1: KeyHome, 2: KeyInsert, 3: KeyDelete, 4: KeyEnd, 5: KeyPageUp, 6: KeyPageDown,
	11: KeyF1, 12: KeyF2, 13: KeyF3, 14: KeyF4, 15: KeyF5,
	17: KeyF6, 18: KeyF7, 19: KeyF8, 20: KeyF9, 21: KeyF10,
	23: KeyF11, 24: KeyF12,
}

// parseCSI maps a complete CSI sequence to a key. Modifiers use the xterm
// "CSI 1;mod X" encoding.
func parseCSI(params []int, final byte) (Key, Modifier) {
	mod := ModNone
	if len(params) >= 2 {
		mod = decodeModifier(params[1])
	}
	switch final {
	case '~':
		if len(params) == 0 {
			return KeyNone, ModNone
		}
		if key, ok := csiTilde[params[0]]; ok {
			return key, mod
		}
		return KeyNone, ModNone
	case 'Z':
		return KeyTab, ModShift
	}
	if key, ok := csiFinal[final]; ok {
		return key, mod
	}
	return KeyNone, ModNone
}

// parseSS3 maps the final byte of ESC O x.
func parseSS3(b byte) Key {
	if b == 'P' || b == 'Q' || b == 'R' || b == 'S' {
		return KeyF1 + Key(b-'P')
	}
	return csiFinal[b]
}

// decodeModifier decodes the xterm parameter 1 + shift + 2*alt + 4*ctrl.
func decodeModifier(param int) Modifier {
	if param <= 1 {
		return ModNone
	}
	return Modifier(param-1) & (ModShift | ModAlt | ModCtrl)
}
