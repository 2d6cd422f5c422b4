package json5

// UTF-8 decoding via Bjoern Hoehrmann's byte-classified DFA
// (http://bjoern.hoehrmann.de/utf-8/decoder/dfa/), ported from the
// two-table form used by the reference JSON5 core: a 256-entry
// byte-to-class table followed by a 108-entry state-transition table
// indexed by state+class. State 0 is accept, state 12 is reject; any
// other state means "more bytes required".

const (
	utf8Accept = 0
	utf8Reject = 12
)

var utf8DecodeTable = [256 + 108]uint8{
	// byte -> character class
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	8, 8, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	10, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 4, 3, 3, 11, 6, 6, 6, 5, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8,

	// state+class -> state
	0, 12, 24, 36, 60, 96, 84, 12, 12, 12, 48, 72, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12,
	12, 0, 12, 12, 12, 12, 12, 0, 12, 0, 12, 12, 12, 24, 12, 12, 12, 12, 12, 24, 12, 24, 12, 12,
	12, 12, 12, 12, 12, 12, 12, 24, 12, 12, 12, 12, 12, 24, 12, 12, 12, 12, 12, 12, 12, 24, 12, 12,
	12, 12, 12, 12, 12, 12, 12, 36, 12, 36, 12, 12, 12, 36, 12, 12, 12, 12, 12, 36, 12, 36, 12, 12,
	12, 36, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12,
}

// utf8Decode feeds one more byte through the DFA, updating state and
// the code-point accumulator in codep. The returned state is the new
// state: utf8Accept means codep now holds a complete code point,
// utf8Reject means the byte sequence is malformed.
func utf8Decode(state *uint8, codep *rune, b byte) uint8 {
	class := utf8DecodeTable[b]
	if *state != utf8Accept {
		*codep = rune(b&0x3f) | (*codep << 6)
	} else {
		*codep = rune(0xff>>class) & rune(b)
	}
	*state = utf8DecodeTable[256+int(*state)+int(class)]
	return *state
}

// decodeUTF8 decodes a full byte slice into a sequence of code points.
// Malformed sequences are never a decode error: per spec.md §4.1, a
// reject state substitutes U+FFFD and resynchronises at the next byte.
// The only failure mode left is allocation failure, which in Go simply
// surfaces as a panic from make/append, so decodeUTF8 itself returns no
// error.
func decodeUTF8(data []byte) []rune {
	cps := make([]rune, 0, len(data))
	var state uint8
	var codepoint rune
	i := 0
	for i < len(data) {
		state = utf8Accept
		complete := false
		for ; i < len(data); i++ {
			utf8Decode(&state, &codepoint, data[i])
			if state == utf8Accept {
				i++
				complete = true
				break
			}
			if state == utf8Reject {
				codepoint = 0xFFFD
				i++
				complete = true
				break
			}
			// more bytes required
		}
		if !complete {
			// Truncated multi-byte sequence at end of input.
			codepoint = 0xFFFD
		}
		cps = append(cps, codepoint)
	}
	return cps
}

// newUnicodeStringFromUTF8 decodes data and packs the resulting code
// points into a width-adaptive unicodeString, picking the narrowest
// width that represents every code point losslessly.
func newUnicodeStringFromUTF8(data []byte) *unicodeString {
	return newUnicodeStringFromRunes(decodeUTF8(data))
}
