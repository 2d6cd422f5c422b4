package json5

import "unicode/utf8"

// Width is the slot size, in bytes, of a unicodeString's backing store.
type Width int

const (
	Width1 Width = 1
	Width2 Width = 2
	Width4 Width = 4
)

// invalidCodePoint is returned by accessors that run past end-of-buffer.
// It is outside the Unicode range (max U+10FFFF) so it can never be
// confused with a real, valid code point.
const invalidCodePoint rune = 0x110000

// unicodeString is a width-adaptive buffer of code points: it stores
// runes in 1-, 2-, or 4-byte slots and widens in place the first time a
// code point no longer fits. Most JSON5 documents are plain ASCII, so
// the common case pays for one byte per code point; non-BMP or astral
// text only costs more once it actually appears.
type unicodeString struct {
	width  Width
	length int
	cursor int
	b1     []uint8
	b2     []uint16
	b4     []uint32
}

func newUnicodeString(width Width, length int) *unicodeString {
	s := &unicodeString{width: width, length: length}
	switch width {
	case Width1:
		s.b1 = make([]uint8, length)
	case Width2:
		s.b2 = make([]uint16, length)
	case Width4:
		s.b4 = make([]uint32, length)
	default:
		panic("json5: unexpected unicode string width")
	}
	return s
}

// newUnicodeStringFromRunes builds a buffer directly from decoded code
// points, choosing the narrowest width that holds them all.
func newUnicodeStringFromRunes(cps []rune) *unicodeString {
	width := Width1
	for _, cp := range cps {
		if cp > 0xFFFF {
			width = Width4
			break
		}
		if cp > 0xFF && width == Width1 {
			width = Width2
		}
	}
	s := newUnicodeString(width, len(cps))
	for i, cp := range cps {
		s.set(i, cp)
	}
	return s
}

func (s *unicodeString) Len() int { return s.length }

// peek returns the code point at index i, or invalidCodePoint if i is
// out of range. It never moves the cursor.
func (s *unicodeString) peek(i int) rune {
	if i < 0 || i >= s.length {
		return invalidCodePoint
	}
	switch s.width {
	case Width1:
		return rune(s.b1[i])
	case Width2:
		return rune(s.b2[i])
	default:
		return rune(s.b4[i])
	}
}

// next returns peek(cursor) and advances the cursor.
func (s *unicodeString) next() rune {
	cp := s.peek(s.cursor)
	s.cursor++
	return cp
}

// set stores cp at slot i, widening the buffer first if cp does not fit
// in the current width. Panics if i is out of range, matching the
// reference implementation's bounds contract.
func (s *unicodeString) set(i int, cp rune) {
	if i < 0 || i >= s.length {
		panic("json5: unicode string set out of range")
	}
	needed := widthFor(cp)
	if needed > s.width {
		s.widen(needed)
	}
	switch s.width {
	case Width1:
		s.b1[i] = uint8(cp)
	case Width2:
		s.b2[i] = uint16(cp)
	default:
		s.b4[i] = uint32(cp)
	}
}

func widthFor(cp rune) Width {
	switch {
	case cp > 0xFFFF:
		return Width4
	case cp > 0xFF:
		return Width2
	default:
		return Width1
	}
}

// widen reallocates storage to width w, copying every stored code
// point. w must be strictly greater than the current width.
func (s *unicodeString) widen(w Width) {
	if w <= s.width {
		panic("json5: widen requires a strictly larger width")
	}
	switch w {
	case Width2:
		b2 := make([]uint16, s.length)
		for i := s.length - 1; i >= 0; i-- {
			b2[i] = uint16(s.peek(i))
		}
		s.b1, s.b2, s.b4 = nil, b2, nil
	case Width4:
		b4 := make([]uint32, s.length)
		for i := s.length - 1; i >= 0; i-- {
			b4[i] = uint32(s.peek(i))
		}
		s.b1, s.b2, s.b4 = nil, nil, b4
	default:
		panic("json5: unexpected target width")
	}
	s.width = w
}

// available reports whether n more code points can be read from cursor
// without running past the end of the buffer.
func (s *unicodeString) available(n int) bool {
	return s.cursor+n <= s.length
}

// nEqual reports whether the next n code points, starting at cursor,
// spell out the ASCII string scmp. The cursor is not moved.
func (s *unicodeString) nEqual(scmp string, n int) bool {
	if !s.available(n) || len(scmp) < n {
		return false
	}
	for i := 0; i < n; i++ {
		if s.peek(s.cursor+i) != rune(scmp[i]) {
			return false
		}
	}
	return true
}

// slice returns the code points in [start, end) as a Go string,
// encoding each code point as UTF-8. Used when moving a scanned token's
// payload into a Value.
func (s *unicodeString) slice(start, end int) string {
	var b []byte
	for i := start; i < end && i < s.length; i++ {
		b = utf8.AppendRune(b, s.peek(i))
	}
	return string(b)
}

func (s *unicodeString) String() string {
	return s.slice(0, s.length)
}
