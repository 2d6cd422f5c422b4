package json5

// tokenize scans s into a tokenStream headed by a TokRoot sentinel, per
// spec.md §4.4. It is the Go port of the reference core's
// json5_tokenize: skip whitespace, branch on the next code point, loop
// until end of input.
func tokenize(s *unicodeString) (*tokenStream, error) {
	ts := newTokenStream()

	for s.cursor < s.length {
		skipWhitespace(s)
		if s.cursor >= s.length {
			break
		}

		start := s.cursor
		cp := s.next()

		switch cp {
		case '/':
			if err := skipComment(s, start); err != nil {
				return nil, err
			}

		case '{':
			ts.append(&Token{Kind: TokPunctuator, Punct: PunctLBrace, Start: start, End: s.cursor})
		case '}':
			ts.append(&Token{Kind: TokPunctuator, Punct: PunctRBrace, Start: start, End: s.cursor})
		case '[':
			ts.append(&Token{Kind: TokPunctuator, Punct: PunctLBracket, Start: start, End: s.cursor})
		case ']':
			ts.append(&Token{Kind: TokPunctuator, Punct: PunctRBracket, Start: start, End: s.cursor})
		case ':':
			ts.append(&Token{Kind: TokPunctuator, Punct: PunctColon, Start: start, End: s.cursor})
		case ',':
			ts.append(&Token{Kind: TokPunctuator, Punct: PunctComma, Start: start, End: s.cursor})

		case '"', '\'':
			tok, err := scanString(s, cp, start)
			if err != nil {
				return nil, err
			}
			ts.append(tok)

		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '+', '-', '.':
			s.cursor = start
			tok, err := scanNumber(s)
			if err != nil {
				return nil, err
			}
			ts.append(tok)

		default:
			if identifierStartAt(s, cp, start) {
				s.cursor = start
				tok, err := scanIdentifier(s)
				if err != nil {
					return nil, err
				}
				ts.append(tok)
			} else {
				return nil, lexErrorf(start, "expected IdentifierStart: U+%04X at %d", cp, start)
			}
		}
	}

	return ts, nil
}

func skipWhitespace(s *unicodeString) {
	for s.cursor < s.length {
		cp := s.peek(s.cursor)
		if !isWhiteSpace(cp) {
			return
		}
		s.cursor++
	}
}

// skipComment dispatches on what follows the '/' already consumed at
// slashStart; slashStart is the offset of the '/' itself.
func skipComment(s *unicodeString, slashStart int) error {
	cp1 := s.peek(s.cursor)
	switch cp1 {
	case '/':
		skipLineComment(s)
		return nil
	case '*':
		return skipBlockComment(s, slashStart)
	default:
		return lexErrorf(slashStart, "unexpected / at %d", slashStart)
	}
}

func skipLineComment(s *unicodeString) {
	for s.cursor < s.length {
		cp := s.peek(s.cursor)
		if isLineTerminator(cp) {
			return
		}
		s.cursor++
	}
}

func skipBlockComment(s *unicodeString, start int) error {
	s.cursor++ // consume '*'
	for {
		if s.cursor >= s.length {
			return lexErrorf(start, "unterminated block comment at %d", start)
		}
		cp := s.peek(s.cursor)
		s.cursor++
		if cp == '*' && s.peek(s.cursor) == '/' {
			s.cursor++
			return nil
		}
	}
}

// identifierStartAt reports whether cp, already consumed at offset
// start, begins an ECMAScript IdentifierName -- including the
// `\` UnicodeEscapeSequence form. Unlike the reference core, the
// cursor is always restored to exactly where it stood on entry when
// the escape form does not pan out (see DESIGN.md / spec.md §9's
// open question about cursor restoration on rejection).
func identifierStartAt(s *unicodeString, cp rune, start int) bool {
	if isIdentifierStartRune(cp) {
		return true
	}
	if cp != '\\' {
		return false
	}
	saved := s.cursor
	_, ok, err := unicodeEscapeSequence(s, nil)
	if err != nil || !ok {
		s.cursor = saved
		return false
	}
	s.cursor = saved
	return true
}

// identifierPartAt is identifierStartAt extended with the combining
// mark / digit / connector-punctuation / ZWJ / ZWNJ categories.
func identifierPartAt(s *unicodeString, cp rune, start int) bool {
	if identifierStartAt(s, cp, start) {
		return true
	}
	return isIdentifierPartRune(cp)
}

// --- string scanning -------------------------------------------------

func scanString(s *unicodeString, delim rune, start int) (*Token, error) {
	// First pass: find the closing delimiter, treating \\ and \<delim>
	// as two-code-point escapes so an escaped delimiter doesn't
	// terminate the string early (spec.md §4.4).
	i := s.cursor
	closed := false
	for i < s.length {
		cp := s.peek(i)
		if cp == '\\' {
			cp1 := s.peek(i + 1)
			if cp1 == invalidCodePoint {
				break
			}
			if cp1 == delim || cp1 == '\\' {
				i += 2
				continue
			}
		}
		if cp == delim {
			closed = true
			break
		}
		i++
	}

	if !closed {
		return nil, lexErrorf(start, "unterminated string at %d", start)
	}

	// Second pass: decode escapes into a fresh buffer sized to the
	// (upper-bound) code-point span.
	out := newUnicodeString(Width1, i-s.cursor+1)
	outLen := 0
	for s.cursor < s.length {
		cur := s.cursor
		cp := s.peek(cur)

		if cp == delim {
			s.cursor++
			break
		}

		if isLineTerminator(cp) {
			return nil, lexErrorf(start, "unescaped LineTerminator U+%04X at %d", cp, cur)
		}

		if cp == '\\' {
			s.cursor = cur + 1
			ecp, ok, err := escapeSequence(s)
			if err != nil {
				return nil, err
			}
			if ok {
				cp = ecp
			} else {
				s.cursor = cur + 1
				_, ok2 := lineTerminatorSequenceAt(s)
				if ok2 {
					continue
				}
				// Neither a recognised escape nor a line
				// continuation: treat the backslash as
				// itself (matches reference behaviour).
				// This is reached for a backslash before a
				// digit 1-9, and for a \x or \u escape with
				// too few code points left in the input.
				s.cursor = cur + 1
				cp = '\\'
			}
		} else {
			s.cursor++
		}

		out.set(outLen, cp)
		outLen++
	}

	end := s.cursor
	return &Token{Kind: TokString, Str: trimUnicodeString(out, outLen), Start: start, End: end}, nil
}

// trimUnicodeString returns a buffer containing only the first n code
// points of s (escape collapse means fewer code points than the
// upper-bound allocation).
func trimUnicodeString(s *unicodeString, n int) *unicodeString {
	out := newUnicodeString(s.width, n)
	for i := 0; i < n; i++ {
		out.set(i, s.peek(i))
	}
	return out
}

func isLineTerminatorAt(s *unicodeString) (rune, bool) {
	if !s.available(1) {
		return 0, false
	}
	cp := s.peek(s.cursor)
	if isLineTerminator(cp) {
		s.cursor++
		return cp, true
	}
	return 0, false
}

// lineTerminatorSequenceAt consumes a LineTerminatorSequence: any
// LineTerminator, with a following 0x0A absorbed after a 0x0D.
func lineTerminatorSequenceAt(s *unicodeString) (rune, bool) {
	cp, ok := isLineTerminatorAt(s)
	if !ok {
		return 0, false
	}
	if cp == 0x0D && s.peek(s.cursor) == 0x0A {
		s.cursor++
	}
	return cp, true
}

func singleEscapeCharacter(s *unicodeString) (rune, bool) {
	if !s.available(1) {
		return 0, false
	}
	cp := s.next()
	switch cp {
	case '\'':
		return 0x27, true
	case '"':
		return 0x22, true
	case '\\':
		return 0x5C, true
	case 'b':
		return 0x08, true
	case 'f':
		return 0x0C, true
	case 'n':
		return 0x0A, true
	case 'r':
		return 0x0D, true
	case 't':
		return 0x09, true
	case 'v':
		return 0x0B, true
	default:
		return 0, false
	}
}

// nonEscapeCharacter accepts anything that is not a SingleEscapeCharacter,
// not a decimal digit, not 'x'/'u', and not a LineTerminator -- an
// escaped "ordinary" character stands for itself (ECMA-262 §7.8.4).
func nonEscapeCharacter(s *unicodeString) (rune, bool) {
	start := s.cursor
	if _, ok := singleEscapeCharacter(s); ok {
		s.cursor = start
		return 0, false
	}
	s.cursor = start
	if !s.available(1) {
		return 0, false
	}
	cp := s.peek(s.cursor)
	if isAsciiDigit(cp) || cp == 'x' || cp == 'u' || isLineTerminator(cp) {
		s.cursor = start
		return 0, false
	}
	s.cursor++
	return cp, true
}

func characterEscapeSequence(s *unicodeString) (rune, bool) {
	start := s.cursor
	if cp, ok := singleEscapeCharacter(s); ok {
		return cp, true
	}
	s.cursor = start
	if cp, ok := nonEscapeCharacter(s); ok {
		return cp, true
	}
	s.cursor = start
	return 0, false
}

func hexEscapeSequence(s *unicodeString) (rune, bool, error) {
	start := s.cursor
	if !s.available(1) {
		return 0, false, nil
	}
	cp1 := s.next()
	if cp1 != 'x' {
		s.cursor = start
		return 0, false, nil
	}
	if !s.available(2) {
		s.cursor = start
		return 0, false, nil
	}
	h1, h2 := s.next(), s.next()
	if !isHexDigit(h1) || !isHexDigit(h2) {
		return 0, false, lexErrorf(start, "bad \\x escape: U+%04X U+%04X at %d", h1, h2, start)
	}
	return rune(hexValue(h1)<<4 + hexValue(h2)), true, nil
}

// unicodeEscapeSequence parses \uHHHH, combining UTF-16 surrogate pairs
// into one supplementary code point. ft is unused in this port (the
// reference core threads it through purely to free partial state on a
// fatal error, which Go's GC makes unnecessary) and is accepted for call
// symmetry with the spec's signature; pass nil.
func unicodeEscapeSequence(s *unicodeString, _ *Token) (rune, bool, error) {
	start := s.cursor
	if !s.available(1) {
		return 0, false, nil
	}
	cp1 := s.next()
	if cp1 != 'u' {
		s.cursor = start
		return 0, false, nil
	}
	if !s.available(4) {
		s.cursor = start
		return 0, false, nil
	}
	h1, h2, h3, h4 := s.next(), s.next(), s.next(), s.next()
	if !isHexDigit(h1) || !isHexDigit(h2) || !isHexDigit(h3) || !isHexDigit(h4) {
		return 0, false, lexErrorf(start, "not hex digits in \\u escape at %d", start)
	}
	hs := rune(hexValue(h1)<<12 | hexValue(h2)<<8 | hexValue(h3)<<4 | hexValue(h4))

	if hs < 0xD800 || hs > 0xDBFF {
		return hs, true, nil
	}

	// High surrogate: a low surrogate \uHHHH must follow.
	if !s.available(6) {
		return 0, false, lexErrorf(s.cursor, "expecting a low surrogate after high surrogate U+%04X at %d", hs, s.cursor)
	}
	lsEsc, lsU := s.next(), s.next()
	l1, l2, l3, l4 := s.next(), s.next(), s.next(), s.next()
	if lsEsc != '\\' || lsU != 'u' || !isHexDigit(l1) || !isHexDigit(l2) || !isHexDigit(l3) || !isHexDigit(l4) {
		return 0, false, lexErrorf(s.cursor-6, "not a low surrogate after high surrogate U+%04X at %d", hs, s.cursor-6)
	}
	ls := rune(hexValue(l1)<<12 | hexValue(l2)<<8 | hexValue(l3)<<4 | hexValue(l4))
	if ls < 0xDC00 || ls > 0xDFFF {
		return 0, false, lexErrorf(s.cursor-6, "low surrogate out of range: U+%04X at %d", ls, s.cursor-6)
	}
	return 0x10000 + (hs-0xD800)*0x400 + (ls - 0xDC00), true, nil
}

// escapeSequence resolves an EscapeSequence in the order spec.md §4.4
// requires: CharacterEscapeSequence, \0, \xHH, \uHHHH.
func escapeSequence(s *unicodeString) (rune, bool, error) {
	start := s.cursor
	if cp, ok := characterEscapeSequence(s); ok {
		return cp, true, nil
	}
	s.cursor = start
	if s.available(1) && s.peek(s.cursor) == '0' {
		s.cursor++
		return 0, true, nil
	}

	s.cursor = start
	if cp, ok, err := hexEscapeSequence(s); err != nil {
		return 0, false, err
	} else if ok {
		return cp, true, nil
	}

	s.cursor = start
	if cp, ok, err := unicodeEscapeSequence(s, nil); err != nil {
		return 0, false, err
	} else if ok {
		return cp, true, nil
	}

	s.cursor = start
	return 0, false, nil
}

// --- number scanning ---------------------------------------------------

func scanNumber(s *unicodeString) (*Token, error) {
	start := s.cursor

	var sign, expSign int
	named := false
	var namedKind NumberKind
	dec := true
	integer := true
	leadingZero := true
	trailingDot := false
	inExp := false
	digits := 0
	expDigits := 0
	done := false

	for s.cursor < s.length && !done {
		cp := s.next()

		switch {
		case cp == '+' || cp == '-':
			if inExp {
				if expSign != 0 {
					return nil, lexErrorf(start, "double signed exponent at %d", start)
				}
				expSign = signOf(cp)
			} else {
				if sign != 0 {
					return nil, lexErrorf(start, "double signed at %d", start)
				}
				sign = signOf(cp)
			}

		case cp == '0':
			if leadingZero {
				leadingZero = false
				cp1 := s.peek(s.cursor)
				switch {
				case cp1 == invalidCodePoint:
					digits++
				case cp1 == '.':
					integer = false
					digits++
				case cp1 == 'e' || cp1 == 'E':
					integer = false
					digits++
					s.cursor++
					inExp = true
				case cp1 == 'x' || cp1 == 'X':
					dec = false
					s.cursor++
				case cp1 == ']' || cp1 == '}' || cp1 == ',':
					digits++
				default:
					return nil, lexErrorf(start, "leading zero at %d", start)
				}
			} else {
				if inExp {
					expDigits++
				} else {
					digits++
				}
				trailingDot = false
			}

		case cp == '.':
			leadingZero = false
			integer = false
			if inExp {
				return nil, lexErrorf(start, "floating point exponent at %d", s.cursor-1)
			}
			trailingDot = true

		case cp >= '1' && cp <= '9':
			leadingZero = false
			trailingDot = false
			if inExp {
				expDigits++
			} else {
				digits++
			}

		case isHexDigit(cp): // a-f A-F (not already matched as decimal digit or e/E handled below)
			leadingZero = false
			if inExp {
				return nil, lexErrorf(start, "hex digit in exponent at %d", start)
			}
			if dec {
				if cp != 'e' && cp != 'E' {
					return nil, lexErrorf(start, "hex digit in decimal number: '%c' at %d", cp, s.cursor-1)
				}
				if digits == 0 {
					return nil, lexErrorf(start, "no mantissa digits at %d", start)
				}
				inExp = true
				integer = false
			}
			digits++

		default:
			if cp == 'I' && s.nEqual("nfinity", 7) {
				named = true
				digits++
				s.cursor += 7
				namedKind = NumPosInfinity
				if sign < 0 {
					namedKind = NumNegInfinity
				}
			} else if cp == 'N' && s.nEqual("aN", 2) {
				named = true
				digits++
				s.cursor += 2
				namedKind = NumPosNaN
				if sign < 0 {
					namedKind = NumNegNaN
				}
			} else {
				s.cursor-- // push the look-ahead code point back
			}
			done = true
		}
	}

	end := s.cursor

	if digits == 0 {
		return nil, lexErrorf(start, "no digits at %d", start)
	}
	if dec && inExp && expDigits == 0 && !trailingDot {
		return nil, lexErrorf(start, "no exponent digits at %d", start)
	}

	// ECMA-262 §7.8.3: a NumericLiteral must not be immediately
	// followed by an IdentifierStart or decimal digit.
	if end < s.length {
		cp := s.peek(end)
		s.cursor = end + 1
		isStart := identifierStartAt(s, cp, end)
		s.cursor = end
		if isStart || isAsciiDigit(cp) {
			return nil, lexErrorf(start, "followed by U+%04X at %d", cp, end)
		}
	}

	if named {
		return &Token{Kind: TokNumber, Num: NumberPayload{Kind: namedKind}, Start: start, End: end}, nil
	}

	litStart := start
	if cp := s.peek(litStart); cp == '+' || cp == '-' {
		litStart++
	}

	if (dec && integer) || !dec {
		base := 10
		if !dec {
			base = 16
			litStart += 2 // skip leading 0x/0X
		}
		var iv int64
		for i := litStart; i < end; i++ {
			iv = iv*int64(base) + int64(hexValue(s.peek(i)))
		}
		if sign < 0 {
			iv = -iv
		}
		return &Token{Kind: TokNumber, Num: NumberPayload{Kind: NumInt, Int: iv}, Start: start, End: end}, nil
	}

	fv, exp := assembleFloat(s, litStart, end)
	if exp != 0 {
		if expSign < 0 {
			for i := 0; i < exp; i++ {
				fv *= 0.1
			}
		} else {
			for i := 0; i < exp; i++ {
				fv *= 10
			}
		}
	}
	if sign < 0 {
		fv = -fv
	}
	return &Token{Kind: TokNumber, Num: NumberPayload{Kind: NumFloat, Float: fv}, Start: start, End: end}, nil
}

// assembleFloat walks [litStart, end) accumulating the decimal mantissa
// and exponent exactly as the reference core's repeated
// multiply-by-ten / divide-by-ten scheme does (spec.md §4.4, §9): not
// bit-exact with a strtod-style conversion, which the spec's Open
// Questions explicitly allow.
func assembleFloat(s *unicodeString, litStart, end int) (float64, int) {
	var fv float64
	dp := 0
	inExp := false
	exp := 0
	for i := litStart; i < end; i++ {
		cp := s.peek(i)
		switch {
		case cp == '.':
			dp = 1
		case cp == 'e' || cp == 'E':
			inExp = true
		case cp == '+' || cp == '-':
			// sign already captured by the caller's expSign
		default:
			if inExp {
				exp = exp*10 + hexValue(cp)
			} else {
				fv = fv*10 + float64(hexValue(cp))
				if dp > 0 {
					dp++
				}
			}
		}
	}
	if dp > 1 {
		dp--
		for ; dp > 0; dp-- {
			fv /= 10
		}
	}
	return fv, exp
}

func signOf(cp rune) int {
	if cp == '-' {
		return -1
	}
	return 1
}

// --- identifier scanning -------------------------------------------------

func scanIdentifier(s *unicodeString) (*Token, error) {
	start := s.cursor

	for s.cursor < s.length {
		cur := s.cursor
		cp := s.next()
		if !identifierPartAt(s, cp, cur) {
			s.cursor = cur
			break
		}
	}
	end := s.cursor

	switch {
	case matchesAt(s, start, end, "null"):
		return &Token{Kind: TokIdentifier, Literal: IdentNull, Start: start, End: end}, nil
	case matchesAt(s, start, end, "true"):
		return &Token{Kind: TokIdentifier, Literal: IdentTrue, Start: start, End: end}, nil
	case matchesAt(s, start, end, "false"):
		return &Token{Kind: TokIdentifier, Literal: IdentFalse, Start: start, End: end}, nil
	case matchesAt(s, start, end, "Infinity"):
		return &Token{Kind: TokNumber, Num: NumberPayload{Kind: NumPosInfinity}, Start: start, End: end}, nil
	case matchesAt(s, start, end, "NaN"):
		return &Token{Kind: TokNumber, Num: NumberPayload{Kind: NumPosNaN}, Start: start, End: end}, nil
	}

	name, err := unescapeIdentifier(s, start, end)
	if err != nil {
		return nil, err
	}
	return &Token{Kind: TokIdentifier, Literal: IdentNone, Ident: name, Start: start, End: end}, nil
}

func matchesAt(s *unicodeString, start, end int, word string) bool {
	if end-start != len(word) {
		return false
	}
	saved := s.cursor
	s.cursor = start
	ok := s.nEqual(word, len(word))
	s.cursor = saved
	return ok
}

// unescapeIdentifier resolves any `\uHHHH` UnicodeEscapeSequences
// within [start, end) into their target code points.
func unescapeIdentifier(s *unicodeString, start, end int) (string, error) {
	saved := s.cursor
	defer func() { s.cursor = saved }()

	out := newUnicodeString(Width1, end-start)
	n := 0
	s.cursor = start
	for s.cursor < end {
		cur := s.cursor
		cp := s.next()
		if cp == '\\' {
			ecp, ok, err := unicodeEscapeSequence(s, nil)
			if err != nil {
				return "", err
			}
			if !ok {
				return "", lexErrorf(cur, "failed to recognise UnicodeEscapeSequence at %d", cur)
			}
			cp = ecp
		}
		out.set(n, cp)
		n++
	}
	return trimUnicodeString(out, n).String(), nil
}
