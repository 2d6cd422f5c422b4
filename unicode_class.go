package json5

import "unicode"

// Unicode classification predicates backing spec.md §4.3's
// category(cp)/flags(cp) oracle. The oracle itself is the standard
// library's unicode package range tables -- they are the General
// Category data referenced by the spec, so there is no separate table
// to wire in from the retrieved example pack (see SPEC_FULL.md §4.3a).

const (
	zeroWidthNonJoiner rune = 0x200C
	zeroWidthJoiner    rune = 0x200D
	byteOrderMark      rune = 0xFEFF
	lineSeparator      rune = 0x2028
	paragraphSeparator rune = 0x2029
)

var identifierStartCategories = []*unicode.RangeTable{
	unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl,
}

var identifierPartExtraCategories = []*unicode.RangeTable{
	unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc,
}

// isIdentifierStartRune reports whether cp alone (ignoring the
// `\uXXXX` escape form, which the tokeniser resolves separately before
// calling this) can begin an ECMAScript IdentifierName.
func isIdentifierStartRune(cp rune) bool {
	if cp == '$' || cp == '_' {
		return true
	}
	return unicode.In(cp, identifierStartCategories...)
}

// isIdentifierPartRune reports whether cp (again, ignoring the escape
// form) can continue an ECMAScript IdentifierName.
func isIdentifierPartRune(cp rune) bool {
	if isIdentifierStartRune(cp) {
		return true
	}
	if cp == zeroWidthJoiner || cp == zeroWidthNonJoiner {
		return true
	}
	return unicode.In(cp, identifierPartExtraCategories...)
}

// isLineTerminator reports whether cp is one of the four ECMAScript
// LineTerminator code points.
func isLineTerminator(cp rune) bool {
	switch cp {
	case 0x0A, 0x0D, lineSeparator, paragraphSeparator:
		return true
	default:
		return false
	}
}

// isWhiteSpace reports whether cp is ECMAScript WhiteSpace: the
// explicit code points in spec.md §4.3 plus anything in Unicode
// category Zs.
func isWhiteSpace(cp rune) bool {
	switch cp {
	case 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x20, 0xA0, lineSeparator, paragraphSeparator, byteOrderMark:
		return true
	}
	return unicode.Is(unicode.Zs, cp)
}

// isHexDigit reports whether cp is an ASCII hex digit.
func isHexDigit(cp rune) bool {
	switch {
	case cp >= '0' && cp <= '9':
		return true
	case cp >= 'a' && cp <= 'f':
		return true
	case cp >= 'A' && cp <= 'F':
		return true
	default:
		return false
	}
}

func hexValue(cp rune) int {
	switch {
	case cp >= '0' && cp <= '9':
		return int(cp - '0')
	case cp >= 'a' && cp <= 'f':
		return int(cp-'a') + 10
	case cp >= 'A' && cp <= 'F':
		return int(cp-'A') + 10
	default:
		return -1
	}
}

func isAsciiDigit(cp rune) bool {
	return cp >= '0' && cp <= '9'
}
