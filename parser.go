package json5

// parseTokens is the top-level entry point over an already-tokenised stream
// (spec.md §4.5): the stream must be non-empty, exactly one value is
// consumed, and any remaining token is an error.
func parseTokens(ts *tokenStream) (*Value, error) {
	cur := ts.first()
	if cur == nil {
		return nil, parseErrorf(0, "empty token stream")
	}

	v, rest, err := parseValue(cur)
	if err != nil {
		return nil, err
	}
	if rest != nil {
		return nil, parseErrorf(rest.Start, "extra tokens at %d", rest.Start)
	}
	return v, nil
}

// parseValue consumes one JSON5 value starting at cur and returns the
// built Value plus the next unconsumed token (nil at end of stream).
func parseValue(cur *Token) (*Value, *Token, error) {
	switch cur.Kind {
	case TokPunctuator:
		switch cur.Punct {
		case PunctLBrace:
			return parseObject(cur)
		case PunctLBracket:
			return parseArray(cur)
		default:
			return nil, nil, parseErrorf(cur.Start, "unexpected punctuation at %d: '%c'", cur.Start, rune(cur.Punct))
		}

	case TokIdentifier:
		switch cur.Literal {
		case IdentNull:
			return newNullValue(), cur.Next, nil
		case IdentTrue:
			return newBoolValue(true), cur.Next, nil
		case IdentFalse:
			return newBoolValue(false), cur.Next, nil
		default:
			// A bare, non-literal identifier is not a valid
			// JSON5 value in value position (only as an object
			// member name).
			return nil, nil, parseErrorf(cur.Start, "invalid value at %d", cur.Start)
		}

	case TokString:
		return newStringValue(cur.Str), cur.Next, nil

	case TokNumber:
		return newNumberValue(cur.Num), cur.Next, nil

	default:
		return nil, nil, parseErrorf(cur.Start, "invalid value at %d", cur.Start)
	}
}

// parseArray implements the two-state array grammar from spec.md §4.5:
// a Value state and a CommaOrRBracket state, with the transition back
// to Value on comma enabling the trailing-comma extension.
func parseArray(lbracket *Token) (*Value, *Token, error) {
	arrStart := lbracket.Start
	cur := lbracket.Next
	var elems []*Value

	const (
		stateValue = iota
		stateCommaOrRBracket
	)
	state := stateValue

	for {
		if cur == nil {
			return nil, nil, parseErrorf(arrStart, "unterminated array at %d", arrStart)
		}
		if cur.Kind == TokPunctuator && cur.Punct == PunctRBracket {
			return newArrayValue(elems), cur.Next, nil
		}

		switch state {
		case stateValue:
			v, rest, err := parseValue(cur)
			if err != nil {
				return nil, nil, err
			}
			elems = append(elems, v)
			cur = rest
			state = stateCommaOrRBracket

		case stateCommaOrRBracket:
			if cur.Kind == TokPunctuator && cur.Punct == PunctComma {
				cur = cur.Next
				state = stateValue
				continue
			}
			return nil, nil, parseErrorf(cur.Start, "expected ',' or ']' at %d", cur.Start)
		}
	}
}

// parseObject implements the four-state object grammar from spec.md
// §4.5: Name, Colon, Value, CommaOrRBrace. Only Name and
// CommaOrRBrace permit an immediate '}', so "{true}" and "{true:}" are
// both errors.
func parseObject(lbrace *Token) (*Value, *Token, error) {
	objStart := lbrace.Start
	cur := lbrace.Next
	var members []Member

	const (
		stateName = iota
		stateColon
		stateValue
		stateCommaOrRBrace
	)
	state := stateName
	var pendingKind MemberNameKind
	var pendingName string

	for {
		if cur == nil {
			return nil, nil, parseErrorf(objStart, "unterminated object at %d", objStart)
		}

		if (state == stateName || state == stateCommaOrRBrace) &&
			cur.Kind == TokPunctuator && cur.Punct == PunctRBrace {
			return newObjectValue(members), cur.Next, nil
		}

		switch state {
		case stateName:
			kind, name, err := parseMemberName(cur)
			if err != nil {
				return nil, nil, err
			}
			pendingKind, pendingName = kind, name
			cur = cur.Next
			state = stateColon

		case stateColon:
			if !(cur.Kind == TokPunctuator && cur.Punct == PunctColon) {
				// spec.md §4.5 lists this category without an
				// offset, matching the reference's message-literal
				// asymmetry (see errors.go).
				return nil, nil, parseErrorf(cur.Start, "expected ':'")
			}
			cur = cur.Next
			state = stateValue

		case stateValue:
			v, rest, err := parseValue(cur)
			if err != nil {
				return nil, nil, err
			}
			members = append(members, Member{NameKind: pendingKind, Name: pendingName, Value: v})
			cur = rest
			state = stateCommaOrRBrace

		case stateCommaOrRBrace:
			if cur.Kind == TokPunctuator && cur.Punct == PunctComma {
				cur = cur.Next
				state = stateName
				continue
			}
			// spec.md §4.5 lists this category without an offset too.
			return nil, nil, parseErrorf(cur.Start, "expected ',' or '}'")
		}
	}
}

// parseMemberName accepts the four lexical forms spec.md §3/§4.5 allow
// as an object member name: identifier, string, or the literals null,
// true, false. Anything else (a number, a punctuator) is a grammar
// error.
func parseMemberName(cur *Token) (MemberNameKind, string, error) {
	switch cur.Kind {
	case TokString:
		return NameString, cur.Str.String(), nil
	case TokIdentifier:
		switch cur.Literal {
		case IdentNull:
			return NameLiteralNull, "null", nil
		case IdentTrue:
			return NameLiteralBool, "true", nil
		case IdentFalse:
			return NameLiteralBool, "false", nil
		default:
			return NameIdentifier, cur.Ident, nil
		}
	default:
		return 0, "", parseErrorf(cur.Start, "expected member name at %d", cur.Start)
	}
}

// ParseBytes parses a complete JSON5 document, per spec.md §6.
func ParseBytes(data []byte) (*Value, error) {
	s := newUnicodeStringFromUTF8(data)
	ts, err := tokenize(s)
	if err != nil {
		return nil, err
	}
	return parseTokens(ts)
}
