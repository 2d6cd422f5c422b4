package json5

import (
	"strings"
	"testing"
)

func tokenizeString(t *testing.T, input string) *tokenStream {
	t.Helper()
	ts, err := tokenize(newUnicodeStringFromUTF8([]byte(input)))
	if err != nil {
		t.Fatalf("tokenize(%q): unexpected error: %v", input, err)
	}
	return ts
}

func TestTokenizeLiterals(t *testing.T) {
	for _, test := range []struct {
		input    string
		literal  IdentifierLiteral
	}{
		{"true", IdentTrue},
		{"false", IdentFalse},
		{"null", IdentNull},
	} {
		t.Run(test.input, func(t *testing.T) {
			ts := tokenizeString(t, test.input)
			tok := ts.first()
			if tok == nil || tok.Next != nil {
				t.Fatalf("expected exactly one token")
			}
			if tok.Kind != TokIdentifier || tok.Literal != test.literal {
				t.Errorf("expected identifier literal %v, got kind=%v literal=%v", test.literal, tok.Kind, tok.Literal)
			}
		})
	}
}

func TestTokenizeHexNumber(t *testing.T) {
	ts := tokenizeString(t, "0x2A")
	tok := ts.first()
	if tok.Kind != TokNumber || tok.Num.Kind != NumInt || tok.Num.Int != 42 {
		t.Errorf("expected Int(42), got %+v", tok.Num)
	}
}

func TestTokenizeSignedFloat(t *testing.T) {
	ts := tokenizeString(t, "+.5e1")
	tok := ts.first()
	if tok.Kind != TokNumber || tok.Num.Kind != NumFloat || tok.Num.Float != 5.0 {
		t.Errorf("expected Float(5.0), got %+v", tok.Num)
	}
}

func TestTokenizeNegativeInfinity(t *testing.T) {
	ts := tokenizeString(t, "-Infinity")
	tok := ts.first()
	if tok.Kind != TokNumber || tok.Num.Kind != NumNegInfinity {
		t.Errorf("expected NegInfinity, got %+v", tok.Num)
	}
}

func TestTokenizeStringEscape(t *testing.T) {
	ts := tokenizeString(t, `'hello\nworld'`)
	tok := ts.first()
	if tok.Kind != TokString {
		t.Fatalf("expected string token, got %v", tok.Kind)
	}
	if got := tok.Str.String(); got != "hello\nworld" {
		t.Errorf("expected %q got %q", "hello\nworld", got)
	}
}

func TestTokenizeArrayWithTrailingComma(t *testing.T) {
	ts := tokenizeString(t, "[1, 2, 3,]")
	var kinds []TokenKind
	for tok := ts.first(); tok != nil; tok = tok.Next {
		kinds = append(kinds, tok.Kind)
	}
	expected := []TokenKind{TokPunctuator, TokNumber, TokPunctuator, TokNumber, TokPunctuator, TokNumber, TokPunctuator, TokPunctuator}
	if len(kinds) != len(expected) {
		t.Fatalf("expected %d tokens got %d", len(expected), len(kinds))
	}
}

func TestTokenizeEmptyInputYieldsEmptyStream(t *testing.T) {
	ts, err := tokenize(newUnicodeStringFromUTF8(nil))
	if err != nil {
		t.Fatalf("tokenize of empty input should not itself error: %v", err)
	}
	if ts.first() != nil {
		t.Errorf("expected empty token stream")
	}
}

func TestTokenizeLeadingZeroErrors(t *testing.T) {
	_, err := tokenize(newUnicodeStringFromUTF8([]byte("0123")))
	if err == nil || !strings.Contains(err.Error(), "leading zero") {
		t.Errorf("expected leading zero error, got %v", err)
	}
}

func TestTokenizeUnescapedLineTerminatorErrors(t *testing.T) {
	_, err := tokenize(newUnicodeStringFromUTF8([]byte("'\n'")))
	if err == nil || !strings.Contains(err.Error(), "unescaped LineTerminator") {
		t.Errorf("expected unescaped LineTerminator error, got %v", err)
	}
}

func TestTokenizeNumberFollowedByIdentifierStartErrors(t *testing.T) {
	_, err := tokenize(newUnicodeStringFromUTF8([]byte("1X")))
	if err == nil || !strings.Contains(err.Error(), "followed by U+0058 at 1") {
		t.Errorf("expected 'followed by U+0058 at 1' error, got %v", err)
	}
}

func TestTokenizeBareZero(t *testing.T) {
	ts := tokenizeString(t, "0")
	tok := ts.first()
	if tok.Kind != TokNumber || tok.Num.Kind != NumInt || tok.Num.Int != 0 {
		t.Errorf("expected Int(0), got %+v", tok.Num)
	}
}

func TestTokenizeUnterminatedBlockComment(t *testing.T) {
	_, err := tokenize(newUnicodeStringFromUTF8([]byte("/* never closes")))
	if err == nil || !strings.Contains(err.Error(), "unterminated block comment") {
		t.Errorf("expected unterminated block comment error, got %v", err)
	}
}

func TestTokenizeLineCommentSkipped(t *testing.T) {
	ts := tokenizeString(t, "1 // comment\n, 2")
	var kinds []TokenKind
	for tok := ts.first(); tok != nil; tok = tok.Next {
		kinds = append(kinds, tok.Kind)
	}
	if len(kinds) != 3 {
		t.Fatalf("expected 3 tokens (number, comma, number), got %d", len(kinds))
	}
}

func TestTokenBoundsWithinInput(t *testing.T) {
	// P3: every token's [Start, End) lies within the input length.
	input := "{ a: [1, 2], b: 'x' }"
	ts := tokenizeString(t, input)
	n := len([]rune(input))
	for tok := ts.first(); tok != nil; tok = tok.Next {
		if tok.Start < 0 || tok.End < tok.Start || tok.End > n {
			t.Errorf("token %+v out of bounds for input of length %d", tok, n)
		}
	}
}

func TestTokenizeUnquotedIdentifierKeyAndSingleQuoteAndDoubleQuote(t *testing.T) {
	ts := tokenizeString(t, `{ a: 1, 'b': 2, "c": Infinity }`)
	var names []string
	tok := ts.first()
	// {  a  :  1  ,  'b'  :  2  ,  "c"  :  Infinity  }
	for tok != nil {
		if tok.Kind == TokIdentifier && tok.Literal == IdentNone {
			names = append(names, tok.Ident)
		}
		if tok.Kind == TokString {
			names = append(names, tok.Str.String())
		}
		tok = tok.Next
	}
	expected := []string{"a", "b", "c"}
	if len(names) != len(expected) {
		t.Fatalf("expected names %v, got %v", expected, names)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("expected %v got %v", expected, names)
			break
		}
	}
}
