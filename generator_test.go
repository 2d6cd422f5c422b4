package json5

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateScalarsJSON5(t *testing.T) {
	for _, test := range []struct {
		name     string
		value    *Value
		expected string
	}{
		{"null", newNullValue(), "null"},
		{"true", newBoolValue(true), "true"},
		{"false", newBoolValue(false), "false"},
		{"int", newNumberValue(NumberPayload{Kind: NumInt, Int: -7}), "-7"},
		{"infinity", newNumberValue(NumberPayload{Kind: NumPosInfinity}), "Infinity"},
		{"neg-infinity", newNumberValue(NumberPayload{Kind: NumNegInfinity}), "-Infinity"},
		{"nan", newNumberValue(NumberPayload{Kind: NumPosNaN}), "NaN"},
		{"neg-nan", newNumberValue(NumberPayload{Kind: NumNegNaN}), "-NaN"},
	} {
		t.Run(test.name, func(t *testing.T) {
			got, err := Generate(test.value, ModeJSON5)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != test.expected {
				t.Errorf("expected %q got %q", test.expected, got)
			}
		})
	}
}

func TestGenerateNonFiniteRejectedUnderStrictJSON(t *testing.T) {
	for _, n := range []NumberPayload{
		{Kind: NumPosInfinity}, {Kind: NumNegInfinity}, {Kind: NumPosNaN}, {Kind: NumNegNaN},
	} {
		if _, err := Generate(newNumberValue(n), ModeJSON); err == nil {
			t.Errorf("expected error generating %+v under strict JSON", n)
		}
	}
}

func TestGenerateUnquotesIdentifierKeysInJSON5(t *testing.T) {
	v := newObjectValue([]Member{
		{NameKind: NameIdentifier, Name: "abc", Value: newBoolValue(true)},
	})
	got, err := Generate(v, ModeJSON5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "abc: true") {
		t.Errorf("expected unquoted key, got %q", got)
	}
}

func TestGenerateRejectsIdentifierKindKeyUnderStrictJSON(t *testing.T) {
	// spec.md §4.6/§7: strict JSON mode rejects identifier-kind keys
	// with a ValueError rather than silently re-quoting them.
	for _, kind := range []MemberNameKind{NameIdentifier, NameLiteralNull, NameLiteralBool} {
		v := newObjectValue([]Member{
			{NameKind: kind, Name: "abc", Value: newBoolValue(true)},
		})
		if _, err := Generate(v, ModeJSON); err == nil {
			t.Errorf("expected error generating name kind %v under strict JSON", kind)
		}
	}
}

func TestGenerateQuotesStringKindKeyUnderStrictJSON(t *testing.T) {
	v := newObjectValue([]Member{
		{NameKind: NameString, Name: "abc", Value: newBoolValue(true)},
	})
	got, err := Generate(v, ModeJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, `"abc": true`) {
		t.Errorf("expected quoted key, got %q", got)
	}
}

func TestGenerateDoesNotUnquoteStringKindKeyEvenIfIdentifierShaped(t *testing.T) {
	// A key parsed as an explicitly-quoted string ("a": 1) must stay
	// quoted on regeneration even though its text happens to satisfy
	// canUnquoteKey -- NameString never promotes to unquoted form.
	v := newObjectValue([]Member{
		{NameKind: NameString, Name: "abc", Value: newBoolValue(true)},
	})
	got, err := Generate(v, ModeJSON5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, `"abc": true`) {
		t.Errorf("expected quoted key, got %q", got)
	}
}

func TestGenerateRejectsNonIdentifierShapedIdentifierKindKeyInJSON5(t *testing.T) {
	// A programmatically-built NameIdentifier key whose text doesn't
	// actually satisfy IdentifierStart/IdentifierPart must fail, per
	// spec.md §4.6's re-validation requirement -- not fall back to
	// quoting it.
	v := newObjectValue([]Member{
		{NameKind: NameIdentifier, Name: "not an identifier", Value: newBoolValue(true)},
	})
	if _, err := Generate(v, ModeJSON5); err == nil {
		t.Errorf("expected error for non-identifier-shaped identifier-kind key")
	}
}

func TestGenerateQuotesNonIdentifierKeyEvenInJSON5(t *testing.T) {
	v := newObjectValue([]Member{
		{NameKind: NameString, Name: "not an identifier", Value: newBoolValue(true)},
	})
	got, err := Generate(v, ModeJSON5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, `"not an identifier": true`) {
		t.Errorf("expected quoted key, got %q", got)
	}
}

func TestGenerateFloatUsesScientificNotation(t *testing.T) {
	// spec.md §4.6: floats print %e-style, not Go's shortest-form 'g'.
	got, err := Generate(newNumberValue(NumberPayload{Kind: NumFloat, Float: 3.5}), ModeJSON5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := "3.5e+00"
	if got != expected {
		t.Errorf("expected %q got %q", expected, got)
	}
}

func TestGenerateEscapesStringContent(t *testing.T) {
	v := newStringValue(newUnicodeStringFromRunes([]rune("a\"b\\c\nd")))
	got, err := Generate(v, ModeJSON5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := `"a\"b\\c\nd"`
	if got != expected {
		t.Errorf("expected %q got %q", expected, got)
	}
}

func TestGenerateEmptyContainers(t *testing.T) {
	got, err := Generate(newArrayValue(nil), ModeJSON5)
	if err != nil || got != "[]" {
		t.Errorf("expected [] got %q (err %v)", got, err)
	}
	got, err = Generate(newObjectValue(nil), ModeJSON5)
	if err != nil || got != "{}" {
		t.Errorf("expected {} got %q (err %v)", got, err)
	}
}

// TestRoundTrip exercises P1: parsing the generated text of a value
// built only from literal primitives/containers/ASCII strings returns
// an equal value.
func TestRoundTrip(t *testing.T) {
	original := newObjectValue([]Member{
		{NameKind: NameIdentifier, Name: "ok", Value: newBoolValue(true)},
		{NameKind: NameIdentifier, Name: "count", Value: newNumberValue(NumberPayload{Kind: NumInt, Int: 3})},
		{NameKind: NameIdentifier, Name: "items", Value: newArrayValue([]*Value{
			newStringValue(newUnicodeStringFromRunes([]rune("a"))),
			newStringValue(newUnicodeStringFromRunes([]rune("b"))),
			newNullValue(),
		})},
	})

	text, err := Generate(original, ModeJSON5)
	require.NoError(t, err, "generating")

	reparsed, err := ParseBytes([]byte(text))
	require.NoError(t, err, "re-parsing %q", text)

	require.Equal(t, original.String(), reparsed.String(), "round trip mismatch")
}
