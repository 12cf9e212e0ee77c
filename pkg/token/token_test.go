package token

import "testing"

func TestEqualRequiresMatchingPayload(t *testing.T) {
	cases := []struct {
		name  string
		a, b  Token
		equal bool
	}{
		{"same number", NewNumber(4), NewNumber(4), true},
		{"different number", NewNumber(4), NewNumber(5), false},
		{"same id", NewId("x"), NewId("x"), true},
		{"different id", NewId("x"), NewId("y"), false},
		{"same string", NewString("hi"), NewString("hi"), true},
		{"different string", NewString("hi"), NewString("bye"), false},
		{"same char", NewChar('+'), NewChar('+'), true},
		{"different char", NewChar('+'), NewChar('-'), false},
		{"markers ignore payload zero value", Of(Newline), Of(Newline), true},
		{"different kind never equal", NewNumber(0), Of(Newline), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Equal(tc.b); got != tc.equal {
				t.Fatalf("Equal(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.equal)
			}
		})
	}
}

func TestKeywordTable(t *testing.T) {
	for word, kind := range map[string]Kind{
		"class": Class, "return": Return, "if": If, "else": Else,
		"def": Def, "print": Print, "and": And, "or": Or, "not": Not,
		"True": True, "False": False, "None": None,
	} {
		got, ok := Keyword(word)
		if !ok || got != kind {
			t.Fatalf("Keyword(%q) = (%v, %v), want (%v, true)", word, got, ok, kind)
		}
	}
	if _, ok := Keyword("Class"); ok {
		t.Fatalf("keyword lookup must be case-sensitive")
	}
	if _, ok := Keyword("x"); ok {
		t.Fatalf("non-keyword must not match")
	}
}

func TestStringRendering(t *testing.T) {
	cases := map[Token]string{
		NewNumber(42):  "Number{42}",
		NewId("foo"):   "Id{foo}",
		NewString("s"): "String{s}",
		NewChar('+'):   "Char{+}",
		Of(Eof):        "Eof",
		Of(Indent):     "Indent",
	}
	for tok, want := range cases {
		if got := tok.String(); got != want {
			t.Fatalf("String() = %q, want %q", got, want)
		}
	}
}
