// Package token defines the tagged token value produced by pkg/lexer and
// consumed by a recursive-descent parser (out of scope for this module).
package token

import "fmt"

// Kind identifies which variant of Token is populated.
type Kind int

const (
	Number Kind = iota
	Id
	String
	Char

	Class
	Return
	If
	Else
	Def
	Print
	And
	Or
	Not
	None
	True
	False

	Eq
	NotEq
	LessOrEq
	GreaterOrEq

	Newline
	Indent
	Dedent
	Eof
)

var kindNames = map[Kind]string{
	Number:      "Number",
	Id:          "Id",
	String:      "String",
	Char:        "Char",
	Class:       "Class",
	Return:      "Return",
	If:          "If",
	Else:        "Else",
	Def:         "Def",
	Print:       "Print",
	And:         "And",
	Or:          "Or",
	Not:         "Not",
	None:        "None",
	True:        "True",
	False:       "False",
	Eq:          "Eq",
	NotEq:       "NotEq",
	LessOrEq:    "LessOrEq",
	GreaterOrEq: "GreaterOrEq",
	Newline:     "Newline",
	Indent:      "Indent",
	Dedent:      "Dedent",
	Eof:         "Eof",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// keywords maps the fixed keyword table from spec §4.1 rule 7.
var keywords = map[string]Kind{
	"class":  Class,
	"return": Return,
	"if":     If,
	"else":   Else,
	"def":    Def,
	"print":  Print,
	"and":    And,
	"or":     Or,
	"not":    Not,
	"True":   True,
	"False":  False,
	"None":   None,
}

// Keyword looks up the fixed keyword table, returning ok=false for
// identifiers that are not reserved words.
func Keyword(word string) (Kind, bool) {
	kind, ok := keywords[word]
	return kind, ok
}

// Token is a tagged value: Kind selects which of Num/Str/Ch carries the
// payload. Number/Id/String/Char are the only kinds with a payload; every
// other kind is a bare marker (spec §3.1).
type Token struct {
	Kind Kind
	Num  int64
	Str  string
	Ch   byte
}

func Of(kind Kind) Token { return Token{Kind: kind} }

func NewNumber(v int64) Token { return Token{Kind: Number, Num: v} }
func NewId(name string) Token { return Token{Kind: Id, Str: name} }
func NewString(s string) Token { return Token{Kind: String, Str: s} }
func NewChar(c byte) Token { return Token{Kind: Char, Ch: c} }

// Equal implements the equality contract from spec §3.1: kind must match,
// and for Number/Id/String/Char the payload must match too.
func (t Token) Equal(other Token) bool {
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case Number:
		return t.Num == other.Num
	case Id, String:
		return t.Str == other.Str
	case Char:
		return t.Ch == other.Ch
	default:
		return true
	}
}

// String renders the token's canonical form, used by both debugging output
// and the tokenization round-trip property in spec §8.1.
func (t Token) String() string {
	switch t.Kind {
	case Number:
		return fmt.Sprintf("Number{%d}", t.Num)
	case Id:
		return fmt.Sprintf("Id{%s}", t.Str)
	case String:
		return fmt.Sprintf("String{%s}", t.Str)
	case Char:
		return fmt.Sprintf("Char{%c}", t.Ch)
	default:
		return t.Kind.String()
	}
}
