package rtfdecap

// TokenKind tags the variant held by a Token. RTF's grammar is small and
// flat enough to represent as one sum type rather than the teacher's
// interface-per-element (rtfControlWord/rtfControlSymbol/rtfText) split -
// a single visitor pair in tree.go walks the whole set instead of a type
// switch at every call site.
type TokenKind int

const (
	// GroupOpen and GroupClose bracket a scope; they never carry text.
	GroupOpen TokenKind = iota
	GroupClose

	// ControlWord is `\word` optionally followed by a signed decimal
	// parameter and a single delimiting space, which the tokenizer
	// consumes and does not keep.
	ControlWord

	// ControlSymbol is `\X` for a single non-letter X (`\~`, `\-`, `\_`...).
	ControlSymbol

	// HexEscape is `\'HH`, a single raw byte given in hex.
	HexEscape

	// UnicodeEscape is `\uN`, a signed 16-bit code unit.
	UnicodeEscape

	// HtmlTagDestination names the `{\*\htmltag ...}` destination.
	// Tokenize does not emit it: `\htmltag` comes out as an ordinary
	// ControlWord, and Group.Destination identifies the group.
	HtmlTagDestination

	// MHtmlTagDestination names `{\*\mhtmltag ...}`, MIME-encoded HTML.
	// Tokenize does not emit it either.
	MHtmlTagDestination

	// LiteralString is a run of plain text bytes between control
	// sequences, not yet decoded from its source codepage.
	LiteralString

	// IgnoredWhitespace is a newline or other formatting whitespace
	// between control words that carries no content of its own.
	IgnoredWhitespace
)

func (k TokenKind) String() string {
	switch k {
	case GroupOpen:
		return "GroupOpen"
	case GroupClose:
		return "GroupClose"
	case ControlWord:
		return "ControlWord"
	case ControlSymbol:
		return "ControlSymbol"
	case HexEscape:
		return "HexEscape"
	case UnicodeEscape:
		return "UnicodeEscape"
	case HtmlTagDestination:
		return "HtmlTagDestination"
	case MHtmlTagDestination:
		return "MHtmlTagDestination"
	case LiteralString:
		return "LiteralString"
	case IgnoredWhitespace:
		return "IgnoredWhitespace"
	default:
		return "Unknown"
	}
}

// Token is one grammar element produced by the tokenizer, tagged by Kind.
// Offset is the byte position where the token began in the buffer handed
// to Tokenize (after binary stripping and escape normalization), kept
// through every later pass for diagnostics. \bin splice records carry
// their own offsets into the original source.
type Token struct {
	Kind TokenKind

	// Name is the control word/symbol name, without the leading
	// backslash ("rtf1" has Name "rtf", Param 1, HasParam true).
	Name string

	// Param is the signed numeric parameter of a control word, or the
	// decoded byte value of a HexEscape, or the signed code unit of a
	// UnicodeEscape.
	Param int

	// HasParam distinguishes "\f0" (HasParam true, Param 0) from "\par"
	// (HasParam false) - RTF control words with no digits behave
	// differently from those carrying an explicit zero.
	HasParam bool

	// Text holds literal bytes for LiteralString/IgnoredWhitespace.
	Text []byte

	Offset int
}

func groupOpenToken(offset int) Token  { return Token{Kind: GroupOpen, Offset: offset} }
func groupCloseToken(offset int) Token { return Token{Kind: GroupClose, Offset: offset} }

func controlWordToken(name string, param int, hasParam bool, offset int) Token {
	return Token{Kind: ControlWord, Name: name, Param: param, HasParam: hasParam, Offset: offset}
}

func controlSymbolToken(name string, offset int) Token {
	return Token{Kind: ControlSymbol, Name: name, Offset: offset}
}

func hexEscapeToken(value byte, offset int) Token {
	return Token{Kind: HexEscape, Param: int(value), Offset: offset}
}

func unicodeEscapeToken(value int, offset int) Token {
	return Token{Kind: UnicodeEscape, Param: value, Offset: offset}
}

func literalToken(text []byte, offset int) Token {
	return Token{Kind: LiteralString, Text: text, Offset: offset}
}

func ignoredWhitespaceToken(text []byte, offset int) Token {
	return Token{Kind: IgnoredWhitespace, Text: text, Offset: offset}
}
