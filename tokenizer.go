package rtfdecap

import (
	"strconv"
)

// ByteIsAsciiLetter reports whether b is an ASCII letter, used throughout
// tokenizing to find the end of a control word name. Grounded on the
// teacher's utils.go helper of the same name and signature, rewritten
// without the regexp call the teacher made per byte (structure.go calls
// this once per byte while scanning every control word).
func ByteIsAsciiLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// ByteIsDigit reports whether b is an ASCII decimal digit.
func ByteIsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// ByteIsHexDigit reports whether b is a valid hex digit.
func ByteIsHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// Tokenize runs the full RTF grammar over src (already binary-stripped
// and escape-normalized) and returns the flat token stream with byte
// offsets preserved. Grounded on the teacher's structure.go Parse/
// parseControl/parseControlWord/parseControlSymbol/parseText, generalized
// from a state machine that builds the group tree and decodes Unicode
// fallback skipping inline (interleaving three concerns in one pass) into
// a pure tokenizer: groups, decoding and \uc skipping are deferred to
// tree.go's Builder and decoder.go respectively, so this pass only needs
// to answer "what grammar element starts here".
func Tokenize(src []byte) ([]Token, error) {
	var toks []Token
	i := 0
	for i < len(src) {
		b := src[i]
		switch {
		case b == '{':
			toks = append(toks, groupOpenToken(i))
			i++
		case b == '}':
			toks = append(toks, groupCloseToken(i))
			i++
		case b == '\\':
			tok, next, err := scanControl(src, i)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
			i = next
		case b == '\r' || b == '\n':
			start := i
			for i < len(src) && (src[i] == '\r' || src[i] == '\n') {
				i++
			}
			toks = append(toks, ignoredWhitespaceToken(src[start:i], start))
		default:
			start := i
			for i < len(src) && src[i] != '{' && src[i] != '}' && src[i] != '\\' && src[i] != '\r' && src[i] != '\n' {
				i++
			}
			toks = append(toks, literalToken(src[start:i], start))
		}
	}
	return toks, nil
}

// scanControl parses one control word, control symbol, hex escape, or
// Unicode escape starting at the backslash src[i], returning the token
// and the index just past it.
func scanControl(src []byte, i int) (Token, int, error) {
	start := i
	if i+1 >= len(src) {
		return Token{}, 0, malformedAt(start, "trailing backslash at end of document")
	}
	c := src[i+1]

	if c == '\'' {
		if i+3 >= len(src) || !ByteIsHexDigit(src[i+2]) || !ByteIsHexDigit(src[i+3]) {
			return Token{}, 0, malformedAt(start, "incomplete hex escape")
		}
		v, err := strconv.ParseUint(string(src[i+2:i+4]), 16, 8)
		if err != nil {
			return Token{}, 0, malformedAt(start, "invalid hex escape")
		}
		return hexEscapeToken(byte(v), start), i + 4, nil
	}

	if !ByteIsAsciiLetter(c) {
		// Control symbol: exactly one non-letter character.
		return controlSymbolToken(string(c), start), i + 2, nil
	}

	j := i + 1
	for j < len(src) && ByteIsAsciiLetter(src[j]) {
		j++
	}
	name := string(src[i+1 : j])

	hasParam := false
	param := 0
	if j < len(src) && (src[j] == '-' || ByteIsDigit(src[j])) {
		k := j
		if src[k] == '-' {
			k++
		}
		digitsStart := k
		for k < len(src) && ByteIsDigit(src[k]) {
			k++
		}
		if k > digitsStart {
			n, err := strconv.Atoi(string(src[j:k]))
			if err != nil {
				return Token{}, 0, malformedAt(start, "invalid control word parameter")
			}
			param = n
			hasParam = true
			j = k
		}
	}

	// A single trailing space delimits the control word from following
	// text and is consumed, never emitted as its own whitespace token.
	if j < len(src) && src[j] == ' ' {
		j++
	}

	if name == "u" && hasParam {
		return unicodeEscapeToken(param, start), j, nil
	}
	return controlWordToken(name, param, hasParam, start), j, nil
}
