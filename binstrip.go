package rtfdecap

import (
	"strconv"
)

// BinaryRecord records one `\binN` payload spliced out of the document
// before tokenizing, so a caller reconstructing an attachment boundary
// (the typical reason a `.msg` body embeds one) can get the raw bytes
// back along with where they sat in the original buffer. Promoted to the
// public facade's BinaryRecords field (see rtfdecap.go).
type BinaryRecord struct {
	// Offset is the position of the `\bin` control word itself in the
	// original source buffer.
	Offset int
	// Data is the raw payload bytes, excluded from the tokenizer's view
	// entirely - \bin data is never RTF-escaped and must not be scanned
	// for control sequences.
	Data []byte
}

// stripBinary pre-scans src for `\binN` control words and removes the
// following N raw bytes, returning the spliced buffer alongside a record
// of what was removed and from where. This has to run before tokenizing
// (not as a tokenizer case) because the N bytes that follow `\bin` are
// arbitrary binary data that may itself contain byte sequences that look
// like control words or group delimiters; the teacher has no equivalent
// pass (axigenmessaging-rtfconverter never handles \bin at all), so this
// is built directly from the byte-scanning idiom structure.go uses
// throughout (manual index walk, no regexp).
func stripBinary(src []byte) ([]byte, []BinaryRecord, error) {
	out := make([]byte, 0, len(src))
	var records []BinaryRecord

	i := 0
	for i < len(src) {
		if src[i] != '\\' || !hasControlWordAt(src, i, "bin") {
			out = append(out, src[i])
			i++
			continue
		}

		start := i
		j := i + 4 // past `\bin`
		digitsStart := j
		for j < len(src) && src[j] >= '0' && src[j] <= '9' {
			j++
		}
		if j == digitsStart {
			// `\bin` with no numeric parameter isn't the binary
			// destination marker; treat as an ordinary control word.
			out = append(out, src[i])
			i++
			continue
		}
		n, err := strconv.Atoi(string(src[digitsStart:j]))
		if err != nil || n < 0 {
			return nil, nil, malformedAt(start, "invalid \\bin length")
		}
		// RTF allows (but rarely uses) a single delimiting space after
		// the parameter, consumed and not counted toward N.
		if j < len(src) && src[j] == ' ' {
			j++
		}
		if j+n > len(src) {
			return nil, nil, malformedAt(start, "\\bin payload runs past end of document")
		}
		out = append(out, src[start:j]...)
		records = append(records, BinaryRecord{Offset: start, Data: append([]byte(nil), src[j:j+n]...)})
		i = j + n
	}

	return out, records, nil
}

// hasControlWordAt reports whether src has the literal control word name
// starting right after a backslash at position i, followed by either a
// digit or a non-letter (so "\bin0" matches but "\binding" does not).
func hasControlWordAt(src []byte, i int, name string) bool {
	end := i + 1 + len(name)
	if end > len(src) || string(src[i+1:end]) != name {
		return false
	}
	if end < len(src) && ByteIsAsciiLetter(src[end]) {
		return false
	}
	return true
}
