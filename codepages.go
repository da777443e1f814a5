package rtfdecap

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// ansiKeywordCodepage maps the RTF default-charset keywords (\ansi, \mac,
// \pc, \pca) to a Windows codepage number, for documents that give a
// keyword instead of (or in addition to) an explicit \ansicpgN. Grounded
// on the teacher's utils.go rtfEncodeCodePageMap, which mapped these same
// keywords straight to codec names. The decode path does not consult this
// table: a document with no \ansicpgN is decoded as 1252 whichever of
// these keywords it gives.
var ansiKeywordCodepage = map[string]int{
	"ansi": 1252,
	"mac":  10000,
	"pc":   437,
	"pca":  850,
}

// fcharsetCodepage maps an RTF \fcharsetM value to the Windows codepage
// used to decode bytes written in that font, expanded from the teacher's
// 9-entry rtfEncodingCharsetMap (utils.go) to the fuller [MS-OXRTFEX]
// table (SPEC_FULL "Font codepage resolution table" supplement).
var fcharsetCodepage = map[int]int{
	0:   1252, // ANSI
	1:   1252, // Default
	2:   42,   // Symbol (no conversion; falls back to source bytes)
	77:  10000,
	128: 932,
	129: 949,
	130: 1361,
	134: 936,
	136: 950,
	161: 1253,
	162: 1254,
	163: 1258,
	177: 1255,
	178: 1256,
	179: 1256,
	180: 1256,
	181: 1255,
	186: 1257,
	204: 1251,
	222: 874,
	238: 1250,
	254: 437,
	255: 437,
}

// codepageDecoder maps a Windows/IBM codepage number to a golang.org/x/text
// decoder, covering the same codepages the teacher's ConvertToUtf8
// (utils.go) switched on, plus the extras fcharsetCodepage/ansicpg can
// now reach.
func codepageDecoder(cp int) (*encoding.Decoder, bool) {
	switch cp {
	case 10000:
		return charmap.Macintosh.NewDecoder(), true
	case 437:
		return charmap.CodePage437.NewDecoder(), true
	case 708:
		return charmap.ISO8859_6.NewDecoder(), true
	case 819:
		return charmap.ISO8859_1.NewDecoder(), true
	case 850:
		return charmap.CodePage850.NewDecoder(), true
	case 852:
		return charmap.CodePage852.NewDecoder(), true
	case 860:
		return charmap.CodePage860.NewDecoder(), true
	case 862:
		return charmap.CodePage862.NewDecoder(), true
	case 863:
		return charmap.CodePage863.NewDecoder(), true
	case 865:
		return charmap.CodePage865.NewDecoder(), true
	case 866:
		return charmap.CodePage866.NewDecoder(), true
	case 874:
		return charmap.Windows874.NewDecoder(), true
	case 932:
		return japanese.ShiftJIS.NewDecoder(), true
	case 936:
		return simplifiedchinese.GBK.NewDecoder(), true
	case 949:
		return korean.EUCKR.NewDecoder(), true
	case 950:
		return traditionalchinese.Big5.NewDecoder(), true
	case 1250:
		return charmap.Windows1250.NewDecoder(), true
	case 1251:
		return charmap.Windows1251.NewDecoder(), true
	case 1252:
		return charmap.Windows1252.NewDecoder(), true
	case 1253:
		return charmap.Windows1253.NewDecoder(), true
	case 1254:
		return charmap.Windows1254.NewDecoder(), true
	case 1255:
		return charmap.Windows1255.NewDecoder(), true
	case 1256:
		return charmap.Windows1256.NewDecoder(), true
	case 1257:
		return charmap.Windows1257.NewDecoder(), true
	case 1258:
		return charmap.Windows1258.NewDecoder(), true
	case 1361:
		return korean.EUCKR.NewDecoder(), true
	default:
		return nil, false
	}
}

// decodeBytes decodes b from the given Windows codepage to UTF-8. An
// unrecognized codepage returns the bytes unchanged alongside
// ErrUnsupportedFormat wrapped with the caller-supplied offset; the
// decoder ignores that error and writes the raw bytes through unchanged
// (this is also how Symbol-charset fonts, codepage 42, are emitted).
func decodeBytes(b []byte, cp int, offset int) ([]byte, error) {
	dec, ok := codepageDecoder(cp)
	if !ok {
		return b, unsupportedAt(offset, "no decoder for codepage")
	}
	out, err := dec.Bytes(b)
	if err != nil {
		return b, malformedAt(offset, "invalid byte sequence for codepage")
	}
	return out, nil
}

// canonicalCodecName resolves a codepage number to the canonical IANA
// name golang.org/x/text/encoding/htmlindex knows (SPEC_FULL's
// domain-stack table). Nothing in the decode pipeline or its log messages
// calls it; decoding uses codepageDecoder directly.
func canonicalCodecName(cp int) string {
	names := map[int]string{
		437: "ibm437", 819: "iso-8859-1", 850: "ibm850", 852: "ibm852",
		866: "ibm866", 874: "windows-874", 932: "shift_jis", 936: "gbk",
		949: "euc-kr", 950: "big5", 1250: "windows-1250", 1251: "windows-1251",
		1252: "windows-1252", 1253: "windows-1253", 1254: "windows-1254",
		1255: "windows-1255", 1256: "windows-1256", 1257: "windows-1257",
		1258: "windows-1258",
	}
	name, ok := names[cp]
	if !ok {
		return ""
	}
	enc, err := htmlindex.Get(name)
	if err != nil || enc == nil {
		return name
	}
	canonical, err := htmlindex.Name(enc)
	if err != nil {
		return name
	}
	return canonical
}
