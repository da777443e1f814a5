package rtfdecap

import "fmt"

// crc32Table is the lookup table for the non-inverted CRC32 variant
// [MS-OXRTFCP] compressed RTF uses, built once at package init time.
// Grounded on the teacher's decompress.go CRC32_TABLE/init, kept
// byte-for-byte identical since this is a fixed bit-reversal table with
// exactly one correct construction.
var crc32Table [256]uint32

func init() {
	for i := 0; i < 256; i++ {
		c := uint32(i)
		for j := 0; j < 8; j++ {
			if c&1 == 1 {
				c = 0xEDB88320 ^ (c >> 1)
			} else {
				c >>= 1
			}
		}
		crc32Table[i] = c
	}
}

const (
	compressedMagic   = 0x75465a4c
	uncompressedMagic = 0x414c454d
	lzDictSize        = 4096
	lzDictMask        = lzDictSize - 1
)

// compressedRtfPrebuf seeds the LZ77-style dictionary every compressed
// RTF stream implicitly starts with, per [MS-OXRTFCP] §3.1. Grounded on
// the teacher's decompress.go prebuf string, unchanged - it's specified
// literal data, not something to generalize.
const compressedRtfPrebuf = "{\\rtf1\\ansi\\mac\\deff0\\deftab720{\\fonttbl;}" +
	"{\\f0\\fnil \\froman \\fswiss \\fmodern \\fscript " +
	"\\fdecor MS Sans SerifSymbolArialTimes New RomanCourier" +
	"{\\colortbl\\red0\\green0\\blue0\r\n\\par " +
	"\\pard\\plain\\f0\\fs20\\b\\i\\u\\tab\\tx"

// Decompress inflates an [MS-OXRTFCP] compressed-RTF stream (the form
// Outlook stores a `.msg` PR_RTF_COMPRESSED property in) back into plain
// RTF bytes suitable for Deencapsulate. Grounded on the teacher's
// decompress.go Decompress, restructured to return the package's typed
// errors instead of ad hoc errors.New strings and wired to the facade as
// an alternate entry point (FromCompressed) rather than left dead code,
// per this repository's module layout.
func Decompress(src []byte) ([]byte, error) {
	if len(src) < 16 {
		return nil, malformedAt(0, "compressed-rtf header shorter than 16 bytes")
	}

	in := 0
	compressedSize := int(getU32(src, in))
	in += 4
	uncompressedSize := int(getU32(src, in))
	in += 4
	magic := int(getU32(src, in))
	in += 4
	crc32sum := int(getU32(src, in))
	in += 4

	if compressedSize != len(src)-4 {
		return nil, malformedAt(4, "compressed-rtf size field does not match payload length")
	}

	switch magic {
	case uncompressedMagic:
		return src[in:], nil
	case compressedMagic:
		if crc32sum != int(calculateCRC32(src, 16, len(src)-16)) {
			return nil, malformedAt(12, "compressed-rtf crc32 check failed")
		}
		return inflateLZFu(src, in, uncompressedSize)
	default:
		return nil, unsupportedAt(8, fmt.Sprintf("unrecognized compressed-rtf magic number 0x%x", uint32(magic)))
	}
}

func inflateLZFu(src []byte, in int, uncompressedSize int) ([]byte, error) {
	out := len(compressedRtfPrebuf)
	dst := make([]byte, out+uncompressedSize)
	copy(dst, compressedRtfPrebuf)

	flagCount := 0
	flags := 0
	for {
		if in >= len(src) {
			return nil, malformedAt(in, "compressed-rtf stream ended without a self-reference terminator")
		}
		if flagCount&7 == 0 {
			flags = int(src[in])
			in++
		} else {
			flags >>= 1
		}
		flagCount++

		if flags&1 == 0 {
			if in >= len(src) || out >= len(dst) {
				return nil, malformedAt(in, "compressed-rtf literal run past buffer end")
			}
			dst[out] = src[in]
			out++
			in++
			continue
		}

		if in+1 >= len(src) {
			return nil, malformedAt(in, "compressed-rtf reference truncated")
		}
		offsetByte := int(src[in]) & 0xFF
		in++
		lengthByte := int(src[in]) & 0xFF
		in++

		offset := (offsetByte << 4) | (lengthByte >> 4)
		length := (lengthByte & 0xF) + 2

		offset = out&^lzDictMask | offset
		if offset >= out {
			if offset == out {
				break // self-reference marks end of stream
			}
			offset -= lzDictSize
		}
		if offset < 0 {
			return nil, malformedAt(in, "compressed-rtf reference points before start of buffer")
		}

		end := offset + length
		for offset < end {
			if out >= len(dst) {
				return nil, malformedAt(in, "compressed-rtf reference run past buffer end")
			}
			dst[out] = dst[offset]
			out++
			offset++
		}
	}

	return dst[len(compressedRtfPrebuf):], nil
}

// getU32 reads an unsigned 32-bit little-endian value from buf at offset.
func getU32(buf []byte, offset int) uint32 {
	return uint32(buf[offset]) | uint32(buf[offset+1])<<8 |
		uint32(buf[offset+2])<<16 | uint32(buf[offset+3])<<24
}

// calculateCRC32 computes [MS-OXRTFCP]'s CRC32 variant (the standard
// polynomial, but without the pre/post inversion RFC 1952 specifies).
func calculateCRC32(buf []byte, off int, length int) uint32 {
	var crc uint32
	end := off + length
	for i := off; i < end; i++ {
		crc = crc32Table[(crc^uint32(buf[i]))&0xFF] ^ (crc >> 8)
	}
	return crc
}
