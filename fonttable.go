package rtfdecap

// fontdef is one entry of the \fonttbl, resolved down to the codepage its
// bytes should be decoded with. Grounded on the teacher's
// rtfFontTableItem (html-encapsulated-converter.go), which stored the
// font name and charset/codepage but resolved the codec inline at use
// time; fontdef resolves Codepage once, at table-parse time, so decoder.go
// never has to re-derive it per literal run.
type fontdef struct {
	Num      int
	Name     string
	Charset  int
	Codepage int // 0 means "use the document default"

	// AltName is the font's \*\falt alternate name, kept only as
	// diagnostic metadata (SPEC_FULL's "Font-table alternate names"
	// supplement; surfaced when Options.KeepFontdef is set).
	AltName string
}

// parseFontTable reads a `{\fonttbl ...}` destination group into a
// lookup by font number. Grounded on the teacher's parseFontTableGroup/
// parseFontInfoGroup (html-encapsulated-converter.go), generalized to
// also resolve \cpgM (a direct codepage override the teacher's version
// never read - it only ever consulted \fcharset).
func parseFontTable(g *Group) map[int]*fontdef {
	fonts := make(map[int]*fontdef)

	var walkFontEntry func(entry *Group)
	walkFontEntry = func(entry *Group) {
		cur := &fontdef{Num: -1}
		cpgSet := false
		for _, n := range entry.Nodes {
			if n.IsGroup() {
				if name, _, ok := n.Group.Destination(); ok && name == "falt" {
					cur.AltName = collectGroupText(n.Group)
				}
				continue
			}
			tok := n.Tok
			switch tok.Kind {
			case ControlWord:
				switch tok.Name {
				case "f":
					if tok.HasParam {
						cur.Num = tok.Param
					}
				case "fcharset":
					if tok.HasParam {
						cur.Charset = tok.Param
						if cp, ok := fcharsetCodepage[tok.Param]; ok && !cpgSet {
							cur.Codepage = cp
						}
					}
				case "cpg":
					if tok.HasParam {
						cur.Codepage = tok.Param
						cpgSet = true
					}
				}
			case LiteralString:
				cur.Name += string(tok.Text)
			}
		}
		if cur.Num >= 0 {
			// Font names run up to the trailing `;`; strip it.
			name := cur.Name
			if n := len(name); n > 0 && name[n-1] == ';' {
				name = name[:n-1]
			}
			cur.Name = name
			fonts[cur.Num] = cur
		}
	}

	for _, n := range g.Nodes {
		if !n.IsGroup() {
			continue
		}
		if _, _, ok := n.Group.Destination(); ok {
			walkFontEntry(n.Group)
			continue
		}
		// Some writers emit font entries as sibling control words
		// directly inside \fonttbl rather than one sub-group per font.
		// When no sub-group yields a font, the outer group itself is read
		// as one single entry; several sibling entries written that way
		// are not split apart.
	}
	if len(fonts) == 0 {
		walkFontEntry(g)
	}
	return fonts
}

// collectGroupText concatenates every literal text run directly inside g,
// ignoring nested groups - used for small metadata destinations like
// \*\falt where no decoding is needed yet.
func collectGroupText(g *Group) string {
	var out []byte
	for _, n := range g.Nodes {
		if n.IsGroup() {
			continue
		}
		if n.Tok.Kind == LiteralString {
			out = append(out, n.Tok.Text...)
		}
	}
	return string(out)
}

// resolveCodepage returns the codepage to decode font fn's bytes with,
// falling back to docDefault (the \ansicpg value, or 1252 if that was
// also absent) when fn is unknown or specifies no codepage of its own.
func resolveCodepage(fonts map[int]*fontdef, fn int, docDefault int) int {
	if f, ok := fonts[fn]; ok && f.Codepage != 0 {
		return f.Codepage
	}
	return docDefault
}
