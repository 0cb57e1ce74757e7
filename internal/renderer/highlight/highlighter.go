package highlight

import "bytes"

const separators = ",.()+-/*=~%<>[];"

// IsSeparator reports whether c delimits keyword and number tokens.
func IsSeparator(c byte) bool {
	switch c {
	case 0, ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return bytes.IndexByte([]byte(separators), c) >= 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Highlight classifies render into hl, which must have the same length.
// inComment seeds the scan with the previous row's open-comment state; the
// return value is the open-comment state at the end of this row.
//
// A nil profile leaves every byte Normal and never opens a comment.
func Highlight(p *Profile, render []byte, hl []Class, inComment bool) bool {
	Fill(hl, Normal)
	if p == nil {
		return false
	}

	lc := []byte(p.LineComment)
	var bs, be []byte
	if p.hasBlockComments() {
		bs = []byte(p.BlockCommentStart)
		be = []byte(p.BlockCommentEnd)
	} else {
		inComment = false
	}

	n := len(render)
	prevSep := true
	var inString byte

	i := 0
	for i < n {
		c := render[i]
		prevClass := Normal
		if i > 0 {
			prevClass = hl[i-1]
		}

		if len(lc) > 0 && inString == 0 && !inComment && bytes.HasPrefix(render[i:], lc) {
			Fill(hl[i:], LineComment)
			break
		}

		if len(bs) > 0 && inString == 0 {
			if inComment {
				hl[i] = BlockComment
				if bytes.HasPrefix(render[i:], be) {
					Fill(hl[i:i+len(be)], BlockComment)
					i += len(be)
					inComment = false
					prevSep = true
					continue
				}
				i++
				continue
			}
			if bytes.HasPrefix(render[i:], bs) {
				Fill(hl[i:i+len(bs)], BlockComment)
				i += len(bs)
				inComment = true
				continue
			}
		}

		if p.Flags&HighlightStrings != 0 {
			if inString != 0 {
				hl[i] = String
				if c == '\\' && i+1 < n {
					hl[i+1] = String
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			}
			if c == '"' || c == '\'' {
				inString = c
				hl[i] = String
				i++
				continue
			}
		}

		if p.Flags&HighlightNumbers != 0 {
			if (isDigit(c) && (prevSep || prevClass == Number)) || (c == '.' && prevClass == Number) {
				hl[i] = Number
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			if kw, ok := p.matchKeyword(render[i:]); ok {
				Fill(hl[i:i+len(kw.text)], kw.class)
				i += len(kw.text)
				prevSep = false
				continue
			}
		}

		prevSep = IsSeparator(c)
		i++
	}

	return inComment
}

// matchKeyword returns the longest keyword at the start of rest that is
// followed by a separator or the end of the row.
func (p *Profile) matchKeyword(rest []byte) (keyword, bool) {
	for _, kw := range p.table {
		k := len(kw.text)
		if k > len(rest) || !bytes.Equal(rest[:k], kw.text) {
			continue
		}
		if k == len(rest) || IsSeparator(rest[k]) {
			return kw, true
		}
	}
	return keyword{}, false
}
