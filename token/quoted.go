package token

import (
	"encoding/hex"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Quote returns v as a JSON string literal. Quote, backslash, solidus and
// the named control escapes are written in their short form; other control
// characters are written as \u00XX.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '/':
			d = append(d, '\\', '/')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if r < 0x20 || r == 0x7f {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

// QuoteCSV returns v as an RFC 4180 quoted field.
func QuoteCSV(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

func Unquote(v string) (string, error) {
	s, n, err := UnquotePrefix([]byte(v))
	if err != nil {
		return "", err
	}
	if n != len(v) {
		return "", ErrUnterminated
	}
	return s, nil
}

// UnquotePrefix decodes the JSON string literal at the start of d, which
// must begin with '"'. On success it returns the decoded text and the
// number of bytes consumed including both quotes. On failure the returned
// offset points at the offending input.
func UnquotePrefix(d []byte) (string, int, error) {
	if len(d) == 0 || d[0] != '"' {
		return "", 0, ErrUnterminated
	}
	var b strings.Builder
	i := 1
	n := len(d)
	for i < n {
		c := d[i]
		switch {
		case c == '"':
			return b.String(), i + 1, nil
		case c == '\\':
			sz, err := unescape(d[i:], &b)
			if err != nil {
				return "", i, err
			}
			i += sz
		case c < 0x20:
			return "", i, ErrUnicodeControl
		case c < utf8.RuneSelf:
			b.WriteByte(c)
			i++
		default:
			r, sz := utf8.DecodeRune(d[i:])
			if r == utf8.RuneError && sz <= 1 {
				return "", i, ErrBadUTF8
			}
			b.WriteRune(r)
			i += sz
		}
	}
	return "", n, ErrUnterminated
}

func unescape(d []byte, b *strings.Builder) (int, error) {
	if len(d) < 2 {
		return len(d), ErrUnterminated
	}
	switch d[1] {
	case '"', '\\', '/':
		b.WriteByte(d[1])
	case 'b':
		b.WriteByte('\b')
	case 'f':
		b.WriteByte('\f')
	case 'n':
		b.WriteByte('\n')
	case 'r':
		b.WriteByte('\r')
	case 't':
		b.WriteByte('\t')
	case 'u':
		r1, err := hex4(d[2:])
		if err != nil {
			return 0, err
		}
		if !utf16.IsSurrogate(r1) {
			b.WriteRune(r1)
			return 6, nil
		}
		if r1 >= 0xDC00 {
			return 0, ErrLoneSurrogate
		}
		if len(d) < 8 || d[6] != '\\' || d[7] != 'u' {
			return 0, ErrLoneSurrogate
		}
		r2, err := hex4(d[8:])
		if err != nil {
			return 0, err
		}
		r := utf16.DecodeRune(r1, r2)
		if r == utf8.RuneError {
			return 0, ErrLoneSurrogate
		}
		b.WriteRune(r)
		return 12, nil
	default:
		return 0, ErrBadEscape
	}
	return 2, nil
}

func hex4(d []byte) (rune, error) {
	if len(d) < 4 {
		if !allHex(d) {
			return 0, ErrBadUnicode
		}
		return 0, ErrUnterminated
	}
	if !allHex(d[:4]) {
		return 0, ErrBadUnicode
	}
	var r rune
	for _, c := range d[:4] {
		r <<= 4
		switch {
		case c >= '0' && c <= '9':
			r |= rune(c - '0')
		case c >= 'a' && c <= 'f':
			r |= rune(c-'a') + 10
		default:
			r |= rune(c-'A') + 10
		}
	}
	return r, nil
}

func allHex(d []byte) bool {
	for _, c := range d {
		if c >= '0' && c <= '9' {
			continue
		}
		if c >= 'a' && c <= 'f' {
			continue
		}
		if c >= 'A' && c <= 'F' {
			continue
		}
		return false
	}
	return true
}
