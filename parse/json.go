package parse

import (
	"errors"
	"strings"

	"github.com/signadot/mawu-format/mawu/format"
	"github.com/signadot/mawu-format/mawu/ir"
	"github.com/signadot/mawu-format/mawu/token"
)

type jsonParser struct {
	c        *token.Cursor
	maxDepth int
	depth    int
}

func parseJSON(d []byte, opts *parseOpts) (*ir.Value, error) {
	if len(d) == 0 {
		return ir.Null(), nil
	}
	p := &jsonParser{c: token.NewCursor(d), maxDepth: opts.maxDepth}
	v, err := p.value()
	if err != nil {
		return nil, err
	}
	p.c.SkipSpace()
	if !p.c.EOF() {
		return nil, p.err(p.c.Offset(), ErrTrailingData, nil)
	}
	return v, nil
}

func (p *jsonParser) err(off int, err, cause error) error {
	return newErr(format.JSONFormat, p.c, off, err, cause)
}

func (p *jsonParser) value() (*ir.Value, error) {
	p.c.SkipSpace()
	off := p.c.Offset()
	b, ok := p.c.Peek()
	if !ok {
		return nil, p.err(off, ErrUnexpectedEOF, nil)
	}
	switch b {
	case '{':
		return p.object()
	case '[':
		return p.array()
	case '"':
		s, err := p.str()
		if err != nil {
			return nil, err
		}
		return ir.FromString(s), nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return p.number()
	case 't':
		return p.literal("true", ir.FromBool(true))
	case 'f':
		return p.literal("false", ir.FromBool(false))
	case 'n':
		if p.nonFinite(0) {
			return nil, p.err(off, ir.ErrNonFinite, nil)
		}
		return p.literal("null", ir.Null())
	case 'N', 'I', 'i':
		if p.nonFinite(0) {
			return nil, p.err(off, ir.ErrNonFinite, nil)
		}
		return nil, p.err(off, ErrExpectedValue, nil)
	case '}', ']', ',', ':':
		return nil, p.err(off, ErrInvalidStructuralToken, nil)
	}
	if b < 0x20 || b >= 0x7f {
		if _, _, err := p.c.PeekRune(); err != nil {
			return nil, p.err(off, ErrInvalidUTF8, err)
		}
		return nil, p.err(off, ErrInvalidCharacter, nil)
	}
	return nil, p.err(off, ErrExpectedValue, nil)
}

// nonFinite reports whether the input skip bytes past the cursor spells
// the start of NaN or Infinity.
func (p *jsonParser) nonFinite(skip int) bool {
	rest := p.c.Rest()[skip:]
	if len(rest) < 3 {
		return false
	}
	head := strings.ToLower(string(rest[:3]))
	return head == "nan" || head == "inf"
}

func (p *jsonParser) literal(lit string, v *ir.Value) (*ir.Value, error) {
	if p.c.HasPrefix(lit) {
		p.c.Advance(len(lit))
		return v, nil
	}
	off := p.c.Offset()
	rest := p.c.Rest()
	n := 0
	for n < len(rest) && n < len(lit) && rest[n] == lit[n] {
		n++
	}
	if n == len(rest) {
		return nil, p.err(off, ErrUnexpectedEOF, nil)
	}
	return nil, p.err(off+n, ErrUnexpectedCharacter, nil)
}

func (p *jsonParser) number() (*ir.Value, error) {
	off := p.c.Offset()
	if b, _ := p.c.Peek(); b == '-' && p.nonFinite(1) {
		return nil, p.err(off, ir.ErrNonFinite, nil)
	}
	n, _, err := token.Number(p.c.Rest())
	if err != nil {
		return nil, p.err(off, ErrInvalidNumber, err)
	}
	p.c.Advance(n)
	if b, ok := p.c.Peek(); ok && !terminator(b) {
		return nil, p.err(p.c.Offset(), ErrInvalidNumber, nil)
	}
	v, err := ir.FromNumber(string(p.c.Slice(off, off+n)))
	if err != nil {
		return nil, p.err(off, ErrInvalidNumber, err)
	}
	return v, nil
}

func terminator(b byte) bool {
	switch b {
	case ',', ':', '}', ']', ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

func (p *jsonParser) str() (string, error) {
	off := p.c.Offset()
	s, n, err := token.UnquotePrefix(p.c.Rest())
	if err == nil {
		p.c.Advance(n)
		return s, nil
	}
	switch {
	case errors.Is(err, token.ErrUnterminated):
		return "", p.err(off, ErrUnexpectedEOF, err)
	case errors.Is(err, token.ErrUnicodeControl):
		return "", p.err(off+n, ErrInvalidCharacter, err)
	case errors.Is(err, token.ErrBadUTF8):
		return "", p.err(off+n, ErrInvalidUTF8, err)
	default:
		return "", p.err(off+n, ErrInvalidEscape, err)
	}
}

func (p *jsonParser) enter() error {
	p.depth++
	if p.maxDepth > 0 && p.depth > p.maxDepth {
		return p.err(p.c.Offset(), ErrMaxDepth, nil)
	}
	return nil
}

func (p *jsonParser) object() (*ir.Value, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()
	p.c.Next()
	obj := ir.NewObject()
	p.c.SkipSpace()
	if b, ok := p.c.Peek(); ok && b == '}' {
		p.c.Next()
		return obj, nil
	}
	for {
		p.c.SkipSpace()
		b, ok := p.c.Peek()
		if !ok {
			return nil, p.err(p.c.Offset(), ErrExpectedEndOfObject, nil)
		}
		if b != '"' {
			return nil, p.err(p.c.Offset(), ErrExpectedKey, nil)
		}
		key, err := p.str()
		if err != nil {
			return nil, err
		}
		p.c.SkipSpace()
		b, ok = p.c.Peek()
		if !ok {
			return nil, p.err(p.c.Offset(), ErrExpectedEndOfObject, nil)
		}
		if b != ':' {
			return nil, p.err(p.c.Offset(), ErrExpectedColon, nil)
		}
		p.c.Next()
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		obj.Fields[key] = v
		p.c.SkipSpace()
		off := p.c.Offset()
		b, ok = p.c.Next()
		switch {
		case !ok:
			return nil, p.err(off, ErrExpectedEndOfObject, nil)
		case b == '}':
			return obj, nil
		case b != ',':
			return nil, p.err(off, ErrExpectedEndOfObject, nil)
		}
	}
}

func (p *jsonParser) array() (*ir.Value, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()
	p.c.Next()
	arr := ir.NewArray()
	p.c.SkipSpace()
	if b, ok := p.c.Peek(); ok && b == ']' {
		p.c.Next()
		return arr, nil
	}
	for {
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		arr.Values = append(arr.Values, v)
		p.c.SkipSpace()
		off := p.c.Offset()
		b, ok := p.c.Next()
		switch {
		case !ok:
			return nil, p.err(off, ErrUnexpectedEOF, nil)
		case b == ']':
			return arr, nil
		case b != ',':
			return nil, p.err(off, ErrExpectedEndOfArray, nil)
		}
	}
}
