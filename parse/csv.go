package parse

import (
	"strings"
	"unicode/utf8"

	"github.com/signadot/mawu-format/mawu/format"
	"github.com/signadot/mawu-format/mawu/ir"
	"github.com/signadot/mawu-format/mawu/token"
)

type csvField struct {
	text   string
	quoted bool
	off    int
}

type csvParser struct {
	c *token.Cursor
}

func parseCSV(d []byte, opts *parseOpts) (*ir.Value, error) {
	p := &csvParser{c: token.NewCursor(d)}
	if opts.headed {
		return p.headed()
	}
	return p.headless()
}

func (p *csvParser) err(off int, err, cause error) error {
	return newErr(format.CSVFormat, p.c, off, err, cause)
}

func (p *csvParser) headed() (*ir.Value, error) {
	res := ir.NewRecords()
	hdr, err := p.record()
	if err != nil {
		return nil, err
	}
	if hdr == nil {
		return res, nil
	}
	keys := make([]string, len(hdr))
	for i := range hdr {
		keys[i] = hdr[i].text
	}
	for {
		fields, err := p.record()
		if err != nil {
			return nil, err
		}
		if fields == nil {
			return res, nil
		}
		if len(fields) > len(keys) {
			return nil, p.err(fields[len(keys)].off, ErrExtraValue, nil)
		}
		rec := make(map[string]*ir.Value, len(keys))
		for i, k := range keys {
			if i >= len(fields) {
				rec[k] = ir.Null()
				continue
			}
			v, err := p.cell(&fields[i])
			if err != nil {
				return nil, err
			}
			rec[k] = v
		}
		res.Records = append(res.Records, rec)
	}
}

func (p *csvParser) headless() (*ir.Value, error) {
	res := ir.NewRows()
	width := -1
	for {
		fields, err := p.record()
		if err != nil {
			return nil, err
		}
		if fields == nil {
			return res, nil
		}
		if width == -1 {
			width = len(fields)
		}
		row := make([]*ir.Value, max(width, len(fields)))
		for i := range row {
			if i >= len(fields) {
				row[i] = ir.Null()
				continue
			}
			v, err := p.cell(&fields[i])
			if err != nil {
				return nil, err
			}
			row[i] = v
		}
		res.Rows = append(res.Rows, row)
	}
}

// cell converts field text with the shared scalar policy. A quoted empty
// field is empty Text rather than Null.
func (p *csvParser) cell(f *csvField) (*ir.Value, error) {
	if f.quoted && f.text == "" {
		return ir.FromString(""), nil
	}
	v, err := ir.FromText(f.text)
	if err != nil {
		return nil, p.err(f.off, ErrInvalidNumber, err)
	}
	return v, nil
}

// record reads the next logical record. It returns nil at end of input, so
// only the final separator is absorbed. A blank line is one empty field.
func (p *csvParser) record() ([]csvField, error) {
	if p.c.EOF() {
		return nil, nil
	}
	var fields []csvField
	for {
		f, err := p.field()
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
		if p.c.EOF() {
			return fields, nil
		}
		if n := p.c.RecordSep(); n != 0 {
			p.c.Advance(n)
			return fields, nil
		}
		// field stops only at a comma, a separator or the end
		p.c.Next()
	}
}

func (p *csvParser) field() (csvField, error) {
	off := p.c.Offset()
	if b, _ := p.c.Peek(); b == '"' {
		return p.quoted(off)
	}
	for {
		b, ok := p.c.Peek()
		if !ok || b == ',' || b == '\n' || b == '\r' {
			break
		}
		if b == '"' {
			return csvField{}, p.err(p.c.Offset(), ErrUnescapedQuote, nil)
		}
		p.c.Next()
	}
	text := p.c.Slice(off, p.c.Offset())
	if !utf8.Valid(text) {
		return csvField{}, p.err(off, ErrInvalidUTF8, token.ErrBadUTF8)
	}
	return csvField{text: string(text), off: off}, nil
}

func (p *csvParser) quoted(off int) (csvField, error) {
	p.c.Next()
	b := &strings.Builder{}
	for {
		ch, ok := p.c.Next()
		if !ok {
			return csvField{}, p.err(off, ErrUnterminatedQuote, nil)
		}
		if ch != '"' {
			b.WriteByte(ch)
			continue
		}
		if next, _ := p.c.Peek(); next == '"' {
			p.c.Next()
			b.WriteByte('"')
			continue
		}
		break
	}
	if next, ok := p.c.Peek(); ok && next != ',' && next != '\n' && next != '\r' {
		return csvField{}, p.err(p.c.Offset(), ErrCharAfterQuote, nil)
	}
	text := b.String()
	if !utf8.ValidString(text) {
		return csvField{}, p.err(off, ErrInvalidUTF8, token.ErrBadUTF8)
	}
	return csvField{text: text, quoted: true, off: off}, nil
}
