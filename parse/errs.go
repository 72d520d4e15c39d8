package parse

import (
	"fmt"

	"github.com/signadot/mawu-format/mawu/format"
	"github.com/signadot/mawu-format/mawu/ir"
	"github.com/signadot/mawu-format/mawu/token"
)

var (
	ErrUnexpectedEOF          = fmt.Errorf("%w: unexpected end of file", ir.ErrStructural)
	ErrInvalidStructuralToken = fmt.Errorf("%w: invalid structural token", ir.ErrStructural)
	ErrExpectedColon          = fmt.Errorf("%w: expected ':'", ir.ErrStructural)
	ErrExpectedKey            = fmt.Errorf("%w: expected object key", ir.ErrStructural)
	ErrExpectedValue          = fmt.Errorf("%w: expected value", ir.ErrStructural)
	ErrExpectedEndOfObject    = fmt.Errorf("%w: expected end of object", ir.ErrStructural)
	ErrExpectedEndOfArray     = fmt.Errorf("%w: expected ',' or ']'", ir.ErrStructural)
	ErrTrailingData           = fmt.Errorf("%w: trailing data after value", ir.ErrStructural)
	ErrMaxDepth               = fmt.Errorf("%w: nesting too deep", ir.ErrStructural)

	ErrInvalidCharacter    = fmt.Errorf("%w: invalid character", ir.ErrLexical)
	ErrUnexpectedCharacter = fmt.Errorf("%w: unexpected character", ir.ErrLexical)
	ErrInvalidEscape       = fmt.Errorf("%w: invalid escape", ir.ErrLexical)
	ErrInvalidUTF8         = fmt.Errorf("%w: invalid utf-8", ir.ErrLexical)

	ErrInvalidNumber = fmt.Errorf("%w: invalid number", ir.ErrNumeric)

	ErrUnescapedQuote    = fmt.Errorf("%w: unescaped '\"' in unquoted field", ir.ErrLexical)
	ErrUnterminatedQuote = fmt.Errorf("%w: unterminated quoted field", ir.ErrLexical)
	ErrCharAfterQuote    = fmt.Errorf("%w: character after closing quote", ir.ErrLexical)
	ErrExtraValue        = fmt.Errorf("%w: more fields than header", ir.ErrStructural)

	ErrSyntax = fmt.Errorf("%w: syntax", ir.ErrStructural)
)

// ParseErr describes a failed parse. Err is one of the sentinels above and
// Cause, when set, is the lower level error that triggered it.
type ParseErr struct {
	Format   format.Format
	Err      error
	Cause    error
	Fragment string
	Pos      *token.Pos
}

func (e *ParseErr) Error() string {
	msg := fmt.Sprintf("%s %s", e.Format, e.Err)
	if e.Cause != nil {
		msg += " (" + e.Cause.Error() + ")"
	}
	if e.Fragment != "" {
		msg += fmt.Sprintf(" near %q", e.Fragment)
	}
	if e.Pos != nil {
		msg += " " + e.Pos.String()
	}
	return msg
}

func (e *ParseErr) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

const fragmentLen = 16

func newErr(f format.Format, c *token.Cursor, off int, err, cause error) *ParseErr {
	return &ParseErr{
		Format:   f,
		Err:      err,
		Cause:    cause,
		Fragment: c.Fragment(off, fragmentLen),
		Pos:      c.PosAt(off),
	}
}
