package encode

import (
	"fmt"
	"strings"

	"github.com/signadot/mawu-format/mawu/format"
	"github.com/signadot/mawu-format/mawu/ir"
)

var (
	ErrNotJSONType   = fmt.Errorf("%w: type has no json form", ir.ErrWrite)
	ErrUnallowedType = fmt.Errorf("%w: unallowed type", ir.ErrWrite)
	ErrNonFinite     = fmt.Errorf("%w: NaN and Inf cannot be written", ir.ErrWrite)
	ErrUnknownColumn = fmt.Errorf("%w: record key not in header", ir.ErrWrite)
)

// WriteErr names the value that could not be written and, when one
// applies, the types that would have been accepted.
type WriteErr struct {
	Format format.Format
	Err    error
	Got    ir.Type
	Want   []ir.Type
	Detail string
}

func (e *WriteErr) Error() string {
	msg := fmt.Sprintf("%s %s: got %s", e.Format, e.Err, e.Got)
	if len(e.Want) != 0 {
		want := make([]string, len(e.Want))
		for i, t := range e.Want {
			want[i] = t.String()
		}
		msg += ", want " + strings.Join(want, " or ")
	}
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

func (e *WriteErr) Unwrap() error {
	return e.Err
}
