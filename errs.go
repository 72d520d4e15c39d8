package mawu

import (
	"errors"
	"fmt"

	"github.com/signadot/mawu-format/mawu/ir"
)

var (
	ErrPatch   = errors.New("patch error")
	ErrFilter  = errors.New("filter error")
	ErrNotUTF8 = errors.New("file is not valid utf-8")
)

// IOErr is a failure at the file boundary. It matches ir.ErrIO and the
// underlying cause under errors.Is.
type IOErr struct {
	Op   string
	Path string
	Err  error
}

func (e *IOErr) Error() string {
	return fmt.Sprintf("%s %s %q: %v", ir.ErrIO, e.Op, e.Path, e.Err)
}

func (e *IOErr) Unwrap() []error {
	return []error{ir.ErrIO, e.Err}
}
