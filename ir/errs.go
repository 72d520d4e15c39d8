package ir

import (
	"errors"
	"fmt"
)

var (
	ErrInternal = errors.New("internal error")

	ErrParse      = errors.New("parse error")
	ErrStructural = fmt.Errorf("%w: structural", ErrParse)
	ErrLexical    = fmt.Errorf("%w: lexical", ErrParse)
	ErrNumeric    = fmt.Errorf("%w: numeric", ErrParse)
	ErrNonFinite  = fmt.Errorf("%w: NaN and Infinity are not numbers", ErrNumeric)

	ErrWrite = errors.New("write error")
	ErrIO    = errors.New("i/o error")

	ErrType    = errors.New("wrong value type")
	ErrConvert = errors.New("conversion error")
	ErrIndex   = errors.New("index out of range")
	ErrPath    = errors.New("bad path")
)
