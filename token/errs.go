package token

import (
	"errors"
)

var (
	ErrBadUTF8           = errors.New("bad utf8")
	ErrUnterminated      = errors.New("unterminated")
	ErrNumberLeadingZero = errors.New("leading zero")
	ErrNumber            = errors.New("number")
	ErrBadEscape         = errors.New("bad escape")
	ErrBadUnicode        = errors.New("bad unicode")
	ErrLoneSurrogate     = errors.New("lone surrogate")
	ErrUnicodeControl    = errors.New("unicode control")
)
