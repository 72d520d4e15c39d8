package ir

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/mawu-format/mawu/token"
)

// FromText converts free text into a scalar Value.
//
// Empty text is Null and the exact spellings "true" and "false" are Bool.
// Decimal text goes through [FromNumber]. NaN and Infinity spellings, in
// any case, are rejected with ErrNonFinite. Everything else is Text.
func FromText(s string) (*Value, error) {
	switch s {
	case "":
		return Null(), nil
	case "true":
		return FromBool(true), nil
	case "false":
		return FromBool(false), nil
	}
	if token.IsNonFinite(s) {
		return nil, fmt.Errorf("%w: %q", ErrNonFinite, s)
	}
	if !token.IsDecimal(s) {
		return FromString(s), nil
	}
	return FromNumber(s)
}

// FromNumber selects the numeric variant for decimal text: unsigned if it
// fits, else signed if it fits, else float. A float that overflows is Null
// and one that underflows is a zero carrying the literal's sign.
func FromNumber(s string) (*Value, error) {
	if token.IsNonFinite(s) {
		return nil, fmt.Errorf("%w: %q", ErrNonFinite, s)
	}
	if u, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 64); err == nil {
		return FromUint(u), nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return FromInt(i), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, fmt.Errorf("%w: %q", ErrNumeric, s)
	}
	if math.IsInf(f, 0) {
		return Null(), nil
	}
	if f == 0 && strings.HasPrefix(s, "-") {
		f = math.Copysign(0, -1)
	}
	return FromFloat(f), nil
}
