package token

import "strings"

// Number scans a JSON number at the start of d and returns its length and
// whether it has a fraction or exponent. The caller decides whether the byte
// after the number is an acceptable terminator.
func Number(d []byte) (int, bool, error) {
	i := 0
	if len(d) > 0 && d[0] == '-' {
		i++
	}
	digits := asciiDigits(d[i:])
	if digits == 0 {
		return i, false, ErrNumber
	}
	if digits > 1 && d[i] == '0' {
		return i + digits, false, ErrNumberLeadingZero
	}
	i += digits
	f := fract(d[i:])
	e := exp(d[i+f:])
	return i + f + e, f+e != 0, nil
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	default:
	}
	if i == len(d) {
		return 0
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}

func fract(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	if d[0] != '.' {
		return 0
	}
	// . must be followed by 1 or more digits rfc 8259
	n := asciiDigits(d[1:])
	if n == 0 {
		return 0
	}
	return n + 1
}

// IsDecimal reports whether s is a decimal number: an optional sign, digits
// with an optional fraction (either side of the point may be empty but not
// both) and an optional exponent. Hex, underscores and non-finite spellings
// are not decimal.
func IsDecimal(s string) bool {
	d := []byte(s)
	i := 0
	if len(d) > 0 && (d[0] == '-' || d[0] == '+') {
		i++
	}
	whole := asciiDigits(d[i:])
	i += whole
	frac := 0
	if i < len(d) && d[i] == '.' {
		i++
		frac = asciiDigits(d[i:])
		i += frac
	}
	if whole+frac == 0 {
		return false
	}
	if i == len(d) {
		return true
	}
	return exp(d[i:]) == len(d)-i
}

// IsNonFinite reports whether s spells NaN or an infinity, in any case and
// with an optional sign.
func IsNonFinite(s string) bool {
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		s = s[1:]
	}
	switch strings.ToLower(s) {
	case "nan", "inf", "infinity":
		return true
	}
	return false
}
