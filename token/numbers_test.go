package token

import (
	"errors"
	"testing"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		in    string
		n     int
		float bool
		err   error
	}{
		{in: "0", n: 1},
		{in: "123,", n: 3},
		{in: "-7]", n: 2},
		{in: "1.5", n: 3, float: true},
		{in: "1.5e10}", n: 6, float: true},
		{in: "2E-3", n: 4, float: true},
		{in: "1e+2 ", n: 4, float: true},
		{in: "-0.0", n: 4, float: true},
		{in: "1.", n: 1},
		{in: "1e", n: 1},
		{in: "01", n: 2, err: ErrNumberLeadingZero},
		{in: "-", n: 1, err: ErrNumber},
		{in: "-a", n: 1, err: ErrNumber},
		{in: ".5", n: 0, err: ErrNumber},
	}
	for _, tt := range tests {
		n, float, err := Number([]byte(tt.in))
		if !errors.Is(err, tt.err) {
			t.Errorf("Number(%q) err %v, want %v", tt.in, err, tt.err)
			continue
		}
		if n != tt.n || float != tt.float {
			t.Errorf("Number(%q) = %d, %t; want %d, %t", tt.in, n, float, tt.n, tt.float)
		}
	}
}

func TestIsDecimal(t *testing.T) {
	yes := []string{"0", "007", "+5", "-5", "1.5", ".5", "5.", "1e5", "-1.5E-3", "1e+400"}
	no := []string{"", "+", "-", ".", "e5", "1e", "0x10", "1_000", "inf", "NaN", "1.5.5", "12a", " 1"}
	for _, s := range yes {
		if !IsDecimal(s) {
			t.Errorf("IsDecimal(%q) = false", s)
		}
	}
	for _, s := range no {
		if IsDecimal(s) {
			t.Errorf("IsDecimal(%q) = true", s)
		}
	}
}

func TestIsNonFinite(t *testing.T) {
	for _, s := range []string{"NaN", "nan", "-Infinity", "+inf", "INF", "infinity"} {
		if !IsNonFinite(s) {
			t.Errorf("IsNonFinite(%q) = false", s)
		}
	}
	for _, s := range []string{"", "na", "infinite", "1e999", "Info"} {
		if IsNonFinite(s) {
			t.Errorf("IsNonFinite(%q) = true", s)
		}
	}
}
