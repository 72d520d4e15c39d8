package libdiff

import (
	"errors"
	"fmt"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

var ErrMismatch = errors.New("diff does not apply")

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) String() string {
	switch o {
	case Equal:
		return "equal"
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

// Line is one line of a diff. Text keeps its trailing newline, if any.
type Line struct {
	Op   Op
	Text string
}

// Lines diffs from and to line by line.
func Lines(from, to string) []Line {
	dmp := diffpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)
	var res []Line
	for _, d := range diffs {
		op := Equal
		switch d.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		}
		for _, ln := range strings.SplitAfter(d.Text, "\n") {
			if ln == "" {
				continue
			}
			res = append(res, Line{Op: op, Text: ln})
		}
	}
	return res
}

// Changed reports whether lines holds any insert or delete.
func Changed(lines []Line) bool {
	for i := range lines {
		if lines[i].Op != Equal {
			return true
		}
	}
	return false
}

// Reverse returns the diff that undoes lines.
func Reverse(lines []Line) []Line {
	res := make([]Line, len(lines))
	for i, ln := range lines {
		switch ln.Op {
		case Insert:
			ln.Op = Delete
		case Delete:
			ln.Op = Insert
		}
		res[i] = ln
	}
	return res
}

// Apply rebuilds the target text of lines from from. It fails with
// ErrMismatch when from does not hold the equal and deleted lines in order.
func Apply(from string, lines []Line) (string, error) {
	b := &strings.Builder{}
	rest := from
	for i, ln := range lines {
		switch ln.Op {
		case Equal, Delete:
			if !strings.HasPrefix(rest, ln.Text) {
				return "", fmt.Errorf("%w: line %d %q", ErrMismatch, i, ln.Text)
			}
			rest = rest[len(ln.Text):]
			if ln.Op == Equal {
				b.WriteString(ln.Text)
			}
		case Insert:
			b.WriteString(ln.Text)
		}
	}
	if rest != "" {
		return "", fmt.Errorf("%w: %d bytes left over", ErrMismatch, len(rest))
	}
	return b.String(), nil
}
