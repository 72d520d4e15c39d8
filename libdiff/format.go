package libdiff

import (
	"io"
	"strings"

	"github.com/fatih/color"
)

type formatOpts struct {
	colors  bool
	context int
}

type FormatOption func(*formatOpts)

// Colorize turns on red and green markers for removed and added lines.
func Colorize(v bool) FormatOption {
	return func(o *formatOpts) { o.colors = v }
}

// Context keeps n unchanged lines around each change and folds the rest
// into a single "..." line. A negative n keeps everything.
func Context(n int) FormatOption {
	return func(o *formatOpts) { o.context = n }
}

// Format writes lines in unified style: "+" for inserts, "-" for deletes
// and a space for unchanged lines.
func Format(w io.Writer, lines []Line, opts ...FormatOption) error {
	fOpts := &formatOpts{context: -1}
	for _, f := range opts {
		f(fOpts)
	}
	ins, del := plain, plain
	if fOpts.colors {
		g, r := color.New(color.FgGreen), color.New(color.FgRed)
		g.EnableColor()
		r.EnableColor()
		ins, del = g.SprintFunc(), r.SprintFunc()
	}
	keep := visible(lines, fOpts.context)
	elided := false
	for i, ln := range lines {
		if !keep[i] {
			if !elided {
				if _, err := io.WriteString(w, "  ...\n"); err != nil {
					return err
				}
			}
			elided = true
			continue
		}
		elided = false
		text := strings.TrimSuffix(ln.Text, "\n")
		var out string
		switch ln.Op {
		case Insert:
			out = ins("+ " + text)
		case Delete:
			out = del("- " + text)
		default:
			out = "  " + text
		}
		if _, err := io.WriteString(w, out+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func plain(a ...any) string {
	return a[0].(string)
}

func visible(lines []Line, context int) []bool {
	keep := make([]bool, len(lines))
	if context < 0 {
		for i := range keep {
			keep[i] = true
		}
		return keep
	}
	for i, ln := range lines {
		if ln.Op == Equal {
			continue
		}
		for j := max(0, i-context); j <= min(len(lines)-1, i+context); j++ {
			keep[j] = true
		}
	}
	return keep
}
