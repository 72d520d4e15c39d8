package ir

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Path is a parsed query such as $.users[0].name or $[*].id. On CSV
// documents an index selects a row (as an Array) or a record (as an
// Object).
type Path struct {
	IndexAll bool
	Index    *int
	Field    *string
	Subtree  bool
	Next     *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	x := p
	afterSubtree := false
	for x != nil {
		if x.Subtree {
			buf.WriteString("..")
			afterSubtree = true
			x = x.Next
			continue
		}
		if x.IndexAll {
			buf.WriteString("[*]")
			afterSubtree = false
			x = x.Next
			continue
		}
		if x.Field != nil {
			if !afterSubtree {
				buf.WriteByte('.')
			}
			buf.WriteString(pathString(*x.Field))
			afterSubtree = false
			x = x.Next
			continue
		}
		afterSubtree = false
		if x.Index != nil {
			fmt.Fprintf(buf, "[%d]", *x.Index)
			x = x.Next
			continue
		}
		x = x.Next
	}
	return buf.String()
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("%w: path %q should start with '$'", ErrPath, p)
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	if err := parseFrag(p[1:], root); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrPath, p, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 {
		return nil
	}
	switch frag[0] {
	case '.':
		if len(frag) > 1 && frag[1] == '.' {
			parent.Subtree = true
			rest := frag[2:]
			if rest != "" && rest[0] != '.' && rest[0] != '[' {
				rest = "." + rest
			}
			next := &Path{}
			if err := parseFrag(rest, next); err != nil {
				return err
			}
			parent.Next = next
			return nil
		}
		field, rest, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		if len(rest) == 0 {
			return nil
		}
		next := &Path{}
		if err := parseFrag(rest, next); err != nil {
			return err
		}
		parent.Next = next
		return nil
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, all, err := parseIndex(frag[1 : i+1])
		if err != nil {
			return err
		}
		parent.IndexAll = all
		if !all {
			parent.Index = &index
		}
		if len(frag) == i+2 {
			return nil
		}
		next := &Path{}
		if err := parseFrag(frag[i+2:], next); err != nil {
			return err
		}
		parent.Next = next
		return nil
	default:
		return fmt.Errorf("expected '.' or '['")
	}
}

func parseIndex(is string) (index int, all bool, err error) {
	if len(is) == 1 && is[0] == '*' {
		return 0, true, nil
	}
	u64, err := strconv.ParseUint(is, 10, 31)
	if err != nil {
		return 0, false, err
	}
	return int(u64), false, nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch c {
		case '\\':
			if escaped {
				res = append(res, c)
			}
			escaped = !escaped
		case '\'':
			if !escaped {
				return string(res), frag[i+1:], nil
			}
			fallthrough
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

func pathString(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[]\\") == -1 {
		return f
	}
	f = strings.ReplaceAll(f, "\\", "\\\\")
	return "'" + strings.ReplaceAll(f, "'", "\\'") + "'"
}

// elements returns the indexable children of v, wrapping CSV rows and
// records as Arrays and Objects that share storage with v.
func (v *Value) elements() []*Value {
	switch v.Type {
	case ArrayType:
		return v.Values
	case CSVRowsType:
		res := make([]*Value, len(v.Rows))
		for i, row := range v.Rows {
			res[i] = &Value{Type: ArrayType, Values: row}
		}
		return res
	case CSVRecordsType:
		res := make([]*Value, len(v.Records))
		for i, rec := range v.Records {
			res[i] = &Value{Type: ObjectType, Fields: rec}
		}
		return res
	}
	return nil
}

func (v *Value) indexable() bool {
	switch v.Type {
	case ArrayType, CSVRowsType, CSVRecordsType:
		return true
	}
	return false
}

// GetPath returns a copy of the value at a single-valued path, or nil if an
// object field along the way is missing.
func (v *Value) GetPath(p string) (*Value, error) {
	vp, err := ParsePath(p)
	if err != nil {
		return nil, err
	}
	res := v
	for vp != nil {
		if vp.IndexAll {
			return nil, fmt.Errorf("%w: any index in get", ErrPath)
		}
		if vp.Subtree {
			return nil, fmt.Errorf("%w: recurse .. in get", ErrPath)
		}
		if vp.Index != nil {
			if !res.indexable() {
				return nil, fmt.Errorf("%w: expected array, got %s", ErrType, res.Type)
			}
			elts := res.elements()
			index := *vp.Index
			if index >= len(elts) {
				return nil, fmt.Errorf("%w: %d (len %d)", ErrIndex, index, len(elts))
			}
			res = elts[index]
			vp = vp.Next
			continue
		}
		if vp.Field != nil {
			if res.Type != ObjectType {
				return nil, fmt.Errorf("%w: expected object got %s", ErrType, res.Type)
			}
			x, ok := res.Fields[*vp.Field]
			if !ok {
				return nil, nil
			}
			res = x
			vp = vp.Next
			continue
		}
		vp = vp.Next
	}
	return res.Clone(), nil
}

// ListPath appends copies of every value matching p to dst. Mismatched
// types and missing fields contribute nothing.
func (v *Value) ListPath(dst []*Value, p string) ([]*Value, error) {
	vp, err := ParsePath(p)
	if err != nil {
		return nil, err
	}
	return v.listPath(dst, vp), nil
}

func (v *Value) listPath(dst []*Value, vp *Path) []*Value {
	if vp == nil {
		return append(dst, v.Clone())
	}
	if vp.Subtree {
		v.visit(func(x *Value) {
			dst = x.listPath(dst, vp.Next)
		})
		return dst
	}
	switch {
	case vp.Field != nil:
		if v.Type != ObjectType {
			return dst
		}
		if x, ok := v.Fields[*vp.Field]; ok {
			dst = x.listPath(dst, vp.Next)
		}
		return dst
	case vp.Index != nil:
		if !v.indexable() {
			return dst
		}
		elts := v.elements()
		if *vp.Index < len(elts) {
			dst = elts[*vp.Index].listPath(dst, vp.Next)
		}
		return dst
	case vp.IndexAll:
		if !v.indexable() {
			return dst
		}
		for _, x := range v.elements() {
			dst = x.listPath(dst, vp.Next)
		}
		return dst
	}
	return v.listPath(dst, vp.Next)
}

// visit calls f on v and every container below it, parents first. Object
// members are visited in key order.
func (v *Value) visit(f func(*Value)) {
	if v.Type.IsLeaf() {
		return
	}
	f(v)
	if v.Type == ObjectType {
		for _, k := range slices.Sorted(maps.Keys(v.Fields)) {
			v.Fields[k].visit(f)
		}
		return
	}
	for _, x := range v.elements() {
		x.visit(f)
	}
}
