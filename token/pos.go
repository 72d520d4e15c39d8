package token

import (
	"fmt"
	"sort"
	"strconv"
)

type PosDoc struct {
	d       []byte
	n       []int
	scanned bool
}

func NewPosDoc(d []byte) *PosDoc {
	return &PosDoc{d: d}
}

func (p *PosDoc) scan() {
	if p.scanned {
		return
	}
	p.scanned = true
	for i, c := range p.d {
		if c == '\n' {
			p.n = append(p.n, i)
		}
	}
}

// LineCol returns the zero based line and column of the byte offset off.
func (p *PosDoc) LineCol(off int) (int, int) {
	p.scan()
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	switch di {
	case 0:
		return 0, off
	default:
		return di, off - p.n[di-1] - 1
	}
}

func (p *PosDoc) Pos(i int) *Pos {
	return &Pos{
		I: i,
		D: p,
	}
}

type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	sample := string(p.D.d[max(0, min(p.I, len(p.D.d))-5):min(p.I+5, len(p.D.d))])
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line(), p.Col())
}
