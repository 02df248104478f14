package common

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/frizinak/goconj/conj"
	"github.com/frizinak/goconj/jehle"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Headers are the table's column titles.
var Headers = func() []string {
	h := make([]string, 1, 7)
	h[0] = "tense"
	for _, n := range []jehle.Number{jehle.Singular, jehle.Plural} {
		for _, p := range []jehle.Person{jehle.First, jehle.Second, jehle.Third} {
			h = append(h, jehle.Pronoun(p, n))
		}
	}
	return h
}()

type RenderOptions struct {
	// Color highlights headers and tenses with ANSI escapes.
	Color bool
}

// Width returns the amount of terminal cells s occupies.
func Width(s string) int {
	n := 0
	for _, r := range norm.NFC.String(s) {
		if unicode.In(r, unicode.Mn, unicode.Me, unicode.Cf) {
			continue
		}
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

func cells(rows []conj.Row) [][]string {
	c := make([][]string, 0, len(rows)+1)
	c = append(c, Headers)
	for _, r := range rows {
		line := make([]string, 1, len(Headers))
		line[0] = r.Tense
		line = append(line, r.Slice()...)
		c = append(c, line)
	}
	return c
}

func widths(c [][]string) []int {
	w := make([]int, len(Headers))
	for _, line := range c {
		for i, cell := range line {
			if n := Width(cell); n > w[i] {
				w[i] = n
			}
		}
	}
	return w
}

func rule(w []int) string {
	s := make([]string, len(w))
	for i, n := range w {
		s[i] = strings.Repeat("-", n+2)
	}
	return "+" + strings.Join(s, "+") + "+\n"
}

// Render writes rows as an aligned table. Rows are written in the given
// order and cells verbatim.
func Render(w io.Writer, rows []conj.Row, opts RenderOptions) error {
	c := cells(rows)
	wd := widths(c)
	sep := rule(wd)
	_clrs := make(clrs, 0)
	clrs := &_clrs

	buf := bufio.NewWriter(w)
	line := func(l []string, header bool) {
		buf.WriteString("|")
		for i, cell := range l {
			padded := cell + strings.Repeat(" ", wd[i]-Width(cell))
			if opts.Color {
				switch {
				case header:
					padded = clrs.Wrap(padded, ansiBold, ansiGreen)
				case i == 0:
					padded = clrs.Wrap(padded, ansiYellow)
				}
			}
			buf.WriteString(" ")
			buf.WriteString(padded)
			buf.WriteString(" |")
		}
		buf.WriteString("\n")
	}

	buf.WriteString(sep)
	line(c[0], true)
	buf.WriteString(sep)
	for _, l := range c[1:] {
		line(l, false)
	}
	if len(c) > 1 {
		buf.WriteString(sep)
	}

	return buf.Flush()
}

func RenderString(rows []conj.Row, opts RenderOptions) string {
	b := &strings.Builder{}
	Render(b, rows, opts)
	return b.String()
}
