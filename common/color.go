package common

import (
	"strconv"
	"strings"
)

const (
	ansiReset  = 0
	ansiBold   = 1
	ansiGreen  = 32
	ansiYellow = 33
)

// clrs is a stack of active colors, popping restores the previous one.
type clrs []clr

func (c *clrs) Get(ansi ...int) clr {
	return clr{q: c, ansi: ansi}
}

func (c *clrs) Pop() clr {
	return clr{q: c, pop: true, ansi: []int{ansiReset}}
}

// Wrap surrounds s with the given color and a pop.
func (c *clrs) Wrap(s string, ansi ...int) string {
	return c.Get(ansi...).String() + s + c.Pop().String()
}

type clr struct {
	q    *clrs
	pop  bool
	ansi []int
}

func (c clr) str() string {
	if len(c.ansi) == 0 {
		return ""
	}
	s := make([]string, len(c.ansi))
	for i, v := range c.ansi {
		s[i] = strconv.Itoa(v)
	}
	return "\033[" + strings.Join(s, ";") + "m"
}

func (c clr) String() string {
	if len(c.ansi) == 0 {
		return ""
	}
	if c.pop {
		if len(*c.q) != 0 {
			*c.q = (*c.q)[:len(*c.q)-1]
			if len(*c.q) != 0 {
				return "\033[0m" + (*c.q)[len(*c.q)-1].str()
			}
		}
		return "\033[0m"
	}

	if c.q != nil {
		*c.q = append(*c.q, c)
	}
	return c.str()
}
