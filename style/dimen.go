package style

import (
	"fmt"
	"regexp"
	"strconv"
)

const (
	dimenNone     uint8 = 0
	dimenAbsolute uint8 = 0x01
	dimenPercent  uint8 = 0x02
	dimenCenter   uint8 = 0x04
)

// DimenT is an option type for terminal dimensions. Dimensions are
// measured in character cells.
type DimenT struct {
	cells   int // absolute cells, or offset for percentages
	percent int
	flags   uint8
}

/*
type DimenT
	= None
	| JustDimen cells
	| Percentage percent offset
	| Center
*/

// JustDimen creates a dimension with a fixed value of n cells.
func JustDimen(n int) DimenT {
	return DimenT{cells: n, flags: dimenAbsolute}
}

// Percentage creates a dimension relative to the enclosing dimension,
// with an additional offset in cells, e.g. "50%-3".
func Percentage(p int, offset int) DimenT {
	return DimenT{percent: p, cells: offset, flags: dimenPercent}
}

// Center creates a dimension of value `center`, which is valid for
// position properties only.
func Center() DimenT {
	return DimenT{flags: dimenCenter}
}

// IsNone is true for the zero dimension, i.e. an unset value.
func (d DimenT) IsNone() bool {
	return d.flags == dimenNone
}

// Resolve calculates the absolute number of cells for d, given the number
// of cells of the enclosing element. Center resolves to 0; callers will have
// to position centered elements themselves.
func (d DimenT) Resolve(total int) int {
	var n, p, offset int
	switch m := d.Match(); m {
	case m.Just(&n):
		return n
	case m.Percentage(&p, &offset):
		return total*p/100 + offset
	}
	return 0
}

func (d DimenT) String() string {
	var n, p, offset int
	switch m := d.Match(); m {
	case m.Just(&n):
		return strconv.Itoa(n)
	case m.Percentage(&p, &offset):
		if offset == 0 {
			return fmt.Sprintf("%d%%", p)
		}
		return fmt.Sprintf("%d%%%+d", p, offset)
	case m.Center():
		return "center"
	}
	return "none"
}

// ---------------------------------------------------------------------------

var dimenPattern = regexp.MustCompile(`^([-+]?\d+)(%([-+]\d+)?)?$`)

// ParseDimen parses a dimension from a string, e.g., "12", "100%" or
// "50%-3". If allowCenter is set, "center" is accepted as well.
func ParseDimen(s string, allowCenter bool) (DimenT, bool) {
	if allowCenter && s == "center" {
		return Center(), true
	}
	m := dimenPattern.FindStringSubmatch(s)
	if m == nil {
		return DimenT{}, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return DimenT{}, false
	}
	if m[2] == "" {
		return JustDimen(n), true
	}
	offset := 0
	if m[3] != "" {
		if offset, err = strconv.Atoi(m[3]); err != nil {
			return DimenT{}, false
		}
	}
	return Percentage(n, offset), true
}

// --- Matching --------------------------------------------------------------

// Match returns a matcher for d, to be used in a switch statement:
//
//	var n int
//	switch m := d.Match(); m {
//	case m.Just(&n):
//	    …
//	}
func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

// Matcher is a helper type for matching dimensions.
type Matcher struct {
	dimen DimenT
}

// Just matches absolute dimensions and extracts the number of cells.
func (m *Matcher) Just(n *int) *Matcher {
	if m.dimen.flags&dimenAbsolute > 0 {
		if n != nil {
			*n = m.dimen.cells
		}
		return m
	}
	return nil
}

// Percentage matches relative dimensions and extracts percentage and offset.
func (m *Matcher) Percentage(p *int, offset *int) *Matcher {
	if m.dimen.flags&dimenPercent > 0 {
		if p != nil {
			*p = m.dimen.percent
		}
		if offset != nil {
			*offset = m.dimen.cells
		}
		return m
	}
	return nil
}

// Center matches dimensions of value `center`.
func (m *Matcher) Center() *Matcher {
	if m.dimen.flags&dimenCenter > 0 {
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

// DimenPatterns holds the results for the variants of a dimension.
type DimenPatterns[T any] struct {
	None    T
	Just    T
	Percent T
	Center  T
	Default T
}

// DimenPattern creates a match expression for d.
func DimenPattern[T any](d DimenT) *MatchExpr[T] {
	return &MatchExpr[T]{dimen: d}
}

// MatchExpr is a match expression for dimensions, producing values of type T.
type MatchExpr[T any] struct {
	dimen DimenT
}

// OneOf selects the pattern result matching the variant of the dimension.
func (m *MatchExpr[T]) OneOf(patterns DimenPatterns[T]) T {
	switch {
	case m.dimen.flags&dimenAbsolute > 0:
		return patterns.Just
	case m.dimen.flags&dimenPercent > 0:
		return patterns.Percent
	case m.dimen.flags&dimenCenter > 0:
		return patterns.Center
	case m.dimen.flags == dimenNone:
		return patterns.None
	}
	return patterns.Default
}
