package selector

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/npillmayer/tcss/cssom"
)

// ArgTest is a predicate on the numeric fact of a positional pseudo-class,
// e.g. the 1-based index of a node for nth-child.
type ArgTest func(x int) bool

// positional lists the pseudo-classes taking an `an+b` argument.
var positional = map[string]bool{
	"nth-child":        true,
	"nth-last-child":   true,
	"nth-of-type":      true,
	"nth-last-of-type": true,
	"nth-in-list":      true,
	"nth-last-in-list": true,
}

// IsPositional returns wether a pseudo-class takes an `an+b` argument.
func IsPositional(pseudo string) bool {
	return positional[pseudo]
}

// [    a   ][ n ][   b    ]
var positionPattern = regexp.MustCompile(`^([-+]?\d*)(n?)([-+]\d+)?$`)

// ParsePosition parses a pseudo-class argument of the form `an+b`, `even`,
// `odd` or an integer into an index-membership predicate. Blanks are
// ignored.
func ParsePosition(argument string) (ArgTest, error) {
	arg := strings.ToLower(strings.Join(strings.Fields(argument), ""))
	switch arg {
	case "even":
		return nth(2, 0), nil
	case "odd":
		return nth(2, 1), nil
	}
	m := positionPattern.FindStringSubmatch(arg)
	if m == nil || (m[2] == "" && strings.Trim(m[1], "+-") == "") {
		return nil, cssom.Errorf(cssom.ArgumentParseError, argument, "cannot parse position argument")
	}
	var a, b int
	var err error
	switch m[1] {
	case "", "+":
		a = 1
	case "-":
		a = -1
	default:
		if a, err = strconv.Atoi(m[1]); err != nil {
			return nil, &cssom.Error{Kind: cssom.ArgumentParseError, Text: argument, Err: err}
		}
	}
	if m[3] != "" {
		if b, err = strconv.Atoi(m[3]); err != nil {
			return nil, &cssom.Error{Kind: cssom.ArgumentParseError, Text: argument, Err: err}
		}
	}
	if m[2] == "" { // plain integer
		index := a + b
		return func(x int) bool { return x == index }, nil
	}
	return nth(a, b), nil
}

// nth returns a predicate matching x = a*n + b for some n ≥ 0.
func nth(a, b int) ArgTest {
	if a == 0 {
		return func(x int) bool { return x == b }
	}
	return func(x int) bool {
		d := x - b
		return d%a == 0 && d/a >= 0
	}
}
