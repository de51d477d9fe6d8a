package selector

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/npillmayer/tcss/cssom"
)

// Parse parses a selector, e.g. "list > item:nth-child(2n+1).active".
// Selectors are case-insensitive.
//
// Syntax errors (unbalanced parentheses, malformed token streams, misplaced
// combinators, "*" used as id or class) are reported as cssom.Error of kind
// SelectorSyntaxError; malformed `an+b` arguments as ArgumentParseError.
func Parse(text string) (*Selector, error) {
	src := strings.ToLower(strings.TrimSpace(text))
	if src == "" {
		return nil, syntaxError(text, "empty selector")
	}
	output, args, err := extractArguments(src)
	if err != nil {
		return nil, withText(err, text)
	}
	components, err := parseComplex(output, args)
	if err != nil {
		return nil, withText(err, text)
	}
	sel := newSelector(src, components)
	tracer().Debugf("parsed selector %q with weight %s", src, sel.weight)
	return sel, nil
}

// MustParse is like Parse, but panics on errors. Intended for tests and
// static selectors.
func MustParse(text string) *Selector {
	sel, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return sel
}

func syntaxError(text string, msg string) *cssom.Error {
	return cssom.Errorf(cssom.SelectorSyntaxError, text, msg)
}

// extractArguments replaces top-level parenthesised pseudo-class arguments
// by positional placeholders "($0)", "($1)" …, in order to avoid
// ambiguities with combinator characters inside arguments (e.g. "2n+1").
func extractArguments(src string) (string, []string, error) {
	var out, arg strings.Builder
	var args []string
	depth := 0
	for _, r := range src {
		switch {
		case r == '(':
			depth++
			if depth == 1 {
				out.WriteRune(r)
				continue
			}
		case r == ')':
			depth--
			if depth < 0 {
				return "", nil, syntaxError(src, "unbalanced parentheses")
			}
			if depth == 0 {
				out.WriteString("$" + strconv.Itoa(len(args)) + ")")
				args = append(args, arg.String())
				arg.Reset()
				continue
			}
		}
		if depth == 0 {
			out.WriteRune(r)
		} else {
			arg.WriteRune(r)
		}
	}
	if depth != 0 {
		return "", nil, syntaxError(src, "unbalanced parentheses")
	}
	return out.String(), args, nil
}

// parseComplex splits a selector on combinators, e.g.
// 'a > b c' => ['a', '>', 'b', ' ', 'c'], and parses the simple selectors.
func parseComplex(src string, args []string) ([]Component, error) {
	var components []Component
	runes := []rune(src)
	i, start := 0, 0
	flush := func(end int) error {
		seg := string(runes[start:end])
		if seg == "" {
			return syntaxError(src, "combinator without selector")
		}
		simple, err := parseSimple(seg, args)
		if err != nil {
			return err
		}
		components = append(components, Component{Simple: simple})
		return nil
	}
	for i < len(runes) {
		r := runes[i]
		if !unicode.IsSpace(r) && !isCombinatorSymbol(r) {
			i++
			continue
		}
		if err := flush(i); err != nil {
			return nil, err
		}
		comb := Descendant
		for ; i < len(runes); i++ {
			if unicode.IsSpace(runes[i]) {
				continue
			}
			if !isCombinatorSymbol(runes[i]) {
				break
			}
			if comb != Descendant {
				return nil, syntaxError(src, "consecutive combinators")
			}
			comb = combinatorFor(runes[i])
		}
		if i >= len(runes) {
			return nil, syntaxError(src, "selector must not end with a combinator")
		}
		components = append(components, Component{Combinator: comb})
		start = i
	}
	if err := flush(len(runes)); err != nil {
		return nil, err
	}
	return components, nil
}

func isCombinatorSymbol(r rune) bool {
	return r == '>' || r == '+' || r == '~'
}

func combinatorFor(r rune) Combinator {
	switch r {
	case '>':
		return Child
	case '+':
		return AdjacentSibling
	case '~':
		return GeneralSibling
	}
	return Descendant
}

// parseSimple splits a simple selector into basic selectors, e.g.
// 'item.foo:nth-child($0)' => [ item, .foo, :nth-child($0) ].
func parseSimple(seg string, args []string) (Simple, error) {
	var simple Simple
	runes := []rune(seg)
	i := 0
	for i < len(runes) {
		b := Basic{Kind: TypeKind}
		switch runes[i] {
		case '#':
			b.Kind = IDKind
			i++
		case '.':
			b.Kind = ClassKind
			i++
		case ':':
			b.Kind = PseudoKind
			i++
		}
		start := i
		if i < len(runes) && runes[i] == '*' {
			i++
		} else {
			for i < len(runes) && isNameRune(runes[i]) {
				i++
			}
		}
		if i == start {
			return nil, syntaxError(seg, "cannot parse selector")
		}
		b.Value = string(runes[start:i])
		if b.Value == "*" && b.Kind != TypeKind {
			return nil, syntaxError(seg, `"*" is not a type selector`)
		}
		if i < len(runes) && runes[i] == '(' {
			end := i + 1
			for end < len(runes) && runes[end] != ')' {
				end++
			}
			if end >= len(runes) || runes[i+1] != '$' {
				return nil, syntaxError(seg, "cannot parse selector argument")
			}
			n, err := strconv.Atoi(string(runes[i+2 : end]))
			if err != nil || n < 0 || n >= len(args) {
				return nil, syntaxError(seg, "cannot parse selector argument")
			}
			if b.Kind != PseudoKind {
				return nil, syntaxError(seg, "arguments are allowed for pseudo-classes only")
			}
			b.Arg = strings.TrimSpace(args[n])
			i = end + 1
		}
		if b.Kind == PseudoKind && IsPositional(b.Value) {
			test, err := ParsePosition(b.Arg)
			if err != nil {
				return nil, err
			}
			b.Test = test
		}
		simple = append(simple, b)
	}
	return simple, nil
}

func isNameRune(r rune) bool {
	return r == '-' || r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// withText sets the offending text of a selector error to the complete
// selector.
func withText(err error, text string) error {
	if e, ok := err.(*cssom.Error); ok {
		e.Text = text
	}
	return err
}
