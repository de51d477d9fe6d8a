/*
Package selector implements parsing and matching of selectors.

# Grammar

Selectors are sequences of simple selectors, separated by combinators:

	selector   := simple { combinator simple }
	combinator := " " | ">" | "+" | "~"
	simple     := basic { basic }
	basic      := type | "*" | "#" id | "." class | ":" pseudo [ "(" arg ")" ]

Supported pseudo-classes are hover, focus, selected, root, empty,
first-child, last-child, only-child, first-of-type, last-of-type,
only-of-type, first-in-list, last-in-list, only-in-list and the positional
pseudo-classes nth-child, nth-last-child, nth-of-type, nth-last-of-type,
nth-in-list and nth-last-in-list, which take an argument of the form
`an+b`, `even`, `odd` or an integer.

# Matching

Selectors are matched against nodes which expose their "facts": a map
kind → value → numeric arguments (see type Facts). Matching starts with
the rightmost simple selector at the target node and walks the tree
backwards, as dictated by the combinators.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package selector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tcss.selector'.
func tracer() tracing.Trace {
	return tracing.Select("tcss.selector")
}
