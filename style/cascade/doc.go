/*
Package cascade resolves the style of a node from a stylesheet.

A Rule holds the parsed selectors and properties of one
`selector-list { declaration-list }` block. For a node, the highest-weight
matching selector of a rule determines the weight of all of the rule's
properties. A Stylesheet collects the properties of all rules, optionally
adds the registry defaults, and keeps the heaviest property per name.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cascade

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tcss.cascade'.
func tracer() tracing.Trace {
	return tracing.Select("tcss.cascade")
}
