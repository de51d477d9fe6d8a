/*
Package cssom is the object model shared between an outer CSS parser and
the styling engine.

# Overview

The engine does not parse outer CSS syntax itself. A collaborator (e.g., see
package douceuradapter) splits stylesheet text into rules, each consisting of
a list of selector strings and a list of declarations with source positions.
Selectors and property values are parsed by the engine (packages style,
style/selector and style/cascade).

We strive to keep the coupling to the outer parser minimal. Clients with a
different CSS front end only have to provide a StyleSheet.

# Errors

All parse-time and render-time problems are reported as *Error, a tagged
error variant. Callers branch on Error.Kind, not on type identity.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'tcss.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("tcss.cssom")
}
