/*
Package style implements the value layer of the styling engine: weights
(specificity), typed property values, the property registry and the
property parser including shorthand expansion.

# Overview

Stylesheets for terminal user interfaces use a restricted CSS dialect.
Every property is a longhand with a static value type (boolean, number,
char, color, dimension, position, halign, valign) and a default value.
Shorthands (background, border, padding, position) expand into longhands,
either by matching value tokens against the types of the longhands or by
box-model allocation (1 to 4 values for top, right, bottom, left).

How a value gets into the host tree is not known to this package. Hosts
bind an Accessor to every longhand they support, see Registry.

# Weights

A Weight is a 5-slot specificity vector

	[important, reserved, #ids, #classes and pseudo-classes, #types]

plus a source position. Weights are compared slot by slot; the position
is used as a tie-break only ("last rule wins").

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'tcss.style'
func tracer() tracing.Trace {
	return tracing.Select("tcss.style")
}
