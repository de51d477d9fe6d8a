/*
Package widget is a small terminal widget tree, serving as the reference
host for the styling engine.

# Overview

Widgets are built on top of the general purpose tree.Node. Every widget
has a type ("box", "list", "item", …), an optional id and classes. The
root of a widget tree is a Screen, which delivers events to subscribers
and draws the tree with lipgloss.

Widgets implement dom.Node, lists additionally dom.List and screens
dom.Root. Every longhand property of package style is bound to a field
or capability of a widget, see Accessors.

Mutations of the tree (Append, Remove), input changes (MouseOver, Focus, …)
and list selection emit events synchronously to the subscribers of the
screen the widget belongs to. Changing the classes of a widget does not
emit an event.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package widget

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tcss.widget'.
func tracer() tracing.Trace {
	return tracing.Select("tcss.widget")
}
