/*
Package engine keeps the styles of a live host tree up to date.

An Engine is attached to the root of a host tree (see package dom) together
with a stylesheet. It subscribes to the structural and input events of the
host, translates them into patches of per-node state and, whenever a patch
actually changes something, schedules a repaint. Before the host draws, the
engine resolves the style of every node and hands changed property values
to the host's accessors.

# Per-Node State

For every node the engine keeps four groups of facts:

	attrs      type, id, classes
	input      hover, focus
	tree       position among siblings, among siblings of the same type
	           and within an enclosing list
	children   number of children

A group is replaced only if at least one of its fields differs. Every
effective change bumps a version counter, which invalidates the node's
selector facts, and is propagated to the node's children as a tree patch.
State is kept in an arena owned by the engine and keyed by stable node ids;
it is released as soon as a node is removed from the tree.

# Repaints

Repaints are coalesced: while a repaint is pending, further changes do not
schedule another one. Changes happening while the engine renders update
state, but neither propagate nor schedule.

The engine is not safe for concurrent use. All events have to be delivered
on the host's event loop. By default, repaints are timed with a
TimerScheduler which posts them to the event loop of the root (dom.Root.Post).

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package engine

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tcss.engine'.
func tracer() tracing.Trace {
	return tracing.Select("tcss.engine")
}
