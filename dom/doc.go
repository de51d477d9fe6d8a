/*
Package dom defines the contract between the styling engine and a host
tree of user-interface nodes.

# Status

Early draft—API may change frequently. Please stay patient.

# Overview

The engine styles an arbitrary, mutable tree of nodes owned by a host
(usually a terminal UI toolkit). It never creates or destroys host nodes;
it only observes them and writes resolved property values through
accessors the host provides (see package style).

A host has to provide:

  - for every node: parent, ordered children, the preceding sibling, a
    type tag, an id and a space-separated list of classes (interface Node)
  - for list containers: the items, the index of the selected item and
    the index of a child within the items (interface List)
  - for the root: an event subscription mechanism, a way to request
    a repaint and a way to post work to the event loop (interface Root)

# Events

The root delivers structural events (adopt, remove, reparent, select item)
and input events (mouse over/out, focus/blur) for itself and for every
descendant. Before drawing, the root emits EventPreRender. Events have to
be delivered synchronously on the host's event loop; the engine is not
safe for concurrent use. Work the engine defers, such as repaints, reaches
the event loop through Root.Post.

Node values have to be comparable (usually pointers), as the engine uses
them as map keys.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package dom
