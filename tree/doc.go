/*
Package tree implements a generic tree of mutable nodes.

Nodes carry a payload of a type parameter T and maintain an ordered
slice of children. Access to the children of a node is
concurrency-safe; everything else is the responsibility of clients.

Package widget builds its widgets on top of tree.Node, by embedding it
and setting the payload to the widget itself.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package tree
