/*
Command tcss checks stylesheets for terminal user interfaces and shows how
they style a widget tree.

	tcss check styles.css
	tcss resolve styles.css screen.html
	tcss resolve --format outline --hover main styles.css screen.html

Markup files contain a fragment of HTML-like elements. Every element
becomes a widget of the same type, with attributes id and class; elements
named "list" are list containers. Text is the content of its element.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "tcss:", err)
		os.Exit(1)
	}
}
