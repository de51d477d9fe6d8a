package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/tcss/widget"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// LoadMarkup reads a markup fragment and appends its elements as widgets
// to a screen. A list element may carry an attribute "selected" holding the
// index of its selected item.
func LoadMarkup(r io.Reader, screen *widget.Screen) error {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(r, body)
	if err != nil {
		return fmt.Errorf("cannot parse markup: %w", err)
	}
	var selections []func() error
	for _, n := range nodes {
		if w := toWidget(n, &selections); w != nil {
			screen.Append(w)
		}
	}
	for _, sel := range selections {
		if err := sel(); err != nil {
			return err
		}
	}
	return nil
}

// toWidget converts an element and its element children. Non-element nodes
// yield nil.
func toWidget(n *html.Node, selections *[]func() error) *widget.Widget {
	if n.Type != html.ElementNode {
		return nil
	}
	var opts []widget.Option
	if id := attr(n, "id"); id != "" {
		opts = append(opts, widget.ID(id))
	}
	if class := attr(n, "class"); class != "" {
		opts = append(opts, widget.Class(class))
	}
	if text := content(n); text != "" {
		opts = append(opts, widget.Text(text))
	}
	var w *widget.Widget
	if n.Data == "list" {
		w = widget.NewList(opts...)
	} else {
		w = widget.New(n.Data, opts...)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if ch := toWidget(c, selections); ch != nil {
			w.Append(ch)
		}
	}
	if sel := attr(n, "selected"); sel != "" && n.Data == "list" {
		*selections = append(*selections, func() error {
			i, err := strconv.Atoi(sel)
			if err != nil || i < 0 || i >= len(w.Items()) {
				return fmt.Errorf("list %s: invalid selection %q", w, sel)
			}
			w.Select(i)
			return nil
		})
	}
	return w
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// content is the text of the direct text children of an element, with
// white space collapsed.
func content(n *html.Node) string {
	var parts []string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			parts = append(parts, strings.Fields(c.Data)...)
		}
	}
	return strings.Join(parts, " ")
}
