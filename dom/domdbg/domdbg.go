/*
Package domdbg implements helpers to debug a styled host tree.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package domdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/tcss/dom"
	"github.com/npillmayer/tcss/style"
	tp "github.com/xlab/treeprint"
)

// Resolver resolves the style of a node. *engine.Engine is a Resolver.
type Resolver interface {
	Resolve(dom.Node) ([]*style.Property, error)
}

// Group is a named group of properties, used to structure dumps.
type Group struct {
	Name       string
	Properties []*style.Property
}

// groupOf maps a property name to the name of its group.
func groupOf(name string) string {
	switch {
	case strings.HasPrefix(name, "background-"):
		return "background"
	case strings.HasPrefix(name, "border-"):
		return "border"
	case strings.HasPrefix(name, "padding-"):
		return "padding"
	}
	switch name {
	case "width", "height", "top", "right", "bottom", "left", "align", "vertical-align":
		return "box"
	case "shadow", "hidden", "shrink", "draggable", "mouseable", "keyable":
		return "behaviour"
	}
	return "text"
}

var groupOrder = []string{"text", "background", "border", "padding", "box", "behaviour"}

// Groups resolves the style of a node and returns the properties not
// originating from defaults, in groups. Empty groups are omitted.
func Groups(n dom.Node, res Resolver) ([]Group, error) {
	props, err := res.Resolve(n)
	if err != nil {
		return nil, err
	}
	byGroup := make(map[string][]*style.Property)
	for _, p := range props {
		if !p.Default {
			g := groupOf(p.Name)
			byGroup[g] = append(byGroup[g], p)
		}
	}
	var groups []Group
	for _, name := range groupOrder {
		if ps := byGroup[name]; len(ps) > 0 {
			sortByName(ps)
			groups = append(groups, Group{Name: name, Properties: ps})
		}
	}
	return groups, nil
}

func sortByName(props []*style.Property) {
	sort.Slice(props, func(i, j int) bool {
		return props[i].Name < props[j].Name
	})
}

// Label returns a selector-like label for a node, e.g. "box#main.a.b".
func Label(n dom.Node) string {
	var sb strings.Builder
	sb.WriteString(n.Type())
	if id := n.ID(); id != "" {
		sb.WriteString("#" + id)
	}
	for _, c := range strings.Fields(n.Class()) {
		sb.WriteString("." + c)
	}
	return sb.String()
}

// --- Outline ---------------------------------------------------------------

// Outline prints an indented outline of a tree, with the resolved,
// non-default properties of every node.
func Outline(root dom.Node, res Resolver) (string, error) {
	p := tp.New()
	p.SetValue(Label(root))
	if err := outline(p, root, res); err != nil {
		return "", err
	}
	return p.String(), nil
}

func outline(p tp.Tree, n dom.Node, res Resolver) error {
	for _, ch := range n.Children() {
		groups, err := Groups(ch, res)
		if err != nil {
			return err
		}
		label := Label(ch)
		if len(groups) > 0 {
			label += " { " + declarations(groups) + "}"
		}
		if len(ch.Children()) == 0 {
			p.AddNode(label)
			continue
		}
		if err := outline(p.AddBranch(label), ch, res); err != nil {
			return err
		}
	}
	return nil
}

func declarations(groups []Group) string {
	var sb strings.Builder
	for _, g := range groups {
		for _, prop := range g.Properties {
			fmt.Fprintf(&sb, "%s: %s; ", prop.Name, prop.Value)
		}
	}
	return sb.String()
}

// Listing prints one line per node below root, in depth-first pre-order.
// Each line holds the path of labels from the root and the resolved,
// non-default properties of the node, e.g.
//
//	screen > box#main { bold: true; }
func Listing(root dom.Node, res Resolver) (string, error) {
	var sb strings.Builder
	if err := listing(&sb, Label(root), root, res); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func listing(sb *strings.Builder, path string, n dom.Node, res Resolver) error {
	for _, ch := range n.Children() {
		groups, err := Groups(ch, res)
		if err != nil {
			return err
		}
		chpath := path + " > " + Label(ch)
		sb.WriteString(chpath)
		if len(groups) > 0 {
			sb.WriteString(" { " + declarations(groups) + "}")
		}
		sb.WriteByte('\n')
		if err := listing(sb, chpath, ch, res); err != nil {
			return err
		}
	}
	return nil
}

// --- GraphViz --------------------------------------------------------------

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname  string
	NodeTmpl  *template.Template
	EdgeTmpl  *template.Template
	GroupTmpl *template.Template
	GroupEdge *template.Template
}

// ToGraphViz outputs a diagram for a styled tree. The diagram is in
// GraphViz (DOT) format. Every node is accompanied by its resolved,
// non-default properties, in groups.
func ToGraphViz(root dom.Node, res Resolver, w io.Writer) error {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Funcs(
		template.FuncMap{
			"label": Label,
		}).Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.GroupTmpl = template.Must(template.New("group").Parse(groupTmpl))
	gparams.GroupEdge = template.Must(template.New("groupedge").Parse(groupEdgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[dom.Node]string, 256)
	if err = nodes(root, res, w, dict, &gparams); err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a root node and a testing.T, it will
// create a Graphviz image of the styled tree and write it to a file in the
// test's temporary directory. The image is in SVG format; its path is logged.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
func Dotty(root dom.Node, res Resolver, t *testing.T) {
	tmpfile, err := os.CreateTemp(t.TempDir(), "dom.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing styled tree digraph to %s\n", tmpfile.Name())
	if err := ToGraphViz(root, res, tmpfile); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Errorf("dot: %v: %s", err, out)
		return
	}
	t.Logf("image written to %s.svg", tmpfile.Name())
}

type node struct {
	N    dom.Node
	Name string
}

type edge struct {
	N1, N2 string
}

type groupNode struct {
	ID string
	Group
}

func nodes(n dom.Node, res Resolver, w io.Writer, dict map[dom.Node]string, gparams *graphParamsType) error {
	name := nameOf(n, dict)
	if err := gparams.NodeTmpl.Execute(w, &node{n, name}); err != nil {
		return err
	}
	if n.Parent() != nil {
		if err := groups(n, name, res, w, gparams); err != nil {
			return err
		}
	}
	for _, ch := range n.Children() {
		if err := nodes(ch, res, w, dict, gparams); err != nil {
			return err
		}
		if err := gparams.EdgeTmpl.Execute(w, edge{name, dict[ch]}); err != nil {
			return err
		}
	}
	return nil
}

func nameOf(n dom.Node, dict map[dom.Node]string) string {
	name := dict[n]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(dict)+1)
		dict[n] = name
	}
	return name
}

func groups(n dom.Node, name string, res Resolver, w io.Writer, gparams *graphParamsType) error {
	gs, err := Groups(n, res)
	if err != nil {
		return err
	}
	prev := name
	for i, g := range gs {
		id := fmt.Sprintf("%s_pg%d", name, i)
		if err := gparams.GroupTmpl.Execute(w, groupNode{id, g}); err != nil {
			return err
		}
		if err := gparams.GroupEdge.Execute(w, edge{prev, id}); err != nil {
			return err
		}
		prev = id
	}
	return nil
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ .Name }}	[ label={{ label .N | printf "%q" }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
`

const groupTmpl = `{{ .ID }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Name }}</font></td></tr>
      {{ range .Properties }}
      <tr><td align="right">{{ .Name }}:</td><td>{{ .Value }}</td></tr>
      {{ end }}
    </table>> ] ;
`

const domEdgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`

const groupEdgeTmpl = `{{ .N1 }} -> {{ .N2 }} [dir=none weight=1 style="dashed"] ;
`
