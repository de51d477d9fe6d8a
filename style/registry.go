package style

import (
	"fmt"
	"sort"

	"github.com/npillmayer/tcss/cssom"
	"github.com/npillmayer/tcss/dom"
)

// Accessor reads and writes a property value from/to a host node.
// Hosts provide an accessor for every longhand they support. Set may have
// side effects (e.g., enable mouse handling for a node).
type Accessor interface {
	Get(node dom.Node) (Value, bool)
	Set(node dom.Node, v Value) error
}

// AccessorFuncs adapts a pair of functions to interface Accessor.
// Either function may be nil.
type AccessorFuncs struct {
	GetFunc func(dom.Node) (Value, bool)
	SetFunc func(dom.Node, Value) error
}

// Get calls a.GetFunc.
func (a AccessorFuncs) Get(node dom.Node) (Value, bool) {
	if a.GetFunc == nil {
		return Unset, false
	}
	return a.GetFunc(node)
}

// Set calls a.SetFunc.
func (a AccessorFuncs) Set(node dom.Node, v Value) error {
	if a.SetFunc == nil {
		return nil
	}
	return a.SetFunc(node, v)
}

var _ Accessor = AccessorFuncs{}

// Descriptor describes a longhand property.
type Descriptor struct {
	Name     string
	Type     Type
	Default  Value
	Accessor Accessor // may be nil if the host does not support the property
}

// longhands is the static table of longhand properties.
var longhands = []Descriptor{
	{Name: "bold", Type: BooleanType},
	{Name: "underline", Type: BooleanType},
	{Name: "blink", Type: BooleanType},
	{Name: "inverse", Type: BooleanType},
	{Name: "invisible", Type: BooleanType},
	{Name: "transparent", Type: BooleanType},
	{Name: "color", Type: ColorType},

	{Name: "background-fill", Type: CharType, Default: Char(" ")},
	{Name: "background-color", Type: ColorType},

	{Name: "border-background", Type: ColorType},
	{Name: "border-color", Type: ColorType},
	{Name: "border-fill", Type: CharType},
	{Name: "border-top", Type: BooleanType},
	{Name: "border-right", Type: BooleanType},
	{Name: "border-bottom", Type: BooleanType},
	{Name: "border-left", Type: BooleanType},

	{Name: "padding-top", Type: NumberType, Default: Number(0)},
	{Name: "padding-right", Type: NumberType, Default: Number(0)},
	{Name: "padding-bottom", Type: NumberType, Default: Number(0)},
	{Name: "padding-left", Type: NumberType, Default: Number(0)},

	{Name: "width", Type: DimensionType},
	{Name: "height", Type: DimensionType},
	{Name: "top", Type: PositionType},
	{Name: "right", Type: PositionType},
	{Name: "bottom", Type: PositionType},
	{Name: "left", Type: PositionType},

	{Name: "align", Type: HAlignType, Default: HAlign("left")},
	{Name: "vertical-align", Type: VAlignType, Default: VAlign("top")},

	{Name: "shadow", Type: BooleanType},
	{Name: "hidden", Type: BooleanType, Default: Bool(false)},
	{Name: "shrink", Type: BooleanType},
	{Name: "draggable", Type: BooleanType},

	{Name: "mouseable", Type: BooleanType},
	{Name: "keyable", Type: BooleanType},
}

// Longhands returns the names of all known longhand properties, in
// registry order.
func Longhands() []string {
	names := make([]string, len(longhands))
	for i, d := range longhands {
		names[i] = d.Name
	}
	return names
}

// Registry maps property names to descriptors. A registry is immutable
// after construction and may be shared between stylesheets.
type Registry struct {
	descr    map[string]*Descriptor
	order    []string
	defaults []*Property
}

// NewRegistry creates a registry of all known longhands, binding the
// accessors provided by a host. Accessors for unknown property names
// result in an error.
func NewRegistry(accessors map[string]Accessor) (*Registry, error) {
	reg := &Registry{descr: make(map[string]*Descriptor, len(longhands))}
	for _, d := range longhands {
		d := d
		reg.descr[d.Name] = &d
		reg.order = append(reg.order, d.Name)
	}
	names := make([]string, 0, len(accessors))
	for name := range accessors {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		d, ok := reg.descr[name]
		if !ok {
			return nil, cssom.Errorf(cssom.PropertyError, name, "cannot bind accessor to unknown property")
		}
		d.Accessor = accessors[name]
	}
	for _, name := range reg.order {
		d := reg.descr[name]
		reg.defaults = append(reg.defaults, &Property{
			Name:     d.Name,
			Value:    d.Default,
			Type:     d.Type,
			Known:    true,
			Valid:    true,
			Default:  true,
			Weight:   ZeroWeight,
			accessor: d.Accessor,
		})
	}
	tracer().Debugf("property registry with %d longhands, %d accessors", len(reg.order), len(accessors))
	return reg, nil
}

// Lookup returns the descriptor for a longhand property.
func (reg *Registry) Lookup(name string) (*Descriptor, bool) {
	d, ok := reg.descr[name]
	return d, ok
}

// TypeOf returns the value type of a longhand, or UnknownType.
func (reg *Registry) TypeOf(name string) Type {
	if d, ok := reg.descr[name]; ok {
		return d.Type
	}
	return UnknownType
}

// Defaults returns a default property for every longhand, with zero weight
// and without source position. Clients must not modify the properties.
func (reg *Registry) Defaults() []*Property {
	return reg.defaults
}

func (reg *Registry) String() string {
	return fmt.Sprintf("Registry(%d longhands)", len(reg.order))
}
