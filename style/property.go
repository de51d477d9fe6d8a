package style

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/npillmayer/tcss/cssom"
	"github.com/npillmayer/tcss/dom"
)

// Property is a parsed, typed longhand property. Properties are immutable
// once parsed; Extract returns a re-weighted clone.
type Property struct {
	Name      string
	Value     Value
	Raw       string // raw value text
	Type      Type
	Important bool
	Known     bool // property name is a registered longhand
	Valid     bool // raw value passed the type predicate
	Default   bool // property is a registry default
	Weight    Weight
	Position  cssom.Position
	accessor  Accessor
}

func (p *Property) String() string {
	return fmt.Sprintf("%s: %s %s", p.Name, p.Value, p.Weight)
}

// Apply writes the value of p to a host node, using the accessor bound
// in the registry. Properties without an accessor are ignored.
func (p *Property) Apply(node dom.Node) error {
	if p.accessor == nil {
		return nil
	}
	return p.accessor.Set(node, p.Value)
}

// Get reads the current value of p's longhand from a host node.
func (p *Property) Get(node dom.Node) (Value, bool) {
	if p.accessor == nil {
		return Unset, false
	}
	return p.accessor.Get(node)
}

// Applicable is true for properties taking part in the cascade.
func (p *Property) Applicable() bool {
	return p.Known && p.Valid
}

// Extract returns a clone of p with a weight of p.Weight + w. It is used to
// combine a selector's weight into every property it governs.
func Extract(p *Property, w Weight) *Property {
	extracted := *p
	extracted.Weight = p.Weight.Sum(w)
	return &extracted
}

// --- Parsing ---------------------------------------------------------------

var importantPattern = regexp.MustCompile(`(?i)^(.*?)\s*(!\s*important)?$`)

// Parse parses a single declaration into one or more longhand properties.
// Shorthands expand into several properties. Unknown property names and
// values failing their type predicate are flagged (Known=false resp.
// Valid=false) and reported as PropertyError; the other properties of the
// declaration still proceed. A shorthand which cannot be expanded yields
// no properties at all.
func (reg *Registry) Parse(decl cssom.Declaration) ([]*Property, []error) {
	name := strings.ToLower(strings.TrimSpace(decl.Property))
	raw := strings.NewReplacer(`"`, "", `'`, "").Replace(strings.TrimSpace(decl.Value))
	m := importantPattern.FindStringSubmatch(raw)
	value, important := m[1], decl.Important || m[2] != ""
	if name == "" || value == "" {
		err := cssom.Errorf(cssom.PropertyError, decl.Property+": "+decl.Value, "empty declaration")
		return nil, []error{err.At(decl.Position)}
	}
	pairs, err := reg.SplitCompoundProperty(name, value)
	if err != nil {
		e := &cssom.Error{Kind: cssom.PropertyError, Text: name + ": " + value, Err: err}
		return nil, []error{e.At(decl.Position)}
	}
	var props []*Property
	var errs []error
	for _, kv := range pairs {
		p := &Property{
			Name:      kv.Key,
			Raw:       kv.Value,
			Important: important,
			Weight:    DeclarationWeight(important, decl.Position),
			Position:  decl.Position,
		}
		d, known := reg.Lookup(kv.Key)
		if known {
			p.Known = true
			p.Type = d.Type
			p.accessor = d.Accessor
			p.Value, p.Valid = CastValue(d.Type, kv.Value)
		}
		switch {
		case !p.Known:
			errs = append(errs, cssom.Errorf(cssom.PropertyError, kv.Key, "unknown property").At(decl.Position))
		case !p.Valid:
			errs = append(errs, cssom.Errorf(cssom.PropertyError, kv.Key+": "+kv.Value,
				"value is not a valid %s", p.Type).At(decl.Position))
		}
		props = append(props, p)
	}
	return props, errs
}

// --- Cascade ---------------------------------------------------------------

// FlatSortUniq flattens groups of properties, optionally appends defaults,
// sorts by descending weight and keeps the first (i.e., highest-weight)
// entry per property name. Properties not taking part in the cascade
// (unknown or invalid ones) are dropped.
func FlatSortUniq(groups [][]*Property, defaults []*Property) []*Property {
	n := len(defaults)
	for _, g := range groups {
		n += len(g)
	}
	flat := make([]*Property, 0, n)
	for _, g := range groups {
		for _, p := range g {
			if p.Applicable() {
				flat = append(flat, p)
			}
		}
	}
	flat = append(flat, defaults...)
	sort.SliceStable(flat, func(i, j int) bool {
		return flat[j].Weight.Less(flat[i].Weight)
	})
	seen := make(map[string]bool, len(flat))
	uniq := flat[:0]
	for _, p := range flat {
		if !seen[p.Name] {
			seen[p.Name] = true
			uniq = append(uniq, p)
		}
	}
	return uniq
}
