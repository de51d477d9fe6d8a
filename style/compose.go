package style

import (
	"fmt"
	"strings"
)

// KeyValue is a container for a (longhand) property name and its raw value.
type KeyValue struct {
	Key   string
	Value string
}

type compositionMethod uint8

const (
	matchMethod compositionMethod = iota // match value tokens by type
	allocMethod                          // allocate values to sides by count
)

type candidate struct {
	name     string
	optional bool
}

type composition struct {
	method     compositionMethod
	candidates []candidate
}

var compositions = map[string]composition{
	"background": {matchMethod, []candidate{
		{"background-fill", true},
		{"background-color", true},
	}},
	"border": {matchMethod, []candidate{
		{"border-fill", true},
		{"border-background", false},
		{"border-color", true},
	}},
	"padding":  {allocMethod, sides("padding-")},
	"position": {allocMethod, sides("")},
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}

func sides(prefix string) []candidate {
	c := make([]candidate, 4)
	for i, dir := range fourDirs {
		c[i] = candidate{name: prefix + dir}
	}
	return c
}

// IsShorthand returns wether a property name denotes a shorthand
// (composite) property.
func IsShorthand(key string) bool {
	_, ok := compositions[key]
	return ok
}

// SplitCompoundProperty splits up a shorthand property into its individual
// components. Returns a slice of key-value pairs representing the
// individual (fine grained) style properties.
// Example:
//
//	SplitCompoundProperty("padding", "3 1")
//
// will return
//
//	"padding-top"    => "3"
//	"padding-right"  => "1"
//	"padding-bottom" => "3"
//	"padding-left"   => "1"
//
// Property names which are not shorthands are returned as a single pair.
func (reg *Registry) SplitCompoundProperty(key string, value string) ([]KeyValue, error) {
	comp, ok := compositions[key]
	if !ok {
		return []KeyValue{{key, value}}, nil
	}
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return nil, fmt.Errorf("expecting at least one value for %s", key)
	}
	switch comp.method {
	case allocMethod:
		return feazeCompound4(comp.candidates, fields), nil
	case matchMethod:
		return reg.matchCompound(key, comp.candidates, fields)
	}
	return nil, fmt.Errorf("not recognized as compound property: %s", key)
}

// CSS logic to distribute individual values from compound shortcuts is as
// follows: https://www.w3schools.com/css/css_padding.asp
// More than 4 values are truncated.
func feazeCompound4(dirs []candidate, fields []string) []KeyValue {
	l := len(fields)
	if l > 4 {
		l = 4
	}
	var alloc [4]int
	switch l {
	case 1:
		alloc = [4]int{0, 0, 0, 0} // one for all
	case 2:
		alloc = [4]int{0, 1, 0, 1} // 1st: top, bottom; 2nd: right, left
	case 3:
		alloc = [4]int{0, 1, 2, 1} // 1st: top; 2nd: right, left; 3rd: bottom
	case 4:
		alloc = [4]int{0, 1, 2, 3} // top, right, bottom, left
	}
	r := make([]KeyValue, 4)
	for i, vi := range alloc {
		r[i] = KeyValue{dirs[i].name, fields[vi]}
	}
	return r
}

// matchCompound hands out value tokens in order to the first remaining
// candidate whose type accepts the token. Optional candidates not accepting
// a token are skipped. Skipping a required candidate, or a token arriving
// after all candidates are used up, fails the whole shorthand. A last token
// no candidate accepts is dropped; the pairs matched so far stay valid.
func (reg *Registry) matchCompound(key string, cands []candidate, fields []string) ([]KeyValue, error) {
	var r []KeyValue
	index := 0
	for _, val := range fields {
		if index >= len(cands) {
			return nil, fmt.Errorf("%s: no component left for value %q", key, val)
		}
		for index < len(cands) {
			c := cands[index]
			if TestValue(reg.TypeOf(c.name), val) {
				r = append(r, KeyValue{c.name, val})
				index++
				break
			}
			if !c.optional {
				return nil, fmt.Errorf("%s: value %q does not match required %s", key, val, c.name)
			}
			index++
		}
	}
	if len(r) == 0 {
		return nil, fmt.Errorf("%s: no component matches %q", key, strings.Join(fields, " "))
	}
	return r, nil
}
