package style

import (
	"fmt"

	"github.com/npillmayer/tcss/cssom"
)

// Slots of a weight vector.
const (
	SlotImportant = iota
	SlotReserved
	SlotID
	SlotClass // classes and pseudo-classes
	SlotType
	weightSlots
)

// Weight is the specificity of a selector or a declaration, with the
// convention Weight = [important, reserved, A, B, C] (see
// https://www.w3.org/TR/selectors/#specificity-rules for A, B, C).
// Weight is a value type; it is never mutated after creation.
type Weight struct {
	value    [weightSlots]int
	position cssom.Position
}

// ZeroWeight is the weight of default values.
var ZeroWeight = Weight{}

// SelectorWeight creates a weight from the number of id, class/pseudo and
// type selectors. Selector weights carry no position.
func SelectorWeight(ids, classes, types int) Weight {
	var w Weight
	w.value[SlotID] = ids
	w.value[SlotClass] = classes
	w.value[SlotType] = types
	return w
}

// DeclarationWeight creates a weight for a declaration.
func DeclarationWeight(important bool, pos cssom.Position) Weight {
	w := Weight{position: pos}
	if important {
		w.value[SlotImportant] = 1
	}
	return w
}

// Slot returns the value of slot i, where 0 ≤ i < 5.
func (w Weight) Slot(i int) int {
	return w.value[i]
}

// Position returns the source position of w.
func (w Weight) Position() cssom.Position {
	return w.position
}

// Sum adds two weights component-wise. The position of w is retained.
func (w Weight) Sum(other Weight) Weight {
	for i, x := range other.value {
		w.value[i] += x
	}
	return w
}

// Compare returns a positive number if w outweighs other, a negative number
// if other outweighs w, and 0 if both are equal. Slots are compared in
// order; if all slots are equal, the later source position wins.
func (w Weight) Compare(other Weight) int {
	for i := range w.value {
		if d := w.value[i] - other.value[i]; d != 0 {
			return d
		}
	}
	if d := w.position.Line - other.position.Line; d != 0 {
		return d
	}
	return w.position.Column - other.position.Column
}

// Less returns `true` if w < other (strictly), false otherwise.
func (w Weight) Less(other Weight) bool {
	return w.Compare(other) < 0
}

func (w Weight) String() string {
	return fmt.Sprintf("%v@%s", w.value, w.position)
}
