package style

import (
	"testing"

	"github.com/npillmayer/tcss/cssom"
)

func TestWeightIDOutweighsClass(t *testing.T) {
	id := SelectorWeight(1, 0, 0)
	class := SelectorWeight(0, 1, 0).Sum(DeclarationWeight(false, cssom.Position{Line: 99, Column: 99}))
	if !class.Less(id) {
		t.Errorf("expected %s < %s", class, id)
	}
	if id.Compare(class) <= 0 {
		t.Errorf("expected id selector to outweigh class selector regardless of position")
	}
}

func TestWeightImportantWins(t *testing.T) {
	important := DeclarationWeight(true, cssom.Position{Line: 1, Column: 1})
	ids := DeclarationWeight(false, cssom.Position{Line: 5}).Sum(SelectorWeight(3, 2, 1))
	if !ids.Less(important) {
		t.Errorf("expected !important to win over ids, have %s vs %s", important, ids)
	}
}

func TestWeightPositionTieBreak(t *testing.T) {
	early := DeclarationWeight(false, cssom.Position{Line: 1, Column: 3}).Sum(SelectorWeight(0, 1, 0))
	late := DeclarationWeight(false, cssom.Position{Line: 2, Column: 1}).Sum(SelectorWeight(0, 1, 0))
	if !early.Less(late) {
		t.Errorf("expected later declaration to win ties")
	}
	sameLine := DeclarationWeight(false, cssom.Position{Line: 1, Column: 4})
	if !DeclarationWeight(false, cssom.Position{Line: 1, Column: 3}).Less(sameLine) {
		t.Errorf("expected later column to win ties")
	}
	if early.Compare(early) != 0 {
		t.Errorf("expected weight to equal itself")
	}
}

func TestWeightSumKeepsPosition(t *testing.T) {
	pos := cssom.Position{Line: 4, Column: 2}
	w := DeclarationWeight(false, pos).Sum(SelectorWeight(1, 2, 3))
	if w.Position() != pos {
		t.Errorf("expected sum to keep position %s, has %s", pos, w.Position())
	}
	if w.Slot(SlotID) != 1 || w.Slot(SlotClass) != 2 || w.Slot(SlotType) != 3 {
		t.Errorf("expected slots [0 0 1 2 3], have %s", w)
	}
}
