package renderer

import (
	"testing"

	"sokoban/pkg/engine/world"
)

func TestTagFor_AllSymbols(t *testing.T) {
	// One cell per valid symbol; the player lives at symbol 4.
	g, err := world.Parse("012346")
	if err != nil {
		t.Fatal(err)
	}

	want := []CellTag{TagFloor, TagTarget, TagBoxMisplaced, TagBoxOnTarget, TagPlayer, TagVoid}
	got := Tags(g)
	if len(got) != len(want) {
		t.Fatalf("Tags returned %d tags, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tag[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTagFor_PlayerOnTarget(t *testing.T) {
	g, err := world.Parse("52")
	if err != nil {
		t.Fatal(err)
	}
	if tag := TagFor(*g.Cell(0)); tag != TagPlayer {
		t.Errorf("player-on-target tag = %v, want TagPlayer", tag)
	}
}

func TestTagFor_BoxOnTargetBeatsTarget(t *testing.T) {
	c := world.Cell{Box: true, Target: true}
	if tag := TagFor(c); tag != TagBoxOnTarget {
		t.Errorf("tag = %v, want TagBoxOnTarget", tag)
	}
}
