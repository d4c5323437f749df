package history

import (
	"testing"

	"sokoban/pkg/engine/world"
	"sokoban/pkg/game/gameplay"
)

func TestStack_RecordAndUndo(t *testing.T) {
	g, err := world.Parse("400")
	if err != nil {
		t.Fatal(err)
	}
	s := New("400")

	if !gameplay.Move(g, world.Right) {
		t.Fatal("move failed")
	}
	s.Record(g)

	if s.Moves() != 1 {
		t.Errorf("Moves = %d, want 1", s.Moves())
	}

	prev, err := s.Undo()
	if err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if prev == nil {
		t.Fatal("Undo returned nil grid with history to undo")
	}
	if got := world.Encode(prev); got != "400" {
		t.Errorf("restored grid = %q, want %q", got, "400")
	}
}

func TestStack_UndoAtInitialStateIsNoOp(t *testing.T) {
	s := New("400")

	g, err := s.Undo()
	if err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if g != nil {
		t.Error("Undo at initial state returned a grid, want nil")
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}

func TestStack_UndoSequence(t *testing.T) {
	g, err := world.Parse("4000")
	if err != nil {
		t.Fatal(err)
	}
	s := New("4000")

	for i := 0; i < 3; i++ {
		if !gameplay.Move(g, world.Right) {
			t.Fatalf("move %d failed", i+1)
		}
		s.Record(g)
	}

	want := []string{"0040", "0400", "4000"}
	for _, w := range want {
		prev, err := s.Undo()
		if err != nil {
			t.Fatalf("Undo: %v", err)
		}
		if got := world.Encode(prev); got != w {
			t.Errorf("restored grid = %q, want %q", got, w)
		}
	}

	// Back at the initial snapshot: further undo is a no-op.
	if prev, _ := s.Undo(); prev != nil {
		t.Error("Undo past initial state returned a grid")
	}
}

func TestStack_Reset(t *testing.T) {
	g, err := world.Parse("400")
	if err != nil {
		t.Fatal(err)
	}
	s := New("400")
	gameplay.Move(g, world.Right)
	s.Record(g)

	s.Reset("400")

	if s.Len() != 1 {
		t.Errorf("Len after Reset = %d, want 1", s.Len())
	}
	if s.Moves() != 0 {
		t.Errorf("Moves after Reset = %d, want 0", s.Moves())
	}
}
