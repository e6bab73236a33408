package world

import (
	"errors"
	"testing"
)

func TestNewGrid_AllEmptyAndHidden(t *testing.T) {
	g := NewGrid(5)
	if g.Size() != 5 {
		t.Fatalf("Size() = %d, want 5", g.Size())
	}
	g.ForEachCell(func(p Position, kind CellKind) {
		if kind != Empty {
			t.Errorf("cell %v = %v, want Empty", p, kind)
		}
		if g.IsVisible(p) {
			t.Errorf("cell %v visible, want hidden", p)
		}
	})
}

func TestGrid_OutOfBoundsReadsAsWall(t *testing.T) {
	g := NewGrid(3)
	for _, p := range []Position{Pos(-1, 0), Pos(0, -1), Pos(3, 0), Pos(0, 3)} {
		if got := g.At(p); got != Wall {
			t.Errorf("At(%v) = %v, want Wall", p, got)
		}
		if g.Set(p, Treasure) {
			t.Errorf("Set(%v) = true, want false for out-of-bounds", p)
		}
	}
}

func TestGrid_SetAndPositions(t *testing.T) {
	g := NewGrid(4)
	g.Set(Pos(3, 0), Treasure)
	g.Set(Pos(0, 1), Treasure)
	g.Set(Pos(2, 2), Wall)

	got := g.Positions(Treasure)
	want := []Position{Pos(3, 0), Pos(0, 1)}
	if len(got) != len(want) {
		t.Fatalf("Positions(Treasure) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Positions(Treasure)[%d] = %v, want %v (row-major order)", i, got[i], want[i])
		}
	}
	if n := g.Count(Wall); n != 1 {
		t.Errorf("Count(Wall) = %d, want 1", n)
	}
}

func TestGrid_PlayerAndValidate(t *testing.T) {
	g := NewGrid(3)
	if err := g.Validate(); !errors.Is(err, ErrInvalidGrid) {
		t.Errorf("Validate() on grid without player = %v, want ErrInvalidGrid", err)
	}

	g.Set(Pos(1, 2), Player)
	if err := g.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
	p, ok := g.Player()
	if !ok || p != Pos(1, 2) {
		t.Errorf("Player() = %v, %v, want 1,2, true", p, ok)
	}

	g.Set(Pos(0, 0), Player)
	if err := g.Validate(); !errors.Is(err, ErrInvalidGrid) {
		t.Errorf("Validate() with two players = %v, want ErrInvalidGrid", err)
	}
}

func TestGrid_CloneIsIndependent(t *testing.T) {
	g := NewGrid(3)
	g.Set(Pos(1, 1), Wall)
	g.Reveal(Pos(1, 1))

	c := g.Clone()
	if !c.Equal(g) {
		t.Fatal("Clone() not Equal to original")
	}
	if !c.IsVisible(Pos(1, 1)) {
		t.Error("Clone() lost visibility")
	}

	c.Set(Pos(1, 1), Empty)
	if g.At(Pos(1, 1)) != Wall {
		t.Error("mutating the clone changed the original")
	}
	if c.Equal(g) {
		t.Error("Equal() = true after divergence, want false")
	}
}

func TestKindFromDigit(t *testing.T) {
	for _, kind := range []CellKind{Empty, Wall, Treasure, Player} {
		got, ok := KindFromDigit(kind.Digit())
		if !ok || got != kind {
			t.Errorf("KindFromDigit(%q) = %v, %v, want %v, true", kind.Digit(), got, ok, kind)
		}
	}
	for _, c := range []byte{'4', '9', 'a', ' '} {
		if _, ok := KindFromDigit(c); ok {
			t.Errorf("KindFromDigit(%q) ok = true, want false", c)
		}
	}
}

func TestParsePosition(t *testing.T) {
	p, err := ParsePosition("4,17")
	if err != nil || p != Pos(4, 17) {
		t.Errorf("ParsePosition(\"4,17\") = %v, %v, want 4,17", p, err)
	}
	if _, err := ParsePosition("4"); err == nil {
		t.Error("ParsePosition(\"4\") error = nil, want error")
	}
}
