package model

import "testing"

func TestIndexString(t *testing.T) {
	if got := NewIndex(3, 7).String(); got != "(x: 3, y: 7)" {
		t.Errorf("unexpected index string %q", got)
	}
}

func TestCellString(t *testing.T) {
	tests := []struct {
		cell Cell
		want string
	}{
		{Cell{IsAlive: true, Index: NewIndex(1, 2)}, "Alive: (x: 1, y: 2)"},
		{Cell{Index: NewIndex(0, 0)}, "Dead: (x: 0, y: 0)"},
	}
	for _, tt := range tests {
		if got := tt.cell.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestIndexEquality(t *testing.T) {
	if NewIndex(2, 3) != NewIndex(2, 3) {
		t.Error("indices with the same coordinates should be equal")
	}
	if NewIndex(2, 3) == NewIndex(3, 2) {
		t.Error("transposed indices should differ")
	}
}
