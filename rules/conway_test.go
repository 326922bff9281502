package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	tests := []struct {
		name      string
		neighbors int
		alive     bool
		want      bool
	}{
		{"lonely live cell dies", 0, true, false},
		{"underpopulated live cell dies", 1, true, false},
		{"live cell with two survives", 2, true, true},
		{"live cell with three survives", 3, true, true},
		{"overpopulated live cell dies", 4, true, false},
		{"dead cell with two stays dead", 2, false, false},
		{"dead cell with three is born", 3, false, true},
		{"dead cell with eight stays dead", 8, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyConwayRules(tt.neighbors, tt.alive); got != tt.want {
				t.Errorf("ApplyConwayRules(%d, %v) = %v, want %v", tt.neighbors, tt.alive, got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want int
	}{
		{-1, 0, 4, 0},
		{0, 0, 4, 0},
		{3, 0, 4, 3},
		{5, 0, 4, 4},
		{1, 0, 0, 0},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestMooreOffsetsExcludeCenter(t *testing.T) {
	seen := make(map[Offset]bool)
	for _, o := range MooreOffsets {
		if o.DX == 0 && o.DY == 0 {
			t.Fatal("center offset must not be part of the neighborhood")
		}
		if seen[o] {
			t.Fatalf("duplicate offset %+v", o)
		}
		seen[o] = true
	}
}
