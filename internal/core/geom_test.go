package core

import "testing"

func TestPointAdd(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Point
		expected Point
	}{
		{"zero", Pt(0, 0), Pt(0, 0), Pt(0, 0)},
		{"positive", Pt(1, 2), Pt(3, 4), Pt(4, 6)},
		{"negative offset", Pt(5, 5), Pt(-1, -2), Pt(4, 3)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Add(tc.b); got != tc.expected {
				t.Errorf("Add() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectHalfOpen(t *testing.T) {
	r := NewRect(2, 1, 3, 2) // columns 2..4, rows 1..2

	if r.Right() != 5 || r.Bottom() != 3 {
		t.Fatalf("edges = (%d, %d), expected (5, 3)", r.Right(), r.Bottom())
	}

	in := []Point{{2, 1}, {4, 1}, {2, 2}, {4, 2}}
	out := []Point{{1, 1}, {5, 1}, {2, 0}, {2, 3}, {5, 3}}
	for _, p := range in {
		if !r.Contains(p.X, p.Y) {
			t.Errorf("Contains(%d, %d) = false, expected true", p.X, p.Y)
		}
	}
	for _, p := range out {
		if r.Contains(p.X, p.Y) {
			t.Errorf("Contains(%d, %d) = true, expected false", p.X, p.Y)
		}
	}

	if NewRect(0, 0, 0, 4).Contains(0, 0) {
		t.Error("empty rect should contain nothing")
	}
}
