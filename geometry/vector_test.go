package geometry

import (
	"math"
	"testing"
)

func TestClampMagnitude(t *testing.T) {
	cases := []struct {
		name      string
		v         Vector
		maxLength float64
		want      Vector
	}{
		{"inside", Vector{3, 4}, 10, Vector{3, 4}},
		{"on_boundary", Vector{3, 4}, 5, Vector{3, 4}},
		{"outside_axis", Vector{150, 0}, 100, Vector{100, 0}},
		{"outside_diagonal", Vector{-6, 8}, 5, Vector{-3, 4}},
		{"zero_vector", Vector{0, 0}, 5, Vector{0, 0}},
		{"zero_max", Vector{3, 4}, 0, Vector{0, 0}},
		{"negative_max", Vector{3, 4}, -1, Vector{0, 0}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.v.ClampMagnitude(c.maxLength)
			if math.Abs(got.X-c.want.X) > 1e-12 || math.Abs(got.Y-c.want.Y) > 1e-12 {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
			if c.maxLength > 0 && got.Magnitude() > c.maxLength+1e-12 {
				t.Fatalf("magnitude %v exceeds %v", got.Magnitude(), c.maxLength)
			}
		})
	}
}

func TestMoveTowards(t *testing.T) {
	cases := []struct {
		name     string
		current  float64
		target   float64
		maxDelta float64
		want     float64
	}{
		{"step_up", 0, 1, 0.25, 0.25},
		{"step_down", 0, -1, 0.25, -0.25},
		{"reaches_target", 0.9, 1, 0.25, 1},
		{"does_not_overshoot_down", -0.9, -1, 25, -1},
		{"already_there", 0.5, 0.5, 1, 0.5},
		{"zero_delta", 0.3, 1, 0, 0.3},
		{"negative_delta", 0.3, 1, -1, 0.3},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := MoveTowards(c.current, c.target, c.maxDelta); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestVectorMoveTowardsIsComponentwise(t *testing.T) {
	got := Vector{0, 0}.MoveTowards(Vector{1, -0.1}, 0.5)
	if got != (Vector{0.5, -0.1}) {
		t.Fatalf("expected (0.5,-0.1), got %v", got)
	}
}

func TestDivideByZero(t *testing.T) {
	if got := (Vector{3, 4}).Divide(0); got != (Vector{0, 0}) {
		t.Fatalf("expected zero vector, got %v", got)
	}
	if got := (Vector{3, 4}).Divide(2); got != (Vector{1.5, 2}) {
		t.Fatalf("expected (1.5,2), got %v", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5.0, 0.25, 4); got != 4 {
		t.Fatalf("expected 4, got %v", got)
	}
	if got := Clamp(0.1, 0.25, 4); got != 0.25 {
		t.Fatalf("expected 0.25, got %v", got)
	}
	if got := Clamp(2, 1, 3); got != 2 {
		t.Fatalf("expected 2, got %v", got)
	}
}
