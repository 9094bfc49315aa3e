package geometry

import (
	"math"
)

type Vector struct {
	X float64
	Y float64
}

// DotProduct calculates the dot product of two vectors
func (v Vector) DotProduct(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Magnitude calculates the magnitude (length) of a vector
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.DotProduct(v))
}

func (v Vector) Normalize() Vector {
	magnitude := v.Magnitude()
	if magnitude == 0 {
		return Vector{0, 0}
	}
	return Vector{v.X / magnitude, v.Y / magnitude}
}

func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y}
}

func (v Vector) Sub(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y}
}

func (v Vector) Scale(factor float64) Vector {
	return Vector{v.X * factor, v.Y * factor}
}

// Divide returns v / divisor, or the zero vector when divisor is zero.
func (v Vector) Divide(divisor float64) Vector {
	if divisor == 0 {
		return Vector{0, 0}
	}
	return Vector{v.X / divisor, v.Y / divisor}
}

// ClampMagnitude shortens v to maxLength keeping its direction.
// Vectors already within maxLength are returned unchanged.
func (v Vector) ClampMagnitude(maxLength float64) Vector {
	if maxLength <= 0 {
		return Vector{0, 0}
	}
	magnitude := v.Magnitude()
	if magnitude <= maxLength {
		return v
	}
	return v.Scale(maxLength / magnitude)
}

// MoveTowards moves each axis of v towards target by at most maxDelta.
func (v Vector) MoveTowards(target Vector, maxDelta float64) Vector {
	return Vector{
		X: MoveTowards(v.X, target.X, maxDelta),
		Y: MoveTowards(v.Y, target.Y, maxDelta),
	}
}
