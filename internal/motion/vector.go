package motion

import (
	"fmt"
	"math"
)

// Vector is a three-axis accelerometer reading in g.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (that Vector) Add(o Vector) Vector {
	return Vector{X: that.X + o.X, Y: that.Y + o.Y, Z: that.Z + o.Z}
}

func (that Vector) Sub(o Vector) Vector {
	return Vector{X: that.X - o.X, Y: that.Y - o.Y, Z: that.Z - o.Z}
}

func (that Vector) Scale(k float64) Vector {
	return Vector{X: that.X * k, Y: that.Y * k, Z: that.Z * k}
}

// Norm is the Euclidean length.
func (that Vector) Norm() float64 {
	return math.Sqrt(that.X*that.X + that.Y*that.Y + that.Z*that.Z)
}

// IsFinite reports whether no axis is NaN or infinite.
func (that Vector) IsFinite() bool {
	for _, v := range [...]float64{that.X, that.Y, that.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (that Vector) String() string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", that.X, that.Y, that.Z)
}
