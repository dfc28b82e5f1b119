package mathutil

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is a 3-component vector (value type, stack-allocated).
// It is mgl64's vector, so Add, Sub, Mul, Dot, Cross and Len come with it.
type Vec3 = mgl64.Vec3

// WorldUp is the camera's fixed up axis.
var WorldUp = Vec3{0, 0, 1}

// IsFinite reports whether every component is neither NaN nor infinite.
func IsFinite(v Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Lerp returns a + t·(b − a).
func Lerp(a, b Vec3, t float64) Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// ApproxEqual reports whether every component of a and b differs by at most
// tol. Unlike mgl64's threshold comparisons the tolerance is absolute, also
// when a component is zero.
func ApproxEqual(a, b Vec3, tol float64) bool {
	return a.ApproxFuncEqual(b, func(x, y float64) bool {
		return math.Abs(x-y) <= tol
	})
}
