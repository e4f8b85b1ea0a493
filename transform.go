package loom

// Transform is an opaque 3D projective transform, represented as a
// row-major 4x4 matrix. The engine never inspects individual components; it
// only composes transforms and propagates them (spec §3, §6). No example in
// the retrieval pack ships a general 3D/projective math library — even the
// teacher (willow/transform.go) hand-rolls its own 2D affine composition
// with nothing but the standard library's math package, reaching for
// ebiten only for the *visual* fields this spec excludes. loom follows that
// precedent and hand-rolls the minimal projective-matrix algebra it needs.
type Transform struct {
	m [4][4]float64
}

// Identity returns the identity transform.
func Identity() Transform {
	var t Transform
	for i := 0; i < 4; i++ {
		t.m[i][i] = 1
	}
	return t
}

// Translate3D returns a transform that translates by (x, y, z).
func Translate3D(x, y, z float64) Transform {
	t := Identity()
	t.m[0][3] = x
	t.m[1][3] = y
	t.m[2][3] = z
	return t
}

// Compose returns parent ∘ child: applying the result to a point is
// equivalent to applying child first, then parent. This is the operation
// spec §3 calls "absolute_transform = parent_transform ∘ relative_transform"
// and spec §4.5 uses to fold a translation into a parent's absolute
// transform.
func (parent Transform) Compose(child Transform) Transform {
	var out Transform
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += parent.m[row][k] * child.m[k][col]
			}
			out.m[row][col] = sum
		}
	}
	return out
}

// Equal reports whether two transforms have identical components. Used by
// tests and by invariant checks; the engine itself never branches on
// transform equality during normal operation.
func (t Transform) Equal(other Transform) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if t.m[row][col] != other.m[row][col] {
				return false
			}
		}
	}
	return true
}

// Translation returns the (x, y, z) translation component of the transform.
func (t Transform) Translation() (x, y, z float64) {
	return t.m[0][3], t.m[1][3], t.m[2][3]
}
