package geom

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// degenerateTol bounds the sum of absolute components below which a cross
// product counts as zero. Matches the tolerance of the upstream batch
// geometry (absolute tolerance of the near-zero test).
const degenerateTol = 1e-8

// RotationsBetweenPairs recovers the rotation matrix R for every target pair
// (toV1[i], toV2[i]) such that toV1[i] ~ R*fromV1 and toV2[i] ~ R*fromV2,
// sharing a single reference pair (fromV1, fromV2). All vectors must be 3D;
// toV1 and toV2 must pair up row for row.
//
// The recovery runs in two stages per entry. First the plane spanned by the
// from pair is rotated onto the target plane about the common axis of the two
// plane normals; a degenerate target normal (collinear or zero pair) falls
// back to fromV1 x toV1, then fromV2 x toV2, and an exactly aligned pair of
// planes skips the stage entirely (identity). Second, the residual in-plane
// angle is the average of the two alignment angles, negated when the rotation
// sense opposes the target plane normal so the shorter rotation wins. The
// result per entry is R2*R1.
//
// Degenerate geometry never fails; the fallback chain always yields a defined
// matrix. Mismatched input shapes return *ErrShapeMismatch and non-3D rows
// return *ErrInvalidDimension.
func RotationsBetweenPairs(fromV1, fromV2 []float64, toV1, toV2 [][]float64) ([]*mat.Dense, error) {
	if len(fromV1) != 3 {
		return nil, &ErrInvalidDimension{Dimension: len(fromV1)}
	}
	if len(fromV2) != 3 {
		return nil, &ErrInvalidDimension{Dimension: len(fromV2)}
	}
	if err := checkSameShape(toV1, toV2); err != nil {
		return nil, err
	}
	for i := range toV1 {
		if len(toV1[i]) != 3 {
			return nil, &ErrInvalidDimension{Dimension: len(toV1[i])}
		}
	}

	f1 := toVec3(fromV1)
	f2 := toVec3(fromV2)
	normalFrom := r3.Cross(f1, f2)

	out := make([]*mat.Dense, len(toV1))
	for i := range toV1 {
		t1 := toVec3(toV1[i])
		t2 := toVec3(toV2[i])

		normalTo := r3.Cross(t1, t2)

		// The common axis uses the raw target normal, before any
		// degeneracy substitution.
		commonAxis := r3.Cross(normalFrom, normalTo)

		if sumAbs(normalTo) <= degenerateTol {
			normalTo = r3.Cross(f1, t1)
		}
		if sumAbs(normalTo) <= degenerateTol {
			normalTo = r3.Cross(f2, t2)
		}

		normalTo = unitOrZero(normalTo)
		commonAxis = unitOrZero(commonAxis)

		// Stage one: align the from-plane with the target plane. An
		// exactly zero common axis means the planes are already
		// (anti-)aligned and the stage is skipped.
		var r1 *mat.Dense
		if sumAbs(commonAxis) <= degenerateTol {
			r1 = eye3()
		} else {
			r1 = rotationFromUnitAxis(commonAxis, angleBetweenVec3(normalFrom, normalTo))
		}

		rf1 := mulVec3(r1, f1)
		rf2 := mulVec3(r1, f2)

		// Stage two: in-plane alignment by the least-squares angle
		// split between the two rotated from-vectors and their
		// targets.
		angle := 0.5 * (angleBetweenVec3(rf1, t1) + angleBetweenVec3(rf2, t2))
		if r3.Dot(r3.Cross(rf1, t1), normalTo) < 0 {
			angle = -angle
		}

		r2 := rotationFromUnitAxis(normalTo, angle)

		var r mat.Dense
		r.Mul(r2, r1)
		out[i] = &r
	}
	return out, nil
}

// RotationAboutAxis returns the 3x3 rotation matrix for a rotation of angle
// radians about axis. A non-unit axis is normalized first; a zero axis
// yields the degenerate matrix cos(angle)*I.
func RotationAboutAxis(axis []float64, angle float64) (*mat.Dense, error) {
	if len(axis) != 3 {
		return nil, &ErrInvalidDimension{Dimension: len(axis)}
	}
	return rotationFromUnitAxis(unitOrZero(toVec3(axis)), angle), nil
}

// rotationFromUnitAxis builds the axis-angle rotation matrix for a unit
// axis. A zero axis produces cos(angle)*I; callers mask degenerate entries
// to the identity upstream where that matters.
func rotationFromUnitAxis(axis r3.Vec, angle float64) *mat.Dense {
	x, y, z := axis.X, axis.Y, axis.Z
	c := math.Cos(angle)
	s := math.Sin(angle)
	cc := 1 - c

	return mat.NewDense(3, 3, []float64{
		x*x*cc + c, x*y*cc - z*s, z*x*cc + y*s,
		x*y*cc + z*s, y*y*cc + c, y*z*cc - x*s,
		z*x*cc - y*s, y*z*cc + x*s, z*z*cc + c,
	})
}

func angleBetweenVec3(a, b r3.Vec) float64 {
	denom := r3.Norm(a) * r3.Norm(b)
	if denom == 0 {
		return 0
	}

	cos := r3.Dot(a, b) / denom
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}

func unitOrZero(v r3.Vec) r3.Vec {
	n := r3.Norm(v)
	if n == 0 {
		return v
	}
	return r3.Scale(1/n, v)
}

func sumAbs(v r3.Vec) float64 {
	return math.Abs(v.X) + math.Abs(v.Y) + math.Abs(v.Z)
}

func toVec3(v []float64) r3.Vec {
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}
}

func mulVec3(m *mat.Dense, v r3.Vec) r3.Vec {
	return r3.Vec{
		X: m.At(0, 0)*v.X + m.At(0, 1)*v.Y + m.At(0, 2)*v.Z,
		Y: m.At(1, 0)*v.X + m.At(1, 1)*v.Y + m.At(1, 2)*v.Z,
		Z: m.At(2, 0)*v.X + m.At(2, 1)*v.Y + m.At(2, 2)*v.Z,
	}
}

func eye3() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
}
