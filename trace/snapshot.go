// Package trace: deep-copy snapshot helpers for step emission.

package trace

import (
	"github.com/katalvlaran/linsteps/field"
	"github.com/katalvlaran/linsteps/rational"
)

// Snapshot deep-copies a working [][]T matrix into the two step views:
// the float display matrix (always present) and the exact rational matrix
// (nil unless the field carries exact values). Both views derive from the
// same source elements in the same pass, so they can never diverge.
//
// Determinism: fixed i→j traversal.
// Complexity: O(r·c) time and space.
func Snapshot[T any](f field.Field[T], m [][]T) ([][]float64, [][]rational.Rational) {
	if len(m) == 0 {
		return nil, nil
	}

	// Probe once whether this field has an exact view.
	_, exact := f.Rat(f.Zero())

	fm := make([][]float64, len(m))
	var rm [][]rational.Rational
	if exact {
		rm = make([][]rational.Rational, len(m))
	}

	var i, j int
	for i = 0; i < len(m); i++ {
		fm[i] = make([]float64, len(m[i]))
		if exact {
			rm[i] = make([]rational.Rational, len(m[i]))
		}
		for j = 0; j < len(m[i]); j++ {
			fm[i][j] = f.Float(m[i][j])
			if exact {
				rm[i][j], _ = f.Rat(m[i][j])
			}
		}
	}

	return fm, rm
}

// SnapshotVec deep-copies a working []T vector into its float view plus,
// for exact fields, its rational view (nil otherwise).
// Complexity: O(n).
func SnapshotVec[T any](f field.Field[T], v []T) ([]float64, []rational.Rational) {
	if len(v) == 0 {
		return nil, nil
	}

	_, exact := f.Rat(f.Zero())

	fv := make([]float64, len(v))
	var rv []rational.Rational
	if exact {
		rv = make([]rational.Rational, len(v))
	}
	for i := 0; i < len(v); i++ {
		fv[i] = f.Float(v[i])
		if exact {
			rv[i], _ = f.Rat(v[i])
		}
	}

	return fv, rv
}
