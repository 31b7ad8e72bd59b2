// Package cofactor: human-readable top-level expansion formula.

package cofactor

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linsteps/field"
	"github.com/katalvlaran/linsteps/matrix"
)

// formula renders the top-level expansion of m as one line: each nonzero
// term's literal entry value and its minor's determinant (computed via the
// traceless recursion), concatenated with correct cofactor signs, followed
// by the total. Only the outermost axis is expanded — nested minors appear
// as their evaluated determinants, which is what keeps the line readable.
// Complexity: dominated by the traceless determinants of the minors.
func formula[T any](f field.Field[T], m [][]T, total T) string {
	n := len(m)
	if n == 1 {
		return fmt.Sprintf("det(A) = %s", f.Format(m[0][0]))
	}
	if n == 2 {
		return fmt.Sprintf("det(A) = %s·%s − %s·%s = %s",
			f.Format(m[0][0]), f.Format(m[1][1]),
			f.Format(m[0][1]), f.Format(m[1][0]), f.Format(total))
	}

	axis, index, _ := selectAxis(f, m)

	var (
		terms       []string
		t, row, col int
		entry       T
	)
	for t = 0; t < n; t++ {
		if axis == AxisRow {
			row, col = index, t
		} else {
			row, col = t, index
		}
		entry = m[row][col]
		if f.IsZero(entry) {
			continue // zero terms vanish from the formula as well
		}
		sign := "+"
		if (row+col)%2 == 1 {
			sign = "−"
		}
		// Minor indices are in range by construction.
		sub, _ := matrix.Minor(m, row, col)
		terms = append(terms, fmt.Sprintf("%s(%s)·(%s)", sign, f.Format(entry), f.Format(det(f, sub))))
	}
	if len(terms) == 0 {
		// Entire axis is zero: the determinant vanishes outright.
		return fmt.Sprintf("det(A) = 0 (every entry of %s %d is zero)", axis, index+1)
	}

	return fmt.Sprintf("det(A) = %s = %s", strings.Join(terms, " "), f.Format(total))
}
