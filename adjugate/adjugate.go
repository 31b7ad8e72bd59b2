package adjugate

import (
	"fmt"

	"github.com/katalvlaran/linsteps/cofactor"
	"github.com/katalvlaran/linsteps/field"
	"github.com/katalvlaran/linsteps/matrix"
	"github.com/katalvlaran/linsteps/trace"
)

// Inverse computes A⁻¹ = adj(A) / det(A) with a complete step trace.
//
// Implementation:
//   - Stage 1: Validate m square; record the input matrix.
//   - Stage 2: Compute det(A) by cofactor expansion; the expansion's trace
//     is merged in, relabeled and indented one level. det = 0 classifies
//     the matrix as non-invertible and ends the run with an explanatory step.
//   - Stage 3: Build the cofactor matrix C, one traced step per entry plus
//     the merged expansion of each minor:
//     C[i][j] = (−1)^(i+j) · det(minor(A, i, j)).
//   - Stage 4: Transpose C into the adjugate, divide by det(A).
//   - Stage 5: Verify A·A⁻¹ against the identity and record the outcome.
//     The check is informational only; it never changes the result.
//
// Inputs:
//   - f: numeric adapter (field.Real or field.Exact).
//   - m: square matrix (n×n).
//
// Returns:
//   - Result[T]: steps, determinant, adjugate, inverse, the Invertible
//     classification and the Verified self-check outcome.
//   - error    : shape sentinels wrapped with "Inverse".
//
// Determinism:
//   - Fixed row-major cofactor order; identical inputs replay identically.
//
// Complexity:
//   - Time O(n²·n!) via cofactor determinants, Space O(n²) per snapshot.
func Inverse[T any](f field.Field[T], m [][]T) (Result[T], error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return Result[T]{}, adjugateErrorf(opInverse, err)
	}

	n := len(m)
	rec := trace.NewRecorder()

	s := trace.NewStep(
		"Invert by adjugate",
		fmt.Sprintf("Invert the %d×%d matrix via A⁻¹ = adj(A) ÷ det(A): cofactors, transpose, then scale.", n, n),
	)
	s.Matrix, s.RatMatrix = trace.Snapshot(f, m)
	rec.Add(s)

	// Determinant first: it decides whether an inverse exists at all. The
	// expansion's own trace nests below, relabeled to contiguous ids.
	detRes, err := cofactor.Determinant(f, m)
	if err != nil {
		return Result[T]{}, adjugateErrorf(opInverse, err)
	}
	rec.Merge(detRes.Steps)
	det := detRes.Determinant

	s = trace.NewStep(
		"Compute determinant",
		fmt.Sprintf("det(A) = %s by cofactor expansion.", f.Format(det)),
	)
	s.HasPivot = true
	s.PivotValue = f.Float(det)
	s.PivotRat, _ = f.Rat(det)
	s.Matrix, s.RatMatrix = trace.Snapshot(f, m)
	rec.Add(s)

	if f.IsZero(det) {
		s = trace.NewStep(
			"Not invertible",
			"det(A) = 0: a singular matrix has no inverse, the run stops here.",
		)
		s.Matrix, s.RatMatrix = trace.Snapshot(f, m)
		rec.Add(s)

		return Result[T]{Steps: rec.Steps(), Determinant: det, Invertible: false}, nil
	}

	var adj, inv [][]T
	if n == 1 {
		// adj([a]) = [1], so the inverse is simply [1/a].
		adj = [][]T{{f.One()}}
		entry, _ := f.Div(f.One(), det)
		inv = [][]T{{entry}}
		s = trace.NewStep(
			"Invert 1×1 matrix",
			fmt.Sprintf("A⁻¹ = [1 ÷ %s] = [%s].", f.Format(det), f.Format(entry)),
		)
		s.Matrix, s.RatMatrix = trace.Snapshot(f, inv)
		rec.Add(s)
	} else {
		cof, err := cofactorMatrix(f, m, rec)
		if err != nil {
			return Result[T]{}, adjugateErrorf(opInverse, err)
		}

		adj = matrix.Transpose(cof)
		s = trace.NewStep(
			"Transpose the cofactor matrix",
			"adj(A) = Cᵀ: the cofactor of row i, column j lands at row j, column i.",
		)
		s.Matrix, s.RatMatrix = trace.Snapshot(f, adj)
		rec.Add(s)

		inv = make([][]T, n)
		for i := 0; i < n; i++ {
			inv[i] = make([]T, n)
			for j := 0; j < n; j++ {
				// det verified nonzero above; Div cannot fail here.
				inv[i][j], _ = f.Div(adj[i][j], det)
			}
		}
		s = trace.NewStep(
			"Divide the adjugate by the determinant",
			fmt.Sprintf("A⁻¹ = adj(A) ÷ (%s), entry by entry.", f.Format(det)),
		)
		s.HasPivot = true
		s.PivotValue = f.Float(det)
		s.PivotRat, _ = f.Rat(det)
		s.Matrix, s.RatMatrix = trace.Snapshot(f, inv)
		rec.Add(s)
	}

	verified := verify(f, m, inv, rec)

	return Result[T]{
		Steps:       rec.Steps(),
		Determinant: det,
		Adjugate:    adj,
		Inverse:     inv,
		Invertible:  true,
		Verified:    verified,
	}, nil
}

// cofactorMatrix builds C with C[i][j] = (−1)^(i+j)·det(minor(A,i,j)) in
// row-major order. Each minor's determinant runs through the step-generating
// expansion engine; its trace is merged in below the cofactor's own step.
func cofactorMatrix[T any](f field.Field[T], m [][]T, rec *trace.Recorder) ([][]T, error) {
	n := len(m)
	cof := make([][]T, n)

	var (
		i, j  int
		md    T
		glyph string
	)
	for i = 0; i < n; i++ {
		cof[i] = make([]T, n)
		for j = 0; j < n; j++ {
			minor, err := matrix.Minor(m, i, j)
			if err != nil {
				return nil, err
			}
			sub, err := cofactor.Determinant(f, minor)
			if err != nil {
				return nil, err
			}
			rec.Merge(sub.Steps)
			md = sub.Determinant

			glyph = "+"
			cof[i][j] = md
			if (i+j)%2 == 1 {
				glyph = "−"
				cof[i][j] = f.Neg(md)
			}

			s := trace.NewStep(
				"Compute cofactor",
				fmt.Sprintf("C[%d][%d] = (%s1)·det(minor(%d,%d)) = %s1·(%s) = %s.",
					i+1, j+1, glyph, i+1, j+1, glyph, f.Format(md), f.Format(cof[i][j])),
			)
			s.ExcludedRow = i
			s.ExcludedCol = j
			s.HasPivot = true
			s.PivotValue = f.Float(cof[i][j])
			s.PivotRat, _ = f.Rat(cof[i][j])
			s.Matrix, s.RatMatrix = trace.Snapshot(f, minor)
			rec.Add(s)
		}
	}

	return cof, nil
}

// verify multiplies A by the computed inverse and records whether the
// product matches the identity under the field's zero test. Informational
// only: the inverse is never modified based on the outcome.
func verify[T any](f field.Field[T], m, inv [][]T, rec *trace.Recorder) bool {
	product, err := matrix.Mul(f, m, inv)
	if err != nil {
		return false // shapes are engine-built, this cannot happen
	}

	n := len(m)
	ok := true
	for i := 0; i < n && ok; i++ {
		for j := 0; j < n; j++ {
			expected := f.Zero()
			if i == j {
				expected = f.One()
			}
			if !f.IsZero(f.Sub(product[i][j], expected)) {
				ok = false
				break
			}
		}
	}

	verdict := "A·A⁻¹ matches the identity matrix."
	if !ok {
		verdict = "A·A⁻¹ deviates from the identity matrix beyond tolerance."
	}
	s := trace.NewStep("Verify the inverse", verdict)
	s.Matrix, s.RatMatrix = trace.Snapshot(f, product)
	rec.Add(s)

	return ok
}
