package math3d

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// The helpers below operate on row-major n×n storage and back every sized
// matrix type. Element (r, c) lives at index r*n + c.

func setIdentity[T Number](dst []T, n int) {
	for i := range dst {
		dst[i] = 0
	}
	for i := range n {
		dst[i*n+i] = 1
	}
}

func addInto[T Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func subInto[T Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func scaleInto[T Number](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] * s
	}
}

func divInto[T Number](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] / s
	}
}

// mulInto computes dst[r][c] = Σ_k a[r][k] * b[k][c].
// dst must not alias a or b.
func mulInto[T Number](dst, a, b []T, n int) {
	for r := range n {
		for c := range n {
			var sum T
			for k := range n {
				sum += a[r*n+k] * b[k*n+c]
			}
			dst[r*n+c] = sum
		}
	}
}

// mulVecInto computes dst[i] = Σ_j m[i][j] * v[j] (column vector on the right).
func mulVecInto[T Number](dst, m, v []T, n int) {
	for i := range n {
		var sum T
		for j := range n {
			sum += m[i*n+j] * v[j]
		}
		dst[i] = sum
	}
}

// rowMulInto computes dst[j] = Σ_i v[i] * m[i][j] (row vector on the left).
func rowMulInto[T Number](dst, v, m []T, n int) {
	for j := range n {
		var sum T
		for i := range n {
			sum += v[i] * m[i*n+j]
		}
		dst[j] = sum
	}
}

func outerInto[T Number](dst, a, b []T, n int) {
	for i := range n {
		for j := range n {
			dst[i*n+j] = a[i] * b[j]
		}
	}
}

func transposeInto[T Number](dst, a []T, n int) {
	for r := range n {
		for c := range n {
			dst[c*n+r] = a[r*n+c]
		}
	}
}

// formatElem renders v with a fixed number of decimals when prec >= 0 and v
// is a float. Integers, and floats with prec < 0, use the default %v form.
func formatElem[T Number](v T, prec int) string {
	if prec < 0 {
		return fmt.Sprint(v)
	}
	switch x := any(v).(type) {
	case float32:
		return strconv.FormatFloat(float64(x), 'f', prec, 32)
	case float64:
		return strconv.FormatFloat(x, 'f', prec, 64)
	default:
		return fmt.Sprint(v)
	}
}

// formatRows renders row-major storage as "| a b c |" lines.
func formatRows[T Number](m []T, n, prec int) string {
	var sb strings.Builder
	for r := range n {
		sb.WriteString("|")
		for c := range n {
			sb.WriteByte(' ')
			sb.WriteString(formatElem(m[r*n+c], prec))
		}
		sb.WriteString(" |\n")
	}
	return sb.String()
}

func fprintRows(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
