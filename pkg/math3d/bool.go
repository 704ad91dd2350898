package math3d

import "strings"

// Boolean vectors and matrices hold per-component truth values. They carry no
// arithmetic: bool is outside the Number set.

// BVec2 is a 2-component boolean vector.
type BVec2 [2]bool

// BVec3 is a 3-component boolean vector.
type BVec3 [3]bool

// BVec4 is a 4-component boolean vector.
type BVec4 [4]bool

// Any reports whether any component is true.
func (v BVec2) Any() bool { return anyTrue(v[:]) }

// All reports whether every component is true.
func (v BVec2) All() bool { return allTrue(v[:]) }

// Not returns the component-wise negation.
func (v BVec2) Not() BVec2 { return BVec2{!v[0], !v[1]} }

// Any reports whether any component is true.
func (v BVec3) Any() bool { return anyTrue(v[:]) }

// All reports whether every component is true.
func (v BVec3) All() bool { return allTrue(v[:]) }

// Not returns the component-wise negation.
func (v BVec3) Not() BVec3 { return BVec3{!v[0], !v[1], !v[2]} }

// Any reports whether any component is true.
func (v BVec4) Any() bool { return anyTrue(v[:]) }

// All reports whether every component is true.
func (v BVec4) All() bool { return allTrue(v[:]) }

// Not returns the component-wise negation.
func (v BVec4) Not() BVec4 { return BVec4{!v[0], !v[1], !v[2], !v[3]} }

// BMat2 is a 2x2 boolean matrix in row-major order.
type BMat2 [4]bool

// BMat3 is a 3x3 boolean matrix in row-major order.
type BMat3 [9]bool

// BMat4 is a 4x4 boolean matrix in row-major order.
type BMat4 [16]bool

// BIdentity2 returns a BMat2 with true on the diagonal.
func BIdentity2() BMat2 {
	var m BMat2
	boolIdentity(m[:], 2)
	return m
}

// BIdentity3 returns a BMat3 with true on the diagonal.
func BIdentity3() BMat3 {
	var m BMat3
	boolIdentity(m[:], 3)
	return m
}

// BIdentity4 returns a BMat4 with true on the diagonal.
func BIdentity4() BMat4 {
	var m BMat4
	boolIdentity(m[:], 4)
	return m
}

func (m BMat2) At(row, col int) bool      { return m[row*2+col] }
func (m *BMat2) Set(row, col int, v bool) { m[row*2+col] = v }
func (m BMat3) At(row, col int) bool      { return m[row*3+col] }
func (m *BMat3) Set(row, col int, v bool) { m[row*3+col] = v }
func (m BMat4) At(row, col int) bool      { return m[row*4+col] }
func (m *BMat4) Set(row, col int, v bool) { m[row*4+col] = v }

// Any reports whether any element is true.
func (m BMat2) Any() bool { return anyTrue(m[:]) }

// All reports whether every element is true.
func (m BMat2) All() bool { return allTrue(m[:]) }

// Not returns the element-wise negation.
func (m BMat2) Not() BMat2 {
	notInto(m[:])
	return m
}

func (m BMat3) Any() bool { return anyTrue(m[:]) }
func (m BMat3) All() bool { return allTrue(m[:]) }

func (m BMat3) Not() BMat3 {
	notInto(m[:])
	return m
}

func (m BMat4) Any() bool { return anyTrue(m[:]) }
func (m BMat4) All() bool { return allTrue(m[:]) }

func (m BMat4) Not() BMat4 {
	notInto(m[:])
	return m
}

func (m BMat2) String() string { return formatBoolRows(m[:], 2) }
func (m BMat3) String() string { return formatBoolRows(m[:], 3) }
func (m BMat4) String() string { return formatBoolRows(m[:], 4) }

func anyTrue(v []bool) bool {
	for _, b := range v {
		if b {
			return true
		}
	}
	return false
}

func allTrue(v []bool) bool {
	for _, b := range v {
		if !b {
			return false
		}
	}
	return true
}

func notInto(v []bool) {
	for i := range v {
		v[i] = !v[i]
	}
}

func boolIdentity(dst []bool, n int) {
	for i := range n {
		dst[i*n+i] = true
	}
}

func formatBoolRows(m []bool, n int) string {
	var sb strings.Builder
	for r := range n {
		sb.WriteString("|")
		for c := range n {
			if m[r*n+c] {
				sb.WriteString(" 1")
			} else {
				sb.WriteString(" 0")
			}
		}
		sb.WriteString(" |\n")
	}
	return sb.String()
}

// Equal reports whether v and rhs match component for component.
func (v BVec2) Equal(rhs BVec2) bool { return v == rhs }

// Equal reports whether v and rhs match component for component.
func (v BVec3) Equal(rhs BVec3) bool { return v == rhs }

// Equal reports whether v and rhs match component for component.
func (v BVec4) Equal(rhs BVec4) bool { return v == rhs }

func (m BMat2) Equal(rhs BMat2) bool { return m == rhs }
func (m BMat3) Equal(rhs BMat3) bool { return m == rhs }
func (m BMat4) Equal(rhs BMat4) bool { return m == rhs }
