// Package stack provides the legacy push/pop matrix stack used to build
// hierarchical transforms.
//
// A stack always holds at least one matrix. The top is the current
// transform; Push saves it, Pop restores the saved copy. Stacks have no
// internal locking: a goroutine should own its stack.
package stack

import (
	"fmt"
	"io"
	"os"
)

// Matrix is the element type a MatrixStack can hold.
type Matrix[M any] interface {
	Mul(M) M
	fmt.Stringer
}

// MatrixStack is a LIFO of matrices whose top is the current transform.
type MatrixStack[M Matrix[M]] struct {
	identity M
	entries  []M
}

// New returns a stack of depth 1 whose top is identity.
func New[M Matrix[M]](identity M) *MatrixStack[M] {
	return NewFrom(identity, identity)
}

// NewFrom returns a stack of depth 1 whose top is initial. identity is the
// value LoadIdentity restores.
func NewFrom[M Matrix[M]](identity, initial M) *MatrixStack[M] {
	s := &MatrixStack[M]{identity: identity}
	s.entries = append(make([]M, 0, 8), initial)
	return s
}

// Push duplicates the top entry.
func (s *MatrixStack[M]) Push() {
	s.entries = append(s.entries, s.entries[len(s.entries)-1])
}

// Pop discards the top entry. Popping the last entry panics.
func (s *MatrixStack[M]) Pop() {
	if len(s.entries) == 1 {
		panic("stack: pop of last matrix")
	}
	s.entries = s.entries[:len(s.entries)-1]
}

// LoadIdentity replaces the top entry with the identity. Entries below the
// top are untouched.
func (s *MatrixStack[M]) LoadIdentity() {
	s.entries[len(s.entries)-1] = s.identity
}

// Load replaces the top entry with m.
func (s *MatrixStack[M]) Load(m M) {
	s.entries[len(s.entries)-1] = m
}

// Mul right-multiplies the top by m and returns the new top.
func (s *MatrixStack[M]) Mul(m M) M {
	top := &s.entries[len(s.entries)-1]
	*top = (*top).Mul(m)
	return *top
}

// Current returns a copy of the top entry.
func (s *MatrixStack[M]) Current() M {
	return s.entries[len(s.entries)-1]
}

// Depth returns the number of entries.
func (s *MatrixStack[M]) Depth() int {
	return len(s.entries)
}

// Fprint writes the top entry to w.
func (s *MatrixStack[M]) Fprint(w io.Writer) error {
	_, err := io.WriteString(w, s.Current().String())
	return err
}

// Print writes the top entry to stdout.
func (s *MatrixStack[M]) Print() {
	_ = s.Fprint(os.Stdout)
}
