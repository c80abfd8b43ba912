package linkptr

import "github.com/google/btree"

// Set is an ordered set of handles keyed by the address order of their
// targets, so two handles sharing one object occupy one slot. The set
// stores the given *Ptr values themselves; it does not clone them.
type Set[T any] struct {
	tree *btree.BTreeG[*Ptr[T]]
}

// NewSet returns an empty ordered handle set.
func NewSet[T any]() *Set[T] {
	return &Set[T]{
		tree: btree.NewG(2, func(a, b *Ptr[T]) bool { return a.Less(b) }),
	}
}

// Insert adds p to the set, replacing an existing handle to the same
// object. It reports whether the set grew.
func (s *Set[T]) Insert(p *Ptr[T]) bool {
	_, replaced := s.tree.ReplaceOrInsert(p)
	return !replaced
}

// Has reports whether the set holds a handle to the same object as p.
func (s *Set[T]) Has(p *Ptr[T]) bool {
	_, ok := s.tree.Get(p)
	return ok
}

// Delete removes the handle to p's object, reporting whether one was held.
func (s *Set[T]) Delete(p *Ptr[T]) bool {
	_, ok := s.tree.Delete(p)
	return ok
}

// Len returns the number of distinct objects held.
func (s *Set[T]) Len() int {
	return s.tree.Len()
}

// Ascend visits the handles in ascending address order until fn returns
// false.
func (s *Set[T]) Ascend(fn func(p *Ptr[T]) bool) {
	s.tree.Ascend(fn)
}
