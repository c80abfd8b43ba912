package linkptr

import "unsafe"

// addr returns the address of the underlying object as the data word of the
// target's interface header, the trick sync.Pool uses for its race hashes.
// For a pointer target this is the pointer itself; for an interface target
// it is the concrete pointer inside, so handles related by Convert agree on
// the address. Empty handles yield 0.
func (p *Ptr[T]) addr() uintptr {
	var v any = p.res
	return uintptr((*[2]unsafe.Pointer)(unsafe.Pointer(&v))[1])
}

// Equal reports whether p and o refer to the same underlying object.
func (p *Ptr[T]) Equal(o *Ptr[T]) bool {
	return p.addr() == o.addr()
}

// Less orders handles by the address of the underlying object. The order is
// total and consistent with Equal, which is what an ordered container
// needs; it carries no meaning beyond identity and is not stable across
// process runs.
func (p *Ptr[T]) Less(o *Ptr[T]) bool {
	return p.addr() < o.addr()
}

// Equal reports whether two handles of different target types refer to the
// same underlying object, comparing by address.
func Equal[T, Y any](a *Ptr[T], b *Ptr[Y]) bool {
	return a.addr() == b.addr()
}

// Less orders two handles of different target types by object address.
func Less[T, Y any](a *Ptr[T], b *Ptr[Y]) bool {
	return a.addr() < b.addr()
}

// Compare three-way compares two handles by object address: -1 if a orders
// before b, 0 if they refer to the same object, +1 otherwise.
func Compare[T, Y any](a *Ptr[T], b *Ptr[Y]) int {
	switch x, y := a.addr(), b.addr(); {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}
