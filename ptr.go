package linkptr

// Ptr is a shared-ownership handle. T is the target type itself and must be
// a pointer type (*Widget) or an interface type (Shape); the handle manages
// the object the target refers to. Handles sharing one object form one
// circle of Links, and the object is disposed when the last member resets.
//
// Handles are always used through *Ptr. new(Ptr[T]) and the zero value are
// valid empty handles. The embedded Link makes by-value copies a vet error;
// use Clone to share.
type Ptr[T any] struct {
	res  T
	link Link
}

// New returns a sole-owner handle adopting v. v must not already be owned
// by another handle family.
func New[T any](v T) *Ptr[T] {
	return &Ptr[T]{res: v}
}

// Clone returns a new handle sharing p's target; the new handle's node is
// spliced into p's circle.
func (p *Ptr[T]) Clone() *Ptr[T] {
	c := &Ptr[T]{res: p.res}
	c.link.InsertAfter(&p.link)
	return c
}

// Convert returns a handle of target type B sharing rhs's object: the
// converting copy across a type boundary. B is typically an interface that
// rhs's concrete pointer type satisfies, so method dispatch through the
// returned handle stays dynamic. Convert panics if a non-nil target does
// not satisfy B.
func Convert[B, T any](rhs *Ptr[T]) *Ptr[B] {
	c := &Ptr[B]{}
	if !rhs.IsNil() {
		b, ok := any(rhs.res).(B)
		if !ok {
			panic("linkptr: target does not satisfy destination type")
		}
		c.res = b
	}
	c.link.InsertAfter(&rhs.link)
	return c
}

// Get returns the target. No ownership moves; the caller must not retain
// the target past the life of the circle.
func (p *Ptr[T]) Get() T {
	return p.res
}

// Unique reports whether p is the sole owner of its target.
func (p *Ptr[T]) Unique() bool {
	return p.link.Unique()
}

// IsNil reports whether the handle holds no target.
func (p *Ptr[T]) IsNil() bool {
	return p.addr() == 0
}

// reset is the teardown protocol shared by Reset, ResetTo, Release and
// Assign: a handle that is the sole member of its circle at this moment
// disposes the target; any other handle only detaches its node, because the
// remaining members still own the target.
func (p *Ptr[T]) reset(v T) {
	if p.link.Unique() {
		p.dispose()
	} else {
		p.link.Erase()
	}
	p.res = v
}

func (p *Ptr[T]) dispose() {
	if p.addr() == 0 {
		return
	}
	if d, ok := any(p.res).(Disposer); ok {
		d.Dispose()
	}
}

// Reset detaches p from its circle, disposing the target if p was the sole
// owner, and leaves p empty and unique. Safe on an already-empty handle.
func (p *Ptr[T]) Reset() {
	var zero T
	p.reset(zero)
}

// ResetTo runs the reset protocol and then adopts v as sole owner.
func (p *Ptr[T]) ResetTo(v T) {
	p.reset(v)
}

// Release is Reset under the name owner teardown code expects. Go has no
// destructors; call Release (or Reset) when a handle goes out of use.
func (p *Ptr[T]) Release() {
	p.Reset()
}

// Assign makes p share rhs's target, releasing p's previous target first if
// p was its sole owner.
//
// The original formulation of assignment referenced a joining step that is
// not expressible through the public surface; this implements the
// unambiguous sequence instead: reset protocol, then join rhs's circle as a
// copy would.
func (p *Ptr[T]) Assign(rhs *Ptr[T]) {
	if p == rhs {
		return
	}
	p.reset(rhs.res)
	p.link.InsertAfter(&rhs.link)
}

// Swap exchanges the targets and circle memberships of p and other. A swap
// of two handles already sharing one target is a no-op.
func (p *Ptr[T]) Swap(other *Ptr[T]) {
	if p.addr() == other.addr() {
		return
	}
	p.link.Swap(&other.link)
	p.res, other.res = other.res, p.res
}
