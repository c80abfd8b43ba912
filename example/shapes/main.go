// Command shapes walks the linkptr API end to end: sharing, polymorphic
// conversion, swap chains across two circles, and offheap-backed disposal.
package main

import (
	"fmt"
	"os"

	"github.com/solopkg/linkptr"
	"github.com/solopkg/linkptr/offheap"
)

type shape interface {
	area() float64
}

type rect struct {
	w, h float64
}

func (r *rect) area() float64 { return r.w * r.h }

type square struct {
	rect
}

func newSquare(side float64) *square {
	return &square{rect: rect{w: side, h: side}}
}

type texture struct {
	pool *offheap.Pool[texture]
	name [16]byte
}

func (t *texture) Dispose() { t.pool.Free(t) }

func check(name string, ok bool) {
	if !ok {
		fmt.Fprintln(os.Stderr, name, "failed")
		os.Exit(1)
	}
	fmt.Println(name, "ok")
}

func sharing() bool {
	p1 := linkptr.New(&rect{w: 2, h: 2})
	p2 := linkptr.New(&rect{w: 2, h: 2})
	p3 := p1.Clone()

	ok := p2.Unique() && !p1.Unique() && p1.Equal(p3)
	p1.Release()
	ok = ok && p3.Unique() && p3.Get().area() == 4
	p2.Release()
	p3.Release()
	return ok
}

func polymorphic() bool {
	sq := linkptr.New(newSquare(3))
	sh := linkptr.Convert[shape](sq)

	ok := !sq.Unique() && !sh.Unique() && sh.Get().area() == 9
	sq.Release()
	sh.Release()
	return ok
}

func swapChains() bool {
	disposedA, disposedB := false, false
	ra := &probe{flag: &disposedA}
	rb := &probe{flag: &disposedB}

	a1 := linkptr.New(ra)
	a2 := a1.Clone()
	a3 := a2.Clone()
	a4 := a3.Clone()
	b1 := linkptr.New(rb)
	b2 := b1.Clone()
	b3 := b2.Clone()
	b4 := b3.Clone()

	a2.Swap(b2)
	b3.Swap(a2)
	b1.Swap(a1)

	a3.Reset()
	b2.Reset()
	b1.Reset()
	a4.Reset()

	ok := disposedA && !disposedB
	for _, h := range []*linkptr.Ptr[*probe]{a1, a2, b3, b4} {
		h.Release()
	}
	return ok && disposedB
}

type probe struct {
	flag *bool
}

func (p *probe) Dispose() { *p.flag = true }

func offheapBacked() bool {
	var pool offheap.Pool[texture]
	if err := pool.Init(-1); err != nil {
		return false
	}
	defer pool.Close()

	t, err := pool.Alloc()
	if err != nil {
		return false
	}
	t.pool = &pool
	copy(t.name[:], "bricks")

	h1 := linkptr.New(t)
	h2 := h1.Clone()
	h1.Release()
	if pool.Active() != 1 {
		return false
	}
	h2.Release()
	return pool.Active() == 0
}

func main() {
	check("sharing", sharing())
	check("polymorphic", polymorphic())
	check("swap chains", swapChains())
	check("offheap", offheapBacked())
}
