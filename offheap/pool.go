package offheap

import (
	"math"
	"sync"
	"unsafe"
)

// Pool is a typed slot allocator backed by mmap arenas.
// user -> Alloc -> free list or mallocSlot -> user
// user -> Free -> free list -> user
//
// Slots live outside the Go heap, so freeing is a real, observable event:
// a freed slot is threaded onto the pool's free list and handed out again
// by a later Alloc. For the same reason a slot must not hold the only
// reference to a garbage-collected object.
//
// A Pool is safe for use by multiple goroutines. A Pool must not be copied
// after Init.
type Pool[T any] struct {
	slotSize     uintptr
	slotsLimit   int32
	perArenaSize int

	mu           sync.Mutex
	currentArena *arena
	arenas       []*arena
	freeHead     uintptr // LIFO of freed slots, next pointer threaded in-slot
	activeSlots  int32
	closed       bool
}

// Init sizes the pool for values of type T. slotsLimit caps the number of
// simultaneously active slots; -1 means no cap.
func (p *Pool[T]) Init(slotsLimit int32) error {
	const ptrSize = unsafe.Sizeof(uintptr(0))

	p.slotSize = unsafe.Sizeof(*new(T))
	if p.slotSize < ptrSize {
		// the free list threads a next pointer through freed slots
		p.slotSize = ptrSize
	}
	p.slotSize = (p.slotSize + ptrSize - 1) &^ (ptrSize - 1)

	p.slotsLimit = slotsLimit
	if slotsLimit == -1 {
		p.perArenaSize = 1024 * int(p.slotSize)
	} else {
		p.perArenaSize = int(math.Ceil(float64(slotsLimit)/float64(16))) * int(p.slotSize)
	}

	return p.growArenas()
}

func (p *Pool[T]) growArenas() error {
	a, err := allocArena(p.perArenaSize)
	if err != nil {
		return err
	}
	p.arenas = append(p.arenas, a)
	p.currentArena = a
	return nil
}

// mallocSlot bump-allocates one slot, growing by a whole arena when the
// current one is exhausted. Caller holds p.mu.
func (p *Pool[T]) mallocSlot() (uintptr, error) {
	end := p.currentArena.addrStart + p.slotSize
	if end > p.currentArena.addrEnd {
		if err := p.growArenas(); err != nil {
			return 0, err
		}
		end = p.currentArena.addrStart + p.slotSize
	}
	p.currentArena.addrStart = end
	return end - p.slotSize, nil
}

// Alloc returns a zeroed slot, recycling freed slots before touching fresh
// arena memory.
func (p *Pool[T]) Alloc() (*T, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, ErrPoolClosed
	}
	if p.slotsLimit != -1 && p.activeSlots >= p.slotsLimit {
		return nil, ErrAllocOutOfLimit
	}

	u := p.freeHead
	if u != 0 {
		p.freeHead = *(*uintptr)(unsafe.Pointer(u))
	} else {
		var err error
		u, err = p.mallocSlot()
		if err != nil {
			return nil, err
		}
	}
	p.activeSlots++

	s := unsafe.Slice((*byte)(unsafe.Pointer(u)), p.slotSize)
	for i := range s {
		s[i] = 0
	}
	return (*T)(unsafe.Pointer(u)), nil
}

// Free returns v's slot to the free list. v must have come from this pool
// and must not be used afterwards.
func (p *Pool[T]) Free(v *T) {
	if v == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	u := uintptr(unsafe.Pointer(v))
	*(*uintptr)(unsafe.Pointer(u)) = p.freeHead
	p.freeHead = u
	p.activeSlots--
}

// Active returns the number of slots currently allocated and not freed.
func (p *Pool[T]) Active() int32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.activeSlots
}

// Close unmaps every arena. All slots become invalid.
func (p *Pool[T]) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	p.freeHead = 0
	p.currentArena = nil
	var firstErr error
	for _, a := range p.arenas {
		if err := a.release(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	p.arenas = nil
	return firstErr
}
