package offheap

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// arena is one anonymous mmap region. Slots are bump-allocated from
// addrStart toward addrEnd; the region is invisible to the garbage
// collector.
type arena struct {
	bytes     []byte
	addrStart uintptr
	addrEnd   uintptr
}

func allocArena(size int) (*arena, error) {
	bytes, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, ErrMmap
	}
	a := &arena{bytes: bytes}
	a.addrStart = uintptr(unsafe.Pointer(&bytes[0]))
	a.addrEnd = a.addrStart + uintptr(size)
	return a, nil
}

func (a *arena) release() error {
	return unix.Munmap(a.bytes)
}
