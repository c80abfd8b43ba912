package offheap

import "errors"

var (
	ErrAllocOutOfLimit = errors.New("alloc slot out of limit")
	ErrMmap            = errors.New("mmap error")
	ErrPoolClosed      = errors.New("pool closed")
)
