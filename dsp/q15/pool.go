package q15

import "sync"

// Pool provides sync.Pool-based buffer storage reuse, the explicit
// acquire/release pair for callers that manage buffer lifetime per audio
// block. Get zero-fills the returned buffer; Put releases its storage for
// reuse. Putting a buffer that was not produced by Get on the same pool
// (a FromSlice wrapper or a Sub view) is a contract violation: the
// storage may be handed to an unrelated Get while still aliased.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				s := make([]int16, 0)
				return &s
			},
		},
	}
}

// Get returns a zero-filled Buffer with the requested length.
// Callers must release it via Put exactly once when done.
func (p *Pool) Get(length int) Buffer {
	if length < 0 {
		length = 0
	}
	sp := p.pool.Get().(*[]int16)
	s := *sp
	if cap(s) >= length {
		s = s[:length]
	} else {
		s = make([]int16, length)
	}
	b := Buffer{samples: s}
	b.Clear()
	return b
}

// Put returns a buffer's storage to the pool for reuse.
// The caller must not use the buffer, or any view of it, after Put.
func (p *Pool) Put(b Buffer) {
	if b.samples == nil {
		return
	}
	s := b.samples
	p.pool.Put(&s)
}
