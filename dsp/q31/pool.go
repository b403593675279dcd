package q31

import "sync"

// Pool provides sync.Pool-based buffer storage reuse with the same
// acquire/release contract as the q15 pool: Put only what Get produced,
// exactly once.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				s := make([]int32, 0)
				return &s
			},
		},
	}
}

// Get returns a zero-filled Buffer with the requested length.
func (p *Pool) Get(length int) Buffer {
	if length < 0 {
		length = 0
	}
	sp := p.pool.Get().(*[]int32)
	s := *sp
	if cap(s) >= length {
		s = s[:length]
	} else {
		s = make([]int32, length)
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
