package buffer

import "sync"

// Pool recycles Buffers so block-sized scratch space can be reused across
// calls without reallocating.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Buffer{}
			},
		},
	}
}

// Get returns a zeroed Buffer of the requested length. Return it with Put.
func (p *Pool) Get(length int) *Buffer {
	return p.GetFilled(length, 0)
}

// GetFilled returns a Buffer of the requested length with every sample set
// to v. Filling with a value a kernel never produces, such as MinSample for
// Abs, makes samples the kernel did not write easy to spot.
func (p *Pool) GetFilled(length int, v int16) *Buffer {
	b := p.pool.Get().(*Buffer)
	b.Resize(length)
	b.Fill(v)
	return b
}

// Put returns b to the pool. b must not be used afterwards.
func (p *Pool) Put(b *Buffer) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}
