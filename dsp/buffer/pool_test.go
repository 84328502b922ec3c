package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoolGetReturnsZeroed(t *testing.T) {
	p := NewPool()

	b := p.Get(8)
	assert.Equal(t, make([]int16, 8), b.Samples())
	p.Put(b)
}

func TestPoolReuseIsZeroed(t *testing.T) {
	p := NewPool()

	b := p.Get(4)
	b.Fill(42)
	p.Put(b)

	b2 := p.Get(4)
	assert.Equal(t, make([]int16, 4), b2.Samples())
	p.Put(b2)
}

func TestPoolGetFilled(t *testing.T) {
	p := NewPool()

	b := p.Get(6)
	p.Put(b)

	b = p.GetFilled(3, -32768)
	assert.Equal(t, []int16{-32768, -32768, -32768}, b.Samples())

	b.Resize(5)
	assert.Equal(t, []int16{-32768, -32768, -32768, 0, 0}, b.Samples())
	p.Put(b)

	assert.Equal(t, 0, p.GetFilled(-1, 9).Len())
}

func TestPoolPutNilSafe(_ *testing.T) {
	p := NewPool()
	p.Put(nil)
}
