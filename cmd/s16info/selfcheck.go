package main

import (
	"github.com/cwbudde/algo-s16/dsp/buffer"
	"github.com/cwbudde/algo-s16/dsp/fixed"
	"github.com/cwbudde/algo-s16/internal/kernels/generic"
	"github.com/cwbudde/algo-s16/internal/kernels/packed"
	"github.com/cwbudde/algo-s16/internal/kernels/registry"
	"github.com/cwbudde/algo-s16/internal/siggen"
)

type mismatch struct {
	op        string
	order     fixed.Order
	blockSize int
	index     int
	want, got int16
}

type checkBuffers struct {
	a, b, out []int16
}

type checkOp struct {
	name string
	run  func(e *registry.OpEntry, in *checkBuffers, n int)
}

var checkOps = []checkOp{
	{"fill", func(e *registry.OpEntry, in *checkBuffers, n int) { e.Fill(-1234, in.out, n) }},
	{"copy", func(e *registry.OpEntry, in *checkBuffers, n int) { e.Copy(in.a, in.out, n) }},
	{"add", func(e *registry.OpEntry, in *checkBuffers, n int) { e.Add(in.a, in.b, in.out, n) }},
	{"sub", func(e *registry.OpEntry, in *checkBuffers, n int) { e.Sub(in.a, in.b, in.out, n) }},
	{"abs", func(e *registry.OpEntry, in *checkBuffers, n int) { e.Abs(in.a, in.out, n) }},
	{"shl3", func(e *registry.OpEntry, in *checkBuffers, n int) { e.Shift(in.a, 3, in.out, n) }},
	{"shr5", func(e *registry.OpEntry, in *checkBuffers, n int) { e.Shift(in.a, -5, in.out, n) }},
	{"mean", func(e *registry.OpEntry, in *checkBuffers, n int) {
		if len(in.out) > 0 {
			in.out[0] = e.Mean(in.a, n)
		}
	}},
	{"transpose", func(e *registry.OpEntry, in *checkBuffers, n int) {
		rows, cols := transposeShape(n)
		e.Transpose(in.a, rows, cols, in.out)
	}},
}

// transposeShape picks a rows x cols shape covering n samples with a
// column count that exercises the packed remainder.
func transposeShape(n int) (rows, cols int) {
	for _, c := range []int{7, 5, 3, 2} {
		if n%c == 0 && n >= c {
			return n / c, c
		}
	}
	return 1, n
}

// runSelfCheck compares the packed kernels under both byte orders against
// the generic kernels for every op and block size.
func runSelfCheck(sizes []int, seed int64) []mismatch {
	ref := generic.Entry()
	pool := buffer.NewPool()

	var mismatches []mismatch
	for _, order := range []fixed.Order{fixed.LittleEndian, fixed.BigEndian} {
		candidate := packed.New(order).Entry()

		for _, n := range sizes {
			a := siggen.EdgeMix(seed, n)
			b := siggen.DeterministicNoise(seed+1, n)

			for _, op := range checkOps {
				want := loadBuffers(pool, a, b, n)
				got := loadBuffers(pool, a, b, n)

				op.run(&ref, want.view(), n)
				op.run(&candidate, got.view(), n)

				w, g := want.out.Samples(), got.out.Samples()
				if i := guardOverwrite(g, max(n, 1)); i >= 0 {
					mismatches = append(mismatches, mismatch{
						op: op.name + "/guard", order: order, blockSize: n,
						index: i, want: guardValue, got: g[i],
					})
				}
				for i := range w {
					if w[i] != g[i] {
						mismatches = append(mismatches, mismatch{
							op: op.name, order: order, blockSize: n,
							index: i, want: w[i], got: g[i],
						})
						break
					}
				}

				want.release(pool)
				got.release(pool)
			}
		}
	}
	return mismatches
}

// guardSamples past the block are filled with guardValue; no kernel may
// touch them.
const (
	guardSamples       = 4
	guardValue   int16 = 0x5a5a
)

// guardOverwrite returns the index of the first sample at or after n that no
// longer holds guardValue, or -1.
func guardOverwrite(s []int16, n int) int {
	for i := n; i < len(s); i++ {
		if s[i] != guardValue {
			return i
		}
	}
	return -1
}

type pooledBuffers struct {
	a, b, out *buffer.Buffer
}

func loadBuffers(pool *buffer.Pool, a, b []int16, n int) pooledBuffers {
	p := pooledBuffers{a: pool.Get(n), b: pool.Get(n), out: pool.GetFilled(max(n, 1)+guardSamples, guardValue)}
	p.a.Load(a)
	p.b.Load(b)
	return p
}

func (p pooledBuffers) view() *checkBuffers {
	out := p.out.Samples()
	return &checkBuffers{a: p.a.Samples(), b: p.b.Samples(), out: out[:len(out)-guardSamples]}
}

func (p pooledBuffers) release(pool *buffer.Pool) {
	pool.Put(p.a)
	pool.Put(p.b)
	pool.Put(p.out)
}
