package core

import "testing"

func TestEnsureLenReuse(t *testing.T) {
	buf := make([]int16, 4, 8)

	out := EnsureLen(buf, 6)
	if len(out) != 6 {
		t.Fatalf("len = %d, want 6", len(out))
	}

	if cap(out) != cap(buf) {
		t.Fatalf("cap = %d, want %d", cap(out), cap(buf))
	}
}

func TestEnsureLenGrow(t *testing.T) {
	out := EnsureLen(make([]int16, 2), 5)
	if len(out) != 5 {
		t.Fatalf("len = %d, want 5", len(out))
	}
}

func TestEnsureLenNonPositive(t *testing.T) {
	if out := EnsureLen(make([]int16, 3), 0); len(out) != 0 {
		t.Fatalf("len = %d, want 0", len(out))
	}
}

func TestCopyInto(t *testing.T) {
	dst := make([]int16, 2)
	n := CopyInto(dst, []int16{7, 8, 9})
	if n != 2 {
		t.Fatalf("copied = %d, want 2", n)
	}
	if dst[0] != 7 || dst[1] != 8 {
		t.Fatalf("dst = %v, want [7 8]", dst)
	}
}

func TestZero(t *testing.T) {
	buf := []int16{1, -2, 3}
	Zero(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("buf[%d] = %d, want 0", i, v)
		}
	}
}
