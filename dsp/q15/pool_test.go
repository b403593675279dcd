package q15

import "testing"

func TestPoolGetZeroFilled(t *testing.T) {
	p := NewPool()
	b := p.Get(16)
	if b.Len() != 16 {
		t.Fatalf("Len() = %d, want 16", b.Len())
	}
	for i, v := range b.Samples() {
		if v != 0 {
			t.Fatalf("[%d] = %d, want 0", i, v)
		}
	}
	p.Put(b)
}

func TestPoolReuseClearsStaleData(t *testing.T) {
	p := NewPool()
	b := p.Get(8)
	b.Fill(-999)
	p.Put(b)

	// A subsequent Get of any size must come back zeroed even when the
	// pool hands the same storage out again.
	c := p.Get(8)
	for i, v := range c.Samples() {
		if v != 0 {
			t.Fatalf("[%d] = %d, want 0 after reuse", i, v)
		}
	}
	p.Put(c)
}

func TestPoolGrowsForLargerRequests(t *testing.T) {
	p := NewPool()
	small := p.Get(4)
	p.Put(small)
	big := p.Get(1024)
	if big.Len() != 1024 {
		t.Fatalf("Len() = %d, want 1024", big.Len())
	}
	p.Put(big)
}

func TestPoolNegativeLength(t *testing.T) {
	p := NewPool()
	b := p.Get(-3)
	if b.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", b.Len())
	}
	p.Put(b)
}
