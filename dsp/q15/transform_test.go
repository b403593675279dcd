package q15

import (
	"testing"

	"github.com/cwbudde/algo-fixpoint/dsp/noise"
)

func TestRectify(t *testing.T) {
	src := FromSlice([]int16{-5, 5, 0, -32768, 32767})
	dst := New(5)
	src.Rectify(dst)
	want := []int16{5, 5, 0, 32767, 32767}
	for i, v := range dst.Samples() {
		if v != want[i] {
			t.Errorf("[%d] = %d, want %d", i, v, want[i])
		}
	}
	// Source untouched by the out-of-place form.
	if src.Samples()[0] != -5 {
		t.Error("Rectify modified its source")
	}

	src.RectifyInPlace()
	if !src.Equal(dst) {
		t.Errorf("RectifyInPlace: got %v, want %v", src.Samples(), dst.Samples())
	}
}

func TestReverse(t *testing.T) {
	src := FromSlice([]int16{1, 2, 3, 4})
	dst := New(4)
	src.Reverse(dst)
	want := []int16{4, 3, 2, 1}
	for i, v := range dst.Samples() {
		if v != want[i] {
			t.Errorf("[%d] = %d, want %d", i, v, want[i])
		}
	}

	odd := FromSlice([]int16{1, 2, 3, 4, 5})
	odd.ReverseInPlace()
	wantOdd := []int16{5, 4, 3, 2, 1}
	for i, v := range odd.Samples() {
		if v != wantOdd[i] {
			t.Errorf("in place: [%d] = %d, want %d", i, v, wantOdd[i])
		}
	}
}

func TestReciprocal(t *testing.T) {
	src := FromSlice([]int16{-32768, 32767, 16384, -16384, 0, 1})
	dst := New(src.Len())
	src.Reciprocal(dst)
	// 1/-1 = -1; everything with |x| < 1 saturates; 0 maps to max.
	want := []int16{-32768, 32767, 32767, -32768, 32767, 32767}
	for i, v := range dst.Samples() {
		if v != want[i] {
			t.Errorf("[%d] = %d, want %d", i, v, want[i])
		}
	}

	src.ReciprocalInPlace()
	if !src.Equal(dst) {
		t.Errorf("ReciprocalInPlace: got %v, want %v", src.Samples(), dst.Samples())
	}
}

func TestNegate(t *testing.T) {
	src := FromSlice([]int16{1, -1, 32767, -32768, 0})
	dst := New(5)
	src.Negate(dst)
	want := []int16{-1, 1, -32767, 32767, 0}
	for i, v := range dst.Samples() {
		if v != want[i] {
			t.Errorf("[%d] = %d, want %d", i, v, want[i])
		}
	}

	src.NegateInPlace()
	if !src.Equal(dst) {
		t.Errorf("NegateInPlace: got %v, want %v", src.Samples(), dst.Samples())
	}
}

func TestNoiseDeterministicWithSeededSource(t *testing.T) {
	a := New(64)
	b := New(64)
	a.Noise(noise.NewSource(1234))
	b.Noise(noise.NewSource(1234))
	if !a.Equal(b) {
		t.Fatal("equal seeds should produce identical noise fills")
	}

	c := New(64)
	c.Noise(noise.NewSource(5678))
	if a.Equal(c) {
		t.Fatal("different seeds should produce different noise fills")
	}
}

func TestNoiseNilSourceUsesDefault(t *testing.T) {
	noise.Seed(42)
	a := New(32)
	a.Noise(nil)

	b := New(32)
	b.Noise(noise.NewSource(42))
	if !a.Equal(b) {
		t.Fatal("nil source should draw from the process-wide default")
	}
}

func TestNoiseRangeBounds(t *testing.T) {
	b := New(4096)
	const min, max = -1000, 2000
	b.NoiseRange(noise.NewSource(7), min, max)
	for i, v := range b.Samples() {
		if v < min || v >= max {
			t.Fatalf("[%d] = %d outside [%d, %d)", i, v, min, max)
		}
	}
}
