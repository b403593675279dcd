package q15

import (
	"testing"

	"github.com/go-audio/audio"
)

func TestFromIntBuffer(t *testing.T) {
	pcm := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: 44100},
		Data:           []int{0, 100, -100, 40000, -40000, 32767, -32768},
		SourceBitDepth: 16,
	}
	b := FromIntBuffer(pcm)
	want := []int16{0, 100, -100, 32767, -32768, 32767, -32768}
	if b.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", b.Len(), len(want))
	}
	for i, v := range b.Samples() {
		if v != want[i] {
			t.Errorf("[%d] = %d, want %d", i, v, want[i])
		}
	}
}

func TestFromIntBufferCopies(t *testing.T) {
	pcm := &audio.IntBuffer{Data: []int{1, 2, 3}}
	b := FromIntBuffer(pcm)
	pcm.Data[0] = 99
	if b.Samples()[0] != 1 {
		t.Fatal("FromIntBuffer should copy, not alias")
	}
}

func TestFromIntBufferNil(t *testing.T) {
	if b := FromIntBuffer(nil); b.Len() != 0 {
		t.Fatalf("Len() = %d, want 0 for nil input", b.Len())
	}
}

func TestIntBufferRoundTrip(t *testing.T) {
	format := &audio.Format{NumChannels: 1, SampleRate: 44100}
	b := FromSlice([]int16{10, -20, 30})
	out := b.IntBuffer(format)
	if out.SourceBitDepth != 16 {
		t.Errorf("SourceBitDepth = %d, want 16", out.SourceBitDepth)
	}
	if out.Format != format {
		t.Error("format not carried through")
	}
	back := FromIntBuffer(out)
	if !back.Equal(b) {
		t.Fatalf("round trip = %v, want %v", back.Samples(), b.Samples())
	}
}
