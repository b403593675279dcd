package q15

import (
	"github.com/go-audio/audio"

	"github.com/cwbudde/algo-fixpoint/internal/fixmath"
)

// FromIntBuffer copy-converts a go-audio PCM buffer into a new Q1.15
// buffer. Samples outside the int16 range are clamped, so buffers decoded
// from wider formats stay within Q1.15.
func FromIntBuffer(buf *audio.IntBuffer) Buffer {
	if buf == nil {
		return Buffer{}
	}
	b := New(len(buf.Data))
	for i, v := range buf.Data {
		switch {
		case v > fixmath.MaxQ15:
			b.samples[i] = fixmath.MaxQ15
		case v < fixmath.MinQ15:
			b.samples[i] = fixmath.MinQ15
		default:
			b.samples[i] = int16(v)
		}
	}
	return b
}

// IntBuffer copy-converts the buffer into a go-audio PCM buffer with the
// given format, for handing samples back to encoders and sinks.
func (b Buffer) IntBuffer(format *audio.Format) *audio.IntBuffer {
	data := make([]int, len(b.samples))
	for i, v := range b.samples {
		data[i] = int(v)
	}
	return &audio.IntBuffer{
		Format:         format,
		Data:           data,
		SourceBitDepth: 16,
	}
}
