package sfx

import (
	"math"
	"time"
)

// tonePCM renders a sine sweep from fromHz to toHz as 16-bit little-endian
// stereo PCM with an exponential fade-out. vol leaves headroom below full
// scale so overlapping effects don't clip.
func tonePCM(fromHz, toHz float64, d time.Duration, vol float64) []byte {
	n := int(float64(sampleRate) * d.Seconds())
	buf := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := fromHz + (toHz-fromHz)*t
		phase += 2 * math.Pi * freq / sampleRate
		env := math.Exp(-4 * t)
		v := int16(math.Sin(phase) * env * vol * math.MaxInt16)
		buf[4*i] = byte(v)
		buf[4*i+1] = byte(uint16(v) >> 8)
		buf[4*i+2] = byte(v)
		buf[4*i+3] = byte(uint16(v) >> 8)
	}
	return buf
}
