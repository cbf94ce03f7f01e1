package sound

import (
	"encoding/binary"
	"math"
	"time"
)

// Tone synthesizes a decaying sine beep as 16-bit little-endian stereo
// PCM, so the demo needs no binary audio assets.
func Tone(freq float64, dur time.Duration, gain float64) []byte {
	samples := int(float64(SampleRate) * dur.Seconds())
	buf := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		t := float64(i) / SampleRate
		decay := 1 - float64(i)/float64(samples)
		v := math.Sin(2*math.Pi*freq*t) * gain * decay
		s := int16(v * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(s))
	}
	return buf
}
