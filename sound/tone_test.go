package sound

import (
	"testing"
	"time"
)

func TestToneShape(t *testing.T) {
	cases := []struct {
		name string
		freq float64
		dur  time.Duration
	}{
		{"short_click", 880, 30 * time.Millisecond},
		{"longer_thud", 120, 200 * time.Millisecond},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pcm := Tone(tc.freq, tc.dur, 0.5)

			wantLen := int(float64(SampleRate)*tc.dur.Seconds()) * 4
			if len(pcm) != wantLen {
				t.Fatalf("pcm length = %d, want %d", len(pcm), wantLen)
			}
			if len(pcm)%4 != 0 {
				t.Fatalf("pcm not framed as 16-bit stereo")
			}

			allZero := true
			for _, b := range pcm {
				if b != 0 {
					allZero = false
					break
				}
			}
			if allZero {
				t.Fatalf("tone produced silence")
			}
		})
	}
}
