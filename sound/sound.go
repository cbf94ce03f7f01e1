// Package sound adapts ebiten's audio players to the controller's
// Audio interface. Clips are registered by name; playback is fire and
// forget with a per-call volume.
package sound

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const SampleRate = 44100

// Player owns the audio context and the named clip players. One
// Player per process; ebiten allows a single audio context.
type Player struct {
	ctx   *audio.Context
	clips map[string]*audio.Player
}

func NewPlayer() *Player {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(SampleRate)
	}
	return &Player{
		ctx:   ctx,
		clips: make(map[string]*audio.Player),
	}
}

// Register adds a clip from raw 16-bit little-endian stereo PCM.
func (p *Player) Register(name string, pcm []byte) {
	p.clips[name] = p.ctx.NewPlayerFromBytes(pcm)
}

// RegisterWAV decodes and registers a WAV asset.
func (p *Player) RegisterWAV(name string, data []byte) error {
	stream, err := wav.DecodeWithSampleRate(p.ctx.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("sound: decode wav %q: %w", name, err)
	}
	player, err := p.ctx.NewPlayer(stream)
	if err != nil {
		return fmt.Errorf("sound: player %q: %w", name, err)
	}
	p.clips[name] = player
	return nil
}

// Play restarts the named clip at the given volume. Unknown names and
// clips still playing are skipped silently.
func (p *Player) Play(clip string, volume float64) {
	player := p.clips[clip]
	if player == nil || player.IsPlaying() {
		return
	}
	player.SetVolume(volume)
	if err := player.Rewind(); err != nil {
		return
	}
	player.Play()
}

// Muted is an Audio that discards every cue.
type Muted struct{}

func (Muted) Play(clip string, volume float64) {}
