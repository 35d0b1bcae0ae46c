// Package sfx synthesizes and plays the game's sound effects. The tones are
// rendered as raw PCM at startup, so there are no audio files to ship.
package sfx

import (
	"bytes"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 44100

var audioContext = audio.NewContext(sampleRate)

// Mixer owns one player per effect. A nil or muted Mixer is silent, and
// playback errors are swallowed: audio can never stall a frame or end a run.
type Mixer struct {
	drop     *audio.Player
	merge    *audio.Player
	gameOver *audio.Player
	muted    bool
}

// NewMixer builds the effect players. A failed player logs once and stays
// nil; the rest keep working.
func NewMixer(muted bool) *Mixer {
	return &Mixer{
		drop:     newTonePlayer(220, 110, 70*time.Millisecond, 0.5),
		merge:    newTonePlayer(440, 880, 130*time.Millisecond, 0.45),
		gameOver: newTonePlayer(330, 82, 600*time.Millisecond, 0.5),
		muted:    muted,
	}
}

func newTonePlayer(fromHz, toHz float64, d time.Duration, vol float64) *audio.Player {
	p, err := audioContext.NewPlayer(bytes.NewReader(tonePCM(fromHz, toHz, d, vol)))
	if err != nil {
		log.Printf("sfx: player: %v", err)
		return nil
	}
	return p
}

// SetMuted toggles all playback.
func (m *Mixer) SetMuted(muted bool) {
	if m != nil {
		m.muted = muted
	}
}

func (m *Mixer) Muted() bool { return m != nil && m.muted }

// PlayDrop plays the release thud.
func (m *Mixer) PlayDrop() { m.play(m.drop, 1) }

// PlayMerge plays the merge chirp, a touch louder for higher tiers.
func (m *Mixer) PlayMerge(tier int) {
	vol := 0.6 + 0.04*float64(tier)
	if vol > 1 {
		vol = 1
	}
	m.play(m.merge, vol)
}

// PlayGameOver plays the descending end-of-run tone.
func (m *Mixer) PlayGameOver() { m.play(m.gameOver, 1) }

func (m *Mixer) play(p *audio.Player, vol float64) {
	if m == nil || m.muted || p == nil || p.IsPlaying() {
		return
	}
	p.SetVolume(vol)
	if err := p.Rewind(); err != nil {
		return
	}
	p.Play()
}
