package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"time"

	cfg "github.com/automoto/stickfight/config"
	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesizes sound effects once and hands out players for them
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte // 16-bit little endian stereo PCM
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders a sound effect into the cache without creating a player.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	if _, ok := l.sfxCache[id]; ok {
		return nil
	}

	pcm, err := SynthesizeSFX(id, l.context.SampleRate())
	if err != nil {
		return err
	}
	l.sfxCache[id] = pcm
	return nil
}

// LoadSFX returns a fresh player for a sound effect, rendering it first if
// it is not cached yet.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(id); err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(l.sfxCache[id]), nil
}

// SFXStreamer builds the beep stream for a sound: every note shaped by its
// envelope and volume, played back to back.
func SFXStreamer(id cfg.SoundID, rate beep.SampleRate) (beep.Streamer, time.Duration, error) {
	tones, ok := cfg.Sound.Effects[id]
	if !ok || len(tones) == 0 {
		return nil, 0, fmt.Errorf("no tones configured for sound %d", id)
	}

	var (
		notes []beep.Streamer
		total time.Duration
	)
	for i, t := range tones {
		wave, err := ParseWave(t.Wave)
		if err != nil {
			return nil, 0, fmt.Errorf("sound %d note %d: %w", id, i, err)
		}
		osc := NewOscillator(t.Freq, t.Duration, wave, rate)
		shaped := NewEnvelope(osc, t.Duration, t.Attack, t.Release, rate)
		notes = append(notes, newVolume(shaped, t.Volume))
		total += t.Duration
	}
	return beep.Seq(notes...), total, nil
}

// SynthesizeSFX renders a sound to the PCM layout ebiten's audio players
// expect.
func SynthesizeSFX(id cfg.SoundID, sampleRate int) ([]byte, error) {
	rate := beep.SampleRate(sampleRate)
	streamer, _, err := SFXStreamer(id, rate)
	if err != nil {
		return nil, err
	}
	return renderPCM(streamer)
}

func renderPCM(s beep.Streamer) ([]byte, error) {
	var buf bytes.Buffer
	chunk := make([][2]float64, 512)
	frame := make([]byte, 4)

	for {
		n, ok := s.Stream(chunk)
		for _, smp := range chunk[:n] {
			binary.LittleEndian.PutUint16(frame[0:], uint16(toInt16(smp[0])))
			binary.LittleEndian.PutUint16(frame[2:], uint16(toInt16(smp[1])))
			buf.Write(frame)
		}
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("rendering sound: %w", err)
	}
	return buf.Bytes(), nil
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}
