// Package sound plays short synthesized tones for game events.
package sound

import (
	"bytes"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Event identifies something audible that happened during a tick.
type Event int

const (
	EventLock Event = iota
	EventLine1
	EventLine2
	EventLine3
	EventLine4
	EventReset
)

const sampleRate = 44100

// oto allows a single context per process.
var (
	audioOnce sync.Once
	audioCtx  *oto.Context
	audioErr  error
)

func sharedContext() (*oto.Context, error) {
	audioOnce.Do(func() {
		ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: 2,
			Format:       oto.FormatSignedInt16LE,
		})
		if err != nil {
			audioErr = fmt.Errorf("sound: failed to open audio device: %w", err)
			return
		}
		<-ready
		audioCtx = ctx
	})
	return audioCtx, audioErr
}

// Engine plays event tones on the default audio device.
type Engine struct {
	ctx    *oto.Context
	volume float64
}

// New opens the audio device.
func New(volume float64) (*Engine, error) {
	ctx, err := sharedContext()
	if err != nil {
		return nil, err
	}
	return &Engine{ctx: ctx, volume: core.Clamp(volume, 0, 1)}, nil
}

// PlayStep plays the tones for everything that happened in a tick.
func (e *Engine) PlayStep(res core.StepResult) {
	for _, ev := range EventsFor(res) {
		e.Play(ev)
	}
}

// Play renders and plays an event in the background. A nil Engine is silent.
func (e *Engine) Play(ev Event) {
	if e == nil {
		return
	}
	sequence := tonesFor(ev)
	if len(sequence) == 0 || e.volume == 0 {
		return
	}
	go func() {
		player := e.ctx.NewPlayer(bytes.NewReader(renderSequence(sequence, sampleRate, e.volume)))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(5 * time.Millisecond)
		}
		_ = player.Close()
	}()
}

// EventsFor maps a tick result to events. A reset wins over everything else
// that tick.
func EventsFor(res core.StepResult) []Event {
	if res.Reset {
		return []Event{EventReset}
	}
	if !res.Locked {
		return nil
	}
	switch n := len(res.Cleared); {
	case n == 0:
		return []Event{EventLock}
	case n >= 4:
		return []Event{EventLine4}
	default:
		return []Event{EventLine1 + Event(n-1)}
	}
}

type tone struct {
	frequency float64
	duration  time.Duration
	volume    float64
}

func tonesFor(ev Event) []tone {
	switch ev {
	case EventLock:
		return []tone{{220, 70 * time.Millisecond, 0.3}}
	case EventLine1:
		return []tone{{440, 90 * time.Millisecond, 0.3}}
	case EventLine2:
		return []tone{
			{440, 70 * time.Millisecond, 0.3},
			{660, 90 * time.Millisecond, 0.3},
		}
	case EventLine3:
		return []tone{
			{440, 70 * time.Millisecond, 0.3},
			{660, 70 * time.Millisecond, 0.3},
			{880, 90 * time.Millisecond, 0.3},
		}
	case EventLine4:
		return []tone{
			{660, 80 * time.Millisecond, 0.3},
			{880, 80 * time.Millisecond, 0.3},
			{990, 120 * time.Millisecond, 0.3},
		}
	case EventReset:
		return []tone{{180, 160 * time.Millisecond, 0.28}}
	default:
		return nil
	}
}

const (
	bytesPerFrame = 4 // two int16 channels
	toneGap       = 10 * time.Millisecond
	fadeTime      = 3 * time.Millisecond
)

func samplesFor(d time.Duration, rate int) int {
	return int(float64(rate) * d.Seconds())
}

// renderSequence returns interleaved stereo int16 little-endian PCM.
func renderSequence(sequence []tone, rate int, master float64) []byte {
	gap := samplesFor(toneGap, rate)
	total := 0
	for i, t := range sequence {
		total += samplesFor(t.duration, rate)
		if i < len(sequence)-1 {
			total += gap
		}
	}

	buf := make([]byte, total*bytesPerFrame)
	offset := 0
	for _, t := range sequence {
		renderTone(buf[offset:], t, rate, t.volume*master)
		offset += (samplesFor(t.duration, rate) + gap) * bytesPerFrame
	}
	return buf
}

func renderTone(buf []byte, t tone, rate int, volume float64) {
	const maxInt16 = 1<<15 - 1
	samples := samplesFor(t.duration, rate)
	fade := samplesFor(fadeTime, rate)
	for i := 0; i < samples; i++ {
		env := 1.0
		switch {
		case i < fade:
			env = float64(i) / float64(fade)
		case i > samples-fade:
			env = math.Max(0, float64(samples-i)/float64(fade))
		}
		s := math.Sin(2 * math.Pi * t.frequency * float64(i) / float64(rate))
		v := int16(s * volume * env * maxInt16)
		buf[i*4] = byte(v)
		buf[i*4+1] = byte(v >> 8)
		buf[i*4+2] = byte(v)
		buf[i*4+3] = byte(v >> 8)
	}
}
