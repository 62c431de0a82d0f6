// Package audio 合成体验中用到的提示音
//
// 所有声音都在启动时用 beep 生成，渲染成 16 位小端立体声 PCM，
// 交给 ebiten 的 audio.Player 播放，不依赖任何音频资源文件。
package audio

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate 合成使用的采样率，与 ebiten audio.Context 保持一致
const SampleRate = 48000

// maxRenderDuration 单个声音的最大长度，防止无限流
const maxRenderDuration = 5 * time.Second

// WaveType 振荡器波形
type WaveType int

const (
	WaveSine WaveType = iota
	WaveTriangle
	WaveSquare
)

type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator 创建固定频率、固定时长的振荡器
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope 线性起音/释音包络
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope 为流加上起音和释音
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.attackSamples > 0 && e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.totalSamples - e.releaseSamples
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note 单个带包络的音符
func note(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, duration, wave, rate)
	return NewEnvelope(osc, duration, 5*time.Millisecond, duration*3/4, rate)
}

// NewChime 点中爱心时的短促铃声（E6 + 高八度泛音）
func NewChime(rate beep.SampleRate) beep.Streamer {
	d := 180 * time.Millisecond
	return beep.Mix(
		newVolume(note(1318.51, d, WaveSine, rate), 0.6),
		newVolume(note(2637.02, d, WaveSine, rate), 0.2),
	)
}

// NewTick 尾声爱心按钮的轻击声
func NewTick(rate beep.SampleRate) beep.Streamer {
	return newVolume(note(880, 60*time.Millisecond, WaveTriangle, rate), 0.4)
}

// NewFanfare 彩纸庆祝时的上行琶音（C5 E5 G5 C6）
func NewFanfare(rate beep.SampleRate) beep.Streamer {
	freqs := []float64{523.25, 659.25, 783.99, 1046.50}
	notes := make([]beep.Streamer, 0, len(freqs))
	for i, f := range freqs {
		d := 110 * time.Millisecond
		if i == len(freqs)-1 {
			d = 420 * time.Millisecond
		}
		notes = append(notes, newVolume(note(f, d, WaveTriangle, rate), 0.5))
	}
	return beep.Seq(notes...)
}

// RenderPCM 把流渲染成 16 位小端立体声 PCM
// 输出可以直接交给 ebiten audio.NewPlayerFromBytes
func RenderPCM(s beep.Streamer, rate beep.SampleRate) []byte {
	limit := rate.N(maxRenderDuration)
	buf := make([][2]float64, 512)
	out := make([]byte, 0, 4096)

	rendered := 0
	for rendered < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(buf[i][0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(buf[i][1])))
		}
		rendered += n
		if !ok || n == 0 {
			break
		}
	}
	return out
}

func toInt16(v float64) int16 {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int16(v * math.MaxInt16)
}
