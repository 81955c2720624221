package lab

import (
	"io"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundDip SoundKind = iota
	SoundIgnite
	SoundMix
	SoundTransfer
	SoundClean
	SoundReset
)

// AudioSystem manages procedural sound effects.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}
}

var globalAudio *AudioSystem

var sfxVolume float64 = 0.58

// InitAudio initializes the audio system.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// SetSFXVolume clamps and applies the effect volume.
func SetSFXVolume(vol float64) {
	sfxVolume = clampF(vol, 0, 1)
}

// PlaySound plays a procedurally generated sound effect.
func PlaySound(kind SoundKind) {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	samples := generateSound(kind)
	if len(samples) == 0 {
		return
	}
	go func() {
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat applies gentle tanh-like saturation — no harsh clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
// carrier: base frequency, modRatio: modulator/carrier ratio, modIdx: modulation depth.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

// ---- Sound effects -------------------------------------------------------

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundDip:
		return genDip()
	case SoundIgnite:
		return genIgnite()
	case SoundMix:
		return genMix()
	case SoundTransfer:
		return genTransfer()
	case SoundClean:
		return genClean()
	case SoundReset:
		return genReset()
	}
	return nil
}

// genDip: soft liquid blub — a pitch-dropping FM pop with a wet
// lowpassed tail.
func genDip() []byte {
	n := int(0.14 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(24681)
	lp := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.5, 0.1, 0.25)
		freq := 420 - 260*p
		blub := fm(t, freq, 0.5, 1.4*(1-p)) * env * 0.46
		lp = lp*0.8 + lcg(&seed)*0.2
		wet := lp * math.Exp(-p*10) * 0.16
		putStereoF32(buf, i, softSat(blub+wet))
	}
	return buf
}

// genIgnite: whoosh — filtered noise swelling then decaying, with a
// low FM flutter underneath.
func genIgnite() []byte {
	n := int(0.35 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(13579)
	lp := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.12, 0.3, 0.3, 0.35)
		lp = lp*0.7 + lcg(&seed)*0.3
		whoosh := lp * env * 0.55
		flutter := fm(t, 95, 0.5, 1.5) * env * 0.18
		mod := 0.7 + 0.3*math.Sin(2*math.Pi*14*t)
		putStereoF32(buf, i, softSat((whoosh+flutter)*mod))
	}
	return buf
}

// genMix: two-note FM chime, the second note ringing over the first.
func genMix() []byte {
	freqs := []float64{659.25, 880.0} // E5 A5
	noteStep := int(0.10 * SampleRate)
	total := len(freqs)*noteStep + int(0.22*SampleRate)
	mix := make([]float64, total)
	for fi, freq := range freqs {
		start := fi * noteStep
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.005, 0.55, 0.05, 0.3)
			s := fm(t, freq, 2.756, 4.5*env) * env * 0.34
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.08
			mix[start+j] += s
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genTransfer: quick rising FM sweep, the flame jumping across.
func genTransfer() []byte {
	n := int(0.16 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.45, 0.1, 0.2)
		freq := 300 + 560*p*p
		s := fm(t, freq, 2.0, 2.6*env) * env * 0.42
		s += math.Sin(2*math.Pi*freq*3*t) * env * 0.05
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genClean: splash — bright noise burst over a descending blub.
func genClean() []byte {
	n := int(0.22 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(86420)
	lp := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		lp = lp*0.6 + lcg(&seed)*0.4
		splash := lp * math.Exp(-p*9) * 0.42
		hiss := lcg(&seed) * math.Exp(-p*24) * 0.12
		blub := fm(t, 240-150*p, 0.5, 1.0) * math.Exp(-p*12) * 0.28
		putStereoF32(buf, i, softSat(splash+hiss+blub))
	}
	return buf
}

// genReset: short descending two-tone, everything powering down.
func genReset() []byte {
	n := int(0.24 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.4, 0.2, 0.3)
		freq := 520.0
		if p > 0.45 {
			freq = 370.0
		}
		s := fm(t, freq*(1-p*0.06), 1.5, 1.8*env) * env * 0.4
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}
