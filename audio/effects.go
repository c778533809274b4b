package audio

import (
	"github.com/gopxl/beep"
)

// Post-mix effects chain: feedback delay into a small Schroeder-style
// reverb. Constructed once at setup; the per-beat path never touches
// this code.

// delayStreamer mixes a feedback-delayed copy into the source
type delayStreamer struct {
	src      beep.Streamer
	buf      [][2]float64
	pos      int
	feedback float64
	mix      float64
}

func newDelay(src beep.Streamer, delaySamples int, feedback, mix float64) beep.Streamer {
	if delaySamples < 1 {
		delaySamples = 1
	}
	return &delayStreamer{
		src:      src,
		buf:      make([][2]float64, delaySamples),
		feedback: feedback,
		mix:      mix,
	}
}

func (d *delayStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.src.Stream(samples)
	for i := 0; i < n; i++ {
		dry := samples[i]
		wet := d.buf[d.pos]

		samples[i][0] = dry[0] + wet[0]*d.mix
		samples[i][1] = dry[1] + wet[1]*d.mix

		d.buf[d.pos][0] = dry[0] + wet[0]*d.feedback
		d.buf[d.pos][1] = dry[1] + wet[1]*d.feedback

		d.pos++
		if d.pos >= len(d.buf) {
			d.pos = 0
		}
	}
	return n, ok
}

func (d *delayStreamer) Err() error { return d.src.Err() }

// comb is one damped feedback comb filter line
type comb struct {
	buf      [][2]float64
	pos      int
	feedback float64
	damp     float64
	store    [2]float64
}

func (c *comb) process(in [2]float64) [2]float64 {
	out := c.buf[c.pos]

	c.store[0] = out[0]*(1-c.damp) + c.store[0]*c.damp
	c.store[1] = out[1]*(1-c.damp) + c.store[1]*c.damp

	c.buf[c.pos][0] = in[0] + c.store[0]*c.feedback
	c.buf[c.pos][1] = in[1] + c.store[1]*c.feedback

	c.pos++
	if c.pos >= len(c.buf) {
		c.pos = 0
	}
	return out
}

// reverbStreamer runs four parallel combs over the source and mixes
// the sum back in
type reverbStreamer struct {
	src   beep.Streamer
	combs [4]comb
	mix   float64
}

// combTunings are mutually prime delay lengths in seconds
var combTunings = [4]float64{0.0297, 0.0371, 0.0411, 0.0437}

func newReverb(src beep.Streamer, sampleRate int, damp, mix float64) beep.Streamer {
	r := &reverbStreamer{src: src, mix: mix}
	for i, sec := range combTunings {
		r.combs[i] = comb{
			buf:      make([][2]float64, int(sec*float64(sampleRate))),
			feedback: 0.78,
			damp:     damp,
		}
	}
	return r
}

func (r *reverbStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = r.src.Stream(samples)
	for i := 0; i < n; i++ {
		dry := samples[i]
		var wet [2]float64
		for c := range r.combs {
			out := r.combs[c].process(dry)
			wet[0] += out[0]
			wet[1] += out[1]
		}
		samples[i][0] = dry[0] + wet[0]*r.mix*0.25
		samples[i][1] = dry[1] + wet[1]*r.mix*0.25
	}
	return n, ok
}

func (r *reverbStreamer) Err() error { return r.src.Err() }
