package audio

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/pulse-runner/parameter"
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// durationToSamples converts seconds to sample count
func durationToSamples(sec float64, sampleRate int) int {
	return int(sec * float64(sampleRate))
}

// normalizePeak scales buf in place so its peak magnitude equals target
func normalizePeak(buf floatBuffer, target float64) {
	peak := 0.0
	for _, v := range buf {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	if peak == 0 {
		return
	}
	scale := target / peak
	for i := range buf {
		buf[i] *= scale
	}
}

// noiseSource yields white noise from a fixed seed so baking the same
// instrument always produces the same buffer
func noiseSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// --- Instrument bakers (unity gain, closed-form time domain) ---

// bakeKick renders sin(2π·f(t)·t)·e^(-5t) with f(t) = 60·e^(-10t),
// an exponentially decaying pitch sweep
func bakeKick(sampleRate int) floatBuffer {
	n := durationToSamples(parameter.KickDuration, sampleRate)
	buf := make(floatBuffer, n)

	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		freq := parameter.KickStartFreq * math.Exp(-parameter.KickPitchDecay*t)
		buf[i] = math.Sin(2*math.Pi*freq*t) * math.Exp(-parameter.KickAmpDecay*t)
	}

	normalizePeak(buf, parameter.PeakNormalize)
	return buf
}

// bakeSnare blends decaying white noise and a decaying 200 Hz tone in
// equal measure
func bakeSnare(sampleRate int) floatBuffer {
	n := durationToSamples(parameter.SnareDuration, sampleRate)
	buf := make(floatBuffer, n)
	rng := noiseSource(0x5a4e)

	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		noise := (rng.Float64()*2 - 1) * math.Exp(-parameter.SnareNoiseDecay*t)
		tone := math.Sin(2*math.Pi*parameter.SnareToneFreq*t) * math.Exp(-parameter.SnareToneDecay*t)
		buf[i] = 0.5*noise + 0.5*tone
	}

	normalizePeak(buf, parameter.PeakNormalize)
	return buf
}

// bakeHat is fast-decaying white noise only
func bakeHat(sampleRate int) floatBuffer {
	n := durationToSamples(parameter.HatDuration, sampleRate)
	buf := make(floatBuffer, n)
	rng := noiseSource(0x4a7)

	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		buf[i] = (rng.Float64()*2 - 1) * math.Exp(-parameter.HatNoiseDecay*t)
	}

	normalizePeak(buf, parameter.PeakNormalize)
	return buf
}

// bakeBass sums 5 harmonics with alternating polarity on even
// harmonics under a decaying envelope
func bakeBass(freq float64, sampleRate int) floatBuffer {
	n := durationToSamples(parameter.BassDuration, sampleRate)
	buf := make(floatBuffer, n)

	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		var sum float64
		for h := 1; h <= parameter.BassHarmonics; h++ {
			polarity := 1.0
			if h%2 == 0 {
				polarity = -1.0
			}
			sum += polarity * math.Sin(2*math.Pi*float64(h)*freq*t) / float64(h)
		}
		buf[i] = sum * math.Exp(-parameter.BassAmpDecay*t)
	}

	normalizePeak(buf, parameter.PeakNormalize)
	return buf
}

// bakeHorn sums 10 harmonics with 1/n² falloff and a slower decay
func bakeHorn(sampleRate int) floatBuffer {
	n := durationToSamples(parameter.HornDuration, sampleRate)
	buf := make(floatBuffer, n)

	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		var sum float64
		for h := 1; h <= parameter.HornHarmonics; h++ {
			sum += math.Sin(2*math.Pi*float64(h)*parameter.HornFreq*t) / float64(h*h)
		}
		buf[i] = sum * math.Exp(-parameter.HornAmpDecay*t)
	}

	normalizePeak(buf, parameter.PeakNormalize)
	return buf
}

// bakeFiddle layers 6 harmonics with 1/n falloff under a slow vibrato
// and a short attack ramp
func bakeFiddle(sampleRate int) floatBuffer {
	n := durationToSamples(parameter.FiddleDuration, sampleRate)
	buf := make(floatBuffer, n)
	attack := durationToSamples(parameter.FiddleAttack, sampleRate)

	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		vibrato := parameter.FiddleVibratoAmt * math.Sin(2*math.Pi*parameter.FiddleVibratoHz*t)
		var sum float64
		for h := 1; h <= parameter.FiddleHarmonics; h++ {
			sum += math.Sin(2*math.Pi*float64(h)*parameter.FiddleFreq*t+float64(h)*vibrato) / float64(h)
		}
		env := math.Exp(-parameter.FiddleAmpDecay * t)
		if i < attack && attack > 0 {
			env *= float64(i) / float64(attack)
		}
		buf[i] = sum * env
	}

	normalizePeak(buf, parameter.PeakNormalize)
	return buf
}

// bakeLead sums odd harmonics with 1/n falloff (square-ish) under a
// tight decay
func bakeLead(sampleRate int) floatBuffer {
	n := durationToSamples(parameter.LeadDuration, sampleRate)
	buf := make(floatBuffer, n)

	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		var sum float64
		for h := 1; h <= parameter.LeadHarmonics; h += 2 {
			sum += math.Sin(2*math.Pi*float64(h)*parameter.LeadFreq*t) / float64(h)
		}
		buf[i] = sum * math.Exp(-parameter.LeadAmpDecay*t)
	}

	normalizePeak(buf, parameter.PeakNormalize)
	return buf
}
