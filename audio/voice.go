package audio

// voice is one playback channel for a baked buffer, implementing
// beep.Streamer. One voice per instrument slot lives in the mixer for
// the whole session: it streams silence while idle and never reports
// end-of-stream, so triggering is just a cursor reset with no
// allocation and no mixer churn.
//
// All fields are accessed under the speaker lock.
type voice struct {
	buf    floatBuffer
	pos    int
	gain   float64
	active bool
}

func newVoice() *voice {
	return &voice{}
}

// trigger restarts the voice on a buffer. Buffers come from the
// immutable library, so the render goroutine only ever reads them.
func (v *voice) trigger(buf floatBuffer, gain float64) {
	v.buf = buf
	v.pos = 0
	v.gain = gain
	v.active = len(buf) > 0
}

// silence cuts the voice immediately
func (v *voice) silence() {
	v.active = false
	v.pos = 0
}

func (v *voice) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		var s float64
		if v.active && v.pos < len(v.buf) {
			s = v.buf[v.pos] * v.gain
			v.pos++
		} else if v.active {
			v.active = false
		}
		samples[i][0] = s
		samples[i][1] = s
	}
	return len(samples), true
}

func (v *voice) Err() error { return nil }
