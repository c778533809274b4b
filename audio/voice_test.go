package audio

import "testing"

// TestVoiceIdleStreamsSilence verifies an untriggered voice streams
// zeros and never reports end-of-stream
func TestVoiceIdleStreamsSilence(t *testing.T) {
	v := newVoice()
	samples := make([][2]float64, 8)

	n, ok := v.Stream(samples)
	if n != len(samples) || !ok {
		t.Fatalf("Stream = (%d, %v), want (%d, true)", n, ok, len(samples))
	}
	for i, s := range samples {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("sample %d = %v, want silence", i, s)
		}
	}
}

// TestVoicePlaysThenFallsSilent verifies a triggered voice plays its
// buffer at the set gain and streams silence afterwards
func TestVoicePlaysThenFallsSilent(t *testing.T) {
	v := newVoice()
	v.trigger(floatBuffer{1, 1, 1}, 0.5)

	samples := make([][2]float64, 6)
	n, ok := v.Stream(samples)
	if n != 6 || !ok {
		t.Fatalf("Stream = (%d, %v)", n, ok)
	}

	for i := 0; i < 3; i++ {
		if samples[i][0] != 0.5 || samples[i][1] != 0.5 {
			t.Errorf("sample %d = %v, want 0.5 both channels", i, samples[i])
		}
	}
	for i := 3; i < 6; i++ {
		if samples[i][0] != 0 || samples[i][1] != 0 {
			t.Errorf("sample %d = %v, want silence past the buffer", i, samples[i])
		}
	}
}

// TestVoiceRetrigger verifies triggering mid-play restarts from the
// head of the new buffer
func TestVoiceRetrigger(t *testing.T) {
	v := newVoice()
	v.trigger(floatBuffer{1, 2, 3, 4}, 1.0)

	head := make([][2]float64, 2)
	v.Stream(head)

	v.trigger(floatBuffer{9, 9}, 1.0)
	rest := make([][2]float64, 3)
	v.Stream(rest)

	if rest[0][0] != 9 || rest[1][0] != 9 || rest[2][0] != 0 {
		t.Errorf("retriggered stream = %v, want [9 9 0]", rest)
	}
}

// TestVoiceSilence verifies silence cuts playback immediately
func TestVoiceSilence(t *testing.T) {
	v := newVoice()
	v.trigger(floatBuffer{1, 1, 1, 1}, 1.0)
	v.silence()

	samples := make([][2]float64, 4)
	v.Stream(samples)
	for i, s := range samples {
		if s[0] != 0 {
			t.Errorf("sample %d = %v after silence", i, s)
		}
	}
}
