package vad

import "bestcut/internal/media/pcm"

// Classifier decides whether a single audio frame contains speech. The
// segmenter only consumes the binary decision; which model produced it is
// irrelevant to boundary logic.
type Classifier interface {
	IsSpeech(frame pcm.Frame) bool
	Reset()
}

// EnergyClassifier is a pure-Go frame classifier based on RMS energy with
// hysteresis thresholds: a frame must climb above SpeechRMS to enter speech
// and fall below SilenceRMS to leave it, so levels hovering near one
// threshold do not flicker.
type EnergyClassifier struct {
	SpeechRMS  float64
	SilenceRMS float64

	inSpeech bool
}

// NewEnergyClassifier returns a classifier tuned for 16 kHz 20 ms frames of
// close-mic spoken word.
func NewEnergyClassifier() *EnergyClassifier {
	return &EnergyClassifier{
		SpeechRMS:  0.015,
		SilenceRMS: 0.008,
	}
}

// IsSpeech classifies one frame.
func (c *EnergyClassifier) IsSpeech(frame pcm.Frame) bool {
	level := pcm.RMS(frame.Samples)
	if c.inSpeech {
		if level < c.SilenceRMS {
			c.inSpeech = false
		}
	} else {
		if level >= c.SpeechRMS {
			c.inSpeech = true
		}
	}
	return c.inSpeech
}

// Reset clears the hysteresis state between recordings.
func (c *EnergyClassifier) Reset() {
	c.inSpeech = false
}
