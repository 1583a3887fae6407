package signal

import "fmt"

// BaselineWander models respiration drift: a sine at freqHz plus a slower
// component at a third of the frequency and half the amplitude.
func (g *Generator) BaselineWander(freqHz, amplitude float64, samples int) ([]float64, error) {
	if freqHz <= 0 {
		return nil, fmt.Errorf("baseline wander frequency must be > 0: %f", freqHz)
	}
	main, err := g.Sine(freqHz, amplitude, samples)
	if err != nil {
		return nil, err
	}
	slow, err := g.Sine(freqHz/3, amplitude/2, samples)
	if err != nil {
		return nil, err
	}
	return Mix(main, slow)
}

// Powerline models mains pickup: the fundamental at freqHz and harmonics
// 2..harmonics at amplitude/k. Components at or above Nyquist are skipped.
func (g *Generator) Powerline(freqHz, amplitude float64, harmonics, samples int) ([]float64, error) {
	if freqHz <= 0 {
		return nil, fmt.Errorf("powerline frequency must be > 0: %f", freqHz)
	}
	if harmonics < 1 {
		return nil, fmt.Errorf("powerline harmonics must be >= 1: %d", harmonics)
	}

	out, err := g.DC(0, samples)
	if err != nil {
		return nil, err
	}
	for k := 1; k <= harmonics; k++ {
		f := freqHz * float64(k)
		if f >= g.cfg.SampleRate/2 {
			break
		}
		h, err := g.Sine(f, amplitude/float64(k), samples)
		if err != nil {
			return nil, err
		}
		for i, v := range h {
			out[i] += v
		}
	}
	return out, nil
}
