package quality

import "math"

// Stats holds time-domain statistics of a waveform.
type Stats struct {
	Length        int
	Mean          float64
	RMS           float64
	Max           float64
	MaxPos        int
	Min           float64
	MinPos        int
	Peak          float64 // max(|Max|, |Min|)
	PeakToPeak    float64
	CrestFactor   float64 // Peak / RMS
	ZeroCrossings int
	Variance      float64
	Skewness      float64
	Kurtosis      float64 // excess, 0 for a Gaussian
}

// CrestFactorDB returns the crest factor in decibels, or -Inf for a
// silent signal.
func (s Stats) CrestFactorDB() float64 {
	if s.CrestFactor == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(s.CrestFactor)
}

// ZeroCrossingRate returns zero crossings per second.
func (s Stats) ZeroCrossingRate(sampleRate float64) float64 {
	if s.Length < 2 || sampleRate <= 0 {
		return 0
	}

	return float64(s.ZeroCrossings) * sampleRate / float64(s.Length)
}

// Calculate computes all statistics in a single pass. Higher moments use
// Welford's online update.
func Calculate(x []float64) Stats {
	n := len(x)
	if n == 0 {
		return Stats{}
	}

	var (
		mean, m2, m3, m4 float64
		sumSq            float64
		maxVal, minVal   = x[0], x[0]
		maxPos, minPos   int
		crossings        int
	)

	for i, v := range x {
		ni := float64(i + 1)
		delta := v - mean
		deltaN := delta / ni
		deltaN2 := deltaN * deltaN
		term1 := delta * deltaN * float64(i)

		// m4 before m3 before m2: each update reads the previous lower moment.
		m4 += term1*deltaN2*(ni*ni-3*ni+3) + 6*deltaN2*m2 - 4*deltaN*m3
		m3 += term1*deltaN*(float64(i)-1) - 3*deltaN*m2
		m2 += term1
		mean += deltaN

		sumSq += v * v

		if v > maxVal {
			maxVal, maxPos = v, i
		}
		if v < minVal {
			minVal, minPos = v, i
		}
		if i > 0 && x[i-1]*v < 0 {
			crossings++
		}
	}

	nf := float64(n)
	rms := math.Sqrt(sumSq / nf)
	peak := math.Max(math.Abs(maxVal), math.Abs(minVal))

	var crest float64
	if rms > 0 {
		crest = peak / rms
	}

	variance := m2 / nf

	var skew, kurt float64
	if variance > 0 {
		skew = (m3 / nf) / (variance * math.Sqrt(variance))
		kurt = (m4/nf)/(variance*variance) - 3
	}

	return Stats{
		Length:        n,
		Mean:          mean,
		RMS:           rms,
		Max:           maxVal,
		MaxPos:        maxPos,
		Min:           minVal,
		MinPos:        minPos,
		Peak:          peak,
		PeakToPeak:    maxVal - minVal,
		CrestFactor:   crest,
		ZeroCrossings: crossings,
		Variance:      variance,
		Skewness:      skew,
		Kurtosis:      kurt,
	}
}
