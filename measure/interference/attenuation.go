package interference

import (
	"fmt"
	"math"
)

// Reduction is the drop in band power between two reports, in dB.
// Positive values mean the second signal holds less power.
type Reduction struct {
	TotalDB     float64
	BaselineDB  float64
	PowerlineDB float64
}

func (r Reduction) String() string {
	return fmt.Sprintf("total %.1f dB, baseline %.1f dB, powerline %.1f dB", r.TotalDB, r.BaselineDB, r.PowerlineDB)
}

// Attenuation compares the report of a raw signal with that of its
// filtered version.
func Attenuation(before, after Report) Reduction {
	return Reduction{
		TotalDB:     reductionDB(before.TotalPower, after.TotalPower),
		BaselineDB:  reductionDB(before.BaselinePower, after.BaselinePower),
		PowerlineDB: reductionDB(before.PowerlinePower, after.PowerlinePower),
	}
}

func reductionDB(before, after float64) float64 {
	switch {
	case before == after:
		return 0
	case after <= 0:
		return math.Inf(1)
	case before <= 0:
		return math.Inf(-1)
	}
	return 10 * math.Log10(before/after)
}
