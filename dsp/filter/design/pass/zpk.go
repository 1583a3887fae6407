package pass

import (
	"math"
	"math/cmplx"
	"sort"

	"github.com/cwbudde/algo-biosig/dsp/filter/biquad"
)

const rootPairTol = 1e-9

// quadRoots returns the roots of s^2 - b*s + c.
func quadRoots(b complex128, c float64) (complex128, complex128) {
	half := b / 2
	d := cmplx.Sqrt(half*half - complex(c, 0))
	return half + d, half - d
}

// designZPK maps an analog zero/pole/gain description through the unit
// bilinear transform and groups the result into second-order sections.
func designZPK(z, p []complex128, k float64) []biquad.Coefficients {
	dz, dp, dk, ok := bilinearZPK(z, p, k)
	if !ok {
		return nil
	}

	return zpkToSections(dz, dp, dk)
}

// bilinearZPK applies z = (1+s)/(1-s). Missing zeros (degree of the
// denominator above the numerator) are placed at z = -1.
func bilinearZPK(z, p []complex128, kGain float64) ([]complex128, []complex128, float64, bool) {
	degree := len(p) - len(z)
	if degree < 0 {
		return nil, nil, 0, false
	}

	zd := make([]complex128, 0, len(z)+degree)
	for _, zr := range z {
		den := 1.0 - zr
		if den == 0 {
			return nil, nil, 0, false
		}

		zd = append(zd, (1.0+zr)/den)
	}

	for range degree {
		zd = append(zd, -1)
	}

	pd := make([]complex128, 0, len(p))
	for _, pr := range p {
		den := 1.0 - pr
		if den == 0 {
			return nil, nil, 0, false
		}

		pd = append(pd, (1.0+pr)/den)
	}

	num := productOneMinus(z)

	den := productOneMinus(p)
	if den == 0 {
		return nil, nil, 0, false
	}

	kd := kGain * real(num/den)
	if kd == 0 || math.IsNaN(kd) || math.IsInf(kd, 0) {
		return nil, nil, 0, false
	}

	return zd, pd, kd, true
}

// zpkToSections pairs conjugate roots into biquads. Pole groups are ordered
// by descending imaginary part; the overall gain goes into the first section.
func zpkToSections(z, p []complex128, gain float64) []biquad.Coefficients {
	pGroups := groupRoots(p)
	if len(pGroups) == 0 {
		return nil
	}

	sort.SliceStable(pGroups, func(i, j int) bool {
		if len(pGroups[i]) != len(pGroups[j]) {
			return len(pGroups[i]) > len(pGroups[j])
		}

		return groupImagAbs(pGroups[i]) > groupImagAbs(pGroups[j])
	})

	var zPairs, zSingles [][]complex128

	for _, g := range groupRoots(z) {
		if len(g) == 2 {
			zPairs = append(zPairs, g)
		} else {
			zSingles = append(zSingles, g)
		}
	}

	take := func(first, second *[][]complex128) []complex128 {
		for _, src := range []*[][]complex128{first, second} {
			if len(*src) > 0 {
				g := (*src)[0]
				*src = (*src)[1:]
				return g
			}
		}
		return nil
	}

	out := make([]biquad.Coefficients, 0, len(pGroups))
	for _, pg := range pGroups {
		var zg []complex128
		if len(pg) == 2 {
			zg = take(&zPairs, &zSingles)
		} else {
			zg = take(&zSingles, &zPairs)
		}

		b1, b2 := quadFromRoots(zg)
		a1, a2 := quadFromRoots(pg)
		out = append(out, biquad.Coefficients{
			B0: 1, B1: b1, B2: b2,
			A1: a1, A2: a2,
		})
	}

	out[0].B0 *= gain
	out[0].B1 *= gain
	out[0].B2 *= gain

	return out
}

// groupRoots returns conjugate pairs first, then real roots paired in
// ascending order, with a trailing single real root for odd counts.
func groupRoots(roots []complex128) [][]complex128 {
	if len(roots) == 0 {
		return nil
	}

	sorted := append([]complex128(nil), roots...)
	sort.Slice(sorted, func(i, j int) bool {
		if ii, jj := imag(sorted[i]), imag(sorted[j]); ii != jj {
			return ii > jj
		}

		return real(sorted[i]) < real(sorted[j])
	})

	used := make([]bool, len(sorted))
	groups := make([][]complex128, 0, (len(sorted)+1)/2)
	reals := make([]complex128, 0, len(sorted))

	for i, r := range sorted {
		if used[i] {
			continue
		}
		used[i] = true

		if math.Abs(imag(r)) <= rootPairTol {
			reals = append(reals, complex(real(r), 0))
			continue
		}

		target := cmplx.Conj(r)
		best, bestDist := -1, math.MaxFloat64

		for j, rr := range sorted {
			if used[j] {
				continue
			}

			if d := cmplx.Abs(rr - target); d < bestDist {
				best, bestDist = j, d
			}
		}

		if best != -1 && bestDist <= 1e-4 {
			used[best] = true
			groups = append(groups, []complex128{r, sorted[best]})
		} else {
			groups = append(groups, []complex128{r})
		}
	}

	sort.Slice(reals, func(i, j int) bool { return real(reals[i]) < real(reals[j]) })

	for i := 0; i+1 < len(reals); i += 2 {
		groups = append(groups, []complex128{reals[i], reals[i+1]})
	}

	if len(reals)%2 == 1 {
		groups = append(groups, []complex128{reals[len(reals)-1]})
	}

	return groups
}

func groupImagAbs(g []complex128) float64 {
	maxImag := 0.0
	for _, r := range g {
		maxImag = max(maxImag, math.Abs(imag(r)))
	}

	return maxImag
}

// quadFromRoots returns (c1, c2) of 1 + c1*z^-1 + c2*z^-2 with the given roots.
func quadFromRoots(group []complex128) (float64, float64) {
	switch len(group) {
	case 0:
		return 0, 0
	case 1:
		return -real(group[0]), 0
	default:
		r1, r2 := group[0], group[1]
		return -real(r1 + r2), real(r1 * r2)
	}
}

func productOneMinus(v []complex128) complex128 {
	out := complex(1, 0)
	for _, x := range v {
		out *= 1.0 - x
	}

	return out
}
