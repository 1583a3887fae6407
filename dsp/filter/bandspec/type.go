package bandspec

import "fmt"

// Type is the filter topology implied by a cutoff combination.
type Type int

const (
	TypeNone Type = iota
	TypeLowpass
	TypeHighpass
	TypeBandpass
	TypeBandstop
)

var typeNames = [...]string{
	TypeNone:     "none",
	TypeLowpass:  "lowpass",
	TypeHighpass: "highpass",
	TypeBandpass: "bandpass",
	TypeBandstop: "bandstop",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// NumCutoffs returns how many cutoff frequencies the type requires.
func (t Type) NumCutoffs() int {
	switch t {
	case TypeLowpass, TypeHighpass:
		return 1
	case TypeBandpass, TypeBandstop:
		return 2
	default:
		return 0
	}
}

// ParseType returns the Type named s.
func ParseType(s string) (Type, error) {
	for i, name := range typeNames {
		if name == s {
			return Type(i), nil
		}
	}
	return TypeNone, fmt.Errorf("bandspec: unknown filter type %q", s)
}
