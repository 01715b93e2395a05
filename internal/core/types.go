package core

// Size describes the dimensions of a raster.
type Size struct {
	W int
	H int
}

// LandType tags a generated point with its terrain class.
type LandType uint8

const (
	LandLand LandType = iota
	LandScaffold
	LandCoast
	LandMountain
	LandSnowcapped
)

func (t LandType) String() string {
	switch t {
	case LandLand:
		return "land"
	case LandScaffold:
		return "scaffold"
	case LandCoast:
		return "coast"
	case LandMountain:
		return "mountain"
	case LandSnowcapped:
		return "snowcapped"
	}
	return "unknown"
}

// ParseLandType is the inverse of LandType.String.
func ParseLandType(s string) (LandType, bool) {
	for t := LandLand; t <= LandSnowcapped; t++ {
		if t.String() == s {
			return t, true
		}
	}
	return 0, false
}
