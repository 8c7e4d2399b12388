package clock

// Params is the fractional-divider tick period: each group of Denom
// consecutive tick periods counts FracNumerator "long" periods of
// Whole+1 raw hardware cycles and Denom-FracNumerator "short" periods of
// Whole cycles.
type Params struct {
	Whole         uint16
	FracNumerator uint8
	Denom         uint16 // fixed power of two for the life of the process
}

// Scaled returns the period in raw cycles scaled by Denom:
// Whole*Denom + FracNumerator.
func (p Params) Scaled() uint32 {
	return uint32(p.Whole)*uint32(p.Denom) + uint32(p.FracNumerator)
}

// FromScaled decomposes a scaled count back into (whole, frac) by
// integer divide/mod by denom.
func FromScaled(scaled uint32, denom uint16) Params {
	return Params{
		Whole:         uint16(scaled / uint32(denom)),
		FracNumerator: uint8(scaled % uint32(denom)),
		Denom:         denom,
	}
}

// Discipline holds the nominal period and the ±5% clamp bounds around
// it, plus the current Params.
type Discipline struct {
	Nominal uint32 // nominal scaled count
	Current Params
}

// NewDiscipline seeds a Discipline at the nominal period.
func NewDiscipline(nominalWhole uint16, nominalFrac uint8, denom uint16) *Discipline {
	nominal := Params{Whole: nominalWhole, FracNumerator: nominalFrac, Denom: denom}.Scaled()
	return &Discipline{
		Nominal: nominal,
		Current: FromScaled(nominal, denom),
	}
}

const clampPercent = 5

func (d *Discipline) clamp(scaled uint32) uint32 {
	lo := uint32(uint64(d.Nominal) * (100 - clampPercent) / 100)
	hi := uint32(uint64(d.Nominal) * (100 + clampPercent) / 100)
	if scaled < lo {
		return lo
	}
	if scaled > hi {
		return hi
	}
	return scaled
}

// Adjust updates Current so the next interval matches the observed
// ratio of localTicks (what the local clock counted) to apparentTicks
// (what those ticks should have been per the reference). apparentTicks
// < localTicks means the local clock is running fast and scaled must
// increase; the opposite means it must decrease.
//
// Grounded on pll/pll.go's period-adjust-then-clamp shape.
func (d *Discipline) Adjust(localTicks, apparentTicks int) {
	if apparentTicks <= 0 {
		apparentTicks = 1
	}
	current := uint64(d.Current.Scaled())
	newScaled := MulDiv(current, uint64(localTicks), uint64(apparentTicks))

	// Low-pass: a single noisy measurement must not overwrite
	// calibration outright.
	blended := uint32((newScaled + current) / 2)
	blended = d.clamp(blended)

	d.Current = FromScaled(blended, d.Current.Denom)
}
