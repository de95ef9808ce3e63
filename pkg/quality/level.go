package quality

// Level is the quality band a single reading falls into.
// Ordered by desirability: Poor < Ok < Good.
type Level int

const (
	Poor Level = iota
	Ok
	Good
)

// Code returns the two-character status code shown on the display.
func (l Level) Code() string {
	switch l {
	case Good:
		return "OK"
	case Ok:
		return "ME"
	default:
		return "XD"
	}
}

// String returns the level name.
func (l Level) String() string {
	switch l {
	case Good:
		return "good"
	case Ok:
		return "ok"
	default:
		return "poor"
	}
}

// MeetsStandard reports whether the level counts as passing (Ok or Good).
func (l Level) MeetsStandard() bool {
	return l == Good || l == Ok
}

// Worst returns the least desirable of the given levels.
// With no levels it returns Good.
func Worst(levels ...Level) Level {
	worst := Good
	for _, l := range levels {
		if l < worst {
			worst = l
		}
	}
	return worst
}
