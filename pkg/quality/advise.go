package quality

import "math"

// Action is the corrective direction of a Suggestion.
type Action int

const (
	None Action = iota
	Add
	Remove
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case Add:
		return "add"
	case Remove:
		return "remove"
	default:
		return "none"
	}
}

// Suggestion is a corrective dose. Amount is non-negative and zero for None.
type Suggestion struct {
	Action Action
	Amount float64
}

// NoAction is the suggestion for a reading inside the target band.
var NoAction = Suggestion{Action: None}

// AddAmount builds an Add suggestion.
func AddAmount(amount float64) Suggestion {
	return Suggestion{Action: Add, Amount: amount}
}

// RemoveAmount builds a Remove suggestion.
func RemoveAmount(amount float64) Suggestion {
	return Suggestion{Action: Remove, Amount: amount}
}

// Hydrogen-ion concentrations (mol/L) for pH 6 and pH 8.
const (
	ph6Conc = 1e-6
	ph8Conc = 1e-8
)

// PHToConcentration converts pH to hydrogen-ion concentration in mol/L.
func PHToConcentration(ph float64) float64 {
	return math.Pow(10, -ph)
}

// ImprovePH suggests how much base to add or remove, in mol/L hydroxide.
// The comparison order is fixed: above the pH 8 concentration adds base,
// otherwise below the pH 6 concentration removes base.
func ImprovePH(ph float64) Suggestion {
	h := PHToConcentration(ph)
	switch {
	case h > ph8Conc:
		return AddAmount(h - ph8Conc)
	case h < ph6Conc:
		return RemoveAmount(ph6Conc - h)
	default:
		return NoAction
	}
}

// ImproveConductivity suggests dissolved solids to add or remove, in mg/L.
func ImproveConductivity(cond float64) Suggestion {
	return improveSalinity(Salinity(cond))
}

func improveSalinity(s float64) Suggestion {
	switch {
	case s > salinityOkHigh:
		return RemoveAmount(s - salinityOkHigh)
	case s < salinityOkLow:
		return AddAmount(salinityOkLow - s)
	default:
		return NoAction
	}
}

// ImproveHardness suggests CaCO3 to add or remove, in mg/L.
func ImproveHardness(h float64) Suggestion {
	switch {
	case h > hardnessOkHigh:
		return RemoveAmount(h - hardnessOkHigh)
	case h < hardnessOkLow:
		return AddAmount(hardnessOkLow - h)
	default:
		return NoAction
	}
}
