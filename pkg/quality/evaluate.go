package quality

// Band edges. The Ok test reuses the outer relation (x > hi || x < lo), so once
// a reading passes the Poor test almost any value outside the inner band is Ok.
const (
	hardnessPoorHigh = 150.0
	hardnessPoorLow  = 60.0
	hardnessOkHigh   = 100.0
	hardnessOkLow    = 80.0

	phPoorHigh = 8.5
	phPoorLow  = 6.0
	phOkHigh   = 8.0
	phOkLow    = 6.5

	salinityPoorHigh = 180.0
	salinityPoorLow  = 10.0
	salinityOkHigh   = 120.0
	salinityOkLow    = 50.0
)

// Salinity converts a conductivity reading (mS/cm) to total dissolved solids in mg/L.
func Salinity(cond float64) float64 {
	return (0.7317*cond - 3.7635) * 0.55
}

// EvaluateHardness classifies hardness in mg/L CaCO3.
// 0-60 poor, 60-80 ok, 80-100 good, 100-150 ok, 150+ poor.
func EvaluateHardness(h float64) Level {
	return band(h, hardnessPoorLow, hardnessPoorHigh, hardnessOkLow, hardnessOkHigh)
}

// EvaluatePH classifies a pH reading.
func EvaluatePH(ph float64) Level {
	return band(ph, phPoorLow, phPoorHigh, phOkLow, phOkHigh)
}

// EvaluateConductivity classifies conductivity via derived salinity.
func EvaluateConductivity(cond float64) Level {
	return evaluateSalinity(Salinity(cond))
}

func evaluateSalinity(s float64) Level {
	return band(s, salinityPoorLow, salinityPoorHigh, salinityOkLow, salinityOkHigh)
}

// band applies the three-way classification, first matching branch wins.
// NaN fails every comparison and lands in Good.
func band(x, poorLow, poorHigh, okLow, okHigh float64) Level {
	if x > poorHigh || x < poorLow {
		return Poor
	}
	if x > okHigh || x < okLow {
		return Ok
	}
	return Good
}
