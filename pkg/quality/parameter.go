package quality

// Parameter identifies one of the measured water properties.
type Parameter int

const (
	PH Parameter = iota
	Conductivity
	Hardness
)

// Parameters lists every parameter in entry order.
var Parameters = [...]Parameter{PH, Conductivity, Hardness}

// Info holds the fixed display text for a parameter.
type Info struct {
	Prompt      string // Entry prompt on line 1
	Title       string // Short title for status and advice screens
	Unit        string // Dosing unit for advice amounts
	AddLabel    string
	RemoveLabel string
}

var infos = [...]Info{
	PH: {
		Prompt:      "pH:",
		Title:       "pH",
		Unit:        "M OH-",
		AddLabel:    "add base:",
		RemoveLabel: "remove base:",
	},
	Conductivity: {
		Prompt:      "Conduc. (mS/cm):",
		Title:       "Cond",
		Unit:        "mg/L",
		AddLabel:    "add salt:",
		RemoveLabel: "rem. salt:",
	},
	Hardness: {
		Prompt:      "Hardness (mg/L):",
		Title:       "Ha",
		Unit:        "mg/L CaCO3",
		AddLabel:    "add CaCO3:",
		RemoveLabel: "rem. CaCO3:",
	},
}

// Info returns the display text for p.
func (p Parameter) Info() Info {
	if p < 0 || int(p) >= len(infos) {
		return Info{}
	}
	return infos[p]
}

// String returns the parameter title.
func (p Parameter) String() string {
	return p.Info().Title
}

// Label returns the advice label for a suggestion on this parameter.
func (p Parameter) Label(s Suggestion) string {
	info := p.Info()
	switch s.Action {
	case Add:
		return info.AddLabel
	case Remove:
		return info.RemoveLabel
	default:
		return "Good"
	}
}

// Evaluate classifies a reading of parameter p.
func Evaluate(p Parameter, v float64) Level {
	switch p {
	case PH:
		return EvaluatePH(v)
	case Conductivity:
		return EvaluateConductivity(v)
	default:
		return EvaluateHardness(v)
	}
}

// Improve returns the corrective suggestion for a reading of parameter p.
func Improve(p Parameter, v float64) Suggestion {
	switch p {
	case PH:
		return ImprovePH(v)
	case Conductivity:
		return ImproveConductivity(v)
	default:
		return ImproveHardness(v)
	}
}
