package sample

import "github.com/potatoeggy/ece198/pkg/quality"

// WaterSample is one completed measurement.
type WaterSample struct {
	PH           float64 // pH
	Conductivity float64 // Conductivity (mS/cm)
	Hardness     float64 // Hardness (mg/L CaCO3)
}

// Value returns the reading for parameter p.
func (s WaterSample) Value(p quality.Parameter) float64 {
	switch p {
	case quality.PH:
		return s.PH
	case quality.Conductivity:
		return s.Conductivity
	default:
		return s.Hardness
	}
}

// Levels classifies every parameter of the sample, in entry order.
func (s WaterSample) Levels() [3]quality.Level {
	var levels [3]quality.Level
	for i, p := range quality.Parameters {
		levels[i] = quality.Evaluate(p, s.Value(p))
	}
	return levels
}

// Total is the composite level: the worst of the three parameters.
func (s WaterSample) Total() quality.Level {
	levels := s.Levels()
	return quality.Worst(levels[:]...)
}
