package stats

import (
	"errors"
	"math"

	"github.com/potatoeggy/ece198/pkg/quality"
	"github.com/potatoeggy/ece198/pkg/sample"
)

// ErrInsufficientData is returned when there are no samples to aggregate.
var ErrInsufficientData = errors.New("insufficient data")

// Stat summarises one parameter across the stored samples.
type Stat struct {
	Avg      float64
	Stdev    float64 // Population standard deviation
	Standard float64 // Reference value shown alongside the summary
	Total    int     // Samples considered
	Success  int     // Samples classified Ok or Good
}

// Extractor selects one reading from a sample.
type Extractor func(sample.WaterSample) float64

// Classifier grades a single reading.
type Classifier func(float64) quality.Level

// Mean returns the arithmetic mean of data.
func Mean(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, ErrInsufficientData
	}

	var sum float64
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data)), nil
}

// Stdev returns the population standard deviation of data (divides by N).
func Stdev(data []float64) (float64, error) {
	mean, err := Mean(data)
	if err != nil {
		return 0, err
	}

	var sum float64
	for _, v := range data {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(data))), nil
}

// Compute aggregates the values extracted from samples.
// With no samples it returns ErrInsufficientData.
func Compute(samples []sample.WaterSample, extract Extractor, classify Classifier, standard float64) (Stat, error) {
	if len(samples) == 0 {
		return Stat{Standard: standard}, ErrInsufficientData
	}

	values := make([]float64, len(samples))
	success := 0
	for i, s := range samples {
		v := extract(s)
		values[i] = v
		if classify(v).MeetsStandard() {
			success++
		}
	}

	avg, err := Mean(values)
	if err != nil {
		return Stat{Standard: standard}, err
	}
	stdev, err := Stdev(values)
	if err != nil {
		return Stat{Standard: standard}, err
	}

	return Stat{
		Avg:      avg,
		Stdev:    stdev,
		Standard: standard,
		Total:    len(samples),
		Success:  success,
	}, nil
}

// ForParameter aggregates parameter p using its quality bands.
func ForParameter(samples []sample.WaterSample, p quality.Parameter, standard float64) (Stat, error) {
	return Compute(
		samples,
		func(s sample.WaterSample) float64 { return s.Value(p) },
		func(v float64) quality.Level { return quality.Evaluate(p, v) },
		standard,
	)
}
