package screen

import (
	"math"
	"testing"

	"github.com/potatoeggy/ece198/pkg/quality"
	"github.com/potatoeggy/ece198/pkg/stats"
	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	scr := Status(quality.Good, quality.Ok, quality.Poor, quality.Poor)
	assert.Equal(t, "pH OK   Cond  ME", scr.First)
	assert.Equal(t, "Ha XD   Total XD", scr.Second)
	assert.Len(t, scr.First, 16)
	assert.Len(t, scr.Second, 16)
}

func TestAdvice(t *testing.T) {
	tests := []struct {
		name   string
		param  quality.Parameter
		sugg   quality.Suggestion
		first  string
		second string
	}{
		{
			name:   "hardness add",
			param:  quality.Hardness,
			sugg:   quality.AddAmount(10),
			first:  "Ha: add CaCO3:",
			second: "10.00 mg/L CaCO3",
		},
		{
			name:   "hardness remove",
			param:  quality.Hardness,
			sugg:   quality.RemoveAmount(20),
			first:  "Ha: rem. CaCO3:",
			second: "20.00 mg/L CaCO3",
		},
		{
			name:   "conductivity remove",
			param:  quality.Conductivity,
			sugg:   quality.RemoveAmount(10.456),
			first:  "Cond: rem. salt:",
			second: "10.46 mg/L",
		},
		{
			name:   "conductivity good",
			param:  quality.Conductivity,
			sugg:   quality.NoAction,
			first:  "Cond: Good",
			second: "",
		},
		{
			name:   "hardness remove three digits",
			param:  quality.Hardness,
			sugg:   quality.RemoveAmount(120),
			first:  "Ha: rem. CaCO3:",
			second: "120.00mg/L CaCO3",
		},
		{
			name:   "hardness remove four digits",
			param:  quality.Hardness,
			sugg:   quality.RemoveAmount(1234.5),
			first:  "Ha: rem. CaCO3:",
			second: "1234.5mg/L CaCO3",
		},
		{
			name:   "ph tiny dose",
			param:  quality.PH,
			sugg:   quality.AddAmount(9e-8),
			first:  "pH: add base:",
			second: "9.00e-08 M OH-",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scr := Advice(tt.param, tt.sugg, DefaultWidth)
			assert.Equal(t, tt.first, scr.First)
			assert.Equal(t, tt.second, scr.Second)
		})
	}
}

func TestSummaryScreens(t *testing.T) {
	st := stats.Stat{Avg: 2, Stdev: math.Sqrt(2.0 / 3.0), Standard: 90, Total: 3, Success: 2}

	values := SummaryValues(quality.Hardness, st, DefaultWidth)
	assert.Equal(t, "Ha Avg   Stdev", values.First)
	assert.Equal(t, "     2.00  0.82", values.Second)

	std := SummaryStandard(st)
	assert.Equal(t, "Std: 90.00", std.First)
	assert.Equal(t, "2/3 met std", std.Second)
}

func TestSummaryValues_Fits(t *testing.T) {
	tests := []struct {
		name   string
		avg    float64
		stdev  float64
		second string
	}{
		{name: "short values keep indent", avg: 8, stdev: 1, second: "     8.00  1.00"},
		{name: "two digit stdev", avg: 90, stdev: 10, second: "    90.00  10.00"},
		{name: "three digit avg", avg: 252, stdev: 48, second: "   252.00  48.00"},
		{name: "gap shrinks", avg: 12345.67, stdev: 1234.5, second: "12345.67 1234.50"},
		{name: "decimals drop", avg: 123456.7, stdev: 12345.6, second: "123456.7 12345.6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scr := SummaryValues(quality.Conductivity, stats.Stat{Avg: tt.avg, Stdev: tt.stdev}, DefaultWidth)
			assert.Equal(t, tt.second, scr.Second)
			assert.LessOrEqual(t, len(scr.Second), DefaultWidth)
		})
	}
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "7.00", FormatValue(7))
	assert.Equal(t, "0.82", FormatValue(0.8164965809))
	assert.Equal(t, "1.01", FormatValue(1.005))
	assert.Equal(t, "-", FormatValue(math.NaN()))
	assert.Equal(t, "-", FormatValue(math.Inf(1)))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0.00", FormatAmount(0))
	assert.Equal(t, "0.01", FormatAmount(0.005))
	assert.Equal(t, "9.99e-06", FormatAmount(9.99e-6))
	assert.Equal(t, "12.50", FormatAmount(12.5))
}

func TestMessageScreens(t *testing.T) {
	assert.Equal(t, Screen{First: "1. New data", Second: "2. Summary"}, Menu())
	assert.Equal(t, "Storage full", StoreFull(5).First)
	assert.Equal(t, "Discarded (5)", StoreFull(5).Second)
	assert.Equal(t, "pH: no data", NoData(quality.PH).First)
	assert.Equal(t, "Invalid number", InvalidInput().First)
}
