package screen

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/potatoeggy/ece198/pkg/quality"
	"github.com/potatoeggy/ece198/pkg/stats"
	"github.com/shopspring/decimal"
)

// Screen is the text of both display lines.
type Screen struct {
	First  string
	Second string
}

// Menu is the main menu.
func Menu() Screen {
	return Screen{First: "1. New data", Second: "2. Summary"}
}

// Status is the two-column quality code summary of one entry.
func Status(ph, cond, hard, total quality.Level) Screen {
	return Screen{
		First:  fmt.Sprintf("pH %s   Cond  %s", ph.Code(), cond.Code()),
		Second: fmt.Sprintf("Ha %s   Total %s", hard.Code(), total.Code()),
	}
}

// Advice shows the corrective suggestion for one parameter. The amount line
// is fitted to width: the space before the unit goes first, then decimals.
func Advice(p quality.Parameter, s quality.Suggestion, width int) Screen {
	info := p.Info()
	scr := Screen{First: fmt.Sprintf("%s: %s", info.Title, p.Label(s))}
	if s.Action != quality.None {
		scr.Second = fitAmount(s.Amount, info.Unit, width)
	}
	return scr
}

// summaryIndent is the left margin of the summary value line.
const summaryIndent = 5

// SummaryValues is the first summary screen: mean and standard deviation.
// The indent shrinks, then the column gap, then the decimals, so both values
// fit in width.
func SummaryValues(p quality.Parameter, st stats.Stat, width int) Screen {
	return Screen{
		First:  fmt.Sprintf("%s Avg   Stdev", p.Info().Title),
		Second: fitColumns(st.Avg, st.Stdev, width),
	}
}

func fitColumns(a, b float64, width int) string {
	for places := int32(2); places >= 0; places-- {
		as, bs := formatFixed(a, places), formatFixed(b, places)
		for _, gap := range []int{2, 1} {
			lead := min(summaryIndent, width-len(as)-gap-len(bs))
			if lead >= 0 {
				return strings.Repeat(" ", lead) + as + strings.Repeat(" ", gap) + bs
			}
		}
	}
	return FormatValue(a) + " " + FormatValue(b)
}

func fitAmount(v float64, unit string, width int) string {
	for places := int32(2); places >= 0; places-- {
		amount := formatAmount(v, places)
		for _, sep := range []string{" ", ""} {
			if line := amount + sep + unit; len(line) <= width {
				return line
			}
		}
	}
	return FormatAmount(v) + " " + unit
}

// SummaryStandard is the second summary screen: standard and pass count.
func SummaryStandard(st stats.Stat) Screen {
	return Screen{
		First:  "Std: " + FormatValue(st.Standard),
		Second: fmt.Sprintf("%d/%d met std", st.Success, st.Total),
	}
}

// NoData replaces the summary screens when nothing is stored.
func NoData(p quality.Parameter) Screen {
	return Screen{First: p.Info().Title + ": no data", Second: "Add a sample"}
}

// StoreFull tells the operator the sample was not kept.
func StoreFull(capacity int) Screen {
	return Screen{First: "Storage full", Second: fmt.Sprintf("Discarded (%d)", capacity)}
}

// InvalidInput asks the operator to enter a reading again.
func InvalidInput() Screen {
	return Screen{First: "Invalid number", Second: "Try again"}
}

// FormatValue rounds v to two decimals.
func FormatValue(v float64) string {
	return formatFixed(v, 2)
}

func formatFixed(v float64, places int32) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "-"
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}

// FormatAmount rounds a dose to two decimals. Doses too small to show at that
// precision, such as hydroxide concentrations, use two-decimal scientific notation.
func FormatAmount(v float64) string {
	return formatAmount(v, 2)
}

func formatAmount(v float64, places int32) string {
	if v != 0 && math.Abs(v) < 0.005 {
		return strconv.FormatFloat(v, 'e', 2, 64)
	}
	return formatFixed(v, places)
}
