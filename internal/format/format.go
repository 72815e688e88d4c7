// Package format renders and parses numbers in the Brazilian convention:
// thousands separated by periods, decimals by a comma.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencyPrefix precedes every monetary value.
const CurrencyPrefix = "R$ "

// Number formats v with the given decimal places, e.g. 1234.5 -> "1.234,50".
// Fractional places round the binary value, like "%.2f", so 2.675 renders
// "2,67". Zero places round half to even. NaN and infinities render as zero
// ("0,00", or "0" for zero places).
func Number(v float64, places int) string {
	if places < 0 {
		places = 0
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return zero(places)
	}

	var fixed string
	if places == 0 {
		fixed = decimal.NewFromFloat(v).RoundBank(0).StringFixed(0)
	} else {
		fixed = strconv.FormatFloat(v, 'f', places, 64)
	}
	if strings.Trim(fixed, "-0.") == "" {
		fixed = strings.TrimPrefix(fixed, "-")
	}
	return localize(fixed)
}

// Currency formats v as Number prefixed with "R$ ".
func Currency(v float64, places int) string {
	return CurrencyPrefix + Number(v, places)
}

// Fixed formats v with a decimal point and no grouping, like "%.Nf", but
// renders NaN and infinities as zero.
func Fixed(v float64, places int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return fmt.Sprintf("%.*f", places, v)
}

func zero(places int) string {
	if places == 0 {
		return "0"
	}
	return "0," + strings.Repeat("0", places)
}

// localize turns "-1234.56" into "-1.234,56".
func localize(fixed string) string {
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}

	intPart, fracPart, hasFrac := strings.Cut(fixed, ".")

	var b strings.Builder
	b.WriteString(sign)
	lead := len(intPart) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(intPart[:lead])
	for i := lead; i < len(intPart); i += 3 {
		b.WriteByte('.')
		b.WriteString(intPart[i : i+3])
	}
	if hasFrac {
		b.WriteByte(',')
		b.WriteString(fracPart)
	}
	return b.String()
}

// ParseDecimal reads user input in either convention. A comma marks the
// Brazilian form ("1.234,56"); without one, a single period is a decimal
// point ("1234.56") and several periods are thousands separators.
func ParseDecimal(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, strings.TrimSpace(CurrencyPrefix))
	s = strings.TrimSpace(s)

	switch {
	case strings.Contains(s, ","):
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case strings.Count(s, ".") > 1:
		s = strings.ReplaceAll(s, ".", "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	v, _ := d.Float64()
	if math.IsInf(v, 0) {
		return 0, fmt.Errorf("out of range: %q", s)
	}
	return v, nil
}
