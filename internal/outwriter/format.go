package outwriter

import (
	"fmt"
	"strings"
)

// FormatCurrency renders an amount Brazilian style: "R$ 1.234,56".
func FormatCurrency(value float64) string {
	s := fmt.Sprintf("%.2f", value)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, decPart, _ := strings.Cut(s, ".")

	// Group the integer part with dots every three digits.
	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := "R$ " + strings.Join(groups, ".") + "," + decPart
	if neg {
		out = "-" + out
	}
	return out
}

// FormatPercent renders a percentage with one decimal, e.g. "12.3%".
func FormatPercent(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}

// FormatValue renders a plain numeric value with the given precision.
func FormatValue(value float64, precision int) string {
	return fmt.Sprintf("%.*f", precision, value)
}
