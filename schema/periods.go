package schema

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// MonthNames is the fixed month-name table of the billing base. Index 0 is
// unused so that MonthNames[m] lines up with calendar month numbers.
var MonthNames = [13]string{
	"",
	"JANEIRO", "FEVEREIRO", "MARÇO", "ABRIL", "MAIO", "JUNHO",
	"JULHO", "AGOSTO", "SETEMBRO", "OUTUBRO", "NOVEMBRO", "DEZEMBRO",
}

// PeriodLabel builds the "<MONTH_NAME>/<YEAR>" grouping key for a month and year.
func PeriodLabel(month, year int) string {
	if month < 1 || month > 12 {
		return fmt.Sprintf("?/%d", year)
	}
	return fmt.Sprintf("%s/%d", MonthNames[month], year)
}

// MonthIndex returns the calendar month number for an upper-case month name,
// or 0 when the name is not part of the table.
func MonthIndex(name string) int {
	for m := 1; m <= 12; m++ {
		if MonthNames[m] == name {
			return m
		}
	}
	return 0
}

// ParsePeriod splits a period label back into its month and year. Labels that
// do not match the table yield (0, 0).
func ParsePeriod(label string) (month, year int) {
	name, yearStr, ok := strings.Cut(label, "/")
	if !ok {
		return 0, 0
	}
	month = MonthIndex(name)
	if month == 0 {
		return 0, 0
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return 0, 0
	}
	return month, year
}

// SortPeriods orders period labels chronologically by (year, month index).
// Lexical order would interleave years, so every view must go through here.
func SortPeriods(labels []string) {
	sort.SliceStable(labels, func(i, j int) bool {
		mi, yi := ParsePeriod(labels[i])
		mj, yj := ParsePeriod(labels[j])
		if yi != yj {
			return yi < yj
		}
		return mi < mj
	})
}

// NextMonth advances a (month, year) cursor by one month, rolling the year
// on overflow.
func NextMonth(month, year int) (int, int) {
	month++
	if month > 12 {
		month = 1
		year++
	}
	return month, year
}
