package contract

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Color variables for console output.
var (
	RealizedColor = color.New(color.FgGreen)             // realized revenue, confirmed
	ForecastColor = color.New(color.FgYellow)            // projected revenue, tentative
	GrowthColor   = color.New(color.FgGreen, color.Bold) // upward period-over-period move
	DeclineColor  = color.New(color.FgRed, color.Bold)   // downward period-over-period move
)

// trendThreshold is the absolute period-over-period delta below which no
// trend marker is shown.
const trendThreshold = 100.0

// GetTrendMarker returns the trend marker for a period-over-period delta.
func GetTrendMarker(delta float64) string {
	switch {
	case delta > trendThreshold:
		return "↑"
	case delta < -trendThreshold:
		return "↓"
	default:
		return ""
	}
}

// GetColorTrendMarker returns the colored trend marker for console output.
func GetColorTrendMarker(delta float64) string {
	switch marker := GetTrendMarker(delta); marker {
	case "↑":
		return GrowthColor.Sprint(marker)
	case "↓":
		return DeclineColor.Sprint(marker)
	default:
		return ""
	}
}

// SelectOutputFile returns the appropriate file handle for output based on
// the provided file path, falling back to os.Stdout when the path is empty.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string) {
	_, _ = fmt.Fprintf(os.Stderr, "Warning: %s\n", msg)
}
