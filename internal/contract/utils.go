package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Fit-quality label constants, graded from the coefficient of determination.
const (
	ExcellentValue = "Excellent" // Excellent fit
	GoodValue      = "Good"      // Good fit
	FairValue      = "Fair"      // Fair fit
	PoorValue      = "Poor"      // Poor fit
)

// Color variables for console output.
var (
	ExcellentColor = color.New(color.FgGreen, color.Bold) // tight fit, trustworthy extrapolation
	GoodColor      = color.New(color.FgCyan)              // solid fit
	FairColor      = color.New(color.FgYellow)            // usable, treat the estimate with care
	PoorColor      = color.New(color.FgRed, color.Bold)   // noisy data, estimate is suspect
)

// GetPlainLabel returns a plain text label grading the regression fit
// quality by its R-squared. This is the core logic used for CSV, JSON, and
// table printing.
func GetPlainLabel(rSquared float64) string {
	switch {
	case rSquared >= 0.95:
		return ExcellentValue
	case rSquared >= 0.85:
		return GoodValue
	case rSquared >= 0.70:
		return FairValue
	default:
		return PoorValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, then applies the color.
func GetColorLabel(rSquared float64) string {
	text := GetPlainLabel(rSquared)

	switch text {
	case ExcellentValue:
		return ExcellentColor.Sprint(text)
	case GoodValue:
		return GoodColor.Sprint(text)
	case FairValue:
		return FairColor.Sprint(text)
	default: // "Poor"
		return PoorColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It returns os.Stdout for an empty path.
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
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// LogWarning logs a message-only warning to stderr.
func LogWarning(msg string) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s\n", msg)
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
