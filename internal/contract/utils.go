package contract

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
)

// Grade label constants.
const (
	ExcellentValue = "Excellent" // 90 and above
	GoodValue      = "Good"      // 75 and above
	FairValue      = "Fair"      // 50 and above
	PoorValue      = "Poor"      // below 50
)

// Color variables for console output.
var (
	ExcellentColor = color.New(color.FgGreen, color.Bold) // excellentColor marks a fully healthy repository.
	GoodColor      = color.New(color.FgCyan)              // goodColor marks a solid repository with minor gaps.
	FairColor      = color.New(color.FgYellow)            // fairColor marks standard caution, not bold.
	PoorColor      = color.New(color.FgRed, color.Bold)   // poorColor marks serious compliance gaps.
)

// GetPlainGrade returns a plain text grade for a compliance score. This is
// the core logic used for CSV, JSON, and table printing.
func GetPlainGrade(score int) string {
	switch {
	case score >= 90:
		return ExcellentValue
	case score >= 75:
		return GoodValue
	case score >= 50:
		return FairValue
	default:
		return PoorValue
	}
}

// GetColorGrade returns a colored grade for console table output. It uses
// GetPlainGrade to determine the string, then applies the matching color.
func GetColorGrade(score int) string {
	text := GetPlainGrade(score)

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
// the provided file path. An empty path selects stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncateText truncates text to a maximum width with ellipsis prefix.
// Requires maxWidth > 3 so there is room for both the "..." prefix and at
// least one character of content.
func TruncateText(text string, maxWidth int) string {
	runes := []rune(text)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return text
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

// GetDBFilePath returns the path to the SQLite DB file for report storage.
func GetDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".repograde_reports.db"
	}
	return filepath.Join(homeDir, ".repograde_reports.db")
}
