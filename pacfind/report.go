package pacfind

import (
	"fmt"
)

// ResultReporter is abstraction for result reporting from complex processing functions
type ResultReporter interface {
	// Warning is non-fatal error message
	Warning(msg string, a ...interface{})
}

// ConsoleResultReporter prints warnings the way pacman does: to stderr,
// prefixed with "warning:", so that they never mix with search results
type ConsoleResultReporter struct {
	Progress Progress
}

// Check interface
var (
	_ ResultReporter = &ConsoleResultReporter{}
)

// Warning is non-fatal error message
func (c *ConsoleResultReporter) Warning(msg string, a ...interface{}) {
	c.Progress.ColoredPrintfStdErr("@{!y}warning:@| "+msg, a...)
}

// RecordingResultReporter is implementation of ResultReporter that collects all messages
type RecordingResultReporter struct {
	Warnings []string `json:"warnings"`
}

// Check interface
var (
	_ ResultReporter = &RecordingResultReporter{}
)

// Warning is non-fatal error message
func (r *RecordingResultReporter) Warning(msg string, a ...interface{}) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(msg, a...))
}
