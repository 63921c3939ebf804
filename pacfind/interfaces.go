// Package pacfind provides common infrastructure that doesn't depend directly on
// package databases or the query language
package pacfind

import (
	"io"
)

// Version of pacfind (filled in at link time)
var Version string

// EnableDebug turns on debugging features (gin debug mode, verbose loaders)
const EnableDebug = false

// BarType used to differentiate between different progress bars
type BarType int

const (
	// BarLoadLocalDatabase is the bar shown while reading the local database
	BarLoadLocalDatabase BarType = iota
	// BarLoadSyncDatabase is the bar shown while reading sync databases
	BarLoadSyncDatabase
	// BarLoadPackageFiles is the bar shown while reading package archives
	BarLoadPackageFiles
)

// Progress is a progress displaying entity, it allows progress bars & simple prints
type Progress interface {
	// Writer interface to support progress bar ticking
	io.Writer
	// Start makes progress start its work
	Start()
	// Shutdown shuts down progress display
	Shutdown()
	// Flush returns when all queued messages are sent
	Flush()
	// InitBar starts progressbar for count bytes or count items
	InitBar(count int64, isBytes bool, barType BarType)
	// ShutdownBar stops progress bar and hides it
	ShutdownBar()
	// AddBar increments progress for progress bar
	AddBar(count int)
	// Printf does printf but in safe manner: not overwriting progress bar
	Printf(msg string, a ...interface{})
	// PrintfStdErr does printf to stderr but in safe manner: not overwriting progress bar
	PrintfStdErr(msg string, a ...interface{})
	// ColoredPrintf does printf in colored way + newline
	ColoredPrintf(msg string, a ...interface{})
	// ColoredPrintfStdErr is ColoredPrintf to stderr
	ColoredPrintfStdErr(msg string, a ...interface{})
}
