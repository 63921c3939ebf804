// Package console implements terminal output: colored messages mixed with progress bar
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/cheggaaa/pb"
	"github.com/pacfind/pacfind/pacfind"
	"github.com/wsxiaoys/terminal/color"
)

const (
	codePrint = iota
	codePrintStdErr
	codeProgress
	codeHideProgress
	codeStop
	codeFlush
	codeBarEnabled
	codeBarDisabled
)

const clearLine = "\r\033[2K"

type printTask struct {
	code    int
	message string
	reply   chan bool
}

// Progress is a progress displaying subroutine: messages are queued and
// printed by single goroutine, so that they don't overwrite progress bar
type Progress struct {
	stopped     chan bool
	queue       chan printTask
	bar         *pb.ProgressBar
	barShown    bool
	interactive bool
	stdout      io.Writer
	stderr      io.Writer
}

// Check interface
var (
	_ pacfind.Progress = (*Progress)(nil)
)

var barPrefixes = map[pacfind.BarType]string{
	pacfind.BarLoadLocalDatabase: "local database ",
	pacfind.BarLoadSyncDatabase:  "sync databases ",
	pacfind.BarLoadPackageFiles:  "package files ",
}

// NewProgress creates new progress instance
//
// When interactive is false, progress bar is never shown and color marks
// are stripped from messages.
func NewProgress(stdout, stderr io.Writer, interactive bool) *Progress {
	return &Progress{
		stopped:     make(chan bool),
		queue:       make(chan printTask, 100),
		interactive: interactive,
		stdout:      stdout,
		stderr:      stderr,
	}
}

// Start makes progress start its work
func (p *Progress) Start() {
	go p.worker()
}

// Shutdown shuts down progress display
func (p *Progress) Shutdown() {
	p.ShutdownBar()
	p.queue <- printTask{code: codeStop}
	<-p.stopped
}

// Flush waits for all queued messages to be displayed
func (p *Progress) Flush() {
	ch := make(chan bool)
	p.queue <- printTask{code: codeFlush, reply: ch}
	<-ch
}

// InitBar starts progressbar for count bytes or count items
func (p *Progress) InitBar(count int64, isBytes bool, barType pacfind.BarType) {
	if p.bar != nil {
		panic("bar already initialized")
	}
	if !p.interactive {
		return
	}

	p.bar = pb.New(0)
	p.bar.Total = count
	p.bar.NotPrint = true
	p.bar.Prefix(barPrefixes[barType])
	p.bar.Callback = func(out string) {
		p.queue <- printTask{code: codeProgress, message: out}
	}

	if isBytes {
		p.bar.SetUnits(pb.U_BYTES)
		p.bar.ShowSpeed = true
	}

	p.queue <- printTask{code: codeBarEnabled}
	p.bar.Start()
}

// ShutdownBar stops progress bar and hides it
func (p *Progress) ShutdownBar() {
	if p.bar == nil {
		return
	}
	p.bar.Finish()
	p.queue <- printTask{code: codeBarDisabled}
	p.bar = nil
	p.queue <- printTask{code: codeHideProgress}
}

// Write is implementation of io.Writer to support updating of progress bar
func (p *Progress) Write(s []byte) (int, error) {
	if p.bar != nil {
		p.bar.Add(len(s))
	}
	return len(s), nil
}

// AddBar increments progress for progress bar
func (p *Progress) AddBar(count int) {
	if p.bar != nil {
		p.bar.Add(count)
	}
}

// Printf does printf but in safe manner: not overwriting progress bar
func (p *Progress) Printf(msg string, a ...interface{}) {
	p.queue <- printTask{code: codePrint, message: fmt.Sprintf(msg, a...)}
}

// PrintfStdErr does printf but in safe manner to stderr
func (p *Progress) PrintfStdErr(msg string, a ...interface{}) {
	p.queue <- printTask{code: codePrintStdErr, message: fmt.Sprintf(msg, a...)}
}

// ColoredPrintf does printf in colored way + newline
//
// Colors are written with marks of wsxiaoys/terminal/color: "@y" for yellow,
// "@!" for bold, "@|" to reset, "@@" for literal @.
func (p *Progress) ColoredPrintf(msg string, a ...interface{}) {
	if p.interactive {
		p.queue <- printTask{code: codePrint, message: color.Sprintf(msg, a...) + "\n"}
	} else {
		p.Printf(StripColors(msg)+"\n", a...)
	}
}

// ColoredPrintfStdErr does printf in colored way + newline to stderr
func (p *Progress) ColoredPrintfStdErr(msg string, a ...interface{}) {
	if p.interactive {
		p.queue <- printTask{code: codePrintStdErr, message: color.Sprintf(msg, a...) + "\n"}
	} else {
		p.PrintfStdErr(StripColors(msg)+"\n", a...)
	}
}

// StripColors removes color marks from the message
func StripColors(msg string) string {
	var inColorMark, inCurly bool

	return strings.Map(func(r rune) rune {
		if inColorMark {
			if inCurly {
				if r == '}' {
					inCurly = false
					inColorMark = false
				}
				return -1
			}

			switch r {
			case '{':
				inCurly = true
				return -1
			case '@':
				inColorMark = false
				return '@'
			}
			inColorMark = false
			return -1
		}

		if r == '@' {
			inColorMark = true
			return -1
		}

		return r
	}, msg)
}

func (p *Progress) clearBar() {
	if p.barShown {
		fmt.Fprint(p.stdout, clearLine)
		p.barShown = false
	}
}

func (p *Progress) worker() {
	hasBar := false

	for {
		task := <-p.queue
		switch task.code {
		case codeBarEnabled:
			hasBar = true
		case codeBarDisabled:
			hasBar = false
		case codePrint:
			p.clearBar()
			fmt.Fprint(p.stdout, task.message)
		case codePrintStdErr:
			p.clearBar()
			fmt.Fprint(p.stderr, task.message)
		case codeProgress:
			if hasBar {
				fmt.Fprint(p.stdout, "\r"+task.message)
				p.barShown = true
			}
		case codeHideProgress:
			p.clearBar()
		case codeFlush:
			task.reply <- true
		case codeStop:
			p.stopped <- true
			return
		}
	}
}
