// Package diag writes human readable diagnostics for the math packages. Notes
// go to standard output, warnings and errors to standard error. Every line
// carries the file, function and line of the code that reported it.
package diag

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

type Level int

const (
	Note Level = iota
	Warning
	Error
)

func (l Level) String() string {
	switch l {
	case Note:
		return "NOTE"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	default:
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}

var (
	notes    = log.New(os.Stdout, "", log.LstdFlags)
	problems = log.New(os.Stderr, "", log.LstdFlags)
)

// SetOutput redirects notes and problems (warnings, errors). A nil writer
// leaves the corresponding sink untouched.
func SetOutput(noteOut io.Writer, problemOut io.Writer) {
	if noteOut != nil {
		notes.SetOutput(noteOut)
	}
	if problemOut != nil {
		problems.SetOutput(problemOut)
	}
}

// Logf reports a message at the given level, tagged with the caller's location.
func Logf(level Level, format string, args ...any) {
	logAt(2, level, fmt.Sprintf(format, args...))
}

// Warnf is shorthand for Logf(Warning, ...).
func Warnf(format string, args ...any) {
	logAt(2, Warning, fmt.Sprintf(format, args...))
}

func logAt(skip int, level Level, msg string) {
	file, fn, line := "???", "???", 0
	if pc, f, l, ok := runtime.Caller(skip); ok {
		file, line = filepath.Base(f), l
		if rf := runtime.FuncForPC(pc); rf != nil {
			fn = shortFuncName(rf.Name())
		}
	}
	out := problems
	if level == Note {
		out = notes
	}
	out.Printf("%s %s:%d %s: %s", level, file, line, fn, msg)
}

// shortFuncName strips the import path: "liblac/vecmath.Vec2.Div" -> "vecmath.Vec2.Div".
func shortFuncName(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		return name[i+1:]
	}
	return name
}
