package main

import (
	"io"

	"github.com/fatih/color"
)

var (
	infoColor    = color.New(color.FgBlue)
	successColor = color.New(color.FgGreen)
	warningColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	headerColor  = color.New(color.FgYellow, color.Bold)
)

// UI writes status lines. Colors switch off by themselves when output is
// not a terminal or NO_COLOR is set.
type UI struct {
	w io.Writer
}

func (u UI) Info(format string, a ...any)    { infoColor.Fprintf(u.w, "ℹ "+format+"\n", a...) }
func (u UI) Success(format string, a ...any) { successColor.Fprintf(u.w, "✓ "+format+"\n", a...) }
func (u UI) Warning(format string, a ...any) { warningColor.Fprintf(u.w, "⚠ "+format+"\n", a...) }
func (u UI) Error(format string, a ...any)   { errorColor.Fprintf(u.w, "✗ "+format+"\n", a...) }

func (u UI) Header(title string) {
	headerColor.Fprintf(u.w, "\n=== %s ===\n", title)
}
