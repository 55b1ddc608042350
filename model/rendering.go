package model

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	ansiClearScreen = "\033[H\033[2J"
)

// TerminalRenderer draws grid snapshots to a terminal
type TerminalRenderer struct {
	out   io.Writer
	alive *color.Color
}

// NewTerminalRenderer returns a renderer writing to out; nil defaults to
// stdout.
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	if out == nil {
		out = os.Stdout
	}
	return &TerminalRenderer{
		out:   out,
		alive: color.New(color.FgGreen),
	}
}

// Display renders the snapshot, live cells in green
func (r *TerminalRenderer) Display(snap Snapshot) {
	for y := 0; y < snap.GetHeight(); y++ {
		for x := 0; x < snap.GetWidth(); x++ {
			if snap.Alive(x, y) {
				r.alive.Fprint(r.out, gridPosBlock)
			} else {
				fmt.Fprint(r.out, gridPosEmpty)
			}
		}
		fmt.Fprintln(r.out)
	}
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	fmt.Fprint(r.out, ansiClearScreen)
}
