package tui

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/san-kum/wavelab/internal/sim"
)

const (
	cursorHome  = "\033[H"
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
	reset       = "\x1b[0m"
)

// ANSI foreground codes for the seven amplitude buckets, black for the
// near-zero dead zone.
var colors = [...]string{
	"\033[0;31m", // red
	"\033[0;32m", // green
	"\033[0;33m", // yellow
	"\033[0;34m", // blue
	"\033[0;35m", // magenta
	"\033[0;36m", // cyan
	"\033[0;37m", // white
}

const colorDead = "\033[0;30m"

const deadZone = 0.05

// LiveRenderer is a plain ANSI frame renderer: cursor-home redraw, one
// colored cell per node, fixed inter-frame delay. It implements
// sim.Observer, so it can be attached directly to a driver; it only reads
// snapshots and paces itself, never touching grid state.
type LiveRenderer struct {
	out        io.Writer
	frameDelay time.Duration
}

func NewLiveRenderer(out io.Writer, frameRate int) *LiveRenderer {
	if frameRate <= 0 {
		frameRate = 30
	}
	return &LiveRenderer{
		out:        out,
		frameDelay: time.Second / time.Duration(frameRate),
	}
}

// Start clears the screen and hides the cursor. Pair with Stop.
func (r *LiveRenderer) Start() { fmt.Fprint(r.out, clearScreen, hideCursor) }

// Stop restores the cursor.
func (r *LiveRenderer) Stop() { fmt.Fprint(r.out, showCursor) }

func (r *LiveRenderer) OnStep(s sim.Snapshot) {
	var b strings.Builder
	b.WriteString(cursorHome)
	for i := 0; i < s.Nx; i++ {
		for j := 0; j < s.Ny; j++ {
			b.WriteString(colorFor(s.At(i, j)))
			b.WriteString("* ")
			b.WriteString(reset)
		}
		b.WriteByte('\n')
	}
	fmt.Fprint(r.out, b.String())
	time.Sleep(r.frameDelay)
}

func colorFor(v float64) string {
	if math.Abs(v) < deadZone {
		return colorDead
	}
	idx := int((v + 1) / 2 * float64(len(colors)))
	if idx < 0 || idx >= len(colors) {
		return colorDead
	}
	return colors[idx]
}
